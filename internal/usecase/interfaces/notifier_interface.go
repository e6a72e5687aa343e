package interfaces

import "context"

// INotifier is the sink that receives free-text threshold alerts raised by
// the consumption engine (e.g. hours bank under threshold). Implementations
// must not fail the originating operation: delivery is best effort.

type INotifier interface {
	Notify(ctx context.Context, message string)
}
