package notifications

import (
	"context"
	"log"

	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"
)

// LogNotifier delivers notifications to the process log. It is the default
// sink; deployments that need real delivery (email, webhook) swap in their
// own INotifier.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, message string) {
	log.Printf("[notification][infrastructure] %s", message)
}
