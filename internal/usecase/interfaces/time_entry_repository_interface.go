package interfaces

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// ITimeEntryRepository abstracts persistence for TimeEntry.
//
// MarkValidated flips the monotonic validated flag. Implementations must
// refuse to re-flip (conditional write) and return a zero-value entry when
// the flag was already set, so concurrent double validation cannot
// double-count.

type ITimeEntryRepository interface {
	Create(ctx context.Context, e entities.TimeEntry) (entities.TimeEntry, error)
	GetByID(ctx context.Context, id string) (entities.TimeEntry, error)
	ListByTicketID(ctx context.Context, ticketID string) ([]entities.TimeEntry, error)
	MarkValidated(ctx context.Context, id string) (entities.TimeEntry, error)
}
