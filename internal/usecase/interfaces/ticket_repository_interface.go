package interfaces

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// ITicketRepository abstracts persistence for Ticket.
//
// AddAccruals must increment the running totals atomically with respect to
// concurrent validations against the same ticket (ADD expression or
// equivalent), never read-modify-write on the caller side.

type ITicketRepository interface {
	Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	List(ctx context.Context) ([]entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error)
	AddAccruals(ctx context.Context, id string, totalMinutes, billableMinutes int, amount float64) (entities.Ticket, error)
	MarkPrebillingQueued(ctx context.Context, id string) (entities.Ticket, error)
	CountOpen(ctx context.Context) (int, error)
}
