package interfaces

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// IHoursEventRepository is the append-only audit log of hours-bank
// consumptions.

type IHoursEventRepository interface {
	Append(ctx context.Context, ev entities.HoursEvent) (entities.HoursEvent, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.HoursEvent, error)
}

// IPrebillingQueueRepository is the ordered queue of ticket ids awaiting the
// downstream consolidated billing pass. Tickets are appended in close order.

type IPrebillingQueueRepository interface {
	Enqueue(ctx context.Context, ticketID string) error
	List(ctx context.Context) ([]string, error)
}
