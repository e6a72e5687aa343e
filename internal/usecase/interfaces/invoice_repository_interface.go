package interfaces

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// IInvoiceRepository abstracts persistence for Invoice. Invoices are
// append-only: there is no update or delete.

type IInvoiceRepository interface {
	Create(ctx context.Context, in entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error)
	CountUnpaid(ctx context.Context) (int, error)
}
