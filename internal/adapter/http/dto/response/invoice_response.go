package response

import (
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

type InvoiceResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		ClientID:    inv.ClientID,
		Status:      string(inv.Status),
		Amount:      inv.Amount,
		Description: inv.Description,
		CreatedAt:   inv.CreatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
