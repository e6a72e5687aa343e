package entities

import "time"

// InvoiceStatus represents the invoice workflow state.
//
// The billing engine only ever creates Draft invoices; Validated/Sent/Paid
// transitions belong to the external accounting workflow.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusValidated InvoiceStatus = "validated"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
)

// Invoice is an append-only billing record derived from validated work or
// from a subscription contract's recurring terms.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id

type Invoice struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	Status      InvoiceStatus `json:"status"`
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}
