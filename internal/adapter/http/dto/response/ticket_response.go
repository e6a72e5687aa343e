package response

import (
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

type TicketResponse struct {
	ID                      string    `json:"id"`
	ClientID                string    `json:"client_id"`
	ContractID              string    `json:"contract_id,omitempty"`
	MachineID               string    `json:"machine_id,omitempty"`
	TechnicianID            string    `json:"technician_id,omitempty"`
	Status                  string    `json:"status"`
	Priority                string    `json:"priority"`
	Title                   string    `json:"title"`
	Description             string    `json:"description"`
	TotalMinutes            int       `json:"total_minutes"`
	BillableMinutes         int       `json:"billable_minutes"`
	EstimatedBillableAmount float64   `json:"estimated_billable_amount"`
	PrebillingQueued        bool      `json:"prebilling_queued"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func FromTicket(t entities.Ticket) TicketResponse {
	return TicketResponse{
		ID:                      t.ID,
		ClientID:                t.ClientID,
		ContractID:              t.ContractID,
		MachineID:               t.MachineID,
		TechnicianID:            t.TechnicianID,
		Status:                  string(t.Status),
		Priority:                string(t.Priority),
		Title:                   t.Title,
		Description:             t.Description,
		TotalMinutes:            t.TotalMinutes,
		BillableMinutes:         t.BillableMinutes,
		EstimatedBillableAmount: t.EstimatedBillableAmount,
		PrebillingQueued:        t.PrebillingQueued,
		CreatedAt:               t.CreatedAt,
		UpdatedAt:               t.UpdatedAt,
	}
}

func FromTickets(tickets []entities.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}

// PrebillingQueueResponse lists ticket ids in the order they were enqueued
// (ticket close order).
type PrebillingQueueResponse struct {
	TicketIDs []string `json:"ticket_ids"`
}
