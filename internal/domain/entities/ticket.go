package entities

import "time"

// TicketStatus represents the support ticket lifecycle.
//
// Any non-closed status may be set via explicit update; closed is terminal
// and can never be left.

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusOnHold     TicketStatus = "on_hold"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// IsTerminal reports whether no further status transition is allowed.
func (s TicketStatus) IsTerminal() bool { return s == TicketStatusClosed }

// Valid reports whether s is one of the known ticket statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusOnHold,
		TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityNormal   TicketPriority = "normal"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

// Valid reports whether p is one of the known ticket priorities.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityNormal, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// Ticket is a unit of supported work, owner of its time entries and of the
// billing accruals derived from them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// TotalMinutes/BillableMinutes/EstimatedBillableAmount are running totals
// updated only through the consumption engine; PrebillingQueued is set once
// when the ticket closes with uncovered billable work.

type Ticket struct {
	ID                      string         `json:"id"`
	ClientID                string         `json:"client_id"`
	ContractID              string         `json:"contract_id,omitempty"`
	MachineID               string         `json:"machine_id,omitempty"`
	TechnicianID            string         `json:"technician_id,omitempty"`
	Status                  TicketStatus   `json:"status"`
	Priority                TicketPriority `json:"priority"`
	Title                   string         `json:"title"`
	Description             string         `json:"description"`
	TotalMinutes            int            `json:"total_minutes"`
	BillableMinutes         int            `json:"billable_minutes"`
	EstimatedBillableAmount float64        `json:"estimated_billable_amount"`
	PrebillingQueued        bool           `json:"prebilling_queued"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
}
