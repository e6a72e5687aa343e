package entities

import "time"

// TimeEntry is a unit of recorded technician work against a ticket.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (ticket_id-index): ticket_id
//
// Validated is monotonic: it flips false -> true exactly once, through the
// consumption engine, and never reverts. Re-validating an already validated
// entry is a documented no-op.

type TimeEntry struct {
	ID           string    `json:"id"`
	TicketID     string    `json:"ticket_id"`
	TechnicianID string    `json:"technician_id"`
	Minutes      int       `json:"minutes"`
	Billable     bool      `json:"billable"`
	Validated    bool      `json:"validated"`
	CreatedAt    time.Time `json:"created_at"`
}

// Hours converts the entry duration to fractional hours.
func (e TimeEntry) Hours() float64 { return float64(e.Minutes) / 60.0 }
