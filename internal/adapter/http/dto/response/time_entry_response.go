package response

import (
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

type TimeEntryResponse struct {
	ID           string    `json:"id"`
	TicketID     string    `json:"ticket_id"`
	TechnicianID string    `json:"technician_id,omitempty"`
	Minutes      int       `json:"minutes"`
	Billable     bool      `json:"billable"`
	Validated    bool      `json:"validated"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromTimeEntry(e entities.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           e.ID,
		TicketID:     e.TicketID,
		TechnicianID: e.TechnicianID,
		Minutes:      e.Minutes,
		Billable:     e.Billable,
		Validated:    e.Validated,
		CreatedAt:    e.CreatedAt,
	}
}
