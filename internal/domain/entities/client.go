package entities

import "time"

// Client is a billed customer. Referenced by contracts, tickets and
// invoices; never mutated by the billing engine.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	LegalInfo string    `json:"legal_info,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Technician performs the work recorded in time entries.

type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
