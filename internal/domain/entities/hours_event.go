package entities

import "time"

// HoursEvent is an immutable audit record of one hours-bank consumption.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (contract_id-index): contract_id
//
// ConsumedHours is the requested amount, not the clamped one: when the draw
// exceeds the balance, AfterHours is exactly zero and the deficit is
// absorbed, so BeforeHours - ConsumedHours == AfterHours only holds while
// the balance covers the request.

type HoursEvent struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	ContractID    string    `json:"contract_id"`
	BeforeHours   float64   `json:"before_hours"`
	ConsumedHours float64   `json:"consumed_hours"`
	AfterHours    float64   `json:"after_hours"`
	CreatedAt     time.Time `json:"created_at"`
}
