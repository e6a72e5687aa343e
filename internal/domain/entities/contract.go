package entities

import "time"

// ContractType represents the billing model a client signed up for.
//
// Domain notes:
//   - HoursBank contracts carry a prepaid hours balance drawn down as
//     billable work is validated.
//   - Subscription contracts are billed as monthly_price * monthly_units,
//     independent of hours actually worked.
//   - TimeAndMaterials contracts accrue hourly_rate * hours per validated
//     entry.

type ContractType string

const (
	ContractTypeHoursBank        ContractType = "hours_bank"
	ContractTypeSubscription     ContractType = "subscription"
	ContractTypeTimeAndMaterials ContractType = "time_material"
)

// Contract is a client service contract persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Invariants:
//   - TotalHours/RemainingHours/AlertThresholdHours are set if and only if
//     Type == ContractTypeHoursBank; RemainingHours never exceeds TotalHours
//     and never goes negative.
//   - MonthlyPrice/MonthlyUnits are meaningful only for Subscription.

type Contract struct {
	ID                  string       `json:"id"`
	ClientID            string       `json:"client_id"`
	Type                ContractType `json:"type"`
	HourlyRate          float64      `json:"hourly_rate"`
	TotalHours          *float64     `json:"total_hours,omitempty"`
	RemainingHours      *float64     `json:"remaining_hours,omitempty"`
	AlertThresholdHours float64      `json:"alert_threshold_hours,omitempty"`
	MonthlyPrice        float64      `json:"monthly_price,omitempty"`
	MonthlyUnits        int          `json:"monthly_units,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}
