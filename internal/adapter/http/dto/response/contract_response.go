package response

import (
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

type ContractResponse struct {
	ID                  string    `json:"id"`
	ClientID            string    `json:"client_id"`
	Type                string    `json:"type"`
	HourlyRate          float64   `json:"hourly_rate"`
	TotalHours          *float64  `json:"total_hours,omitempty"`
	RemainingHours      *float64  `json:"remaining_hours,omitempty"`
	AlertThresholdHours float64   `json:"alert_threshold_hours,omitempty"`
	MonthlyPrice        float64   `json:"monthly_price,omitempty"`
	MonthlyUnits        int       `json:"monthly_units,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromContract(c entities.Contract) ContractResponse {
	return ContractResponse{
		ID:                  c.ID,
		ClientID:            c.ClientID,
		Type:                string(c.Type),
		HourlyRate:          c.HourlyRate,
		TotalHours:          c.TotalHours,
		RemainingHours:      c.RemainingHours,
		AlertThresholdHours: c.AlertThresholdHours,
		MonthlyPrice:        c.MonthlyPrice,
		MonthlyUnits:        c.MonthlyUnits,
		CreatedAt:           c.CreatedAt,
	}
}

func FromContracts(contracts []entities.Contract) []ContractResponse {
	out := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, FromContract(c))
	}
	return out
}

type HoursEventResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id"`
	ContractID    string    `json:"contract_id"`
	BeforeHours   float64   `json:"before_hours"`
	ConsumedHours float64   `json:"consumed_hours"`
	AfterHours    float64   `json:"after_hours"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromHoursEvents(events []entities.HoursEvent) []HoursEventResponse {
	out := make([]HoursEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, HoursEventResponse{
			ID:            ev.ID,
			ClientID:      ev.ClientID,
			ContractID:    ev.ContractID,
			BeforeHours:   ev.BeforeHours,
			ConsumedHours: ev.ConsumedHours,
			AfterHours:    ev.AfterHours,
			CreatedAt:     ev.CreatedAt,
		})
	}
	return out
}
