package request

// CreateContractRequest carries the terms for any of the three contract
// types. Fields irrelevant to the requested type are ignored by the use
// case.
type CreateContractRequest struct {
	ClientID            string  `json:"client_id" binding:"required"`
	Type                string  `json:"type" binding:"required"`
	HourlyRate          float64 `json:"hourly_rate"`
	TotalHours          float64 `json:"total_hours"`
	AlertThresholdHours float64 `json:"alert_threshold_hours"`
	MonthlyPrice        float64 `json:"monthly_price"`
	MonthlyUnits        int     `json:"monthly_units"`
}
