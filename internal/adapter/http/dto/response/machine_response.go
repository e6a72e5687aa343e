package response

import (
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

type MachineResponse struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	Hostname        string    `json:"hostname"`
	OSName          string    `json:"os_name"`
	CPUModel        string    `json:"cpu_model,omitempty"`
	RAMTotalGB      float64   `json:"ram_total_gb,omitempty"`
	AgentVersion    string    `json:"agent_version,omitempty"`
	HeartbeatAt     time.Time `json:"heartbeat_at,omitzero"`
	LastInventoryAt time.Time `json:"last_inventory_at,omitzero"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromMachine(m entities.Machine) MachineResponse {
	return MachineResponse{
		ID:              m.ID,
		ClientID:        m.ClientID,
		Hostname:        m.Hostname,
		OSName:          m.OSName,
		CPUModel:        m.CPUModel,
		RAMTotalGB:      m.RAMTotalGB,
		AgentVersion:    m.AgentVersion,
		HeartbeatAt:     m.HeartbeatAt,
		LastInventoryAt: m.LastInventoryAt,
		CreatedAt:       m.CreatedAt,
	}
}

func FromMachines(machines []entities.Machine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, FromMachine(m))
	}
	return out
}

type MetricSampleResponse struct {
	ID          string    `json:"id"`
	MachineID   string    `json:"machine_id"`
	CPUPercent  float64   `json:"cpu_percent"`
	RAMPercent  float64   `json:"ram_percent"`
	DiskPercent float64   `json:"disk_percent"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMetricSample(s entities.MetricSample) MetricSampleResponse {
	return MetricSampleResponse{
		ID:          s.ID,
		MachineID:   s.MachineID,
		CPUPercent:  s.CPUPercent,
		RAMPercent:  s.RAMPercent,
		DiskPercent: s.DiskPercent,
		CreatedAt:   s.CreatedAt,
	}
}

func FromMetricSamples(samples []entities.MetricSample) []MetricSampleResponse {
	out := make([]MetricSampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, FromMetricSample(s))
	}
	return out
}

type AlertResponse struct {
	ID        string    `json:"id"`
	MachineID string    `json:"machine_id"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	TicketID  string    `json:"ticket_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAlert(a entities.Alert) AlertResponse {
	return AlertResponse{
		ID:        a.ID,
		MachineID: a.MachineID,
		Severity:  string(a.Severity),
		Title:     a.Title,
		Details:   a.Details,
		TicketID:  a.TicketID,
		CreatedAt: a.CreatedAt,
	}
}
