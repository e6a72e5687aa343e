package entities

import "time"

// Machine is a monitored endpoint managed on behalf of a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id

type Machine struct {
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

// MetricSample is one resource usage reading pushed by a machine agent.

type MetricSample struct {
	ID          string    `json:"id"`
	MachineID   string    `json:"machine_id"`
	CPUPercent  float64   `json:"cpu_percent"`
	RAMPercent  float64   `json:"ram_percent"`
	DiskPercent float64   `json:"disk_percent"`
	CreatedAt   time.Time `json:"created_at"`
}

type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// Alert is a monitoring event raised against a machine. When ingested with
// auto_create_ticket it spawns a support ticket whose priority derives from
// the alert severity.

type Alert struct {
	ID        string        `json:"id"`
	MachineID string        `json:"machine_id"`
	Severity  AlertSeverity `json:"severity"`
	Title     string        `json:"title"`
	Details   string        `json:"details"`
	TicketID  string        `json:"ticket_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
