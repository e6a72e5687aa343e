package request

type CreateMachineRequest struct {
	ClientID   string  `json:"client_id" binding:"required"`
	Hostname   string  `json:"hostname" binding:"required"`
	OSName     string  `json:"os_name" binding:"required"`
	CPUModel   string  `json:"cpu_model"`
	RAMTotalGB float64 `json:"ram_total_gb"`
}

type HeartbeatRequest struct {
	AgentVersion string `json:"agent_version"`
}

type PushMetricsRequest struct {
	CPUPercent  float64 `json:"cpu_percent"`
	RAMPercent  float64 `json:"ram_percent"`
	DiskPercent float64 `json:"disk_percent"`
}

type IngestAlertRequest struct {
	Severity         string `json:"severity"`
	Title            string `json:"title" binding:"required"`
	Details          string `json:"details"`
	AutoCreateTicket bool   `json:"auto_create_ticket"`
}
