package request

type CreateTicketRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ContractID   string `json:"contract_id"`
	MachineID    string `json:"machine_id"`
	TechnicianID string `json:"technician_id"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
