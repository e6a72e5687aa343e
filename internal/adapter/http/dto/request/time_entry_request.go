package request

// AddTimeEntryRequest records technician work against a ticket. Billable
// defaults to true to match how field work is usually entered; explicitly
// non-billable work sends billable=false.
type AddTimeEntryRequest struct {
	TicketID     string `json:"ticket_id" binding:"required"`
	TechnicianID string `json:"technician_id"`
	Minutes      int    `json:"minutes" binding:"required,gt=0"`
	Billable     *bool  `json:"billable"`
}

func (r AddTimeEntryRequest) ResolveBillable() bool {
	if r.Billable == nil {
		return true
	}
	return *r.Billable
}
