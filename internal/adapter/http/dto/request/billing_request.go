package request

type SubscriptionInvoiceRequest struct {
	ContractID string `json:"contract_id" binding:"required"`
}

type CreateInvoiceRequest struct {
	ClientID    string  `json:"client_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}
