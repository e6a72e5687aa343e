package response

import (
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	LegalInfo string    `json:"legal_info,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		LegalInfo: c.LegalInfo,
		CreatedAt: c.CreatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}

type TechnicianResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromTechnician(t entities.Technician) TechnicianResponse {
	return TechnicianResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		CreatedAt: t.CreatedAt,
	}
}

func FromTechnicians(technicians []entities.Technician) []TechnicianResponse {
	out := make([]TechnicianResponse, 0, len(technicians))
	for _, t := range technicians {
		out = append(out, FromTechnician(t))
	}
	return out
}
