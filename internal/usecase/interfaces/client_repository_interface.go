package interfaces

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// IClientRepository abstracts persistence for Client.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Count(ctx context.Context) (int, error)
}

// ITechnicianRepository abstracts persistence for Technician.

type ITechnicianRepository interface {
	Create(ctx context.Context, t entities.Technician) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
}
