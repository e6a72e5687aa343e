package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientID    = errors.New("invalid client id")
	ErrInvalidClientInput = errors.New("invalid client payload")

	ErrTechnicianNotFound     = errors.New("technician not found")
	ErrInvalidTechnicianInput = errors.New("invalid technician payload")
)

// IClientUseCase exposes client and technician record keeping. These are
// plain data-entry operations; the billing engine only reads them.

type IClientUseCase interface {
	CreateClient(ctx context.Context, name, email, phone, legalInfo string) (entities.Client, error)
	GetClientByID(ctx context.Context, id string) (entities.Client, error)
	ListClients(ctx context.Context) ([]entities.Client, error)
	CreateTechnician(ctx context.Context, name, email string) (entities.Technician, error)
	ListTechnicians(ctx context.Context) ([]entities.Technician, error)
}

type ClientUseCase struct {
	clients     interfaces.IClientRepository
	technicians interfaces.ITechnicianRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(clients interfaces.IClientRepository, technicians interfaces.ITechnicianRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, technicians: technicians}
}

func (u *ClientUseCase) CreateClient(ctx context.Context, name, email, phone, legalInfo string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return entities.Client{}, ErrInvalidClientInput
	}

	c := entities.Client{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(phone),
		LegalInfo: strings.TrimSpace(legalInfo),
		CreatedAt: time.Now().UTC(),
	}
	return u.clients.Create(ctx, c)
}

func (u *ClientUseCase) GetClientByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.clients.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	return u.clients.List(ctx)
}

func (u *ClientUseCase) CreateTechnician(ctx context.Context, name, email string) (entities.Technician, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return entities.Technician{}, ErrInvalidTechnicianInput
	}

	t := entities.Technician{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	return u.technicians.Create(ctx, t)
}

func (u *ClientUseCase) ListTechnicians(ctx context.Context) ([]entities.Technician, error) {
	return u.technicians.List(ctx)
}
