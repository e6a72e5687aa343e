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
	ErrContractNotFound        = errors.New("contract not found")
	ErrInvalidContractID       = errors.New("invalid contract id")
	ErrInvalidContractClientID = errors.New("invalid contract client_id")
	ErrInvalidContractType     = errors.New("invalid contract type")
	ErrInvalidContractTerms    = errors.New("invalid contract terms")
)

// IContractUseCase exposes contract record operations.

type IContractUseCase interface {
	CreateContract(ctx context.Context, in CreateContractInput) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error)
	ListHoursEvents(ctx context.Context, contractID string) ([]entities.HoursEvent, error)
}

type CreateContractInput struct {
	ClientID            string
	Type                entities.ContractType
	HourlyRate          float64
	TotalHours          float64
	AlertThresholdHours float64
	MonthlyPrice        float64
	MonthlyUnits        int
}

type ContractUseCase struct {
	repo       interfaces.IContractRepository
	clientRepo interfaces.IClientRepository
	hours      interfaces.IHoursEventRepository
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	clientRepo interfaces.IClientRepository,
	hours interfaces.IHoursEventRepository,
) *ContractUseCase {
	return &ContractUseCase{repo: repo, clientRepo: clientRepo, hours: hours}
}

// CreateContract persists a contract after checking the owning client.
// Hours-bank contracts are seeded with remaining_hours = total_hours so the
// balance invariant (defined iff hours-bank) holds from creation.
func (u *ContractUseCase) CreateContract(ctx context.Context, in CreateContractInput) (entities.Contract, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return entities.Contract{}, ErrInvalidContractClientID
	}
	if in.HourlyRate < 0 {
		return entities.Contract{}, ErrInvalidContractTerms
	}

	cli, err := u.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Contract{}, err
	}
	if cli.ID == "" {
		return entities.Contract{}, ErrClientNotFound
	}

	c := entities.Contract{
		ID:         uuid.NewString(),
		ClientID:   in.ClientID,
		Type:       in.Type,
		HourlyRate: in.HourlyRate,
		CreatedAt:  time.Now().UTC(),
	}

	switch in.Type {
	case entities.ContractTypeHoursBank:
		if in.TotalHours <= 0 {
			return entities.Contract{}, ErrInvalidContractTerms
		}
		total := in.TotalHours
		remaining := in.TotalHours
		c.TotalHours = &total
		c.RemainingHours = &remaining
		c.AlertThresholdHours = in.AlertThresholdHours
	case entities.ContractTypeSubscription:
		c.MonthlyPrice = in.MonthlyPrice
		c.MonthlyUnits = in.MonthlyUnits
	case entities.ContractTypeTimeAndMaterials:
		// Hourly rate is the whole deal.
	default:
		return entities.Contract{}, ErrInvalidContractType
	}

	return u.repo.Create(ctx, c)
}

func (u *ContractUseCase) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidContractClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// ListHoursEvents returns the drawdown audit trail of an hours-bank
// contract, oldest first.
func (u *ContractUseCase) ListHoursEvents(ctx context.Context, contractID string) ([]entities.HoursEvent, error) {
	if _, err := u.GetByID(ctx, contractID); err != nil {
		return nil, err
	}
	return u.hours.ListByContractID(ctx, strings.TrimSpace(contractID))
}
