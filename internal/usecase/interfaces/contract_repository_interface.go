package interfaces

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// IContractRepository abstracts persistence for Contract.
//
// ConsumeHours is the single mutation path for the hours-bank balance. It
// must apply the update only while the stored remaining_hours still equals
// before (compare-and-set); implementations return a zero-value Contract
// when the comparison fails so the engine can re-read and retry.

type IContractRepository interface {
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error)
	ConsumeHours(ctx context.Context, id string, before, after float64) (entities.Contract, error)
}
