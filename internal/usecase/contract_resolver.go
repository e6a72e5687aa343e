package usecase

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"
)

// IContractResolver decides which contract governs the billing of a ticket.
// The resolution policy is injectable: deployments with one contract per
// client can keep the first-match fallback, others should require tickets to
// carry an explicit contract_id.

type IContractResolver interface {
	// Resolve returns the governing contract for the ticket, or found=false
	// when the ticket's client has no contract at all. A ticket referencing
	// a missing contract_id is an error, not an absence.
	Resolve(ctx context.Context, t entities.Ticket) (contract entities.Contract, found bool, err error)
}

// FirstMatchResolver honors an explicit ticket contract_id and otherwise
// falls back to the first contract listed for the client. The fallback is a
// known simplification for clients holding several contracts; it reproduces
// the historical behavior while keeping the policy swappable.

type FirstMatchResolver struct {
	contracts interfaces.IContractRepository
}

var _ IContractResolver = (*FirstMatchResolver)(nil)

func NewFirstMatchResolver(contracts interfaces.IContractRepository) *FirstMatchResolver {
	return &FirstMatchResolver{contracts: contracts}
}

func (r *FirstMatchResolver) Resolve(ctx context.Context, t entities.Ticket) (entities.Contract, bool, error) {
	if t.ContractID != "" {
		c, err := r.contracts.GetByID(ctx, t.ContractID)
		if err != nil {
			return entities.Contract{}, false, err
		}
		if c.ID == "" {
			return entities.Contract{}, false, ErrContractNotFound
		}
		return c, true, nil
	}

	candidates, err := r.contracts.ListByClientID(ctx, t.ClientID)
	if err != nil {
		return entities.Contract{}, false, err
	}
	if len(candidates) == 0 {
		return entities.Contract{}, false, nil
	}
	return candidates[0], true, nil
}
