package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/infrastructure/metrics"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTimeEntryNotFound    = errors.New("time entry not found")
	ErrInvalidTimeEntryID   = errors.New("invalid time entry id")
	ErrInvalidTicketRef     = errors.New("invalid ticket_id")
	ErrInvalidMinutes       = errors.New("minutes must be positive")
	ErrInvalidContractState = errors.New("hours bank contract has no balance")
	ErrConsumptionConflict  = errors.New("hours bank consumption conflict")
)

// DefaultHourlyRate is the fallback applied when a billable entry has no
// governing contract. The historical flows disagreed (120 on the request
// path, 100 in the standalone ledger); both are unified behind this single
// configurable default.
const DefaultHourlyRate = 120.0

// consumeRetries bounds the optimistic retry loop on the hours-bank
// compare-and-set.
const consumeRetries = 5

// IEntryInvoiceDeriver is the slice of the billing usecase the consumption
// engine needs: derive the per-entry invoice once the time-and-materials
// branch was taken.

type IEntryInvoiceDeriver interface {
	DeriveForValidatedEntry(ctx context.Context, ticket entities.Ticket, entry entities.TimeEntry, rate float64) (*entities.Invoice, error)
}

// ITimeEntryUseCase records technician work and runs the consumption
// engine over it.

type ITimeEntryUseCase interface {
	AddTimeEntry(ctx context.Context, in AddTimeEntryInput) (entities.TimeEntry, error)
	ValidateTimeEntry(ctx context.Context, entryID string) (entities.TimeEntry, error)
}

type AddTimeEntryInput struct {
	TicketID     string
	TechnicianID string
	Minutes      int
	Billable     bool
}

// TimeEntryUseCase is the contract-consumption engine. Validating an entry
// decides, per unit of recorded work, whether it draws down a prepaid hours
// balance, accrues a time-and-materials charge, or has no billing effect.

type TimeEntryUseCase struct {
	entries   interfaces.ITimeEntryRepository
	tickets   interfaces.ITicketRepository
	contracts interfaces.IContractRepository
	hours     interfaces.IHoursEventRepository
	resolver  IContractResolver
	deriver   IEntryInvoiceDeriver
	notifier  interfaces.INotifier

	fallbackRate float64
	locks        *keyedMutex
}

var _ ITimeEntryUseCase = (*TimeEntryUseCase)(nil)

func NewTimeEntryUseCase(
	entries interfaces.ITimeEntryRepository,
	tickets interfaces.ITicketRepository,
	contracts interfaces.IContractRepository,
	hours interfaces.IHoursEventRepository,
	resolver IContractResolver,
	deriver IEntryInvoiceDeriver,
	notifier interfaces.INotifier,
	fallbackRate float64,
) *TimeEntryUseCase {
	if fallbackRate <= 0 {
		fallbackRate = DefaultHourlyRate
	}
	return &TimeEntryUseCase{
		entries:      entries,
		tickets:      tickets,
		contracts:    contracts,
		hours:        hours,
		resolver:     resolver,
		deriver:      deriver,
		notifier:     notifier,
		fallbackRate: fallbackRate,
		locks:        newKeyedMutex(),
	}
}

func (u *TimeEntryUseCase) AddTimeEntry(ctx context.Context, in AddTimeEntryInput) (entities.TimeEntry, error) {
	in.TicketID = strings.TrimSpace(in.TicketID)
	if in.TicketID == "" {
		return entities.TimeEntry{}, ErrInvalidTicketRef
	}
	if in.Minutes <= 0 {
		return entities.TimeEntry{}, ErrInvalidMinutes
	}

	ticket, err := u.tickets.GetByID(ctx, in.TicketID)
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if ticket.ID == "" {
		return entities.TimeEntry{}, ErrTicketNotFound
	}

	e := entities.TimeEntry{
		ID:           uuid.NewString(),
		TicketID:     in.TicketID,
		TechnicianID: strings.TrimSpace(in.TechnicianID),
		Minutes:      in.Minutes,
		Billable:     in.Billable,
		Validated:    false,
		CreatedAt:    time.Now().UTC(),
	}
	return u.entries.Create(ctx, e)
}

// ValidateTimeEntry runs the consumption engine for one entry.
//
// Re-validating an already validated entry is a no-op, never an error. All
// preconditions (ticket and contract existence, hours-bank balance defined)
// are checked before the first mutation, so the error taxonomy never leaves
// a partially applied validation behind. The validated flag is flipped last.
func (u *TimeEntryUseCase) ValidateTimeEntry(ctx context.Context, entryID string) (entities.TimeEntry, error) {
	entryID = strings.TrimSpace(entryID)
	if entryID == "" {
		return entities.TimeEntry{}, ErrInvalidTimeEntryID
	}

	u.locks.Lock(entryID)
	defer u.locks.Unlock(entryID)

	entry, err := u.entries.GetByID(ctx, entryID)
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if entry.ID == "" {
		return entities.TimeEntry{}, ErrTimeEntryNotFound
	}
	if entry.Validated {
		log.Printf("[consumption][usecase] entry already validated entry_id=%s", entryID)
		return entry, nil
	}

	ticket, err := u.tickets.GetByID(ctx, entry.TicketID)
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if ticket.ID == "" {
		return entities.TimeEntry{}, ErrTicketNotFound
	}

	if !entry.Billable {
		if _, err := u.tickets.AddAccruals(ctx, ticket.ID, entry.Minutes, 0, 0); err != nil {
			return entities.TimeEntry{}, err
		}
		return u.finishValidation(ctx, entry)
	}

	contract, found, err := u.resolver.Resolve(ctx, ticket)
	if err != nil {
		return entities.TimeEntry{}, err
	}

	hours := entry.Hours()
	if found && contract.Type == entities.ContractTypeHoursBank {
		if contract.RemainingHours == nil {
			return entities.TimeEntry{}, ErrInvalidContractState
		}
		// Draw down first: a failed drawdown must leave the ticket counters
		// untouched, otherwise retrying the validation double-counts the
		// minutes.
		if err := u.consumeHours(ctx, contract, hours); err != nil {
			return entities.TimeEntry{}, err
		}
		if _, err := u.tickets.AddAccruals(ctx, ticket.ID, entry.Minutes, entry.Minutes, 0); err != nil {
			return entities.TimeEntry{}, err
		}
		return u.finishValidation(ctx, entry)
	}

	rate := u.fallbackRate
	if found {
		rate = contract.HourlyRate
	}
	if _, err := u.tickets.AddAccruals(ctx, ticket.ID, entry.Minutes, entry.Minutes, rate*hours); err != nil {
		return entities.TimeEntry{}, err
	}
	if u.deriver != nil {
		if _, err := u.deriver.DeriveForValidatedEntry(ctx, ticket, entry, rate); err != nil {
			return entities.TimeEntry{}, err
		}
	}
	return u.finishValidation(ctx, entry)
}

// consumeHours applies the drawdown with an optimistic retry loop. The
// balance is clamped at zero: a draw past the remaining hours is absorbed,
// not carried as debt, and the audit event records the requested amount.
func (u *TimeEntryUseCase) consumeHours(ctx context.Context, contract entities.Contract, requested float64) error {
	for attempt := 0; attempt < consumeRetries; attempt++ {
		if contract.RemainingHours == nil {
			return ErrInvalidContractState
		}
		before := *contract.RemainingHours
		after := before - requested
		if after < 0 {
			after = 0
		}

		updated, err := u.contracts.ConsumeHours(ctx, contract.ID, before, after)
		if err != nil {
			return err
		}
		if updated.ID == "" {
			// Lost the compare-and-set race; re-read and retry.
			log.Printf("[consumption][usecase] drawdown conflict contract_id=%s attempt=%d", contract.ID, attempt+1)
			contract, err = u.contracts.GetByID(ctx, contract.ID)
			if err != nil {
				return err
			}
			if contract.ID == "" {
				return ErrContractNotFound
			}
			continue
		}

		ev := entities.HoursEvent{
			ID:            uuid.NewString(),
			ClientID:      contract.ClientID,
			ContractID:    contract.ID,
			BeforeHours:   before,
			ConsumedHours: requested,
			AfterHours:    after,
			CreatedAt:     time.Now().UTC(),
		}
		if _, err := u.hours.Append(ctx, ev); err != nil {
			return err
		}
		metrics.HoursConsumed.Add(requested)

		if after <= contract.AlertThresholdHours && u.notifier != nil {
			u.notifier.Notify(ctx, fmt.Sprintf(
				"Alert: contract %s of client %s under threshold (%.2fh remaining).",
				contract.ID, contract.ClientID, after,
			))
			metrics.ThresholdNotifications.Inc()
		}
		return nil
	}
	return ErrConsumptionConflict
}

func (u *TimeEntryUseCase) finishValidation(ctx context.Context, entry entities.TimeEntry) (entities.TimeEntry, error) {
	validated, err := u.entries.MarkValidated(ctx, entry.ID)
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if validated.ID == "" {
		// Another writer flipped the flag first; the entry lock makes this
		// unreachable in-process, but honor the store's verdict.
		entry.Validated = true
		return entry, nil
	}
	metrics.EntriesValidated.Inc()
	log.Printf("[consumption][usecase] entry validated entry_id=%s ticket_id=%s billable=%t minutes=%d",
		validated.ID, validated.TicketID, validated.Billable, validated.Minutes)
	return validated, nil
}
