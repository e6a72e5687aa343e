package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/infrastructure/metrics"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvalidInvoiceID        = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount    = errors.New("invoice amount must be positive")
	ErrContractNotSubscription = errors.New("contract is not a subscription")
	ErrInvalidSubscriptionSum  = errors.New("subscription amount is not positive")
	ErrEntryNotOnTicket        = errors.New("time entry does not belong to ticket")
	ErrEntryNotValidated       = errors.New("time entry is not validated")
)

// IBillingUseCase derives invoices from validated work and from
// subscription contracts, and manages the append-only invoice log.

type IBillingUseCase interface {
	DeriveInvoiceFromEntry(ctx context.Context, ticketID, entryID string) (*entities.Invoice, error)
	DeriveSubscriptionInvoice(ctx context.Context, contractID string) (entities.Invoice, error)
	CreateInvoice(ctx context.Context, clientID string, amount float64, description string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
}

type BillingUseCase struct {
	invoices  interfaces.IInvoiceRepository
	contracts interfaces.IContractRepository
	tickets   interfaces.ITicketRepository
	entries   interfaces.ITimeEntryRepository
	clients   interfaces.IClientRepository
	resolver  IContractResolver

	fallbackRate float64
}

var _ IBillingUseCase = (*BillingUseCase)(nil)
var _ IEntryInvoiceDeriver = (*BillingUseCase)(nil)

func NewBillingUseCase(
	invoices interfaces.IInvoiceRepository,
	contracts interfaces.IContractRepository,
	tickets interfaces.ITicketRepository,
	entries interfaces.ITimeEntryRepository,
	clients interfaces.IClientRepository,
	resolver IContractResolver,
	fallbackRate float64,
) *BillingUseCase {
	if fallbackRate <= 0 {
		fallbackRate = DefaultHourlyRate
	}
	return &BillingUseCase{
		invoices:     invoices,
		contracts:    contracts,
		tickets:      tickets,
		entries:      entries,
		clients:      clients,
		resolver:     resolver,
		fallbackRate: fallbackRate,
	}
}

// DeriveForValidatedEntry produces the per-entry draft invoice for a
// time-and-materials style accrual. Nothing is produced for non-billable
// entries or when the resolved rate is not positive.
func (u *BillingUseCase) DeriveForValidatedEntry(ctx context.Context, ticket entities.Ticket, entry entities.TimeEntry, rate float64) (*entities.Invoice, error) {
	if !entry.Billable || rate <= 0 {
		return nil, nil
	}

	inv := entities.Invoice{
		ID:          uuid.NewString(),
		ClientID:    ticket.ClientID,
		Status:      entities.InvoiceStatusDraft,
		Amount:      round2(rate * entry.Hours()),
		Description: fmt.Sprintf("Automatic billing for ticket #%s", ticket.ID),
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return nil, err
	}
	metrics.InvoicesDerived.WithLabelValues("time_entry").Inc()
	log.Printf("[billing][usecase] per-entry invoice invoice_id=%s ticket_id=%s amount=%.2f", created.ID, ticket.ID, created.Amount)
	return &created, nil
}

// DeriveInvoiceFromEntry is the request-facing path of the per-entry
// derivation. It resolves the governing contract itself and returns nil
// without error when the entry is hours-bank covered, non-billable, or the
// resolved rate is not positive. Like the subscription path, each call
// appends a new draft invoice; deduplication against the invoice the engine
// may have derived inline at validation time is the caller's concern.
func (u *BillingUseCase) DeriveInvoiceFromEntry(ctx context.Context, ticketID, entryID string) (*entities.Invoice, error) {
	ticketID = strings.TrimSpace(ticketID)
	entryID = strings.TrimSpace(entryID)
	if ticketID == "" {
		return nil, ErrInvalidTicketID
	}
	if entryID == "" {
		return nil, ErrInvalidTimeEntryID
	}

	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.ID == "" {
		return nil, ErrTicketNotFound
	}

	entry, err := u.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		return nil, ErrTimeEntryNotFound
	}
	if entry.TicketID != ticket.ID {
		return nil, ErrEntryNotOnTicket
	}
	if !entry.Validated {
		return nil, ErrEntryNotValidated
	}

	contract, found, err := u.resolver.Resolve(ctx, ticket)
	if err != nil {
		return nil, err
	}
	if found && contract.Type == entities.ContractTypeHoursBank {
		// Hours-bank covered work never produces a per-entry invoice.
		return nil, nil
	}

	rate := u.fallbackRate
	if found {
		rate = contract.HourlyRate
	}
	return u.DeriveForValidatedEntry(ctx, ticket, entry, rate)
}

// DeriveSubscriptionInvoice bills one period of a subscription contract.
// Repeated calls produce repeated draft invoices; period idempotency is the
// caller's concern.
func (u *BillingUseCase) DeriveSubscriptionInvoice(ctx context.Context, contractID string) (entities.Invoice, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.Invoice{}, ErrInvalidContractID
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if contract.ID == "" {
		return entities.Invoice{}, ErrContractNotFound
	}
	if contract.Type != entities.ContractTypeSubscription {
		return entities.Invoice{}, ErrContractNotSubscription
	}

	amount := round2(contract.MonthlyPrice * float64(contract.MonthlyUnits))
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidSubscriptionSum
	}

	inv := entities.Invoice{
		ID:          uuid.NewString(),
		ClientID:    contract.ClientID,
		Status:      entities.InvoiceStatusDraft,
		Amount:      amount,
		Description: fmt.Sprintf("Monthly subscription for contract #%s", contract.ID),
		CreatedAt:   time.Now().UTC(),
	}
	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		return entities.Invoice{}, err
	}
	metrics.InvoicesDerived.WithLabelValues("subscription").Inc()
	log.Printf("[billing][usecase] subscription invoice invoice_id=%s contract_id=%s amount=%.2f", created.ID, contract.ID, created.Amount)
	return created, nil
}

func (u *BillingUseCase) CreateInvoice(ctx context.Context, clientID string, amount float64, description string) (entities.Invoice, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Invoice{}, ErrInvalidClientID
	}
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}

	cli, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if cli.ID == "" {
		return entities.Invoice{}, ErrClientNotFound
	}

	inv := entities.Invoice{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		Status:      entities.InvoiceStatusDraft,
		Amount:      round2(amount),
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	return u.invoices.Create(ctx, inv)
}

func (u *BillingUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *BillingUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.invoices.List(ctx)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
