package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/infrastructure/metrics"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrInvalidTicketID     = errors.New("invalid ticket id")
	ErrInvalidTicketInput  = errors.New("invalid ticket payload")
	ErrInvalidTicketStatus = errors.New("invalid ticket status")
	ErrTicketAlreadyClosed = errors.New("ticket is closed")
)

// ITicketUseCase governs the ticket lifecycle, including the close decision
// that feeds the pre-billing queue.

type ITicketUseCase interface {
	CreateTicket(ctx context.Context, in CreateTicketInput) (entities.Ticket, error)
	GetByID(ctx context.Context, id string) (entities.Ticket, error)
	List(ctx context.Context) ([]entities.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error)
	CloseTicket(ctx context.Context, id string) (entities.Ticket, error)
	PrebillingQueue(ctx context.Context) ([]string, error)
}

type CreateTicketInput struct {
	ClientID     string
	ContractID   string
	MachineID    string
	TechnicianID string
	Title        string
	Description  string
	Priority     entities.TicketPriority
}

type TicketUseCase struct {
	tickets    interfaces.ITicketRepository
	clients    interfaces.IClientRepository
	prebilling interfaces.IPrebillingQueueRepository
	resolver   IContractResolver
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(
	tickets interfaces.ITicketRepository,
	clients interfaces.IClientRepository,
	prebilling interfaces.IPrebillingQueueRepository,
	resolver IContractResolver,
) *TicketUseCase {
	return &TicketUseCase{tickets: tickets, clients: clients, prebilling: prebilling, resolver: resolver}
}

func (u *TicketUseCase) CreateTicket(ctx context.Context, in CreateTicketInput) (entities.Ticket, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Title = strings.TrimSpace(in.Title)
	if in.ClientID == "" || in.Title == "" {
		return entities.Ticket{}, ErrInvalidTicketInput
	}
	if in.Priority == "" {
		in.Priority = entities.TicketPriorityNormal
	}
	if !in.Priority.Valid() {
		return entities.Ticket{}, ErrInvalidTicketInput
	}

	cli, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Ticket{}, err
	}
	if cli.ID == "" {
		return entities.Ticket{}, ErrClientNotFound
	}

	now := time.Now().UTC()
	t := entities.Ticket{
		ID:           uuid.NewString(),
		ClientID:     in.ClientID,
		ContractID:   strings.TrimSpace(in.ContractID),
		MachineID:    strings.TrimSpace(in.MachineID),
		TechnicianID: strings.TrimSpace(in.TechnicianID),
		Status:       entities.TicketStatusOpen,
		Priority:     in.Priority,
		Title:        in.Title,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.tickets.Create(ctx, t)
}

func (u *TicketUseCase) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return t, nil
}

func (u *TicketUseCase) List(ctx context.Context) ([]entities.Ticket, error) {
	return u.tickets.List(ctx)
}

// UpdateStatus sets any non-terminal status. Closing must go through
// CloseTicket so the pre-billing decision is never skipped; a closed ticket
// rejects every further transition.
func (u *TicketUseCase) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}
	if !status.Valid() {
		return entities.Ticket{}, ErrInvalidTicketStatus
	}
	if status == entities.TicketStatusClosed {
		return u.CloseTicket(ctx, id)
	}

	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	if t.Status.IsTerminal() {
		return entities.Ticket{}, ErrTicketAlreadyClosed
	}

	return u.tickets.UpdateStatus(ctx, id, status)
}

// CloseTicket sets the terminal status and decides the pre-billing enqueue:
// a ticket with billable minutes not covered by an hours-bank contract is
// appended, once, to the pre-billing queue in close order. Closing an
// already closed ticket is idempotent.
func (u *TicketUseCase) CloseTicket(ctx context.Context, id string) (entities.Ticket, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Ticket{}, ErrInvalidTicketID
	}

	t, err := u.tickets.GetByID(ctx, id)
	if err != nil {
		return entities.Ticket{}, err
	}
	if t.ID == "" {
		return entities.Ticket{}, ErrTicketNotFound
	}
	if t.Status.IsTerminal() {
		return t, nil
	}

	t, err = u.tickets.UpdateStatus(ctx, id, entities.TicketStatusClosed)
	if err != nil {
		return entities.Ticket{}, err
	}

	contract, found, err := u.resolver.Resolve(ctx, t)
	if err != nil {
		return entities.Ticket{}, err
	}
	coveredByBank := found && contract.Type == entities.ContractTypeHoursBank && t.BillableMinutes > 0

	if t.BillableMinutes > 0 && !coveredByBank {
		t, err = u.tickets.MarkPrebillingQueued(ctx, id)
		if err != nil {
			return entities.Ticket{}, err
		}
		if err := u.prebilling.Enqueue(ctx, id); err != nil {
			return entities.Ticket{}, err
		}
		metrics.TicketsPrebilled.Inc()
		log.Printf("[ticket][usecase] prebilling queued ticket_id=%s billable_minutes=%d estimated_amount=%.2f",
			id, t.BillableMinutes, t.EstimatedBillableAmount)
	}

	return t, nil
}

func (u *TicketUseCase) PrebillingQueue(ctx context.Context) ([]string, error) {
	return u.prebilling.List(ctx)
}
