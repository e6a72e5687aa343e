package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/adapter/persistence/memory"
	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type captureNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *captureNotifier) Notify(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *captureNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type engineFixture struct {
	store     *memory.Store
	notifier  *captureNotifier
	entries   *TimeEntryUseCase
	billing   *BillingUseCase
	tickets   *TicketUseCase
	contracts *ContractUseCase
}

func newEngineFixture(t *testing.T) *engineFixture {
	return newEngineFixtureWithRate(t, 0)
}

func newEngineFixtureWithRate(t *testing.T, fallbackRate float64) *engineFixture {
	t.Helper()
	store := memory.NewStore()
	notifier := &captureNotifier{}
	resolver := NewFirstMatchResolver(store.Contracts())

	billing := NewBillingUseCase(store.Invoices(), store.Contracts(), store.Tickets(), store.TimeEntries(), store.Clients(), resolver, fallbackRate)
	entries := NewTimeEntryUseCase(store.TimeEntries(), store.Tickets(), store.Contracts(), store.HoursEvents(),
		resolver, billing, notifier, fallbackRate)
	tickets := NewTicketUseCase(store.Tickets(), store.Clients(), store.Prebilling(), resolver)
	contracts := NewContractUseCase(store.Contracts(), store.Clients(), store.HoursEvents())

	return &engineFixture{store: store, notifier: notifier, entries: entries, billing: billing, tickets: tickets, contracts: contracts}
}

func (f *engineFixture) seedClient(t *testing.T) entities.Client {
	t.Helper()
	c, err := f.store.Clients().Create(context.Background(), entities.Client{
		ID:        uuid.NewString(),
		Name:      "Acme Corp",
		Email:     "billing@acme.test",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func (f *engineFixture) seedHoursBank(t *testing.T, clientID string, total, threshold float64) entities.Contract {
	t.Helper()
	remaining := total
	totalCopy := total
	c, err := f.store.Contracts().Create(context.Background(), entities.Contract{
		ID:                  uuid.NewString(),
		ClientID:            clientID,
		Type:                entities.ContractTypeHoursBank,
		TotalHours:          &totalCopy,
		RemainingHours:      &remaining,
		AlertThresholdHours: threshold,
		CreatedAt:           time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed hours bank contract: %v", err)
	}
	return c
}

func (f *engineFixture) seedTimeAndMaterials(t *testing.T, clientID string, rate float64) entities.Contract {
	t.Helper()
	c, err := f.store.Contracts().Create(context.Background(), entities.Contract{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		Type:       entities.ContractTypeTimeAndMaterials,
		HourlyRate: rate,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed time and materials contract: %v", err)
	}
	return c
}

func (f *engineFixture) seedTicket(t *testing.T, clientID, contractID string) entities.Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := f.store.Tickets().Create(context.Background(), entities.Ticket{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		ContractID: contractID,
		Status:     entities.TicketStatusOpen,
		Priority:   entities.TicketPriorityNormal,
		Title:      "Server down",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("seed ticket: %v", err)
	}
	return tk
}

func (f *engineFixture) addEntry(t *testing.T, ticketID string, minutes int, billable bool) entities.TimeEntry {
	t.Helper()
	e, err := f.entries.AddTimeEntry(context.Background(), AddTimeEntryInput{
		TicketID: ticketID,
		Minutes:  minutes,
		Billable: billable,
	})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

func TestValidateTimeEntry_HoursBankDrawdown(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 10, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 150, true)

	validated, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !validated.Validated {
		t.Fatalf("entry not marked validated")
	}

	got, _ := f.store.Contracts().GetByID(context.Background(), contract.ID)
	if got.RemainingHours == nil || *got.RemainingHours != 7.5 {
		t.Fatalf("expected remaining 7.5, got %v", got.RemainingHours)
	}

	events, _ := f.store.HoursEvents().ListByContractID(context.Background(), contract.ID)
	if len(events) != 1 {
		t.Fatalf("expected 1 hours event, got %d", len(events))
	}
	ev := events[0]
	if ev.BeforeHours != 10 || ev.ConsumedHours != 2.5 || ev.AfterHours != 7.5 {
		t.Fatalf("unexpected event: %+v", ev)
	}

	tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.TotalMinutes != 150 || tk.BillableMinutes != 150 || tk.EstimatedBillableAmount != 0 {
		t.Fatalf("unexpected accruals: %+v", tk)
	}

	invoices, _ := f.store.Invoices().List(context.Background())
	if len(invoices) != 0 {
		t.Fatalf("hours bank work must not produce invoices, got %d", len(invoices))
	}
}

func TestValidateTimeEntry_DeficitClampedAtZero(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 1, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 120, true)

	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	got, _ := f.store.Contracts().GetByID(context.Background(), contract.ID)
	if got.RemainingHours == nil || *got.RemainingHours != 0 {
		t.Fatalf("expected remaining 0, got %v", got.RemainingHours)
	}

	events, _ := f.store.HoursEvents().ListByContractID(context.Background(), contract.ID)
	if len(events) != 1 {
		t.Fatalf("expected 1 hours event, got %d", len(events))
	}
	// The audit trail records the requested amount, not the clamped one.
	if events[0].ConsumedHours != 2 || events[0].AfterHours != 0 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
}

func TestValidateTimeEntry_ThresholdNotification(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 6, 5)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 90, true)

	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	msgs := f.notifier.all()
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(msgs))
	}
	want := fmt.Sprintf("Alert: contract %s of client %s under threshold (4.50h remaining).", contract.ID, cli.ID)
	if msgs[0] != want {
		t.Fatalf("notification mismatch:\n got %q\nwant %q", msgs[0], want)
	}

	// Re-validation is a no-op and must not notify again.
	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("re-validate: %v", err)
	}
	if got := len(f.notifier.all()); got != 1 {
		t.Fatalf("expected still one notification, got %d", got)
	}
}

func TestValidateTimeEntry_TimeAndMaterialsAccrual(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedTimeAndMaterials(t, cli.ID, 80)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 90, true)

	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.EstimatedBillableAmount != 120 {
		t.Fatalf("expected accrued amount 120, got %v", tk.EstimatedBillableAmount)
	}

	invoices, _ := f.store.Invoices().List(context.Background())
	if len(invoices) != 1 {
		t.Fatalf("expected one derived invoice, got %d", len(invoices))
	}
	inv := invoices[0]
	if inv.Amount != 120 || inv.Status != entities.InvoiceStatusDraft || inv.ClientID != cli.ID {
		t.Fatalf("unexpected invoice: %+v", inv)
	}
	wantDesc := fmt.Sprintf("Automatic billing for ticket #%s", ticket.ID)
	if inv.Description != wantDesc {
		t.Fatalf("description mismatch: got %q want %q", inv.Description, wantDesc)
	}
}

func TestValidateTimeEntry_FallbackRateWithoutContract(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	ticket := f.seedTicket(t, cli.ID, "")
	entry := f.addEntry(t, ticket.ID, 60, true)

	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.EstimatedBillableAmount != DefaultHourlyRate {
		t.Fatalf("expected fallback accrual %v, got %v", DefaultHourlyRate, tk.EstimatedBillableAmount)
	}
}

func TestValidateTimeEntry_NonBillable(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 10, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 45, false)

	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.TotalMinutes != 45 || tk.BillableMinutes != 0 || tk.EstimatedBillableAmount != 0 {
		t.Fatalf("unexpected accruals: %+v", tk)
	}

	got, _ := f.store.Contracts().GetByID(context.Background(), contract.ID)
	if *got.RemainingHours != 10 {
		t.Fatalf("non-billable work must not consume hours, remaining %v", *got.RemainingHours)
	}
}

func TestValidateTimeEntry_IdempotentRevalidation(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 10, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 60, true)

	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	again, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if !again.Validated {
		t.Fatalf("expected validated entry back")
	}

	got, _ := f.store.Contracts().GetByID(context.Background(), contract.ID)
	if *got.RemainingHours != 9 {
		t.Fatalf("re-validation must not double-consume, remaining %v", *got.RemainingHours)
	}
	tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.TotalMinutes != 60 {
		t.Fatalf("re-validation must not double-accrue, total minutes %d", tk.TotalMinutes)
	}
	events, _ := f.store.HoursEvents().ListByContractID(context.Background(), contract.ID)
	if len(events) != 1 {
		t.Fatalf("expected single audit event, got %d", len(events))
	}
}

func TestValidateTimeEntry_Errors(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		f := newEngineFixture(t)
		_, err := f.entries.ValidateTimeEntry(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidTimeEntryID) {
			t.Fatalf("expected ErrInvalidTimeEntryID, got %v", err)
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		f := newEngineFixture(t)
		_, err := f.entries.ValidateTimeEntry(context.Background(), "nope")
		if !errors.Is(err, ErrTimeEntryNotFound) {
			t.Fatalf("expected ErrTimeEntryNotFound, got %v", err)
		}
	})

	t.Run("missing contract reference", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		ticket := f.seedTicket(t, cli.ID, "ghost-contract")
		entry := f.addEntry(t, ticket.ID, 30, true)

		_, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID)
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}

		// Failed validation must not leave partial accruals behind.
		tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
		if tk.TotalMinutes != 0 {
			t.Fatalf("expected no accruals after failed validation, got %+v", tk)
		}
	})

	t.Run("hours bank without balance attribute", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		broken, _ := f.store.Contracts().Create(context.Background(), entities.Contract{
			ID:        uuid.NewString(),
			ClientID:  cli.ID,
			Type:      entities.ContractTypeHoursBank,
			CreatedAt: time.Now().UTC(),
		})
		ticket := f.seedTicket(t, cli.ID, broken.ID)
		entry := f.addEntry(t, ticket.ID, 30, true)

		_, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID)
		if !errors.Is(err, ErrInvalidContractState) {
			t.Fatalf("expected ErrInvalidContractState, got %v", err)
		}
	})
}

func TestAddTimeEntry_Validation(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	ticket := f.seedTicket(t, cli.ID, "")

	if _, err := f.entries.AddTimeEntry(context.Background(), AddTimeEntryInput{TicketID: "", Minutes: 30}); !errors.Is(err, ErrInvalidTicketRef) {
		t.Fatalf("expected ErrInvalidTicketRef, got %v", err)
	}
	if _, err := f.entries.AddTimeEntry(context.Background(), AddTimeEntryInput{TicketID: ticket.ID, Minutes: 0}); !errors.Is(err, ErrInvalidMinutes) {
		t.Fatalf("expected ErrInvalidMinutes, got %v", err)
	}
	if _, err := f.entries.AddTimeEntry(context.Background(), AddTimeEntryInput{TicketID: "ghost", Minutes: 30}); !errors.Is(err, ErrTicketNotFound) {
		t.Fatalf("expected ErrTicketNotFound, got %v", err)
	}

	e, err := f.entries.AddTimeEntry(context.Background(), AddTimeEntryInput{TicketID: ticket.ID, Minutes: 30, Billable: true})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Validated {
		t.Fatalf("new entries must start unvalidated")
	}
}

// contendedContracts loses the compare-and-set a fixed number of times
// before delegating to the real store.
type contendedContracts struct {
	interfaces.IContractRepository
	losses int
}

func (c *contendedContracts) ConsumeHours(ctx context.Context, id string, before, after float64) (entities.Contract, error) {
	if c.losses > 0 {
		c.losses--
		return entities.Contract{}, nil
	}
	return c.IContractRepository.ConsumeHours(ctx, id, before, after)
}

func TestValidateTimeEntry_DrawdownConflictLeavesTicketUntouched(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 10, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)

	contracts := &contendedContracts{IContractRepository: f.store.Contracts(), losses: consumeRetries}
	engine := NewTimeEntryUseCase(f.store.TimeEntries(), f.store.Tickets(), contracts, f.store.HoursEvents(),
		NewFirstMatchResolver(contracts), nil, f.notifier, 0)

	entry, err := engine.AddTimeEntry(context.Background(), AddTimeEntryInput{TicketID: ticket.ID, Minutes: 60, Billable: true})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := engine.ValidateTimeEntry(context.Background(), entry.ID); !errors.Is(err, ErrConsumptionConflict) {
		t.Fatalf("expected ErrConsumptionConflict, got %v", err)
	}

	// The failed drawdown must leave nothing behind: no accruals, no audit
	// event, no balance change, entry still unvalidated.
	tk, _ := f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.TotalMinutes != 0 || tk.BillableMinutes != 0 {
		t.Fatalf("expected untouched accruals, got %+v", tk)
	}
	got, _ := f.store.Contracts().GetByID(context.Background(), contract.ID)
	if *got.RemainingHours != 10 {
		t.Fatalf("expected remaining 10, got %v", *got.RemainingHours)
	}
	events, _ := f.store.HoursEvents().ListByContractID(context.Background(), contract.ID)
	if len(events) != 0 {
		t.Fatalf("expected no audit events, got %d", len(events))
	}
	e, _ := f.store.TimeEntries().GetByID(context.Background(), entry.ID)
	if e.Validated {
		t.Fatalf("entry must stay unvalidated after a conflict")
	}

	// Once the contention clears, retrying applies everything exactly once.
	validated, err := engine.ValidateTimeEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !validated.Validated {
		t.Fatalf("expected validated entry after retry")
	}
	tk, _ = f.store.Tickets().GetByID(context.Background(), ticket.ID)
	if tk.TotalMinutes != 60 || tk.BillableMinutes != 60 {
		t.Fatalf("retry must count the minutes exactly once, got %+v", tk)
	}
	got, _ = f.store.Contracts().GetByID(context.Background(), contract.ID)
	if *got.RemainingHours != 9 {
		t.Fatalf("expected remaining 9 after retry, got %v", *got.RemainingHours)
	}
	events, _ = f.store.HoursEvents().ListByContractID(context.Background(), contract.ID)
	if len(events) != 1 {
		t.Fatalf("expected single audit event after retry, got %d", len(events))
	}
}

func TestValidateTimeEntry_ConcurrentSameEntry(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 10, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 60, true)

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = f.entries.ValidateTimeEntry(context.Background(), entry.ID)
		}()
	}
	wg.Wait()

	got, _ := f.store.Contracts().GetByID(context.Background(), contract.ID)
	if *got.RemainingHours != 9 {
		t.Fatalf("concurrent validation consumed more than once, remaining %v", *got.RemainingHours)
	}
	events, _ := f.store.HoursEvents().ListByContractID(context.Background(), contract.ID)
	if len(events) != 1 {
		t.Fatalf("expected single audit event, got %d", len(events))
	}
}
