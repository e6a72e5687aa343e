package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"

	"github.com/google/uuid"
)

func (f *engineFixture) seedSubscription(t *testing.T, clientID string, price float64, units int) entities.Contract {
	t.Helper()
	c, err := f.store.Contracts().Create(context.Background(), entities.Contract{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		Type:         entities.ContractTypeSubscription,
		MonthlyPrice: price,
		MonthlyUnits: units,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed subscription contract: %v", err)
	}
	return c
}

func TestDeriveSubscriptionInvoice(t *testing.T) {
	t.Run("price times units", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		contract := f.seedSubscription(t, cli.ID, 15, 20)

		inv, err := f.billing.DeriveSubscriptionInvoice(context.Background(), contract.ID)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		if inv.Amount != 300 {
			t.Fatalf("expected amount 300, got %v", inv.Amount)
		}
		if inv.Status != entities.InvoiceStatusDraft || inv.ClientID != cli.ID {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
		wantDesc := fmt.Sprintf("Monthly subscription for contract #%s", contract.ID)
		if inv.Description != wantDesc {
			t.Fatalf("description mismatch: got %q want %q", inv.Description, wantDesc)
		}
	})

	t.Run("repeat billing appends a new invoice", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		contract := f.seedSubscription(t, cli.ID, 15, 20)

		if _, err := f.billing.DeriveSubscriptionInvoice(context.Background(), contract.ID); err != nil {
			t.Fatalf("first derive: %v", err)
		}
		if _, err := f.billing.DeriveSubscriptionInvoice(context.Background(), contract.ID); err != nil {
			t.Fatalf("second derive: %v", err)
		}
		invoices, _ := f.store.Invoices().List(context.Background())
		if len(invoices) != 2 {
			t.Fatalf("expected two invoices, got %d", len(invoices))
		}
	})

	t.Run("zero price", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		contract := f.seedSubscription(t, cli.ID, 0, 20)

		_, err := f.billing.DeriveSubscriptionInvoice(context.Background(), contract.ID)
		if !errors.Is(err, ErrInvalidSubscriptionSum) {
			t.Fatalf("expected ErrInvalidSubscriptionSum, got %v", err)
		}
	})

	t.Run("not a subscription", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		contract := f.seedTimeAndMaterials(t, cli.ID, 80)

		_, err := f.billing.DeriveSubscriptionInvoice(context.Background(), contract.ID)
		if !errors.Is(err, ErrContractNotSubscription) {
			t.Fatalf("expected ErrContractNotSubscription, got %v", err)
		}
	})

	t.Run("missing contract", func(t *testing.T) {
		f := newEngineFixture(t)
		_, err := f.billing.DeriveSubscriptionInvoice(context.Background(), "ghost")
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})
}

func TestDeriveInvoiceFromEntry(t *testing.T) {
	t.Run("time and materials entry", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		// No per-entry auto-derivation wired so the request path does the work.
		manual := NewTimeEntryUseCase(f.store.TimeEntries(), f.store.Tickets(), f.store.Contracts(), f.store.HoursEvents(),
			NewFirstMatchResolver(f.store.Contracts()), nil, f.notifier, 0)
		contract := f.seedTimeAndMaterials(t, cli.ID, 80)
		ticket := f.seedTicket(t, cli.ID, contract.ID)
		entry, err := manual.AddTimeEntry(context.Background(), AddTimeEntryInput{TicketID: ticket.ID, Minutes: 90, Billable: true})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := manual.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
			t.Fatalf("validate: %v", err)
		}

		inv, err := f.billing.DeriveInvoiceFromEntry(context.Background(), ticket.ID, entry.ID)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		if inv == nil {
			t.Fatalf("expected an invoice")
		}
		if inv.Amount != 120 {
			t.Fatalf("expected amount 120, got %v", inv.Amount)
		}
	})

	t.Run("bank covered entry yields nothing", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		contract := f.seedHoursBank(t, cli.ID, 10, 0)
		ticket := f.seedTicket(t, cli.ID, contract.ID)
		entry := f.addEntry(t, ticket.ID, 60, true)
		if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
			t.Fatalf("validate: %v", err)
		}

		inv, err := f.billing.DeriveInvoiceFromEntry(context.Background(), ticket.ID, entry.ID)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		if inv != nil {
			t.Fatalf("expected no invoice, got %+v", inv)
		}
	})

	t.Run("unvalidated entry", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		ticket := f.seedTicket(t, cli.ID, "")
		entry := f.addEntry(t, ticket.ID, 60, true)

		_, err := f.billing.DeriveInvoiceFromEntry(context.Background(), ticket.ID, entry.ID)
		if !errors.Is(err, ErrEntryNotValidated) {
			t.Fatalf("expected ErrEntryNotValidated, got %v", err)
		}
	})

	t.Run("entry on another ticket", func(t *testing.T) {
		f := newEngineFixture(t)
		cli := f.seedClient(t)
		ticketA := f.seedTicket(t, cli.ID, "")
		ticketB := f.seedTicket(t, cli.ID, "")
		entry := f.addEntry(t, ticketA.ID, 60, true)

		_, err := f.billing.DeriveInvoiceFromEntry(context.Background(), ticketB.ID, entry.ID)
		if !errors.Is(err, ErrEntryNotOnTicket) {
			t.Fatalf("expected ErrEntryNotOnTicket, got %v", err)
		}
	})
}

func TestFallbackRate_SharedByEngineAndRequestPath(t *testing.T) {
	f := newEngineFixtureWithRate(t, 150)
	cli := f.seedClient(t)
	ticket := f.seedTicket(t, cli.ID, "")
	entry := f.addEntry(t, ticket.ID, 60, true)

	// Validation derives inline with the configured rate.
	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}
	invoices, _ := f.store.Invoices().List(context.Background())
	if len(invoices) != 1 {
		t.Fatalf("expected one inline invoice, got %d", len(invoices))
	}
	if invoices[0].Amount != 150 {
		t.Fatalf("expected inline amount 150, got %v", invoices[0].Amount)
	}

	// The request path uses the same configured rate, never the built-in
	// default.
	inv, err := f.billing.DeriveInvoiceFromEntry(context.Background(), ticket.ID, entry.ID)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if inv == nil || inv.Amount != 150 {
		t.Fatalf("expected request-path amount 150, got %+v", inv)
	}

	// Each derivation appends; deduplication is the caller's concern.
	invoices, _ = f.store.Invoices().List(context.Background())
	if len(invoices) != 2 {
		t.Fatalf("expected two invoices, got %d", len(invoices))
	}
}

func TestCreateInvoice(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)

	t.Run("rounds to cents", func(t *testing.T) {
		inv, err := f.billing.CreateInvoice(context.Background(), cli.ID, 99.999, "Manual adjustment")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if inv.Amount != 100 {
			t.Fatalf("expected 100, got %v", inv.Amount)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := f.billing.CreateInvoice(context.Background(), cli.ID, 0, "")
		if !errors.Is(err, ErrInvalidInvoiceAmount) {
			t.Fatalf("expected ErrInvalidInvoiceAmount, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := f.billing.CreateInvoice(context.Background(), "ghost", 50, "")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestGetInvoice(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	inv, err := f.billing.CreateInvoice(context.Background(), cli.ID, 42, "Support retainer")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := f.billing.GetByID(context.Background(), inv.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != inv.ID || got.Amount != 42 {
		t.Fatalf("unexpected invoice: %+v", got)
	}

	if _, err := f.billing.GetByID(context.Background(), "ghost"); !errors.Is(err, ErrInvoiceNotFound) {
		t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
	}
	if _, err := f.billing.GetByID(context.Background(), "  "); !errors.Is(err, ErrInvalidInvoiceID) {
		t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
	}
}
