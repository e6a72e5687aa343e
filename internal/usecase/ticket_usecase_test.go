package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

func TestCreateTicket(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)

	t.Run("success with default priority", func(t *testing.T) {
		tk, err := f.tickets.CreateTicket(context.Background(), CreateTicketInput{
			ClientID: cli.ID,
			Title:    "Printer jam",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if tk.Status != entities.TicketStatusOpen {
			t.Fatalf("expected open status, got %s", tk.Status)
		}
		if tk.Priority != entities.TicketPriorityNormal {
			t.Fatalf("expected normal priority, got %s", tk.Priority)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := f.tickets.CreateTicket(context.Background(), CreateTicketInput{ClientID: cli.ID})
		if !errors.Is(err, ErrInvalidTicketInput) {
			t.Fatalf("expected ErrInvalidTicketInput, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		_, err := f.tickets.CreateTicket(context.Background(), CreateTicketInput{
			ClientID: cli.ID,
			Title:    "Printer jam",
			Priority: entities.TicketPriority("whenever"),
		})
		if !errors.Is(err, ErrInvalidTicketInput) {
			t.Fatalf("expected ErrInvalidTicketInput, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := f.tickets.CreateTicket(context.Background(), CreateTicketInput{
			ClientID: "ghost",
			Title:    "Printer jam",
		})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestCloseTicket_EnqueuesUncoveredBillableWork(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedTimeAndMaterials(t, cli.ID, 80)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 60, true)
	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	closed, err := f.tickets.CloseTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Status != entities.TicketStatusClosed {
		t.Fatalf("expected closed status, got %s", closed.Status)
	}
	if !closed.PrebillingQueued {
		t.Fatalf("expected prebilling_queued flag set")
	}

	queue, err := f.tickets.PrebillingQueue(context.Background())
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 1 || queue[0] != ticket.ID {
		t.Fatalf("expected queue [%s], got %v", ticket.ID, queue)
	}
}

func TestCloseTicket_BankCoveredWorkNotEnqueued(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedHoursBank(t, cli.ID, 10, 0)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 60, true)
	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	closed, err := f.tickets.CloseTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.PrebillingQueued {
		t.Fatalf("bank-covered ticket must not be queued")
	}

	queue, _ := f.tickets.PrebillingQueue(context.Background())
	if len(queue) != 0 {
		t.Fatalf("expected empty queue, got %v", queue)
	}
}

func TestCloseTicket_NoBillableWorkNotEnqueued(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	ticket := f.seedTicket(t, cli.ID, "")
	entry := f.addEntry(t, ticket.ID, 60, false)
	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if _, err := f.tickets.CloseTicket(context.Background(), ticket.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	queue, _ := f.tickets.PrebillingQueue(context.Background())
	if len(queue) != 0 {
		t.Fatalf("expected empty queue, got %v", queue)
	}
}

func TestCloseTicket_IdempotentAndTerminal(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedTimeAndMaterials(t, cli.ID, 80)
	ticket := f.seedTicket(t, cli.ID, contract.ID)
	entry := f.addEntry(t, ticket.ID, 60, true)
	if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("validate: %v", err)
	}

	if _, err := f.tickets.CloseTicket(context.Background(), ticket.ID); err != nil {
		t.Fatalf("first close: %v", err)
	}
	again, err := f.tickets.CloseTicket(context.Background(), ticket.ID)
	if err != nil {
		t.Fatalf("second close: %v", err)
	}
	if again.Status != entities.TicketStatusClosed {
		t.Fatalf("expected closed status, got %s", again.Status)
	}

	// A second close must not enqueue the ticket twice.
	queue, _ := f.tickets.PrebillingQueue(context.Background())
	if len(queue) != 1 {
		t.Fatalf("expected single queue entry, got %v", queue)
	}

	// Closed tickets reject every further transition.
	if _, err := f.tickets.UpdateStatus(context.Background(), ticket.ID, entities.TicketStatusInProgress); !errors.Is(err, ErrTicketAlreadyClosed) {
		t.Fatalf("expected ErrTicketAlreadyClosed, got %v", err)
	}
}

func TestCloseTicket_QueuePreservesCloseOrder(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	contract := f.seedTimeAndMaterials(t, cli.ID, 50)

	var ids []string
	for i := 0; i < 3; i++ {
		tk := f.seedTicket(t, cli.ID, contract.ID)
		entry := f.addEntry(t, tk.ID, 30, true)
		if _, err := f.entries.ValidateTimeEntry(context.Background(), entry.ID); err != nil {
			t.Fatalf("validate: %v", err)
		}
		ids = append(ids, tk.ID)
	}
	// Close in reverse creation order; the queue must follow close order.
	for i := len(ids) - 1; i >= 0; i-- {
		if _, err := f.tickets.CloseTicket(context.Background(), ids[i]); err != nil {
			t.Fatalf("close %s: %v", ids[i], err)
		}
	}

	queue, err := f.tickets.PrebillingQueue(context.Background())
	if err != nil {
		t.Fatalf("queue: %v", err)
	}
	if len(queue) != 3 {
		t.Fatalf("expected 3 queued tickets, got %d", len(queue))
	}
	for i := 0; i < 3; i++ {
		if queue[i] != ids[2-i] {
			t.Fatalf("queue out of order at %d: got %s want %s", i, queue[i], ids[2-i])
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newEngineFixture(t)
	cli := f.seedClient(t)
	ticket := f.seedTicket(t, cli.ID, "")

	t.Run("valid transition", func(t *testing.T) {
		tk, err := f.tickets.UpdateStatus(context.Background(), ticket.ID, entities.TicketStatusInProgress)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if tk.Status != entities.TicketStatusInProgress {
			t.Fatalf("expected in_progress, got %s", tk.Status)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := f.tickets.UpdateStatus(context.Background(), ticket.ID, entities.TicketStatus("frozen"))
		if !errors.Is(err, ErrInvalidTicketStatus) {
			t.Fatalf("expected ErrInvalidTicketStatus, got %v", err)
		}
	})

	t.Run("closing routes through the close path", func(t *testing.T) {
		tk, err := f.tickets.UpdateStatus(context.Background(), ticket.ID, entities.TicketStatusClosed)
		if err != nil {
			t.Fatalf("update to closed: %v", err)
		}
		if tk.Status != entities.TicketStatusClosed {
			t.Fatalf("expected closed, got %s", tk.Status)
		}
	})

	t.Run("missing ticket", func(t *testing.T) {
		_, err := f.tickets.UpdateStatus(context.Background(), "ghost", entities.TicketStatusInProgress)
		if !errors.Is(err, ErrTicketNotFound) {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})
}
