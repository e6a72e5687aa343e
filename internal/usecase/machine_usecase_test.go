package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

func newMachineFixture(t *testing.T) (*engineFixture, *MachineUseCase) {
	t.Helper()
	f := newEngineFixture(t)
	machines := NewMachineUseCase(f.store.Machines(), f.store.Metrics(), f.store.Alerts(), f.tickets, f.store.Clients())
	return f, machines
}

func TestCreateMachine(t *testing.T) {
	f, machines := newMachineFixture(t)
	cli := f.seedClient(t)

	t.Run("success", func(t *testing.T) {
		m, err := machines.CreateMachine(context.Background(), CreateMachineInput{
			ClientID:   cli.ID,
			Hostname:   "web-01",
			OSName:     "Ubuntu 24.04",
			CPUModel:   "Ryzen 7",
			RAMTotalGB: 32,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if m.ID == "" || m.Hostname != "web-01" {
			t.Fatalf("unexpected machine: %+v", m)
		}
	})

	t.Run("missing hostname", func(t *testing.T) {
		_, err := machines.CreateMachine(context.Background(), CreateMachineInput{ClientID: cli.ID, OSName: "Ubuntu"})
		if !errors.Is(err, ErrInvalidMachineInput) {
			t.Fatalf("expected ErrInvalidMachineInput, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := machines.CreateMachine(context.Background(), CreateMachineInput{ClientID: "ghost", Hostname: "web-01", OSName: "Ubuntu"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestHeartbeatAndMetrics(t *testing.T) {
	f, machines := newMachineFixture(t)
	cli := f.seedClient(t)
	m, err := machines.CreateMachine(context.Background(), CreateMachineInput{
		ClientID: cli.ID, Hostname: "web-01", OSName: "Ubuntu 24.04",
	})
	if err != nil {
		t.Fatalf("create machine: %v", err)
	}

	t.Run("heartbeat updates agent state", func(t *testing.T) {
		got, err := machines.Heartbeat(context.Background(), m.ID, "1.4.2")
		if err != nil {
			t.Fatalf("heartbeat: %v", err)
		}
		if got.AgentVersion != "1.4.2" || got.HeartbeatAt.IsZero() {
			t.Fatalf("unexpected machine after heartbeat: %+v", got)
		}
	})

	t.Run("heartbeat for unknown machine", func(t *testing.T) {
		_, err := machines.Heartbeat(context.Background(), "ghost", "1.4.2")
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("push and list metrics", func(t *testing.T) {
		if _, err := machines.PushMetrics(context.Background(), m.ID, 85, 70, 40); err != nil {
			t.Fatalf("push: %v", err)
		}
		if _, err := machines.PushMetrics(context.Background(), m.ID, 90, 72, 41); err != nil {
			t.Fatalf("push: %v", err)
		}

		samples, err := machines.ListMetrics(context.Background(), m.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(samples) != 2 {
			t.Fatalf("expected 2 samples, got %d", len(samples))
		}
		if samples[0].CPUPercent != 85 {
			t.Fatalf("unexpected first sample: %+v", samples[0])
		}
	})

	t.Run("metrics for unknown machine", func(t *testing.T) {
		if _, err := machines.PushMetrics(context.Background(), "ghost", 1, 1, 1); !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
		if _, err := machines.ListMetrics(context.Background(), "ghost"); !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})
}

func TestIngestAlert(t *testing.T) {
	t.Run("stored without ticket", func(t *testing.T) {
		f, machines := newMachineFixture(t)
		cli := f.seedClient(t)
		m, _ := machines.CreateMachine(context.Background(), CreateMachineInput{ClientID: cli.ID, Hostname: "web-01", OSName: "Ubuntu"})

		alert, err := machines.IngestAlert(context.Background(), IngestAlertInput{
			MachineID: m.ID,
			Title:     "Disk usage above 90%",
		})
		if err != nil {
			t.Fatalf("ingest: %v", err)
		}
		if alert.Severity != entities.AlertSeverityWarning {
			t.Fatalf("expected warning default, got %s", alert.Severity)
		}
		if alert.TicketID != "" {
			t.Fatalf("expected no ticket, got %s", alert.TicketID)
		}
	})

	t.Run("critical alert auto-creates critical ticket", func(t *testing.T) {
		f, machines := newMachineFixture(t)
		cli := f.seedClient(t)
		m, _ := machines.CreateMachine(context.Background(), CreateMachineInput{ClientID: cli.ID, Hostname: "web-01", OSName: "Ubuntu"})

		alert, err := machines.IngestAlert(context.Background(), IngestAlertInput{
			MachineID:        m.ID,
			Severity:         entities.AlertSeverityCritical,
			Title:            "Host unreachable",
			Details:          "No heartbeat for 10 minutes",
			AutoCreateTicket: true,
		})
		if err != nil {
			t.Fatalf("ingest: %v", err)
		}
		if alert.TicketID == "" {
			t.Fatalf("expected attached ticket")
		}

		ticket, err := f.tickets.GetByID(context.Background(), alert.TicketID)
		if err != nil {
			t.Fatalf("get ticket: %v", err)
		}
		if ticket.Priority != entities.TicketPriorityCritical {
			t.Fatalf("expected critical priority, got %s", ticket.Priority)
		}
		if ticket.MachineID != m.ID || ticket.ClientID != cli.ID {
			t.Fatalf("unexpected ticket linkage: %+v", ticket)
		}
		if !strings.HasPrefix(ticket.Title, "[ALERT] ") {
			t.Fatalf("unexpected ticket title: %q", ticket.Title)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		f, machines := newMachineFixture(t)
		cli := f.seedClient(t)
		m, _ := machines.CreateMachine(context.Background(), CreateMachineInput{ClientID: cli.ID, Hostname: "web-01", OSName: "Ubuntu"})

		_, err := machines.IngestAlert(context.Background(), IngestAlertInput{MachineID: m.ID})
		if !errors.Is(err, ErrInvalidAlertInput) {
			t.Fatalf("expected ErrInvalidAlertInput, got %v", err)
		}
	})
}
