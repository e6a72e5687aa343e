package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMachineNotFound     = errors.New("machine not found")
	ErrInvalidMachineID    = errors.New("invalid machine id")
	ErrInvalidMachineInput = errors.New("invalid machine payload")
	ErrInvalidAlertInput   = errors.New("invalid alert payload")
)

// IMachineUseCase is the RMM boundary: machine registry, agent heartbeats,
// metric samples and alert ingestion. An alert may auto-create a support
// ticket, which is where this boundary touches the billing engine.

type IMachineUseCase interface {
	CreateMachine(ctx context.Context, in CreateMachineInput) (entities.Machine, error)
	ListMachines(ctx context.Context) ([]entities.Machine, error)
	Heartbeat(ctx context.Context, machineID, agentVersion string) (entities.Machine, error)
	PushMetrics(ctx context.Context, machineID string, cpu, ram, disk float64) (entities.MetricSample, error)
	ListMetrics(ctx context.Context, machineID string) ([]entities.MetricSample, error)
	IngestAlert(ctx context.Context, in IngestAlertInput) (entities.Alert, error)
}

type CreateMachineInput struct {
	ClientID   string
	Hostname   string
	OSName     string
	CPUModel   string
	RAMTotalGB float64
}

type IngestAlertInput struct {
	MachineID        string
	Severity         entities.AlertSeverity
	Title            string
	Details          string
	AutoCreateTicket bool
}

type MachineUseCase struct {
	machines interfaces.IMachineRepository
	metrics  interfaces.IMetricRepository
	alerts   interfaces.IAlertRepository
	tickets  ITicketUseCase
	clients  interfaces.IClientRepository
}

var _ IMachineUseCase = (*MachineUseCase)(nil)

func NewMachineUseCase(
	machines interfaces.IMachineRepository,
	metrics interfaces.IMetricRepository,
	alerts interfaces.IAlertRepository,
	tickets ITicketUseCase,
	clients interfaces.IClientRepository,
) *MachineUseCase {
	return &MachineUseCase{machines: machines, metrics: metrics, alerts: alerts, tickets: tickets, clients: clients}
}

func (u *MachineUseCase) CreateMachine(ctx context.Context, in CreateMachineInput) (entities.Machine, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.Hostname = strings.TrimSpace(in.Hostname)
	in.OSName = strings.TrimSpace(in.OSName)
	if in.ClientID == "" || in.Hostname == "" || in.OSName == "" {
		return entities.Machine{}, ErrInvalidMachineInput
	}

	cli, err := u.clients.GetByID(ctx, in.ClientID)
	if err != nil {
		return entities.Machine{}, err
	}
	if cli.ID == "" {
		return entities.Machine{}, ErrClientNotFound
	}

	m := entities.Machine{
		ID:         uuid.NewString(),
		ClientID:   in.ClientID,
		Hostname:   in.Hostname,
		OSName:     in.OSName,
		CPUModel:   strings.TrimSpace(in.CPUModel),
		RAMTotalGB: in.RAMTotalGB,
		CreatedAt:  time.Now().UTC(),
	}
	return u.machines.Create(ctx, m)
}

func (u *MachineUseCase) ListMachines(ctx context.Context) ([]entities.Machine, error) {
	return u.machines.List(ctx)
}

func (u *MachineUseCase) Heartbeat(ctx context.Context, machineID, agentVersion string) (entities.Machine, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return entities.Machine{}, ErrInvalidMachineID
	}

	m, err := u.machines.RecordHeartbeat(ctx, machineID, strings.TrimSpace(agentVersion), time.Now().UTC())
	if err != nil {
		return entities.Machine{}, err
	}
	if m.ID == "" {
		return entities.Machine{}, ErrMachineNotFound
	}
	return m, nil
}

func (u *MachineUseCase) PushMetrics(ctx context.Context, machineID string, cpu, ram, disk float64) (entities.MetricSample, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return entities.MetricSample{}, ErrInvalidMachineID
	}

	m, err := u.machines.GetByID(ctx, machineID)
	if err != nil {
		return entities.MetricSample{}, err
	}
	if m.ID == "" {
		return entities.MetricSample{}, ErrMachineNotFound
	}

	s := entities.MetricSample{
		ID:          uuid.NewString(),
		MachineID:   machineID,
		CPUPercent:  cpu,
		RAMPercent:  ram,
		DiskPercent: disk,
		CreatedAt:   time.Now().UTC(),
	}
	return u.metrics.Create(ctx, s)
}

func (u *MachineUseCase) ListMetrics(ctx context.Context, machineID string) ([]entities.MetricSample, error) {
	machineID = strings.TrimSpace(machineID)
	if machineID == "" {
		return nil, ErrInvalidMachineID
	}

	m, err := u.machines.GetByID(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if m.ID == "" {
		return nil, ErrMachineNotFound
	}
	return u.metrics.ListByMachineID(ctx, machineID)
}

// IngestAlert stores a monitoring alert and, when requested, opens a ticket
// for the machine's client. Critical alerts open critical-priority tickets,
// everything else opens at normal priority.
func (u *MachineUseCase) IngestAlert(ctx context.Context, in IngestAlertInput) (entities.Alert, error) {
	in.MachineID = strings.TrimSpace(in.MachineID)
	in.Title = strings.TrimSpace(in.Title)
	if in.MachineID == "" {
		return entities.Alert{}, ErrInvalidMachineID
	}
	if in.Title == "" {
		return entities.Alert{}, ErrInvalidAlertInput
	}
	if in.Severity == "" {
		in.Severity = entities.AlertSeverityWarning
	}

	machine, err := u.machines.GetByID(ctx, in.MachineID)
	if err != nil {
		return entities.Alert{}, err
	}
	if machine.ID == "" {
		return entities.Alert{}, ErrMachineNotFound
	}

	alert := entities.Alert{
		ID:        uuid.NewString(),
		MachineID: in.MachineID,
		Severity:  in.Severity,
		Title:     in.Title,
		Details:   in.Details,
		CreatedAt: time.Now().UTC(),
	}
	alert, err = u.alerts.Create(ctx, alert)
	if err != nil {
		return entities.Alert{}, err
	}

	if in.AutoCreateTicket {
		priority := entities.TicketPriorityNormal
		if in.Severity == entities.AlertSeverityCritical {
			priority = entities.TicketPriorityCritical
		}
		ticket, err := u.tickets.CreateTicket(ctx, CreateTicketInput{
			ClientID:    machine.ClientID,
			MachineID:   machine.ID,
			Title:       fmt.Sprintf("[ALERT] %s", alert.Title),
			Description: alert.Details,
			Priority:    priority,
		})
		if err != nil {
			return entities.Alert{}, err
		}
		alert, err = u.alerts.AttachTicket(ctx, alert.ID, ticket.ID)
		if err != nil {
			return entities.Alert{}, err
		}
		log.Printf("[rmm][usecase] ticket auto-created from alert alert_id=%s ticket_id=%s priority=%s",
			alert.ID, ticket.ID, priority)
	}

	return alert, nil
}
