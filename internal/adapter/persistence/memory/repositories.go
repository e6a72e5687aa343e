package memory

import (
	"context"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"
)

// ClientRepository

type ClientRepository struct{ s *Store }

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = c
	return c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.clients[id], nil
}

func (r *ClientRepository) List(ctx context.Context) ([]entities.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, c)
	}
	return sortedByCreation(out, func(c entities.Client) int64 { return c.CreatedAt.UnixNano() }), nil
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.clients), nil
}

// TechnicianRepository

type TechnicianRepository struct{ s *Store }

var _ interfaces.ITechnicianRepository = (*TechnicianRepository)(nil)

func (r *TechnicianRepository) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.technicians[t.ID] = t
	return t, nil
}

func (r *TechnicianRepository) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.technicians[id], nil
}

func (r *TechnicianRepository) List(ctx context.Context) ([]entities.Technician, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Technician, 0, len(r.s.technicians))
	for _, t := range r.s.technicians {
		out = append(out, t)
	}
	return sortedByCreation(out, func(t entities.Technician) int64 { return t.CreatedAt.UnixNano() }), nil
}

// ContractRepository

type ContractRepository struct{ s *Store }

var _ interfaces.IContractRepository = (*ContractRepository)(nil)

func (r *ContractRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.contracts[c.ID] = c
	r.s.contractOrder = append(r.s.contractOrder, c.ID)
	return c, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.contracts[id], nil
}

// ListByClientID preserves creation order so the first-match resolution
// policy is deterministic.
func (r *ContractRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Contract
	for _, id := range r.s.contractOrder {
		if c, ok := r.s.contracts[id]; ok && c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out, nil
}

// ConsumeHours applies the drawdown only while the stored balance still
// equals before, mirroring the DynamoDB conditional update.
func (r *ContractRepository) ConsumeHours(ctx context.Context, id string, before, after float64) (entities.Contract, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.contracts[id]
	if !ok || c.RemainingHours == nil || *c.RemainingHours != before {
		return entities.Contract{}, nil
	}
	remaining := after
	c.RemainingHours = &remaining
	r.s.contracts[id] = c
	return c, nil
}

// TicketRepository

type TicketRepository struct{ s *Store }

var _ interfaces.ITicketRepository = (*TicketRepository)(nil)

func (r *TicketRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tickets[t.ID] = t
	return t, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.tickets[id], nil
}

func (r *TicketRepository) List(ctx context.Context) ([]entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Ticket, 0, len(r.s.tickets))
	for _, t := range r.s.tickets {
		out = append(out, t)
	}
	return sortedByCreation(out, func(t entities.Ticket) int64 { return t.CreatedAt.UnixNano() }), nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return entities.Ticket{}, nil
	}
	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	r.s.tickets[id] = t
	return t, nil
}

func (r *TicketRepository) AddAccruals(ctx context.Context, id string, totalMinutes, billableMinutes int, amount float64) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return entities.Ticket{}, nil
	}
	t.TotalMinutes += totalMinutes
	t.BillableMinutes += billableMinutes
	t.EstimatedBillableAmount += amount
	t.UpdatedAt = time.Now().UTC()
	r.s.tickets[id] = t
	return t, nil
}

func (r *TicketRepository) MarkPrebillingQueued(ctx context.Context, id string) (entities.Ticket, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.tickets[id]
	if !ok {
		return entities.Ticket{}, nil
	}
	t.PrebillingQueued = true
	t.UpdatedAt = time.Now().UTC()
	r.s.tickets[id] = t
	return t, nil
}

func (r *TicketRepository) CountOpen(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, t := range r.s.tickets {
		switch t.Status {
		case entities.TicketStatusOpen, entities.TicketStatusInProgress, entities.TicketStatusOnHold:
			n++
		}
	}
	return n, nil
}

// TimeEntryRepository

type TimeEntryRepository struct{ s *Store }

var _ interfaces.ITimeEntryRepository = (*TimeEntryRepository)(nil)

func (r *TimeEntryRepository) Create(ctx context.Context, e entities.TimeEntry) (entities.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.entries[e.ID] = e
	return e, nil
}

func (r *TimeEntryRepository) GetByID(ctx context.Context, id string) (entities.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.entries[id], nil
}

func (r *TimeEntryRepository) ListByTicketID(ctx context.Context, ticketID string) ([]entities.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.TimeEntry
	for _, e := range r.s.entries {
		if e.TicketID == ticketID {
			out = append(out, e)
		}
	}
	return sortedByCreation(out, func(e entities.TimeEntry) int64 { return e.CreatedAt.UnixNano() }), nil
}

// MarkValidated flips the flag only when still unset, mirroring the
// conditional write of the DynamoDB repository.
func (r *TimeEntryRepository) MarkValidated(ctx context.Context, id string) (entities.TimeEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.entries[id]
	if !ok || e.Validated {
		return entities.TimeEntry{}, nil
	}
	e.Validated = true
	r.s.entries[id] = e
	return e, nil
}

// InvoiceRepository

type InvoiceRepository struct{ s *Store }

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) Create(ctx context.Context, in entities.Invoice) (entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[in.ID] = in
	return in, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.invoices[id], nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Invoice, 0, len(r.s.invoices))
	for _, in := range r.s.invoices {
		out = append(out, in)
	}
	return sortedByCreation(out, func(in entities.Invoice) int64 { return in.CreatedAt.UnixNano() }), nil
}

func (r *InvoiceRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.Invoice
	for _, in := range r.s.invoices {
		if in.ClientID == clientID {
			out = append(out, in)
		}
	}
	return sortedByCreation(out, func(in entities.Invoice) int64 { return in.CreatedAt.UnixNano() }), nil
}

func (r *InvoiceRepository) CountUnpaid(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, in := range r.s.invoices {
		if in.Status != entities.InvoiceStatusPaid {
			n++
		}
	}
	return n, nil
}

// HoursEventRepository

type HoursEventRepository struct{ s *Store }

var _ interfaces.IHoursEventRepository = (*HoursEventRepository)(nil)

func (r *HoursEventRepository) Append(ctx context.Context, ev entities.HoursEvent) (entities.HoursEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.hoursEvents = append(r.s.hoursEvents, ev)
	return ev, nil
}

func (r *HoursEventRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.HoursEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.HoursEvent
	for _, ev := range r.s.hoursEvents {
		if ev.ContractID == contractID {
			out = append(out, ev)
		}
	}
	return out, nil
}

// PrebillingQueue

type PrebillingQueue struct{ s *Store }

var _ interfaces.IPrebillingQueueRepository = (*PrebillingQueue)(nil)

func (r *PrebillingQueue) Enqueue(ctx context.Context, ticketID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.prebilling = append(r.s.prebilling, ticketID)
	return nil
}

func (r *PrebillingQueue) List(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]string, len(r.s.prebilling))
	copy(out, r.s.prebilling)
	return out, nil
}

// MachineRepository

type MachineRepository struct{ s *Store }

var _ interfaces.IMachineRepository = (*MachineRepository)(nil)

func (r *MachineRepository) Create(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.machines[m.ID] = m
	return m, nil
}

func (r *MachineRepository) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.machines[id], nil
}

func (r *MachineRepository) List(ctx context.Context) ([]entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Machine, 0, len(r.s.machines))
	for _, m := range r.s.machines {
		out = append(out, m)
	}
	return sortedByCreation(out, func(m entities.Machine) int64 { return m.CreatedAt.UnixNano() }), nil
}

func (r *MachineRepository) RecordHeartbeat(ctx context.Context, id, agentVersion string, at time.Time) (entities.Machine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.machines[id]
	if !ok {
		return entities.Machine{}, nil
	}
	m.HeartbeatAt = at
	if agentVersion != "" {
		m.AgentVersion = agentVersion
	}
	r.s.machines[id] = m
	return m, nil
}

func (r *MachineRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.machines), nil
}

// AlertRepository

type AlertRepository struct{ s *Store }

var _ interfaces.IAlertRepository = (*AlertRepository)(nil)

func (r *AlertRepository) Create(ctx context.Context, a entities.Alert) (entities.Alert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.alerts[a.ID] = a
	return a, nil
}

func (r *AlertRepository) AttachTicket(ctx context.Context, alertID, ticketID string) (entities.Alert, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.alerts[alertID]
	if !ok {
		return entities.Alert{}, nil
	}
	a.TicketID = ticketID
	r.s.alerts[alertID] = a
	return a, nil
}

func (r *AlertRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, a := range r.s.alerts {
		if !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// MetricRepository

type MetricRepository struct{ s *Store }

var _ interfaces.IMetricRepository = (*MetricRepository)(nil)

func (r *MetricRepository) Create(ctx context.Context, sample entities.MetricSample) (entities.MetricSample, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.metrics[sample.ID] = sample
	return sample, nil
}

func (r *MetricRepository) ListByMachineID(ctx context.Context, machineID string) ([]entities.MetricSample, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []entities.MetricSample
	for _, sample := range r.s.metrics {
		if sample.MachineID == machineID {
			out = append(out, sample)
		}
	}
	return sortedByCreation(out, func(sample entities.MetricSample) int64 { return sample.CreatedAt.UnixNano() }), nil
}
