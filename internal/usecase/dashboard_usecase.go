package usecase

import (
	"context"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"
)

// DashboardCounts is the operational summary shown on the service landing
// page.

type DashboardCounts struct {
	Clients        int `json:"clients"`
	Machines       int `json:"machines"`
	OpenTickets    int `json:"open_tickets"`
	UnpaidInvoices int `json:"unpaid_invoices"`
	AlertsLast24h  int `json:"alerts_24h"`
}

type IDashboardUseCase interface {
	Counts(ctx context.Context) (DashboardCounts, error)
}

type DashboardUseCase struct {
	clients  interfaces.IClientRepository
	machines interfaces.IMachineRepository
	tickets  interfaces.ITicketRepository
	invoices interfaces.IInvoiceRepository
	alerts   interfaces.IAlertRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	machines interfaces.IMachineRepository,
	tickets interfaces.ITicketRepository,
	invoices interfaces.IInvoiceRepository,
	alerts interfaces.IAlertRepository,
) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, machines: machines, tickets: tickets, invoices: invoices, alerts: alerts}
}

func (u *DashboardUseCase) Counts(ctx context.Context) (DashboardCounts, error) {
	var counts DashboardCounts
	var err error

	if counts.Clients, err = u.clients.Count(ctx); err != nil {
		return DashboardCounts{}, err
	}
	if counts.Machines, err = u.machines.Count(ctx); err != nil {
		return DashboardCounts{}, err
	}
	if counts.OpenTickets, err = u.tickets.CountOpen(ctx); err != nil {
		return DashboardCounts{}, err
	}
	if counts.UnpaidInvoices, err = u.invoices.CountUnpaid(ctx); err != nil {
		return DashboardCounts{}, err
	}
	if counts.AlertsLast24h, err = u.alerts.CountSince(ctx, time.Now().UTC().Add(-24*time.Hour)); err != nil {
		return DashboardCounts{}, err
	}
	return counts, nil
}
