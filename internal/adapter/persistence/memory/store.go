// Package memory provides an in-memory implementation of every repository
// interface. It upholds the same semantics as the DynamoDB repositories:
// zero-value results for not-found, compare-and-set on the hours-bank
// balance, conditional flip of the validated flag. The billing engine runs
// against either store interchangeably.
package memory

import (
	"sort"
	"sync"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// Store is the shared backing state. Individual repositories are views over
// it; all of them serialize on one mutex, which is the transactional model
// the engine expects from a single authoritative ledger instance.

type Store struct {
	mu sync.Mutex

	clients     map[string]entities.Client
	technicians map[string]entities.Technician
	contracts   map[string]entities.Contract
	tickets     map[string]entities.Ticket
	entries     map[string]entities.TimeEntry
	invoices    map[string]entities.Invoice
	machines    map[string]entities.Machine
	alerts      map[string]entities.Alert
	metrics     map[string]entities.MetricSample

	contractOrder []string
	hoursEvents   []entities.HoursEvent
	prebilling    []string
}

func NewStore() *Store {
	return &Store{
		clients:     make(map[string]entities.Client),
		technicians: make(map[string]entities.Technician),
		contracts:   make(map[string]entities.Contract),
		tickets:     make(map[string]entities.Ticket),
		entries:     make(map[string]entities.TimeEntry),
		invoices:    make(map[string]entities.Invoice),
		machines:    make(map[string]entities.Machine),
		alerts:      make(map[string]entities.Alert),
		metrics:     make(map[string]entities.MetricSample),
	}
}

func (s *Store) Clients() *ClientRepository         { return &ClientRepository{s: s} }
func (s *Store) Technicians() *TechnicianRepository { return &TechnicianRepository{s: s} }
func (s *Store) Contracts() *ContractRepository     { return &ContractRepository{s: s} }
func (s *Store) Tickets() *TicketRepository         { return &TicketRepository{s: s} }
func (s *Store) TimeEntries() *TimeEntryRepository  { return &TimeEntryRepository{s: s} }
func (s *Store) Invoices() *InvoiceRepository       { return &InvoiceRepository{s: s} }
func (s *Store) HoursEvents() *HoursEventRepository { return &HoursEventRepository{s: s} }
func (s *Store) Prebilling() *PrebillingQueue       { return &PrebillingQueue{s: s} }
func (s *Store) Machines() *MachineRepository       { return &MachineRepository{s: s} }
func (s *Store) Alerts() *AlertRepository           { return &AlertRepository{s: s} }
func (s *Store) Metrics() *MetricRepository         { return &MetricRepository{s: s} }

func sortedByCreation[T any](items []T, createdUnixNano func(T) int64) []T {
	sort.SliceStable(items, func(i, j int) bool {
		return createdUnixNano(items[i]) < createdUnixNano(items[j])
	})
	return items
}
