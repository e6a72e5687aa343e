package interfaces

import (
	"context"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
)

// IMachineRepository abstracts persistence for Machine.

type IMachineRepository interface {
	Create(ctx context.Context, m entities.Machine) (entities.Machine, error)
	GetByID(ctx context.Context, id string) (entities.Machine, error)
	List(ctx context.Context) ([]entities.Machine, error)
	RecordHeartbeat(ctx context.Context, id, agentVersion string, at time.Time) (entities.Machine, error)
	Count(ctx context.Context) (int, error)
}

// IAlertRepository abstracts persistence for Alert.

type IAlertRepository interface {
	Create(ctx context.Context, a entities.Alert) (entities.Alert, error)
	AttachTicket(ctx context.Context, alertID, ticketID string) (entities.Alert, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
}

// IMetricRepository abstracts persistence for MetricSample.

type IMetricRepository interface {
	Create(ctx context.Context, s entities.MetricSample) (entities.MetricSample, error)
	ListByMachineID(ctx context.Context, machineID string) ([]entities.MetricSample, error)
}
