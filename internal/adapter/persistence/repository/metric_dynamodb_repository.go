package repository

import (
	"context"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMetricsTableName = "metric_samples"

type metricItem struct {
	ID          string  `dynamodbav:"id"`
	MachineID   string  `dynamodbav:"machine_id"`
	CPUPercent  float64 `dynamodbav:"cpu_percent"`
	RAMPercent  float64 `dynamodbav:"ram_percent"`
	DiskPercent float64 `dynamodbav:"disk_percent"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// MetricDynamoRepository persists MetricSample entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (machine_id-index): PK machine_id, SK created_at

type MetricDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMetricRepository = (*MetricDynamoRepository)(nil)

func NewMetricDynamoRepository(ddb *dynamodb.Client) *MetricDynamoRepository {
	return &MetricDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("METRIC_SAMPLES_TABLE", defaultMetricsTableName),
	}
}

func (r *MetricDynamoRepository) Create(ctx context.Context, s entities.MetricSample) (entities.MetricSample, error) {
	av, err := attributevalue.MarshalMap(toMetricItem(s))
	if err != nil {
		return entities.MetricSample{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.MetricSample{}, err
	}
	return s, nil
}

func (r *MetricDynamoRepository) ListByMachineID(ctx context.Context, machineID string) ([]entities.MetricSample, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("machine_id-index"),
		KeyConditionExpression: aws.String("#machine_id = :machine_id"),
		ExpressionAttributeNames: map[string]string{
			"#machine_id": "machine_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":machine_id": &types.AttributeValueMemberS{Value: machineID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	samples := make([]entities.MetricSample, 0, len(out.Items))
	for _, item := range out.Items {
		var it metricItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		samples = append(samples, fromMetricItem(it))
	}
	return samples, nil
}

func toMetricItem(s entities.MetricSample) metricItem {
	return metricItem{
		ID:          s.ID,
		MachineID:   s.MachineID,
		CPUPercent:  s.CPUPercent,
		RAMPercent:  s.RAMPercent,
		DiskPercent: s.DiskPercent,
		CreatedAt:   formatTime(s.CreatedAt),
	}
}

func fromMetricItem(it metricItem) entities.MetricSample {
	return entities.MetricSample{
		ID:          it.ID,
		MachineID:   it.MachineID,
		CPUPercent:  it.CPUPercent,
		RAMPercent:  it.RAMPercent,
		DiskPercent: it.DiskPercent,
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
