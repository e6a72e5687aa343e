package repository

import (
	"context"
	"fmt"

	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultPrebillingQueueTableName = "prebilling_queue"

	// All queue entries share one partition so a single ascending query
	// returns them in enqueue order.
	prebillingQueuePartition = "queue"
)

type prebillingQueueItem struct {
	QueueName string `dynamodbav:"queue_name"`
	Seq       string `dynamodbav:"seq"`
	TicketID  string `dynamodbav:"ticket_id"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PrebillingQueueDynamoRepository is the ordered queue of closed tickets
// awaiting the downstream consolidated billing pass.
//
// Table requirements:
//   - PK: queue_name (string)
//   - SK: seq (string)

type PrebillingQueueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPrebillingQueueRepository = (*PrebillingQueueDynamoRepository)(nil)

func NewPrebillingQueueDynamoRepository(ddb *dynamodb.Client) *PrebillingQueueDynamoRepository {
	return &PrebillingQueueDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PREBILLING_QUEUE_TABLE", defaultPrebillingQueueTableName),
	}
}

func (r *PrebillingQueueDynamoRepository) Enqueue(ctx context.Context, ticketID string) error {
	now := nowUTC()
	av, err := attributevalue.MarshalMap(prebillingQueueItem{
		QueueName: prebillingQueuePartition,
		// Nanosecond timestamp plus a uuid keeps keys unique and sortable
		// even when two tickets close in the same nanosecond.
		Seq:       fmt.Sprintf("%020d#%s", now.UnixNano(), uuid.New().String()),
		TicketID:  ticketID,
		CreatedAt: formatTime(now),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PrebillingQueueDynamoRepository) List(ctx context.Context) ([]string, error) {
	var ticketIDs []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#queue_name = :queue_name"),
			ExpressionAttributeNames: map[string]string{
				"#queue_name": "queue_name",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":queue_name": &types.AttributeValueMemberS{Value: prebillingQueuePartition},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it prebillingQueueItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			ticketIDs = append(ticketIDs, it.TicketID)
		}
		if out.LastEvaluatedKey == nil {
			return ticketIDs, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
