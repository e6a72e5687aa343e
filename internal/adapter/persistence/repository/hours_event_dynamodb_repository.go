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

const defaultHoursEventsTableName = "hours_events"

type hoursEventItem struct {
	ID            string  `dynamodbav:"id"`
	ClientID      string  `dynamodbav:"client_id"`
	ContractID    string  `dynamodbav:"contract_id"`
	BeforeHours   float64 `dynamodbav:"before_hours"`
	ConsumedHours float64 `dynamodbav:"consumed_hours"`
	AfterHours    float64 `dynamodbav:"after_hours"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// HoursEventDynamoRepository is the append-only audit log of hours-bank
// consumptions.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (contract_id-index): PK contract_id, SK created_at

type HoursEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHoursEventRepository = (*HoursEventDynamoRepository)(nil)

func NewHoursEventDynamoRepository(ddb *dynamodb.Client) *HoursEventDynamoRepository {
	return &HoursEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HOURS_EVENTS_TABLE", defaultHoursEventsTableName),
	}
}

func (r *HoursEventDynamoRepository) Append(ctx context.Context, ev entities.HoursEvent) (entities.HoursEvent, error) {
	av, err := attributevalue.MarshalMap(toHoursEventItem(ev))
	if err != nil {
		return entities.HoursEvent{}, err
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
		return entities.HoursEvent{}, err
	}
	return ev, nil
}

func (r *HoursEventDynamoRepository) ListByContractID(ctx context.Context, contractID string) ([]entities.HoursEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("contract_id-index"),
		KeyConditionExpression: aws.String("#contract_id = :contract_id"),
		ExpressionAttributeNames: map[string]string{
			"#contract_id": "contract_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":contract_id": &types.AttributeValueMemberS{Value: contractID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.HoursEvent, 0, len(out.Items))
	for _, item := range out.Items {
		var it hoursEventItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		events = append(events, fromHoursEventItem(it))
	}
	return events, nil
}

func toHoursEventItem(ev entities.HoursEvent) hoursEventItem {
	return hoursEventItem{
		ID:            ev.ID,
		ClientID:      ev.ClientID,
		ContractID:    ev.ContractID,
		BeforeHours:   ev.BeforeHours,
		ConsumedHours: ev.ConsumedHours,
		AfterHours:    ev.AfterHours,
		CreatedAt:     formatTime(ev.CreatedAt),
	}
}

func fromHoursEventItem(it hoursEventItem) entities.HoursEvent {
	return entities.HoursEvent{
		ID:            it.ID,
		ClientID:      it.ClientID,
		ContractID:    it.ContractID,
		BeforeHours:   it.BeforeHours,
		ConsumedHours: it.ConsumedHours,
		AfterHours:    it.AfterHours,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
