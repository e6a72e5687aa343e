package repository

import (
	"context"
	"time"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAlertsTableName = "alerts"

type alertItem struct {
	ID        string `dynamodbav:"id"`
	MachineID string `dynamodbav:"machine_id"`
	Severity  string `dynamodbav:"severity"`
	Title     string `dynamodbav:"title"`
	Details   string `dynamodbav:"details,omitempty"`
	TicketID  string `dynamodbav:"ticket_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// AlertDynamoRepository persists Alert entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AlertDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAlertRepository = (*AlertDynamoRepository)(nil)

func NewAlertDynamoRepository(ddb *dynamodb.Client) *AlertDynamoRepository {
	return &AlertDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ALERTS_TABLE", defaultAlertsTableName),
	}
}

func (r *AlertDynamoRepository) Create(ctx context.Context, a entities.Alert) (entities.Alert, error) {
	av, err := attributevalue.MarshalMap(toAlertItem(a))
	if err != nil {
		return entities.Alert{}, err
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
		return entities.Alert{}, err
	}
	return a, nil
}

func (r *AlertDynamoRepository) AttachTicket(ctx context.Context, alertID, ticketID string) (entities.Alert, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: alertID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #ticket_id = :ticket_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#ticket_id": "ticket_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ticket_id": &types.AttributeValueMemberS{Value: ticketID},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Alert{}, nil
		}
		return entities.Alert{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Alert{}, nil
	}

	var it alertItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Alert{}, err
	}
	return fromAlertItem(it), nil
}

func (r *AlertDynamoRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("#created_at >= :since"),
			ExpressionAttributeNames: map[string]string{
				"#created_at": "created_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":since": &types.AttributeValueMemberS{Value: formatTime(since)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return 0, err
		}
		count += int(out.Count)
		if out.LastEvaluatedKey == nil {
			return count, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toAlertItem(a entities.Alert) alertItem {
	return alertItem{
		ID:        a.ID,
		MachineID: a.MachineID,
		Severity:  string(a.Severity),
		Title:     a.Title,
		Details:   a.Details,
		TicketID:  a.TicketID,
		CreatedAt: formatTime(a.CreatedAt),
	}
}

func fromAlertItem(it alertItem) entities.Alert {
	return entities.Alert{
		ID:        it.ID,
		MachineID: it.MachineID,
		Severity:  entities.AlertSeverity(it.Severity),
		Title:     it.Title,
		Details:   it.Details,
		TicketID:  it.TicketID,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
