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

const defaultTimeEntriesTableName = "time_entries"

type timeEntryItem struct {
	ID           string `dynamodbav:"id"`
	TicketID     string `dynamodbav:"ticket_id"`
	TechnicianID string `dynamodbav:"technician_id,omitempty"`
	Minutes      int    `dynamodbav:"minutes"`
	Billable     bool   `dynamodbav:"billable"`
	Validated    bool   `dynamodbav:"validated"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// TimeEntryDynamoRepository persists TimeEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (ticket_id-index): PK ticket_id, SK created_at
//
// MarkValidated is a conditional write on validated = false: the condition
// is the store-level guarantee that an entry is counted at most once even
// under concurrent validation.

type TimeEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeEntryRepository = (*TimeEntryDynamoRepository)(nil)

func NewTimeEntryDynamoRepository(ddb *dynamodb.Client) *TimeEntryDynamoRepository {
	return &TimeEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_ENTRIES_TABLE", defaultTimeEntriesTableName),
	}
}

func (r *TimeEntryDynamoRepository) Create(ctx context.Context, e entities.TimeEntry) (entities.TimeEntry, error) {
	av, err := attributevalue.MarshalMap(toTimeEntryItem(e))
	if err != nil {
		return entities.TimeEntry{}, err
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
		return entities.TimeEntry{}, err
	}
	return e, nil
}

func (r *TimeEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.TimeEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.TimeEntry{}, nil
	}

	var it timeEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TimeEntry{}, err
	}
	return fromTimeEntryItem(it), nil
}

func (r *TimeEntryDynamoRepository) ListByTicketID(ctx context.Context, ticketID string) ([]entities.TimeEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("ticket_id-index"),
		KeyConditionExpression: aws.String("#ticket_id = :ticket_id"),
		ExpressionAttributeNames: map[string]string{
			"#ticket_id": "ticket_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ticket_id": &types.AttributeValueMemberS{Value: ticketID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.TimeEntry, 0, len(out.Items))
	for _, item := range out.Items {
		var it timeEntryItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		entries = append(entries, fromTimeEntryItem(it))
	}
	return entries, nil
}

func (r *TimeEntryDynamoRepository) MarkValidated(ctx context.Context, id string) (entities.TimeEntry, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #validated = :false"),
		UpdateExpression:    aws.String("SET #validated = :true"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#validated": "validated",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
			":true":  &types.AttributeValueMemberBOOL{Value: true},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.TimeEntry{}, nil
		}
		return entities.TimeEntry{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TimeEntry{}, nil
	}

	var it timeEntryItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TimeEntry{}, err
	}
	return fromTimeEntryItem(it), nil
}

func toTimeEntryItem(e entities.TimeEntry) timeEntryItem {
	return timeEntryItem{
		ID:           e.ID,
		TicketID:     e.TicketID,
		TechnicianID: e.TechnicianID,
		Minutes:      e.Minutes,
		Billable:     e.Billable,
		Validated:    e.Validated,
		CreatedAt:    formatTime(e.CreatedAt),
	}
}

func fromTimeEntryItem(it timeEntryItem) entities.TimeEntry {
	return entities.TimeEntry{
		ID:           it.ID,
		TicketID:     it.TicketID,
		TechnicianID: it.TechnicianID,
		Minutes:      it.Minutes,
		Billable:     it.Billable,
		Validated:    it.Validated,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
