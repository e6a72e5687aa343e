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

const defaultTicketsTableName = "tickets"

type ticketItem struct {
	ID                      string  `dynamodbav:"id"`
	ClientID                string  `dynamodbav:"client_id"`
	ContractID              string  `dynamodbav:"contract_id,omitempty"`
	MachineID               string  `dynamodbav:"machine_id,omitempty"`
	TechnicianID            string  `dynamodbav:"technician_id,omitempty"`
	Status                  string  `dynamodbav:"status"`
	Priority                string  `dynamodbav:"priority"`
	Title                   string  `dynamodbav:"title"`
	Description             string  `dynamodbav:"description"`
	TotalMinutes            int     `dynamodbav:"total_minutes"`
	BillableMinutes         int     `dynamodbav:"billable_minutes"`
	EstimatedBillableAmount float64 `dynamodbav:"estimated_billable_amount"`
	PrebillingQueued        bool    `dynamodbav:"prebilling_queued"`
	CreatedAt               string  `dynamodbav:"created_at"`
	UpdatedAt               string  `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Accrual counters are updated with ADD expressions so concurrent
// validations against the same ticket never lose increments.

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	av, err := attributevalue.MarshalMap(toTicketItem(t))
	if err != nil {
		return entities.Ticket{}, err
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
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, id string) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) List(ctx context.Context) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it ticketItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			tickets = append(tickets, fromTicketItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return tickets, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *TicketDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TicketStatus) (entities.Ticket, error) {
	return r.update(ctx, id, "SET #status = :status, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{
			"#status": "status",
		})
}

func (r *TicketDynamoRepository) AddAccruals(ctx context.Context, id string, totalMinutes, billableMinutes int, amount float64) (entities.Ticket, error) {
	return r.update(ctx, id,
		"SET #updated_at = :updated_at ADD #total :total, #billable :billable, #amount :amount",
		map[string]types.AttributeValue{
			":total":    &types.AttributeValueMemberN{Value: intToString(totalMinutes)},
			":billable": &types.AttributeValueMemberN{Value: intToString(billableMinutes)},
			":amount":   &types.AttributeValueMemberN{Value: floatToString(amount)},
		},
		map[string]string{
			"#total":    "total_minutes",
			"#billable": "billable_minutes",
			"#amount":   "estimated_billable_amount",
		})
}

func (r *TicketDynamoRepository) MarkPrebillingQueued(ctx context.Context, id string) (entities.Ticket, error) {
	return r.update(ctx, id, "SET #queued = :queued, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":queued": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{
			"#queued": "prebilling_queued",
		})
}

func (r *TicketDynamoRepository) CountOpen(ctx context.Context) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			Select:           types.SelectCount,
			FilterExpression: aws.String("#status IN (:open, :in_progress, :on_hold)"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open":        &types.AttributeValueMemberS{Value: string(entities.TicketStatusOpen)},
				":in_progress": &types.AttributeValueMemberS{Value: string(entities.TicketStatusInProgress)},
				":on_hold":     &types.AttributeValueMemberS{Value: string(entities.TicketStatusOnHold)},
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

func (r *TicketDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Ticket, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(nowUTC())}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		ID:                      t.ID,
		ClientID:                t.ClientID,
		ContractID:              t.ContractID,
		MachineID:               t.MachineID,
		TechnicianID:            t.TechnicianID,
		Status:                  string(t.Status),
		Priority:                string(t.Priority),
		Title:                   t.Title,
		Description:             t.Description,
		TotalMinutes:            t.TotalMinutes,
		BillableMinutes:         t.BillableMinutes,
		EstimatedBillableAmount: t.EstimatedBillableAmount,
		PrebillingQueued:        t.PrebillingQueued,
		CreatedAt:               formatTime(t.CreatedAt),
		UpdatedAt:               formatTime(t.UpdatedAt),
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	return entities.Ticket{
		ID:                      it.ID,
		ClientID:                it.ClientID,
		ContractID:              it.ContractID,
		MachineID:               it.MachineID,
		TechnicianID:            it.TechnicianID,
		Status:                  entities.TicketStatus(it.Status),
		Priority:                entities.TicketPriority(it.Priority),
		Title:                   it.Title,
		Description:             it.Description,
		TotalMinutes:            it.TotalMinutes,
		BillableMinutes:         it.BillableMinutes,
		EstimatedBillableAmount: it.EstimatedBillableAmount,
		PrebillingQueued:        it.PrebillingQueued,
		CreatedAt:               parseTime(it.CreatedAt),
		UpdatedAt:               parseTime(it.UpdatedAt),
	}
}
