package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/SkrCodyxx/CRM-RMM/internal/domain/entities"
	"github.com/SkrCodyxx/CRM-RMM/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "contracts"

type contractItem struct {
	ID                  string   `dynamodbav:"id"`
	ClientID            string   `dynamodbav:"client_id"`
	Type                string   `dynamodbav:"type"`
	HourlyRate          float64  `dynamodbav:"hourly_rate"`
	TotalHours          *float64 `dynamodbav:"total_hours,omitempty"`
	RemainingHours      *float64 `dynamodbav:"remaining_hours,omitempty"`
	AlertThresholdHours float64  `dynamodbav:"alert_threshold_hours"`
	MonthlyPrice        float64  `dynamodbav:"monthly_price"`
	MonthlyUnits        int      `dynamodbav:"monthly_units"`
	CreatedAt           string   `dynamodbav:"created_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI1 (client_id-index): PK client_id, SK created_at
//
// The GSI sort key gives ListByClientID a stable creation order, which the
// first-match resolution policy depends on. The hours-bank balance is only
// ever mutated through ConsumeHours, a conditional update keyed on the
// expected prior balance.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String("client_id-index"),
		KeyConditionExpression: aws.String("#client_id = :client_id"),
		ExpressionAttributeNames: map[string]string{
			"#client_id": "client_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	contracts := make([]entities.Contract, 0, len(out.Items))
	for _, item := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		contracts = append(contracts, fromContractItem(it))
	}
	return contracts, nil
}

// ConsumeHours sets the balance to after only while it still equals before.
// A lost race surfaces as a zero-value contract so the engine can re-read
// and retry.
func (r *ContractDynamoRepository) ConsumeHours(ctx context.Context, id string, before, after float64) (entities.Contract, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #remaining = :before"),
		UpdateExpression:    aws.String("SET #remaining = :after"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#remaining": "remaining_hours",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":before": &types.AttributeValueMemberN{Value: floatToString(before)},
			":after":  &types.AttributeValueMemberN{Value: floatToString(after)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Contract{}, nil
		}
		return entities.Contract{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func toContractItem(c entities.Contract) contractItem {
	return contractItem{
		ID:                  c.ID,
		ClientID:            c.ClientID,
		Type:                string(c.Type),
		HourlyRate:          c.HourlyRate,
		TotalHours:          c.TotalHours,
		RemainingHours:      c.RemainingHours,
		AlertThresholdHours: c.AlertThresholdHours,
		MonthlyPrice:        c.MonthlyPrice,
		MonthlyUnits:        c.MonthlyUnits,
		CreatedAt:           formatTime(c.CreatedAt),
	}
}

func fromContractItem(it contractItem) entities.Contract {
	return entities.Contract{
		ID:                  it.ID,
		ClientID:            it.ClientID,
		Type:                entities.ContractType(it.Type),
		HourlyRate:          it.HourlyRate,
		TotalHours:          it.TotalHours,
		RemainingHours:      it.RemainingHours,
		AlertThresholdHours: it.AlertThresholdHours,
		MonthlyPrice:        it.MonthlyPrice,
		MonthlyUnits:        it.MonthlyUnits,
		CreatedAt:           parseTime(it.CreatedAt),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
