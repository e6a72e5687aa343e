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

const defaultMachinesTableName = "machines"

type machineItem struct {
	ID              string  `dynamodbav:"id"`
	ClientID        string  `dynamodbav:"client_id"`
	Hostname        string  `dynamodbav:"hostname"`
	OSName          string  `dynamodbav:"os_name"`
	CPUModel        string  `dynamodbav:"cpu_model,omitempty"`
	RAMTotalGB      float64 `dynamodbav:"ram_total_gb,omitempty"`
	AgentVersion    string  `dynamodbav:"agent_version,omitempty"`
	HeartbeatAt     string  `dynamodbav:"heartbeat_at,omitempty"`
	LastInventoryAt string  `dynamodbav:"last_inventory_at,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// MachineDynamoRepository persists Machine entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type MachineDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMachineRepository = (*MachineDynamoRepository)(nil)

func NewMachineDynamoRepository(ddb *dynamodb.Client) *MachineDynamoRepository {
	return &MachineDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MACHINES_TABLE", defaultMachinesTableName),
	}
}

func (r *MachineDynamoRepository) Create(ctx context.Context, m entities.Machine) (entities.Machine, error) {
	av, err := attributevalue.MarshalMap(toMachineItem(m))
	if err != nil {
		return entities.Machine{}, err
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
		return entities.Machine{}, err
	}
	return m, nil
}

func (r *MachineDynamoRepository) GetByID(ctx context.Context, id string) (entities.Machine, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Machine{}, err
	}
	if len(out.Item) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) List(ctx context.Context) ([]entities.Machine, error) {
	var machines []entities.Machine
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
			var it machineItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			machines = append(machines, fromMachineItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return machines, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *MachineDynamoRepository) RecordHeartbeat(ctx context.Context, id, agentVersion string, at time.Time) (entities.Machine, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #heartbeat_at = :heartbeat_at, #agent_version = :agent_version"),
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#heartbeat_at":  "heartbeat_at",
			"#agent_version": "agent_version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":heartbeat_at":  &types.AttributeValueMemberS{Value: formatTime(at)},
			":agent_version": &types.AttributeValueMemberS{Value: agentVersion},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Machine{}, nil
		}
		return entities.Machine{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Machine{}, nil
	}

	var it machineItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Machine{}, err
	}
	return fromMachineItem(it), nil
}

func (r *MachineDynamoRepository) Count(ctx context.Context) (int, error) {
	count := 0
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			Select:            types.SelectCount,
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

func toMachineItem(m entities.Machine) machineItem {
	it := machineItem{
		ID:           m.ID,
		ClientID:     m.ClientID,
		Hostname:     m.Hostname,
		OSName:       m.OSName,
		CPUModel:     m.CPUModel,
		RAMTotalGB:   m.RAMTotalGB,
		AgentVersion: m.AgentVersion,
		CreatedAt:    formatTime(m.CreatedAt),
	}
	if !m.HeartbeatAt.IsZero() {
		it.HeartbeatAt = formatTime(m.HeartbeatAt)
	}
	if !m.LastInventoryAt.IsZero() {
		it.LastInventoryAt = formatTime(m.LastInventoryAt)
	}
	return it
}

func fromMachineItem(it machineItem) entities.Machine {
	m := entities.Machine{
		ID:           it.ID,
		ClientID:     it.ClientID,
		Hostname:     it.Hostname,
		OSName:       it.OSName,
		CPUModel:     it.CPUModel,
		RAMTotalGB:   it.RAMTotalGB,
		AgentVersion: it.AgentVersion,
		CreatedAt:    parseTime(it.CreatedAt),
	}
	if it.HeartbeatAt != "" {
		m.HeartbeatAt = parseTime(it.HeartbeatAt)
	}
	if it.LastInventoryAt != "" {
		m.LastInventoryAt = parseTime(it.LastInventoryAt)
	}
	return m
}
