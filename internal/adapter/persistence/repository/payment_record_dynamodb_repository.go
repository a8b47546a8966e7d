package repository

import (
	"context"

	"clearlot/internal/domain/entities"
	"clearlot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "job_payments"
	paymentsJobIDIndex       = "job_id-index"
)

type paymentRecordItem struct {
	ID            string  `dynamodbav:"id"`
	JobID         string  `dynamodbav:"job_id"`
	Kind          string  `dynamodbav:"kind"`
	Amount        float64 `dynamodbav:"amount"`
	Method        string  `dynamodbav:"method"`
	TransactionID string  `dynamodbav:"transaction_id"`
	Date          string  `dynamodbav:"date"`

	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentRecordDynamoRepository persists settlement records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
//
// Records are immutable: only conditional creates and reads, never updates.

type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
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
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func (r *PaymentRecordDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.PaymentRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
		KeyConditionExpression: aws.String("#job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.PaymentRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var it paymentRecordItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		records = append(records, fromPaymentRecordItem(it))
	}
	return records, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                 p.ID,
		JobID:              p.JobID,
		Kind:               string(p.Kind),
		Amount:             p.Amount,
		Method:             p.Method,
		TransactionID:      p.TransactionID,
		Date:               timeToString(p.Date),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	p := entities.PaymentRecord{
		ID:              it.ID,
		JobID:           it.JobID,
		Kind:            entities.PaymentKind(it.Kind),
		Amount:          it.Amount,
		Method:          it.Method,
		TransactionID:   it.TransactionID,
		Date:            stringToTime(it.Date),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
