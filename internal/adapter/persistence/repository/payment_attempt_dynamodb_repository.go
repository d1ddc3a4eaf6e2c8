package repository

import (
	"context"
	"errors"
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAttemptsTableName = "payment_attempts"
	attemptsInvoiceIDIndex   = "invoice_id-index"
)

type paymentAttemptItem struct {
	ID          string `dynamodbav:"id"`
	InvoiceID   string `dynamodbav:"invoice_id"`
	Method      string `dynamodbav:"method"`
	Outcome     string `dynamodbav:"outcome"`
	ProviderRef string `dynamodbav:"provider_ref,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// PaymentAttemptDynamoRepository persists PaymentAttempt entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// Outcome flips are conditional on the expected current outcome, which is
// what makes settlement exactly-once under concurrent callbacks.

type PaymentAttemptDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentAttemptRepository = (*PaymentAttemptDynamoRepository)(nil)

func NewPaymentAttemptDynamoRepository(ddb *dynamodb.Client) *PaymentAttemptDynamoRepository {
	return &PaymentAttemptDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_ATTEMPTS_TABLE", defaultAttemptsTableName),
	}
}

func (r *PaymentAttemptDynamoRepository) Create(ctx context.Context, a entities.PaymentAttempt) (entities.PaymentAttempt, error) {
	it := toPaymentAttemptItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentAttempt{}, err
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
		return entities.PaymentAttempt{}, err
	}
	return a, nil
}

func (r *PaymentAttemptDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentAttempt{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentAttempt{}, nil
	}

	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func (r *PaymentAttemptDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.PaymentAttempt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(attemptsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentAttempt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentAttemptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentAttemptItem(it))
	}
	return items, nil
}

func (r *PaymentAttemptDynamoRepository) UpdateOutcome(ctx context.Context, id string, from, to entities.PaymentOutcome) (entities.PaymentAttempt, error) {
	return r.update(ctx, id,
		"SET #outcome = :to, #updated_at = :updated_at",
		"attribute_exists(#id) AND #outcome = :from",
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		map[string]string{"#outcome": "outcome"},
	)
}

func (r *PaymentAttemptDynamoRepository) UpdateProviderRef(ctx context.Context, id, providerRef string) (entities.PaymentAttempt, error) {
	return r.update(ctx, id,
		"SET #provider_ref = :provider_ref, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":provider_ref": &types.AttributeValueMemberS{Value: providerRef},
		},
		map[string]string{"#provider_ref": "provider_ref"},
	)
}

func (r *PaymentAttemptDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.PaymentAttempt, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PaymentAttempt{}, nil
		}
		return entities.PaymentAttempt{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PaymentAttempt{}, nil
	}
	var it paymentAttemptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentAttempt{}, err
	}
	return fromPaymentAttemptItem(it), nil
}

func toPaymentAttemptItem(a entities.PaymentAttempt) paymentAttemptItem {
	return paymentAttemptItem{
		ID:          a.ID,
		InvoiceID:   a.InvoiceID,
		Method:      string(a.Method),
		Outcome:     string(a.Outcome),
		ProviderRef: a.ProviderRef,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentAttemptItem(it paymentAttemptItem) entities.PaymentAttempt {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.PaymentAttempt{
		ID:          it.ID,
		InvoiceID:   it.InvoiceID,
		Method:      entities.PaymentMethod(it.Method),
		Outcome:     entities.PaymentOutcome(it.Outcome),
		ProviderRef: it.ProviderRef,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
