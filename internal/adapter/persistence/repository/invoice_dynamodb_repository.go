package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvoicesTableName = "invoices"
	openMarkerPrefix         = "open#"
)

type invoiceItem struct {
	ID           string `dynamodbav:"id"`
	SubmissionID string `dynamodbav:"submission_id"`
	AmountUSD    string `dynamodbav:"amount_usd"`
	AmountMWK    string `dynamodbav:"amount_mwk"`
	DueDate      string `dynamodbav:"due_date"`
	Status       string `dynamodbav:"status"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// openInvoiceMarker is a per-submission row keyed "open#<submission_id>",
// written in the same transaction as the invoice and deleted in the same
// transaction as any flip out of open. At most one open invoice can exist
// per submission because at most one marker row can.
type openInvoiceMarker struct {
	ID           string `dynamodbav:"id"`
	SubmissionID string `dynamodbav:"submission_id"`
	InvoiceID    string `dynamodbav:"invoice_id"`
	CreatedAt    string `dynamodbav:"created_at"`
}

func openMarkerID(submissionID string) string {
	return openMarkerPrefix + submissionID
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Invoice rows share the table with openInvoiceMarker rows. Creation and
// status flips go through TransactWriteItems so the one-open-invoice
// invariant holds at the table, not at the caller's read.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

// Create writes the invoice and its open-invoice marker in one transaction.
// A zero-value return with nil error means the submission already has an
// open invoice and nothing was written.
func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
	}
	marker, err := attributevalue.MarshalMap(openInvoiceMarker{
		ID:           openMarkerID(inv.SubmissionID),
		SubmissionID: inv.SubmissionID,
		InvoiceID:    inv.ID,
		CreatedAt:    inv.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     marker,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// GetOpenBySubmissionID resolves the marker row with a consistent read, so
// a just-committed creation is always visible to the next caller.
func (r *InvoiceDynamoRepository) GetOpenBySubmissionID(ctx context.Context, submissionID string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: openMarkerID(submissionID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var marker openInvoiceMarker
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return entities.Invoice{}, err
	}
	return r.GetByID(ctx, marker.InvoiceID)
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.InvoiceStatus) (entities.Invoice, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.ID == "" || current.Status != from {
		return entities.Invoice{}, nil
	}

	updatedAt := time.Now().UTC()
	items := []types.TransactWriteItem{
		{Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
			UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from":       &types.AttributeValueMemberS{Value: string(from)},
				":to":         &types.AttributeValueMemberS{Value: string(to)},
				":updated_at": &types.AttributeValueMemberS{Value: updatedAt.Format(time.RFC3339Nano)},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
		}},
	}
	if from == entities.InvoiceStatusOpen {
		// Leaving open releases the submission's marker row.
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: openMarkerID(current.SubmissionID)},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#id) OR #invoice_id = :iid"),
			ExpressionAttributeNames: map[string]string{"#id": "id", "#invoice_id": "invoice_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":iid": &types.AttributeValueMemberS{Value: id},
			},
		}})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	current.Status = to
	current.UpdatedAt = updatedAt
	return current, nil
}

func (r *InvoiceDynamoRepository) ListOpenDueBefore(ctx context.Context, cutoff time.Time) ([]entities.Invoice, error) {
	// Expiry sweeps are infrequent and the open set is small; a filtered scan
	// keeps the table free of a due-date index. Marker rows carry no status
	// attribute, so the filter never matches them.
	var (
		items   []entities.Invoice
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#status = :open AND #due_date < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#status":   "status",
				"#due_date": "due_date",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open":   &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusOpen)},
				":cutoff": &types.AttributeValueMemberS{Value: cutoff.UTC().Format(time.RFC3339)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInvoiceItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:           inv.ID,
		SubmissionID: inv.SubmissionID,
		AmountUSD:    floatToString(inv.AmountUSD),
		AmountMWK:    floatToString(inv.AmountMWK),
		// due_date is fixed-width RFC3339 so the lexicographic comparison in
		// ListOpenDueBefore is chronological.
		DueDate:   inv.DueDate.UTC().Format(time.RFC3339),
		Status:    string(inv.Status),
		CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amountUSD, _ := strconv.ParseFloat(it.AmountUSD, 64)
	amountMWK, _ := strconv.ParseFloat(it.AmountMWK, 64)
	return entities.Invoice{
		ID:           it.ID,
		SubmissionID: it.SubmissionID,
		AmountUSD:    amountUSD,
		AmountMWK:    amountMWK,
		DueDate:      dueDate,
		Status:       entities.InvoiceStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
