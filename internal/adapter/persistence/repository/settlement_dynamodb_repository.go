package repository

import (
	"context"
	"errors"
	"time"

	"research_hub/internal/domain/entities"
	"research_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SettlementDynamoRepository commits the settle-succeeded write set with a
// single TransactWriteItems spanning the invoices, payment_attempts and
// submissions tables. A process crash can never leave a paid invoice with a
// pending attempt or an unreconciled submission.

type SettlementDynamoRepository struct {
	ddb              *dynamodb.Client
	invoicesTable    string
	attemptsTable    string
	submissionsTable string
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb *dynamodb.Client) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{
		ddb:              ddb,
		invoicesTable:    getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		attemptsTable:    getenvDefault("PAYMENT_ATTEMPTS_TABLE", defaultAttemptsTableName),
		submissionsTable: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

// SettleSucceeded flips invoice open->paid, attempt pending->succeeded and
// submission payment_status->paid, and releases the open-invoice marker.
// All four writes commit or none do; false means a condition failed.
func (r *SettlementDynamoRepository) SettleSucceeded(ctx context.Context, invoiceID, attemptID, submissionID string) (bool, error) {
	updatedAt := &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Update: &types.Update{
				TableName: aws.String(r.invoicesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: invoiceID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open"),
				UpdateExpression:    aws.String("SET #status = :paid, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":open":       &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusOpen)},
					":paid":       &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
					":updated_at": updatedAt,
				},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.invoicesTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: openMarkerID(submissionID)},
				},
				ConditionExpression:      aws.String("attribute_not_exists(#id) OR #invoice_id = :iid"),
				ExpressionAttributeNames: map[string]string{"#id": "id", "#invoice_id": "invoice_id"},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":iid": &types.AttributeValueMemberS{Value: invoiceID},
				},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.attemptsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: attemptID},
				},
				ConditionExpression: aws.String("attribute_exists(#id) AND #outcome = :pending"),
				UpdateExpression:    aws.String("SET #outcome = :succeeded, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#outcome":    "outcome",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending":    &types.AttributeValueMemberS{Value: string(entities.PaymentOutcomePending)},
					":succeeded":  &types.AttributeValueMemberS{Value: string(entities.PaymentOutcomeSucceeded)},
					":updated_at": updatedAt,
				},
			}},
			{Update: &types.Update{
				TableName: aws.String(r.submissionsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: submissionID},
				},
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #payment_status = :paid, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#id":             "id",
					"#payment_status": "payment_status",
					"#updated_at":     "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":paid":       &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
					":updated_at": updatedAt,
				},
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
