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
	defaultSubmissionsTableName = "submissions"
	submissionsStatusIndex      = "status-index"
	submissionsAuthorEmailIndex = "author_email-index"
	submissionsResubOfIndex     = "resubmission_of-index"
)

type submissionItem struct {
	ID                string   `dynamodbav:"id"`
	AuthorFullName    string   `dynamodbav:"author_full_name"`
	AuthorEmail       string   `dynamodbav:"author_email"`
	AuthorCountry     string   `dynamodbav:"author_country,omitempty"`
	AuthorInstitution string   `dynamodbav:"author_institution,omitempty"`
	Field             string   `dynamodbav:"field"`
	Year              int      `dynamodbav:"year,omitempty"`
	Title             string   `dynamodbav:"title"`
	Keywords          []string `dynamodbav:"keywords,omitempty"`
	AbstractText      string   `dynamodbav:"abstract_text,omitempty"`
	DocumentRef       string   `dynamodbav:"document_ref,omitempty"`
	Status            string   `dynamodbav:"status"`
	PaymentStatus     string   `dynamodbav:"payment_status"`
	ResubmissionOf    string   `dynamodbav:"resubmission_of,omitempty"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// SubmissionDynamoRepository persists Submission entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//   - GSI: author_email-index (PK: author_email)
//   - GSI: resubmission_of-index (PK: resubmission_of)
//
// Status flips go through conditional updates on the expected current value,
// so concurrent lifecycle mutations on the same submission serialize at the
// table.

type SubmissionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubmissionRepository = (*SubmissionDynamoRepository)(nil)

func NewSubmissionDynamoRepository(ddb *dynamodb.Client) *SubmissionDynamoRepository {
	return &SubmissionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUBMISSIONS_TABLE", defaultSubmissionsTableName),
	}
}

func (r *SubmissionDynamoRepository) Create(ctx context.Context, s entities.Submission) (entities.Submission, error) {
	it := toSubmissionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Submission{}, err
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
		return entities.Submission{}, err
	}
	return s, nil
}

func (r *SubmissionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Submission{}, err
	}
	if len(out.Item) == 0 {
		return entities.Submission{}, nil
	}

	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it), nil
}

func (r *SubmissionDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.SubmissionStatus) (entities.Submission, error) {
	return r.update(ctx, id,
		"SET #status = :to, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :from",
		map[string]types.AttributeValue{
			":to":   &types.AttributeValueMemberS{Value: string(to)},
			":from": &types.AttributeValueMemberS{Value: string(from)},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *SubmissionDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Submission, error) {
	return r.update(ctx, id,
		"SET #payment_status = :payment_status, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#payment_status": "payment_status"},
	)
}

func (r *SubmissionDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Submission, error) {
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
			return entities.Submission{}, nil
		}
		return entities.Submission{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Submission{}, nil
	}
	var it submissionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Submission{}, err
	}
	return fromSubmissionItem(it), nil
}

func (r *SubmissionDynamoRepository) ListByStatus(ctx context.Context, status entities.SubmissionStatus) ([]entities.Submission, error) {
	return r.query(ctx, submissionsStatusIndex, "#status = :v", map[string]string{"#status": "status"}, string(status))
}

func (r *SubmissionDynamoRepository) ListByAuthorEmail(ctx context.Context, email string) ([]entities.Submission, error) {
	return r.query(ctx, submissionsAuthorEmailIndex, "author_email = :v", nil, email)
}

func (r *SubmissionDynamoRepository) HasResubmission(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(submissionsResubOfIndex),
		KeyConditionExpression: aws.String("resubmission_of = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: id},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *SubmissionDynamoRepository) query(ctx context.Context, index, keyExpr string, names map[string]string, value string) ([]entities.Submission, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Submission, 0, len(out.Items))
	for _, raw := range out.Items {
		var it submissionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromSubmissionItem(it))
	}
	return items, nil
}

func toSubmissionItem(s entities.Submission) submissionItem {
	return submissionItem{
		ID:                s.ID,
		AuthorFullName:    s.Author.FullName,
		AuthorEmail:       s.Author.Email,
		AuthorCountry:     s.Author.Country,
		AuthorInstitution: s.Author.Institution,
		Field:             string(s.Field),
		Year:              s.Year,
		Title:             s.Title,
		Keywords:          s.Keywords,
		AbstractText:      s.AbstractText,
		DocumentRef:       s.DocumentRef,
		Status:            string(s.Status),
		PaymentStatus:     string(s.PaymentStatus),
		ResubmissionOf:    s.ResubmissionOf,
		CreatedAt:         s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromSubmissionItem(it submissionItem) entities.Submission {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Submission{
		ID: it.ID,
		Author: entities.Author{
			FullName:    it.AuthorFullName,
			Email:       it.AuthorEmail,
			Country:     it.AuthorCountry,
			Institution: it.AuthorInstitution,
		},
		Field:          entities.ResearchField(it.Field),
		Year:           it.Year,
		Title:          it.Title,
		Keywords:       it.Keywords,
		AbstractText:   it.AbstractText,
		DocumentRef:    it.DocumentRef,
		Status:         entities.SubmissionStatus(it.Status),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		ResubmissionOf: it.ResubmissionOf,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
