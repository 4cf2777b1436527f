package repository

import (
	"context"
	"errors"
	"time"

	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "payment_sessions"

var (
	ErrSessionAlreadyExists    = errors.New("payment session already exists")
	ErrSessionAlreadyCompleted = errors.New("payment session already completed")
)

// dynamoAPI is the part of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type paymentSessionItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"type"`
	Flow        string `dynamodbav:"flow,omitempty"`
	State       string `dynamodbav:"state"`
	ErrorKind   string `dynamodbav:"error_kind,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

// SessionDynamoRepository persists PaymentSession records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SessionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

// NewSessionDynamoRepository uses the payment_sessions table when tableName is empty.
func NewSessionDynamoRepository(ddb dynamoAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SessionDynamoRepository) Create(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
	av, err := attributevalue.MarshalMap(toPaymentSessionItem(s))
	if err != nil {
		return entities.PaymentSession{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.PaymentSession{}, ErrSessionAlreadyExists
		}
		return entities.PaymentSession{}, err
	}
	return s, nil
}

func (r *SessionDynamoRepository) MarkCompleted(ctx context.Context, id string, state entities.SessionState, kind entities.ErrorKind, completedAt time.Time) (entities.PaymentSession, error) {
	update := "SET #state = :state, #completed_at = :completed_at"
	names := map[string]string{
		"#state":        "state",
		"#completed_at": "completed_at",
	}
	values := map[string]types.AttributeValue{
		":state":        &types.AttributeValueMemberS{Value: string(state)},
		":pending":      &types.AttributeValueMemberS{Value: string(entities.SessionStatePending)},
		":completed_at": &types.AttributeValueMemberS{Value: completedAt.UTC().Format(time.RFC3339Nano)},
	}
	if kind != "" {
		update += ", #error_kind = :error_kind"
		names["#error_kind"] = "error_kind"
		values[":error_kind"] = &types.AttributeValueMemberS{Value: string(kind)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("#state = :pending"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.PaymentSession{}, ErrSessionAlreadyCompleted
		}
		return entities.PaymentSession{}, err
	}

	var it paymentSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PaymentSession{}, err
	}
	return fromPaymentSessionItem(it), nil
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func toPaymentSessionItem(s entities.PaymentSession) paymentSessionItem {
	it := paymentSessionItem{
		ID:        s.ID,
		Type:      string(s.Type),
		Flow:      string(s.Flow),
		State:     string(s.State),
		ErrorKind: string(s.ErrorKind),
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !s.CompletedAt.IsZero() {
		it.CompletedAt = s.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentSessionItem(it paymentSessionItem) entities.PaymentSession {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var completed time.Time
	if it.CompletedAt != "" {
		completed, _ = time.Parse(time.RFC3339Nano, it.CompletedAt)
	}
	return entities.PaymentSession{
		ID:          it.ID,
		Type:        entities.RequestType(it.Type),
		Flow:        entities.PaymentFlow(it.Flow),
		State:       entities.SessionState(it.State),
		ErrorKind:   entities.ErrorKind(it.ErrorKind),
		CreatedAt:   created,
		CompletedAt: completed,
	}
}
