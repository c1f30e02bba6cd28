package repository

import (
	"context"
	"errors"
	"time"

	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEnrollmentsTableName = "enrollments"
	enrollmentsUserIDIndex      = "user_id-index"

	itemTypeEnrollment = "ENROLLMENT"
	itemTypePair       = "PAIR"
)

type enrollmentItem struct {
	ID                string `dynamodbav:"id"`
	ItemType          string `dynamodbav:"item_type"`
	UserID            string `dynamodbav:"user_id"`
	CourseID          string `dynamodbav:"course_id"`
	Status            string `dynamodbav:"status"`
	RequestedAt       string `dynamodbav:"requested_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
	LastTransactionID string `dynamodbav:"last_transaction_id,omitempty"`
}

// pairItem reserves a (user, course) slot. It has no user_id attribute so it
// stays out of the user_id-index.
type pairItem struct {
	ID           string `dynamodbav:"id"`
	ItemType     string `dynamodbav:"item_type"`
	EnrollmentID string `dynamodbav:"enrollment_id"`
}

// EnrollmentDynamoRepository persists Enrollment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Every enrollment is written together with a guard item whose id is
// PAIR#<user_id>#<course_id>, inside one transaction conditioned on both ids
// being absent. DynamoDB therefore rejects a second enrollment for the same
// pair even when two requests race past the use case's pre-check.

type EnrollmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEnrollmentRepository = (*EnrollmentDynamoRepository)(nil)

func NewEnrollmentDynamoRepository(ddb *dynamodb.Client) *EnrollmentDynamoRepository {
	return &EnrollmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENROLLMENTS_TABLE", defaultEnrollmentsTableName),
	}
}

func pairID(userID, courseID string) string {
	return itemTypePair + "#" + userID + "#" + courseID
}

func (r *EnrollmentDynamoRepository) InsertIfAbsent(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	enrollmentAV, err := attributevalue.MarshalMap(toEnrollmentItem(e))
	if err != nil {
		return entities.Enrollment{}, err
	}
	pairAV, err := attributevalue.MarshalMap(pairItem{
		ID:           pairID(e.UserID, e.CourseID),
		ItemType:     itemTypePair,
		EnrollmentID: e.ID,
	})
	if err != nil {
		return entities.Enrollment{}, err
	}

	absent := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: pairAV, ConditionExpression: absent, ExpressionAttributeNames: names}},
			{Put: &types.Put{TableName: aws.String(r.tableName), Item: enrollmentAV, ConditionExpression: absent, ExpressionAttributeNames: names}},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Enrollment{}, interfaces.ErrEnrollmentConflict
		}
		return entities.Enrollment{}, err
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Enrollment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enrollment{}, nil
	}

	var it enrollmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enrollment{}, err
	}
	if it.ItemType != itemTypeEnrollment {
		return entities.Enrollment{}, nil
	}
	return fromEnrollmentItem(it), nil
}

func (r *EnrollmentDynamoRepository) GetByUserAndCourse(ctx context.Context, userID, courseID string) (entities.Enrollment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: pairID(userID, courseID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enrollment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enrollment{}, nil
	}

	var it pairItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enrollment{}, err
	}
	if it.EnrollmentID == "" {
		return entities.Enrollment{}, nil
	}
	return r.GetByID(ctx, it.EnrollmentID)
}

// Update replaces the whole record. The (user, course) pair of a stored
// enrollment never changes, so the write is conditioned on it.
func (r *EnrollmentDynamoRepository) Update(ctx context.Context, e entities.Enrollment) (entities.Enrollment, error) {
	av, err := attributevalue.MarshalMap(toEnrollmentItem(e))
	if err != nil {
		return entities.Enrollment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #item_type = :item_type AND #user_id = :user_id AND #course_id = :course_id"),
		ExpressionAttributeNames: map[string]string{
			"#id":        "id",
			"#item_type": "item_type",
			"#user_id":   "user_id",
			"#course_id": "course_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_type": &types.AttributeValueMemberS{Value: itemTypeEnrollment},
			":user_id":   &types.AttributeValueMemberS{Value: e.UserID},
			":course_id": &types.AttributeValueMemberS{Value: e.CourseID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Enrollment{}, interfaces.ErrEnrollmentMissing
		}
		return entities.Enrollment{}, err
	}
	return e, nil
}

func (r *EnrollmentDynamoRepository) FindByUser(ctx context.Context, userID string) ([]entities.Enrollment, error) {
	return r.queryByUser(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(enrollmentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
}

func (r *EnrollmentDynamoRepository) FindByUserAndStatus(ctx context.Context, userID string, status entities.EnrollmentStatus) ([]entities.Enrollment, error) {
	return r.queryByUser(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(enrollmentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
}

func (r *EnrollmentDynamoRepository) ListAll(ctx context.Context) ([]entities.Enrollment, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#item_type = :item_type"),
		ExpressionAttributeNames: map[string]string{
			"#item_type": "item_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_type": &types.AttributeValueMemberS{Value: itemTypeEnrollment},
		},
	})

	items := []entities.Enrollment{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if items, err = appendEnrollmentItems(items, page.Items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *EnrollmentDynamoRepository) queryByUser(ctx context.Context, in *dynamodb.QueryInput) ([]entities.Enrollment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, in)

	items := []entities.Enrollment{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		if items, err = appendEnrollmentItems(items, page.Items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func appendEnrollmentItems(dst []entities.Enrollment, raw []map[string]types.AttributeValue) ([]entities.Enrollment, error) {
	for _, av := range raw {
		var it enrollmentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		dst = append(dst, fromEnrollmentItem(it))
	}
	return dst, nil
}

// isConditionalCancellation reports whether a transaction was cancelled
// because one of its condition expressions failed.
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toEnrollmentItem(e entities.Enrollment) enrollmentItem {
	return enrollmentItem{
		ID:                e.ID,
		ItemType:          itemTypeEnrollment,
		UserID:            e.UserID,
		CourseID:          e.CourseID,
		Status:            string(e.Status),
		RequestedAt:       e.RequestedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		LastTransactionID: e.LastTransactionID,
	}
}

func fromEnrollmentItem(it enrollmentItem) entities.Enrollment {
	requestedAt, _ := time.Parse(time.RFC3339Nano, it.RequestedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Enrollment{
		ID:                it.ID,
		UserID:            it.UserID,
		CourseID:          it.CourseID,
		Status:            entities.EnrollmentStatus(it.Status),
		RequestedAt:       requestedAt,
		UpdatedAt:         updatedAt,
		LastTransactionID: it.LastTransactionID,
	}
}
