package repository

import (
	"context"

	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName   = "users"
	defaultCoursesTableName = "courses"
	usersUsernameIndex      = "username-index"
)

type userItem struct {
	ID       string `dynamodbav:"id"`
	Username string `dynamodbav:"username"`
	Role     string `dynamodbav:"role"`
}

type courseItem struct {
	ID    string `dynamodbav:"id"`
	Title string `dynamodbav:"title"`
}

// UserDynamoRepository reads platform users. Users are owned by the
// identity side of the platform; this service never writes them.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: username-index (PK: username)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserDirectory = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) FindByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) FindByUsername(ctx context.Context, username string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersUsernameIndex),
		KeyConditionExpression: aws.String("username = :u"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u": &types.AttributeValueMemberS{Value: username},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{ID: it.ID, Username: it.Username, Role: it.Role}
}

// CourseDynamoRepository reads the course catalog.
//
// Table requirements:
//   - PK: id (string)

type CourseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICourseCatalog = (*CourseDynamoRepository)(nil)

func NewCourseDynamoRepository(ddb *dynamodb.Client) *CourseDynamoRepository {
	return &CourseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COURSES_TABLE", defaultCoursesTableName),
	}
}

func (r *CourseDynamoRepository) FindByID(ctx context.Context, id string) (entities.Course, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Course{}, err
	}
	if len(out.Item) == 0 {
		return entities.Course{}, nil
	}

	var it courseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Course{}, err
	}
	return entities.Course{ID: it.ID, Title: it.Title}, nil
}
