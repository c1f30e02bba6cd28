package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//
// When DYNAMODB_ENDPOINT is set the enrollment tables are created on startup
// if they do not exist yet.
func ConnectDynamoDB() *dynamodb.Client {
	ctx := context.Background()
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	if endpoint != "" {
		if err := EnsureTables(ctx, client, TableDefinitionsFromEnv()); err != nil {
			log.Fatalf("failed to prepare local dynamodb tables: %v", err)
		}
	}
	return client
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(creds),
	)
}

// TableDefinition describes a table keyed by a string "id" with optional
// single-attribute global secondary indexes (index name -> hash key).
type TableDefinition struct {
	Name    string
	Indexes map[string]string
}

func TableDefinitionsFromEnv() []TableDefinition {
	return []TableDefinition{
		{
			Name:    getenvDefault("ENROLLMENTS_TABLE", "enrollments"),
			Indexes: map[string]string{"user_id-index": "user_id"},
		},
		{
			Name:    getenvDefault("USERS_TABLE", "users"),
			Indexes: map[string]string{"username-index": "username"},
		},
		{
			Name: getenvDefault("COURSES_TABLE", "courses"),
		},
	}
}

// EnsureTables creates every missing table with on-demand billing.
func EnsureTables(ctx context.Context, client *dynamodb.Client, defs []TableDefinition) error {
	for _, def := range defs {
		_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.Name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return err
		}

		log.Printf("[database] creating table=%s", def.Name)
		if _, err := client.CreateTable(ctx, CreateTableInput(def)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return err
		}
	}
	return nil
}

func CreateTableInput(def TableDefinition) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
	}
	var gsis []types.GlobalSecondaryIndex
	for name, hashKey := range def.Indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(hashKey), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(hashKey), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(def.Name),
		BillingMode:            types.BillingModePayPerRequest,
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
