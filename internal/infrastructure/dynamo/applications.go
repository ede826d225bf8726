package dynamo

import (
	"context"
	"fmt"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// JobApplicationRepo provides typed DynamoDB operations for the
// job_applications table. PK: application_id.
type JobApplicationRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewJobApplicationRepo(client *dynamodb.Client, tableName string) *JobApplicationRepo {
	return &JobApplicationRepo{client: client, tableName: tableName}
}

func (r *JobApplicationRepo) Put(ctx context.Context, a *domain.JobApplication) error {
	item, err := attributevalue.MarshalMap(a)
	if err != nil {
		return fmt.Errorf("marshal job application: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *JobApplicationRepo) Get(ctx context.Context, applicationID string) (*domain.JobApplication, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("application_id", applicationID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("job application: %w", domain.ErrNotFound)
	}
	var a domain.JobApplication
	if err := attributevalue.UnmarshalMap(out.Item, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
