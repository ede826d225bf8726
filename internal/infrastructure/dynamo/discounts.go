package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DiscountCodeRepo provides typed DynamoDB operations for the discount_codes
// table. PK: code.
type DiscountCodeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewDiscountCodeRepo(client *dynamodb.Client, tableName string) *DiscountCodeRepo {
	return &DiscountCodeRepo{client: client, tableName: tableName}
}

func (r *DiscountCodeRepo) Put(ctx context.Context, d *domain.DiscountCode) error {
	item, err := attributevalue.MarshalMap(d)
	if err != nil {
		return fmt.Errorf("marshal discount code: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *DiscountCodeRepo) Get(ctx context.Context, code string) (*domain.DiscountCode, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("code", code),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, domain.ErrDiscountCodeNotFound
	}
	var d domain.DiscountCode
	if err := attributevalue.UnmarshalMap(out.Item, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Scan returns all discount codes. The table is small (administratively
// issued), so a full scan is acceptable.
func (r *DiscountCodeRepo) Scan(ctx context.Context) ([]domain.DiscountCode, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	codes := make([]domain.DiscountCode, 0, len(out.Items))
	for _, item := range out.Items {
		var d domain.DiscountCode
		if err := attributevalue.UnmarshalMap(item, &d); err != nil {
			return nil, err
		}
		codes = append(codes, d)
	}
	return codes, nil
}

func (r *DiscountCodeRepo) Update(ctx context.Context, code string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("code", code),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

func (r *DiscountCodeRepo) Delete(ctx context.Context, code string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("code", code),
	})
	return err
}
