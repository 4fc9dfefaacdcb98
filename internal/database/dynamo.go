package database

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"lead-management-api/internal/config"
)

// API is the subset of the DynamoDB client used by the accessor. Tests
// substitute a fake implementation.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Item is a stored record as a flat attribute map.
type Item = map[string]types.AttributeValue

// Client wraps the primitive DynamoDB operations against named tables.
// No retries, no batching and no transactions are performed here; a failed
// call surfaces as a single StoreError.
type Client struct {
	api API
}

// NewClient creates an accessor over an existing DynamoDB API implementation.
func NewClient(api API) *Client {
	return &Client{api: api}
}

// Connect builds a DynamoDB client from the application configuration. An
// endpoint override switches to static credentials for local development.
func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.Endpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &StoreError{Op: "connect", Table: "-", Err: err}
	}

	api := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	return NewClient(api), nil
}

// GetItem fetches a single item by its full key. A missing item is reported
// as ErrNotFound.
func (c *Client) GetItem(ctx context.Context, table string, key Item) (Item, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       key,
	})
	if err != nil {
		return nil, &StoreError{Op: "get", Table: table, Err: err}
	}
	if len(out.Item) == 0 {
		return nil, &StoreError{Op: "get", Table: table, Err: ErrNotFound}
	}
	return out.Item, nil
}

// Query runs a key-condition query against a secondary index and returns the
// matching items with their count.
func (c *Client) Query(ctx context.Context, table, index, keyCondition string, values Item) ([]Item, int32, error) {
	in := &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		KeyConditionExpression:    aws.String(keyCondition),
		ExpressionAttributeValues: values,
	}
	if index != "" {
		in.IndexName = aws.String(index)
	}

	out, err := c.api.Query(ctx, in)
	if err != nil {
		return nil, 0, &StoreError{Op: "query", Table: table, Err: err}
	}
	return out.Items, out.Count, nil
}

// Create inserts an item. A non-empty condition expression guards the write;
// a rejected condition is reported as ErrConflict.
func (c *Client) Create(ctx context.Context, table string, item Item, condition string, names map[string]string) error {
	in := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	}
	if condition != "" {
		in.ConditionExpression = aws.String(condition)
	}
	if len(names) > 0 {
		in.ExpressionAttributeNames = names
	}

	if _, err := c.api.PutItem(ctx, in); err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return &StoreError{Op: "create", Table: table, Err: ErrConflict}
		}
		return &StoreError{Op: "create", Table: table, Err: err}
	}
	return nil
}

// Update mutates the attributes named in the update expression and returns
// the new values of the updated attributes. Callers perform their own
// existence check first; this call alone would upsert a missing key.
func (c *Client) Update(ctx context.Context, table string, key Item, expression string, values Item) (Item, error) {
	out, err := c.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       key,
		UpdateExpression:          aws.String(expression),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return nil, &StoreError{Op: "update", Table: table, Err: err}
	}
	return out.Attributes, nil
}

// Delete removes an item by its full key. Deleting a missing item is not an
// error at this layer.
func (c *Client) Delete(ctx context.Context, table string, key Item) error {
	if _, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       key,
	}); err != nil {
		return &StoreError{Op: "delete", Table: table, Err: err}
	}
	return nil
}

// Scan returns every item in a table. No pagination is applied; this is
// only suitable for tables expected to stay small.
func (c *Client) Scan(ctx context.Context, table string) ([]Item, error) {
	out, err := c.api.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, &StoreError{Op: "scan", Table: table, Err: err}
	}
	return out.Items, nil
}
