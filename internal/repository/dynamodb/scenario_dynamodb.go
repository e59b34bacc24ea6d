// Package dynamodb stores scenarios in an AWS DynamoDB table whose partition
// key is the string attribute "id". Attribute names follow the JSON field names
// of the model.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"lcaapi/internal/config"
	"lcaapi/internal/model"
	"lcaapi/internal/repository"
)

// API is the subset of the DynamoDB client used by ScenarioDynamoDB.
type API interface {
	GetItem(ctx context.Context, in *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, in *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Scan(ctx context.Context, in *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
}

// NewClient builds a DynamoDB client. Static credentials are used when both keys
// are set; otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, c config.DynamoDBConfig) (*sdk.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(c.Region)}
	if c.AccessKey != "" && c.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

// ScenarioDynamoDB is a DynamoDB implementation of repository.ScenarioRepository.
type ScenarioDynamoDB struct {
	client API
	table  string
}

// NewScenarioDynamoDB creates a scenario repository over the given table.
func NewScenarioDynamoDB(client API, table string) *ScenarioDynamoDB {
	return &ScenarioDynamoDB{client: client, table: table}
}

var _ repository.ScenarioRepository = (*ScenarioDynamoDB)(nil)

func useJSONTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }

func decodeJSONTags(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

func (d *ScenarioDynamoDB) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
}

func (d *ScenarioDynamoDB) put(ctx context.Context, s *model.Scenario, condition string) error {
	item, err := attributevalue.MarshalMapWithOptions(s, useJSONTags)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	_, err = d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           aws.String(d.table),
		Item:                item,
		ConditionExpression: aws.String(condition),
	})
	return err
}

// Create stores a new scenario. An existing ID is rejected.
func (d *ScenarioDynamoDB) Create(ctx context.Context, s *model.Scenario) (*model.Scenario, error) {
	if err := d.put(ctx, s, "attribute_not_exists(id)"); err != nil {
		return nil, fmt.Errorf("PutItem error: %w", err)
	}
	out := *s
	return &out, nil
}

// FindByID returns repository.ErrNotFound when no item has the ID.
func (d *ScenarioDynamoDB) FindByID(ctx context.Context, id string) (*model.Scenario, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      aws.String(d.table),
		Key:            d.key(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, repository.ErrNotFound
	}

	var s model.Scenario
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, &s, decodeJSONTags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &s, nil
}

// List scans the whole table and pages in memory, newest first.
// Scenario tables are small; a GSI on created_at would be needed beyond that.
func (d *ScenarioDynamoDB) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Scenario], error) {
	var all []model.Scenario

	p := sdk.NewScanPaginator(d.client, &sdk.ScanInput{TableName: aws.String(d.table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("Scan error: %w", err)
		}
		var items []model.Scenario
		if err := attributevalue.UnmarshalListOfMapsWithOptions(page.Items, &items, decodeJSONTags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal items: %w", err)
		}
		all = append(all, items...)
	}

	slices.SortFunc(all, func(a, b model.Scenario) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})

	total := len(all)
	start := min(max(pq.Offset, 0), total)
	end := total
	if pq.Limit > 0 {
		end = min(start+pq.Limit, total)
	}

	items := make([]model.Scenario, 0, end-start)
	items = append(items, all[start:end]...)
	return &repository.PageResult[model.Scenario]{Items: items, Total: total}, nil
}

// Update replaces an existing scenario item; a missing item yields repository.ErrNotFound.
// CreatedAt is preserved from the stored item.
func (d *ScenarioDynamoDB) Update(ctx context.Context, s *model.Scenario) (*model.Scenario, error) {
	current, err := d.FindByID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	next := *s
	next.CreatedAt = current.CreatedAt

	if err := d.put(ctx, &next, "attribute_exists(id)"); err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("PutItem error: %w", err)
	}
	return &next, nil
}

// Delete removes a scenario item. Deleting a missing item is not an error.
func (d *ScenarioDynamoDB) Delete(ctx context.Context, id string) error {
	_, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(id),
	})
	if err != nil {
		return fmt.Errorf("DeleteItem error: %w", err)
	}
	return nil
}
