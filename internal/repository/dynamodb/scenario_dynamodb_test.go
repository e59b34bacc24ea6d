package dynamodb

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lcaapi/internal/lca"
	"lcaapi/internal/model"
	"lcaapi/internal/repository"
)

// fakeTable is an in-memory table keyed by "id". Scan returns one item per
// page so pagination is exercised.
type fakeTable struct {
	items   map[string]map[string]types.AttributeValue
	scanErr error
}

func newFakeTable() *fakeTable {
	return &fakeTable{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(key map[string]types.AttributeValue) string {
	if v, ok := key["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeTable) GetItem(_ context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	return &sdk.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeTable) PutItem(_ context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	id := idOf(in.Item)
	_, exists := f.items[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	f.items[id] = in.Item
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeTable) DeleteItem(_ context.Context, in *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	delete(f.items, idOf(in.Key))
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeTable) Scan(_ context.Context, in *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if in.ExclusiveStartKey != nil {
		after := idOf(in.ExclusiveStartKey)
		start = sort.SearchStrings(ids, after) + 1
	}
	if start >= len(ids) {
		return &sdk.ScanOutput{}, nil
	}
	id := ids[start]
	out := &sdk.ScanOutput{Items: []map[string]types.AttributeValue{f.items[id]}}
	if start+1 < len(ids) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: id}}
	}
	return out, nil
}

func scenario(id string, created time.Time) *model.Scenario {
	return &model.Scenario{
		ID:        id,
		Name:      "scenario " + id,
		Inventory: lca.DefaultInventory(),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestScenarioDynamoDB_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioDynamoDB(newFakeTable(), "lca_scenarios")
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	s := scenario("a", now)
	s.Inventory.KOHKG = 0.9

	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "scenario a", got.Name)
	assert.Equal(t, 0.9, got.Inventory.KOHKG)
	assert.Equal(t, lca.DefaultFactors(), got.Inventory.EmissionFactors)
	assert.True(t, now.Equal(got.CreatedAt))

	_, err = repo.Create(ctx, s)
	var ccf *types.ConditionalCheckFailedException
	assert.True(t, errors.As(err, &ccf))
}

func TestScenarioDynamoDB_FindMissing(t *testing.T) {
	repo := NewScenarioDynamoDB(newFakeTable(), "lca_scenarios")

	got, err := repo.FindByID(context.Background(), "missing")

	assert.Nil(t, got)
	assert.True(t, repository.IsNotFound(err))
}

func TestScenarioDynamoDB_List(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioDynamoDB(newFakeTable(), "lca_scenarios")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, scenario(id, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	res, err := repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "c", res.Items[0].ID)
	assert.Equal(t, "b", res.Items[1].ID)

	res, err = repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "a", res.Items[0].ID)

	res, err = repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestScenarioDynamoDB_ListScanError(t *testing.T) {
	table := newFakeTable()
	table.scanErr = errors.New("throttled")
	repo := NewScenarioDynamoDB(table, "lca_scenarios")

	_, err := repo.List(context.Background(), repository.PageQuery{Limit: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestScenarioDynamoDB_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioDynamoDB(newFakeTable(), "lca_scenarios")
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, scenario("a", created))
	require.NoError(t, err)

	next := scenario("a", time.Time{})
	next.Name = "renamed"
	next.UpdatedAt = created.Add(time.Hour)

	got, err := repo.Update(ctx, next)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.True(t, created.Equal(got.CreatedAt))

	_, err = repo.Update(ctx, scenario("missing", created))
	assert.True(t, repository.IsNotFound(err))
}

func TestScenarioDynamoDB_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewScenarioDynamoDB(newFakeTable(), "lca_scenarios")

	_, err := repo.Create(ctx, scenario("a", time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "a"))
	require.NoError(t, repo.Delete(ctx, "a"))

	_, err = repo.FindByID(ctx, "a")
	assert.True(t, repository.IsNotFound(err))
}
