package dynamo

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onmo-campaigns/internal/core/domain"
	"onmo-campaigns/internal/core/port"
)

// fakeDynamo captures inputs and plays back canned outputs.
type fakeDynamo struct {
	putInput   *dynamodb.PutItemInput
	putErr     error
	queryInput *dynamodb.QueryInput
	queryOut   *dynamodb.QueryOutput
	queryErr   error
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putInput = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryInput = params
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.queryOut, nil
}

func testCampaign() domain.Campaign {
	return domain.Campaign{
		CampaignID: "c1",
		UserID:     "u1",
		Name:       "Spring Sale",
		Objective:  domain.ObjectiveTraffic,
		Budget:     500,
		Audience:   "Adults 25-45 interested in outdoor gear",
		CreatedAt:  "2026-09-01T10:00:00Z",
	}
}

func stringAttr(t *testing.T, item map[string]types.AttributeValue, key string) string {
	t.Helper()
	av, ok := item[key]
	require.True(t, ok, "attribute %s missing", key)
	s, ok := av.(*types.AttributeValueMemberS)
	require.True(t, ok, "attribute %s is %T, want string", key, av)
	return s.Value
}

func TestPutStoresEveryAttributeAsString(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewCampaignRepository(fake, "campaigns")

	require.NoError(t, repo.Put(context.Background(), testCampaign()))
	require.NotNil(t, fake.putInput)
	assert.Equal(t, "campaigns", *fake.putInput.TableName)

	item := fake.putInput.Item
	assert.Equal(t, "u1", stringAttr(t, item, "userId"))
	assert.Equal(t, "c1", stringAttr(t, item, "campaignId"))
	assert.Equal(t, "Spring Sale", stringAttr(t, item, "name"))
	assert.Equal(t, "Traffic", stringAttr(t, item, "objective"))
	assert.Equal(t, "500", stringAttr(t, item, "budget"))
	assert.Equal(t, "Adults 25-45 interested in outdoor gear", stringAttr(t, item, "audience"))
	assert.Equal(t, "2026-09-01T10:00:00Z", stringAttr(t, item, "createdAt"))
}

func TestPutWrapsStoreError(t *testing.T) {
	fake := &fakeDynamo{putErr: errors.New("throughput exceeded")}
	repo := NewCampaignRepository(fake, "campaigns")

	err := repo.Put(context.Background(), testCampaign())
	require.ErrorIs(t, err, port.ErrStorage)
	assert.Contains(t, err.Error(), "throughput exceeded")
}

func TestQueryByUserParsesRecords(t *testing.T) {
	want := testCampaign()
	fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{{
			"userId":     &types.AttributeValueMemberS{Value: want.UserID},
			"campaignId": &types.AttributeValueMemberS{Value: want.CampaignID},
			"name":       &types.AttributeValueMemberS{Value: want.Name},
			"objective":  &types.AttributeValueMemberS{Value: string(want.Objective)},
			"budget":     &types.AttributeValueMemberS{Value: "500"},
			"audience":   &types.AttributeValueMemberS{Value: want.Audience},
			"createdAt":  &types.AttributeValueMemberS{Value: want.CreatedAt},
		}},
	}}
	repo := NewCampaignRepository(fake, "campaigns")

	campaigns, err := repo.QueryByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, want, campaigns[0])

	require.NotNil(t, fake.queryInput)
	assert.Equal(t, "userId = :uid", *fake.queryInput.KeyConditionExpression)
	uid, ok := fake.queryInput.ExpressionAttributeValues[":uid"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "u1", uid.Value)
}

func TestQueryByUserEmptyPartition(t *testing.T) {
	fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{}}
	repo := NewCampaignRepository(fake, "campaigns")

	campaigns, err := repo.QueryByUser(context.Background(), "nobody")
	require.NoError(t, err)
	require.NotNil(t, campaigns)
	assert.Empty(t, campaigns)
}

func TestQueryByUserRejectsNonNumericBudget(t *testing.T) {
	fake := &fakeDynamo{queryOut: &dynamodb.QueryOutput{
		Items: []map[string]types.AttributeValue{{
			"userId":     &types.AttributeValueMemberS{Value: "u1"},
			"campaignId": &types.AttributeValueMemberS{Value: "c1"},
			"budget":     &types.AttributeValueMemberS{Value: "$500"},
		}},
	}}
	repo := NewCampaignRepository(fake, "campaigns")

	_, err := repo.QueryByUser(context.Background(), "u1")
	require.ErrorIs(t, err, port.ErrStorage)
}

func TestQueryByUserWrapsStoreError(t *testing.T) {
	fake := &fakeDynamo{queryErr: errors.New("connection reset")}
	repo := NewCampaignRepository(fake, "campaigns")

	_, err := repo.QueryByUser(context.Background(), "u1")
	require.ErrorIs(t, err, port.ErrStorage)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBudgetRoundTrip(t *testing.T) {
	for _, budget := range []float64{500, 0.01, 1234.56, 99999.999} {
		c := testCampaign()
		c.Budget = budget

		got, err := toItem(c).toCampaign()
		require.NoError(t, err)
		assert.Equal(t, budget, got.Budget)
	}
}
