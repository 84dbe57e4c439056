package dynamo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"onmo-campaigns/internal/core/domain"
	"onmo-campaigns/internal/core/port"
)

// API is the subset of the DynamoDB client the repository uses. The real
// *dynamodb.Client satisfies it; tests substitute a fake.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// CampaignRepository implements port.CampaignRepository on a DynamoDB table
// partitioned by userId with campaignId as the sort key.
type CampaignRepository struct {
	client API
	table  string
}

// NewCampaignRepository returns a repository writing to the given table.
func NewCampaignRepository(client API, table string) *CampaignRepository {
	return &CampaignRepository{client: client, table: table}
}

// campaignItem is the stored attribute layout. Every value is kept as a
// string in the table; Budget is re-parsed to a number on read.
type campaignItem struct {
	UserID     string `dynamodbav:"userId"`
	CampaignID string `dynamodbav:"campaignId"`
	Name       string `dynamodbav:"name"`
	Objective  string `dynamodbav:"objective"`
	Budget     string `dynamodbav:"budget"`
	Audience   string `dynamodbav:"audience"`
	CreatedAt  string `dynamodbav:"createdAt"`
}

func toItem(c domain.Campaign) campaignItem {
	return campaignItem{
		UserID:     c.UserID,
		CampaignID: c.CampaignID,
		Name:       c.Name,
		Objective:  string(c.Objective),
		Budget:     strconv.FormatFloat(c.Budget, 'f', -1, 64),
		Audience:   c.Audience,
		CreatedAt:  c.CreatedAt,
	}
}

func (it campaignItem) toCampaign() (domain.Campaign, error) {
	budget, err := strconv.ParseFloat(it.Budget, 64)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %s has non-numeric budget %q: %w", it.CampaignID, it.Budget, err)
	}
	return domain.Campaign{
		CampaignID: it.CampaignID,
		UserID:     it.UserID,
		Name:       it.Name,
		Objective:  domain.Objective(it.Objective),
		Budget:     budget,
		Audience:   it.Audience,
		CreatedAt:  it.CreatedAt,
	}, nil
}

// Put writes a full campaign record. The fresh campaign id makes every call
// a new record; there is no upsert semantic to preserve.
func (r *CampaignRepository) Put(ctx context.Context, c domain.Campaign) error {
	item, err := attributevalue.MarshalMap(toItem(c))
	if err != nil {
		return fmt.Errorf("%w: marshal campaign: %s", port.ErrStorage, err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("%w: put campaign: %s", port.ErrStorage, err)
	}
	return nil
}

// QueryByUser returns all campaigns in the user's partition in store order.
func (r *CampaignRepository) QueryByUser(ctx context.Context, userID string) ([]domain.Campaign, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: query campaigns: %s", port.ErrStorage, err)
	}

	campaigns := make([]domain.Campaign, 0, len(out.Items))
	for _, raw := range out.Items {
		var it campaignItem
		if err = attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, fmt.Errorf("%w: unmarshal campaign: %s", port.ErrStorage, err)
		}
		c, err := it.toCampaign()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", port.ErrStorage, err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
