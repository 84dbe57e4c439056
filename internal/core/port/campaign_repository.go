package port

import (
	"context"
	"errors"

	"onmo-campaigns/internal/core/domain"
)

// ErrStorage marks failures of the campaign store. Repository
// implementations wrap the underlying error into it so callers can map the
// whole class to a 500-class response without inspecting SDK types.
var ErrStorage = errors.New("campaign store failure")

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port: the store behind it is a partitioned key-value store keyed
// by user id, with the campaign id as the secondary identifier. There is no
// upsert semantic; every Put with a fresh campaign id creates a new record.
type CampaignRepository interface {
	// Put writes a full campaign record. Transport and store errors are
	// wrapped into ErrStorage; there is no retry.
	Put(ctx context.Context, c domain.Campaign) error
	// QueryByUser returns every campaign sharing the user partition key. The
	// order is store-defined. The slice is empty, never nil, when the user
	// has no campaigns.
	QueryByUser(ctx context.Context, userID string) ([]domain.Campaign, error)
}
