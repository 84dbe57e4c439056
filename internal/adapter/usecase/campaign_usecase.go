package usecase

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"onmo-campaigns/internal/core/domain"
	"onmo-campaigns/internal/core/port"
)

// CampaignUseCase implements the business operations: creating campaigns,
// listing them per user, and requesting suggestions. It orchestrates the
// repository and suggester ports and owns the authoritative input
// validation; adapters on either side never trust the client.
type CampaignUseCase struct {
	repo      port.CampaignRepository
	suggester port.Suggester
}

// NewCampaignUseCase creates a usecase with the provided outbound ports.
func NewCampaignUseCase(repo port.CampaignRepository, suggester port.Suggester) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, suggester: suggester}
}

// Create validates the input, assigns a fresh campaign id plus an RFC3339
// creation timestamp, and persists the record. Invalid input returns an
// *port.InvalidInputError without touching the store.
func (u *CampaignUseCase) Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return domain.Campaign{}, &port.InvalidInputError{Fields: fields}
	}

	c := in.Campaign(uuid.NewString(), time.Now().UTC().Format(time.RFC3339))
	if err := u.repo.Put(ctx, c); err != nil {
		return domain.Campaign{}, err
	}
	return c, nil
}

// List returns the user's campaigns ordered by creation time, oldest first.
// The store does not guarantee chronological order, so the usecase sorts
// explicitly; campaign id breaks ties to keep the order stable. The result
// is never nil.
func (u *CampaignUseCase) List(ctx context.Context, userID string) ([]domain.Campaign, error) {
	if userID == "" {
		return nil, &port.InvalidInputError{Fields: []domain.FieldError{
			{Field: "userId", Message: "Missing userId query param"},
		}}
	}

	campaigns, err := u.repo.QueryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	// RFC3339 timestamps sort chronologically as strings.
	slices.SortFunc(campaigns, func(a, b domain.Campaign) int {
		if c := strings.Compare(a.CreatedAt, b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.CampaignID, b.CampaignID)
	})
	return campaigns, nil
}

// Suggest validates the request and delegates to the suggestion gateway.
// Missing fields return an *port.InvalidInputError without an upstream call.
func (u *CampaignUseCase) Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return domain.SuggestionResult{}, &port.InvalidInputError{Fields: fields}
	}
	return u.suggester.Suggest(ctx, req)
}
