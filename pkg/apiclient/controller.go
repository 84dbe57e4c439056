package apiclient

import (
	"context"
	"strconv"
	"sync"

	"onmo-campaigns/internal/core/domain"
	"onmo-campaigns/internal/core/port"
)

// DemoUserID is the fixed account the demo screens operate on.
const DemoUserID = "demo-user-123"

// ListController caches the campaign list for one user. Campaigns returns
// the cached list, fetching it on first use or after an invalidation;
// Refresh always refetches. A successful create through a CreateForm
// invalidates the cache so the next read sees the new record.
type ListController struct {
	client *Client
	userID string

	mu        sync.Mutex
	campaigns []domain.Campaign
	fresh     bool
}

// NewListController returns a controller for the given user's list screen.
func NewListController(client *Client, userID string) *ListController {
	return &ListController{client: client, userID: userID}
}

// Campaigns returns the cached list, fetching it if the cache is stale.
func (l *ListController) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fresh {
		return l.campaigns, nil
	}
	return l.refreshLocked(ctx)
}

// Refresh refetches the list regardless of cache state.
func (l *ListController) Refresh(ctx context.Context) ([]domain.Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refreshLocked(ctx)
}

// Invalidate marks the cache stale so the next read refetches.
func (l *ListController) Invalidate() {
	l.mu.Lock()
	l.fresh = false
	l.mu.Unlock()
}

func (l *ListController) refreshLocked(ctx context.Context) ([]domain.Campaign, error) {
	campaigns, err := l.client.GetCampaigns(ctx, l.userID)
	if err != nil {
		// a failed fetch leaves the previous cache state untouched
		return nil, err
	}
	l.campaigns = campaigns
	l.fresh = true
	return campaigns, nil
}

// CreateForm holds the state of the create screen: the entered field values
// and the inline errors of the last suggest and submit attempts. Budget is
// kept as entered text and parsed during validation, exactly as the form
// field behaves. Errors are non-blocking: they never clear entered values.
type CreateForm struct {
	client *Client
	list   *ListController

	UserID    string
	Name      string
	Objective domain.Objective
	Budget    string
	Audience  string

	// SuggestErr and SubmitErr hold the inline error of the respective last
	// attempt, nil after a success.
	SuggestErr error
	SubmitErr  error
}

// NewCreateForm returns an empty form for the given user. list may be nil
// when no list screen needs invalidating.
func NewCreateForm(client *Client, list *ListController, userID string) *CreateForm {
	return &CreateForm{client: client, list: list, UserID: userID}
}

// Validate applies the shared campaign schema to the current field values.
// A budget that does not parse as a number fails the same way a missing or
// non-positive one does.
func (f *CreateForm) Validate() []domain.FieldError {
	return f.input().Validate()
}

// CanSuggest reports whether the suggest affordance is enabled: name and
// objective must be present first.
func (f *CreateForm) CanSuggest() bool {
	return f.Name != "" && f.Objective != ""
}

// Suggest asks the API for a recommendation and, on success, overwrites the
// budget and audience fields with the suggested values. On failure the
// previous field values stay untouched and the error is recorded inline.
func (f *CreateForm) Suggest(ctx context.Context) error {
	if !f.CanSuggest() {
		f.SuggestErr = &port.InvalidInputError{Fields: []domain.FieldError{
			{Field: "name", Message: "Campaign name is required"},
			{Field: "objective", Message: "Please select a campaign objective"},
		}}
		return f.SuggestErr
	}

	res, err := f.client.Suggest(ctx, domain.SuggestionRequest{
		Name:      f.Name,
		Objective: f.Objective,
		Budget:    f.input().Budget,
	})
	if err != nil {
		f.SuggestErr = err
		return err
	}

	f.Budget = strconv.FormatFloat(res.BudgetSuggestion, 'f', -1, 64)
	f.Audience = res.AudienceSuggestion
	f.SuggestErr = nil
	return nil
}

// Submit validates the form and creates the campaign. Validation failures
// block the submission locally; a server failure is recorded inline and the
// form stays populated for retry. Success invalidates the list cache.
func (f *CreateForm) Submit(ctx context.Context) (CreateResult, error) {
	if fields := f.Validate(); len(fields) > 0 {
		f.SubmitErr = &port.InvalidInputError{Fields: fields}
		return CreateResult{}, f.SubmitErr
	}

	res, err := f.client.CreateCampaign(ctx, f.input())
	if err != nil {
		f.SubmitErr = err
		return CreateResult{}, err
	}

	f.SubmitErr = nil
	if f.list != nil {
		f.list.Invalidate()
	}
	return res, nil
}

// input assembles the form fields into the shared request type. An
// unparseable budget stays zero, which the schema rejects with the same
// message the user would get for a missing budget.
func (f *CreateForm) input() domain.CampaignInput {
	budget, _ := strconv.ParseFloat(f.Budget, 64)
	return domain.CampaignInput{
		UserID:    f.UserID,
		Name:      f.Name,
		Objective: f.Objective,
		Budget:    budget,
		Audience:  f.Audience,
	}
}
