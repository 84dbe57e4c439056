package port

import (
	"context"
	"strings"

	"onmo-campaigns/internal/core/domain"
)

// CampaignUseCase defines the business operations of the service. This
// interface is the primary port into the application domain; mock
// implementations are generated from it for handler tests.
type CampaignUseCase interface {
	// Create validates the input, assigns a fresh campaign id and creation
	// timestamp, and persists the record. Invalid input yields an
	// *InvalidInputError and causes no store call.
	Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error)

	// List returns every campaign of the given user, ordered by creation
	// time (oldest first). The slice is empty, never nil, for users without
	// campaigns. An empty user id yields an *InvalidInputError.
	List(ctx context.Context, userID string) ([]domain.Campaign, error)

	// Suggest asks the completion service for an audience and budget
	// recommendation. Missing required fields yield an *InvalidInputError
	// and cause no upstream call.
	Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error)
}

// InvalidInputError reports request input that failed the campaign schema.
// It carries the per-field messages so the transport layer can return them
// alongside the generic 400 error.
type InvalidInputError struct {
	Fields []domain.FieldError
}

func (e *InvalidInputError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}
