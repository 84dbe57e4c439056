package port

import (
	"context"
	"errors"

	"onmo-campaigns/internal/core/domain"
)

// ErrSuggestionUpstream marks transport or service failures of the
// completion call.
var ErrSuggestionUpstream = errors.New("suggestion service failure")

// ErrMalformedSuggestion marks completions that did not honour the output
// contract: non-JSON text, a missing field, an empty audience, or a budget
// that is not a bare positive JSON number. These are hard failures, not
// retry targets.
var ErrMalformedSuggestion = errors.New("malformed suggestion response")

// Suggester defines the outbound port to the completion service. A call is
// a single attempt with no caching and no retries; the result is never
// persisted.
type Suggester interface {
	Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error)
}
