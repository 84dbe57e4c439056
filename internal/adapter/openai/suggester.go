package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	openai "github.com/sashabaranov/go-openai"

	"onmo-campaigns/internal/config/configs"
	"onmo-campaigns/internal/core/domain"
	"onmo-campaigns/internal/core/port"
)

// prompt is the single canonical template for suggestion calls. The model
// is told twice that budgetSuggestion must be a bare number; the parser
// below still rejects anything else.
const prompt = `Suggest the best target audience and budget for a digital ad campaign with
objective: %s, name: %s, and initial budget: %s.

Respond ONLY in strict JSON format like this:
{
  "audienceSuggestion": "Your short audience description",
  "budgetSuggestion": 123
}

"budgetSuggestion" must be a number only, without currency symbols, words, or formatting.`

// Suggester implements port.Suggester against the OpenAI chat-completions
// API. The client is constructed once at process start and reused; a call is
// a single attempt with no retry.
type Suggester struct {
	client *openai.Client
	model  string
}

// NewSuggester builds a suggester from configuration. Model and timeout are
// fixed for the process lifetime.
func NewSuggester(cfg configs.OpenAI) *Suggester {
	conf := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		conf.BaseURL = cfg.BaseURL
	}
	conf.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	return &Suggester{
		client: openai.NewClientWithConfig(conf),
		model:  cfg.Model,
	}
}

// Suggest issues one completion call and parses the strict two-field JSON
// contract. Transport failures surface as port.ErrSuggestionUpstream; output
// that violates the contract surfaces as port.ErrMalformedSuggestion.
func (s *Suggester) Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error) {
	budget := strconv.FormatFloat(req.Budget, 'f', -1, 64)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(prompt, req.Objective, req.Name, budget),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return domain.SuggestionResult{}, fmt.Errorf("%w: %s", port.ErrSuggestionUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return domain.SuggestionResult{}, fmt.Errorf("%w: completion has no choices", port.ErrMalformedSuggestion)
	}
	return parseSuggestion(resp.Choices[0].Message.Content)
}

// parseSuggestion enforces the output contract: a JSON object whose
// audienceSuggestion is a non-empty string and whose budgetSuggestion is a
// positive JSON number. A budget delivered as a string, currency-formatted
// or not, is rejected rather than coerced so model formatting bugs never
// reach the caller as data.
func parseSuggestion(content string) (domain.SuggestionResult, error) {
	var raw struct {
		AudienceSuggestion string          `json:"audienceSuggestion"`
		BudgetSuggestion   json.RawMessage `json:"budgetSuggestion"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return domain.SuggestionResult{}, fmt.Errorf("%w: completion is not valid JSON: %s", port.ErrMalformedSuggestion, err)
	}
	if raw.AudienceSuggestion == "" {
		return domain.SuggestionResult{}, fmt.Errorf("%w: audienceSuggestion is missing or empty", port.ErrMalformedSuggestion)
	}
	if len(raw.BudgetSuggestion) == 0 {
		return domain.SuggestionResult{}, fmt.Errorf("%w: budgetSuggestion is missing", port.ErrMalformedSuggestion)
	}

	var budget float64
	if err := json.Unmarshal(raw.BudgetSuggestion, &budget); err != nil {
		return domain.SuggestionResult{}, fmt.Errorf("%w: budgetSuggestion %s is not a plain number", port.ErrMalformedSuggestion, raw.BudgetSuggestion)
	}
	if budget <= 0 {
		return domain.SuggestionResult{}, fmt.Errorf("%w: budgetSuggestion %v is not positive", port.ErrMalformedSuggestion, budget)
	}

	return domain.SuggestionResult{
		AudienceSuggestion: raw.AudienceSuggestion,
		BudgetSuggestion:   budget,
	}, nil
}
