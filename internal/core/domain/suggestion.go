package domain

// SuggestionRequest asks the completion service for a target-audience and
// budget recommendation. All three fields are required by the suggest
// endpoint; nothing here is persisted.
type SuggestionRequest struct {
	Name      string    `json:"name" validate:"required"`
	Objective Objective `json:"objective" validate:"required,oneof=Traffic Conversions"`
	Budget    float64   `json:"budget" validate:"required,gt=0"`
}

// Validate checks that the request carries every required field.
func (r SuggestionRequest) Validate() []FieldError {
	return validateStruct(r)
}

// SuggestionResult is the model's recommendation. It is advisory data: the
// create path re-validates whatever the user takes from it, so the result is
// deliberately not checked against the Campaign invariants.
type SuggestionResult struct {
	AudienceSuggestion string  `json:"audienceSuggestion"`
	BudgetSuggestion   float64 `json:"budgetSuggestion"`
}
