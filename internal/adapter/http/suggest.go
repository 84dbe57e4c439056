package httpadapter

import (
	"encoding/json"
	"net/http"

	"onmo-campaigns/internal/core/domain"
)

type suggestResponse struct {
	Suggestion domain.SuggestionResult `json:"suggestion"`
}

// handleSuggest asks the completion service for an audience and budget
// recommendation. Upstream failures, including output that violates the
// JSON contract, surface as 500s; the result is never persisted.
func (h *Handler) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req domain.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadRequest(w, "Missing required fields", nil)
		return
	}

	res, err := h.svc.Suggest(r.Context(), req)
	if err != nil {
		h.respondFailure(w, "ai suggest", err)
		return
	}

	h.respondJSON(w, http.StatusOK, suggestResponse{Suggestion: res})
}
