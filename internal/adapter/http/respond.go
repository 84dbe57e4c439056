package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"onmo-campaigns/internal/core/domain"
	"onmo-campaigns/internal/core/port"
)

// errorResponse is the body of every non-200 answer. Details carries the
// underlying error text on 500s; Fields carries per-field validation
// messages on 400s. Both are omitted when empty.
type errorResponse struct {
	Error   string              `json:"error"`
	Details string              `json:"details,omitempty"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// encoding should rarely fail; the status line is already written
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) respondBadRequest(w http.ResponseWriter, msg string, fields []domain.FieldError) {
	h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Fields: fields})
}

// respondFailure maps a usecase error to the transport contract: invalid
// input becomes a 400 with field messages, everything else a 500 with the
// error detail attached. The raw error is always logged; no code path lets
// it escape unmapped.
func (h *Handler) respondFailure(w http.ResponseWriter, op string, err error) {
	var invalid *port.InvalidInputError
	if errors.As(err, &invalid) {
		h.respondBadRequest(w, "Missing required fields", invalid.Fields)
		return
	}

	h.logger.Error(op+" error", slog.Any("error", err))
	h.respondJSON(w, http.StatusInternalServerError, errorResponse{
		Error:   "Internal server error",
		Details: err.Error(),
	})
}
