package httpadapter

import (
	"encoding/json"
	"net/http"

	"onmo-campaigns/internal/core/domain"
)

type createCampaignResponse struct {
	Message    string `json:"message"`
	CampaignID string `json:"campaignId"`
}

type listCampaignsResponse struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

// handleCreateCampaign persists a new campaign. A body that does not decode
// is treated as missing required fields (400), never as a server failure;
// the usecase re-validates everything regardless of what the client checked.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CampaignInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondBadRequest(w, "Missing required fields", nil)
		return
	}

	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		h.respondFailure(w, "create campaign", err)
		return
	}

	h.respondJSON(w, http.StatusOK, createCampaignResponse{
		Message:    "Campaign created",
		CampaignID: c.CampaignID,
	})
}

// handleListCampaigns returns every campaign of the user named by the
// userId query parameter. The campaigns array is always present in the
// response, empty when the user has none.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		h.respondBadRequest(w, "Missing userId query param", nil)
		return
	}

	campaigns, err := h.svc.List(r.Context(), userID)
	if err != nil {
		h.respondFailure(w, "list campaigns", err)
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	h.respondJSON(w, http.StatusOK, listCampaignsResponse{Campaigns: campaigns})
}
