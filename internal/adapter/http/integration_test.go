package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onmo-campaigns/internal/adapter/usecase"
	"onmo-campaigns/internal/core/domain"
)

// memoryRepository keeps campaigns per user partition, in insertion order,
// like the real store but without the network.
type memoryRepository struct {
	partitions map[string][]domain.Campaign
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{partitions: map[string][]domain.Campaign{}}
}

func (m *memoryRepository) Put(_ context.Context, c domain.Campaign) error {
	m.partitions[c.UserID] = append(m.partitions[c.UserID], c)
	return nil
}

func (m *memoryRepository) QueryByUser(_ context.Context, userID string) ([]domain.Campaign, error) {
	return m.partitions[userID], nil
}

type staticSuggester struct {
	result domain.SuggestionResult
}

func (s staticSuggester) Suggest(context.Context, domain.SuggestionRequest) (domain.SuggestionResult, error) {
	return s.result, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := usecase.NewCampaignUseCase(newMemoryRepository(), staticSuggester{
		result: domain.SuggestionResult{AudienceSuggestion: "Outdoor enthusiasts", BudgetSuggestion: 600},
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewHandler(svc, logger).Router())
	t.Cleanup(srv.Close)
	return srv
}

// TestCreateThenList exercises the full request path: a created campaign
// comes back from a subsequent list with the same field values, a fresh id,
// and a valid timestamp.
func TestCreateThenList(t *testing.T) {
	srv := newTestServer(t)

	createBody := `{"userId":"u1","name":"Spring Sale","objective":"Traffic","budget":500,"audience":"Adults 25-45 interested in outdoor gear"}`
	resp, err := http.Post(srv.URL+"/campaigns", "application/json", strings.NewReader(createBody))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var created struct {
		Message    string `json:"message"`
		CampaignID string `json:"campaignId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.CampaignID)

	listResp, err := http.Get(srv.URL + "/campaigns?userId=u1")
	require.NoError(t, err)
	defer listResp.Body.Close()
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var listed struct {
		Campaigns []domain.Campaign `json:"campaigns"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listed))
	require.Len(t, listed.Campaigns, 1)

	got := listed.Campaigns[0]
	assert.Equal(t, created.CampaignID, got.CampaignID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Spring Sale", got.Name)
	assert.Equal(t, domain.ObjectiveTraffic, got.Objective)
	assert.Equal(t, float64(500), got.Budget)
	assert.Equal(t, "Adults 25-45 interested in outdoor gear", got.Audience)
	_, err = time.Parse(time.RFC3339, got.CreatedAt)
	assert.NoError(t, err)
}

// TestTwoCreatesBothListed ensures sequential creates produce distinct ids
// and both records appear in the partition.
func TestTwoCreatesBothListed(t *testing.T) {
	srv := newTestServer(t)

	body := `{"userId":"u1","name":"Spring Sale","objective":"Traffic","budget":500,"audience":"Adults 25-45 interested in outdoor gear"}`
	ids := make(map[string]bool)
	for i := 0; i < 2; i++ {
		resp, err := http.Post(srv.URL+"/campaigns", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		var created struct {
			CampaignID string `json:"campaignId"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		ids[created.CampaignID] = true
	}
	require.Len(t, ids, 2, "expected two distinct campaign ids")

	listResp, err := http.Get(srv.URL + "/campaigns?userId=u1")
	require.NoError(t, err)
	defer listResp.Body.Close()

	var listed struct {
		Campaigns []domain.Campaign `json:"campaigns"`
	}
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&listed))
	require.Len(t, listed.Campaigns, 2)
	for _, c := range listed.Campaigns {
		assert.True(t, ids[c.CampaignID], "listed id %s was not created", c.CampaignID)
	}
}

// TestSuggestEndToEnd pins the wire shape of a successful suggestion.
func TestSuggestEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/ai-suggest", "application/json",
		strings.NewReader(`{"name":"Spring Sale","objective":"Traffic","budget":500}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"suggestion":{"audienceSuggestion":"Outdoor enthusiasts","budgetSuggestion":600}}`,
		string(body))
}
