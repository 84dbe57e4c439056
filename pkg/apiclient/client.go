// Package apiclient is the Go counterpart of the browser client: a thin
// typed client for the campaign API plus the controllers the two screens
// use (the campaign list and the create form). It enforces the same input
// schema as the server, from the same source of truth, before submitting.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"onmo-campaigns/internal/core/domain"
)

// Client calls the campaign API at a fixed base URL. The zero http.Client
// is replaced with one carrying a sane timeout; the server itself enforces
// none.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the API at baseURL. Pass nil to use a
// default HTTP client with a 15 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// CreateResult is the server's answer to a successful create.
type CreateResult struct {
	Message    string `json:"message"`
	CampaignID string `json:"campaignId"`
}

// GetCampaigns fetches every campaign of the given user. The campaigns
// field of the response is defensively coerced to an array: a missing,
// null, or malformed field yields an empty slice rather than an error, so a
// misbehaving backend degrades to an empty list screen instead of a broken
// one.
func (c *Client) GetCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	endpoint := c.baseURL + "/campaigns?userId=" + url.QueryEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Campaigns json.RawMessage `json:"campaigns"`
	}
	if err = c.do(req, &payload); err != nil {
		return nil, err
	}

	campaigns := []domain.Campaign{}
	if len(payload.Campaigns) > 0 {
		if err = json.Unmarshal(payload.Campaigns, &campaigns); err != nil || campaigns == nil {
			return []domain.Campaign{}, nil
		}
	}
	return campaigns, nil
}

// CreateCampaign submits a new campaign.
func (c *Client) CreateCampaign(ctx context.Context, in domain.CampaignInput) (CreateResult, error) {
	var res CreateResult
	err := c.post(ctx, "/campaigns", in, &res)
	return res, err
}

// Suggest requests an audience and budget recommendation.
func (c *Client) Suggest(ctx context.Context, req domain.SuggestionRequest) (domain.SuggestionResult, error) {
	var payload struct {
		Suggestion domain.SuggestionResult `json:"suggestion"`
	}
	err := c.post(ctx, "/ai-suggest", req, &payload)
	return payload.Suggestion, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes the JSON body into out. Non-2xx
// responses become errors carrying the server's body text, mirroring how
// the browser client surfaced failures inline.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		text := strings.TrimSpace(string(body))
		if text == "" {
			text = resp.Status
		}
		return fmt.Errorf("%s %s: HTTP %d: %s", req.Method, req.URL.Path, resp.StatusCode, text)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
