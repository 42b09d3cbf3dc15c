// Package httpclient calls the group-buy HTTP API. Error responses decode
// into *api.Error values that unwrap to the domain sentinels, so callers can
// use errors.Is exactly as they would against the use case.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"groupbuy/internal/api"
	"groupbuy/internal/core/domain"
	"groupbuy/internal/core/port"
)

// Client is a client for the group-buy API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new client for the API served at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/") + "/api/v1",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create creates a campaign.
func (c *Client) Create(ctx context.Context, spec domain.CampaignSpec) (domain.Campaign, error) {
	req := api.CreateRequest{
		Product:       api.Product{ID: spec.Product.ID, Name: spec.Product.Name, ImageURL: spec.Product.ImageURL},
		Type:          string(spec.Type),
		TargetCount:   spec.TargetCount,
		OriginalPrice: spec.OriginalPrice,
		GroupPrice:    spec.GroupPrice,
		Milestones:    spec.Milestones,
		CreatedBy:     spec.CreatedBy,
		Variant:       spec.InitiatorVariant,
	}
	if !spec.WindowStart.IsZero() {
		req.WindowStart = &spec.WindowStart
	}
	if !spec.WindowEnd.IsZero() {
		req.WindowEnd = &spec.WindowEnd
	}
	var resp api.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", nil, req, &resp); err != nil {
		return domain.Campaign{}, err
	}
	return resp.Domain(), nil
}

// Get fetches a campaign snapshot.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	var resp api.Campaign
	if err := c.do(ctx, http.MethodGet, "/campaigns/"+id.String(), nil, nil, &resp); err != nil {
		return domain.Campaign{}, err
	}
	return resp.Domain(), nil
}

// List fetches a page of campaigns.
func (c *Client) List(ctx context.Context, q port.ListQuery) (port.CampaignPage, error) {
	params := url.Values{}
	if q.Status != nil {
		params.Set("status", string(*q.Status))
	}
	if q.Type != nil {
		params.Set("type", string(*q.Type))
	}
	if q.Sort != "" {
		params.Set("sort", string(q.Sort))
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(q.PageSize))
	}

	var resp api.ListResponse
	if err := c.do(ctx, http.MethodGet, "/campaigns", params, nil, &resp); err != nil {
		return port.CampaignPage{}, err
	}
	page := port.CampaignPage{
		Items:    make([]domain.Campaign, 0, len(resp.Items)),
		Total:    resp.Total,
		Page:     resp.Page,
		PageSize: resp.PageSize,
	}
	for _, item := range resp.Items {
		page.Items = append(page.Items, item.Domain())
	}
	return page, nil
}

// Join joins userID to the campaign.
func (c *Client) Join(ctx context.Context, campaignID uuid.UUID, userID string, variant domain.Variant) (domain.JoinResult, error) {
	var resp api.JoinResponse
	body := api.JoinRequest{UserID: userID, Variant: variant}
	if err := c.do(ctx, http.MethodPost, "/campaigns/"+campaignID.String()+"/join", nil, body, &resp); err != nil {
		return domain.JoinResult{}, err
	}
	return resp.Domain(), nil
}

// Cancel cancels the campaign on behalf of actorID.
func (c *Client) Cancel(ctx context.Context, campaignID uuid.UUID, actorID string) (domain.Campaign, error) {
	var resp api.Campaign
	body := api.CancelRequest{ActorID: actorID}
	if err := c.do(ctx, http.MethodPost, "/campaigns/"+campaignID.String()+"/cancel", nil, body, &resp); err != nil {
		return domain.Campaign{}, err
	}
	return resp.Domain(), nil
}

// Revoke revokes a participation entry.
func (c *Client) Revoke(ctx context.Context, entryID uuid.UUID) (domain.ParticipationEntry, domain.Campaign, error) {
	var resp api.RevokeResponse
	if err := c.do(ctx, http.MethodPost, "/participations/"+entryID.String()+"/revoke", nil, nil, &resp); err != nil {
		return domain.ParticipationEntry{}, domain.Campaign{}, err
	}
	return resp.Entry.Domain(), resp.Campaign.Domain(), nil
}

// Participants lists the entries of a campaign.
func (c *Client) Participants(ctx context.Context, campaignID uuid.UUID) ([]domain.ParticipationEntry, error) {
	var resp api.ParticipantsResponse
	if err := c.do(ctx, http.MethodGet, "/campaigns/"+campaignID.String()+"/participants", nil, nil, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.ParticipationEntry, 0, len(resp.Items))
	for _, e := range resp.Items {
		out = append(out, e.Domain())
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, in, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &api.Error{Status: resp.StatusCode}
		var eb api.ErrorBody
		if json.NewDecoder(resp.Body).Decode(&eb) == nil {
			apiErr.Code, apiErr.Message = eb.Code, eb.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
