// Package sheets talks to the spreadsheet-backed Apps Script endpoint that
// acts as the boutique's remote store. Every call is best-effort: writes are
// dispatched once and assumed delivered unless the transport fails, reads
// fall back to zero values on any failure. When no endpoint is configured the
// client runs in local simulation mode and only logs what it would send.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"aura/internal/domain"
	applog "aura/internal/log"
)

// Placeholder left in deployments that never configured the endpoint.
const placeholderMarker = "YOUR_DEPLOYED_SCRIPT_ID"

// Sync actions understood by the Apps Script backend. uploadImage is part of
// the backend's protocol for hosting images out-of-band; this server sends
// bespoke-request photos inline as data URIs instead.
const (
	ActionUser           = "user"
	ActionProduct        = "product"
	ActionOrder          = "order"
	ActionReport         = "report"
	ActionSpecialRequest = "special_request"
	ActionCommunityPost  = "community_post"
	ActionMessage        = "message"
	ActionUploadImage    = "uploadImage"
)

type Client struct {
	URL        string
	HTTPClient *http.Client
}

func New(rawURL string) *Client {
	return &Client{URL: rawURL, HTTPClient: &http.Client{}}
}

// Configured reports whether a real endpoint is set. An empty URL or the
// placeholder from the setup guide short-circuits to simulation mode.
func (c *Client) Configured() bool {
	return c.URL != "" && !strings.Contains(c.URL, placeholderMarker)
}

type syncEnvelope struct {
	Action string `json:"action"`
	Data   any    `json:"data"`
}

// Sync posts one domain event to the remote store. The endpoint's response
// body is not interpreted; the call succeeds unless the transport itself
// fails. One attempt, no retries.
func (c *Client) Sync(ctx context.Context, action string, data any) error {
	if !c.Configured() {
		applog.Info(nil, "sheets.sync.simulated", map[string]any{"action": action})
		return nil
	}

	body, err := json.Marshal(syncEnvelope{Action: action, Data: data})
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", action, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		applog.Error(nil, "sheets.sync.fail", err, map[string]any{"action": action})
		return err
	}
	defer resp.Body.Close()
	// Opaque dispatch: drain and ignore whatever the script replied with.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// FetchRole looks up the stored role for an email. Empty string means the
// registry had no answer (unconfigured, unreachable, malformed, or unknown).
func (c *Client) FetchRole(ctx context.Context, email string) (string, error) {
	var out struct {
		Role string `json:"role"`
	}
	if err := c.get(ctx, map[string]string{"action": "getRole", "email": email}, &out); err != nil {
		return "", err
	}
	return out.Role, nil
}

// FetchProducts returns the remote catalog snapshot, or nil on any failure.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var out struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.get(ctx, map[string]string{"action": "getProducts"}, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}

// FetchUsers returns the remote user registry, empty on any failure.
func (c *Client) FetchUsers(ctx context.Context) ([]domain.UserRecord, error) {
	var out struct {
		Users []domain.UserRecord `json:"users"`
	}
	if err := c.get(ctx, map[string]string{"action": "getUsers"}, &out); err != nil {
		return []domain.UserRecord{}, err
	}
	if out.Users == nil {
		out.Users = []domain.UserRecord{}
	}
	return out.Users, nil
}

// FetchRequests returns the remote bespoke-request registry, empty on any
// failure. Submitted requests are never stored locally, so this registry is
// the only history the admin sees.
func (c *Client) FetchRequests(ctx context.Context) ([]domain.SpecialRequest, error) {
	var out struct {
		Requests []domain.SpecialRequest `json:"requests"`
	}
	if err := c.get(ctx, map[string]string{"action": "getRequests"}, &out); err != nil {
		return []domain.SpecialRequest{}, err
	}
	if out.Requests == nil {
		out.Requests = []domain.SpecialRequest{}
	}
	return out.Requests, nil
}

var errNotConfigured = fmt.Errorf("sheets endpoint not configured")

func (c *Client) get(ctx context.Context, params map[string]string, into any) error {
	if !c.Configured() {
		applog.Info(nil, "sheets.get.simulated", map[string]any{"action": params["action"]})
		return errNotConfigured
	}

	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		applog.Error(nil, "sheets.get.fail", err, map[string]any{"action": params["action"]})
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("sheets endpoint returned %d", resp.StatusCode)
		applog.Error(nil, "sheets.get.fail", err, map[string]any{"action": params["action"]})
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		applog.Error(nil, "sheets.get.decode", err, map[string]any{"action": params["action"]})
		return err
	}
	return nil
}
