// Package itad is the client for the IsThereAnyDeal price-tracking API.
//
// Three calls are consumed: shop-id lookup, regional historical low, and
// full deal history. The API key travels as a query parameter on every call
// and must never surface in logs or error messages.
package itad

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/guttosm/dealpulse/config"
	"github.com/guttosm/dealpulse/internal/domain/models"
)

// Fixed upstream scope: the Steam storefront, priced for Argentina.
const (
	steamShopID = 61
	countryCode = "AR"
)

// API is the upstream surface the stats service depends on.
// It exists so the service can be tested against a fake upstream.
type API interface {
	// LookupGameID resolves a storefront product id to the tracker's
	// canonical game id. The three outcomes are distinct: found, not found
	// (no error, the product is simply unknown), and upstream failure.
	LookupGameID(ctx context.Context, shopID string) (gid string, found bool, err error)

	// HistoryLow returns the lowest price observed in the target region,
	// or nil (without error) when the tracker has no low for the game.
	HistoryLow(ctx context.Context, gid string) (*models.RegionalLow, error)

	// History returns the full deal history for the game, restricted to the
	// fixed storefront. Order is not guaranteed by the upstream.
	History(ctx context.Context, gid string) ([]models.HistoryEntry, error)
}

// Client is the concrete API implementation over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	hc      *http.Client
}

var _ API = (*Client)(nil)

// NewClient builds a Client from configuration. Timeout bounds every
// upstream call; the zero value falls back to 8 seconds.
func NewClient(cfg config.ITADConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		hc:      &http.Client{Timeout: timeout},
	}
}

// UpstreamError reports a non-success HTTP status from the tracker. The
// message carries the call name and status only, never the response body.
type UpstreamError struct {
	Call   string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("itad %s: status %d", e.Call, e.Status)
}

// LookupGameID implements API.
//
// Upstream: POST lookup/id/shop/{shop}/v1 with body ["<shopID>"], answering
// a map of shopID to game id, where an absent or null value means the
// product is unknown to the tracker.
func (c *Client) LookupGameID(ctx context.Context, shopID string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/lookup/id/shop/%d/v1?%s", c.baseURL, steamShopID, c.query(nil))

	var mapping map[string]*string
	if err := c.doJSON(ctx, "lookup", http.MethodPost, endpoint, []string{shopID}, &mapping); err != nil {
		return "", false, err
	}

	gid, ok := mapping[shopID]
	if !ok || gid == nil || *gid == "" {
		return "", false, nil
	}
	return *gid, true, nil
}

// HistoryLow implements API.
//
// Upstream: POST games/historylow/v1?country={country} with body ["<gid>"].
// An empty result array or a missing nested price is absence, not failure.
func (c *Client) HistoryLow(ctx context.Context, gid string) (*models.RegionalLow, error) {
	endpoint := fmt.Sprintf("%s/games/historylow/v1?%s", c.baseURL, c.query(url.Values{
		"country": {countryCode},
	}))

	var rows []struct {
		Low *struct {
			Price     *models.Price `json:"price"`
			Timestamp int64         `json:"timestamp"`
		} `json:"low"`
	}
	if err := c.doJSON(ctx, "historylow", http.MethodPost, endpoint, []string{gid}, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 || rows[0].Low == nil || rows[0].Low.Price == nil {
		return nil, nil
	}
	low := rows[0].Low
	return &models.RegionalLow{
		Amount:    low.Price.Amount,
		Currency:  low.Price.Currency,
		Timestamp: low.Timestamp,
	}, nil
}

// History implements API.
//
// Upstream: GET games/history/v2?id={gid}&country={country}&shops={shop}.
func (c *Client) History(ctx context.Context, gid string) ([]models.HistoryEntry, error) {
	endpoint := fmt.Sprintf("%s/games/history/v2?%s", c.baseURL, c.query(url.Values{
		"id":      {gid},
		"country": {countryCode},
		"shops":   {strconv.Itoa(steamShopID)},
	}))

	var entries []models.HistoryEntry
	if err := c.doJSON(ctx, "history", http.MethodGet, endpoint, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Ping reports whether the tracker is reachable at all. Any HTTP response
// counts as reachable; only transport failures are errors. Used by the
// readiness probe.
func (c *Client) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	return res.Body.Close()
}

// Close releases pooled connections. Registered as the app cleanup hook.
func (c *Client) Close() {
	c.hc.CloseIdleConnections()
}

// query builds the query string for a call, always including the API key.
func (c *Client) query(v url.Values) string {
	if v == nil {
		v = url.Values{}
	}
	v.Set("key", c.apiKey)
	return v.Encode()
}

// doJSON performs one upstream call: marshals the optional body, sends the
// request, maps non-2xx statuses to UpstreamError, and decodes the response
// into out.
func (c *Client) doJSON(ctx context.Context, call, method, endpoint string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode itad %s: %w", call, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("itad %s: %w", call, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		// url.Error repeats the full URL, API key included; keep the cause only.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("itad %s: %w", call, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &UpstreamError{Call: call, Status: res.StatusCode}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode itad %s: %w", call, err)
	}
	return nil
}
