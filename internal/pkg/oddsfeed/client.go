// Package oddsfeed talks to the quota-limited odds service and converts
// its payload into the normalized quote shape the calculator consumes.
package oddsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lucianofrutuoso/python-bet/internal/pkg/config"
)

// Client fetches odds from the remote odds API (the-odds-api v4 wire
// format). All requests carry the api key as a query parameter and decode
// decimal-odds payloads.
type Client struct {
	baseURL    string
	apiKey     string
	regions    string
	markets    string
	httpClient *http.Client
}

// NewClient creates a client from config. The api key must be present
// (usually via the ODDS_API_KEY env override).
func NewClient(cfg *config.OddsAPIConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("odds API key is required")
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		regions: cfg.Regions,
		markets: cfg.Markets,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Ping checks that the API answers and the key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListSports(ctx)
	return err
}

// ListSports fetches the sport catalogue.
func (c *Client) ListSports(ctx context.Context) ([]Sport, error) {
	u := fmt.Sprintf("%s/sports?apiKey=%s", c.baseURL, url.QueryEscape(c.apiKey))

	var sports []Sport
	if _, err := c.getJSON(ctx, u, &sports); err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	return sports, nil
}

// FetchOdds fetches every upcoming event for one sport with all bookmaker
// markets attached. The service's remaining quota is logged on each call
// since the free tier exhausts quickly.
func (c *Client) FetchOdds(ctx context.Context, sportKey string) ([]Event, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.regions)
	params.Set("markets", c.markets)
	params.Set("oddsFormat", "decimal")
	params.Set("dateFormat", "iso")

	u := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, url.PathEscape(sportKey), params.Encode())

	var events []Event
	quota, err := c.getJSON(ctx, u, &events)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch odds for %s: %w", sportKey, err)
	}

	slog.Info("Fetched odds",
		"sport", sportKey,
		"events", len(events),
		"quota_used", quota.Used,
		"quota_remaining", quota.Remaining)

	return events, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) (Quota, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Quota{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quota{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	quota := Quota{
		Used:      resp.Header.Get("x-requests-used"),
		Remaining: resp.Header.Get("x-requests-remaining"),
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return quota, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return quota, fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return quota, fmt.Errorf("failed to decode response: %w", err)
	}

	return quota, nil
}

// CollectedAt stamps one polling cycle; extracted so conversions within a
// cycle share the same instant.
func CollectedAt() time.Time {
	return time.Now().UTC()
}
