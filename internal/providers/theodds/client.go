// Package theodds fetches head-to-head match odds from an odds-aggregator
// API and maps them to domain models.
package theodds

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

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logging"
	"afl-tipping-service/internal/providers"
)

const (
	providerName = "theodds"

	defaultBaseURL = "https://api.the-odds-api.com"
	defaultSport   = "aussierules_afl"
	defaultRegion  = "au"
	defaultMarket  = "h2h"
	defaultTimeout = 15 * time.Second
)

// Config controls how the odds client reaches the aggregator.
type Config struct {
	BaseURL    string
	APIKey     string
	SportKey   string
	Region     string
	Market     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches decimal head-to-head odds for the configured sport.
type Client struct {
	baseURL    string
	apiKey     string
	sportKey   string
	region     string
	market     string
	httpClient httpDoer
	logger     *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an odds client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		sportKey:   orDefault(cfg.SportKey, defaultSport),
		region:     orDefault(cfg.Region, defaultRegion),
		market:     orDefault(cfg.Market, defaultMarket),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     logger,
	}
}

// FetchOdds retrieves upcoming events with head-to-head prices.
func (c *Client) FetchOdds(ctx context.Context) ([]domain.MatchOdds, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("theodds: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:       providerName,
			StatusCode:     resp.StatusCode,
			QuotaRemaining: resp.Header.Get("X-Requests-Remaining"),
			Message:        "request quota exhausted",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("theodds: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var events []eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("theodds: decode: %w", err)
	}

	odds := mapEvents(events, c.market)
	logging.Debug(c.logger, "odds fetch complete",
		slog.String(logging.FieldProvider, providerName),
		slog.Int(logging.FieldCount, len(odds)),
		slog.String("requests_remaining", resp.Header.Get("X-Requests-Remaining")),
	)
	return odds, nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds", c.baseURL, url.PathEscape(c.sportKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("apiKey", c.apiKey)
	q.Set("regions", c.region)
	q.Set("markets", c.market)
	q.Set("oddsFormat", "decimal")
	req.URL.RawQuery = q.Encode()
	return req, nil
}

func normalizeBaseURL(base string) string {
	if base == "" {
		base = defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
