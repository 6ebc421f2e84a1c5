// Package squiggle fetches AFL fixture, tip, and score data from the
// Squiggle API and maps it to domain models.
package squiggle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"afl-tipping-service/internal/domain"
	"afl-tipping-service/internal/logging"
	"afl-tipping-service/internal/providers"
)

// Config controls how the Squiggle client reaches the upstream API.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches tipping data from the Squiggle API.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
	logger     *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs a Squiggle client with the provided configuration.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		userAgent:  cfg.UserAgent,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		logger:     logger,
	}
}

// FetchTeams retrieves the team list.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	var payload teamsResponse
	if err := c.get(ctx, queryTeams, nil, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload.Teams), nil
}

// FetchGames retrieves the season's fixture. Records missing a team id or a
// parseable date are dropped during mapping.
func (c *Client) FetchGames(ctx context.Context, season int) ([]domain.Game, error) {
	var payload gamesResponse
	if err := c.get(ctx, queryGames, seasonParams(season), &payload); err != nil {
		return nil, err
	}
	return mapGames(payload.Games), nil
}

// FetchTips retrieves the season's tips.
func (c *Client) FetchTips(ctx context.Context, season int) ([]domain.Tip, error) {
	var payload tipsResponse
	if err := c.get(ctx, queryTips, seasonParams(season), &payload); err != nil {
		return nil, err
	}
	return mapTips(payload.Tips), nil
}

// FetchScores retrieves the season's score updates.
func (c *Client) FetchScores(ctx context.Context, season int) ([]domain.ScoreUpdate, error) {
	var payload scoresResponse
	if err := c.get(ctx, queryScores, seasonParams(season), &payload); err != nil {
		return nil, err
	}
	return mapScores(payload.Scores), nil
}

func seasonParams(season int) map[string]string {
	return map[string]string{"year": strconv.Itoa(season)}
}

// get issues one GET for a Squiggle query. The API's query syntax is
// "?q=kind;key=value;..." rather than ordinary query-string pairs.
func (c *Client) get(ctx context.Context, kind string, params map[string]string, out any) error {
	q := kind
	for key, value := range params {
		q += ";" + key + "=" + value
	}

	// The API expects the q value verbatim; escaping the ;key=value separators
	// breaks query parsing upstream.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?q="+q, nil)
	if err != nil {
		return err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("squiggle: %s fetch: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    "rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("squiggle: unexpected status %d for %s: %s", resp.StatusCode, kind, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("squiggle: decode %s: %w", kind, err)
	}

	logging.Debug(c.logger, "squiggle fetch complete",
		slog.String(logging.FieldProvider, providerName),
		slog.String("query", q),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func parseRetryAfter(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
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
