package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/priyadarshn/lokal/internal/catalog"
)

const (
	defaultBaseURL = "https://api.lokal.app/rest/v1"
	userAgent      = "lokal-cli/1.0"

	// The backend asks clients to stay under ~5 req/s.
	requestsPerSecond = 5
	requestBurst      = 3
)

// Client is an HTTP client for the lokal structured backend. All query
// endpoints are read-only and idempotent.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a client. Empty baseURL falls back to the hosted backend.
func NewClient(baseURL, apiKey string) *Client {
	c := NewUnthrottledClient(baseURL, apiKey)
	c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst)
	return c
}

// NewUnthrottledClient creates a client with no rate limiting, for local
// backends and benchmarks where the hosted backend's limits do not apply.
func NewUnthrottledClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

func (c *Client) getAndDecode(ctx context.Context, path string, params url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := dec.Decode(new(struct{})); !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding response: trailing JSON content")
	}
	return nil
}

// orPattern builds a PostgREST-style OR filter over the given columns.
func orPattern(query string, columns ...string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s.ilike.*%s*", col, query))
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// SearchPlaces queries the primary recommendations source. The category
// filter is sent lower-cased; CategoryAll sends no category filter.
func (c *Client) SearchPlaces(ctx context.Context, query string, category catalog.Category) ([]PlaceRecord, error) {
	params := url.Values{
		"select": {"*"},
		"limit":  {"20"},
	}
	if category != catalog.CategoryAll {
		params.Set("category", "eq."+strings.ToLower(string(category)))
	}
	if query != "" {
		params.Set("or", orPattern(query, "name", "description", "address"))
	}

	var records []PlaceRecord
	if err := c.getAndDecode(ctx, "/recommendations", params, &records); err != nil {
		return nil, fmt.Errorf("searching places: %w", err)
	}
	return records, nil
}

// SearchBusinesses queries the secondary service-business source. That
// source stores categories in capitalized form.
func (c *Client) SearchBusinesses(ctx context.Context, category catalog.Category, query string) ([]BusinessRecord, error) {
	params := url.Values{
		"select":   {"*"},
		"limit":    {"20"},
		"category": {"eq." + capitalize(string(category))},
	}
	if query != "" {
		params.Set("or", orPattern(query, "name", "description", "tags"))
	}

	var records []BusinessRecord
	if err := c.getAndDecode(ctx, "/businesses", params, &records); err != nil {
		return nil, fmt.Errorf("searching businesses: %w", err)
	}
	return records, nil
}

// SearchEvents queries the remote events source with an OR match across
// title, description and location.
func (c *Client) SearchEvents(ctx context.Context, query string) ([]EventRecord, error) {
	params := url.Values{
		"select": {"*"},
		"limit":  {"20"},
	}
	if query != "" {
		params.Set("or", orPattern(query, "title", "description", "location"))
	}

	var records []EventRecord
	if err := c.getAndDecode(ctx, "/events", params, &records); err != nil {
		return nil, fmt.Errorf("searching events: %w", err)
	}
	return records, nil
}

// TopRated fetches the top-N places by rating with no text or category
// filter. Backs the query-less default result set.
func (c *Client) TopRated(ctx context.Context, limit int) ([]PlaceRecord, error) {
	params := url.Values{
		"select": {"*"},
		"order":  {"rating.desc"},
		"limit":  {fmt.Sprintf("%d", limit)},
	}

	var records []PlaceRecord
	if err := c.getAndDecode(ctx, "/recommendations", params, &records); err != nil {
		return nil, fmt.Errorf("fetching top rated: %w", err)
	}
	return records, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
