// Package notion is the boundary to the remote candidate database. It covers
// exactly what the dashboard consumes: database queries with filter
// expressions, sorts, and cursor pagination.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Brommah/hvc/internal/logger"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.notion.com/v1"

	// apiVersion is the pinned Notion-Version header value.
	apiVersion = "2022-06-28"

	// MaxPageSize is the largest page the store will return.
	MaxPageSize = 100

	// Transport settings follow the shared HTTP client conventions.
	defaultTimeout             = 30 * time.Second
	defaultMaxIdleConnsPerHost = 10
	defaultIdleConnTimeout     = 90 * time.Second
)

// FetchMetrics receives instrumentation callbacks from the client.
// Implementations must be safe for concurrent use.
type FetchMetrics interface {
	PageFetched(records int)
	FetchFailed()
	FetchCompleted(d time.Duration)
}

// Client queries the candidate database. One instance is constructed at
// process start and shared by all requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logger.Logger
	metrics    FetchMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMetrics attaches fetch instrumentation.
func WithMetrics(m FetchMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a client for the candidate database.
func NewClient(token string, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		baseURL: DefaultBaseURL,
		token:   token,
		logger:  log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// QueryDatabase fetches a single page of records matching the request.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req *QueryRequest) (*QueryResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal query request: %w", err)
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, databaseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build query request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Notion-Version", apiVersion)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.fetchFailed()
		return nil, &FetchError{Message: err.Error(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.fetchFailed()
		return nil, parseErrorResponse(resp)
	}

	var page QueryResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&page); decodeErr != nil {
		c.fetchFailed()
		return nil, &FetchError{Message: fmt.Sprintf("decode response: %v", decodeErr), Err: decodeErr}
	}

	if c.metrics != nil {
		c.metrics.PageFetched(len(page.Results))
	}
	return &page, nil
}

// QueryDatabaseAll fetches every record matching the filter, following the
// continuation cursor until the store reports no further pages. Pages are
// fetched sequentially to bound load on the store.
func (c *Client) QueryDatabaseAll(ctx context.Context, databaseID string, filter Filter, sorts []Sort) ([]Page, error) {
	start := time.Now()

	var (
		all    []Page
		cursor string
		pages  int
	)
	for {
		req := &QueryRequest{
			Filter:      filter,
			Sorts:       sorts,
			PageSize:    MaxPageSize,
			StartCursor: cursor,
		}

		resp, err := c.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Results...)
		pages++

		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	c.logger.Debug("Candidate database fetched",
		logger.Int("records", len(all)),
		logger.Int("pages", pages),
		logger.Duration("duration", time.Since(start)),
	)
	if c.metrics != nil {
		c.metrics.FetchCompleted(time.Since(start))
	}
	return all, nil
}

func (c *Client) fetchFailed() {
	if c.metrics != nil {
		c.metrics.FetchFailed()
	}
}

// parseErrorResponse extracts the remote error message from a non-200
// response body.
func parseErrorResponse(resp *http.Response) *FetchError {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("failed to read error response body: %v", err),
		}
	}

	var remote struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if json.Unmarshal(bodyBytes, &remote) == nil && remote.Message != "" {
		return &FetchError{StatusCode: resp.StatusCode, Message: remote.Message}
	}

	return &FetchError{StatusCode: resp.StatusCode, Message: string(bodyBytes)}
}
