// Package intercom is a minimal client for the help-center article
// endpoints of the Intercom REST API.
package intercom

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for API operations.
var (
	ErrMissingToken = errors.New("intercom: access token is required")
	ErrNotFound     = errors.New("intercom: article not found")
	ErrUnauthorized = errors.New("intercom: unauthorized")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("intercom: API returned %d: %s", e.StatusCode, e.Body)
}

const (
	defaultBaseURL = "https://api.intercom.io"
	defaultPerPage = 25
	apiVersion     = "2.11"
)

// Client talks to the Intercom API. Construct with NewClient.
type Client struct {
	baseURL    string
	token      string
	perPage    int
	httpClient *http.Client
	logger     *logrus.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, e.g. for the EU region or tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger overrides the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithPerPage sets the page size for listing articles.
func WithPerPage(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// NewClient creates a Client authenticated with the given access token.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		perPage:    defaultPerPage,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// articleList is one page of the list endpoint.
type articleList struct {
	Pages struct {
		Page       int `json:"page"`
		PerPage    int `json:"per_page"`
		TotalPages int `json:"total_pages"`
	} `json:"pages"`
	TotalCount int       `json:"total_count"`
	Data       []Article `json:"data"`
}

// ListArticles fetches every article, following pagination.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var all []Article
	page := 1
	for {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(c.perPage))

		var list articleList
		if err := c.do(ctx, http.MethodGet, "/articles?"+q.Encode(), nil, &list); err != nil {
			return nil, fmt.Errorf("listing articles page %d: %w", page, err)
		}
		all = append(all, list.Data...)

		c.logger.WithFields(logrus.Fields{
			"page":        page,
			"total_pages": list.Pages.TotalPages,
			"fetched":     len(all),
		}).Debug("fetched article page")

		if list.Pages.TotalPages == 0 || page >= list.Pages.TotalPages {
			return all, nil
		}
		page++
	}
}

// GetArticle fetches a single article by ID.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	var a Article
	if err := c.do(ctx, http.MethodGet, "/articles/"+url.PathEscape(id), nil, &a); err != nil {
		return nil, fmt.Errorf("fetching article %s: %w", id, err)
	}
	return &a, nil
}

// CreateArticle creates a new article and returns the stored version.
func (c *Client) CreateArticle(ctx context.Context, req ArticleRequest) (*Article, error) {
	var a Article
	if err := c.do(ctx, http.MethodPost, "/articles", req, &a); err != nil {
		return nil, fmt.Errorf("creating article %q: %w", req.Title, err)
	}
	return &a, nil
}

// UpdateArticle updates an existing article and returns the stored version.
func (c *Client) UpdateArticle(ctx context.Context, id string, req ArticleRequest) (*Article, error) {
	var a Article
	if err := c.do(ctx, http.MethodPut, "/articles/"+url.PathEscape(id), req, &a); err != nil {
		return nil, fmt.Errorf("updating article %s: %w", id, err)
	}
	return &a, nil
}

// do sends one API request and decodes the response into out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Intercom-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
