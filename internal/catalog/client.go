// Package catalog talks to the brokerage's properties API.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/cnk-ceneka/cnk/internal/property"
	"github.com/cnk-ceneka/cnk/internal/retry"
)

const (
	// DefaultBaseURL is the production API host.
	DefaultBaseURL = "https://cnk-ceneka.onrender.com"

	propertiesPath = "/api/properties"
	galleryPath    = "/api/properties/cloudinary/images"

	defaultUserAgent = "cnk"
	maxBodySize      = 4 << 20
)

// ListResponse is the payload of the properties endpoint.
type ListResponse struct {
	Data       []property.RawRecord `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

// Pagination describes the server-side page set.
type Pagination struct {
	Total int  `json:"total"`
	Pages *int `json:"pages,omitempty"`
}

// GalleryResponse is the payload of the gallery endpoint.
type GalleryResponse struct {
	Success bool           `json:"success"`
	Data    []GalleryImage `json:"data"`
}

// GalleryImage is one hosted image.
type GalleryImage struct {
	SecureURL string `json:"secure_url"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// RateLimitError is returned when the API answers 429.
// RetryAt is the server's suggestion, verbatim, and may be empty.
type RateLimitError struct {
	RetryAt string
}

func (e *RateLimitError) Error() string {
	if e.RetryAt == "" {
		return "rate limited"
	}
	return "rate limited until " + e.RetryAt
}

// Options configures a Client.
type Options struct {
	Policy    retry.Policy
	Timeout   time.Duration
	UserAgent string
}

// Client fetches listings and gallery images.
type Client struct {
	baseURL   string
	userAgent string
	http      *retryablehttp.Client
}

// NewClient creates a client for the API at baseURL. A zero Policy means
// retry.Default.
func NewClient(baseURL string, opts Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("parsing api base URL: %w", err)
	}

	policy := opts.Policy
	if policy.MaxAttempts == 0 {
		policy = retry.Default()
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: ua,
		http:      retry.NewClient(policy, opts.Timeout),
	}, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListProperties fetches one page of raw property records.
func (c *Client) ListProperties(ctx context.Context, page, limit int) (*ListResponse, error) {
	params := url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}

	var out ListResponse
	if err := c.get(ctx, propertiesPath+"?"+params.Encode(), &out); err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}
	if out.Data == nil {
		return nil, fmt.Errorf("listing properties: response has no data array")
	}
	return &out, nil
}

// GalleryImages fetches the hosted gallery image list.
func (c *Client) GalleryImages(ctx context.Context) (*GalleryResponse, error) {
	var out GalleryResponse
	if err := c.get(ctx, galleryPath, &out); err != nil {
		return nil, fmt.Errorf("fetching gallery: %w", err)
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, v any) (err error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	slog.Debug("catalog request", "path", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing body: %w", closeErr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if len(body) > maxBodySize {
		return fmt.Errorf("response exceeds %d bytes", maxBodySize)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return &RateLimitError{RetryAt: retryAt(resp, body)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: snippet(body)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// retryAt reads the retry hint from the JSON body, then the Retry-After header.
func retryAt(resp *http.Response, body []byte) string {
	var payload struct {
		RetryAt string `json:"retryAt"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.RetryAt != "" {
		return payload.RetryAt
	}
	return resp.Header.Get("Retry-After")
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

// IsRateLimited reports whether err carries a RateLimitError.
func IsRateLimited(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}
