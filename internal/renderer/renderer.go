// Package renderer provides the page-rendering capability the price fetchers
// depend on: navigate to a URL, wait for the page, extract text from
// elements. The HTTP implementation retrieves the page body and parses it
// with goquery; sources whose price only appears after client-side scripting
// would need an alternative Renderer, which is why fetchers only see the
// interface.
package renderer

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"resty.dev/v3"

	"pricecheck/internal/ratelimit"
)

const (
	// Default retry configuration
	defaultRetryCount       = 3
	defaultRetryWaitTime    = 1 * time.Second
	defaultRetryMaxWaitTime = 10 * time.Second
)

// Renderer loads a URL and returns the rendered page.
type Renderer interface {
	Load(ctx context.Context, pageURL string) (*Page, error)
}

// HTTP is a Renderer backed by a plain HTTP client.
type HTTP struct {
	client *resty.Client
}

// NewHTTP creates an HTTP renderer with retry logic, exponential backoff and
// a per-request timeout.
func NewHTTP(timeout time.Duration, userAgent string) *HTTP {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/html").
		SetHeader("User-Agent", userAgent).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWaitTime).
		SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook)

	return &HTTP{client: client}
}

// Load fetches pageURL and parses the response body. The request honours the
// per-host rate limit and the context; the HTTP session is torn down before
// Load returns on every path.
func (h *HTTP) Load(ctx context.Context, pageURL string) (*Page, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page url %q: %w", pageURL, err)
	}
	if err := ratelimit.Get().Wait(ctx, parsed.Host); err != nil {
		return nil, err
	}

	resp, err := h.client.R().
		SetContext(ctx).
		Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", pageURL, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("load %s: status %d", pageURL, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(resp.String()))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return &Page{url: pageURL, doc: doc}, nil
}

// Close releases the client's idle connections.
func (h *HTTP) Close() error {
	return h.client.Close()
}

// retryCondition determines whether a request should be retried based on the response and error
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	// Retry on server errors (5xx), rate limit (429) and request timeout (408)
	if r.StatusCode() >= 500 || r.StatusCode() == 429 || r.StatusCode() == 408 {
		return true
	}

	return false
}

// retryHook logs retry attempts for observability
func retryHook(r *resty.Response, err error) {
	if err != nil {
		slog.Debug("retrying page load due to error",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}

	slog.Debug("retrying page load due to status code",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}
