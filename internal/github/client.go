// Package github talks to the GitHub repository search API: it builds the
// query URL, performs the request and normalizes the response body.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"ghsearch/internal/domain"
	"ghsearch/internal/logger"
)

// maxBodyBytes bounds how much of a response is read
const maxBodyBytes = 8 << 20

// Doer performs an HTTP request; *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client
type Options struct {
	BaseURL           string
	Token             string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerMinute int
	Query             QueryOptions
}

// Client fetches and normalizes repository searches
type Client struct {
	doer    Doer
	opts    Options
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewClient creates a client. A nil doer means http.DefaultClient.
func NewClient(doer Doer, opts Options, log zerolog.Logger) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	c := &Client{
		doer: doer,
		opts: opts,
		log:  logger.Named(log, "github"),
	}
	if opts.RequestsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), opts.RequestsPerMinute)
	}
	return c
}

// URL returns the request URL for a query
func (c *Client) URL(q domain.Query) string {
	return SearchURL(c.opts.BaseURL, q, c.opts.Query)
}

// Search runs one repository search.
// Errors are *domain.TransportError, *domain.HTTPStatusError or *domain.MalformedPayloadError.
func (c *Client) Search(ctx context.Context, q domain.Query) (domain.SearchResult, error) {
	u := c.URL(q)
	log := logger.C(ctx, c.log).With().Str("url", u).Logger()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return domain.SearchResult{}, &domain.TransportError{URL: u, Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.SearchResult{}, &domain.TransportError{URL: u, Err: err}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}
	if id := logger.RequestID(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		return domain.SearchResult{}, &domain.TransportError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.SearchResult{}, &domain.TransportError{URL: u, Err: fmt.Errorf("read body: %w", err)}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("search response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.SearchResult{}, &domain.HTTPStatusError{
			URL:        u,
			StatusCode: resp.StatusCode,
			Message:    apiMessage(body),
		}
	}

	return Normalize(body)
}

// apiMessage extracts GitHub's {"message": "..."} from an error body
func apiMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}
