package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/katalvlaran/linkgraph/core"
)

const (
	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 10 * time.Second

	// DefaultRetries is how many times a transient failure is retried.
	DefaultRetries = 3
)

// HTTPProvider fetches the mapping from a JSON endpoint.
// Network errors, 5xx and 429 are retried with exponential backoff; any
// other non-200 status fails at once.
type HTTPProvider struct {
	url     string
	field   string
	client  *http.Client
	timeout time.Duration
	retries uint64
	tune    []func(*backoff.ExponentialBackOff)
	log     *zap.Logger
}

// HTTPOption configures an HTTPProvider.
type HTTPOption func(*HTTPProvider)

// WithField sets the response field holding the mapping. Empty means the whole body.
func WithField(field string) HTTPOption {
	return func(p *HTTPProvider) { p.field = field }
}

// WithClient replaces the HTTP client. The client is used as given;
// WithTimeout does not change it.
func WithClient(c *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// WithTimeout sets the per-attempt timeout of the default client.
func WithTimeout(d time.Duration) HTTPOption {
	return func(p *HTTPProvider) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithRetries sets how many times a transient failure is retried.
func WithRetries(n uint64) HTTPOption {
	return func(p *HTTPProvider) { p.retries = n }
}

// WithBackoff adjusts the exponential backoff policy before each Fetch.
func WithBackoff(fn func(*backoff.ExponentialBackOff)) HTTPOption {
	return func(p *HTTPProvider) {
		if fn != nil {
			p.tune = append(p.tune, fn)
		}
	}
}

// WithHTTPLogger sets the logger used to report retries.
func WithHTTPLogger(l *zap.Logger) HTTPOption {
	return func(p *HTTPProvider) {
		if l != nil {
			p.log = l
		}
	}
}

// NewHTTPProvider returns a provider for url; an empty url means DefaultURL.
func NewHTTPProvider(url string, opts ...HTTPOption) *HTTPProvider {
	if url == "" {
		url = DefaultURL
	}
	p := &HTTPProvider{
		url:     url,
		field:   DefaultField,
		timeout: DefaultTimeout,
		retries: DefaultRetries,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: p.timeout}
	}

	return p
}

// URL returns the endpoint this provider queries.
func (p *HTTPProvider) URL() string { return p.url }

// Timeout returns the per-attempt timeout of the client in use.
func (p *HTTPProvider) Timeout() time.Duration { return p.client.Timeout }

// Fetch GETs the endpoint and decodes the configured field.
func (p *HTTPProvider) Fetch(ctx context.Context) (*core.AdjacencyMap, error) {
	var body []byte
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("%w: %s", ErrStatus, resp.Status)
		default:
			return backoff.Permanent(fmt.Errorf("%w: %s", ErrStatus, resp.Status))
		}

		body, err = io.ReadAll(resp.Body)
		return err
	}

	b := backoff.NewExponentialBackOff()
	for _, fn := range p.tune {
		fn(b)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, p.retries), ctx)

	notify := func(err error, wait time.Duration) {
		p.log.Warn("graph fetch failed, retrying",
			zap.String("url", p.url),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, fmt.Errorf("provider: fetch %s: %w", p.url, err)
	}
	p.log.Debug("graph fetched",
		zap.String("url", p.url),
		zap.Int("attempts", attempt),
		zap.Int("bytes", len(body)),
	)

	return DecodeJSON(body, p.field)
}
