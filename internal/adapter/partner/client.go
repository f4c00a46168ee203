package partner

import (
	"bytes"
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

	"promo-scheduler/internal/core/domain"
)

// StatusError is a non-2xx partner response.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.URL, e.Code, e.Body)
}

// Options configures a partner client.
type Options struct {
	ServiceToken string
	// Timeout bounds each request. Zero means 10 seconds.
	Timeout time.Duration
	// RatePerSecond throttles outgoing requests. Zero disables throttling.
	RatePerSecond float64
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// client is the JSON transport shared by every partner adapter.
type client struct {
	base    url.URL
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

func newClient(base url.URL, opts Options) *client {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	var limiter *rate.Limiter
	if opts.RatePerSecond > 0 {
		burst := int(opts.RatePerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}
	return &client{base: base, token: opts.ServiceToken, http: hc, limiter: limiter}
}

// doJSON sends in as the JSON body (when non-nil) and decodes a 2xx
// response into out (when non-nil). Transport failures, timeouts and
// retryable statuses wrap domain.ErrTransientExternal.
func (c *client) doJSON(ctx context.Context, method, path string, header http.Header, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", domain.ErrTransientExternal, err)
		}
	}

	u := c.base.JoinPath(path)

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("X-Service-Token", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransientExternal, method, u.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		serr := &StatusError{Method: method, URL: u.Path, Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		if retryable(resp.StatusCode) {
			return errors.Join(domain.ErrTransientExternal, serr)
		}
		return serr
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", u.Path, err)
	}
	return nil
}

func retryable(code int) bool {
	return code >= 500 || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout
}
