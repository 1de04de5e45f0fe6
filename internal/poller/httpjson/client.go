// internal/poller/httpjson/client.go
package httpjson

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/publicsuffix"
)

// MaxBodyBytes caps one response body.
const MaxBodyBytes = 1 << 20

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpjson: GET %s: status %d", e.URL, e.Code)
}

// Client implements poller.Fetcher over HTTP.
// GET only, no body, no custom headers. Credentials are same-origin:
// the session cookie lives in a jar scoped to the base URL's host.
type Client struct {
	base *url.URL
	http *http.Client
}

// Config is minimal transport config.
type Config struct {
	BaseURL string

	// Session cookie (optional).
	CookieName  string
	CookieValue string

	Timeout time.Duration
	HTTP2   bool
}

// New creates a client. No request is issued.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("httpjson: base url required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("httpjson: base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("httpjson: base url %q must be absolute", cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("httpjson: cookie jar: %w", err)
	}
	if cfg.CookieName != "" && cfg.CookieValue != "" {
		jar.SetCookies(base, []*http.Cookie{{
			Name:  cfg.CookieName,
			Value: cfg.CookieValue,
			Path:  "/",
		}})
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.Timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: cfg.Timeout,
	}
	if cfg.HTTP2 {
		if err := http2.ConfigureTransport(tr); err != nil {
			return nil, fmt.Errorf("httpjson: configure http2: %w", err)
		}
	}

	return &Client{
		base: base,
		http: &http.Client{
			Transport: tr,
			Jar:       jar,
			Timeout:   cfg.Timeout,
		},
	}, nil
}

// Resolve turns an endpoint (relative or absolute) into a full URL.
func (c *Client) Resolve(endpoint string) (*url.URL, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("httpjson: endpoint %q: %w", endpoint, err)
	}
	return c.base.ResolveReference(ref), nil
}

// Get issues one GET and returns the raw body.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	u, err := c.Resolve(endpoint)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("httpjson: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpjson: GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodyBytes))
		return nil, &StatusError{URL: u.String(), Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("httpjson: read %s: %w", u, err)
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("httpjson: %s: body exceeds %d bytes", u, MaxBodyBytes)
	}
	return body, nil
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
