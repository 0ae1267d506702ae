package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

const (
	// DefaultHost is the vendor's data API gateway.
	DefaultHost = "comm.ams.game.qq.com"

	appID   = "101491592"
	idePath = "/ide/"
)

// Options tune the API client. Zero values fall back to the documented
// defaults.
type Options struct {
	// Host is the gateway host, optionally with a scheme prefix.
	// Plain hosts are queried over https.
	Host       string
	Timeout    time.Duration
	RetryCount int
	CacheTTL   time.Duration
}

// Client issues authenticated chart queries against the vendor gateway.
// Responses are cached per query for a short TTL so repeated renders of
// the same report do not re-hit the API.
type Client struct {
	http    *retryablehttp.Client
	scheme  string
	host    string
	session domain.Session

	cacheTTL time.Duration
	mu       sync.Mutex
	cache    map[string]cacheEntry

	now func() time.Time
}

type cacheEntry struct {
	body    []byte
	fetched time.Time
}

// New builds a client bound to one credential session.
func New(session domain.Session, opts Options) *Client {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RetryCount <= 0 {
		opts.RetryCount = 3
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}

	scheme := "https"
	host := opts.Host
	if s, rest, ok := strings.Cut(opts.Host, "://"); ok {
		scheme, host = s, rest
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryCount
	rc.HTTPClient.Timeout = opts.Timeout
	rc.Logger = nil

	return &Client{
		http:     rc,
		scheme:   scheme,
		host:     host,
		session:  session,
		cacheTTL: opts.CacheTTL,
		cache:    make(map[string]cacheEntry),
		now:      time.Now,
	}
}

// Query POSTs a chart query. The gateway takes every parameter in the
// query string; the body stays empty. Identical queries within the cache
// TTL are served from memory.
func (c *Client) Query(ctx context.Context, params url.Values) ([]byte, error) {
	key := params.Encode()

	c.mu.Lock()
	if entry, ok := c.cache[key]; ok && c.now().Sub(entry.fetched) < c.cacheTTL {
		c.mu.Unlock()
		return entry.body, nil
	}
	c.mu.Unlock()

	u := url.URL{Scheme: c.scheme, Host: c.host, Path: idePath, RawQuery: key}
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;")
	req.Header.Set("Cookie", c.cookie())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.host, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{body: body, fetched: c.now()}
	c.mu.Unlock()
	return body, nil
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry)
	c.mu.Unlock()
}

func (c *Client) cookie() string {
	return fmt.Sprintf("openid=%s; acctype=%s; appid=%s; access_token=%s",
		c.session.OpenID, c.session.AccType, appID, c.session.Token)
}

func statusError(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized:
		return fmt.Errorf("authentication failed (401): token invalid or expired")
	case code == http.StatusForbidden:
		return fmt.Errorf("access denied (403): check account permissions")
	case code == http.StatusNotFound:
		return fmt.Errorf("resource not found (404)")
	case code >= 400 && code < 500:
		return fmt.Errorf("request rejected with status %d", code)
	default:
		return fmt.Errorf("server error with status %d", code)
	}
}
