package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df-tools/solrecon/pkg/models/domain"
)

var testSession = domain.Session{OpenID: "oid", Token: "tok", AccType: "qc"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(testSession, Options{Host: srv.URL, RetryCount: 1})
}

func TestClientQuery(t *testing.T) {
	t.Run("sends cookie and urlencoded query", func(t *testing.T) {
		var gotCookie, gotPath, gotContentType string
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotCookie = r.Header.Get("Cookie")
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "316968", r.URL.Query().Get("iChartId"))
			_, _ = w.Write([]byte(`{"ret":0}`))
		})

		body, err := c.Query(context.Background(), url.Values{"iChartId": {"316968"}})
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"ret":0}`), body)
		assert.Equal(t, "openid=oid; acctype=qc; appid=101491592; access_token=tok", gotCookie)
		assert.Equal(t, "/ide/", gotPath)
		assert.Equal(t, "application/x-www-form-urlencoded;", gotContentType)
	})

	t.Run("serves identical queries from cache", func(t *testing.T) {
		var hits atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"ret":0}`))
		})

		params := url.Values{"iChartId": {"1"}}
		_, err := c.Query(context.Background(), params)
		require.NoError(t, err)
		_, err = c.Query(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int32(1), hits.Load())

		// A different query misses the cache.
		_, err = c.Query(context.Background(), url.Values{"iChartId": {"2"}})
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("cache entries expire", func(t *testing.T) {
		var hits atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"ret":0}`))
		})

		base := time.Now()
		c.now = func() time.Time { return base }
		params := url.Values{"iChartId": {"1"}}
		_, err := c.Query(context.Background(), params)
		require.NoError(t, err)

		c.now = func() time.Time { return base.Add(10 * time.Minute) }
		_, err = c.Query(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("clear cache forces a refetch", func(t *testing.T) {
		var hits atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(`{"ret":0}`))
		})

		params := url.Values{"iChartId": {"1"}}
		_, err := c.Query(context.Background(), params)
		require.NoError(t, err)
		c.ClearCache()
		_, err = c.Query(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("auth failure is not retried", func(t *testing.T) {
		var hits atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := c.Query(context.Background(), url.Values{"iChartId": {"1"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Equal(t, int32(1), hits.Load())
	})

	t.Run("forbidden and not found map to distinct errors", func(t *testing.T) {
		assert.ErrorContains(t, statusError(http.StatusForbidden), "403")
		assert.ErrorContains(t, statusError(http.StatusNotFound), "404")
		assert.ErrorContains(t, statusError(http.StatusTeapot), "418")
		assert.NoError(t, statusError(http.StatusOK))
	})
}

func TestClientDefaults(t *testing.T) {
	c := New(testSession, Options{})
	assert.Equal(t, DefaultHost, c.host)
	assert.Equal(t, "https", c.scheme)
	assert.Equal(t, 5*time.Minute, c.cacheTTL)
}
