package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df-tools/solrecon/pkg/models/domain"
	"github.com/df-tools/solrecon/pkg/services/report"
)

type stubController struct{}

func (s *stubController) Name() string { return "stub" }

func (s *stubController) Fetch(_ context.Context, _ report.Query) (*domain.Report, error) {
	return &domain.Report{
		Name:     "stub",
		Title:    "测试报告",
		Sections: []domain.Section{{Lines: []string{"对局场次: 1"}}},
	}, nil
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	registry := report.NewRegistry()
	require.NoError(t, registry.Register("stub",
		func(deps report.Deps) report.Controller { return &stubController{} }))

	api := NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Registry: registry,
		},
	})
	testServer := httptest.NewServer(api.Router())
	defer testServer.Close()

	t.Run("list reports", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/reports")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var names []string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&names))
		assert.Contains(t, names, "weekly")
		assert.Contains(t, names, "stub")
	})

	t.Run("get report as text", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/reports/stub?format=text")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "=== 测试报告 ===")
	})

	t.Run("unknown report is 404", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/reports/nope")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
