package report

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/df-tools/solrecon/pkg/services/report"
)

type Handler struct {
	registry report.Registry
	deps     report.Deps
}

func NewHandler(registry report.Registry, deps report.Deps) *Handler {
	return &Handler{
		registry: registry,
		deps:     deps,
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.registry.ListReports()); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode report list")
	}
}

// GetReport fetches one report. format=text returns the rendered plain
// text block, anything else the structured JSON form.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "report")

	ctrl, err := h.registry.Create(name, h.deps)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	q := report.Query{
		Mode:     r.URL.Query().Get("mode"),
		StatDate: r.URL.Query().Get("date"),
		Area:     r.URL.Query().Get("area"),
	}
	rep, err := ctrl.Fetch(ctx, q)
	if err != nil {
		logger.Error().
			Err(err).
			Str("report", name).
			Msg("failed to fetch report")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(rep.Text())); err != nil {
			logger.Error().
				Err(err).
				Str("report", name).
				Msg("failed to write report text")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		logger.Error().
			Err(err).
			Str("report", name).
			Msg("failed to encode report")
	}
}
