package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/chainscope/chainscope/internal/store"
	"github.com/chainscope/chainscope/pkg/metrics"
)

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	projectID := r.URL.Query().Get("project")
	if projectID == "" {
		writeError(w, http.StatusBadRequest, errorBody{Error: "project parameter required"})
		return
	}
	if _, ok := h.registry.ByID(projectID); !ok {
		writeError(w, http.StatusNotFound, errorBody{Error: "project not found", Project: projectID})
		return
	}

	data, err := h.metricsCache.Get(r.Context(), projectID, func(ctx context.Context) (metrics.MetricsData, error) {
		return h.store.GetMetrics(ctx, projectID)
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, errorBody{Error: "no metrics for project", Project: projectID})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("project", projectID).Msg("load metrics")
		writeError(w, http.StatusInternalServerError, errorBody{Error: "metrics backend unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, data)
}

type allMetricsResponse struct {
	Count   int                            `json:"count"`
	Metrics map[string]metrics.MetricsData `json:"metrics"`
}

func (h *Handler) handleAllMetrics(w http.ResponseWriter, r *http.Request) {
	all, err := h.allCache.Get(r.Context(), allMetricsKey, func(ctx context.Context) (map[string]metrics.MetricsData, error) {
		return h.store.ListMetrics(ctx)
	})
	if err != nil {
		h.log.Error().Err(err).Msg("list metrics")
		writeError(w, http.StatusInternalServerError, errorBody{Error: "metrics backend unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, allMetricsResponse{Count: len(all), Metrics: all})
}
