// Package api implements the Chainscope REST API: scored projects, cached
// live metrics, snapshot history, and the archival trigger.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/chainscope/chainscope/internal/archive"
	"github.com/chainscope/chainscope/internal/store"
	"github.com/chainscope/chainscope/pkg/metrics"
	"github.com/chainscope/chainscope/pkg/projects"
)

// allMetricsKey is the singleton cache key for the all-projects view.
const allMetricsKey = "all"

// Handler is the top-level API handler.
type Handler struct {
	store    store.Store
	archive  *archive.Service
	registry *projects.Registry
	log      zerolog.Logger

	metricsCache *FetchCache[metrics.MetricsData]
	allCache     *FetchCache[map[string]metrics.MetricsData]
}

// NewHandler creates an API handler. archiveSvc may be nil when no object
// storage is configured; history, sparkline, and archive endpoints then
// report the missing binding as a configuration error.
func NewHandler(st store.Store, archiveSvc *archive.Service, registry *projects.Registry,
	metricsCache *FetchCache[metrics.MetricsData], allCache *FetchCache[map[string]metrics.MetricsData],
	log zerolog.Logger) *Handler {
	if metricsCache == nil {
		metricsCache = NewFetchCache[metrics.MetricsData](DefaultCacheTTL)
	}
	if allCache == nil {
		allCache = NewFetchCache[map[string]metrics.MetricsData](DefaultCacheTTL)
	}
	return &Handler{
		store:        st,
		archive:      archiveSvc,
		registry:     registry,
		log:          log,
		metricsCache: metricsCache,
		allCache:     allCache,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux. auth, if
// non-nil, wraps the archive trigger; read endpoints stay public.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, auth func(http.Handler) http.Handler) {
	if auth == nil {
		auth = func(next http.Handler) http.Handler { return next }
	}

	mux.HandleFunc("GET /api/metrics", h.handleMetrics)
	mux.HandleFunc("GET /api/all-metrics", h.handleAllMetrics)
	mux.HandleFunc("GET /api/history", h.handleHistory)
	mux.HandleFunc("GET /api/sparklines", h.handleSparklines)
	mux.HandleFunc("GET /api/projects", h.handleListProjects)
	mux.HandleFunc("GET /api/projects/{projectID}", h.handleGetProject)

	archiveHandler := auth(http.HandlerFunc(h.handleArchive))
	mux.Handle("GET /api/archive", archiveHandler)
	mux.Handle("POST /api/archive", archiveHandler)
}

// errorBody is the structured error response shape.
type errorBody struct {
	Error   string `json:"error"`
	Project string `json:"project,omitempty"`
	Date    string `json:"date,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, body errorBody) {
	writeJSON(w, status, body)
}
