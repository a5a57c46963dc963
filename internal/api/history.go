package api

import (
	"errors"
	"net/http"

	"github.com/chainscope/chainscope/internal/archive"
)

type historyResponse struct {
	Project string   `json:"project"`
	Count   int      `json:"count"`
	Dates   []string `json:"dates"`
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		writeError(w, http.StatusInternalServerError, errorBody{Error: "snapshot storage not configured"})
		return
	}

	projectID := r.URL.Query().Get("project")
	if projectID == "" {
		writeError(w, http.StatusBadRequest, errorBody{Error: "project parameter required"})
		return
	}

	if date := r.URL.Query().Get("date"); date != "" {
		snap, err := h.archive.ReadSnapshot(r.Context(), projectID, date)
		if errors.Is(err, archive.ErrNotFound) {
			writeError(w, http.StatusNotFound, errorBody{Error: "snapshot not found", Project: projectID, Date: date})
			return
		}
		if err != nil {
			h.log.Error().Err(err).Str("project", projectID).Str("date", date).Msg("read snapshot")
			writeError(w, http.StatusInternalServerError, errorBody{Error: "snapshot storage unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, snap)
		return
	}

	dates, err := h.archive.ListDates(r.Context(), projectID)
	if err != nil {
		h.log.Error().Err(err).Str("project", projectID).Msg("list snapshot dates")
		writeError(w, http.StatusInternalServerError, errorBody{Error: "snapshot storage unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Project: projectID, Count: len(dates), Dates: dates})
}
