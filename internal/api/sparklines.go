package api

import (
	"net/http"
	"strings"
)

// sparklineDays is the trend window served by the API.
const sparklineDays = 7

func (h *Handler) handleSparklines(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		writeError(w, http.StatusInternalServerError, errorBody{Error: "snapshot storage not configured"})
		return
	}

	var projectIDs []string
	if raw := r.URL.Query().Get("projects"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				projectIDs = append(projectIDs, id)
			}
		}
	}

	sp, err := h.archive.BuildSparklines(r.Context(), projectIDs, sparklineDays)
	if err != nil {
		h.log.Error().Err(err).Msg("build sparklines")
		writeError(w, http.StatusInternalServerError, errorBody{Error: "snapshot storage unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, sp)
}
