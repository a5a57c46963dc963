package api

import "net/http"

type archiveResponse struct {
	Success  bool     `json:"success"`
	Date     string   `json:"date"`
	Archived int      `json:"archived"`
	Keys     []string `json:"keys"`
}

func (h *Handler) handleArchive(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		writeError(w, http.StatusInternalServerError, errorBody{Error: "snapshot storage not configured"})
		return
	}

	record, err := h.archive.ArchiveToday(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("archival run failed")
		writeError(w, http.StatusInternalServerError, errorBody{Error: "archival failed"})
		return
	}

	writeJSON(w, http.StatusOK, archiveResponse{
		Success:  true,
		Date:     record.Date,
		Archived: record.Archived,
		Keys:     record.Keys,
	})
}
