package api

import (
	"net/http"

	"github.com/chainscope/chainscope/pkg/projects"
)

type projectsResponse struct {
	Count    int                `json:"count"`
	Projects []projects.Project `json:"projects"`
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All()
	writeJSON(w, http.StatusOK, projectsResponse{Count: len(all), Projects: all})
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("projectID")
	p, ok := h.registry.ByID(projectID)
	if !ok {
		writeError(w, http.StatusNotFound, errorBody{Error: "project not found", Project: projectID})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
