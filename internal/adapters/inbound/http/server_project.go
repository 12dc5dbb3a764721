package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
)

func (api PromptDedupServer) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := api.ListProjectsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing projects: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := gen.ListProjectsResp{Items: []gen.Project{}}
	for _, p := range projects {
		resp.Items = append(resp.Items, toProject(p))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api PromptDedupServer) UpsertProject(w http.ResponseWriter, r *http.Request) {
	var req gen.UpsertProjectJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	var requirements string
	if req.Requirements != nil {
		requirements = *req.Requirements
	}

	project, err := api.UpsertProjectUseCase.Execute(r.Context(), req.Name, requirements, req.Focus)
	if err != nil {
		api.Logger.Printf("Error upserting project: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toProject(project))
}

func (api PromptDedupServer) UpdateProject(w http.ResponseWriter, r *http.Request, name string) {
	var req gen.UpdateProjectJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	project, err := api.UpdateProjectUseCase.Execute(r.Context(), name, domain.ProjectUpdate{
		Requirements: req.Requirements,
		Focus:        req.Focus,
	})
	if err != nil {
		api.Logger.Printf("Error updating project: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toProject(project))
}

func (api PromptDedupServer) DeleteProject(w http.ResponseWriter, r *http.Request, name string) {
	if err := api.DeleteProjectUseCase.Execute(r.Context(), name); err != nil {
		api.Logger.Printf("Error deleting project: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
