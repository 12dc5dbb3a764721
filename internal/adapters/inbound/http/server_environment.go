package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
)

func (api PromptDedupServer) ListEnvironments(w http.ResponseWriter, r *http.Request, name string) {
	envs, err := api.ListEnvironmentsUseCase.Query(r.Context(), name)
	if err != nil {
		api.Logger.Printf("Error listing environments: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := gen.ListEnvironmentsResp{Items: []gen.Environment{}}
	for _, e := range envs {
		resp.Items = append(resp.Items, toEnvironment(e))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api PromptDedupServer) CreateEnvironment(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateEnvironmentJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	env, err := api.ScopeResolver.CreateEnvironment(r.Context(), req.Project, req.Environment)
	if err != nil {
		api.Logger.Printf("Error creating environment: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toEnvironment(env))
}

func (api PromptDedupServer) DeleteEnvironment(w http.ResponseWriter, r *http.Request, project string, environment string) {
	if err := api.DeleteEnvironmentUseCase.Execute(r.Context(), project, environment); err != nil {
		api.Logger.Printf("Error deleting environment: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api PromptDedupServer) ClearEnvironmentPrompts(w http.ResponseWriter, r *http.Request, project string, environment string) {
	deleted, err := api.ClearEnvironmentPromptsUseCase.Execute(r.Context(), project, environment)
	if err != nil {
		api.Logger.Printf("Error clearing environment prompts: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, gen.ClearPromptsResp{Deleted: deleted})
}
