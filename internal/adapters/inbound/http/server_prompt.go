package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (api PromptDedupServer) CheckPrompt(w http.ResponseWriter, r *http.Request) {
	var req gen.CheckPromptJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	params := usecases.CheckPromptParams{
		Project:     req.Project,
		Environment: req.Environment,
		Text:        req.Prompt,
		Threshold:   req.Threshold,
	}
	if req.Model != nil {
		params.Model = *req.Model
	}
	if req.AnalysisModel != nil {
		params.AnalysisModel = *req.AnalysisModel
	}
	if req.Limit != nil {
		params.Limit = *req.Limit
	}

	result, err := api.CheckPromptUseCase.Execute(r.Context(), params)
	if err != nil {
		api.Logger.Printf("Error checking prompt: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toCheckPromptResp(result))
}

func (api PromptDedupServer) SavePrompt(w http.ResponseWriter, r *http.Request) {
	var req gen.SavePromptJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	var model string
	if req.Model != nil {
		model = *req.Model
	}

	id, err := api.SavePromptUseCase.Execute(r.Context(), req.Project, req.Environment, req.Prompt, model)
	if err != nil {
		api.Logger.Printf("Error saving prompt: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, gen.SavePromptResp{Id: openapi_types.UUID(id)})
}

// ResetPrompts drops every stored prompt. Without an explicit width the new width is taken
// from a probe embedding of the requested (or default) model.
func (api PromptDedupServer) ResetPrompts(w http.ResponseWriter, r *http.Request, params gen.ResetPromptsParams) {
	if params.Width != nil {
		if err := api.ResetCorpusUseCase.Execute(r.Context(), *params.Width); err != nil {
			api.Logger.Printf("Error resetting prompts: %v", err)
			respondError(w, toError(err))
			return
		}
		respondJSON(w, http.StatusOK, gen.ResetPromptsResp{Width: *params.Width})
		return
	}

	var model string
	if params.Model != nil {
		model = *params.Model
	}
	width, err := api.ResetCorpusUseCase.ExecuteProbe(r.Context(), model, "")
	if err != nil {
		api.Logger.Printf("Error resetting prompts: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, gen.ResetPromptsResp{Width: width})
}
