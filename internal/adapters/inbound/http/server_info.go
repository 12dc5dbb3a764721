package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
)

const (
	serviceName    = "Prompt Similarity Detector"
	serviceVersion = "0.6.0"
)

func (api PromptDedupServer) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, gen.InfoResp{
		Name:    serviceName,
		Version: serviceVersion,
		Status:  "ok",
	})
}

func (api PromptDedupServer) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := api.ListAvailableModelsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing models: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := gen.ListModelsResp{Items: []gen.ModelInfo{}}
	for _, m := range models {
		resp.Items = append(resp.Items, toModelInfo(m))
	}
	respondJSON(w, http.StatusOK, resp)
}
