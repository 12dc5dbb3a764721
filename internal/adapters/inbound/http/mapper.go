package http

import (
	"errors"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/common"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) gen.ErrorResp {
	errResp := gen.ErrorResp{}

	var (
		validationErr *domain.ValidationErr
		invalidRefErr *domain.InvalidReferenceErr
		dimensionErr  *domain.DimensionMismatchErr
		notFoundErr   *domain.NotFoundErr
		embeddingErr  *domain.EmbeddingUnavailableErr
		analysisErr   *domain.AnalysisUnavailableErr
	)
	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &invalidRefErr),
		errors.As(err, &dimensionErr):
		errResp.Error.Code = gen.BADREQUEST
		errResp.Error.Message = err.Error()
	case errors.As(err, &notFoundErr):
		errResp.Error.Code = gen.NOTFOUND
		errResp.Error.Message = err.Error()
	case errors.As(err, &embeddingErr),
		errors.As(err, &analysisErr):
		errResp.Error.Code = gen.SERVICEUNAVAILABLE
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = gen.INTERNALERROR
		errResp.Error.Message = "internal server error"
	}
	return errResp
}

func badRequest(message string) gen.ErrorResp {
	errResp := gen.ErrorResp{}
	errResp.Error.Code = gen.BADREQUEST
	errResp.Error.Message = message
	return errResp
}

func toProject(p domain.Project) gen.Project {
	return gen.Project{
		Id:           openapi_types.UUID(p.ID),
		Name:         p.Name,
		Requirements: p.Requirements,
		Focus:        p.Focus,
		CreatedAt:    p.CreatedAt,
	}
}

func toEnvironment(e domain.Environment) gen.Environment {
	return gen.Environment{
		Id:        openapi_types.UUID(e.ID),
		Project:   e.ProjectName,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
	}
}

func toModelInfo(m domain.ModelInfo) gen.ModelInfo {
	return gen.ModelInfo{
		Name: m.Name,
		Kind: gen.ModelInfoKind(m.Kind),
	}
}

func toCheckPromptResp(res domain.CheckResult) gen.CheckPromptResp {
	resp := gen.CheckPromptResp{
		ScopeId:  openapi_types.UUID(res.ScopeID),
		Analysis: res.Analysis,
		Matches:  []gen.SimilarPrompt{},
		WasSaved: res.WasSaved,
	}
	if res.AnalysisError != "" {
		resp.AnalysisError = common.Ptr(res.AnalysisError)
	}
	if res.SavedID != nil {
		resp.SavedId = common.Ptr(openapi_types.UUID(*res.SavedID))
	}
	for _, m := range res.Matches {
		resp.Matches = append(resp.Matches, gen.SimilarPrompt{
			Id:         openapi_types.UUID(m.ID),
			Prompt:     m.Text,
			Similarity: m.Similarity,
			CreatedAt:  m.CreatedAt,
		})
	}
	return resp
}
