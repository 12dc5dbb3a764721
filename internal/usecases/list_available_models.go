package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListAvailableModels defines the use case for listing the models offered by the LLM provider
type ListAvailableModels interface {
	Query(ctx context.Context) ([]domain.ModelInfo, error)
}

// ListAvailableModelsImpl implements the ListAvailableModels use case
type ListAvailableModelsImpl struct {
	catalog domain.ModelCatalog
}

// NewListAvailableModelsImpl creates a new ListAvailableModelsImpl instance
func NewListAvailableModelsImpl(catalog domain.ModelCatalog) *ListAvailableModelsImpl {
	return &ListAvailableModelsImpl{
		catalog: catalog,
	}
}

// Query retrieves the available models, embedding models first
func (uc ListAvailableModelsImpl) Query(ctx context.Context) ([]domain.ModelInfo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	models, err := uc.catalog.ListModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	res := make([]domain.ModelInfo, 0, len(models))
	for _, m := range models {
		if m.Kind == domain.ModelKindEmbedding {
			res = append(res, m)
		}
	}
	for _, m := range models {
		if m.Kind != domain.ModelKindEmbedding {
			res = append(res, m)
		}
	}
	return res, nil
}

type InitListAvailableModels struct {
	Catalog domain.ModelCatalog `resolve:""`
}

// Initialize registers the ListAvailableModels use case in the dependency container
func (i InitListAvailableModels) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListAvailableModels](NewListAvailableModelsImpl(
		i.Catalog,
	))
	return ctx, nil
}
