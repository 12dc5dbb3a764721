package modelrunner

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
)

// ModelCatalog adapts DRMAPIClient to domain.ModelCatalog.
type ModelCatalog struct {
	client DRMAPIClient
}

// NewModelCatalog creates a new ModelCatalog.
func NewModelCatalog(client DRMAPIClient) ModelCatalog {
	return ModelCatalog{client: client}
}

// ListModels returns all available models tagged by capability. Servers do not report
// capabilities, so any model whose id mentions "embed" is treated as an embedding model.
func (mc ModelCatalog) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	resp, err := mc.client.AvailableModels(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	models := make([]domain.ModelInfo, len(resp.Data))
	for i, m := range resp.Data {
		kind := domain.ModelKindChat
		if strings.Contains(strings.ToLower(m.ID), "embed") {
			kind = domain.ModelKindEmbedding
		}
		models[i] = domain.ModelInfo{
			Name: strings.TrimPrefix(m.ID, "docker.io/"),
			Kind: kind,
		}
	}
	return models, nil
}

// modelSelector picks the model for a call: the per-call override, then the configured
// default, then the first catalog entry of the wanted kind.
type modelSelector struct {
	catalog      domain.ModelCatalog
	defaultModel string
	kind         domain.ModelKind
}

func (s modelSelector) resolve(ctx context.Context, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if s.defaultModel != "" {
		return s.defaultModel, nil
	}
	models, err := s.catalog.ListModels(ctx)
	if err != nil {
		return "", err
	}
	m, ok := domain.SelectModel(models, s.kind)
	if !ok {
		return "", errNoModels
	}
	return m.Name, nil
}
