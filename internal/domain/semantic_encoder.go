package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	Model       string
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
type SemanticEncoder interface {
	// Embed generates a semantic vector for a prompt text. When model is empty the encoder
	// picks an embedding-capable model from its catalog.
	Embed(ctx context.Context, model, text string) (EmbeddingVector, error)
}

// ModelKind describes the capability class of a model.
type ModelKind string

const (
	ModelKindChat      ModelKind = "chat"
	ModelKindEmbedding ModelKind = "embedding"
)

// ModelInfo describes one available model in a provider-agnostic format.
type ModelInfo struct {
	Name string
	Kind ModelKind
}

// ModelCatalog exposes the models offered by the LLM provider.
type ModelCatalog interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}

// SelectModel returns the first model of the given kind, falling back to the first model
// of any kind. It reports false when the catalog is empty.
func SelectModel(models []ModelInfo, kind ModelKind) (ModelInfo, bool) {
	for _, m := range models {
		if m.Kind == kind {
			return m, true
		}
	}
	if len(models) > 0 {
		return models[0], true
	}
	return ModelInfo{}, false
}
