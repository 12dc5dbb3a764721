package modelrunner

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

var (
	errNoModels        = errors.New("no models available on the model server")
	errNoEmbeddingData = errors.New("no embedding data in response")
)

// Encoder adapts DRMAPIClient to domain.SemanticEncoder.
type Encoder struct {
	client   DRMAPIClient
	selector modelSelector
}

// NewEncoder creates a new Encoder. When defaultModel is empty the first embedding
// model of the catalog is used.
func NewEncoder(client DRMAPIClient, catalog domain.ModelCatalog, defaultModel string) Encoder {
	return Encoder{
		client: client,
		selector: modelSelector{
			catalog:      catalog,
			defaultModel: defaultModel,
			kind:         domain.ModelKindEmbedding,
		},
	}
}

// Embed implements domain.SemanticEncoder.
func (e Encoder) Embed(ctx context.Context, model, text string) (domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	model, err := e.selector.resolve(spanCtx, model)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	span.SetAttributes(attribute.String("model", model))

	resp, err := e.client.Embeddings(spanCtx, EmbeddingsRequest{Model: model, Input: text})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.EmbeddingVector{}, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		telemetry.RecordErrorAndStatus(span, errNoEmbeddingData)
		return domain.EmbeddingVector{}, errNoEmbeddingData
	}

	span.SetAttributes(attribute.Int("width", len(resp.Data[0].Embedding)))
	return domain.EmbeddingVector{
		Vector:      resp.Data[0].Embedding,
		Model:       model,
		TotalTokens: resp.Usage.TotalTokens,
	}, nil
}
