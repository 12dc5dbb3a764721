package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListAvailableModelsImpl_Query(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(catalog *domain.MockModelCatalog)
		expectedModels  []domain.ModelInfo
		expectedErr     error
	}{
		"embedding-models-first": {
			setExpectations: func(catalog *domain.MockModelCatalog) {
				catalog.EXPECT().
					ListModels(mock.Anything).
					Return([]domain.ModelInfo{
						{Name: "qwen3", Kind: domain.ModelKindChat},
						{Name: "nomic-embed", Kind: domain.ModelKindEmbedding},
						{Name: "llama3", Kind: domain.ModelKindChat},
					}, nil).
					Once()
			},
			expectedModels: []domain.ModelInfo{
				{Name: "nomic-embed", Kind: domain.ModelKindEmbedding},
				{Name: "qwen3", Kind: domain.ModelKindChat},
				{Name: "llama3", Kind: domain.ModelKindChat},
			},
		},
		"empty-catalog": {
			setExpectations: func(catalog *domain.MockModelCatalog) {
				catalog.EXPECT().ListModels(mock.Anything).Return([]domain.ModelInfo{}, nil).Once()
			},
			expectedModels: []domain.ModelInfo{},
		},
		"catalog-error": {
			setExpectations: func(catalog *domain.MockModelCatalog) {
				catalog.EXPECT().
					ListModels(mock.Anything).
					Return(nil, errors.New("llm error")).
					Once()
			},
			expectedModels: nil,
			expectedErr:    errors.New("llm error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalog := domain.NewMockModelCatalog(t)
			tt.setExpectations(catalog)

			uc := NewListAvailableModelsImpl(catalog)
			got, err := uc.Query(context.Background())

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedModels, got)
		})
	}
}

func TestInitListAvailableModels_Initialize(t *testing.T) {
	init := InitListAvailableModels{
		Catalog: domain.NewMockModelCatalog(t),
	}

	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListAvailableModels]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
