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

func TestDeleteEnvironmentImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(envs *domain.MockEnvironmentRepository)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(envs *domain.MockEnvironmentRepository) {
				envs.EXPECT().DeleteEnvironment(mock.Anything, "checkout", "staging").Return(true, nil).Once()
			},
		},
		"not-found": {
			setExpectations: func(envs *domain.MockEnvironmentRepository) {
				envs.EXPECT().DeleteEnvironment(mock.Anything, "checkout", "staging").Return(false, nil).Once()
			},
			expectedErr: domain.NewNotFoundErr("environment 'staging' for project 'checkout' not found"),
		},
		"repository-error": {
			setExpectations: func(envs *domain.MockEnvironmentRepository) {
				envs.EXPECT().DeleteEnvironment(mock.Anything, "checkout", "staging").Return(false, errors.New("database error")).Once()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			envs := domain.NewMockEnvironmentRepository(t)
			tt.setExpectations(envs)

			err := NewDeleteEnvironmentImpl(envs).Execute(context.Background(), "Checkout", " Staging")
			assert.Equal(t, tt.expectedErr, err)
		})
	}
}

func TestInitDeleteEnvironment_Initialize(t *testing.T) {
	ctx, err := InitDeleteEnvironment{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[DeleteEnvironment]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
