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

func TestListProjectsImpl_Query(t *testing.T) {
	projectList := []domain.Project{
		{ID: fixedProjectID, Name: "checkout", CreatedAt: fixedTime},
	}

	tests := map[string]struct {
		setExpectations  func(projects *domain.MockProjectRepository)
		expectedProjects []domain.Project
		expectedErr      error
	}{
		"success": {
			setExpectations: func(projects *domain.MockProjectRepository) {
				projects.EXPECT().ListProjects(mock.Anything).Return(projectList, nil).Once()
			},
			expectedProjects: projectList,
		},
		"repository-error": {
			setExpectations: func(projects *domain.MockProjectRepository) {
				projects.EXPECT().ListProjects(mock.Anything).Return(nil, errors.New("database error")).Once()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			projects := domain.NewMockProjectRepository(t)
			tt.setExpectations(projects)

			got, err := NewListProjectsImpl(projects).Query(context.Background())
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedProjects, got)
		})
	}
}

func TestInitListProjects_Initialize(t *testing.T) {
	ctx, err := InitListProjects{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[ListProjects]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
