package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/common"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertProjectImpl_Execute(t *testing.T) {
	existingID := uuid.MustParse("923e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		name            string
		requirements    string
		focus           *string
		setExpectations func(projects *domain.MockProjectRepository)
		expectedProject domain.Project
		expectedErr     error
	}{
		"creates-project": {
			name:         " Checkout ",
			requirements: "  Tests must be table-driven\n",
			focus:        common.Ptr(" payments "),
			setExpectations: func(projects *domain.MockProjectRepository) {
				projects.EXPECT().UpsertProject(mock.Anything, domain.Project{
					ID:           fixedProjectID,
					Name:         "checkout",
					Requirements: "Tests must be table-driven",
					Focus:        common.Ptr("payments"),
					CreatedAt:    fixedTime,
				}).Return(fixedProjectID, nil).Once()
			},
			expectedProject: domain.Project{
				ID:           fixedProjectID,
				Name:         "checkout",
				Requirements: "Tests must be table-driven",
				Focus:        common.Ptr("payments"),
				CreatedAt:    fixedTime,
			},
		},
		"overwrites-existing-and-clears-blank-focus": {
			name:         "checkout",
			requirements: "New requirements",
			focus:        common.Ptr("   "),
			setExpectations: func(projects *domain.MockProjectRepository) {
				projects.EXPECT().UpsertProject(mock.Anything, domain.Project{
					ID:           fixedProjectID,
					Name:         "checkout",
					Requirements: "New requirements",
					CreatedAt:    fixedTime,
				}).Return(existingID, nil).Once()
			},
			expectedProject: domain.Project{
				ID:           existingID,
				Name:         "checkout",
				Requirements: "New requirements",
				CreatedAt:    fixedTime,
			},
		},
		"empty-name": {
			name:            "  ",
			setExpectations: func(projects *domain.MockProjectRepository) {},
			expectedErr:     domain.NewValidationErr("project name cannot be empty"),
		},
		"name-too-long": {
			name:            strings.Repeat("a", 201),
			setExpectations: func(projects *domain.MockProjectRepository) {},
			expectedErr:     domain.NewValidationErr("project name must be at most 200 characters"),
		},
		"repository-error": {
			name: "checkout",
			setExpectations: func(projects *domain.MockProjectRepository) {
				projects.EXPECT().UpsertProject(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("database error")).Once()
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			projects := domain.NewMockProjectRepository(t)
			timeProvider := domain.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime).Once()
			tt.setExpectations(projects)

			up := NewUpsertProjectImpl(projects, timeProvider)
			up.createUUID = func() uuid.UUID { return fixedProjectID }

			got, err := up.Execute(context.Background(), tt.name, tt.requirements, tt.focus)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedProject, got)
		})
	}
}

func TestInitUpsertProject_Initialize(t *testing.T) {
	ctx, err := InitUpsertProject{}.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[UpsertProject]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
