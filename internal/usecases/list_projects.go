package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListProjects defines the interface for the ListProjects use case.
type ListProjects interface {
	Query(ctx context.Context) ([]domain.Project, error)
}

// ListProjectsImpl is the implementation of the ListProjects use case.
type ListProjectsImpl struct {
	projects domain.ProjectRepository
}

// NewListProjectsImpl creates a new instance of ListProjectsImpl.
func NewListProjectsImpl(projects domain.ProjectRepository) ListProjectsImpl {
	return ListProjectsImpl{projects: projects}
}

// Query lists all projects ordered by name.
func (lp ListProjectsImpl) Query(ctx context.Context) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	projects, err := lp.projects.ListProjects(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return projects, nil
}

// InitListProjects initializes the ListProjects use case and registers it in the dependency container.
type InitListProjects struct {
	Projects domain.ProjectRepository `resolve:""`
}

// Initialize registers the ListProjects use case in the dependency container.
func (ilp InitListProjects) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListProjects](NewListProjectsImpl(ilp.Projects))
	return ctx, nil
}
