package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ListEnvironments defines the interface for the ListEnvironments use case.
type ListEnvironments interface {
	Query(ctx context.Context, project string) ([]domain.Environment, error)
}

// ListEnvironmentsImpl is the implementation of the ListEnvironments use case.
type ListEnvironmentsImpl struct {
	projects     domain.ProjectRepository
	environments domain.EnvironmentRepository
}

// NewListEnvironmentsImpl creates a new instance of ListEnvironmentsImpl.
func NewListEnvironmentsImpl(projects domain.ProjectRepository, environments domain.EnvironmentRepository) ListEnvironmentsImpl {
	return ListEnvironmentsImpl{
		projects:     projects,
		environments: environments,
	}
}

// Query lists the environments of a project ordered by name.
func (le ListEnvironmentsImpl) Query(ctx context.Context, project string) ([]domain.Environment, error) {
	project = domain.NormalizeName(project)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", project),
	))
	defer span.End()

	p, found, err := le.projects.GetProject(spanCtx, project)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("project '%s' not found", project))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	envs, err := le.environments.ListEnvironments(spanCtx, p.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return envs, nil
}

// InitListEnvironments initializes the ListEnvironments use case and registers it in the dependency container.
type InitListEnvironments struct {
	Projects     domain.ProjectRepository     `resolve:""`
	Environments domain.EnvironmentRepository `resolve:""`
}

// Initialize registers the ListEnvironments use case in the dependency container.
func (ile InitListEnvironments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListEnvironments](NewListEnvironmentsImpl(ile.Projects, ile.Environments))
	return ctx, nil
}
