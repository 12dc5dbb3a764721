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

// DeleteProject defines the interface for the DeleteProject use case.
type DeleteProject interface {
	// Execute deletes the project together with its environments and stored prompts.
	Execute(ctx context.Context, name string) error
}

// DeleteProjectImpl is the implementation of the DeleteProject use case.
type DeleteProjectImpl struct {
	projects domain.ProjectRepository
}

// NewDeleteProjectImpl creates a new instance of DeleteProjectImpl.
func NewDeleteProjectImpl(projects domain.ProjectRepository) DeleteProjectImpl {
	return DeleteProjectImpl{projects: projects}
}

// Execute deletes a project by name.
func (dp DeleteProjectImpl) Execute(ctx context.Context, name string) error {
	name = domain.NormalizeName(name)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", name),
	))
	defer span.End()

	deleted, err := dp.projects.DeleteProject(spanCtx, name)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !deleted {
		err := domain.NewNotFoundErr(fmt.Sprintf("project '%s' not found", name))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// InitDeleteProject initializes the DeleteProject use case and registers it in the dependency container.
type InitDeleteProject struct {
	Projects domain.ProjectRepository `resolve:""`
}

// Initialize registers the DeleteProject use case in the dependency container.
func (idp InitDeleteProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteProject](NewDeleteProjectImpl(idp.Projects))
	return ctx, nil
}
