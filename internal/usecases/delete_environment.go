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

// DeleteEnvironment defines the interface for the DeleteEnvironment use case.
type DeleteEnvironment interface {
	// Execute deletes the environment together with its stored prompts.
	Execute(ctx context.Context, project, environment string) error
}

// DeleteEnvironmentImpl is the implementation of the DeleteEnvironment use case.
type DeleteEnvironmentImpl struct {
	environments domain.EnvironmentRepository
}

// NewDeleteEnvironmentImpl creates a new instance of DeleteEnvironmentImpl.
func NewDeleteEnvironmentImpl(environments domain.EnvironmentRepository) DeleteEnvironmentImpl {
	return DeleteEnvironmentImpl{environments: environments}
}

// Execute deletes an environment by project and environment names.
func (de DeleteEnvironmentImpl) Execute(ctx context.Context, project, environment string) error {
	project, environment = domain.NormalizeName(project), domain.NormalizeName(environment)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", project),
		attribute.String("environment", environment),
	))
	defer span.End()

	deleted, err := de.environments.DeleteEnvironment(spanCtx, project, environment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if !deleted {
		err := domain.NewNotFoundErr(fmt.Sprintf("environment '%s' for project '%s' not found", environment, project))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// InitDeleteEnvironment initializes the DeleteEnvironment use case and registers it in the dependency container.
type InitDeleteEnvironment struct {
	Environments domain.EnvironmentRepository `resolve:""`
}

// Initialize registers the DeleteEnvironment use case in the dependency container.
func (ide InitDeleteEnvironment) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteEnvironment](NewDeleteEnvironmentImpl(ide.Environments))
	return ctx, nil
}
