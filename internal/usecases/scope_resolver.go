package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ScopeResolver maps (project name, environment name) pairs to the scope prompts are stored under.
type ScopeResolver interface {
	// Resolve returns the scope of an existing environment. Names are normalized first.
	Resolve(ctx context.Context, project, environment string) (domain.Scope, error)
	// CreateEnvironment creates the environment under an existing project, or returns the
	// existing one with the same name.
	CreateEnvironment(ctx context.Context, project, environment string) (domain.Environment, error)
}

// ScopeResolverImpl is the implementation of the ScopeResolver use case.
type ScopeResolverImpl struct {
	uow          domain.UnitOfWork
	projects     domain.ProjectRepository
	environments domain.EnvironmentRepository
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewScopeResolverImpl creates a new instance of ScopeResolverImpl.
func NewScopeResolverImpl(
	uow domain.UnitOfWork,
	projects domain.ProjectRepository,
	environments domain.EnvironmentRepository,
	timeProvider domain.CurrentTimeProvider,
) ScopeResolverImpl {
	return ScopeResolverImpl{
		uow:          uow,
		projects:     projects,
		environments: environments,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Resolve returns the scope of an existing environment together with its project's requirements.
func (sr ScopeResolverImpl) Resolve(ctx context.Context, project, environment string) (domain.Scope, error) {
	project, environment = domain.NormalizeName(project), domain.NormalizeName(environment)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", project),
		attribute.String("environment", environment),
	))
	defer span.End()

	p, found, err := sr.projects.GetProject(spanCtx, project)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Scope{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("project '%s' not found", project))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Scope{}, err
	}

	env, found, err := sr.environments.GetEnvironment(spanCtx, project, environment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Scope{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("environment '%s' for project '%s' not found", environment, project))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Scope{}, err
	}

	return domain.Scope{
		ID:           env.ID,
		ProjectName:  p.Name,
		Environment:  env.Name,
		Requirements: p.Requirements,
		Focus:        p.Focus,
	}, nil
}

// CreateEnvironment creates an environment under an existing project in a single transaction.
func (sr ScopeResolverImpl) CreateEnvironment(ctx context.Context, project, environment string) (domain.Environment, error) {
	project, environment = domain.NormalizeName(project), domain.NormalizeName(environment)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", project),
		attribute.String("environment", environment),
	))
	defer span.End()

	env := domain.Environment{
		ID:          sr.createUUID(),
		ProjectName: project,
		Name:        environment,
		CreatedAt:   sr.timeProvider.Now(),
	}
	if err := env.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Environment{}, err
	}

	var created domain.Environment
	err := sr.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		p, found, err := uow.Project().GetProject(spanCtx, project)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewInvalidReferenceErr(fmt.Sprintf("project '%s' does not exist", project))
		}
		env.ProjectID = p.ID

		if _, err := uow.Environment().CreateEnvironment(spanCtx, env); err != nil {
			return err
		}

		stored, found, err := uow.Environment().GetEnvironment(spanCtx, project, environment)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("environment '%s' vanished after creation", environment)
		}
		created = stored
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Environment{}, err
	}

	return created, nil
}

// InitScopeResolver initializes the ScopeResolver use case and registers it in the dependency container.
type InitScopeResolver struct {
	Uow          domain.UnitOfWork            `resolve:""`
	Projects     domain.ProjectRepository     `resolve:""`
	Environments domain.EnvironmentRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider   `resolve:""`
}

// Initialize registers the ScopeResolver use case in the dependency container.
func (isr InitScopeResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ScopeResolver](NewScopeResolverImpl(isr.Uow, isr.Projects, isr.Environments, isr.TimeProvider))
	return ctx, nil
}
