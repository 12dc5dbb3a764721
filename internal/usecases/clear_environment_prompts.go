package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// ClearEnvironmentPrompts defines the interface for the ClearEnvironmentPrompts use case.
type ClearEnvironmentPrompts interface {
	// Execute removes every stored prompt of the environment and returns how many were removed.
	Execute(ctx context.Context, project, environment string) (int64, error)
}

// ClearEnvironmentPromptsImpl is the implementation of the ClearEnvironmentPrompts use case.
type ClearEnvironmentPromptsImpl struct {
	resolver ScopeResolver
	prompts  domain.PromptRepository
	locker   *ScopeLocker
}

// NewClearEnvironmentPromptsImpl creates a new instance of ClearEnvironmentPromptsImpl.
func NewClearEnvironmentPromptsImpl(resolver ScopeResolver, prompts domain.PromptRepository, locker *ScopeLocker) ClearEnvironmentPromptsImpl {
	return ClearEnvironmentPromptsImpl{
		resolver: resolver,
		prompts:  prompts,
		locker:   locker,
	}
}

// Execute clears the prompts of an existing environment. The environment itself is kept.
func (ce ClearEnvironmentPromptsImpl) Execute(ctx context.Context, project, environment string) (int64, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	scope, err := ce.resolver.Resolve(spanCtx, project, environment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	span.SetAttributes(attribute.String("scope_id", scope.ID.String()))

	unlock := ce.locker.Lock(scope.ID)
	defer unlock()

	deleted, err := ce.prompts.DeleteEnvironmentPrompts(spanCtx, scope.ID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return deleted, nil
}

// InitClearEnvironmentPrompts initializes the ClearEnvironmentPrompts use case and registers it in the dependency container.
type InitClearEnvironmentPrompts struct {
	Resolver ScopeResolver           `resolve:""`
	Prompts  domain.PromptRepository `resolve:""`
	Locker   *ScopeLocker            `resolve:""`
}

// Initialize registers the ClearEnvironmentPrompts use case in the dependency container.
func (ice InitClearEnvironmentPrompts) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ClearEnvironmentPrompts](NewClearEnvironmentPromptsImpl(ice.Resolver, ice.Prompts, ice.Locker))
	return ctx, nil
}
