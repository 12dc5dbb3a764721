package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// UpsertProject defines the interface for the UpsertProject use case.
type UpsertProject interface {
	// Execute creates the project or replaces the requirements and focus of an existing one.
	Execute(ctx context.Context, name, requirements string, focus *string) (domain.Project, error)
}

// UpsertProjectImpl is the implementation of the UpsertProject use case.
type UpsertProjectImpl struct {
	projects     domain.ProjectRepository
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewUpsertProjectImpl creates a new instance of UpsertProjectImpl.
func NewUpsertProjectImpl(projects domain.ProjectRepository, timeProvider domain.CurrentTimeProvider) UpsertProjectImpl {
	return UpsertProjectImpl{
		projects:     projects,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute upserts the project by its normalized name. Last write wins.
func (up UpsertProjectImpl) Execute(ctx context.Context, name, requirements string, focus *string) (domain.Project, error) {
	name = domain.NormalizeName(name)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", name),
	))
	defer span.End()

	project := domain.Project{
		ID:           up.createUUID(),
		Name:         name,
		Requirements: strings.TrimSpace(requirements),
		Focus:        normalizeFocus(focus),
		CreatedAt:    up.timeProvider.Now(),
	}
	if err := project.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}

	id, err := up.projects.UpsertProject(spanCtx, project)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, err
	}
	project.ID = id

	return project, nil
}

// normalizeFocus trims the focus and turns a blank one into nil.
func normalizeFocus(focus *string) *string {
	if focus == nil {
		return nil
	}
	f := strings.TrimSpace(*focus)
	if f == "" {
		return nil
	}
	return &f
}

// InitUpsertProject initializes the UpsertProject use case and registers it in the dependency container.
type InitUpsertProject struct {
	Projects     domain.ProjectRepository   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the UpsertProject use case in the dependency container.
func (iup InitUpsertProject) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpsertProject](NewUpsertProjectImpl(iup.Projects, iup.TimeProvider))
	return ctx, nil
}
