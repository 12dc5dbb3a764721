package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	projectFields = []string{
		"id",
		"name",
		"requirements",
		"focus",
		"created_at",
	}
)

// ProjectRepository implements the domain.ProjectRepository interface using PostgreSQL as the storage backend.
type ProjectRepository struct {
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new instance of ProjectRepository.
func NewProjectRepository(br squirrel.BaseRunner) ProjectRepository {
	return ProjectRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// UpsertProject inserts a project or overwrites requirements and focus of the project with the same name.
func (pr ProjectRepository) UpsertProject(ctx context.Context, project domain.Project) (uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", project.Name),
	))
	defer span.End()

	var id uuid.UUID
	err := pr.sb.
		Insert("projects").
		Columns(projectFields...).
		Values(
			project.ID,
			project.Name,
			project.Requirements,
			project.Focus,
			project.CreatedAt,
		).
		Suffix("ON CONFLICT (name) DO UPDATE SET requirements = EXCLUDED.requirements, focus = EXCLUDED.focus RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&id)

	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateProject applies a partial update to the project with the given name.
func (pr ProjectRepository) UpdateProject(ctx context.Context, name string, update domain.ProjectUpdate) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("project", name),
	))
	defer span.End()

	if update.Requirements == nil && update.Focus == nil {
		_, found, err := pr.GetProject(spanCtx, name)
		telemetry.RecordErrorAndStatus(span, err)
		return found, err
	}

	qry := pr.sb.Update("projects")
	if update.Requirements != nil {
		qry = qry.Set("requirements", *update.Requirements)
	}
	if update.Focus != nil {
		// blank clears the focus, matching what an upsert stores
		var focus any
		if *update.Focus != "" {
			focus = *update.Focus
		}
		qry = qry.Set("focus", focus)
	}

	res, err := qry.
		Where(squirrel.Eq{"name": name}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// GetProject retrieves a project by its name.
func (pr ProjectRepository) GetProject(ctx context.Context, name string) (domain.Project, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var project domain.Project
	err := pr.sb.
		Select(projectFields...).
		From("projects").
		Where(squirrel.Eq{"name": name}).
		QueryRowContext(spanCtx).
		Scan(
			&project.ID,
			&project.Name,
			&project.Requirements,
			&project.Focus,
			&project.CreatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Project{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Project{}, false, err
	}

	return project, true, nil
}

// ListProjects lists all projects ordered by name.
func (pr ProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := pr.sb.
		Select(projectFields...).
		From("projects").
		OrderBy("name").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Requirements,
			&project.Focus,
			&project.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return projects, nil
}

// DeleteProject deletes a project by name. Environments and prompts go with it through ON DELETE CASCADE.
func (pr ProjectRepository) DeleteProject(ctx context.Context, name string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := pr.sb.
		Delete("projects").
		Where(squirrel.Eq{"name": name}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// InitProjectRepository is a Symbiont initializer for ProjectRepository.
type InitProjectRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ProjectRepository in the dependency container.
func (ipr InitProjectRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ProjectRepository](NewProjectRepository(ipr.DB))
	return ctx, nil
}
