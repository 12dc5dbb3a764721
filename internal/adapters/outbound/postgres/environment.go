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
	environmentFields = []string{
		"e.id",
		"e.project_id",
		"p.name",
		"e.name",
		"e.created_at",
	}
)

// EnvironmentRepository implements the domain.EnvironmentRepository interface using PostgreSQL as the storage backend.
type EnvironmentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewEnvironmentRepository creates a new instance of EnvironmentRepository.
func NewEnvironmentRepository(br squirrel.BaseRunner) EnvironmentRepository {
	return EnvironmentRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateEnvironment inserts the environment, returning the id of the existing row
// when (project_id, name) is already taken.
func (er EnvironmentRepository) CreateEnvironment(ctx context.Context, env domain.Environment) (uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("environment", env.Name),
	))
	defer span.End()

	var id uuid.UUID
	err := er.sb.
		Insert("environments").
		Columns(
			"id",
			"project_id",
			"name",
			"created_at",
		).
		Values(
			env.ID,
			env.ProjectID,
			env.Name,
			env.CreatedAt,
		).
		Suffix("ON CONFLICT (project_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&id)

	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	return id, nil
}

// GetEnvironment retrieves an environment by project and environment names.
func (er EnvironmentRepository) GetEnvironment(ctx context.Context, projectName, name string) (domain.Environment, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var env domain.Environment
	err := er.sb.
		Select(environmentFields...).
		From("environments e").
		Join("projects p ON p.id = e.project_id").
		Where(squirrel.Eq{"p.name": projectName}).
		Where(squirrel.Eq{"e.name": name}).
		QueryRowContext(spanCtx).
		Scan(
			&env.ID,
			&env.ProjectID,
			&env.ProjectName,
			&env.Name,
			&env.CreatedAt,
		)

	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Environment{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Environment{}, false, err
	}
	return env, true, nil
}

// ListEnvironments lists the environments of a project ordered by name.
func (er EnvironmentRepository) ListEnvironments(ctx context.Context, projectID uuid.UUID) ([]domain.Environment, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := er.sb.
		Select(environmentFields...).
		From("environments e").
		Join("projects p ON p.id = e.project_id").
		Where(squirrel.Eq{"e.project_id": projectID}).
		OrderBy("e.name").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	envs := []domain.Environment{}
	for rows.Next() {
		var env domain.Environment
		err := rows.Scan(
			&env.ID,
			&env.ProjectID,
			&env.ProjectName,
			&env.Name,
			&env.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		envs = append(envs, env)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return envs, nil
}

// DeleteEnvironment deletes an environment. Its prompts go with it through ON DELETE CASCADE.
func (er EnvironmentRepository) DeleteEnvironment(ctx context.Context, projectName, name string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := er.sb.
		Delete("environments").
		Where(squirrel.Expr("project_id = (SELECT id FROM projects WHERE name = ?)", projectName)).
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

// InitEnvironmentRepository is a Symbiont initializer for EnvironmentRepository.
type InitEnvironmentRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the EnvironmentRepository in the dependency container.
func (ier InitEnvironmentRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.EnvironmentRepository](NewEnvironmentRepository(ier.DB))
	return ctx, nil
}
