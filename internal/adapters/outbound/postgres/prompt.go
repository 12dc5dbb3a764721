package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	createPromptsTableSQL = `CREATE TABLE IF NOT EXISTS prompts (
	id UUID PRIMARY KEY,
	environment_id UUID NOT NULL REFERENCES environments(id) ON DELETE CASCADE,
	prompt_text TEXT NOT NULL,
	embedding vector(%d) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	createPromptsIndexSQL = "CREATE INDEX IF NOT EXISTS idx_prompts_environment_id ON prompts (environment_id)"
	dropPromptsTableSQL   = "DROP TABLE IF EXISTS prompts"
	promptsWidthSQL       = "SELECT atttypmod FROM pg_attribute WHERE attrelid = to_regclass('prompts') AND attname = 'embedding'"
)

// PromptRepository implements domain.PromptRepository on a pgvector column.
// The vector width of the column is fixed when the table is first provisioned.
type PromptRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewPromptRepository creates a new instance of PromptRepository.
func NewPromptRepository(db *sql.DB) PromptRepository {
	return PromptRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(db),
	}
}

// EnsureReady provisions the prompts table at width if it does not exist yet. An existing table
// of a different width is left untouched and reported as a *domain.DimensionMismatchErr.
func (pr PromptRepository) EnsureReady(ctx context.Context, width int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("width", width),
	))
	defer span.End()

	if err := validateWidth(width); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if err := createPromptsSchema(spanCtx, pr.db, width); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	current, ok, err := pr.Width(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	if ok && current != width {
		err := domain.NewDimensionMismatchErr(current, width)
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	return nil
}

// Width returns the provisioned vector width of the prompts table.
func (pr PromptRepository) Width(ctx context.Context) (int, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var width int
	err := pr.db.QueryRowContext(spanCtx, promptsWidthSQL).Scan(&width)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return 0, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, false, err
	}
	return width, true, nil
}

// SavePrompt inserts a prompt record. When the prompts table does not exist yet it is
// provisioned at the width of the record's embedding and the insert is retried once.
func (pr PromptRepository) SavePrompt(ctx context.Context, record domain.PromptRecord) (uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("scope_id", record.ScopeID.String()),
		attribute.Int("width", len(record.Embedding)),
	))
	defer span.End()

	err := pr.insertPrompt(spanCtx, record)
	if isUndefinedTable(err) {
		if err := pr.EnsureReady(spanCtx, len(record.Embedding)); telemetry.RecordErrorAndStatus(span, err) {
			return uuid.Nil, err
		}
		err = pr.insertPrompt(spanCtx, record)
	}
	if err != nil {
		err = pr.guardDimensions(spanCtx, err, len(record.Embedding))
		telemetry.RecordErrorAndStatus(span, err)
		return uuid.Nil, err
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return record.ID, nil
}

func (pr PromptRepository) insertPrompt(ctx context.Context, record domain.PromptRecord) error {
	_, err := pr.sb.
		Insert("prompts").
		Columns(
			"id",
			"environment_id",
			"prompt_text",
			"embedding",
			"created_at",
		).
		Values(
			record.ID,
			record.ScopeID,
			record.Text,
			pgvector.NewVector(toFloat32(record.Embedding)),
			record.CreatedAt,
		).
		ExecContext(ctx)
	return err
}

// FindSimilar ranks the prompts of a scope by cosine similarity (1 - cosine distance) to the
// query embedding, keeping only those strictly above the threshold. A store that was never
// provisioned is provisioned at the query width and yields no matches.
func (pr PromptRepository) FindSimilar(ctx context.Context, query domain.SimilarityQuery) ([]domain.SimilarityMatch, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("scope_id", query.ScopeID.String()),
		attribute.Float64("threshold", query.Threshold),
		attribute.Int("limit", query.Limit),
	))
	defer span.End()

	limit := query.Limit
	if limit <= 0 {
		limit = domain.DefaultMatchLimit
	}
	vec := pgvector.NewVector(toFloat32(query.Embedding))

	rows, err := pr.sb.
		Select(
			"id",
			"prompt_text",
			"created_at",
		).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS similarity", vec)).
		From("prompts").
		Where(squirrel.Eq{"environment_id": query.ScopeID}).
		Where(squirrel.Expr("1 - (embedding <=> ?) > ?", vec, query.Threshold)).
		OrderBy("similarity DESC", "created_at ASC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if isUndefinedTable(err) {
		if err := pr.EnsureReady(spanCtx, len(query.Embedding)); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		return []domain.SimilarityMatch{}, nil
	}
	if err != nil {
		err = pr.guardDimensions(spanCtx, err, len(query.Embedding))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	matches := []domain.SimilarityMatch{}
	for rows.Next() {
		var m domain.SimilarityMatch
		err := rows.Scan(
			&m.ID,
			&m.Text,
			&m.CreatedAt,
			&m.Similarity,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		err = pr.guardDimensions(spanCtx, err, len(query.Embedding))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	telemetry.RecordErrorAndStatus(span, nil)
	return matches, nil
}

// DeleteEnvironmentPrompts removes every prompt of a scope.
func (pr PromptRepository) DeleteEnvironmentPrompts(ctx context.Context, scopeID uuid.UUID) (int64, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("scope_id", scopeID.String()),
	))
	defer span.End()

	res, err := pr.sb.
		Delete("prompts").
		Where(squirrel.Eq{"environment_id": scopeID}).
		ExecContext(spanCtx)
	if isUndefinedTable(err) {
		telemetry.RecordErrorAndStatus(span, nil)
		return 0, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return affected, nil
}

// Reset drops every stored prompt and recreates the prompts table at width in one transaction.
func (pr PromptRepository) Reset(ctx context.Context, width int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("width", width),
	))
	defer span.End()

	if err := validateWidth(width); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	tx, err := pr.db.BeginTx(spanCtx, nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	err = func() error {
		if _, err := tx.ExecContext(spanCtx, dropPromptsTableSQL); err != nil {
			return err
		}
		return createPromptsSchema(spanCtx, tx, width)
	}()
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = fmt.Errorf("transaction rollback error: %v, original error: %w", rbErr, err)
		}
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	err = tx.Commit()
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

type execerContext interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func createPromptsSchema(ctx context.Context, db execerContext, width int) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf(createPromptsTableSQL, width)); err != nil && !isConcurrentCreate(err) {
		return fmt.Errorf("create prompts table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createPromptsIndexSQL); err != nil && !isConcurrentCreate(err) {
		return fmt.Errorf("create prompts index: %w", err)
	}
	return nil
}

// InitPromptRepository is a Symbiont initializer for PromptRepository.
type InitPromptRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the PromptRepository in the dependency container.
func (ipr InitPromptRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PromptRepository](NewPromptRepository(ipr.DB))
	return ctx, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}
