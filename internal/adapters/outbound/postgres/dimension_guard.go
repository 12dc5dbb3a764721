package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// pgvector accepts at most this many dimensions for the vector type.
	maxVectorWidth = 16000

	sqlStateUndefinedTable  = "42P01"
	sqlStateDuplicateTable  = "42P07"
	sqlStateUniqueViolation = "23505"
	sqlStateDataException   = "22000"
)

// isUndefinedTable reports whether err signals that the prompts table was never provisioned.
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUndefinedTable
}

// isConcurrentCreate reports whether err is the loser's side of two concurrent
// CREATE TABLE IF NOT EXISTS statements racing on the catalog.
func isConcurrentCreate(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == sqlStateDuplicateTable ||
		(pgErr.Code == sqlStateUniqueViolation && strings.Contains(pgErr.ConstraintName, "pg_type"))
}

// isDimensionMismatch reports whether err is pgvector rejecting a vector of the wrong width,
// either on insert ("expected N dimensions, not M") or on a distance operator
// ("different vector dimensions N and M").
func isDimensionMismatch(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == sqlStateDataException &&
		strings.Contains(pgErr.Message, "dimensions")
}

func validateWidth(width int) error {
	if width <= 0 || width > maxVectorWidth {
		return domain.NewValidationErr("vector width must be between 1 and 16000")
	}
	return nil
}

// guardDimensions translates a pgvector width rejection into a *domain.DimensionMismatchErr
// carrying the provisioned width. Other errors are returned unchanged.
func (pr PromptRepository) guardDimensions(ctx context.Context, err error, actual int) error {
	if !isDimensionMismatch(err) {
		return err
	}
	expected, ok, widthErr := pr.Width(ctx)
	if widthErr != nil || !ok {
		expected = 0
	}
	return domain.NewDimensionMismatchErr(expected, actual)
}
