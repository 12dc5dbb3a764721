package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultSimilarityThreshold is the cosine similarity a stored prompt must exceed to be reported.
	DefaultSimilarityThreshold = 0.85
	// DefaultMatchLimit is the maximum number of matches returned by a similarity search.
	DefaultMatchLimit = 5
)

// PromptRecord is a prompt stored under a scope together with its embedding.
type PromptRecord struct {
	ID        uuid.UUID
	ScopeID   uuid.UUID
	Text      string
	Embedding []float64
	CreatedAt time.Time
}

// Validate checks the record before it is persisted.
func (r PromptRecord) Validate() error {
	if r.Text == "" {
		return NewValidationErr("prompt text cannot be empty")
	}
	if len(r.Embedding) == 0 {
		return NewValidationErr("prompt embedding cannot be empty")
	}
	return nil
}

// SimilarityMatch is a stored prompt found by a similarity search. It is never persisted.
type SimilarityMatch struct {
	ID         uuid.UUID
	Text       string
	Similarity float64
	CreatedAt  time.Time
}

// SimilarityQuery describes a ranked nearest-neighbor search within one scope.
type SimilarityQuery struct {
	ScopeID   uuid.UUID
	Embedding []float64
	Threshold float64
	Limit     int
}

// PromptRepository is the scope-partitioned vector store for prompt records.
type PromptRepository interface {
	// EnsureReady guarantees a schema able to store vectors of exactly width dimensions exists.
	// It never destroys compatible data and is safe to call concurrently.
	EnsureReady(ctx context.Context, width int) error
	// Width returns the vector width the store was provisioned with, or false when it was not.
	Width(ctx context.Context) (int, bool, error)
	// SavePrompt inserts a new record. It returns a *DimensionMismatchErr when the embedding
	// width differs from the store width.
	SavePrompt(ctx context.Context, record PromptRecord) (uuid.UUID, error)
	// FindSimilar returns the stored prompts of the scope whose cosine similarity to the query
	// embedding is strictly greater than the threshold, most similar first.
	FindSimilar(ctx context.Context, query SimilarityQuery) ([]SimilarityMatch, error)
	// DeleteEnvironmentPrompts removes every prompt stored under the scope.
	DeleteEnvironmentPrompts(ctx context.Context, scopeID uuid.UUID) (int64, error)
	// Reset drops every stored prompt and reprovisions the store at width.
	Reset(ctx context.Context, width int) error
}

// Scope is a resolved (project, environment) pair prompts are deduplicated under.
type Scope struct {
	ID           uuid.UUID
	ProjectName  string
	Environment  string
	Requirements string
	Focus        *string
}

// HasRequirements reports whether requirement analysis should run for this scope.
func (s Scope) HasRequirements() bool {
	return Project{Requirements: s.Requirements}.HasRequirements()
}

// CheckResult is the outcome of checking a prompt against its scope.
type CheckResult struct {
	ScopeID uuid.UUID
	// Analysis is the requirement conformance narrative, nil when no analysis ran.
	Analysis *string
	// AnalysisError describes why the analysis could not be produced, if it failed.
	AnalysisError string
	Matches       []SimilarityMatch
	WasSaved      bool
	SavedID       *uuid.UUID
}
