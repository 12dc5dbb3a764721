package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// InvalidReferenceErr represents an attempt to create an entity under a parent that does not exist.
type InvalidReferenceErr struct {
	domainErr
}

// NewInvalidReferenceErr creates a new InvalidReferenceErr with the given message.
func NewInvalidReferenceErr(message string) *InvalidReferenceErr {
	return &InvalidReferenceErr{
		domainErr: domainErr{message: message},
	}
}

// DimensionMismatchErr is returned when an embedding width disagrees with the width
// the prompt store was provisioned with. Expected is 0 when the store width could not be read.
type DimensionMismatchErr struct {
	Expected int
	Actual   int
}

// NewDimensionMismatchErr creates a new DimensionMismatchErr.
func NewDimensionMismatchErr(expected, actual int) *DimensionMismatchErr {
	return &DimensionMismatchErr{Expected: expected, Actual: actual}
}

// Error returns the error message including the remediation hint.
func (e DimensionMismatchErr) Error() string {
	if e.Expected <= 0 {
		return fmt.Sprintf("embedding dimension mismatch: got %d dimensions; reset the prompt database to use the current embedding model", e.Actual)
	}
	return fmt.Sprintf("embedding dimension mismatch: expected %d dimensions, got %d; reset the prompt database to use the current embedding model", e.Expected, e.Actual)
}

// EmbeddingUnavailableErr wraps a failure of the embedding provider.
type EmbeddingUnavailableErr struct {
	cause error
}

// NewEmbeddingUnavailableErr creates a new EmbeddingUnavailableErr wrapping cause.
func NewEmbeddingUnavailableErr(cause error) *EmbeddingUnavailableErr {
	return &EmbeddingUnavailableErr{cause: cause}
}

func (e EmbeddingUnavailableErr) Error() string {
	return fmt.Sprintf("embedding unavailable: %v", e.cause)
}

func (e EmbeddingUnavailableErr) Unwrap() error {
	return e.cause
}

// AnalysisUnavailableErr wraps a failure of the requirement analysis provider.
type AnalysisUnavailableErr struct {
	cause error
}

// NewAnalysisUnavailableErr creates a new AnalysisUnavailableErr wrapping cause.
func NewAnalysisUnavailableErr(cause error) *AnalysisUnavailableErr {
	return &AnalysisUnavailableErr{cause: cause}
}

func (e AnalysisUnavailableErr) Error() string {
	return fmt.Sprintf("requirement analysis unavailable: %v", e.cause)
}

func (e AnalysisUnavailableErr) Unwrap() error {
	return e.cause
}
