package domain

import "context"

// AnalysisRequest asks whether a prompt conforms to a project's requirements.
type AnalysisRequest struct {
	Model        string
	Prompt       string
	Requirements string
	Focus        *string
}

// AnalysisResult is a conformance narrative plus token accounting.
type AnalysisResult struct {
	Narrative   string
	TotalTokens int
}

// RequirementAnalyzer produces a conformance narrative for a prompt.
type RequirementAnalyzer interface {
	// Analyze returns nil when the request carries no requirements.
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}
