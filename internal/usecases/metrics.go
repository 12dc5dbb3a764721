package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("usecases")
	LLMTokensUsed    metric.Int64Counter
	PromptChecks     metric.Int64Counter
	SimilarityHits   metric.Int64Histogram
	checkOutcomeAttr = attribute.Key("outcome")
)

const (
	checkOutcomeSaved = "auto_saved"
	checkOutcomeHeld  = "held_for_review"
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	PromptChecks, err = meter.Int64Counter(
		"prompt_checks_total",
		metric.WithDescription("Prompt checks by outcome"),
	)
	if err != nil {
		panic(err)
	}

	SimilarityHits, err = meter.Int64Histogram(
		"prompt_similarity_matches",
		metric.WithDescription("Number of similar prompts found per check"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 4, 5),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensAnalysis records the number of tokens used in a requirement analysis.
func RecordLLMTokensAnalysis(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "analysis"),
	))
}

// RecordLLMTokensEmbedding records the number of tokens used in an embedding operation.
func RecordLLMTokensEmbedding(ctx context.Context, totalTokens int) {
	LLMTokensUsed.Add(ctx, int64(totalTokens), metric.WithAttributes(
		attribute.String("token_type", "embedding"),
	))
}

// RecordPromptCheck records the outcome of a prompt check and the number of matches found.
func RecordPromptCheck(ctx context.Context, saved bool, matches int) {
	outcome := checkOutcomeHeld
	if saved {
		outcome = checkOutcomeSaved
	}
	PromptChecks.Add(ctx, 1, metric.WithAttributes(checkOutcomeAttr.String(outcome)))
	SimilarityHits.Record(ctx, int64(matches))
}
