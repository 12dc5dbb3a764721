package usecases

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

var (
	errEmptyEmbedding      = errors.New("encoder returned an empty vector")
	errDegenerateEmbedding = errors.New("encoder returned a vector with zero or non-finite magnitude")
)

// CheckPromptParams holds the input of a prompt check.
type CheckPromptParams struct {
	Project     string
	Environment string
	Text        string
	// Model overrides the embedding model.
	Model string
	// AnalysisModel overrides the chat model used for requirement analysis.
	AnalysisModel string
	// Threshold defaults to domain.DefaultSimilarityThreshold when nil.
	Threshold *float64
	// Limit defaults to domain.DefaultMatchLimit when zero.
	Limit int
}

// CheckPrompt defines the interface for the CheckPrompt use case.
type CheckPrompt interface {
	// Execute analyzes the prompt against its project requirements, searches the scope for
	// similar prompts and stores the prompt only when nothing similar was found.
	Execute(ctx context.Context, params CheckPromptParams) (domain.CheckResult, error)
}

// CheckPromptImpl is the implementation of the CheckPrompt use case.
type CheckPromptImpl struct {
	resolver       ScopeResolver
	prompts        domain.PromptRepository
	encoder        domain.SemanticEncoder
	analyzer       domain.RequirementAnalyzer
	timeProvider   domain.CurrentTimeProvider
	locker         *ScopeLocker
	logger         *log.Logger
	requestTimeout time.Duration
	createUUID     func() uuid.UUID
}

// NewCheckPromptImpl creates a new instance of CheckPromptImpl.
func NewCheckPromptImpl(
	resolver ScopeResolver,
	prompts domain.PromptRepository,
	encoder domain.SemanticEncoder,
	analyzer domain.RequirementAnalyzer,
	timeProvider domain.CurrentTimeProvider,
	locker *ScopeLocker,
	logger *log.Logger,
	requestTimeout time.Duration,
) CheckPromptImpl {
	return CheckPromptImpl{
		resolver:       resolver,
		prompts:        prompts,
		encoder:        encoder,
		analyzer:       analyzer,
		timeProvider:   timeProvider,
		locker:         locker,
		logger:         logger,
		requestTimeout: requestTimeout,
		createUUID:     uuid.New,
	}
}

// Execute runs a single pass of analysis, embedding, search and conditional save.
func (cp CheckPromptImpl) Execute(ctx context.Context, params CheckPromptParams) (domain.CheckResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	threshold, limit, err := checkPromptSearchParams(params)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CheckResult{}, err
	}
	if strings.TrimSpace(params.Text) == "" {
		err := domain.NewValidationErr("prompt text cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.CheckResult{}, err
	}

	scope, err := cp.resolver.Resolve(spanCtx, params.Project, params.Environment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CheckResult{}, err
	}
	span.SetAttributes(
		attribute.String("scope_id", scope.ID.String()),
		attribute.Float64("threshold", threshold),
		attribute.Int("limit", limit),
	)

	result := domain.CheckResult{
		ScopeID: scope.ID,
		Matches: []domain.SimilarityMatch{},
	}

	var embedding domain.EmbeddingVector
	g, gCtx := errgroup.WithContext(spanCtx)
	g.Go(func() error {
		vec, err := embedWithTimeout(gCtx, cp.encoder, cp.requestTimeout, params.Model, params.Text)
		if err != nil {
			return err
		}
		embedding = vec
		return nil
	})
	if scope.HasRequirements() {
		// Analysis failures are reported on the result and never abort the check,
		// so this goroutine always returns nil.
		g.Go(func() error {
			analysis, err := cp.analyze(gCtx, scope, params)
			if err != nil {
				cp.logger.Printf("CheckPrompt: requirement analysis failed for scope %s: %v", scope.ID, err)
				telemetry.RecordErrorAndStatus(span, err)
				result.AnalysisError = err.Error()
				return nil
			}
			result.Analysis = analysis
			return nil
		})
	}
	if err := g.Wait(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.CheckResult{}, err
	}
	RecordLLMTokensEmbedding(spanCtx, embedding.TotalTokens)

	unlock := cp.locker.Lock(scope.ID)
	defer unlock()

	matches, err := cp.prompts.FindSimilar(spanCtx, domain.SimilarityQuery{
		ScopeID:   scope.ID,
		Embedding: embedding.Vector,
		Threshold: threshold,
		Limit:     limit,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CheckResult{}, err
	}

	if len(matches) > 0 {
		result.Matches = matches
		RecordPromptCheck(spanCtx, false, len(matches))
		span.SetAttributes(attribute.Int("matches", len(matches)))
		return result, nil
	}

	record := domain.PromptRecord{
		ID:        cp.createUUID(),
		ScopeID:   scope.ID,
		Text:      params.Text,
		Embedding: embedding.Vector,
		CreatedAt: cp.timeProvider.Now(),
	}
	if err := record.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.CheckResult{}, err
	}
	id, err := cp.prompts.SavePrompt(spanCtx, record)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CheckResult{}, err
	}

	result.WasSaved = true
	result.SavedID = &id
	RecordPromptCheck(spanCtx, true, 0)
	return result, nil
}

func (cp CheckPromptImpl) analyze(ctx context.Context, scope domain.Scope, params CheckPromptParams) (*string, error) {
	callCtx, cancel := withRequestTimeout(ctx, cp.requestTimeout)
	defer cancel()

	res, err := cp.analyzer.Analyze(callCtx, domain.AnalysisRequest{
		Model:        params.AnalysisModel,
		Prompt:       params.Text,
		Requirements: scope.Requirements,
		Focus:        scope.Focus,
	})
	if err != nil {
		return nil, domain.NewAnalysisUnavailableErr(err)
	}
	if res == nil {
		return nil, nil
	}
	RecordLLMTokensAnalysis(ctx, res.TotalTokens)
	return &res.Narrative, nil
}

// embedWithTimeout embeds text with a bounded deadline, wrapping any failure as
// a *domain.EmbeddingUnavailableErr.
func embedWithTimeout(ctx context.Context, encoder domain.SemanticEncoder, timeout time.Duration, model, text string) (domain.EmbeddingVector, error) {
	callCtx, cancel := withRequestTimeout(ctx, timeout)
	defer cancel()

	vec, err := encoder.Embed(callCtx, model, text)
	if err != nil {
		return domain.EmbeddingVector{}, domain.NewEmbeddingUnavailableErr(err)
	}
	if len(vec.Vector) == 0 {
		return domain.EmbeddingVector{}, domain.NewEmbeddingUnavailableErr(errEmptyEmbedding)
	}
	// cosine distance against a zero vector is NaN, and NaN > threshold holds in Postgres
	if !hasFiniteMagnitude(vec.Vector) {
		return domain.EmbeddingVector{}, domain.NewEmbeddingUnavailableErr(errDegenerateEmbedding)
	}
	return vec, nil
}

func hasFiniteMagnitude(v []float64) bool {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return sum > 0 && !math.IsInf(sum, 0)
}

func withRequestTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func checkPromptSearchParams(params CheckPromptParams) (float64, int, error) {
	threshold := domain.DefaultSimilarityThreshold
	if params.Threshold != nil {
		threshold = *params.Threshold
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return 0, 0, domain.NewValidationErr("threshold must be a finite number")
	}

	limit := params.Limit
	if limit < 0 {
		return 0, 0, domain.NewValidationErr("limit cannot be negative")
	}
	if limit == 0 {
		limit = domain.DefaultMatchLimit
	}
	return threshold, limit, nil
}

// InitCheckPrompt initializes the CheckPrompt use case and registers it in the dependency container.
type InitCheckPrompt struct {
	Resolver       ScopeResolver              `resolve:""`
	Prompts        domain.PromptRepository    `resolve:""`
	Encoder        domain.SemanticEncoder     `resolve:""`
	Analyzer       domain.RequirementAnalyzer `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	Locker         *ScopeLocker               `resolve:""`
	Logger         *log.Logger                `resolve:""`
	RequestTimeout time.Duration              `config:"LLM_REQUEST_TIMEOUT" default:"60s"`
}

// Initialize registers the CheckPrompt use case in the dependency container.
func (icp InitCheckPrompt) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CheckPrompt](NewCheckPromptImpl(
		icp.Resolver,
		icp.Prompts,
		icp.Encoder,
		icp.Analyzer,
		icp.TimeProvider,
		icp.Locker,
		icp.Logger,
		icp.RequestTimeout,
	))
	return ctx, nil
}
