package usecases

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// probeText is embedded to learn the width of the current embedding model.
const probeText = "dimension probe"

// ResetCorpus defines the interface for the ResetCorpus use case.
type ResetCorpus interface {
	// Execute drops every stored prompt of every scope and reprovisions the store at width.
	Execute(ctx context.Context, width int) error
	// ExecuteProbe embeds a probe text with model and resets the store at the resulting width.
	// It returns the new width.
	ExecuteProbe(ctx context.Context, model, text string) (int, error)
}

// ResetCorpusImpl is the implementation of the ResetCorpus use case.
type ResetCorpusImpl struct {
	prompts        domain.PromptRepository
	encoder        domain.SemanticEncoder
	logger         *log.Logger
	requestTimeout time.Duration
}

// NewResetCorpusImpl creates a new instance of ResetCorpusImpl.
func NewResetCorpusImpl(
	prompts domain.PromptRepository,
	encoder domain.SemanticEncoder,
	logger *log.Logger,
	requestTimeout time.Duration,
) ResetCorpusImpl {
	return ResetCorpusImpl{
		prompts:        prompts,
		encoder:        encoder,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}

// Execute resets the prompt store. This is destructive and the only way to change the store width.
func (rc ResetCorpusImpl) Execute(ctx context.Context, width int) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("width", width),
	))
	defer span.End()

	if width <= 0 {
		err := domain.NewValidationErr("width must be greater than zero")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	if err := rc.prompts.Reset(spanCtx, width); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	rc.logger.Printf("ResetCorpus: prompt store reset to %d dimensions", width)
	return nil
}

// ExecuteProbe resets the prompt store at the width of the given (or auto-selected) embedding model.
func (rc ResetCorpusImpl) ExecuteProbe(ctx context.Context, model, text string) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		text = probeText
	}

	embedding, err := embedWithTimeout(spanCtx, rc.encoder, rc.requestTimeout, model, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	RecordLLMTokensEmbedding(spanCtx, embedding.TotalTokens)

	width := len(embedding.Vector)
	span.SetAttributes(attribute.Int("width", width), attribute.String("model", embedding.Model))

	if err := rc.Execute(spanCtx, width); telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}
	return width, nil
}

// InitResetCorpus initializes the ResetCorpus use case and registers it in the dependency container.
type InitResetCorpus struct {
	Prompts        domain.PromptRepository `resolve:""`
	Encoder        domain.SemanticEncoder  `resolve:""`
	Logger         *log.Logger             `resolve:""`
	RequestTimeout time.Duration           `config:"LLM_REQUEST_TIMEOUT" default:"60s"`
}

// Initialize registers the ResetCorpus use case in the dependency container.
func (irc InitResetCorpus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ResetCorpus](NewResetCorpusImpl(irc.Prompts, irc.Encoder, irc.Logger, irc.RequestTimeout))
	return ctx, nil
}
