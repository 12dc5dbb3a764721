package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// SavePrompt defines the interface for the SavePrompt use case.
type SavePrompt interface {
	// Execute stores the prompt under its scope without searching for similar prompts.
	Execute(ctx context.Context, project, environment, text, model string) (uuid.UUID, error)
}

// SavePromptImpl is the implementation of the SavePrompt use case.
type SavePromptImpl struct {
	resolver       ScopeResolver
	prompts        domain.PromptRepository
	encoder        domain.SemanticEncoder
	timeProvider   domain.CurrentTimeProvider
	requestTimeout time.Duration
	createUUID     func() uuid.UUID
}

// NewSavePromptImpl creates a new instance of SavePromptImpl.
func NewSavePromptImpl(
	resolver ScopeResolver,
	prompts domain.PromptRepository,
	encoder domain.SemanticEncoder,
	timeProvider domain.CurrentTimeProvider,
	requestTimeout time.Duration,
) SavePromptImpl {
	return SavePromptImpl{
		resolver:       resolver,
		prompts:        prompts,
		encoder:        encoder,
		timeProvider:   timeProvider,
		requestTimeout: requestTimeout,
		createUUID:     uuid.New,
	}
}

// Execute embeds and persists the prompt. Reviewers use it to accept a prompt that a check held back.
func (sp SavePromptImpl) Execute(ctx context.Context, project, environment, text, model string) (uuid.UUID, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(text) == "" {
		err := domain.NewValidationErr("prompt text cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return uuid.Nil, err
	}

	scope, err := sp.resolver.Resolve(spanCtx, project, environment)
	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	span.SetAttributes(attribute.String("scope_id", scope.ID.String()))

	embedding, err := embedWithTimeout(spanCtx, sp.encoder, sp.requestTimeout, model, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	RecordLLMTokensEmbedding(spanCtx, embedding.TotalTokens)

	record := domain.PromptRecord{
		ID:        sp.createUUID(),
		ScopeID:   scope.ID,
		Text:      text,
		Embedding: embedding.Vector,
		CreatedAt: sp.timeProvider.Now(),
	}
	if err := record.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}

	id, err := sp.prompts.SavePrompt(spanCtx, record)
	if telemetry.RecordErrorAndStatus(span, err) {
		return uuid.Nil, err
	}
	return id, nil
}

// InitSavePrompt initializes the SavePrompt use case and registers it in the dependency container.
type InitSavePrompt struct {
	Resolver       ScopeResolver              `resolve:""`
	Prompts        domain.PromptRepository    `resolve:""`
	Encoder        domain.SemanticEncoder     `resolve:""`
	TimeProvider   domain.CurrentTimeProvider `resolve:""`
	RequestTimeout time.Duration              `config:"LLM_REQUEST_TIMEOUT" default:"60s"`
}

// Initialize registers the SavePrompt use case in the dependency container.
func (isp InitSavePrompt) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SavePrompt](NewSavePromptImpl(
		isp.Resolver,
		isp.Prompts,
		isp.Encoder,
		isp.TimeProvider,
		isp.RequestTimeout,
	))
	return ctx, nil
}
