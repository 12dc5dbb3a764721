package modelrunner

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/analysis.yml
var analysisPrompt embed.FS

var errNoChoices = errors.New("no choices in response")

// analysisInput is the payload handed to the model, encoded as TOON.
type analysisInput struct {
	Requirements string `toon:"requirements"`
	Focus        string `toon:"focus"`
	Prompt       string `toon:"prompt"`
}

// Analyzer adapts DRMAPIClient to domain.RequirementAnalyzer using a chat model.
type Analyzer struct {
	client   DRMAPIClient
	selector modelSelector
}

// NewAnalyzer creates a new Analyzer. When defaultModel is empty the first chat
// model of the catalog is used.
func NewAnalyzer(client DRMAPIClient, catalog domain.ModelCatalog, defaultModel string) Analyzer {
	return Analyzer{
		client: client,
		selector: modelSelector{
			catalog:      catalog,
			defaultModel: defaultModel,
			kind:         domain.ModelKindChat,
		},
	}
}

// Analyze implements domain.RequirementAnalyzer.
func (a Analyzer) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(req.Requirements) == "" {
		return nil, nil
	}

	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	model, err := a.selector.resolve(spanCtx, req.Model)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	span.SetAttributes(attribute.String("model", model))

	messages, err := buildAnalysisMessages(req)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	temperature := 0.0
	resp, err := a.client.Chat(spanCtx, ChatRequest{
		Model:       model,
		Temperature: &temperature,
		Messages:    messages,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		telemetry.RecordErrorAndStatus(span, errNoChoices)
		return nil, errNoChoices
	}

	res := &domain.AnalysisResult{
		Narrative: strings.TrimSpace(resp.Choices[0].Message.Content),
	}
	if resp.Usage != nil {
		res.TotalTokens = resp.Usage.TotalTokens
	}
	return res, nil
}

// buildAnalysisMessages loads the analysis prompt and injects the TOON encoded input
// into the user message.
func buildAnalysisMessages(req domain.AnalysisRequest) ([]ChatMessage, error) {
	input := analysisInput{
		Requirements: strings.TrimSpace(req.Requirements),
		Prompt:       req.Prompt,
	}
	if req.Focus != nil {
		input.Focus = strings.TrimSpace(*req.Focus)
	}
	inputTOON, err := toon.MarshalString(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis input: %w", err)
	}

	file, err := analysisPrompt.Open("prompts/analysis.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open analysis prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []ChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode analysis prompt: %w", err)
	}
	for i, msg := range messages {
		if msg.Role == "user" {
			messages[i].Content = strings.TrimSpace(fmt.Sprintf(msg.Content, inputTOON))
		}
	}
	return messages, nil
}
