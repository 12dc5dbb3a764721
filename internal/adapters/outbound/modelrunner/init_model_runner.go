package modelrunner

import (
	"context"
	"net/http"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitModelRunner registers the model server adapters in the dependency container.
type InitModelRunner struct {
	HttpClient     *http.Client `resolve:""`
	ModelHost      string       `config:"LLM_MODEL_HOST" default:"http://localhost:1234"`
	APIKey         string       `config:"LLM_API_KEY" default:"-"`
	EmbeddingModel string       `config:"LLM_EMBEDDING_MODEL" default:"-"`
	ChatModel      string       `config:"LLM_CHAT_MODEL" default:"-"`
}

// Initialize registers domain.ModelCatalog, domain.SemanticEncoder and domain.RequirementAnalyzer.
func (i InitModelRunner) Initialize(ctx context.Context) (context.Context, error) {
	client := NewDRMAPIClient(i.ModelHost, unset(i.APIKey), i.HttpClient)
	catalog := NewModelCatalog(client)

	depend.Register[domain.ModelCatalog](catalog)
	depend.Register[domain.SemanticEncoder](NewEncoder(client, catalog, unset(i.EmbeddingModel)))
	depend.Register[domain.RequirementAnalyzer](NewAnalyzer(client, catalog, unset(i.ChatModel)))
	return ctx, nil
}

// unset maps the "-" placeholder used for optional settings to an empty value.
func unset(v string) string {
	if v == "-" {
		return ""
	}
	return v
}
