package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/usecases"
)

// NewPromptDedupApp creates and returns a new instance of the prompt deduplication application.
func NewPromptDedupApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitProjectRepository{},
			&postgres.InitEnvironmentRepository{},
			&postgres.InitPromptRepository{},
			&time.InitCurrentTimeProvider{},
			&modelrunner.InitModelRunner{},

			&usecases.InitScopeLocker{},
			&usecases.InitScopeResolver{},
			&usecases.InitCheckPrompt{},
			&usecases.InitSavePrompt{},
			&usecases.InitResetCorpus{},
			&usecases.InitListProjects{},
			&usecases.InitUpsertProject{},
			&usecases.InitUpdateProject{},
			&usecases.InitDeleteProject{},
			&usecases.InitListEnvironments{},
			&usecases.InitDeleteEnvironment{},
			&usecases.InitClearEnvironmentPrompts{},
			&usecases.InitListAvailableModels{},
		).
		Host(
			&http.PromptDedupServer{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
