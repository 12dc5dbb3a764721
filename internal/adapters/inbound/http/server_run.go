package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/telemetry"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/usecases"
	"github.com/rs/cors"
)

var _ gen.ServerInterface = (*PromptDedupServer)(nil)

// PromptDedupServer is the REST API HTTP server for the prompt deduplication service.
type PromptDedupServer struct {
	Port                           int                              `config:"HTTP_PORT" default:"8080"`
	Logger                         *log.Logger                      `resolve:""`
	CheckPromptUseCase             usecases.CheckPrompt             `resolve:""`
	SavePromptUseCase              usecases.SavePrompt              `resolve:""`
	ResetCorpusUseCase             usecases.ResetCorpus             `resolve:""`
	ScopeResolver                  usecases.ScopeResolver           `resolve:""`
	ListProjectsUseCase            usecases.ListProjects            `resolve:""`
	UpsertProjectUseCase           usecases.UpsertProject           `resolve:""`
	UpdateProjectUseCase           usecases.UpdateProject           `resolve:""`
	DeleteProjectUseCase           usecases.DeleteProject           `resolve:""`
	ListEnvironmentsUseCase        usecases.ListEnvironments        `resolve:""`
	DeleteEnvironmentUseCase       usecases.DeleteEnvironment       `resolve:""`
	ClearEnvironmentPromptsUseCase usecases.ClearEnvironmentPrompts `resolve:""`
	ListAvailableModelsUseCase     usecases.ListAvailableModels     `resolve:""`
}

// Run starts the HTTP server for the PromptDedupServer.
func (api PromptDedupServer) Run(ctx context.Context) error {
	mux := http.NewServeMux()

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("/introspect", IntrospectHandler)

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("promptdedup-api"),
		},
		ErrorHandlerFunc: paramErrorHandler,
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	h = cors.AllowAll().Handler(h)

	s := &http.Server{
		Handler:           h,
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("PromptDedupServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("PromptDedupServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("PromptDedupServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the PromptDedupServer is ready by calling the info endpoint.
func (api PromptDedupServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/api/info", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
