package http

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/usecases"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	domainEnvironment = domain.Environment{
		ID:          uuid.MustParse("323e4567-e89b-12d3-a456-426614174000"),
		ProjectID:   domainProject.ID,
		ProjectName: "checkout",
		Name:        "staging",
		CreatedAt:   createdAt,
	}
	restEnvironment = gen.Environment{
		Id:        openapi_types.UUID(domainEnvironment.ID),
		Project:   "checkout",
		Name:      "staging",
		CreatedAt: createdAt,
	}
)

func TestPromptDedupServer_ListEnvironments(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockListEnvironments)
		expectedStatus int
		expectedBody   *gen.ListEnvironmentsResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *usecases.MockListEnvironments) {
				m.EXPECT().Query(mock.Anything, "checkout").
					Return([]domain.Environment{domainEnvironment}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListEnvironmentsResp{Items: []gen.Environment{restEnvironment}},
		},
		"project-not-found": {
			setupMocks: func(m *usecases.MockListEnvironments) {
				m.EXPECT().Query(mock.Anything, "checkout").
					Return(nil, domain.NewNotFoundErr("project 'checkout' not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.NOTFOUND, Message: "project 'checkout' not found"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListEnvironments := usecases.NewMockListEnvironments(t)
			tt.setupMocks(mockListEnvironments)

			server := &PromptDedupServer{
				ListEnvironmentsUseCase: mockListEnvironments,
				Logger:                  discardLogger(),
			}

			req := httptest.NewRequest(http.MethodGet, "/api/projects/checkout/environments", nil)
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestPromptDedupServer_CreateEnvironment(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockScopeResolver)
		expectedStatus int
		expectedBody   *gen.Environment
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.CreateEnvironmentJSONRequestBody{
				Project:     "checkout",
				Environment: "staging",
			}),
			setupMocks: func(m *usecases.MockScopeResolver) {
				m.EXPECT().CreateEnvironment(mock.Anything, "checkout", "staging").
					Return(domainEnvironment, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   &restEnvironment,
		},
		"unknown-project": {
			requestBody: serializeJSON(t, gen.CreateEnvironmentJSONRequestBody{
				Project:     "missing",
				Environment: "staging",
			}),
			setupMocks: func(m *usecases.MockScopeResolver) {
				m.EXPECT().CreateEnvironment(mock.Anything, "missing", "staging").
					Return(domain.Environment{}, domain.NewInvalidReferenceErr("project 'missing' does not exist"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.BADREQUEST, Message: "project 'missing' does not exist"},
			},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{`),
			setupMocks:     func(m *usecases.MockScopeResolver) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.BADREQUEST, Message: "invalid request body: unexpected EOF"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockResolver := usecases.NewMockScopeResolver(t)
			tt.setupMocks(mockResolver)

			server := &PromptDedupServer{
				ScopeResolver: mockResolver,
				Logger:        discardLogger(),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/environments", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestPromptDedupServer_DeleteEnvironment(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockDeleteEnvironment)
		expectedStatus int
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *usecases.MockDeleteEnvironment) {
				m.EXPECT().Execute(mock.Anything, "checkout", "staging").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"internal-server-error": {
			setupMocks: func(m *usecases.MockDeleteEnvironment) {
				m.EXPECT().Execute(mock.Anything, "checkout", "staging").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.INTERNALERROR, Message: "internal server error"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockDeleteEnvironment := usecases.NewMockDeleteEnvironment(t)
			tt.setupMocks(mockDeleteEnvironment)

			server := &PromptDedupServer{
				DeleteEnvironmentUseCase: mockDeleteEnvironment,
				Logger:                   discardLogger(),
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/projects/checkout/environments/staging", nil)
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody[struct{}](t, w, nil, tt.expectedError)
		})
	}
}

func TestPromptDedupServer_ClearEnvironmentPrompts(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockClearEnvironmentPrompts)
		expectedStatus int
		expectedBody   *gen.ClearPromptsResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *usecases.MockClearEnvironmentPrompts) {
				m.EXPECT().Execute(mock.Anything, "checkout", "staging").Return(int64(3), nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ClearPromptsResp{Deleted: 3},
		},
		"environment-not-found": {
			setupMocks: func(m *usecases.MockClearEnvironmentPrompts) {
				m.EXPECT().Execute(mock.Anything, "checkout", "staging").
					Return(int64(0), domain.NewNotFoundErr("environment 'staging' for project 'checkout' not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{
					Code:    gen.NOTFOUND,
					Message: "environment 'staging' for project 'checkout' not found",
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockClear := usecases.NewMockClearEnvironmentPrompts(t)
			tt.setupMocks(mockClear)

			server := &PromptDedupServer{
				ClearEnvironmentPromptsUseCase: mockClear,
				Logger:                         discardLogger(),
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/projects/checkout/environments/staging/prompts", nil)
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}
