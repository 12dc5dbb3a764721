package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/common"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/domain"
	"github.com/cleitonmarx/symbiont-prompt-dedup/internal/usecases"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	createdAt     = time.Date(2026, 1, 22, 10, 30, 0, 0, time.UTC)
	domainProject = domain.Project{
		ID:           uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		Name:         "checkout",
		Requirements: "Tests must be table-driven",
		Focus:        common.Ptr("payments"),
		CreatedAt:    createdAt,
	}
	restProject = gen.Project{
		Id:           openapi_types.UUID(domainProject.ID),
		Name:         domainProject.Name,
		Requirements: domainProject.Requirements,
		Focus:        domainProject.Focus,
		CreatedAt:    createdAt,
	}
)


func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestPromptDedupServer_ListProjects(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockListProjects)
		expectedStatus int
		expectedBody   *gen.ListProjectsResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *usecases.MockListProjects) {
				m.EXPECT().Query(mock.Anything).Return([]domain.Project{domainProject}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListProjectsResp{Items: []gen.Project{restProject}},
		},
		"empty": {
			setupMocks: func(m *usecases.MockListProjects) {
				m.EXPECT().Query(mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.ListProjectsResp{Items: []gen.Project{}},
		},
		"internal-server-error": {
			setupMocks: func(m *usecases.MockListProjects) {
				m.EXPECT().Query(mock.Anything).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.INTERNALERROR, Message: "internal server error"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockListProjects := usecases.NewMockListProjects(t)
			tt.setupMocks(mockListProjects)

			server := &PromptDedupServer{
				ListProjectsUseCase: mockListProjects,
				Logger:              discardLogger(),
			}

			req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestPromptDedupServer_UpsertProject(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockUpsertProject)
		expectedStatus int
		expectedBody   *gen.Project
		expectedError  *gen.ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, gen.UpsertProjectJSONRequestBody{
				Name:         "checkout",
				Requirements: common.Ptr("Tests must be table-driven"),
				Focus:        common.Ptr("payments"),
			}),
			setupMocks: func(m *usecases.MockUpsertProject) {
				m.EXPECT().
					Execute(mock.Anything, "checkout", "Tests must be table-driven", common.Ptr("payments")).
					Return(domainProject, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restProject,
		},
		"without-requirements": {
			requestBody: serializeJSON(t, gen.UpsertProjectJSONRequestBody{Name: "checkout"}),
			setupMocks: func(m *usecases.MockUpsertProject) {
				m.EXPECT().
					Execute(mock.Anything, "checkout", "", (*string)(nil)).
					Return(domainProject, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restProject,
		},
		"validation-error": {
			requestBody: serializeJSON(t, gen.UpsertProjectJSONRequestBody{}),
			setupMocks: func(m *usecases.MockUpsertProject) {
				m.EXPECT().
					Execute(mock.Anything, "", "", (*string)(nil)).
					Return(domain.Project{}, domain.NewValidationErr("project name cannot be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.BADREQUEST, Message: "project name cannot be empty"},
			},
		},
		"invalid-json-body": {
			requestBody:    []byte(`not-json`),
			setupMocks:     func(m *usecases.MockUpsertProject) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{
					Code:    gen.BADREQUEST,
					Message: "invalid request body: invalid character 'o' in literal null (expecting 'u')",
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockUpsertProject := usecases.NewMockUpsertProject(t)
			tt.setupMocks(mockUpsertProject)

			server := &PromptDedupServer{
				UpsertProjectUseCase: mockUpsertProject,
				Logger:               discardLogger(),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestPromptDedupServer_UpdateProject(t *testing.T) {
	tests := map[string]struct {
		name           string
		requestBody    []byte
		setupMocks     func(*usecases.MockUpdateProject)
		expectedStatus int
		expectedBody   *gen.Project
		expectedError  *gen.ErrorResp
	}{
		"success": {
			name: "checkout",
			requestBody: serializeJSON(t, gen.UpdateProjectJSONRequestBody{
				Focus: common.Ptr("payments"),
			}),
			setupMocks: func(m *usecases.MockUpdateProject) {
				m.EXPECT().
					Execute(mock.Anything, "checkout", domain.ProjectUpdate{Focus: common.Ptr("payments")}).
					Return(domainProject, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restProject,
		},
		"not-found": {
			name:        "missing",
			requestBody: serializeJSON(t, gen.UpdateProjectJSONRequestBody{Requirements: common.Ptr("r")}),
			setupMocks: func(m *usecases.MockUpdateProject) {
				m.EXPECT().
					Execute(mock.Anything, "missing", domain.ProjectUpdate{Requirements: common.Ptr("r")}).
					Return(domain.Project{}, domain.NewNotFoundErr("project 'missing' not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.NOTFOUND, Message: "project 'missing' not found"},
			},
		},
		"invalid-json-body": {
			name:           "checkout",
			requestBody:    []byte(`{`),
			setupMocks:     func(m *usecases.MockUpdateProject) {},
			expectedStatus: http.StatusBadRequest,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.BADREQUEST, Message: "invalid request body: unexpected EOF"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockUpdateProject := usecases.NewMockUpdateProject(t)
			tt.setupMocks(mockUpdateProject)

			server := &PromptDedupServer{
				UpdateProjectUseCase: mockUpdateProject,
				Logger:               discardLogger(),
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/projects/"+tt.name, bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestPromptDedupServer_DeleteProject(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockDeleteProject)
		expectedStatus int
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *usecases.MockDeleteProject) {
				m.EXPECT().Execute(mock.Anything, "checkout").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"not-found": {
			setupMocks: func(m *usecases.MockDeleteProject) {
				m.EXPECT().Execute(mock.Anything, "checkout").
					Return(domain.NewNotFoundErr("project 'checkout' not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &gen.ErrorResp{
				Error: gen.Error{Code: gen.NOTFOUND, Message: "project 'checkout' not found"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockDeleteProject := usecases.NewMockDeleteProject(t)
			tt.setupMocks(mockDeleteProject)

			server := &PromptDedupServer{
				DeleteProjectUseCase: mockDeleteProject,
				Logger:               discardLogger(),
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/projects/checkout", nil)
			w := httptest.NewRecorder()

			gen.Handler(server).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertJSONBody[struct{}](t, w, nil, tt.expectedError)
		})
	}
}

// assertJSONBody decodes the recorded response into either the expected body or the
// expected error envelope and compares them.
func assertJSONBody[T any](t *testing.T, w *httptest.ResponseRecorder, expectedBody *T, expectedError *gen.ErrorResp) {
	t.Helper()

	if expectedBody != nil {
		var response T
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, *expectedBody, response)
	}

	if expectedError != nil {
		var errorResp gen.ErrorResp
		err := json.Unmarshal(w.Body.Bytes(), &errorResp)
		assert.NoError(t, err)
		assert.Equal(t, *expectedError, errorResp)
	}
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}
