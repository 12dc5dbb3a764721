package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDRMAPIClient_Chat(t *testing.T) {
	tests := map[string]struct {
		req             ChatRequest
		statusCode      int
		response        string
		expectErr       bool
		expectedContent string
	}{
		"success": {
			req: ChatRequest{
				Model:    "test-model",
				Messages: []ChatMessage{{Role: "user", Content: "hi"}},
			},
			statusCode:      http.StatusOK,
			response:        `{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"hello"}}],"usage":{"total_tokens":7}}`,
			expectedContent: "hello",
		},
		"missing-model": {
			req:       ChatRequest{Messages: []ChatMessage{{Role: "user", Content: "hi"}}},
			expectErr: true,
		},
		"missing-messages": {
			req:       ChatRequest{Model: "test-model"},
			expectErr: true,
		},
		"server-error": {
			req: ChatRequest{
				Model:    "test-model",
				Messages: []ChatMessage{{Role: "user", Content: "hi"}},
			},
			statusCode: http.StatusInternalServerError,
			response:   "Internal Server Error",
			expectErr:  true,
		},
		"invalid-json": {
			req: ChatRequest{
				Model:    "test-model",
				Messages: []ChatMessage{{Role: "user", Content: "hi"}},
			},
			statusCode: http.StatusOK,
			response:   `{invalid json}`,
			expectErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/chat/completions", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewDRMAPIClient(server.URL, "secret", server.Client())
			resp, err := client.Chat(context.Background(), tt.req)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedContent, resp.Choices[0].Message.Content)
			assert.Equal(t, 7, resp.Usage.TotalTokens)
		})
	}
}

func TestDRMAPIClient_Embeddings(t *testing.T) {
	var gotReq EmbeddingsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&gotReq) //nolint:errcheck
		w.Write([]byte(`{"model":"nomic-embed","usage":{"prompt_tokens":3,"total_tokens":3},"data":[{"embedding":[0.5,0.25],"index":0}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewDRMAPIClient(server.URL, "", server.Client())
	resp, err := client.Embeddings(context.Background(), EmbeddingsRequest{Model: "nomic-embed", Input: "hello"})
	assert.NoError(t, err)
	assert.Equal(t, EmbeddingsRequest{Model: "nomic-embed", Input: "hello"}, gotReq)
	assert.Equal(t, []float64{0.5, 0.25}, resp.Data[0].Embedding)
	assert.Equal(t, 3, resp.Usage.TotalTokens)

	_, err = client.Embeddings(context.Background(), EmbeddingsRequest{Input: "hello"})
	assert.EqualError(t, err, "model is required")
}

func TestDRMAPIClient_AvailableModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"object":"list","data":[{"id":"qwen3","object":"model"}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewDRMAPIClient(server.URL, "", server.Client())
	resp, err := client.AvailableModels(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []ModelData{{ID: "qwen3", Object: "model"}}, resp.Data)
}

func TestDRMAPIClient_InvalidBaseURL(t *testing.T) {
	client := NewDRMAPIClient("://bad", "", http.DefaultClient)
	_, err := client.AvailableModels(context.Background())
	assert.Error(t, err)
}
