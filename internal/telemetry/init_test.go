package telemetry

import (
	"context"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{Logger: log.New(&strings.Builder{}, "", 0)}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0)}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	policy := dontRetry500StatusPolicy(retryablehttp.DefaultRetryPolicy)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := map[string]struct {
		ctx         context.Context
		status      int
		expectRetry bool
		expectErr   bool
	}{
		"model-loading-is-retried": {
			ctx:         context.Background(),
			status:      http.StatusServiceUnavailable,
			expectRetry: true,
		},
		"internal-error-is-not-retried": {
			ctx:    context.Background(),
			status: http.StatusInternalServerError,
		},
		"success-is-not-retried": {
			ctx:    context.Background(),
			status: http.StatusOK,
		},
		"canceled-context": {
			ctx:       canceled,
			status:    http.StatusServiceUnavailable,
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, err := policy(tt.ctx, &http.Response{StatusCode: tt.status}, nil)
			assert.Equal(t, tt.expectRetry, retry)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
