package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("theclub")
	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.MeterProvider())

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
}

func TestProvider_Handler(t *testing.T) {
	provider, err := NewProvider("theclub")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	// Record something so the exposition output is non-trivial
	bm, err := NewBusinessMetrics(provider.MeterProvider(), "theclub")
	require.NoError(t, err)
	bm.RecordOperation(context.Background(), "auth", "login", "success")
	bm.RecordDuration(context.Background(), "auth", "login", 25*time.Millisecond, "success")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	provider.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "theclub_operations_total")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	// Must be safe to call without a provider
	bm.RecordOperation(context.Background(), "auth", "login", "error")
	bm.RecordDuration(context.Background(), "auth", "login", time.Second, "error")
}

func TestSanitizePath(t *testing.T) {
	assert.Equal(t, "unknown", sanitizePath(""))
	assert.Equal(t, "/v1/articles/:id", sanitizePath("/v1/articles/:id"))
}
