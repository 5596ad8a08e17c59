// internal/server/router_test.go
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-navigator/internal/common/database"
	"ai-navigator/internal/common/logger"
	"ai-navigator/internal/common/observability"
	generateroadmap "ai-navigator/internal/handlers/generate-roadmap"
	"ai-navigator/internal/handlers/status"
	"ai-navigator/internal/quota"
)

func newTestRouter(t *testing.T) (http.Handler, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := logger.Nop()
	deps := Deps{
		Generate: generateroadmap.NewHandler(
			&generateroadmap.Config{Mode: "local", Timeout: time.Second},
			nil,
			quota.NewRedisStore(client, "quota:free", 0),
			log,
		),
		Status: status.NewHandler(client, log),
		Redis:  &database.RedisClient{Client: client},
		Logger: log,
		Obs:    &observability.Observability{},
	}
	return NewRouter(deps), mr
}

func TestRouter_RootEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello World")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_StatusRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/status",
		strings.NewReader(`{"client_name":"acme"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var checks []status.Check
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checks))
	require.Len(t, checks, 1)
	assert.Equal(t, "acme", checks[0].ClientName)
}

func TestRouter_GenerateRoadmap(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{
		"clientId": "client-1",
		"businessGoals": "reduce cost",
		"currentMaturity": {"Data": 1},
		"targetMaturity": {"Data": 3}
	}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/roadmap/generate",
		strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var out generateroadmap.Output
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, generateroadmap.SourceSynthesized, out.Source)
	require.NotNil(t, out.Roadmap)
	require.Len(t, out.Roadmap.Pillars, 1)

	// The quota flag lands in redis, so the second request is refused.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/roadmap/generate",
		strings.NewReader(body)))
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	router, mr := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	mr.Close()

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestID_PreservesInbound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "given-id", rec.Header().Get("X-Request-ID"))
}

func TestRecovery(t *testing.T) {
	handler := Recovery(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
