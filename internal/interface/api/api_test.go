package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skyhunt-service/internal/infrastructure/router"
	"skyhunt-service/internal/usecase"
	"skyhunt-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedTool struct {
	name   string
	result interface{}
	err    error
}

func (s *scriptedTool) Name() string { return s.name }

func (s *scriptedTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.result, s.err
}

func newTestServer(tools ...router.Tool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()
	toolRouter := router.NewToolRouter(log)
	for _, tool := range tools {
		toolRouter.Register(tool)
	}

	engine := gin.New()
	SetupRoutes(engine, toolRouter, nil, log)
	return engine
}

func invoke(engine *gin.Engine, name, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/"+name, strings.NewReader(body))
	engine.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestServer()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Healthy", w.Body.String())
}

func TestListTools(t *testing.T) {
	engine := newTestServer(&scriptedTool{name: "get_active_hunts"})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"tools":["get_active_hunts"]}`, w.Body.String())
}

func TestInvokeToolSuccess(t *testing.T) {
	engine := newTestServer(&scriptedTool{name: "echo", result: map[string]string{"hello": "world"}})

	w := invoke(engine, "echo", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"hello":"world"}}`, w.Body.String())
}

func TestInvokeUnknownTool(t *testing.T) {
	engine := newTestServer()

	w := invoke(engine, "missing", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvokeToolValidationError(t *testing.T) {
	engine := newTestServer(&scriptedTool{
		name: "strict",
		err:  &usecase.ValidationError{Field: "price", Reason: "must be positive"},
	})

	w := invoke(engine, "strict", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "price")
}

func TestInvokeToolStoreFailure(t *testing.T) {
	engine := newTestServer(&scriptedTool{name: "flaky", err: errors.New("connection refused")})

	w := invoke(engine, "flaky", `{}`)
	// Store trouble must be an explicit failure, never an empty success
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
