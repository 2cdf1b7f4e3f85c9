package api

import (
	"errors"
	"net/http"
	"time"

	"skyhunt-service/internal/domain/repository"
	"skyhunt-service/internal/infrastructure/router"
	"skyhunt-service/internal/usecase"
	"skyhunt-service/pkg/logger"
	"skyhunt-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIHandler exposes the tool registry over HTTP
type APIHandler struct {
	tools   *router.ToolRouter
	metrics *metrics.Metrics
	logger  logger.Logger
}

// SetupRoutes wires the handler into a gin engine
func SetupRoutes(r *gin.Engine, tools *router.ToolRouter, m *metrics.Metrics, logger logger.Logger) *APIHandler {
	handler := &APIHandler{
		tools:   tools,
		metrics: m,
		logger:  logger,
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/tools", handler.ListTools)
		v1.POST("/tools/:name", handler.InvokeTool)
	}

	return handler
}

// ListTools returns the registered tool names
func (h *APIHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.tools.Names()})
}

// InvokeTool dispatches a request body to the named tool. Validation errors
// are 400; an unknown id is 404; store failures are 503, never an empty 200.
func (h *APIHandler) InvokeTool(c *gin.Context) {
	name := c.Param("name")
	tool := h.tools.GetTool(name)
	if tool == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "unknown tool: " + name})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unreadable request body"})
		return
	}

	start := time.Now()
	result, err := tool.Handle(c.Request.Context(), body)
	if h.metrics != nil {
		h.metrics.AnalysisTime.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		switch {
		case usecase.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		default:
			if h.metrics != nil {
				h.metrics.ErrorsCount.WithLabelValues(name).Inc()
			}
			h.logger.Error("Tool invocation failed", "tool", name, "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "store unavailable"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
