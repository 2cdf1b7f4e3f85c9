package router

import (
	"context"
	"encoding/json"
	"sort"

	"skyhunt-service/pkg/logger"
)

// Tool is one named capability exposed to calling agents. Handle decodes and
// validates its own params before touching any store.
type Tool interface {
	Name() string
	Handle(ctx context.Context, params json.RawMessage) (interface{}, error)
}

// ToolRouter maps capability names to tools
type ToolRouter struct {
	tools  map[string]Tool
	logger logger.Logger
}

// NewToolRouter creates a new tool router
func NewToolRouter(logger logger.Logger) *ToolRouter {
	return &ToolRouter{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// Register registers a tool under its name
func (r *ToolRouter) Register(tool Tool) {
	r.tools[tool.Name()] = tool
	r.logger.Info("Registered tool", "tool", tool.Name())
}

// GetTool returns the tool for a given name, or nil
func (r *ToolRouter) GetTool(name string) Tool {
	return r.tools[name]
}

// Names returns the registered tool names, sorted
func (r *ToolRouter) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
