package router

import (
	"context"
	"encoding/json"
	"testing"

	"skyhunt-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string { return s.name }

func (s *stubTool) Handle(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.name, nil
}

func TestToolRouterRegisterAndGet(t *testing.T) {
	r := NewToolRouter(logger.NewLogger())
	r.Register(&stubTool{name: "alpha"})
	r.Register(&stubTool{name: "beta"})

	tool := r.GetTool("alpha")
	require.NotNil(t, tool)
	assert.Equal(t, "alpha", tool.Name())

	assert.Nil(t, r.GetTool("missing"))
	assert.Equal(t, []string{"alpha", "beta"}, r.Names())
}

func TestToolRouterOverwritesSameName(t *testing.T) {
	r := NewToolRouter(logger.NewLogger())
	first := &stubTool{name: "alpha"}
	second := &stubTool{name: "alpha"}
	r.Register(first)
	r.Register(second)

	assert.Same(t, second, r.GetTool("alpha"))
	assert.Len(t, r.Names(), 1)
}
