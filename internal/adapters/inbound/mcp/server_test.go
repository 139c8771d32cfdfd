package mcp_test

import (
	"testing"

	mcpadapter "github.com/abscore/abscore/internal/adapters/inbound/mcp"
	"github.com/abscore/abscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAbscoreMCPServer(t *testing.T) {
	s := mcpadapter.NewAbscoreMCPServer(t.TempDir(), domain.DefaultConfig())
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewAbscoreMCPServer(t.TempDir(), domain.DefaultConfig())

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"abscore_score_metrics",
		"abscore_parse_output",
		"abscore_cdr3_identity",
		"abscore_rescore_csv",
		"abscore_tools",
	}
	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}
	assert.Len(t, tools, len(expectedTools))
}
