package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mcp.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"mcpServers": {
			"math":    {"command": "mathd"},
			"weather": {"transport": "sse", "url": "http://127.0.0.1:6001/sse"}
		}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.MCPServers, 2)
	assert.Equal(t, "mathd", cfg.MCPServers["math"].Command)
	assert.Equal(t, "sse", cfg.MCPServers["weather"].Transport)
	assert.Empty(t, cfg.Validate())

	// Validate defaults the transport.
	assert.Equal(t, "stdio", cfg.MCPServers["math"].Transport)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read MCP config file")
}

func TestLoadConfigNoServers(t *testing.T) {
	path := writeConfig(t, `{"mcpServers": {}}`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defines no servers")
}

func TestValidateFaults(t *testing.T) {
	cfg := &Config{MCPServers: map[string]*ServerConfig{
		"a": {},                         // stdio without command
		"b": {Transport: "sse"},         // sse without url
		"c": {Transport: "carrier-owl"}, // unknown transport
		"d": {Command: "mathd", Env: []string{"X=1"}},
	}}

	errs := cfg.Validate()
	require.Len(t, errs, 3)
}

func TestInitializeAbortsWhenAnyServerUnreachable(t *testing.T) {
	cfg := &Config{MCPServers: map[string]*ServerConfig{
		"ghost": {Transport: "stdio", Command: filepath.Join(t.TempDir(), "no-such-binary")},
	}}

	m, err := NewManager(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = m.Initialize(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `server "ghost"`)

	// No partial registry is exposed after a failed startup.
	_, err = m.Registry(ctx)
	require.Error(t, err)

	m.Close()
}

func TestNewManagerRejectsInvalidConfig(t *testing.T) {
	cfg := &Config{MCPServers: map[string]*ServerConfig{"bad": {}}}
	_, err := NewManager(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MCP configuration")
}
