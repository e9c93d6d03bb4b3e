package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelworks/kestrel/internal/pkg/tools"
)

// Every agent subcommand supports a scripted --demo run.
func TestAgentSubcommandsAcceptDemoFlag(t *testing.T) {
	root := NewKestrelCommand(nil)

	for _, name := range []string{"chat", "mcp", "report"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, sub.Name())
		assert.NotNil(t, sub.Flags().Lookup("demo"), "subcommand %q has no --demo flag", name)
	}
}

func TestRunToolChecksExecutesAgainstRegistry(t *testing.T) {
	ctx := context.Background()
	registry := tools.NewRegistry()
	require.NoError(t, registry.Register(ctx, tools.NewCalculator(), "local"))

	checks := []toolCheck{
		{Name: "calculate", Arguments: `{"a":5,"b":3,"operation":"add"}`},
		// An unknown tool still yields a printable failure string.
		{Name: "get_city_weather", Arguments: `{"city_name":"Chicago"}`},
	}
	require.NoError(t, runToolChecks(ctx, registry, checks))
}
