package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/kestrelworks/kestrel/internal/kestrel/agent"
	"github.com/kestrelworks/kestrel/internal/kestrel/llm"
	"github.com/kestrelworks/kestrel/internal/kestrel/mcp"
	"github.com/kestrelworks/kestrel/internal/pkg/tools"
)

const mcpSystemPrompt = `You are a helpful assistant. Answer questions using ` +
	`the tools discovered from the connected servers, and answer directly when ` +
	`none applies.`

// mcpDemoChecks exercises one tool from each server directly, without
// involving the model.
var mcpDemoChecks = []toolCheck{
	{Name: "add", Arguments: `{"a":5,"b":3}`},
	{Name: "get_city_weather", Arguments: `{"city_name":"Chicago"}`},
}

func newMCPCommand(o *rootOptions) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Chat with the agent using tools from MCP servers",
		Long: heredoc.Doc(`
			Connect to the MCP servers declared in the configuration file,
			discover their tools, and start an interactive conversation. All
			servers must come up: if any is unreachable the session does not
			start.`),
		Example: heredoc.Doc(`
			# Use the default configuration at conf/mcp.json
			kestrel mcp

			# Point at a different server set
			kestrel mcp --mcp.config-file=./my-servers.json

			# Check server connectivity by calling tools directly
			kestrel mcp --demo`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := mcp.LoadConfig(o.MCP.ConfigFile)
			if err != nil {
				return err
			}
			manager, err := mcp.NewManager(cfg)
			if err != nil {
				return err
			}
			if err := manager.Initialize(ctx); err != nil {
				return err
			}
			defer manager.Close()

			registry, err := manager.Registry(ctx)
			if err != nil {
				return err
			}
			printToolTable(registry)

			if demo {
				return runToolChecks(ctx, registry, mcpDemoChecks)
			}

			model, err := llm.NewChatModel(ctx, o.Model)
			if err != nil {
				return err
			}

			ag, err := agent.New(agent.Config{
				Model:        model,
				Registry:     registry,
				SystemPrompt: mcpSystemPrompt,
				MaxSteps:     o.Agent.MaxSteps,
				OnToolCall:   printToolCall,
			})
			if err != nil {
				return err
			}

			return runConsole(ctx, ag, o.Model.Model, registry.Names(), manager.Close)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Call one tool from each server directly instead of starting a chat.")

	return cmd
}

// printToolTable lists the discovered tools grouped by origin server.
func printToolTable(reg *tools.Registry) {
	table := uitable.New()
	table.MaxColWidth = 60

	table.AddRow(color.CyanString("TOOL"), color.CyanString("SERVER"), color.CyanString("DESCRIPTION"))
	for _, b := range reg.List() {
		table.AddRow(b.Info.Name, b.Source, b.Info.Desc)
	}

	fmt.Println(table)
	fmt.Println()
}
