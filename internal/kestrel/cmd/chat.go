package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kestrelworks/kestrel/internal/kestrel/agent"
	"github.com/kestrelworks/kestrel/internal/kestrel/llm"
	"github.com/kestrelworks/kestrel/internal/pkg/nws"
	"github.com/kestrelworks/kestrel/internal/pkg/tools"
	"github.com/kestrelworks/kestrel/internal/pkg/weather"
)

const chatSystemPrompt = `You are a helpful assistant with access to tools for ` +
	`weather forecasts, arithmetic, and city facts. Use a tool whenever it helps ` +
	`answer the question, and answer directly when none applies.`

// demoQueries is the scripted conversation played by `kestrel chat --demo`.
var demoQueries = []string{
	"What's the weather in Denver?",
	"Calculate 25 plus 17",
	"Tell me about Chicago",
	"What's 15 times 8?",
	"Get weather for San Francisco and info about the city",
}

func newChatCommand(o *rootOptions) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the agent using built-in tools",
		Long: heredoc.Doc(`
			Start an interactive conversation with the agent. The tools are
			built into the binary: city weather forecasts, a calculator, and
			city facts. No external servers are involved.`),
		Example: heredoc.Doc(`
			# Interactive chat
			kestrel chat

			# Replay the scripted demo conversation
			kestrel chat --demo

			# Use a different model
			kestrel chat --model.model=gpt-4o`),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			model, err := llm.NewChatModel(ctx, o.Model)
			if err != nil {
				return err
			}

			svc := weather.NewService(nws.NewClient(""))
			registry, err := tools.NewLocalTools(ctx, svc)
			if err != nil {
				return err
			}

			ag, err := agent.New(agent.Config{
				Model:        model,
				Registry:     registry,
				SystemPrompt: chatSystemPrompt,
				MaxSteps:     o.Agent.MaxSteps,
				OnToolCall:   printToolCall,
			})
			if err != nil {
				return err
			}

			if demo {
				return runScripted(ctx, ag, demoQueries)
			}
			return runConsole(ctx, ag, o.Model.Model, registry.Names(), nil)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Replay the scripted demo conversation instead of reading from the terminal.")

	return cmd
}
