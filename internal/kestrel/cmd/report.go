package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kestrelworks/kestrel/internal/kestrel/agent"
	"github.com/kestrelworks/kestrel/internal/kestrel/llm"
	"github.com/kestrelworks/kestrel/internal/kestrel/mcp"
	"github.com/kestrelworks/kestrel/internal/pkg/report"
)

const (
	reportTitle = "MCP 10-City Weather"

	// One tool call per city plus the closing summary turn.
	reportMaxSteps = 25

	reportSystemPrompt = `You are a weather analyst. Gather data with the ` +
		`available tools, then write clear, well-organized reports.`

	reportPrompt = `Get the weather forecast for these 10 major US cities: ` +
		`New York, Los Angeles, Chicago, Houston, Phoenix, Philadelphia, ` +
		`San Antonio, San Diego, Dallas, and Denver. Use the get_city_weather ` +
		`tool once per city. Then write a summary report comparing conditions ` +
		`across the cities: note the warmest and coolest, and any notable weather.`
)

// reportDemoChecks fetches a single city directly so the weather server
// can be verified before a full report run.
var reportDemoChecks = []toolCheck{
	{Name: "get_city_weather", Arguments: `{"city_name":"Denver"}`},
}

func newReportCommand(o *rootOptions) *cobra.Command {
	var (
		output string
		demo   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a 10-city weather report",
		Long: heredoc.Doc(`
			Connect to the MCP servers from the configuration file (only a
			weather server is needed), have the agent fetch forecasts for ten
			major US cities, and append the generated report to a summary
			file.`),
		Example: heredoc.Doc(`
			# Generate and append to weather_summary.txt
			kestrel report

			# Write to a different summary file
			kestrel report --output=/tmp/weather.txt

			# Check the weather server with a single city, no report written
			kestrel report --demo`),
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

			if demo {
				return runToolChecks(ctx, registry, reportDemoChecks)
			}

			model, err := llm.NewChatModel(ctx, o.Model)
			if err != nil {
				return err
			}

			ag, err := agent.New(agent.Config{
				Model:        model,
				Registry:     registry,
				SystemPrompt: reportSystemPrompt,
				MaxSteps:     reportMaxSteps,
				OnToolCall:   printToolCall,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%sGathering forecasts...%s\n", colorGrayANSI, colorReset)
			turn, err := ag.Run(ctx, reportPrompt)
			if err != nil {
				return err
			}
			if turn.StepLimited {
				return fmt.Errorf("report generation hit the %d-step limit before finishing", reportMaxSteps)
			}

			fmt.Print("\r\033[K")
			fmt.Println(renderMarkdownToTerminal(turn.Answer, getTermWidth()-4))
			fmt.Println()

			if err := report.AppendSummary(output, reportTitle, turn.Answer); err != nil {
				return err
			}
			fmt.Println(color.GreenString("Report appended to %s", output))
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", report.DefaultSummaryFile, "Summary file the report is appended to.")
	cmd.Flags().BoolVar(&demo, "demo", false, "Fetch a single city directly instead of generating the full report.")

	return cmd
}
