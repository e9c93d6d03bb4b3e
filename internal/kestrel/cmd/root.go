// Package cmd wires the kestrel CLI: an interactive agent over local
// tools, the same agent over remote MCP tool servers, and a one-shot
// weather report generator.
package cmd

import (
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kestrelworks/kestrel/internal/pkg/options"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

type rootOptions struct {
	Model *options.ModelOptions
	Agent *options.AgentOptions
	MCP   *options.MCPOptions

	ConfigFile string
	LogLevel   string
	LogFile    string
}

type rootConfig struct {
	Model options.ModelOptions `mapstructure:"model"`
	Agent options.AgentOptions `mapstructure:"agent"`
	MCP   options.MCPOptions   `mapstructure:"mcp"`
}

// NewDefaultKestrelCommand creates the `kestrel` command with default arguments.
func NewDefaultKestrelCommand() *cobra.Command {
	return NewKestrelCommand(os.Args[1:])
}

func NewKestrelCommand(args []string) *cobra.Command {
	o := &rootOptions{
		Model:    options.NewModelOptions(),
		Agent:    options.NewAgentOptions(),
		MCP:      options.NewMCPOptions(),
		LogLevel: "info",
	}

	cmds := &cobra.Command{
		Use:   "kestrel",
		Short: "kestrel is a tool-calling agent for the terminal",
		Long: heredoc.Doc(`
			kestrel runs a conversational agent that answers questions by
			calling tools: weather forecasts from the National Weather
			Service, arithmetic, and city facts.

			Tools come from two places. The chat command uses tools built
			into the binary. The mcp command discovers tools from external
			MCP servers declared in a configuration file, such as the mathd
			and weatherd servers shipped alongside kestrel.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run:           runHelp,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return o.complete()
		},
	}
	cmds.SetArgs(args)

	flags := cmds.PersistentFlags()
	flags.StringVar(&o.ConfigFile, "config", "", "Path to a kestrel configuration file (JSON or YAML).")
	flags.StringVar(&o.LogLevel, "log-level", o.LogLevel, "Log verbosity: debug, info, warn or error.")
	flags.StringVar(&o.LogFile, "log-file", "", "Append logs to this file instead of stderr.")
	o.Model.AddFlags(flags)
	o.Agent.AddFlags(flags)
	o.MCP.AddFlags(flags)

	_ = viper.BindPFlags(flags)

	cmds.AddCommand(newChatCommand(o))
	cmds.AddCommand(newMCPCommand(o))
	cmds.AddCommand(newReportCommand(o))

	return cmds
}

// complete layers the optional config file under the flag values and
// initializes logging. Flags changed on the command line win.
func (o *rootOptions) complete() error {
	if o.ConfigFile != "" {
		viper.SetConfigFile(o.ConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %q: %w", o.ConfigFile, err)
		}
	}

	var cfg rootConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	*o.Model = cfg.Model
	*o.Agent = cfg.Agent
	*o.MCP = cfg.MCP

	if err := logger.SetLevel(o.LogLevel); err != nil {
		return err
	}
	if o.LogFile != "" {
		if err := logger.InitLog(o.LogFile); err != nil {
			return err
		}
	}
	return nil
}

func runHelp(cmd *cobra.Command, args []string) {
	_ = cmd.Help()
}
