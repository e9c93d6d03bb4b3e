package mathd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kestrelworks/kestrel/internal/pkg/options"
)

// DefaultPort is the sse port mathd binds when none is given.
const DefaultPort = 6000

// NewCommand creates the `mathd` command.
func NewCommand() *cobra.Command {
	o := options.NewServeOptions(DefaultPort)

	cmd := &cobra.Command{
		Use:   "mathd",
		Short: "mathd serves arithmetic tools over MCP",
		Long: heredoc.Doc(`
			mathd is a standalone MCP tool server exposing arithmetic
			operations: add, subtract, multiply, divide, power and
			calculate_average.

			It serves on stdio by default, for use as a subprocess of an MCP
			client. With --transport=sse it listens on HTTP instead.`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := o.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid serve configuration: %v", errs)
			}

			s := NewServer()
			if o.Transport == "sse" {
				return s.ServeSSE(o.Addr())
			}
			return s.ServeStdio()
		},
	}

	o.AddFlags(cmd.Flags())

	return cmd
}
