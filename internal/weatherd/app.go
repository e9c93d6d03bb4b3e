package weatherd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kestrelworks/kestrel/internal/pkg/nws"
	"github.com/kestrelworks/kestrel/internal/pkg/options"
	"github.com/kestrelworks/kestrel/internal/pkg/weather"
)

// DefaultPort is the sse port weatherd binds when none is given.
const DefaultPort = 6001

// NewCommand creates the `weatherd` command.
func NewCommand() *cobra.Command {
	o := options.NewServeOptions(DefaultPort)
	var nwsBaseURL string

	cmd := &cobra.Command{
		Use:   "weatherd",
		Short: "weatherd serves National Weather Service tools over MCP",
		Long: heredoc.Doc(`
			weatherd is a standalone MCP tool server backed by the National
			Weather Service API. It exposes forecast, current-conditions and
			alert lookups by coordinate, plus a by-name forecast for major US
			cities.

			It serves on stdio by default, for use as a subprocess of an MCP
			client. With --transport=sse it listens on HTTP instead.`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if errs := o.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid serve configuration: %v", errs)
			}

			s := NewServer(weather.NewService(nws.NewClient(nwsBaseURL)))
			if o.Transport == "sse" {
				return s.ServeSSE(o.Addr())
			}
			return s.ServeStdio()
		},
	}

	o.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&nwsBaseURL, "nws-base-url", "", "Override the NWS API endpoint (default: "+nws.DefaultBaseURL+").")

	return cmd
}
