package options

import (
	"errors"

	"github.com/spf13/pflag"
)

// MCPOptions locates the standalone MCP client configuration file.
type MCPOptions struct {
	// ConfigFile is the path to the mcpServers JSON file.
	ConfigFile string `json:"config-file" mapstructure:"config-file"`
}

// NewMCPOptions creates a default MCPOptions instance.
func NewMCPOptions() *MCPOptions {
	return &MCPOptions{
		ConfigFile: "conf/mcp.json",
	}
}

// Validate checks the MCPOptions for correctness.
func (o *MCPOptions) Validate() []error {
	if o.ConfigFile == "" {
		return []error{errors.New("mcp.config-file is required")}
	}
	return nil
}

// AddFlags registers the MCP flags.
func (o *MCPOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "mcp.config-file", o.ConfigFile, "Path to the MCP servers configuration file.")
}
