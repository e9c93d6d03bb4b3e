package mcp

import (
	"fmt"
	"os"

	"github.com/kestrelworks/kestrel/pkg/utils/json"
)

// Config holds the top-level MCP client configuration.
// Compatible with the Claude Desktop / VS Code MCP config format.
//
// File format (mcp.json):
//
//	{
//	  "mcpServers": {
//	    "math": {
//	      "transport": "stdio",
//	      "command": "mathd",
//	      "args": []
//	    },
//	    "weather": {
//	      "transport": "sse",
//	      "url": "http://127.0.0.1:6001/sse"
//	    }
//	  }
//	}
type Config struct {
	// MCPServers maps logical server name → server configuration.
	MCPServers map[string]*ServerConfig `json:"mcpServers"`
}

// ServerConfig defines the connection to a single MCP tool server.
// Two transports are supported: "stdio" (subprocess pipe, the default)
// and "sse" (HTTP).
type ServerConfig struct {
	// Transport is "stdio" or "sse". Default: "stdio".
	Transport string `json:"transport,omitempty"`

	// Command is the executable to launch (stdio only).
	Command string `json:"command,omitempty"`

	// Args are the command-line arguments (stdio only).
	Args []string `json:"args,omitempty"`

	// Env is the subprocess environment, as "KEY=VALUE" pairs (stdio only).
	Env []string `json:"env,omitempty"`

	// URL is the SSE endpoint (sse only).
	URL string `json:"url,omitempty"`

	// ToolFilter optionally restricts which of the server's tools are
	// exposed. Empty means all.
	ToolFilter []string `json:"toolFilter,omitempty"`
}

// LoadConfig reads an MCP configuration file. A missing file is a
// configuration fault here: the client modes cannot run without servers.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read MCP config file %q: %w", path, err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse MCP config file %q: %w", path, err)
	}

	if len(cfg.MCPServers) == 0 {
		return nil, fmt.Errorf("MCP config file %q defines no servers", path)
	}
	return cfg, nil
}

// Validate checks the configuration for obvious faults.
func (c *Config) Validate() []error {
	var errs []error
	for name, srv := range c.MCPServers {
		if srv.Transport == "" {
			srv.Transport = "stdio"
		}
		switch srv.Transport {
		case "stdio":
			if srv.Command == "" {
				errs = append(errs, fmt.Errorf("mcpServers.%s: command is required for stdio transport", name))
			}
		case "sse":
			if srv.URL == "" {
				errs = append(errs, fmt.Errorf("mcpServers.%s: url is required for sse transport", name))
			}
		default:
			errs = append(errs, fmt.Errorf("mcpServers.%s: unsupported transport %q (must be 'stdio' or 'sse')", name, srv.Transport))
		}
	}
	return errs
}
