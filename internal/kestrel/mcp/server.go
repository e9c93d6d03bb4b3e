// Package mcp connects the agent to remote MCP tool servers and merges
// their published tools into one registry.
package mcp

import (
	"context"
	"fmt"
	"sync"

	mcpTool "github.com/cloudwego/eino-ext/components/tool/mcp"
	"github.com/cloudwego/eino/components/tool"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kestrelworks/kestrel/pkg/logger"
)

// ServerStatus represents the connection state of an MCP server.
type ServerStatus int

const (
	ServerStatusDisconnected ServerStatus = iota
	ServerStatusConnecting
	ServerStatusConnected
	ServerStatusError
)

func (s ServerStatus) String() string {
	switch s {
	case ServerStatusDisconnected:
		return "Disconnected"
	case ServerStatusConnecting:
		return "Connecting"
	case ServerStatusConnected:
		return "Connected"
	case ServerStatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Server is the client-side handle for one remote tool server.
type Server struct {
	name   string
	config *ServerConfig

	mu     sync.RWMutex
	client client.MCPClient
	tools  []tool.BaseTool
	status ServerStatus
}

// NewServer creates a handle for a configured server. No connection is
// made until Connect.
func NewServer(name string, cfg *ServerConfig) *Server {
	return &Server{
		name:   name,
		config: cfg,
		status: ServerStatusDisconnected,
	}
}

// Name returns the logical server name from the configuration.
func (s *Server) Name() string {
	return s.name
}

// Status returns the current connection status.
func (s *Server) Status() ServerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Tools returns the tools discovered at connect time.
func (s *Server) Tools() []tool.BaseTool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]tool.BaseTool, len(s.tools))
	copy(result, s.tools)
	return result
}

// Connect establishes the transport, performs the protocol handshake,
// and discovers the server's tools.
func (s *Server) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = ServerStatusConnecting

	cli, err := s.createClient()
	if err != nil {
		s.status = ServerStatusError
		return fmt.Errorf("[MCP] server %q: failed to create client: %w", s.name, err)
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    "kestrel",
		Version: "0.1.0",
	}

	if _, err := cli.Initialize(ctx, initReq); err != nil {
		_ = cli.Close()
		s.status = ServerStatusError
		return fmt.Errorf("[MCP] server %q: failed to initialize: %w", s.name, err)
	}

	tools, err := mcpTool.GetTools(ctx, &mcpTool.Config{
		Cli:          cli,
		ToolNameList: s.config.ToolFilter,
	})
	if err != nil {
		_ = cli.Close()
		s.status = ServerStatusError
		return fmt.Errorf("[MCP] server %q: failed to list tools: %w", s.name, err)
	}

	s.client = cli
	s.tools = tools
	s.status = ServerStatusConnected

	logger.Info("[MCP] server %q connected with %d tools", s.name, len(tools))
	return nil
}

// Close tears down the connection and releases resources.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		if err := s.client.Close(); err != nil {
			logger.Warn("[MCP] server %q: failed to close client: %v", s.name, err)
		}
		s.client = nil
	}

	s.tools = nil
	s.status = ServerStatusDisconnected
}

// createClient creates a transport-specific MCP client.
// Must be called with s.mu held.
func (s *Server) createClient() (client.MCPClient, error) {
	switch s.config.Transport {
	case "stdio", "":
		return client.NewStdioMCPClient(s.config.Command, s.config.Env, s.config.Args...)
	case "sse":
		return client.NewSSEMCPClient(s.config.URL)
	default:
		return nil, fmt.Errorf("unknown transport: %s", s.config.Transport)
	}
}
