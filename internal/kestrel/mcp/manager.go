package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/tool"

	"github.com/kestrelworks/kestrel/internal/pkg/tools"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

// Manager owns the connections to every configured MCP server for one
// session. Startup is all-or-nothing: either every server connects and
// the merged registry is usable, or Initialize fails and every
// connection that did open is closed again. There is no partial
// operation with missing tools.
type Manager struct {
	mu      sync.RWMutex
	servers map[string]*Server
	order   []string // preserves config order
}

// NewManager builds a manager from validated configuration.
func NewManager(cfg *Config) (*Manager, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid MCP configuration: %v", errs)
	}

	m := &Manager{
		servers: make(map[string]*Server, len(cfg.MCPServers)),
		order:   make([]string, 0, len(cfg.MCPServers)),
	}
	for name, srvCfg := range cfg.MCPServers {
		m.servers[name] = NewServer(name, srvCfg)
		m.order = append(m.order, name)
	}
	return m, nil
}

// Initialize connects to all configured servers concurrently. Any
// failure aborts the whole session: every opened connection is closed
// and the error names the unreachable server.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	logger.Info("[MCP] connecting to %d servers...", len(m.servers))

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for _, srv := range m.servers {
		wg.Add(1)
		go func(s *Server) {
			defer wg.Done()
			if err := s.Connect(ctx); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
			}
		}(srv)
	}

	wg.Wait()

	if firstErr != nil {
		for _, srv := range m.servers {
			srv.Close()
		}
		return firstErr
	}

	logger.Info("[MCP] all %d servers connected", len(m.servers))
	return nil
}

// Registry merges the tools published by every connected server into
// one registry, in config order. A tool name shared by two servers is a
// configuration fault.
func (m *Manager) Registry(ctx context.Context) (*tools.Registry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	registry := tools.NewRegistry()
	for _, name := range m.order {
		srv := m.servers[name]
		if srv.Status() != ServerStatusConnected {
			return nil, fmt.Errorf("[MCP] server %q is not connected", name)
		}
		for _, t := range srv.Tools() {
			invokable, ok := t.(tool.InvokableTool)
			if !ok {
				info, _ := t.Info(ctx)
				return nil, fmt.Errorf("[MCP] server %q published a non-invokable tool %v", name, info)
			}
			if err := registry.Register(ctx, invokable, name); err != nil {
				return nil, err
			}
		}
	}
	return registry, nil
}

// ServerNames returns the configured server names in config order.
func (m *Manager) ServerNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]string, len(m.order))
	copy(result, m.order)
	return result
}

// Close closes every server connection.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, srv := range m.servers {
		srv.Close()
	}
	logger.Info("[MCP] all servers closed")
}
