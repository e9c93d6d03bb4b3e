// Package tools provides the tool registry the agent executes against,
// plus the in-process tool implementations.
package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// Binding associates a tool's spec with its executable implementation and
// the source it was registered from ("local" or an MCP server name).
type Binding struct {
	Info   *schema.ToolInfo
	Tool   tool.InvokableTool
	Source string
}

// Registry is a name-indexed collection of tool bindings. Registration
// order is preserved for display. Duplicate names are a configuration
// fault: registration fails rather than overwriting.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]*Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Binding)}
}

// Register adds a tool under the name declared by its spec.
func (r *Registry) Register(ctx context.Context, t tool.InvokableTool, source string) error {
	info, err := t.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to read tool info from %s: %w", source, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[info.Name]; ok {
		return fmt.Errorf("duplicate tool name %q: already registered from %s, rejected from %s",
			info.Name, existing.Source, source)
	}

	r.byName[info.Name] = &Binding{Info: info, Tool: t, Source: source}
	r.order = append(r.order, info.Name)
	return nil
}

// Lookup resolves a tool by name.
func (r *Registry) Lookup(name string) (*Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byName[name]
	return b, ok
}

// List returns all bindings in registration order.
func (r *Registry) List() []*Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Binding, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Specs returns the tool specs in registration order, in the shape the
// chat model binds against.
func (r *Registry) Specs() []*schema.ToolInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name].Info)
	}
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports how many tools are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Merge adds every binding from other into r. A name collision across
// the two registries is an error; r is left with everything merged up to
// the collision, so callers treat any error as fatal at startup.
func (r *Registry) Merge(other *Registry) error {
	for _, b := range other.List() {
		r.mu.Lock()
		if existing, ok := r.byName[b.Info.Name]; ok {
			r.mu.Unlock()
			return fmt.Errorf("duplicate tool name %q: provided by both %s and %s",
				b.Info.Name, existing.Source, b.Source)
		}
		r.byName[b.Info.Name] = b
		r.order = append(r.order, b.Info.Name)
		r.mu.Unlock()
	}
	return nil
}

// Execute runs a tool synchronously and always returns text. Unknown
// tools and execution errors come back as failure strings: the result is
// fed to the model, which can only read text.
func (r *Registry) Execute(ctx context.Context, name, argumentsJSON string) string {
	b, ok := r.Lookup(name)
	if !ok {
		return fmt.Sprintf("Error: unknown tool %q. Available tools: %v", name, r.Names())
	}

	out, err := b.Tool.InvokableRun(ctx, argumentsJSON)
	if err != nil {
		return fmt.Sprintf("Error executing tool %q: %v", name, err)
	}
	return out
}
