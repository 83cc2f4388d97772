package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"studybuddy_backend/internal/llm"
)

// Handler executes a tool call. It receives the JSON-encoded arguments
// and returns the serialized result handed back to the model.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool is a named capability the agent can offer to the model.
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
	Handler     Handler
}

// Registry holds the tools available to agents. Tools are registered
// once at startup in a fixed order; the agent definition then selects
// which of them a given agent carries.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Registering a name twice is an error.
func (r *Registry) Register(t Tool) error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if t.Handler == nil {
		return fmt.Errorf("tool %q: handler is required", t.Name)
	}
	if _, exists := r.tools[t.Name]; exists {
		return fmt.Errorf("tool %q registered twice", t.Name)
	}
	r.tools[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// MustRegister registers a tool and panics on error. Intended for the
// static tool set assembled at startup.
func (r *Registry) MustRegister(t Tool) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Get returns a registered tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns all registered tool names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Defs resolves a selection of tool names into provider tool
// definitions, preserving registration order. An empty selection
// resolves to every registered tool. Unknown names are an error.
func (r *Registry) Defs(names []string) ([]llm.Tool, error) {
	if len(names) == 0 {
		names = r.order
	} else {
		for _, name := range names {
			if _, ok := r.tools[name]; !ok {
				return nil, fmt.Errorf("unknown tool %q in agent definition", name)
			}
		}
		names = r.inOrder(names)
	}

	defs := make([]llm.Tool, 0, len(names))
	for _, name := range names {
		t := r.tools[name]
		defs = append(defs, llm.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		})
	}
	return defs, nil
}

// inOrder filters the registration order down to the selected names.
func (r *Registry) inOrder(selected []string) []string {
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}
	var out []string
	for _, name := range r.order {
		if want[name] {
			out = append(out, name)
		}
	}
	return out
}
