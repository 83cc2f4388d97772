package agent

import (
	"context"
	"encoding/json"
	"testing"
)

func noopTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: name,
		InputSchema: objectSchema(nil, nil),
		Handler: func(context.Context, json.RawMessage) (string, error) {
			return "ok", nil
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(noopTool("calculate")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	tool, ok := r.Get("calculate")
	if !ok || tool.Name != "calculate" {
		t.Fatalf("Get = %+v, %v", tool, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("Get should miss for unregistered name")
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(noopTool("calculate")); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(noopTool("calculate")); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}

func TestRegistry_RejectsBadTools(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Tool{Name: "", Handler: noopTool("x").Handler}); err == nil {
		t.Error("expected error for empty name")
	}
	if err := r.Register(Tool{Name: "x"}); err == nil {
		t.Error("expected error for nil handler")
	}
}

func TestRegistry_NamesKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.MustRegister(noopTool(name))
	}
	names := r.Names()
	if len(names) != 3 || names[0] != "zeta" || names[1] != "alpha" || names[2] != "mid" {
		t.Errorf("Names = %v", names)
	}
}

func TestRegistry_Defs(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(noopTool("alpha"))
	r.MustRegister(noopTool("beta"))

	all, err := r.Defs(nil)
	if err != nil {
		t.Fatalf("Defs(nil): %v", err)
	}
	if len(all) != 2 || all[0].Name != "alpha" || all[1].Name != "beta" {
		t.Errorf("Defs(nil) = %+v", all)
	}

	one, err := r.Defs([]string{"beta"})
	if err != nil {
		t.Fatalf("Defs: %v", err)
	}
	if len(one) != 1 || one[0].Name != "beta" {
		t.Errorf("Defs([beta]) = %+v", one)
	}

	if _, err := r.Defs([]string{"beta", "missing"}); err == nil {
		t.Error("expected error for unknown tool name")
	}
}
