package provider

import (
	"strings"
	"testing"
)

// extProvider matches by extension suffix via the embedded Base.
type extProvider struct {
	Base
}

func newExtProvider(name string, extensions []string, priority int) extProvider {
	return extProvider{Base: NewBase(name, extensions, priority)}
}

// bareProvider implements only the required contract: no extensions, no priority.
type bareProvider struct {
	name string
	keys map[string]bool
}

func (p bareProvider) Name() string             { return p.name }
func (p bareProvider) Supports(key string) bool { return p.keys[key] }

func TestBaseName(t *testing.T) {
	p := newExtProvider("text", []string{".txt"}, 0)
	if p.Name() != "text" {
		t.Errorf("expected name 'text', got %q", p.Name())
	}
}

func TestBaseSupports(t *testing.T) {
	p := newExtProvider("test", []string{".test", ".spec"}, 0)
	if !p.Supports("file.test") {
		t.Error("expected .test to be supported")
	}
	if !p.Supports("file.spec") {
		t.Error("expected .spec to be supported")
	}
	if p.Supports("file.txt") {
		t.Error("expected .txt to be unsupported")
	}
}

func TestBaseSupportsNoExtensions(t *testing.T) {
	p := newExtProvider("empty", nil, 0)
	if p.Supports("anything") {
		t.Error("a provider without extensions must not match by default")
	}
}

func TestExtensionsOf(t *testing.T) {
	ext := newExtProvider("test", []string{".a"}, 0)
	if got := ExtensionsOf(ext); len(got) != 1 || got[0] != ".a" {
		t.Errorf("expected [.a], got %v", got)
	}
	bare := bareProvider{name: "bare"}
	if got := ExtensionsOf(bare); got != nil {
		t.Errorf("expected nil for a provider without extensions, got %v", got)
	}
}

func TestPriorityOf(t *testing.T) {
	ext := newExtProvider("test", nil, 7)
	if got := PriorityOf(ext); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	bare := bareProvider{name: "bare"}
	if got := PriorityOf(bare); got != 0 {
		t.Errorf("expected default priority 0, got %d", got)
	}
}

func TestDowncast(t *testing.T) {
	var p Provider = newExtProvider("test", []string{".test"}, 0)

	if !Is[extProvider](p) {
		t.Error("expected Is to identify the concrete type")
	}
	if Is[bareProvider](p) {
		t.Error("Is must not match a different concrete type")
	}

	concrete, ok := As[extProvider](p)
	if !ok {
		t.Fatal("expected As to downcast")
	}
	if !strings.HasPrefix(concrete.Name(), "test") {
		t.Errorf("unexpected provider after downcast: %q", concrete.Name())
	}

	if _, ok := As[bareProvider](p); ok {
		t.Error("As must fail for a different concrete type")
	}
}
