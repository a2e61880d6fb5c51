package catalog

import (
	"errors"
	"testing"
)

func TestSeededCatalog(t *testing.T) {
	svc := New(nil, nil)

	if svc.Count() != 3 {
		t.Fatalf("expected 3 seeded modules, got %d", svc.Count())
	}

	m, err := svc.Get("audit-agent")
	if err != nil {
		t.Fatalf("get audit-agent: %v", err)
	}
	if m.Name != "Audit IA" || m.Price != "49.00" {
		t.Fatalf("unexpected module: %#v", m)
	}

	if _, err := svc.Get("unknown-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDisplayNameFallback(t *testing.T) {
	svc := New(nil, nil)

	if name := svc.DisplayName("growth-agent"); name != "Growth IA" {
		t.Fatalf("expected Growth IA, got %s", name)
	}
	if name := svc.DisplayName("retired-agent"); name != FallbackName {
		t.Fatalf("expected fallback name, got %s", name)
	}
}

func TestListCopies(t *testing.T) {
	svc := New(nil, nil)

	list := svc.List()
	list[0].Name = "mutated"

	if svc.List()[0].Name == "mutated" {
		t.Fatalf("List must return a copy")
	}
}
