package brief

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	catalogsvc "github.com/aimarket/storefront/internal/app/services/catalog"
	"github.com/aimarket/storefront/internal/app/storage/memory"
)

func newService(store *memory.Store) *Service {
	return New(catalogsvc.New(nil, nil), store, nil)
}

func TestSubmitDefaults(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return created })

	b, err := svc.Submit(context.Background(), Input{Module: "ops-agent"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !strings.HasPrefix(b.ID, "BRF-") {
		t.Fatalf("unexpected brief id: %s", b.ID)
	}
	if b.ID != strings.ToUpper(b.ID) {
		t.Fatalf("brief id must be uppercase: %s", b.ID)
	}
	if b.ModuleName != "Ops IA" {
		t.Fatalf("expected module name resolved from catalog, got %s", b.ModuleName)
	}
	if b.Outputs == nil || b.Sources == nil {
		t.Fatalf("optional lists must default to empty, got %#v", b)
	}
	if len(b.Outputs) != 0 || b.Context != "" || b.Goals != "" {
		t.Fatalf("unexpected defaults: %#v", b)
	}
	if !b.CreatedAt.Equal(created) {
		t.Fatalf("unexpected createdAt: %v", b.CreatedAt)
	}

	if store.BriefCount() != 1 {
		t.Fatalf("expected brief recorded, count=%d", store.BriefCount())
	}
}

func TestSubmitKeepsSuppliedName(t *testing.T) {
	svc := newService(memory.New())

	b, err := svc.Submit(context.Background(), Input{
		Module:     "custom-agent",
		ModuleName: "Custom IA",
		Outputs:    []string{"rapport"},
		Context:    "PME industrielle",
		Goals:      "réduire les délais",
		Sources:    []string{"crm"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if b.ModuleName != "Custom IA" {
		t.Fatalf("supplied name must win, got %s", b.ModuleName)
	}
	if len(b.Outputs) != 1 || len(b.Sources) != 1 {
		t.Fatalf("supplied lists must be kept: %#v", b)
	}
}

func TestSubmitUnknownModuleFallsBack(t *testing.T) {
	svc := newService(memory.New())

	b, err := svc.Submit(context.Background(), Input{Module: "retired-agent"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if b.ModuleName != catalogsvc.FallbackName {
		t.Fatalf("expected fallback name, got %s", b.ModuleName)
	}
}

func TestSubmitRequiresModule(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	if _, err := svc.Submit(context.Background(), Input{Module: " "}); !errors.Is(err, ErrMissingModule) {
		t.Fatalf("expected ErrMissingModule, got %v", err)
	}
	if store.BriefCount() != 0 {
		t.Fatalf("validation failure must not mutate the log")
	}
}
