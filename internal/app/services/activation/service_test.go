package activation

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	domain "github.com/aimarket/storefront/internal/app/domain/activation"
	catalogsvc "github.com/aimarket/storefront/internal/app/services/catalog"
	"github.com/aimarket/storefront/internal/app/storage/memory"
)

var tokenPattern = regexp.MustCompile(`^AIM-GROWTH-AGENT-[0-9A-F]{20}$`)

func newService(store *memory.Store) *Service {
	return New(catalogsvc.New(nil, nil), store, nil)
}

func TestIssueTokenShape(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return issued })

	act, err := svc.Issue(context.Background(), "ORDER1", "growth-agent", domain.ModePayPal)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !tokenPattern.MatchString(act.Token) {
		t.Fatalf("unexpected token format: %s", act.Token)
	}
	if act.OrderID != "ORDER1" || act.ModuleID != "growth-agent" || act.ModuleName != "Growth IA" {
		t.Fatalf("unexpected activation: %#v", act)
	}
	if !act.ExpiresAt.Equal(issued.Add(72 * time.Hour)) {
		t.Fatalf("expected expiry 72h after issuance, got %v", act.ExpiresAt)
	}
	if len(act.NextSteps) != 3 {
		t.Fatalf("expected 3 next steps, got %d", len(act.NextSteps))
	}
	if act.Mode != domain.ModePayPal {
		t.Fatalf("expected paypal mode, got %s", act.Mode)
	}

	if store.ActivationCount() != 1 {
		t.Fatalf("expected activation recorded, count=%d", store.ActivationCount())
	}
}

func TestIssueUnknownModuleFallsBack(t *testing.T) {
	svc := newService(memory.New())

	act, err := svc.Issue(context.Background(), "ORDER2", "retired-agent", domain.ModePayPal)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if act.ModuleName != catalogsvc.FallbackName {
		t.Fatalf("expected fallback module name, got %s", act.ModuleName)
	}
}

func TestIssueDemo(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return issued })

	act, err := svc.IssueDemo(context.Background(), "audit-agent")
	if err != nil {
		t.Fatalf("issue demo: %v", err)
	}
	if act.Mode != domain.ModeDemo {
		t.Fatalf("expected demo mode, got %s", act.Mode)
	}
	if want := "demo-" + // epoch millis of the injected clock
		"1740830400000"; act.OrderID != want {
		t.Fatalf("expected order id %s, got %s", want, act.OrderID)
	}
	if !strings.HasPrefix(act.Token, "AIM-AUDIT-AGENT-") {
		t.Fatalf("unexpected token: %s", act.Token)
	}
}

func TestIssueDemoRequiresModule(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	if _, err := svc.IssueDemo(context.Background(), "  "); !errors.Is(err, ErrMissingModule) {
		t.Fatalf("expected ErrMissingModule, got %v", err)
	}
	if store.ActivationCount() != 0 {
		t.Fatalf("validation failure must not mutate the log")
	}
}

func TestIssueRandomFailure(t *testing.T) {
	svc := newService(memory.New())
	svc.WithRandom(failingReader{})

	if _, err := svc.Issue(context.Background(), "ORDER3", "ops-agent", domain.ModeDemo); err == nil {
		t.Fatalf("expected error from failing random source")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}
