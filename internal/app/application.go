// Package app ties the storefront services together and manages their
// lifecycle.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/aimarket/storefront/internal/app/domain/catalog"
	activationsvc "github.com/aimarket/storefront/internal/app/services/activation"
	briefsvc "github.com/aimarket/storefront/internal/app/services/brief"
	catalogsvc "github.com/aimarket/storefront/internal/app/services/catalog"
	paymentsvc "github.com/aimarket/storefront/internal/app/services/payment"
	"github.com/aimarket/storefront/internal/app/storage"
	"github.com/aimarket/storefront/internal/app/storage/memory"
	"github.com/aimarket/storefront/internal/app/system"
	"github.com/aimarket/storefront/pkg/logger"
)

// Stores encapsulates the bounded logs. Nil stores default to the in-memory
// implementation.
type Stores struct {
	Activations storage.ActivationLog
	Briefs      storage.BriefLog
}

// Options configures application construction.
type Options struct {
	Credentials paymentsvc.Credentials
	Modules     []catalog.Module
	HTTPClient  *http.Client
}

// Application wires the storefront services together.
type Application struct {
	manager   *system.Manager
	log       *logger.Logger
	startedAt time.Time

	Catalog     *catalogsvc.Service
	Payments    *paymentsvc.Service
	Activations *activationsvc.Service
	Briefs      *briefsvc.Service

	ActivationLog storage.ActivationLog
	BriefLog      storage.BriefLog
}

// New builds a fully initialised application.
func New(stores Stores, opts Options, log *logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NewDefault("app")
	}

	mem := memory.New()
	if stores.Activations == nil {
		stores.Activations = mem
	}
	if stores.Briefs == nil {
		stores.Briefs = mem
	}

	catalogService := catalogsvc.New(opts.Modules, log)
	paymentService := paymentsvc.New(opts.Credentials, opts.HTTPClient, log)
	activationService := activationsvc.New(catalogService, stores.Activations, log)
	briefService := briefsvc.New(catalogService, stores.Briefs, log)

	if !opts.Credentials.Live() {
		log.Warn("Missing PAYPAL_CLIENT_ID or PAYPAL_CLIENT_SECRET. Running in demo-only mode.")
	}

	return &Application{
		manager:       system.NewManager(),
		log:           log,
		startedAt:     time.Now(),
		Catalog:       catalogService,
		Payments:      paymentService,
		Activations:   activationService,
		Briefs:        briefService,
		ActivationLog: stores.Activations,
		BriefLog:      stores.Briefs,
	}, nil
}

// Attach registers an additional lifecycle-managed service. Call before Start.
func (a *Application) Attach(service system.Service) error {
	return a.manager.Register(service)
}

// Start begins all registered services.
func (a *Application) Start(ctx context.Context) error {
	a.startedAt = time.Now()
	return a.manager.Start(ctx)
}

// Stop stops all services.
func (a *Application) Stop(ctx context.Context) error {
	return a.manager.Stop(ctx)
}

// Uptime reports how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startedAt)
}

// MetricsSnapshot is the derived view over the catalog and the bounded logs.
// Nothing is stored; every read recomputes the counts.
type MetricsSnapshot struct {
	CatalogCount    int        `json:"catalogCount"`
	ActivationCount int        `json:"activationCount"`
	BriefCount      int        `json:"briefCount"`
	LastActivation  *time.Time `json:"lastActivation"`
	LastBrief       *time.Time `json:"lastBrief"`
}

// Metrics computes the current snapshot.
func (a *Application) Metrics() MetricsSnapshot {
	snap := MetricsSnapshot{
		CatalogCount:    a.Catalog.Count(),
		ActivationCount: a.ActivationLog.ActivationCount(),
		BriefCount:      a.BriefLog.BriefCount(),
	}
	if ts, ok := a.ActivationLog.LastActivation(); ok {
		snap.LastActivation = &ts
	}
	if ts, ok := a.BriefLog.LastBrief(); ok {
		snap.LastBrief = &ts
	}
	return snap
}
