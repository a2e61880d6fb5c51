// Package httpapi exposes the storefront REST API and HTML page.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	app "github.com/aimarket/storefront/internal/app"
	"github.com/aimarket/storefront/internal/app/domain/activation"
	"github.com/aimarket/storefront/internal/app/metrics"
	activationsvc "github.com/aimarket/storefront/internal/app/services/activation"
	briefsvc "github.com/aimarket/storefront/internal/app/services/brief"
	catalogsvc "github.com/aimarket/storefront/internal/app/services/catalog"
	paymentsvc "github.com/aimarket/storefront/internal/app/services/payment"
)

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app  *app.Application
	page *page
}

// NewHandler returns a router exposing the storefront API.
func NewHandler(application *app.Application, clientID string) http.Handler {
	h := &handler{
		app:  application,
		page: newPage(application.Catalog.List(), clientID),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", h.index).Methods(http.MethodGet)
	r.HandleFunc("/assets/styles.css", h.styles).Methods(http.MethodGet)

	r.HandleFunc("/api/catalog", h.catalog).Methods(http.MethodGet)
	r.HandleFunc("/api/modules/{id}", h.module).Methods(http.MethodGet)
	r.HandleFunc("/api/activations", h.activations).Methods(http.MethodGet)
	r.HandleFunc("/api/briefs", h.listBriefs).Methods(http.MethodGet)
	r.HandleFunc("/api/briefs", h.submitBrief).Methods(http.MethodPost)
	r.HandleFunc("/api/metrics", h.metrics).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/api/demo-activation", h.demoActivation).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", h.createOrder).Methods(http.MethodPost)
	r.HandleFunc("/api/orders/{id}/capture", h.captureOrder).Methods(http.MethodPost)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// The original server answered every unmatched route with a bare text
	// 404, method mismatches included.
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFound)

	return r
}

func (h *handler) catalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": h.app.Catalog.List()})
}

func (h *handler) module(w http.ResponseWriter, r *http.Request) {
	m, err := h.app.Catalog.Get(mux.Vars(r)["id"])
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, catalogsvc.ErrNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item": m})
}

func (h *handler) activations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": h.app.ActivationLog.ListActivations()})
}

func (h *handler) listBriefs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": h.app.BriefLog.ListBriefs()})
}

func (h *handler) submitBrief(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Module     string   `json:"module"`
		ModuleName string   `json:"moduleName"`
		Outputs    []string `json:"outputs"`
		Context    string   `json:"context"`
		Goals      string   `json:"goals"`
		Sources    []string `json:"sources"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	b, err := h.app.Briefs.Submit(r.Context(), briefsvc.Input{
		Module:     payload.Module,
		ModuleName: payload.ModuleName,
		Outputs:    payload.Outputs,
		Context:    payload.Context,
		Goals:      payload.Goals,
		Sources:    payload.Sources,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, briefsvc.ErrMissingModule) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	metrics.RecordBrief()
	writeJSON(w, http.StatusOK, map[string]any{"brief": b})
}

func (h *handler) metrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Metrics())
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "ok",
		"uptime":           h.app.Uptime().String(),
		"now":              time.Now().UTC().Format(time.RFC3339),
		"paypalConfigured": h.app.Payments.Live(),
	})
}

func (h *handler) demoActivation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ModuleID string `json:"moduleId"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	act, err := h.app.Activations.IssueDemo(r.Context(), payload.ModuleID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, activationsvc.ErrMissingModule) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	metrics.RecordActivationIssued(act.Mode)
	writeJSON(w, http.StatusOK, map[string]any{"activation": act, "demo": true})
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID   string `json:"itemId"`
		ItemName string `json:"itemName"`
		Amount   string `json:"amount"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	status, raw, err := h.app.Payments.CreateOrder(r.Context(), payload.ItemID, payload.ItemName, payload.Amount)
	if err != nil {
		if errors.Is(err, paymentsvc.ErrMissingItem) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordOrderCreated(status)
	writeRaw(w, status, raw)
}

func (h *handler) captureOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	status, raw, capture, err := h.app.Payments.CaptureOrder(r.Context(), orderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.RecordOrderCaptured(status)

	if status < 200 || status > 299 {
		writeRaw(w, status, raw)
		return
	}

	act, err := h.app.Activations.Issue(r.Context(), capture.OrderID, capture.ReferenceID, activation.ModePayPal)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.RecordActivationIssued(act.Mode)

	merged, err := mergeActivation(raw, act)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeRaw(w, status, merged)
}

// mergeActivation attaches the activation to the provider's capture payload
// so the response stays a pass-through of the provider body plus one key.
func mergeActivation(raw json.RawMessage, act activation.Activation) (json.RawMessage, error) {
	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, err
		}
	}
	payload["activation"] = act
	return json.Marshal(payload)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not found"))
}

// decodeJSON treats an empty body as an empty object, so that required-field
// validation reports the missing field rather than a parse error.
func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
