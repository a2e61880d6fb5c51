// Package payment orchestrates order creation and capture against the
// external payment provider.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aimarket/storefront/internal/app/domain/payment"
	"github.com/aimarket/storefront/pkg/logger"
)

// ErrMissingItem is returned when an order request omits the item id or the
// amount.
var ErrMissingItem = errors.New("Missing item data")

// Service talks to the provider's checkout API. Provider responses are passed
// through to the caller verbatim, status included.
type Service struct {
	creds  Credentials
	client *http.Client
	log    *logger.Logger
}

// New constructs a payment service. A nil client gets a default with a
// 30 second timeout.
func New(creds Credentials, client *http.Client, log *logger.Logger) *Service {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if log == nil {
		log = logger.NewDefault("payment")
	}
	return &Service{
		creds:  creds,
		client: client,
		log:    log,
	}
}

// Live reports whether provider credentials are configured.
func (s *Service) Live() bool {
	return s.creds.Live()
}

// orderRequest is the CAPTURE-intent order body sent to the provider.
type orderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type purchaseUnit struct {
	ReferenceID string      `json:"reference_id"`
	Description string      `json:"description"`
	Amount      orderAmount `json:"amount"`
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// CreateOrder creates a remote payment order for the selected module and
// returns the provider's status and raw JSON body.
func (s *Service) CreateOrder(ctx context.Context, itemID, itemName, amount string) (int, json.RawMessage, error) {
	itemID = strings.TrimSpace(itemID)
	amount = strings.TrimSpace(amount)
	if itemID == "" || amount == "" {
		return 0, nil, ErrMissingItem
	}

	token, err := s.fetchAccessToken(ctx)
	if err != nil {
		return 0, nil, err
	}

	body, err := json.Marshal(orderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: itemID,
			Description: itemName,
			Amount: orderAmount{
				CurrencyCode: "EUR",
				Value:        amount,
			},
		}},
	})
	if err != nil {
		return 0, nil, fmt.Errorf("encode order: %w", err)
	}

	status, raw, err := s.post(ctx, "/v2/checkout/orders", token, body)
	if err != nil {
		return 0, nil, err
	}

	s.log.WithField("item_id", itemID).
		WithField("status", status).
		Info("order created")
	return status, raw, nil
}

// CaptureOrder captures a previously created order. On a success status the
// parsed capture result is returned alongside the raw provider body so the
// caller can attach an activation.
func (s *Service) CaptureOrder(ctx context.Context, orderID string) (int, json.RawMessage, payment.CaptureResult, error) {
	token, err := s.fetchAccessToken(ctx)
	if err != nil {
		return 0, nil, payment.CaptureResult{}, err
	}

	status, raw, err := s.post(ctx, "/v2/checkout/orders/"+orderID+"/capture", token, nil)
	if err != nil {
		return 0, nil, payment.CaptureResult{}, err
	}

	if status < 200 || status > 299 {
		s.log.WithField("order_id", orderID).
			WithField("status", status).
			Warn("capture rejected by provider")
		return status, raw, payment.CaptureResult{}, nil
	}

	result, err := payment.ParseCapture(raw)
	if err != nil {
		return 0, nil, payment.CaptureResult{}, fmt.Errorf("decode capture response: %w", err)
	}
	if result.OrderID == "" {
		result.OrderID = orderID
	}

	s.log.WithField("order_id", orderID).
		WithField("capture_id", result.CaptureID).
		Info("order captured")
	return status, raw, result, nil
}

func (s *Service) post(ctx context.Context, path, token string, body []byte) (int, json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.creds.APIBase+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read provider response: %w", err)
	}
	return resp.StatusCode, json.RawMessage(raw), nil
}
