// Package payment models the wire payloads exchanged with the payment
// provider.
package payment

import "encoding/json"

// capturePayload mirrors the subset of the provider capture response the
// storefront cares about. Every nested field may be absent.
type capturePayload struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		ReferenceID string `json:"reference_id"`
		Payments    *struct {
			Captures []struct {
				ID string `json:"id"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

// CaptureResult carries the fields extracted from a successful provider
// capture response. ReferenceID and CaptureID stay empty when the provider
// omitted the corresponding nested fields.
type CaptureResult struct {
	OrderID     string
	Status      string
	ReferenceID string
	CaptureID   string
}

// ParseCapture decodes a provider capture response. Missing purchase units,
// payments, or capture entries are not errors; the matching result fields are
// simply left empty.
func ParseCapture(raw []byte) (CaptureResult, error) {
	var payload capturePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return CaptureResult{}, err
	}

	result := CaptureResult{
		OrderID: payload.ID,
		Status:  payload.Status,
	}

	if len(payload.PurchaseUnits) == 0 {
		return result, nil
	}
	unit := payload.PurchaseUnits[0]
	result.ReferenceID = unit.ReferenceID

	if unit.Payments == nil || len(unit.Payments.Captures) == 0 {
		return result, nil
	}
	result.CaptureID = unit.Payments.Captures[0].ID

	return result, nil
}
