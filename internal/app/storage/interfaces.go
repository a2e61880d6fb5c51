// Package storage defines the persistence interfaces for the storefront.
package storage

import (
	"time"

	"github.com/aimarket/storefront/internal/app/domain/activation"
	"github.com/aimarket/storefront/internal/app/domain/brief"
)

// ActivationLog keeps the most recent activations, newest first.
type ActivationLog interface {
	RecordActivation(act activation.Activation)
	ListActivations() []activation.Activation
	ActivationCount() int
	LastActivation() (time.Time, bool)
}

// BriefLog keeps the most recent briefs, newest first.
type BriefLog interface {
	RecordBrief(b brief.Brief)
	ListBriefs() []brief.Brief
	BriefCount() int
	LastBrief() (time.Time, bool)
}
