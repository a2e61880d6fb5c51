// Package memory provides the in-memory implementation of the storage
// interfaces. Logs are bounded and evict their oldest entry once full.
package memory

import (
	"sync"
	"time"

	"github.com/aimarket/storefront/internal/app/domain/activation"
	"github.com/aimarket/storefront/internal/app/domain/brief"
	"github.com/aimarket/storefront/internal/app/storage"
)

// Default capacities for the bounded logs.
const (
	DefaultActivationCapacity = 8
	DefaultBriefCapacity      = 6
)

// Store holds the bounded activation and brief logs. Safe for concurrent use.
type Store struct {
	mu            sync.RWMutex
	activationCap int
	briefCap      int
	activations   []activation.Activation
	briefs        []brief.Brief
}

var _ storage.ActivationLog = (*Store)(nil)
var _ storage.BriefLog = (*Store)(nil)

// New creates a store with the default capacities.
func New() *Store {
	return NewWithCapacity(DefaultActivationCapacity, DefaultBriefCapacity)
}

// NewWithCapacity creates a store with explicit log capacities. Non-positive
// values fall back to the defaults.
func NewWithCapacity(activationCap, briefCap int) *Store {
	if activationCap <= 0 {
		activationCap = DefaultActivationCapacity
	}
	if briefCap <= 0 {
		briefCap = DefaultBriefCapacity
	}
	return &Store{
		activationCap: activationCap,
		briefCap:      briefCap,
	}
}

// ActivationLog implementation ------------------------------------------------

func (s *Store) RecordActivation(act activation.Activation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activations = append([]activation.Activation{act}, s.activations...)
	if len(s.activations) > s.activationCap {
		s.activations = s.activations[:s.activationCap]
	}
}

func (s *Store) ListActivations() []activation.Activation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]activation.Activation, len(s.activations))
	copy(out, s.activations)
	return out
}

func (s *Store) ActivationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activations)
}

func (s *Store) LastActivation() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.activations) == 0 {
		return time.Time{}, false
	}
	return s.activations[0].IssuedAt, true
}

// BriefLog implementation -----------------------------------------------------

func (s *Store) RecordBrief(b brief.Brief) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.briefs = append([]brief.Brief{b}, s.briefs...)
	if len(s.briefs) > s.briefCap {
		s.briefs = s.briefs[:s.briefCap]
	}
}

func (s *Store) ListBriefs() []brief.Brief {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]brief.Brief, len(s.briefs))
	copy(out, s.briefs)
	return out
}

func (s *Store) BriefCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.briefs)
}

func (s *Store) LastBrief() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.briefs) == 0 {
		return time.Time{}, false
	}
	return s.briefs[0].CreatedAt, true
}
