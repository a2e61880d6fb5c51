// Package activation issues activation tokens for paid or demo modules.
package activation

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/aimarket/storefront/internal/app/domain/activation"
	"github.com/aimarket/storefront/internal/app/storage"
	"github.com/aimarket/storefront/pkg/logger"
)

// ErrMissingModule is returned when a demo activation omits the module id.
var ErrMissingModule = errors.New("Missing moduleId")

// Validity is how long an issued activation token stays valid.
const Validity = 72 * time.Hour

// tokenBytes is the number of random bytes in a token (80 bits).
const tokenBytes = 10

// NameResolver resolves a module id to its display name.
type NameResolver interface {
	DisplayName(id string) string
}

// Service synthesizes activation tokens and records them in the bounded log.
type Service struct {
	names NameResolver
	store storage.ActivationLog
	log   *logger.Logger

	now    func() time.Time
	random io.Reader
}

// New constructs an activation service.
func New(names NameResolver, store storage.ActivationLog, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("activation")
	}
	return &Service{
		names:  names,
		store:  store,
		log:    log,
		now:    time.Now,
		random: rand.Reader,
	}
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithRandom overrides the randomness source. Intended for tests.
func (s *Service) WithRandom(r io.Reader) *Service {
	s.random = r
	return s
}

// Issue creates an activation for a captured order and records it.
func (s *Service) Issue(ctx context.Context, orderID, referenceID, mode string) (activation.Activation, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return activation.Activation{}, fmt.Errorf("generate token: %w", err)
	}

	now := s.now()
	act := activation.Activation{
		Token:      "AIM-" + strings.ToUpper(referenceID) + "-" + strings.ToUpper(hex.EncodeToString(buf)),
		OrderID:    orderID,
		ModuleID:   referenceID,
		ModuleName: s.names.DisplayName(referenceID),
		ExpiresAt:  now.Add(Validity),
		NextSteps:  nextSteps(),
		Mode:       mode,
		IssuedAt:   now,
	}

	s.store.RecordActivation(act)
	s.log.WithField("module_id", act.ModuleID).
		WithField("order_id", act.OrderID).
		WithField("mode", act.Mode).
		Info("activation issued")
	return act, nil
}

// IssueDemo mints an activation without any provider interaction. The order
// id is synthesized from the current time.
func (s *Service) IssueDemo(ctx context.Context, moduleID string) (activation.Activation, error) {
	moduleID = strings.TrimSpace(moduleID)
	if moduleID == "" {
		return activation.Activation{}, ErrMissingModule
	}
	orderID := "demo-" + strconv.FormatInt(s.now().UnixMilli(), 10)
	return s.Issue(ctx, orderID, moduleID, activation.ModeDemo)
}

func nextSteps() []string {
	return []string{
		"Conservez ce jeton d'activation : il sera demandé par l'agent orchestrateur.",
		"Complétez votre brief (contexte, objectifs, sources) pour démarrer la mission.",
		"Le livrable est généré puis transmis avant l'échéance indiquée sur le module.",
	}
}
