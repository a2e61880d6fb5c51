// Package catalog serves the fixed list of purchasable modules.
package catalog

import (
	"errors"
	"strings"

	"github.com/aimarket/storefront/internal/app/domain/catalog"
	"github.com/aimarket/storefront/pkg/logger"
)

// ErrNotFound is returned when a module id is not in the catalog. The text
// is the API error envelope message.
var ErrNotFound = errors.New("Module not found")

// FallbackName is used for module ids referenced by activations or briefs
// that are not (or no longer) in the catalog.
const FallbackName = "Module IA"

// Service exposes read-only access to the seeded catalog.
type Service struct {
	modules []catalog.Module
	byID    map[string]catalog.Module
	log     *logger.Logger
}

// New builds a catalog service over the provided modules. A nil or empty
// slice seeds the default storefront catalog.
func New(modules []catalog.Module, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("catalog")
	}
	if len(modules) == 0 {
		modules = Seed()
	}

	byID := make(map[string]catalog.Module, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
	}

	return &Service{
		modules: modules,
		byID:    byID,
		log:     log,
	}
}

// List returns every module in catalog order.
func (s *Service) List() []catalog.Module {
	out := make([]catalog.Module, len(s.modules))
	copy(out, s.modules)
	return out
}

// Get looks up a module by id.
func (s *Service) Get(id string) (catalog.Module, error) {
	m, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return catalog.Module{}, ErrNotFound
	}
	return m, nil
}

// DisplayName resolves a module name, falling back to a generic label for
// unknown ids.
func (s *Service) DisplayName(id string) string {
	if m, ok := s.byID[strings.TrimSpace(id)]; ok {
		return m.Name
	}
	return FallbackName
}

// Count returns the number of modules in the catalog.
func (s *Service) Count() int {
	return len(s.modules)
}

// Seed returns the default storefront catalog.
func Seed() []catalog.Module {
	return []catalog.Module{
		{
			ID:          "audit-agent",
			Name:        "Audit IA",
			Description: "Audit automatique de vos données et recommandations actionnables.",
			Deliverable: "Rapport d'audit structuré avec recommandations priorisées.",
			ETA:         "48h",
			Price:       "49.00",
			Tags:        []string{"audit", "data", "quick-win"},
			Inputs:      []string{"export de données", "contexte métier"},
			Outputs:     []string{"rapport d'audit", "liste de recommandations"},
		},
		{
			ID:          "growth-agent",
			Name:        "Growth IA",
			Description: "Plans marketing optimisés par IA avec priorisation des actions.",
			Deliverable: "Plan de croissance trimestriel avec actions priorisées.",
			ETA:         "72h",
			Price:       "79.00",
			Tags:        []string{"growth", "marketing"},
			Inputs:      []string{"objectifs de croissance", "canaux actuels"},
			Outputs:     []string{"plan marketing", "calendrier d'actions"},
		},
		{
			ID:          "ops-agent",
			Name:        "Ops IA",
			Description: "Automatisation des opérations internes et alertes intelligentes.",
			Deliverable: "Workflows d'automatisation et règles d'alerte prêtes à déployer.",
			ETA:         "5 jours",
			Price:       "99.00",
			Tags:        []string{"ops", "automation", "alerting"},
			Inputs:      []string{"cartographie des processus", "outils internes"},
			Outputs:     []string{"workflows automatisés", "règles d'alerte"},
		},
	}
}
