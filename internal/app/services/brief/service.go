// Package brief records mission briefs submitted for catalog modules.
package brief

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/aimarket/storefront/internal/app/domain/brief"
	"github.com/aimarket/storefront/internal/app/storage"
	"github.com/aimarket/storefront/pkg/logger"
)

// ErrMissingModule is returned when a submission omits the module id.
var ErrMissingModule = errors.New("Missing module")

// NameResolver resolves a module id to its display name.
type NameResolver interface {
	DisplayName(id string) string
}

// Input is a brief submission. Only Module is required.
type Input struct {
	Module     string
	ModuleName string
	Outputs    []string
	Context    string
	Goals      string
	Sources    []string
}

// Service validates submissions and appends them to the bounded brief log.
type Service struct {
	names NameResolver
	store storage.BriefLog
	log   *logger.Logger

	now func() time.Time
}

// New constructs a brief service.
func New(names NameResolver, store storage.BriefLog, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("brief")
	}
	return &Service{
		names: names,
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Submit records a brief. Missing optional fields default to empty values;
// the module name is resolved from the catalog when not supplied.
func (s *Service) Submit(ctx context.Context, in Input) (brief.Brief, error) {
	module := strings.TrimSpace(in.Module)
	if module == "" {
		return brief.Brief{}, ErrMissingModule
	}

	name := strings.TrimSpace(in.ModuleName)
	if name == "" {
		name = s.names.DisplayName(module)
	}

	now := s.now()
	b := brief.Brief{
		ID:         "BRF-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36)),
		Module:     module,
		ModuleName: name,
		Outputs:    emptyIfNil(in.Outputs),
		Context:    in.Context,
		Goals:      in.Goals,
		Sources:    emptyIfNil(in.Sources),
		CreatedAt:  now,
	}

	s.store.RecordBrief(b)
	s.log.WithField("brief_id", b.ID).
		WithField("module", b.Module).
		Info("brief recorded")
	return b, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
