// Package inscription contains the lead-capture business logic.
package inscription

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mentesana/landing-api/internal/cache"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/models"
)

// ErrMissingFields is returned when a lead arrives without a name or
// an email.
var ErrMissingFields = errors.New("nombre and correo are required")

// DefaultRecentLimit bounds the public inscription listing.
const DefaultRecentLimit = 100

// Repository is the storage contract for the inscription ledger.
type Repository interface {
	CreateInscription(ctx context.Context, lead models.NewLead) (int, error)
	ListInscriptions(ctx context.Context, limit int) ([]*models.Inscription, error)
	DeleteInscription(ctx context.Context, id int) error
	CreateMetricEvent(ctx context.Context, metricType string, value float64) (int, error)
}

// Cache invalidates the dashboard rollups after ledger writes.
type Cache interface {
	Invalidate(key string) error
}

// Notifier publishes a lead-created event for the notification sender.
type Notifier interface {
	NotifyLead(lead models.NewLead) error
}

// Service implements the inscription ledger.
type Service struct {
	repo     Repository
	cache    Cache
	notifier Notifier
	log      *slog.Logger
}

// New creates the inscription service. notifier may be nil when the
// broker is not configured.
func New(repo Repository, cache Cache, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		log:      log,
	}
}

// Record appends a lead to the ledger. Name and email are required.
//
// On success it emits a metric event of type "inscripcion" and a
// broker notification, and invalidates the dashboard cache. All three
// are best-effort: a failure is logged and never rolls back or fails
// the inscription.
func (s *Service) Record(ctx context.Context, lead models.NewLead) (int, error) {
	if lead.Name == "" || lead.Email == "" {
		return 0, ErrMissingFields
	}

	id, err := s.repo.CreateInscription(ctx, lead)
	if err != nil {
		return 0, err
	}
	s.log.Info("new inscription recorded", slog.Int("id", id), slog.String("correo", lead.Email))

	if _, err := s.repo.CreateMetricEvent(ctx, models.MetricInscription, 1); err != nil {
		s.log.Warn("failed to emit inscription metric", sl.Err(err))
	}
	if s.notifier != nil {
		if err := s.notifier.NotifyLead(lead); err != nil {
			s.log.Warn("failed to publish lead notification", sl.Err(err))
		}
	}
	s.invalidateRollups()

	return id, nil
}

// ListRecent returns the newest leads, bounded by DefaultRecentLimit
// when limit is not positive.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]*models.Inscription, error) {
	if limit <= 0 || limit > DefaultRecentLimit {
		limit = DefaultRecentLimit
	}
	return s.repo.ListInscriptions(ctx, limit)
}

// ListAll returns the full ledger, newest first. Admin only.
func (s *Service) ListAll(ctx context.Context) ([]*models.Inscription, error) {
	return s.repo.ListInscriptions(ctx, 0)
}

// Delete removes a lead; deleting a missing id succeeds.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.DeleteInscription(ctx, id); err != nil {
		return err
	}
	s.log.Info("inscription deleted", slog.Int("id", id))
	s.invalidateRollups()
	return nil
}

func (s *Service) invalidateRollups() {
	for _, key := range []string{cache.KeyHistogram, cache.KeyHomeSummary} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), sl.Err(err))
		}
	}
}
