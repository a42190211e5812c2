// Package metrics derives the dashboard rollups: the six-month
// inscription histogram, the home-page summary, the revenue total and
// the recent event feed.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	rediscache "github.com/mentesana/landing-api/internal/cache"
	"github.com/mentesana/landing-api/internal/lib/month"
	"github.com/mentesana/landing-api/internal/lib/sl"
	"github.com/mentesana/landing-api/internal/models"
)

// HistogramWindow is the number of calendar months in the inscription
// histogram, the current month included.
const HistogramWindow = 6

// DefaultEventsLimit bounds the admin metric event feed.
const DefaultEventsLimit = 500

// DefaultSatisfaction is shown when no satisfaction events exist yet.
const DefaultSatisfaction = "98%"

// Home-page display constants with no backing table.
const (
	coursesCount   = 4
	countriesCount = 12
)

const cacheTTL = 5 * time.Minute

// Histogram is the six-month inscription chart feed. Labels and Counts
// are positionally aligned and always exactly HistogramWindow long.
type Histogram struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// HomeSummary feeds the landing page counters.
type HomeSummary struct {
	Students     int    `json:"alumnos"`
	Users        int    `json:"usuarios"`
	Courses      int    `json:"cursos"`
	Countries    int    `json:"paises"`
	Satisfaction string `json:"satisfaccion"`
}

// Repository is the storage contract for the aggregator.
type Repository interface {
	CountInscriptionsByMonth(ctx context.Context, windowStart time.Time) (map[string]int, error)
	CountInscriptions(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	AverageMetricValue(ctx context.Context, metricType string) (avg float64, count int, err error)
	SumPurchases(ctx context.Context) (float64, error)
	ListPurchases(ctx context.Context) ([]*models.Purchase, error)
	ListMetricEvents(ctx context.Context, limit int) ([]*models.MetricEvent, error)
}

// Cache holds computed rollups between ledger writes.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// Service implements the metrics aggregator.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// New creates the metrics service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// WithClock replaces the service clock; used in tests to pin the
// histogram window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// MonthlyHistogram returns inscription counts grouped by the
// HistogramWindow most recent calendar months ending at the current
// month, ascending, months without data zero-filled. Both arrays have
// exactly HistogramWindow entries regardless of data sparsity.
func (s *Service) MonthlyHistogram(ctx context.Context) (*Histogram, error) {
	var cached Histogram
	if found, err := s.cache.Get(rediscache.KeyHistogram, &cached); err != nil {
		s.log.Warn("histogram cache read failed", sl.Err(err))
	} else if found {
		return &cached, nil
	}

	ref := s.now()
	byMonth, err := s.repo.CountInscriptionsByMonth(ctx, month.WindowStart(ref, HistogramWindow))
	if err != nil {
		return nil, err
	}

	labels := month.LastN(ref, HistogramWindow)
	result := &Histogram{
		Labels: labels,
		Counts: month.FillCounts(labels, byMonth),
	}

	if err := s.cache.Set(rediscache.KeyHistogram, result, cacheTTL); err != nil {
		s.log.Warn("histogram cache write failed", sl.Err(err))
	}
	return result, nil
}

// HomeSummary returns the landing-page counters. Satisfaction is the
// rounded average of "satisfaccion" metric events as an integer
// percent, or DefaultSatisfaction when none exist.
func (s *Service) HomeSummary(ctx context.Context) (*HomeSummary, error) {
	var cached HomeSummary
	if found, err := s.cache.Get(rediscache.KeyHomeSummary, &cached); err != nil {
		s.log.Warn("home summary cache read failed", sl.Err(err))
	} else if found {
		return &cached, nil
	}

	students, err := s.repo.CountInscriptions(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	satisfaction := DefaultSatisfaction
	avg, count, err := s.repo.AverageMetricValue(ctx, models.MetricSatisfaction)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		satisfaction = fmt.Sprintf("%d%%", int(math.Round(avg)))
	}

	result := &HomeSummary{
		Students:     students,
		Users:        users,
		Courses:      coursesCount,
		Countries:    countriesCount,
		Satisfaction: satisfaction,
	}

	if err := s.cache.Set(rediscache.KeyHomeSummary, result, cacheTTL); err != nil {
		s.log.Warn("home summary cache write failed", sl.Err(err))
	}
	return result, nil
}

// RevenueTotal returns the sum of all purchases formatted as currency.
func (s *Service) RevenueTotal(ctx context.Context) (string, error) {
	total, err := s.repo.SumPurchases(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("S/ %.2f", total), nil
}

// Purchases returns every purchase with the owner joined in, newest
// first.
func (s *Service) Purchases(ctx context.Context) ([]*models.Purchase, error) {
	return s.repo.ListPurchases(ctx)
}

// RecentEvents returns up to limit metric events, newest first,
// bounded by DefaultEventsLimit.
func (s *Service) RecentEvents(ctx context.Context, limit int) ([]*models.MetricEvent, error) {
	if limit <= 0 || limit > DefaultEventsLimit {
		limit = DefaultEventsLimit
	}
	return s.repo.ListMetricEvents(ctx, limit)
}
