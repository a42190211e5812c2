package metrics

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentesana/landing-api/internal/models"
)

type mockRepo struct {
	CountInscriptionsByMonthFunc func(ctx context.Context, windowStart time.Time) (map[string]int, error)
	CountInscriptionsFunc        func(ctx context.Context) (int, error)
	CountUsersFunc               func(ctx context.Context) (int, error)
	AverageMetricValueFunc       func(ctx context.Context, metricType string) (float64, int, error)
	SumPurchasesFunc             func(ctx context.Context) (float64, error)
	ListPurchasesFunc            func(ctx context.Context) ([]*models.Purchase, error)
	ListMetricEventsFunc         func(ctx context.Context, limit int) ([]*models.MetricEvent, error)
}

func (m *mockRepo) CountInscriptionsByMonth(ctx context.Context, windowStart time.Time) (map[string]int, error) {
	return m.CountInscriptionsByMonthFunc(ctx, windowStart)
}

func (m *mockRepo) CountInscriptions(ctx context.Context) (int, error) {
	return m.CountInscriptionsFunc(ctx)
}

func (m *mockRepo) CountUsers(ctx context.Context) (int, error) {
	return m.CountUsersFunc(ctx)
}

func (m *mockRepo) AverageMetricValue(ctx context.Context, metricType string) (float64, int, error) {
	return m.AverageMetricValueFunc(ctx, metricType)
}

func (m *mockRepo) SumPurchases(ctx context.Context) (float64, error) {
	return m.SumPurchasesFunc(ctx)
}

func (m *mockRepo) ListPurchases(ctx context.Context) ([]*models.Purchase, error) {
	return m.ListPurchasesFunc(ctx)
}

func (m *mockRepo) ListMetricEvents(ctx context.Context, limit int) ([]*models.MetricEvent, error) {
	return m.ListMetricEventsFunc(ctx, limit)
}

// noopCache never hits and swallows writes.
type noopCache struct{}

func (noopCache) Get(string, any) (bool, error)        { return false, nil }
func (noopCache) Set(string, any, time.Duration) error { return nil }

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func TestService_MonthlyHistogram(t *testing.T) {
	ref := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	t.Run("empty ledger still yields six aligned zero buckets", func(t *testing.T) {
		repo := &mockRepo{
			CountInscriptionsByMonthFunc: func(_ context.Context, windowStart time.Time) (map[string]int, error) {
				assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), windowStart)
				return map[string]int{}, nil
			},
		}
		svc := New(repo, noopCache{}, makeLogger()).WithClock(func() time.Time { return ref })

		got, err := svc.MonthlyHistogram(context.Background())
		require.NoError(t, err)

		assert.Len(t, got.Labels, HistogramWindow)
		assert.Len(t, got.Counts, HistogramWindow)
		assert.Equal(t, []string{"2025-04", "2025-05", "2025-06", "2025-07", "2025-08", "2025-09"}, got.Labels)
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, got.Counts)
	})

	t.Run("one inscription in the current month", func(t *testing.T) {
		repo := &mockRepo{
			CountInscriptionsByMonthFunc: func(_ context.Context, _ time.Time) (map[string]int, error) {
				return map[string]int{"2025-09": 1}, nil
			},
		}
		svc := New(repo, noopCache{}, makeLogger()).WithClock(func() time.Time { return ref })

		got, err := svc.MonthlyHistogram(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []int{0, 0, 0, 0, 0, 1}, got.Counts)
	})
}

func TestService_HomeSummary(t *testing.T) {
	repo := &mockRepo{
		CountInscriptionsFunc: func(_ context.Context) (int, error) { return 31, nil },
		CountUsersFunc:        func(_ context.Context) (int, error) { return 12, nil },
	}

	t.Run("satisfaction averages the events", func(t *testing.T) {
		repo.AverageMetricValueFunc = func(_ context.Context, metricType string) (float64, int, error) {
			assert.Equal(t, models.MetricSatisfaction, metricType)
			return 94.4, 5, nil
		}
		svc := New(repo, noopCache{}, makeLogger())

		got, err := svc.HomeSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 31, got.Students)
		assert.Equal(t, 12, got.Users)
		assert.Equal(t, "94%", got.Satisfaction)
	})

	t.Run("defaults to 98% with no satisfaction events", func(t *testing.T) {
		repo.AverageMetricValueFunc = func(_ context.Context, _ string) (float64, int, error) {
			return 0, 0, nil
		}
		svc := New(repo, noopCache{}, makeLogger())

		got, err := svc.HomeSummary(context.Background())
		require.NoError(t, err)

		assert.Equal(t, DefaultSatisfaction, got.Satisfaction)
	})
}

func TestService_RevenueTotal_CurrencyFormat(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  string
	}{
		{name: "no purchases", total: 0, want: "S/ 0.00"},
		{name: "fractional total", total: 1249.5, want: "S/ 1249.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{
				SumPurchasesFunc: func(_ context.Context) (float64, error) { return tt.total, nil },
			}
			svc := New(repo, noopCache{}, makeLogger())

			got, err := svc.RevenueTotal(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_RecentEvents_BoundsLimit(t *testing.T) {
	var gotLimit int
	repo := &mockRepo{
		ListMetricEventsFunc: func(_ context.Context, limit int) ([]*models.MetricEvent, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := New(repo, noopCache{}, makeLogger())

	_, err := svc.RecentEvents(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultEventsLimit, gotLimit)

	_, err = svc.RecentEvents(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 100, gotLimit)
}
