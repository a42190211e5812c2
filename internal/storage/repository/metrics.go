package repository

import (
	"context"
	"fmt"

	"github.com/mentesana/landing-api/internal/models"
)

// CreateMetricEvent appends a metric event. The event table has no
// update or delete path.
func (s *Storage) CreateMetricEvent(ctx context.Context, metricType string, value float64) (int, error) {
	const op = "storage.CreateMetricEvent"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO metricas (tipo, valor)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int
	if err := s.DB.QueryRowContext(ctx, query, metricType, value).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListMetricEvents returns up to limit events, newest first.
func (s *Storage) ListMetricEvents(ctx context.Context, limit int) ([]*models.MetricEvent, error) {
	const op = "storage.ListMetricEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, tipo, valor, fecha
			  FROM metricas
			  ORDER BY fecha DESC, id DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MetricEvent
	for rows.Next() {
		var item models.MetricEvent
		if err := rows.Scan(&item.ID, &item.Type, &item.Value, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AverageMetricValue returns the average value of events with the given
// type and how many such events exist. count == 0 means no data.
func (s *Storage) AverageMetricValue(ctx context.Context, metricType string) (avg float64, count int, err error) {
	const op = "storage.AverageMetricValue"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(AVG(valor), 0), COUNT(*)
			  FROM metricas
			  WHERE tipo = $1`
	if err := s.DB.QueryRowContext(ctx, query, metricType).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return avg, count, nil
}
