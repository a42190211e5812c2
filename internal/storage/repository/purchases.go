package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mentesana/landing-api/internal/models"
)

// ListPurchases returns all purchases newest first, left-joined with
// the owner's name and email. Purchases of deleted users survive with
// the owner fields empty.
func (s *Storage) ListPurchases(ctx context.Context) ([]*models.Purchase, error) {
	const op = "storage.ListPurchases"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.id, c.usuario_id, c.plan, c.monto, c.fecha, u.nombre, u.correo
			  FROM compras c
			  LEFT JOIN usuarios u ON u.id = c.usuario_id
			  ORDER BY c.fecha DESC, c.id DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Purchase
	for rows.Next() {
		var item models.Purchase
		var userID, name, email sql.NullString
		if err := rows.Scan(&item.ID, &userID, &item.Plan, &item.Amount, &item.PaidAt, &name, &email); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if userID.Valid {
			item.UserID = &userID.String
		}
		if name.Valid {
			item.UserName = &name.String
		}
		if email.Valid {
			item.UserEmail = &email.String
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SumPurchases returns the total amount across all purchases.
func (s *Storage) SumPurchases(ctx context.Context) (float64, error) {
	const op = "storage.SumPurchases"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var total float64
	query := `SELECT COALESCE(SUM(monto), 0) FROM compras`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
