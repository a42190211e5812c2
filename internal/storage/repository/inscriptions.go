package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mentesana/landing-api/internal/models"
)

// CreateInscription appends a lead and returns its id. The timestamp is
// assigned by the database.
func (s *Storage) CreateInscription(ctx context.Context, lead models.NewLead) (int, error) {
	const op = "storage.CreateInscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO inscripciones (nombre, correo, telefono, mensaje)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		lead.Name, lead.Email, nullString(lead.Phone), nullString(lead.Message)).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListInscriptions returns inscriptions newest first. A limit <= 0
// means no limit (the admin full listing).
func (s *Storage) ListInscriptions(ctx context.Context, limit int) ([]*models.Inscription, error) {
	const op = "storage.ListInscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, nombre, correo, telefono, mensaje, fecha
			  FROM inscripciones
			  ORDER BY fecha DESC, id DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.DB.QueryContext(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = s.DB.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Inscription
	for rows.Next() {
		var item models.Inscription
		var phone, message sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &phone, &message, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if phone.Valid {
			item.Phone = &phone.String
		}
		if message.Valid {
			item.Message = &message.String
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteInscription removes a lead. Deleting a missing id succeeds.
func (s *Storage) DeleteInscription(ctx context.Context, id int) error {
	const op = "storage.DeleteInscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM inscripciones WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CountInscriptions returns the total number of leads.
func (s *Storage) CountInscriptions(ctx context.Context) (int, error) {
	const op = "storage.CountInscriptions"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM inscripciones`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// CountInscriptionsByMonth groups inscriptions created at or after
// windowStart by calendar month ("YYYY-MM"). Months with no rows are
// absent from the map; zero-filling happens in lib/month.
func (s *Storage) CountInscriptionsByMonth(ctx context.Context, windowStart time.Time) (map[string]int, error) {
	const op = "storage.CountInscriptionsByMonth"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT to_char(fecha, 'YYYY-MM') AS bucket, COUNT(*)
			  FROM inscripciones
			  WHERE fecha >= $1
			  GROUP BY bucket`
	rows, err := s.DB.QueryContext(ctx, query, windowStart)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	byMonth := make(map[string]int)
	for rows.Next() {
		var bucket string
		var count int
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		byMonth[bucket] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return byMonth, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
