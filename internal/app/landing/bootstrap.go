package landing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mentesana/landing-api/internal/config"
	"github.com/mentesana/landing-api/internal/lib/password"
	"github.com/mentesana/landing-api/internal/models"
	"github.com/mentesana/landing-api/internal/storage/repository"
)

// bootstrapStore is the slice of storage ensureAdmin needs.
type bootstrapStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user models.User) (string, error)
	UpdateUserRole(ctx context.Context, id, role string) error
}

// ensureAdmin guarantees the configured administrator account exists
// with the admin role. A missing account is created, an existing one
// is promoted. Safe to run on every start.
func ensureAdmin(ctx context.Context, store bootstrapStore, cfg config.Admin, log *slog.Logger) error {
	const op = "landing.ensureAdmin"

	if cfg.AdminEmail == "" {
		log.Warn("admin email is empty, skipping admin bootstrap")
		return nil
	}

	existing, err := store.GetUserByEmail(ctx, cfg.AdminEmail)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if existing == nil {
		hash, err := password.GetHash(cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		id, err := store.CreateUser(ctx, models.User{
			Name:         "Administrador",
			Email:        cfg.AdminEmail,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
		})
		if err != nil {
			// Lost a race against a concurrent start; the other
			// instance created the account.
			if errors.Is(err, repository.ErrEmailTaken) {
				return nil
			}
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("admin account created", slog.String("id", id))
		return nil
	}

	if existing.Role != models.RoleAdmin {
		if err := store.UpdateUserRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		log.Info("existing account promoted to admin", slog.String("id", existing.ID))
	}
	return nil
}
