// Package user contains the admin-side user management logic.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mentesana/landing-api/internal/models"
)

// ErrInvalidRole is returned when a role update names a role outside
// the supported set.
var ErrInvalidRole = errors.New("invalid role")

// Repository is the storage contract for user administration.
type Repository interface {
	// ListUsers returns all users, newest registration first.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// UpdateUserRole sets a user's role; missing ids are a no-op.
	UpdateUserRole(ctx context.Context, id, role string) error
	// DeleteUser removes a user; missing ids succeed.
	DeleteUser(ctx context.Context, id string) error
}

// Service implements admin user management.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New creates the user admin service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns all users, newest first, without hashes.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateRole validates the role and applies it. Updating a missing id
// reports success (idempotent), an unknown role fails with
// ErrInvalidRole.
func (s *Service) UpdateRole(ctx context.Context, id, role string) error {
	if !models.ValidRole(role) {
		return ErrInvalidRole
	}
	if err := s.repo.UpdateUserRole(ctx, id, role); err != nil {
		return err
	}
	s.log.Info("user role updated", slog.String("user_id", id), slog.String("role", role))
	return nil
}

// Delete removes a user. Existing tokens for the deleted user keep
// failing at the auth middleware's live lookup; there is no token
// revocation beyond that.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted", slog.String("user_id", id))
	return nil
}
