// Package auth contains the registration and login business logic.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mentesana/landing-api/internal/lib/jwt"
	"github.com/mentesana/landing-api/internal/lib/password"
	"github.com/mentesana/landing-api/internal/models"
	"github.com/mentesana/landing-api/internal/storage/repository"
)

// ErrInvalidCredentials is returned for both an unknown email and a
// wrong password. The two cases are deliberately indistinguishable to
// the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken re-exports the storage sentinel so handlers depend on
// the service package only.
var ErrEmailTaken = repository.ErrEmailTaken

// UserRepository is the storage contract the service needs.
type UserRepository interface {
	// CreateUser stores a new user and returns its id.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail returns a user including the hash, or ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns a user without the hash, or ErrUserNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Service handles registration, login and token issuance.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New creates the auth service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register creates a user with a bcrypt-hashed password and the default
// role, then issues a token so the caller is logged in immediately.
// A duplicate email fails with ErrEmailTaken; under concurrent
// registrations the unique index decides the winner.
func (s *Service) Register(ctx context.Context, name, email, rawPassword string) (string, *models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}
	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", nil, err
	}

	created, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	token, err := s.jwtMaker.GenerateToken(id)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login checks the credentials and issues a token. Unknown email and
// hash mismatch both map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("auth.Login: %w", err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	user.PasswordHash = ""
	return token, user, nil
}
