package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sumsingh11/travelmate/internal/auth"
	"github.com/sumsingh11/travelmate/internal/domain"
	"github.com/sumsingh11/travelmate/internal/repo"
)

// AuthService implements registration, login, and the admin user-management
// surface. Passwords are stored as bcrypt hashes; sessions are stateless
// bearer tokens from the auth issuer.
type AuthService struct {
	users  repo.UserRepo
	issuer *auth.Issuer
}

// NewAuthService constructs an AuthService backed by the provided user repo
// and token issuer.
func NewAuthService(users repo.UserRepo, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Register creates a new local account. The role defaults to Traveller when
// empty; unknown roles are rejected.
// Returns domain.ErrConflict when the email is already registered.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (domain.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return domain.PublicUser{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.PublicUser{}, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < 8 {
		return domain.PublicUser{}, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}
	if role == "" {
		role = domain.RoleTraveller
	}
	if !role.Valid() {
		return domain.PublicUser{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Provider:     "local",
	})
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user.Public(), nil
}

// Login verifies credentials and issues a bearer token.
// A wrong email and a wrong password both map to domain.ErrUnauthorized —
// the response never reveals which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.PublicUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.PublicUser{}, fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthorized)
		}
		return "", domain.PublicUser{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.PublicUser{}, fmt.Errorf("service.AuthService.Login: %w", domain.ErrUnauthorized)
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", domain.PublicUser{}, fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return token, user.Public(), nil
}

// GetProfile returns the credential-free view of the given user.
func (s *AuthService) GetProfile(ctx context.Context, id uuid.UUID) (domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("service.AuthService.GetProfile: %w", err)
	}
	return user.Public(), nil
}

// UpdateProfile changes a user's display name and email and returns the
// updated credential-free view.
// Returns domain.ErrConflict when the email belongs to another account.
func (s *AuthService) UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (domain.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return domain.PublicUser{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.PublicUser{}, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}

	user, err := s.users.UpdateProfile(ctx, id, name, email)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("service.AuthService.UpdateProfile: %w", err)
	}
	return user.Public(), nil
}

// ListUsers returns all registered users, credential-free.
// Always returns a non-nil slice.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AuthService.ListUsers: %w", err)
	}
	out := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// UpdateRole changes a user's role.
// Returns domain.ErrNotFound if the user does not exist.
func (s *AuthService) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (domain.PublicUser, error) {
	if !role.Valid() {
		return domain.PublicUser{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return domain.PublicUser{}, fmt.Errorf("service.AuthService.UpdateRole: %w", err)
	}
	return user.Public(), nil
}

// DeleteUser removes a user account.
// Returns domain.ErrNotFound if the user does not exist.
func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.AuthService.DeleteUser: %w", err)
	}
	return nil
}

// Usage returns the admin usage summary: currently the registered-user count.
func (s *AuthService) Usage(ctx context.Context) (int64, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.AuthService.Usage: %w", err)
	}
	return n, nil
}
