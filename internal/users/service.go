package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"careerpilot-backend/internal/shared/auth"
	"careerpilot-backend/internal/shared/telemetry"
)

// Service implements signup and login on top of a Repo.
type Service struct {
	Repo Repo
}

// Signup registers a new account and returns the user with a signed token.
func (s *Service) Signup(ctx context.Context, username, email, password string) (User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" {
		return User{}, "", fmt.Errorf("%w: username and email are required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return User{}, "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if len(password) < 6 {
		return User{}, "", fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("hash password: %w", err)
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return User{}, "", err
	}

	token, err := s.token(u)
	if err != nil {
		return User{}, "", err
	}

	telemetry.Info("user.signup", map[string]any{"user_id": u.ID})
	return u, token, nil
}

// Login verifies credentials and returns the user with a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return User{}, "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrNotFound {
			return User{}, "", ErrInvalidCredentials
		}
		return User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, "", ErrInvalidCredentials
	}

	token, err := s.token(u)
	if err != nil {
		return User{}, "", err
	}

	telemetry.Info("user.login", map[string]any{"user_id": u.ID})
	return u, token, nil
}

// GetByID returns the user for a verified token subject.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) token(u User) (string, error) {
	return auth.SignJWT(auth.Claims{Sub: u.ID, Username: u.Username, Email: u.Email})
}
