package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulsard/pulsard-api/internal/domain"
	"github.com/pulsard/pulsard-api/internal/service/auth"
	"github.com/pulsard/pulsard-api/internal/store"
)

// UserService handles account registration, login, and listing.
type UserService struct {
	users    store.UserStore
	tokens   auth.TokenAuthority
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(
	users store.UserStore,
	tokens auth.TokenAuthority,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *UserService {
	return &UserService{
		users:    users,
		tokens:   tokens,
		verifier: verifier,
		logger:   log.With("component", "user_service"),
	}
}

// Register creates a new account and issues a credential for it. A taken
// username surfaces as store.ErrUsernameExists; the caller reports it and
// the process stays alive.
func (s *UserService) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, string, error) {
	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, "", err
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	credential, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue credential: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, credential, nil
}

// Login verifies the password for the username and issues a fresh
// credential. Unknown username and wrong password both return
// ErrInvalidCredentials.
func (s *UserService) Login(
	ctx context.Context,
	username, password string,
) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	credential, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue credential: %w", err)
	}

	s.logger.Debug("user logged in", "user_id", user.ID)
	return user, credential, nil
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
