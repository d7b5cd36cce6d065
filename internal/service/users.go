package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillforge/journey-service/internal/auth"
	"github.com/skillforge/journey-service/internal/models"
)

// Register creates a new user with a hashed password. The plaintext is
// hashed immediately and never stored or logged.
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, mapStoreErr(err)
	}

	if s.mailer != nil && user.Email != "" {
		go func(to, username string) {
			if err := s.mailer.SendWelcome(to, username); err != nil {
				s.log.Warnf("Failed to send welcome email: %v", err)
			}
		}(user.Email, user.Username)
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login authenticates a user by username or email and returns a signed
// bearer token. Unknown login and wrong password produce the same
// error.
func (s *Service) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", fmt.Errorf("%w: login and password are required", ErrValidation)
	}

	user, err := s.store.FindUserByLogin(ctx, login)
	if err != nil {
		if err = mapStoreErr(err); errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return token, nil
}

// Logout writes the token's jti into the revocation ledger. Revoking
// an already-revoked token succeeds.
func (s *Service) Logout(ctx context.Context, jti string) error {
	if err := s.store.RevokeToken(ctx, jti); err != nil {
		return mapStoreErr(err)
	}
	s.log.Infof("Token revoked: %s", jti)
	return nil
}
