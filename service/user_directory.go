package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dealwish-backend/logging"
	"dealwish-backend/models"
	"dealwish-backend/repository"
)

// UserRepository is the storage the user directory needs
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// UserDirectory maps provider identities to local user records
type UserDirectory struct {
	users  UserRepository
	logger logging.Logger
}

// NewUserDirectory creates a new user directory
func NewUserDirectory(users UserRepository, logger logging.Logger) *UserDirectory {
	if logger == nil {
		logger = logging.Discard()
	}
	return &UserDirectory{users: users, logger: logger}
}

// Resolve returns the user with the given email, creating it on first sight.
// Two first-time requests may race to insert; the unique index on email
// decides the winner and the loser re-reads the winner's row.
func (d *UserDirectory) Resolve(ctx context.Context, email, suggestedName string) (*models.User, error) {
	if d.users == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := d.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{
		Email:        email,
		Name:         displayName(email, suggestedName),
		IsSubscriber: false,
	}

	if err := d.users.Create(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrUniqueViolation) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}

		d.logger.Debug(ctx, "user created by a concurrent request, re-reading", "email", email)
		existing, err := d.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("failed to re-read user after conflict: %w", err)
		}
		return existing, nil
	}

	d.logger.Info(ctx, "user provisioned", "user_id", user.ID)
	return user, nil
}

// displayName prefers the provider profile name and falls back to the
// local part of the email
func displayName(email, suggested string) string {
	if name := strings.TrimSpace(suggested); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(email, "@"); ok && local != "" {
		return local
	}
	return email
}
