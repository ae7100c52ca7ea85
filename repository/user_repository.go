package repository

import (
	"context"
	"errors"
	"fmt"

	"dealwish-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. A duplicate email yields ErrUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, is_subscriber)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, user.Email, user.Name, user.IsSubscriber).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", translateError(err))
	}

	return nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, name, is_subscriber, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.IsSubscriber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err = translateError(err); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// SetSubscriber flips the subscription flag of the user with the given email
func (r *UserRepository) SetSubscriber(ctx context.Context, email string, subscribed bool) (*models.User, error) {
	user := &models.User{}
	query := `
		UPDATE users
		SET is_subscriber = $2, updated_at = now()
		WHERE email = $1
		RETURNING id, email, name, is_subscriber, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, email, subscribed).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.IsSubscriber,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err = translateError(err); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	return user, nil
}
