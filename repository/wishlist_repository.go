package repository

import (
	"context"
	"errors"
	"fmt"

	"dealwish-backend/models"

	"github.com/google/uuid"
)

// WishlistRepository handles database operations for wishlist entries
type WishlistRepository struct {
	db DBTX
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db DBTX) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Create inserts an entry. A second entry for the same (user, deal) pair
// yields ErrUniqueViolation from wishlist_user_deal_idx.
func (r *WishlistRepository) Create(ctx context.Context, entry *models.WishlistEntry) error {
	query := `
		INSERT INTO wishlist (user_id, deal_id, alert_enabled)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, entry.UserID, entry.DealID, entry.AlertEnabled).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wishlist entry: %w", translateError(err))
	}

	return nil
}

// GetByUserAndDeal retrieves the entry for a (user, deal) pair
func (r *WishlistRepository) GetByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) (*models.WishlistEntry, error) {
	entry := &models.WishlistEntry{}
	query := `
		SELECT id, user_id, deal_id, alert_enabled, created_at
		FROM wishlist
		WHERE user_id = $1 AND deal_id = $2
		LIMIT 1`

	err := r.db.QueryRow(ctx, query, userID, dealID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.DealID,
		&entry.AlertEnabled,
		&entry.CreatedAt,
	)
	if err != nil {
		if err = translateError(err); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist entry: %w", err)
	}

	return entry, nil
}

// ListByUserID retrieves a user's entries joined with their deals, oldest entry first
func (r *WishlistRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	query := `
		SELECT
			w.id, w.user_id, w.deal_id, w.alert_enabled, w.created_at,
			d.id, d.title, d.description, d.original_price::text, d.current_price::text,
			d.discount_percentage, d.image_url, d.merchant_name, d.merchant_url, d.category,
			d.is_active, d.is_expired, d.expires_at, d.created_at, d.updated_at
		FROM wishlist w
		INNER JOIN deals d ON d.id = w.deal_id
		WHERE w.user_id = $1
		ORDER BY w.created_at ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wishlist: %w", err)
	}
	defer rows.Close()

	items := make([]models.WishlistItem, 0)
	for rows.Next() {
		var entry models.WishlistEntry
		var deal models.Deal
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.DealID,
			&entry.AlertEnabled,
			&entry.CreatedAt,
			&deal.ID,
			&deal.Title,
			&deal.Description,
			&deal.OriginalPrice,
			&deal.CurrentPrice,
			&deal.DiscountPercentage,
			&deal.ImageURL,
			&deal.MerchantName,
			&deal.MerchantURL,
			&deal.Category,
			&deal.IsActive,
			&deal.IsExpired,
			&deal.ExpiresAt,
			&deal.CreatedAt,
			&deal.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, models.NewWishlistItem(&entry, &deal))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishlist: %w", err)
	}

	return items, nil
}

// UpdateAlert sets the alert flag on an existing entry and returns the updated row
func (r *WishlistRepository) UpdateAlert(ctx context.Context, userID, dealID uuid.UUID, enabled bool) (*models.WishlistEntry, error) {
	entry := &models.WishlistEntry{}
	query := `
		UPDATE wishlist SET
			alert_enabled = $3
		WHERE user_id = $1 AND deal_id = $2
		RETURNING id, user_id, deal_id, alert_enabled, created_at`

	err := r.db.QueryRow(ctx, query, userID, dealID, enabled).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.DealID,
		&entry.AlertEnabled,
		&entry.CreatedAt,
	)
	if err != nil {
		if err = translateError(err); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update wishlist alert: %w", err)
	}

	return entry, nil
}

// DeleteByUserAndDeal removes the entry for a (user, deal) pair.
// ErrNotFound means there was nothing to delete.
func (r *WishlistRepository) DeleteByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) error {
	query := `DELETE FROM wishlist WHERE user_id = $1 AND deal_id = $2`

	tag, err := r.db.Exec(ctx, query, userID, dealID)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
