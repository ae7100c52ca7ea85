package repository

import (
	"context"
	"errors"
	"fmt"

	"dealwish-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DealRepository handles database operations for deals
type DealRepository struct {
	db DBTX
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db DBTX) *DealRepository {
	return &DealRepository{db: db}
}

const dealColumns = `
		id, title, description, original_price::text, current_price::text,
		discount_percentage, image_url, merchant_name, merchant_url, category,
		is_active, is_expired, expires_at, created_at, updated_at`

func scanDeal(row pgx.Row, deal *models.Deal) error {
	return row.Scan(
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
}

// Create inserts a deal. Only the seeding command writes deals.
func (r *DealRepository) Create(ctx context.Context, deal *models.Deal) error {
	query := `
		INSERT INTO deals (
			title, description, original_price, current_price, discount_percentage,
			image_url, merchant_name, merchant_url, category,
			is_active, is_expired, expires_at
		) VALUES (
			$1, $2, $3::numeric, $4::numeric, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		deal.Title,
		deal.Description,
		deal.OriginalPrice,
		deal.CurrentPrice,
		deal.DiscountPercentage,
		deal.ImageURL,
		deal.MerchantName,
		deal.MerchantURL,
		deal.Category,
		deal.IsActive,
		deal.IsExpired,
		deal.ExpiresAt,
	).Scan(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", translateError(err))
	}

	return nil
}

// GetByID retrieves a deal by ID
func (r *DealRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Deal, error) {
	deal := &models.Deal{}
	query := `SELECT` + dealColumns + `
		FROM deals
		WHERE id = $1`

	if err := scanDeal(r.db.QueryRow(ctx, query, id), deal); err != nil {
		if err = translateError(err); errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}

	return deal, nil
}

// ListAll retrieves every deal, newest first
func (r *DealRepository) ListAll(ctx context.Context) ([]*models.Deal, error) {
	query := `SELECT` + dealColumns + `
		FROM deals
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	deals := make([]*models.Deal, 0)
	for rows.Next() {
		deal := &models.Deal{}
		if err := scanDeal(rows, deal); err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deals: %w", err)
	}

	return deals, nil
}

// Count returns the number of deals
func (r *DealRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM deals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count deals: %w", err)
	}
	return n, nil
}
