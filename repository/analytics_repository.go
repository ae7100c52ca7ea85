package repository

import (
	"context"
	"fmt"

	"dealwish-backend/models"
)

// AnalyticsRepository appends wishlist analytics events. There is no update
// or delete path.
type AnalyticsRepository struct {
	db DBTX
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db DBTX) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Create appends an event
func (r *AnalyticsRepository) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	query := `
		INSERT INTO wishlist_analytics (user_id, deal_id, action, metadata)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query, event.UserID, event.DealID, string(event.Action), event.Metadata).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create analytics event: %w", translateError(err))
	}

	return nil
}
