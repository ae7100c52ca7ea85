package service

import (
	"context"
	"errors"
	"fmt"

	"dealwish-backend/logging"
	"dealwish-backend/models"
	"dealwish-backend/storage"

	"github.com/google/uuid"
)

// DealRepository is the storage the catalog and the wishlist need
type DealRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Deal, error)
	ListAll(ctx context.Context) ([]*models.Deal, error)
}

// DealCatalog serves the read-only deal listing
type DealCatalog struct {
	deals  DealRepository
	images storage.ImageResolver
	logger logging.Logger
}

// NewDealCatalog creates a new deal catalog. images may be nil, in which case
// image references are returned as stored.
func NewDealCatalog(deals DealRepository, images storage.ImageResolver, logger logging.Logger) *DealCatalog {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DealCatalog{deals: deals, images: images, logger: logger}
}

// ListAll returns every deal, newest first
func (c *DealCatalog) ListAll(ctx context.Context) ([]*models.Deal, error) {
	if c.deals == nil {
		return nil, errors.New("deal repository not set")
	}

	deals, err := c.deals.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}

	for _, deal := range deals {
		resolveDealImage(ctx, c.images, c.logger, deal)
	}

	return deals, nil
}

// resolveDealImage rewrites the deal's image reference into a loadable URL.
// A failure leaves the stored reference in place.
func resolveDealImage(ctx context.Context, images storage.ImageResolver, logger logging.Logger, deal *models.Deal) {
	if images == nil || deal.ImageURL == nil || *deal.ImageURL == "" {
		return
	}

	url, err := images.ResolveURL(ctx, *deal.ImageURL)
	if err != nil {
		logger.Warn(ctx, "failed to resolve deal image", "deal_id", deal.ID, "error", err)
		return
	}
	deal.ImageURL = &url
}
