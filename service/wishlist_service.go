package service

import (
	"context"
	"errors"
	"fmt"

	"dealwish-backend/logging"
	"dealwish-backend/models"
	"dealwish-backend/repository"
	"dealwish-backend/storage"

	"github.com/google/uuid"
)

// WishlistRepository is the storage the wishlist service needs
type WishlistRepository interface {
	Create(ctx context.Context, entry *models.WishlistEntry) error
	GetByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) (*models.WishlistEntry, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	UpdateAlert(ctx context.Context, userID, dealID uuid.UUID, enabled bool) (*models.WishlistEntry, error)
	DeleteByUserAndDeal(ctx context.Context, userID, dealID uuid.UUID) error
}

// WishlistService handles business logic for wishlists
type WishlistService struct {
	wishlistRepo WishlistRepository
	dealRepo     DealRepository
	recorder     *EventRecorder
	images       storage.ImageResolver
	logger       logging.Logger
}

// WishlistServiceOption is a functional option for WishlistService
type WishlistServiceOption func(*WishlistService)

// WithWishlistRepository sets the wishlist repository
func WithWishlistRepository(repo WishlistRepository) WishlistServiceOption {
	return func(s *WishlistService) {
		s.wishlistRepo = repo
	}
}

// WithDealRepository sets the deal repository
func WithDealRepository(repo DealRepository) WishlistServiceOption {
	return func(s *WishlistService) {
		s.dealRepo = repo
	}
}

// WithEventRecorder sets the analytics recorder
func WithEventRecorder(recorder *EventRecorder) WishlistServiceOption {
	return func(s *WishlistService) {
		s.recorder = recorder
	}
}

// WithImageResolver sets the resolver used for deal images in listings
func WithImageResolver(images storage.ImageResolver) WishlistServiceOption {
	return func(s *WishlistService) {
		s.images = images
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) WishlistServiceOption {
	return func(s *WishlistService) {
		s.logger = logger
	}
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(opts ...WishlistServiceOption) *WishlistService {
	s := &WishlistService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

// ListWishlistRequest represents a request to list a user's wishlist
type ListWishlistRequest struct {
	UserID uuid.UUID
}

// ListWishlistResult represents the result of listing a wishlist
type ListWishlistResult struct {
	Items []models.WishlistItem
}

// List returns the user's wishlist joined with deals, oldest entry first
func (s *WishlistService) List(ctx context.Context, req ListWishlistRequest) (*ListWishlistResult, error) {
	if s.wishlistRepo == nil {
		return nil, errors.New("wishlist repository not set")
	}

	items, err := s.wishlistRepo.ListByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	for i := range items {
		resolveDealImage(ctx, s.images, s.logger, &items[i].Deal.Deal)
	}

	return &ListWishlistResult{Items: items}, nil
}

// AddToWishlistRequest represents a request to save a deal
type AddToWishlistRequest struct {
	User         *models.User
	DealID       uuid.UUID
	AlertEnabled bool
}

// AddToWishlistResult represents the result of saving a deal.
// Created is false when the deal was already saved; Entry is then the
// existing row, unchanged.
type AddToWishlistResult struct {
	Entry   *models.WishlistEntry
	Created bool
}

// Add saves a deal to the user's wishlist
func (s *WishlistService) Add(ctx context.Context, req AddToWishlistRequest) (*AddToWishlistResult, error) {
	if s.wishlistRepo == nil {
		return nil, errors.New("wishlist repository not set")
	}
	if s.dealRepo == nil {
		return nil, errors.New("deal repository not set")
	}

	if _, err := s.dealRepo.GetByID(ctx, req.DealID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to look up deal: %w", err)
	}

	existing, err := s.wishlistRepo.GetByUserAndDeal(ctx, req.User.ID, req.DealID)
	if err == nil {
		return &AddToWishlistResult{Entry: existing, Created: false}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up wishlist entry: %w", err)
	}

	if req.AlertEnabled && !req.User.IsSubscriber {
		return nil, ErrSubscriberRequired
	}

	entry := &models.WishlistEntry{
		UserID:       req.User.ID,
		DealID:       req.DealID,
		AlertEnabled: req.AlertEnabled,
	}
	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, fmt.Errorf("failed to add deal to wishlist: %w", err)
	}

	s.recorder.Record(ctx, req.User.ID, req.DealID, models.ActionAdd, map[string]any{
		"alertEnabled": entry.AlertEnabled,
	})

	return &AddToWishlistResult{Entry: entry, Created: true}, nil
}

// RemoveFromWishlistRequest represents a request to remove a saved deal
type RemoveFromWishlistRequest struct {
	UserID uuid.UUID
	DealID uuid.UUID
}

// Remove deletes a deal from the user's wishlist
func (s *WishlistService) Remove(ctx context.Context, req RemoveFromWishlistRequest) error {
	if s.wishlistRepo == nil {
		return errors.New("wishlist repository not set")
	}

	if err := s.wishlistRepo.DeleteByUserAndDeal(ctx, req.UserID, req.DealID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWishlistItemNotFound
		}
		return fmt.Errorf("failed to remove deal from wishlist: %w", err)
	}

	s.recorder.Record(ctx, req.UserID, req.DealID, models.ActionRemove, nil)
	return nil
}

// SetAlertRequest represents a request to toggle the alert flag of a saved deal
type SetAlertRequest struct {
	User         *models.User
	DealID       uuid.UUID
	AlertEnabled bool
}

// SetAlertResult represents the result of toggling an alert
type SetAlertResult struct {
	Entry   *models.WishlistEntry
	Changed bool
}

// SetAlert turns the alert flag of a saved deal on or off.
// Only subscribers may turn it on; anyone may turn it off.
func (s *WishlistService) SetAlert(ctx context.Context, req SetAlertRequest) (*SetAlertResult, error) {
	if s.wishlistRepo == nil {
		return nil, errors.New("wishlist repository not set")
	}

	existing, err := s.wishlistRepo.GetByUserAndDeal(ctx, req.User.ID, req.DealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("failed to look up wishlist entry: %w", err)
	}

	if req.AlertEnabled && !req.User.IsSubscriber {
		return nil, ErrSubscriberRequired
	}

	if existing.AlertEnabled == req.AlertEnabled {
		return &SetAlertResult{Entry: existing, Changed: false}, nil
	}

	updated, err := s.wishlistRepo.UpdateAlert(ctx, req.User.ID, req.DealID, req.AlertEnabled)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWishlistItemNotFound
		}
		return nil, fmt.Errorf("failed to update wishlist alert: %w", err)
	}

	action := models.ActionAlertDisabled
	if updated.AlertEnabled {
		action = models.ActionAlertEnabled
	}
	s.recorder.Record(ctx, req.User.ID, req.DealID, action, nil)

	return &SetAlertResult{Entry: updated, Changed: true}, nil
}
