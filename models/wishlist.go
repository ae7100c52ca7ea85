package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry represents a saved (user, deal) pair
type WishlistEntry struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	DealID       uuid.UUID `json:"dealId"`
	AlertEnabled bool      `json:"alertEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
}

// WishlistDeal is a deal annotated with the fields derived for wishlist views
type WishlistDeal struct {
	Deal
	BestAvailablePrice string     `json:"bestAvailablePrice"`
	Status             DealStatus `json:"status"`
}

// WishlistItem is a wishlist entry joined with its deal
type WishlistItem struct {
	ID           uuid.UUID    `json:"id"`
	DealID       uuid.UUID    `json:"dealId"`
	AlertEnabled bool         `json:"alertEnabled"`
	CreatedAt    time.Time    `json:"createdAt"`
	Deal         WishlistDeal `json:"deal"`
}

// NewWishlistItem joins an entry with its deal and fills in the derived fields
func NewWishlistItem(entry *WishlistEntry, deal *Deal) WishlistItem {
	return WishlistItem{
		ID:           entry.ID,
		DealID:       entry.DealID,
		AlertEnabled: entry.AlertEnabled,
		CreatedAt:    entry.CreatedAt,
		Deal: WishlistDeal{
			Deal:               *deal,
			BestAvailablePrice: deal.BestAvailablePrice(),
			Status:             deal.Status(),
		},
	}
}
