package models

import (
	"time"

	"github.com/google/uuid"
)

// DealStatus is the derived availability of a deal
type DealStatus string

const (
	DealStatusActive   DealStatus = "active"
	DealStatusDisabled DealStatus = "disabled"
	DealStatusExpired  DealStatus = "expired"
)

// Deal represents a deal entity.
// Prices are numeric(10,2) in the database and are carried as decimal strings.
type Deal struct {
	ID                 uuid.UUID  `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	OriginalPrice      string     `json:"originalPrice"`
	CurrentPrice       string     `json:"currentPrice"`
	DiscountPercentage int        `json:"discountPercentage"`
	ImageURL           *string    `json:"imageUrl"`
	MerchantName       string     `json:"merchantName"`
	MerchantURL        string     `json:"merchantUrl"`
	Category           string     `json:"category"`
	IsActive           bool       `json:"isActive"`
	IsExpired          bool       `json:"isExpired"`
	ExpiresAt          *time.Time `json:"expiresAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// Status derives the deal status. Expiry wins over deactivation.
func (d *Deal) Status() DealStatus {
	switch {
	case d.IsExpired:
		return DealStatusExpired
	case !d.IsActive:
		return DealStatusDisabled
	default:
		return DealStatusActive
	}
}

// BestAvailablePrice returns the lowest price a user can currently get.
// There is no promotional pricing yet, so this is the current price.
func (d *Deal) BestAvailablePrice() string {
	return d.CurrentPrice
}
