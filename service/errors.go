package service

import "errors"

var (
	ErrDealNotFound         = errors.New("deal not found")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	ErrSubscriberRequired   = errors.New("alerts are only available for subscribers")
	ErrAlreadyInWishlist    = errors.New("deal already in wishlist")
)
