package handlers

import (
	"context"
	"net/http"

	"dealwish-backend/logging"
	"dealwish-backend/models"
	"dealwish-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WishlistManager is the wishlist behaviour the handler needs
type WishlistManager interface {
	List(ctx context.Context, req service.ListWishlistRequest) (*service.ListWishlistResult, error)
	Add(ctx context.Context, req service.AddToWishlistRequest) (*service.AddToWishlistResult, error)
	Remove(ctx context.Context, req service.RemoveFromWishlistRequest) error
	SetAlert(ctx context.Context, req service.SetAlertRequest) (*service.SetAlertResult, error)
}

// WishlistHandler handles HTTP requests for the caller's wishlist
type WishlistHandler struct {
	wishlist WishlistManager
	logger   logging.Logger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlist WishlistManager, logger logging.Logger) *WishlistHandler {
	setupValidator()
	if logger == nil {
		logger = logging.Discard()
	}
	return &WishlistHandler{wishlist: wishlist, logger: logger}
}

// AddToWishlistRequest represents the request body for saving a deal
type AddToWishlistRequest struct {
	DealID       string `json:"dealId" binding:"required,dealid"`
	AlertEnabled bool   `json:"alertEnabled"`
}

// UpdateAlertRequest represents the request body for toggling an alert
type UpdateAlertRequest struct {
	AlertEnabled *bool `json:"alertEnabled" binding:"required"`
}

type dealURI struct {
	DealID string `uri:"dealId" binding:"required,dealid"`
}

// bindDealID validates the :dealId path parameter
func bindDealID(c *gin.Context) (uuid.UUID, bool) {
	var uri dealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		writeValidationError(c, err)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(uri.DealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []FieldError{{Field: "dealId", Message: "Invalid deal ID format"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

// ListWishlist handles GET /api/wishlist
func (h *WishlistHandler) ListWishlist(c *gin.Context, user *models.User) {
	result, err := h.wishlist.List(c.Request.Context(), service.ListWishlistRequest{UserID: user.ID})
	if err != nil {
		writeServiceError(c, h.logger.With("user_id", user.ID), err, "Failed to fetch wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Items,
		"count":   len(result.Items),
	})
}

// AddToWishlist handles POST /api/wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context, user *models.User) {
	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	dealID, err := uuid.Parse(req.DealID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation failed",
			"details": []FieldError{{Field: "dealId", Message: "Invalid deal ID format"}},
		})
		return
	}

	result, err := h.wishlist.Add(c.Request.Context(), service.AddToWishlistRequest{
		User:         user,
		DealID:       dealID,
		AlertEnabled: req.AlertEnabled,
	})
	if err != nil {
		writeServiceError(c, h.logger.With("user_id", user.ID, "deal_id", dealID), err, "Failed to add deal to wishlist")
		return
	}

	if !result.Created {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Deal already in wishlist",
			"data":    result.Entry,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Deal added to wishlist",
		"data":    result.Entry,
	})
}

// RemoveFromWishlist handles DELETE /api/wishlist/:dealId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context, user *models.User) {
	dealID, ok := bindDealID(c)
	if !ok {
		return
	}

	err := h.wishlist.Remove(c.Request.Context(), service.RemoveFromWishlistRequest{UserID: user.ID, DealID: dealID})
	if err != nil {
		writeServiceError(c, h.logger.With("user_id", user.ID, "deal_id", dealID), err, "Failed to remove deal from wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Deal removed from wishlist",
	})
}

// UpdateAlert handles PATCH /api/wishlist/:dealId
func (h *WishlistHandler) UpdateAlert(c *gin.Context, user *models.User) {
	dealID, ok := bindDealID(c)
	if !ok {
		return
	}

	var req UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	result, err := h.wishlist.SetAlert(c.Request.Context(), service.SetAlertRequest{
		User:         user,
		DealID:       dealID,
		AlertEnabled: *req.AlertEnabled,
	})
	if err != nil {
		writeServiceError(c, h.logger.With("user_id", user.ID, "deal_id", dealID), err, "Failed to update wishlist alert")
		return
	}

	message := "Alert disabled"
	if result.Entry.AlertEnabled {
		message = "Alert enabled"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    result.Entry,
	})
}
