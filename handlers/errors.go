package handlers

import (
	"errors"
	"net/http"

	"dealwish-backend/logging"
	"dealwish-backend/service"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors to responses. Anything unrecognised
// is logged and reported as a 500 carrying only the fallback message.
func writeServiceError(c *gin.Context, logger logging.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrDealNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
	case errors.Is(err, service.ErrWishlistItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist item not found"})
	case errors.Is(err, service.ErrSubscriberRequired):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Alerts are only available for subscribers",
			"message": "Please upgrade to a subscription to enable deal alerts",
			"code":    "SUBSCRIBER_REQUIRED",
		})
	case errors.Is(err, service.ErrAlreadyInWishlist):
		c.JSON(http.StatusConflict, gin.H{"error": "Deal already in wishlist"})
	default:
		logger.Error(c.Request.Context(), fallback, "method", c.Request.Method, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
