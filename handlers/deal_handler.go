package handlers

import (
	"context"
	"net/http"

	"dealwish-backend/logging"
	"dealwish-backend/models"

	"github.com/gin-gonic/gin"
)

// DealLister is the catalog view the deal handler needs
type DealLister interface {
	ListAll(ctx context.Context) ([]*models.Deal, error)
}

// DealHandler handles HTTP requests for deals
type DealHandler struct {
	catalog DealLister
	logger  logging.Logger
}

// NewDealHandler creates a new deal handler
func NewDealHandler(catalog DealLister, logger logging.Logger) *DealHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &DealHandler{catalog: catalog, logger: logger}
}

// ListDeals handles GET /api/deals
func (h *DealHandler) ListDeals(c *gin.Context, user *models.User) {
	deals, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger.With("user_id", user.ID), err, "Failed to fetch deals")
		return
	}

	c.JSON(http.StatusOK, deals)
}
