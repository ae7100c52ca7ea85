package handlers

import (
	"net/http"

	"dealwish-backend/middleware"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// RegisterRoutes mounts the API on r. Everything under /api requires a
// bearer token.
func RegisterRoutes(r gin.IRouter, authn *middleware.Authenticator, deals *DealHandler, wishlist *WishlistHandler) {
	r.GET("/health", Health)

	api := r.Group("/api")
	{
		// Deal endpoints
		api.GET("/deals", authn.Handle(deals.ListDeals))

		// Wishlist endpoints
		api.GET("/wishlist", authn.Handle(wishlist.ListWishlist))
		api.POST("/wishlist", authn.Handle(wishlist.AddToWishlist))
		api.DELETE("/wishlist/:dealId", authn.Handle(wishlist.RemoveFromWishlist))
		api.PATCH("/wishlist/:dealId", authn.Handle(wishlist.UpdateAlert))
	}
}
