package middleware

import (
	"context"
	"errors"
	"net/http"

	"dealwish-backend/auth"
	"dealwish-backend/logging"
	"dealwish-backend/models"

	"github.com/gin-gonic/gin"
)

// UserResolver maps a verified identity to a local user record
type UserResolver interface {
	Resolve(ctx context.Context, email, suggestedName string) (*models.User, error)
}

// AuthenticatedHandler is a gin handler that receives the resolved caller
type AuthenticatedHandler func(c *gin.Context, user *models.User)

// Authenticator guards routes behind a provider-issued bearer token
type Authenticator struct {
	verifier auth.Verifier
	users    UserResolver
	logger   logging.Logger
}

// NewAuthenticator creates a new authenticator
func NewAuthenticator(verifier auth.Verifier, users UserResolver, logger logging.Logger) *Authenticator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Authenticator{verifier: verifier, users: users, logger: logger}
}

// Handle wraps h so it only runs for an authenticated caller.
// Any verification failure is a 401; the provider is not retried.
func (a *Authenticator) Handle(h AuthenticatedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		identity, err := auth.VerifyHeader(ctx, a.verifier, c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
				return
			}
			if errors.Is(err, auth.ErrUnauthenticated) {
				a.logger.Debug(ctx, "token rejected", "error", err)
			} else {
				a.logger.Error(ctx, "identity provider call failed", "error", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := a.users.Resolve(ctx, identity.Email, identity.Name)
		if err != nil {
			a.logger.Error(ctx, "failed to resolve user", "email", identity.Email, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during authentication"})
			return
		}

		h(c, user)
	}
}
