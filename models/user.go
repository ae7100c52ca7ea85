package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user entity. Users are provisioned on first sight of an
// identity-provider email and are never deleted by this service.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	IsSubscriber bool      `json:"isSubscriber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
