package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsAction represents a wishlist mutation recorded for analytics
type AnalyticsAction string

const (
	ActionAdd           AnalyticsAction = "add"
	ActionRemove        AnalyticsAction = "remove"
	ActionAlertEnabled  AnalyticsAction = "alert_enabled"
	ActionAlertDisabled AnalyticsAction = "alert_disabled"
)

// Valid reports whether the action is one the analytics table accepts
func (a AnalyticsAction) Valid() bool {
	switch a {
	case ActionAdd, ActionRemove, ActionAlertEnabled, ActionAlertDisabled:
		return true
	}
	return false
}

// AnalyticsEvent is an append-only record of a wishlist mutation
type AnalyticsEvent struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	DealID    uuid.UUID       `json:"dealId"`
	Action    AnalyticsAction `json:"action"`
	Metadata  *string         `json:"metadata,omitempty"` // serialized JSON
	CreatedAt time.Time       `json:"createdAt"`
}
