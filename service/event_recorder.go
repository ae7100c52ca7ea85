package service

import (
	"context"
	"encoding/json"
	"time"

	"dealwish-backend/logging"
	"dealwish-backend/models"

	"github.com/google/uuid"
)

const defaultRecordTimeout = 5 * time.Second

// AnalyticsRepository is the append-only event storage
type AnalyticsRepository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
}

// EventRecorder appends wishlist analytics events on a best-effort basis
type EventRecorder struct {
	repo    AnalyticsRepository
	logger  logging.Logger
	timeout time.Duration
}

// NewEventRecorder creates a new event recorder
func NewEventRecorder(repo AnalyticsRepository, logger logging.Logger) *EventRecorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &EventRecorder{repo: repo, logger: logger, timeout: defaultRecordTimeout}
}

// Record appends one event. It has no error result: by the time it runs the
// wishlist mutation has succeeded, so failures are logged here and dropped.
// The insert is detached from the caller's cancellation so an aborted
// request still gets its event written.
func (r *EventRecorder) Record(ctx context.Context, userID, dealID uuid.UUID, action models.AnalyticsAction, metadata map[string]any) {
	if r == nil || r.repo == nil {
		return
	}

	log := r.logger.With("user_id", userID, "deal_id", dealID, "action", action)

	if !action.Valid() {
		log.Error(ctx, "dropping analytics event with unknown action")
		return
	}

	event := &models.AnalyticsEvent{
		UserID: userID,
		DealID: dealID,
		Action: action,
	}

	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			log.Error(ctx, "failed to serialize analytics metadata", "error", err)
			return
		}
		s := string(b)
		event.Metadata = &s
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	if err := r.repo.Create(ctx, event); err != nil {
		log.Error(ctx, "failed to track analytics event", "error", err)
	}
}
