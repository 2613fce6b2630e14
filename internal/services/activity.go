package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ActivityRecorder publishes user actions to the activity and notification
// streams. Publishing is best-effort: failures are logged and never fail the
// calling request.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID)
	Notify(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID)
}

// ActivityService publishes activity and notification events to Kafka.
type ActivityService struct {
	activityWriter     KafkaWriter
	notificationWriter KafkaWriter
}

// NewActivityService creates a new ActivityService. Either writer may be nil,
// in which case publishing to that stream is skipped.
func NewActivityService(activityWriter, notificationWriter KafkaWriter) *ActivityService {
	return &ActivityService{
		activityWriter:     activityWriter,
		notificationWriter: notificationWriter,
	}
}

// Record publishes a user action to the activity stream.
func (s *ActivityService) Record(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID) {
	s.publish(ctx, s.activityWriter, "activity", userID, action, resource, resourceID)
}

// Notify publishes a reminder-worthy event to the notification stream for an
// external mailer to consume.
func (s *ActivityService) Notify(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID) {
	s.publish(ctx, s.notificationWriter, "notification", userID, action, resource, resourceID)
}

func (s *ActivityService) publish(ctx context.Context, writer KafkaWriter, stream string, userID uuid.UUID, action, resource string, resourceID uuid.UUID) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing",
			"stream", stream, "action", action)
		return
	}

	event := models.ActivityEvent{
		EventID:    uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		UserID:     userID.String(),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID.String(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event",
			"stream", stream, "event_id", event.EventID, "action", action, "error", err)
	} else {
		logger.Log.Infow("event published",
			"stream", stream, "event_id", event.EventID, "action", action, "resource", resource)
	}
}
