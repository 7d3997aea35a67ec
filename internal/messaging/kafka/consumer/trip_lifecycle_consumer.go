package consumer

import (
	"context"
	"encoding/json"

	"go-dinas/internal/bootstrap"
	"go-dinas/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const ActionTripStatusChanged = "TRIP_STATUS_CHANGED"

// ConsumeTripLifecycle writes every trip transition to the audit log.
func ConsumeTripLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.trip_lifecycle")

	consume(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) bool {
		var event events.TripStatusChanged
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// payload rusak tidak akan pernah berhasil; commit agar tidak macet
			log.Error("decode trip status event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			return true
		}
		if event.EventType != events.TripStatusChangedEvent {
			log.Warn("skipping unknown trip event", zap.String("event_type", event.EventType))
			return true
		}

		audit.Log(ctx, bootstrap.AuditLog{
			Action:  ActionTripStatusChanged,
			Message: event.OrderNumber + " " + event.FromStatus + " -> " + event.ToStatus,
			Meta: map[string]any{
				"schedule_id": event.ScheduleID,
				"driver_id":   event.DriverID,
				"driver_name": event.DriverName,
				"changed_by":  event.ChangedBy,
				"request_id":  event.RequestID,
				"occurred_at": event.OccurredAt,
			},
		})

		log.Info("trip status audited",
			zap.Int64("schedule_id", event.ScheduleID),
			zap.String("to", event.ToStatus),
		)
		return true
	})
}
