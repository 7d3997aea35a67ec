package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"go-dinas/internal/events"

	"github.com/google/uuid"
)

const aggregateDriverSchedule = "driver_schedule"

// TripPublisher writes trip lifecycle events to the outbox; the worker relays them to Kafka.
type TripPublisher struct {
	repo OutboxRepository
}

func NewTripPublisher(repo OutboxRepository) *TripPublisher {
	return &TripPublisher{repo: repo}
}

func (p *TripPublisher) PublishTripStatusChanged(ctx context.Context, event events.TripStatusChanged) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.repo.Create(ctx, OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: aggregateDriverSchedule,
		AggregateID:   strconv.FormatInt(event.ScheduleID, 10),
		EventType:     event.EventType,
		Topic:         events.TripLifecycleTopic,
		Payload:       payload,
		Status:        OutboxStatusPending,
	})
}
