package app

import (
	"context"
	"errors"

	"go-dinas/internal/bootstrap"
	"go-dinas/internal/config"
	"go-dinas/internal/events"
	"go-dinas/internal/messaging/kafka/consumer"
	"go-dinas/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer writes every trip lifecycle event to the audit log until ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	reader := connection.NewKafkaReader(cfg.KafkaBroker, events.TripLifecycleTopic, cfg.KafkaGroupID)
	defer reader.Close()

	consumer.ConsumeTripLifecycle(ctx, reader, bootstrap.NewStdoutAuditLogger(logger), logger)

	log.Info("consumer shutting down")
	return nil
}
