package app

import (
	"context"
	"errors"
	"time"

	"go-dinas/internal/config"
	"go-dinas/internal/messaging/kafka"
	"go-dinas/internal/messaging/kafka/producer"
	"go-dinas/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays trip events from the outbox table to Kafka until ctx is cancelled.
func RunWorker(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	if !cfg.DB.Enabled() {
		return errors.New("DB_HOST is required")
	}
	if cfg.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(ctx, cfg.DB, connectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	if err := outboxRepo.EnsureSchema(ctx); err != nil {
		return err
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(ctx, cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)

	log.Info("worker shutting down")
	return nil
}
