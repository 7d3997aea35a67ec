package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartScheduler flushes every interval until the returned cron is stopped.
func StartScheduler(svc Service, interval time.Duration, logger *zap.Logger) (*cron.Cron, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("snapshot interval must be positive, got %s", interval)
	}
	log := logger.Named("snapshot.scheduler")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc("@every "+interval.String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		defer cancel()
		if _, err := svc.Flush(ctx); err != nil {
			log.Error("scheduled snapshot flush failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("snapshot scheduler started", zap.Duration("interval", interval))
	return c, nil
}
