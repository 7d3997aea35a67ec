package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go-dinas/internal/bootstrap"
	"go-dinas/internal/config"
	"go-dinas/internal/driverschedule"
	"go-dinas/internal/messaging/kafka"
	"go-dinas/internal/middleware"
	"go-dinas/internal/shared/connection"
	"go-dinas/internal/shared/token"
	"go-dinas/internal/snapshot"
	"go-dinas/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

type App struct {
	Router *gin.Engine
	Store  *store.DB

	cfg       config.Config
	logger    *zap.Logger
	modules   *modules
	snapshots snapshot.Service
	sqlDB     *sql.DB
	rdb       *redis.Client
}

// BuildApp wires every module. Postgres and Redis are optional: without DB_HOST the
// store lives in memory only, without REDIS_ADDR revoked tokens are kept in process.
func BuildApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, logger: logger.Named("app")}

	// 1. Setup Infrastructure
	var denylist token.Denylist = token.NewMemoryDenylist(nil)
	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(ctx, cfg.RedisAddr, connectRetries)
		if err != nil {
			return nil, err
		}
		a.rdb = rdb
		denylist = token.NewRedisDenylist(rdb)
	}
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL, denylist)

	publisher := driverschedule.NewNopPublisher()
	var snapshotRepo snapshot.Repository
	if cfg.DB.Enabled() {
		gormDB, err := connection.ConnectGORMWithRetry(ctx, cfg.DB, connectRetries)
		if err != nil {
			a.Close()
			return nil, err
		}
		if a.sqlDB, err = gormDB.DB(); err != nil {
			a.Close()
			return nil, err
		}

		outboxRepo := kafka.NewOutboxRepository(a.sqlDB)
		if err := outboxRepo.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, err
		}
		publisher = kafka.NewTripPublisher(outboxRepo)

		snapshotRepo = snapshot.NewRepository(gormDB)
		if err := snapshotRepo.Migrate(ctx); err != nil {
			a.Close()
			return nil, err
		}
	}

	// 2. Register Modules & Routes
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	a.Router = router
	a.Store = store.New()
	mods, err := registerModules(ctx, router.Group("/api/v1"), moduleDeps{
		DB:           a.Store,
		Tokens:       tokens,
		Redis:        a.rdb,
		Publisher:    publisher,
		SecureCookie: cfg.IsProduction(),
		Logger:       logger,
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.modules = mods

	// 3. Load data
	restored := false
	if snapshotRepo != nil {
		a.snapshots = snapshot.NewService(snapshotRepo, a.Store, logger)
		if restored, err = a.snapshots.Restore(ctx); err != nil {
			a.Close()
			return nil, err
		}
		if restored {
			if err := mods.rbac.Reload(ctx); err != nil {
				a.Close()
				return nil, err
			}
		}
	}
	if !restored && cfg.SeedDemoData {
		if err := seedDemoData(ctx, mods, a.logger); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

// Run serves HTTP until ctx is cancelled. The store is flushed one last time on the way out.
func (a *App) Run(ctx context.Context) error {
	var hooks []bootstrap.ShutdownHook
	if a.snapshots != nil {
		scheduler, err := snapshot.StartScheduler(a.snapshots, a.cfg.SnapshotInterval, a.logger)
		if err != nil {
			return err
		}
		hooks = append(hooks,
			bootstrap.ShutdownHook{Name: "snapshot-scheduler", Run: func(ctx context.Context) error {
				select {
				case <-scheduler.Stop().Done():
				case <-ctx.Done():
				}
				return nil
			}},
			bootstrap.ShutdownHook{Name: "snapshot-flush", Run: func(ctx context.Context) error {
				n, err := a.snapshots.Flush(ctx)
				if err == nil {
					a.logger.Info("final snapshot flushed", zap.Int("collections", n))
				}
				return err
			}},
		)
	}
	hooks = append(hooks, bootstrap.ShutdownHook{Name: "connections", Run: func(context.Context) error {
		a.Close()
		return nil
	}})

	return bootstrap.RunHTTPServer(ctx, a.Router,
		bootstrap.ServerConfig{
			Port:            a.cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(a.logger),
		hooks...,
	)
}

func (a *App) Close() {
	if a.sqlDB != nil {
		if err := a.sqlDB.Close(); err != nil {
			a.logger.Warn("close database failed", zap.Error(err))
		}
		a.sqlDB = nil
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.logger.Warn("close redis failed", zap.Error(err))
		}
		a.rdb = nil
	}
}
