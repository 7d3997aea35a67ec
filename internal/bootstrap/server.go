package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ShutdownHook runs after the HTTP server stopped accepting requests.
type ShutdownHook struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunHTTPServer serves until ctx is cancelled, then shuts down gracefully and runs hooks in order.
func RunHTTPServer(
	ctx context.Context,
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
	hooks ...ShutdownHook,
) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return serve(ctx, ln, router, cfg, auditLogger, hooks)
}

func serve(
	ctx context.Context,
	ln net.Listener,
	router *gin.Engine,
	cfg ServerConfig,
	auditLogger AuditLogger,
	hooks []ShutdownHook,
) error {
	log := zap.L().Named("http.server")
	server := &http.Server{
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("Shutdown signal received")
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta:    map[string]any{"addr": ln.Addr().String()},
	})

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var shutdownErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
		shutdownErr = err
	} else {
		log.Info("Server exited gracefully")
	}

	for _, h := range hooks {
		if err := h.Run(shutdownCtx); err != nil {
			log.Error("shutdown hook failed", zap.String("hook", h.Name), zap.Error(err))
			shutdownErr = errors.Join(shutdownErr, err)
		}
	}
	return shutdownErr
}
