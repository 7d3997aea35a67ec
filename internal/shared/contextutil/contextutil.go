package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey adalah tipe privat agar tidak terjadi tabrakan key dengan library lain
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	accountIDKey contextKey = "account_id"
	branchIDKey  contextKey = "branch_id"
	loggerKey    contextKey = "logger"
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

func WithAccountID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, accountIDKey, id)
}

// GetAccountID returns 0 when the request is anonymous.
func GetAccountID(ctx context.Context) int64 {
	if id, ok := ctx.Value(accountIDKey).(int64); ok {
		return id
	}
	return 0
}

func WithBranchID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, branchIDKey, id)
}

func GetBranchID(ctx context.Context) int64 {
	if id, ok := ctx.Value(branchIDKey).(int64); ok {
		return id
	}
	return 0
}

// WithLogger memasukkan zap logger (biasanya sudah di-decorate) ke context
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger mengambil logger dari context.
// Jika tidak ada, mengembalikan defaultLogger agar tidak panic.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}

type Metadata struct {
	RequestID string
	AccountID int64
	BranchID  int64
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		AccountID: GetAccountID(ctx),
		BranchID:  GetBranchID(ctx),
	}
}
