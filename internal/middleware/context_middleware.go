package middleware

import (
	"go-dinas/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger menempelkan request_id, account_id dan branch_id ke logger
// lalu mempropagasikannya lewat context agar service bisa mengambilnya via contextutil.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		md := contextutil.ExtractMetadata(ctx)
		if md.RequestID == "" {
			md.RequestID = c.GetString("request_id")
		}

		reqLogger := logger.With(
			zap.String("request_id", md.RequestID),
			zap.Int64("account_id", md.AccountID),
			zap.Int64("branch_id", md.BranchID),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
		c.Next()
	}
}
