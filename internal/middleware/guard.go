package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Guard bundles the middleware every protected route group needs.
type Guard struct {
	tokens TokenParser
	rbac   RBACService
	rdb    *redis.Client
	logger *zap.Logger
}

// NewGuard: rdb may be nil, Idempotent then passes requests through.
func NewGuard(tokens TokenParser, rbac RBACService, rdb *redis.Client, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.L()
	}
	return &Guard{tokens: tokens, rbac: rbac, rdb: rdb, logger: logger}
}

// Authenticated: token, selected branch, request-scoped logger.
func (g *Guard) Authenticated() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		AuthMiddleware(g.tokens),
		BranchScope(),
		ContextLogger(g.logger),
	}
}

// TokenOnly skips branch selection, for routes such as logout and the branch picker.
func (g *Guard) TokenOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		AuthMiddleware(g.tokens),
		ContextLogger(g.logger),
	}
}

func (g *Guard) Can(resource, action string) gin.HandlerFunc {
	return RBACAuthorize(g.rbac, resource, action)
}

func (g *Guard) Idempotent() gin.HandlerFunc {
	return Idempotency(g.rdb, g.logger)
}
