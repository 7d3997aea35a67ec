package rbac

import (
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	group := r.Group("/rbac")
	group.Use(guard.Authenticated()...)
	{
		group.GET("/permissions", middleware.RateLimitByUser(5, 20), h.Permissions)
		group.POST("/check", middleware.RateLimitByUser(5, 20), h.Check)
	}
}
