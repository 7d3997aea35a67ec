package messroom

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	rooms := r.Group("/mess-rooms")
	rooms.Use(guard.Authenticated()...)
	{
		rooms.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceMessRoom, domain.ActionView),
			h.GetAll,
		)
		rooms.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceMessRoom, domain.ActionView),
			h.GetById,
		)
		rooms.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceMessRoom, domain.ActionAdd),
			h.Create,
		)
		rooms.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceMessRoom, domain.ActionEdit),
			h.Update,
		)
		rooms.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceMessRoom, domain.ActionDelete),
			h.Delete,
		)
	}
}
