package roomtype

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	roomTypes := r.Group("/room-types")
	roomTypes.Use(guard.Authenticated()...)
	{
		roomTypes.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceRoomType, domain.ActionView),
			h.GetAll,
		)
		roomTypes.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceRoomType, domain.ActionView),
			h.GetById,
		)
		roomTypes.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceRoomType, domain.ActionAdd),
			h.Create,
		)
		roomTypes.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceRoomType, domain.ActionEdit),
			h.Update,
		)
		roomTypes.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceRoomType, domain.ActionDelete),
			h.Delete,
		)
	}
}
