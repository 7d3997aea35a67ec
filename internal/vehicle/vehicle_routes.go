package vehicle

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	vehicles := r.Group("/vehicles")
	vehicles.Use(guard.Authenticated()...)
	{
		vehicles.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceVehicle, domain.ActionView),
			h.GetAll,
		)
		vehicles.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceVehicle, domain.ActionView),
			h.GetById,
		)
		vehicles.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceVehicle, domain.ActionAdd),
			h.Create,
		)
		vehicles.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceVehicle, domain.ActionEdit),
			h.Update,
		)
		vehicles.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceVehicle, domain.ActionDelete),
			h.Delete,
		)
	}
}
