package plafond

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	plafonds := r.Group("/plafonds")
	plafonds.Use(guard.Authenticated()...)
	{
		plafonds.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourcePlafond, domain.ActionView),
			h.GetAll,
		)
		plafonds.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourcePlafond, domain.ActionView),
			h.GetById,
		)
		plafonds.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourcePlafond, domain.ActionAdd),
			h.Create,
		)
		plafonds.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourcePlafond, domain.ActionEdit),
			h.Update,
		)
		plafonds.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourcePlafond, domain.ActionDelete),
			h.Delete,
		)
	}
}
