package role

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	g := r.Group("/roles")
	g.Use(guard.Authenticated()...)
	{
		g.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceRole, domain.ActionView),
			h.GetAll,
		)
		g.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceRole, domain.ActionView),
			h.GetById,
		)
		g.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceRole, domain.ActionAdd),
			h.Create,
		)
		g.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceRole, domain.ActionEdit),
			h.Update,
		)
		g.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceRole, domain.ActionDelete),
			h.Delete,
		)
	}
}
