package catalog

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts one catalog table; call once per Kind.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	kind := h.service.Kind()
	items := r.Group(kind.Path)
	items.Use(guard.Authenticated()...)
	{
		items.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(kind.Resource, domain.ActionView),
			h.GetAll,
		)
		items.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(kind.Resource, domain.ActionView),
			h.GetById,
		)
		items.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(kind.Resource, domain.ActionAdd),
			h.Create,
		)
		items.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(kind.Resource, domain.ActionEdit),
			h.Update,
		)
		items.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(kind.Resource, domain.ActionDelete),
			h.Delete,
		)
	}
}
