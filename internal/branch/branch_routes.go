package branch

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	branches := r.Group("/branches")
	branches.Use(guard.Authenticated()...)
	{
		branches.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceBranch, domain.ActionView),
			h.GetAll,
		)
		branches.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceBranch, domain.ActionView),
			h.GetById,
		)
		branches.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceBranch, domain.ActionAdd),
			h.Create,
		)
		branches.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceBranch, domain.ActionEdit),
			h.Update,
		)
		branches.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceBranch, domain.ActionDelete),
			h.Delete,
		)
	}
}
