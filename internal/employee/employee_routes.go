package employee

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	employees := r.Group("/employees")
	employees.Use(guard.Authenticated()...)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			guard.Can(domain.ResourceEmployee, domain.ActionView),
			h.GetAll,
		)
		employees.GET("/driver-options",
			middleware.RateLimitByUser(5, 20), // ringan, dipanggil setiap form jadwal dibuka
			guard.Can(domain.ResourceDriverSchedule, domain.ActionView),
			h.GetDriverOptions,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			guard.Can(domain.ResourceEmployee, domain.ActionView),
			h.GetById,
		)
		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceEmployee, domain.ActionAdd),
			h.Create,
		)
		employees.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceEmployee, domain.ActionEdit),
			h.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			guard.Can(domain.ResourceEmployee, domain.ActionDelete),
			h.Delete,
		)
	}
}
