package driverschedule

import (
	"go-dinas/internal/domain"
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	schedules := r.Group("/driver-schedules")
	schedules.Use(guard.Authenticated()...)
	{
		schedules.GET("",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionView),
			h.GetAll,
		)
		// calendar harus didaftarkan sebelum /:id
		schedules.GET("/calendar",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionView),
			h.Calendar,
		)
		schedules.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionView),
			h.GetById,
		)
		schedules.GET("/:id/pass",
			middleware.RateLimitByUser(5, 20),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionView),
			h.Pass,
		)
		schedules.POST("",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionAdd),
			guard.Idempotent(),
			h.Create,
		)
		schedules.PATCH("/:id",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionEdit),
			h.Update,
		)
		schedules.POST("/:id/start",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionEdit),
			guard.Idempotent(),
			h.Start,
		)
		schedules.POST("/:id/end",
			middleware.RateLimitByUser(1, 5),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionEdit),
			guard.Idempotent(),
			h.End,
		)
		schedules.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			guard.Can(domain.ResourceDriverSchedule, domain.ActionDelete),
			h.Delete,
		)
	}
}
