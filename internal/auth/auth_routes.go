package auth

import (
	"go-dinas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, guard *middleware.Guard) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), h.Login)

		session := auth.Group("")
		session.Use(guard.TokenOnly()...)
		session.GET("/me", middleware.RateLimitByUser(2, 5), h.Me)
		session.GET("/branches", middleware.RateLimitByUser(2, 5), h.Branches)
		session.POST("/logout", middleware.RateLimitByUser(2, 5), h.Logout)
	}
}
