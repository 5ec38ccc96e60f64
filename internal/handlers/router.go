package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/beastfit-api/internal/middleware"
)

// NewRouter wires middleware and every route onto a fresh gin engine.
func NewRouter(h *Handler, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(h.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.Use(middleware.Session(h.Session.Secret))
	{
		authRoutes := api.Group("/auth")
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.Login)
		authRoutes.GET("/me", middleware.RequireSession(), h.GetCurrentUser)
		authRoutes.POST("/logout", h.Logout)

		api.GET("/reviews", h.GetReviews)
		api.POST("/reviews", h.CreateReview)
		api.GET("/users/:id/reviews", h.GetUserReviews)

		api.POST("/membership-inquiries", h.CreateMembershipInquiry)
		api.POST("/contact", h.CreateContactMessage)
		api.POST("/track-visit", h.TrackVisit)

		adminRoutes := api.Group("/admin")
		adminRoutes.Use(middleware.RequireSession(), h.RequireAdmin())
		adminRoutes.GET("/stats", h.GetStats)
		adminRoutes.GET("/users", h.GetUsers)
		adminRoutes.GET("/inquiries", h.GetInquiries)
		adminRoutes.GET("/export/users", h.ExportUsers)
		adminRoutes.GET("/export/inquiries", h.ExportInquiries)
		adminRoutes.GET("/export/reviews", h.ExportReviews)
	}

	return r
}
