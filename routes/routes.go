package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"seminarhall/handlers"
	"seminarhall/middleware"
)

// RegisterAvailabilityRoutes registers the conflict checker and calendar
// endpoints. They are public: the booking form runs checks before login.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/check", hb.CheckAvailabilityHandler)
		api.GET("/day", hb.DayAvailabilityHandler)
		api.GET("/month", hb.MonthSummaryHandler)
	}
}

// RegisterSeminarRoutes registers the booking workflow endpoints.
func RegisterSeminarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/seminars")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.SubmitSeminarHandler)
		api.GET("", hb.ListSeminarsHandler)

		// Status changes and deletion are admin operations.
		admin := api.Group("")
		admin.Use(middleware.AdminOnly())
		admin.PATCH("/:id/status", hb.UpdateSeminarStatusHandler)
		admin.DELETE("/:id", hb.DeleteSeminarHandler)
	}
}

// RegisterHallRoutes registers the hall directory endpoints.
func RegisterHallRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/halls")
	{
		api.GET("", hb.ListHallsHandler)
		api.GET("/:key", hb.GetHallHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.AdminOnly())
		admin.POST("", hb.CreateHallHandler)
		admin.PUT("/:id", hb.UpdateHallHandler)
		admin.DELETE("/:id", hb.DeleteHallHandler)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterNotificationRoutes registers the notification feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.ListNotificationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterSeminarRoutes(r, hb)
	RegisterHallRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
