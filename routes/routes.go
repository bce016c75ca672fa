package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"churchms/handlers"
	"churchms/utils"
)

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterScheduleRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterFeeRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterScheduleRoutes registers the schedule calendar and availability endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.GET("", hb.ListSchedulesHandler)
		api.GET("/:scheduleID/occurrences", hb.MonthOccurrencesHandler)
		api.GET("/:scheduleID/availability", hb.DayAvailabilityHandler)
	}
}

// RegisterApplicationRoutes registers the sacrament-application wizard endpoints.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.POST("/session", hb.StartApplicationSession)
		api.PUT("/session/:sessionID", hb.UpdateApplicationSession)
		api.GET("/session/:sessionID", hb.GetApplicationSession)
	}
}

// RegisterFeeRoutes registers the fee quoting endpoint.
func RegisterFeeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/fees")
	{
		api.POST("/quote", hb.QuoteFeesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
