package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzhan/uniregistry/internal/app/controllers"
	"github.com/oguzhan/uniregistry/internal/app/models"
	"github.com/oguzhan/uniregistry/internal/bridge"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.EntityController[models.Department],
	instructorController *controllers.EntityController[models.Instructor],
	studentController *controllers.EntityController[models.Student],
	courseController *controllers.EntityController[models.Course],
	enrollmentController *controllers.EntityController[models.Enrollment],
	paymentController *controllers.EntityController[models.Payment],
	reportController *controllers.ReportController,
	bridgeHandler *bridge.Handler,
) {
	api := router.Group("/api")

	departmentController.Register(api.Group("/departments"))
	instructorController.Register(api.Group("/instructors"))
	studentController.Register(api.Group("/students"))
	courseController.Register(api.Group("/courses"))
	enrollmentController.Register(api.Group("/enrollments"))
	paymentController.Register(api.Group("/payments"))

	reportController.Register(api.Group("/reports"))

	// Endpoint index, matching what the desktop shell expects at the root.
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "University Records API",
			"endpoints": gin.H{
				"departments": "/api/departments",
				"instructors": "/api/instructors",
				"students":    "/api/students",
				"courses":     "/api/courses",
				"enrollments": "/api/enrollments",
				"payments":    "/api/payments",
				"reports":     "/api/reports",
			},
		})
	})

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Desktop shell bridge: one WebSocket connection carrying the
	// channel-based request/response traffic.
	router.GET("/bridge", func(c *gin.Context) {
		bridgeHandler.Serve(c.Writer, c.Request)
	})
}
