package routes

import (
	"moovsafe/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupInspectionRoutes sets up routes for vehicle inspections. The /date
// route is registered alongside /:id; gin matches the static segment first.
func SetupInspectionRoutes(r *gin.RouterGroup, inspectionHandler *handlers.InspectionHandler) {
	inspections := r.Group("/inspections")
	{
		// Multipart bodies are bound in the handler, not middleware.
		inspections.POST("", inspectionHandler.CreateInspection)
		inspections.GET("", inspectionHandler.ListInspections)
		inspections.GET("/date", inspectionHandler.ListInspectionsByDate)
		inspections.GET("/:id", inspectionHandler.GetInspection)
		inspections.DELETE("/:id", inspectionHandler.DeleteInspection)
	}
}
