package routes

import (
	"moovsafe/internal/handlers"
	"moovsafe/internal/middleware"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupMaintenanceRoutes sets up routes for the maintenance history
func SetupMaintenanceRoutes(r *gin.RouterGroup, maintenanceHandler *handlers.MaintenanceHandler, log *logger.Logger) {
	maintenance := r.Group("/maintenance")
	{
		// Multipart bodies are bound in the handler, not middleware.
		maintenance.POST("", maintenanceHandler.CreateRecord)
		maintenance.GET("", maintenanceHandler.ListRecords)
		maintenance.GET("/vehicle/:licensePlate", maintenanceHandler.ListRecordsByLicensePlate)
		maintenance.GET("/:id", maintenanceHandler.GetRecord)
		maintenance.PUT("/:id",
			middleware.ValidateBody(func() interface{} { return &validators.MaintenanceUpdateRequest{} }, log),
			maintenanceHandler.UpdateRecord)
		maintenance.DELETE("/:id", maintenanceHandler.DeleteRecord)
	}
}
