package routes

import (
	"moovsafe/internal/handlers"
	"moovsafe/internal/middleware"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for the vehicle registry
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, log *logger.Logger) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("",
			middleware.ValidateBody(func() interface{} { return &validators.VehicleCreateRequest{} }, log),
			vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/license/:licensePlate", vehicleHandler.GetVehicleByLicensePlate)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PUT("/:id",
			middleware.ValidateBody(func() interface{} { return &validators.VehicleUpdateRequest{} }, log),
			vehicleHandler.UpdateVehicle)
		vehicles.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
