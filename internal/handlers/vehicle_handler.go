package handlers

import (
	"moovsafe/internal/middleware"
	"moovsafe/internal/services"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
	logger         *logger.Logger
}

func NewVehicleHandler(vehicleService services.VehicleService, logger *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         logger,
	}
}

// CreateVehicle godoc
// @Summary Register a vehicle
// @Description Creates a vehicle after checking that its license plate, VIN and engine number are unused
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body validators.VehicleCreateRequest true "Vehicle"
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	request := middleware.CleanBody(c).(*validators.VehicleCreateRequest)

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), request)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.CreatedResponse(c, vehicle)
}

// ListVehicles godoc
// @Summary List vehicles
// @Description Returns every vehicle; pass page to paginate (metadata goes to X-Total-Count / X-Total-Pages / X-Page headers)
// @Tags vehicles
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} models.Vehicle
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	if params != nil {
		utils.SetPaginationHeaders(c, utils.CreatePaginationMeta(params, total))
	}

	utils.SuccessResponse(c, vehicles)
}

// GetVehicle godoc
// @Summary Get a vehicle
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} utils.ErrorBody
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.SuccessResponse(c, vehicle)
}

// GetVehicleByLicensePlate godoc
// @Summary Get a vehicle by license plate
// @Tags vehicles
// @Produce json
// @Param licensePlate path string true "License plate"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} utils.ErrorBody
// @Router /vehicles/license/{licensePlate} [get]
func (h *VehicleHandler) GetVehicleByLicensePlate(c *gin.Context) {
	licensePlate := c.Param("licensePlate")

	vehicle, err := h.vehicleService.GetVehicleByLicensePlate(c.Request.Context(), licensePlate)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.SuccessResponse(c, vehicle)
}

// UpdateVehicle godoc
// @Summary Update a vehicle
// @Description Applies a partial update; at least one field must be supplied
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param vehicle body validators.VehicleUpdateRequest true "Fields to change"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Failure 409 {object} utils.ErrorBody
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	request := middleware.CleanBody(c).(*validators.VehicleUpdateRequest)
	if !request.HasUpdates() {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), id, request)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.SuccessResponse(c, vehicle)
}

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Description Removes the vehicle and returns the deleted record
// @Tags vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 404 {object} utils.ErrorBody
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.DeleteVehicle(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.SuccessResponse(c, vehicle)
}
