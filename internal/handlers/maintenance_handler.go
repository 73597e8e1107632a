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

type MaintenanceHandler struct {
	maintenanceService services.MaintenanceService
	logger             *logger.Logger
}

func NewMaintenanceHandler(maintenanceService services.MaintenanceService, logger *logger.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// CreateRecord godoc
// @Summary Record a maintenance event
// @Description Accepts JSON or multipart/form-data; multipart bodies may attach one odometerImage and up to 5 invoices and 5 photos
// @Tags maintenance
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param record body validators.MaintenanceCreateRequest true "Maintenance record"
// @Success 201 {object} models.MaintenanceRecord
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /maintenance [post]
func (h *MaintenanceHandler) CreateRecord(c *gin.Context) {
	var request validators.MaintenanceCreateRequest
	uploads := &services.MaintenanceUploads{}

	if c.ContentType() == "multipart/form-data" {
		if err := c.ShouldBind(&request); err != nil {
			utils.ValidationErrorResponse(c, []utils.ErrorDetail{{Message: err.Error()}})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			utils.BadRequestResponse(c, "Invalid multipart form")
			return
		}

		invoices := form.File["invoices"]
		if len(invoices) > utils.MaxInvoiceUploads {
			utils.BadRequestResponse(c, "Too many invoice images")
			return
		}
		uploads.Invoices = invoices

		photos := form.File["photos"]
		if len(photos) > utils.MaxPhotoUploads {
			utils.BadRequestResponse(c, "Too many photos")
			return
		}
		uploads.Photos = photos

		if odometer := form.File["odometerImage"]; len(odometer) > 0 {
			uploads.OdometerImage = odometer[0]
		}
	} else {
		if err := c.ShouldBindJSON(&request); err != nil {
			utils.ValidationErrorResponse(c, []utils.ErrorDetail{{Message: err.Error()}})
			return
		}
	}

	if errs := validators.ValidateMaintenanceCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	record, err := h.maintenanceService.CreateRecord(c.Request.Context(), &request, uploads)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.CreatedResponse(c, record)
}

// ListRecords godoc
// @Summary List maintenance records
// @Tags maintenance
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} models.MaintenanceRecord
// @Router /maintenance [get]
func (h *MaintenanceHandler) ListRecords(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	records, total, err := h.maintenanceService.ListRecords(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, "Maintenance record", err)
		return
	}

	if params != nil {
		utils.SetPaginationHeaders(c, utils.CreatePaginationMeta(params, total))
	}

	utils.SuccessResponse(c, records)
}

// ListRecordsByLicensePlate godoc
// @Summary List maintenance history for a vehicle
// @Description Resolves the license plate to a vehicle and returns its maintenance history, newest first
// @Tags maintenance
// @Produce json
// @Param licensePlate path string true "License plate"
// @Success 200 {array} models.MaintenanceRecord
// @Failure 404 {object} utils.ErrorBody
// @Router /maintenance/vehicle/{licensePlate} [get]
func (h *MaintenanceHandler) ListRecordsByLicensePlate(c *gin.Context) {
	licensePlate := c.Param("licensePlate")

	records, err := h.maintenanceService.ListRecordsByLicensePlate(c.Request.Context(), licensePlate)
	if err != nil {
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.SuccessResponse(c, records)
}

// GetRecord godoc
// @Summary Get a maintenance record
// @Tags maintenance
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.MaintenanceRecord
// @Failure 404 {object} utils.ErrorBody
// @Router /maintenance/{id} [get]
func (h *MaintenanceHandler) GetRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid maintenance record ID")
		return
	}

	record, err := h.maintenanceService.GetRecord(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "Maintenance record", err)
		return
	}

	utils.SuccessResponse(c, record)
}

// UpdateRecord godoc
// @Summary Update a maintenance record
// @Description Applies a partial update; at least one field must be supplied
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body validators.MaintenanceUpdateRequest true "Fields to change"
// @Success 200 {object} models.MaintenanceRecord
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /maintenance/{id} [put]
func (h *MaintenanceHandler) UpdateRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid maintenance record ID")
		return
	}

	request := middleware.CleanBody(c).(*validators.MaintenanceUpdateRequest)
	if !request.HasUpdates() {
		utils.BadRequestResponse(c, "No fields to update")
		return
	}

	record, err := h.maintenanceService.UpdateRecord(c.Request.Context(), id, request)
	if err != nil {
		respondServiceError(c, h.logger, "Maintenance record", err)
		return
	}

	utils.SuccessResponse(c, record)
}

// DeleteRecord godoc
// @Summary Delete a maintenance record
// @Description Removes the record, cleans up its stored images, and returns the deleted record
// @Tags maintenance
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} models.MaintenanceRecord
// @Failure 404 {object} utils.ErrorBody
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) DeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid maintenance record ID")
		return
	}

	record, err := h.maintenanceService.DeleteRecord(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "Maintenance record", err)
		return
	}

	utils.SuccessResponse(c, record)
}
