package handlers

import (
	"net/http"

	"moovsafe/internal/services"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InspectionHandler struct {
	inspectionService services.InspectionService
	logger            *logger.Logger
}

func NewInspectionHandler(inspectionService services.InspectionService, logger *logger.Logger) *InspectionHandler {
	return &InspectionHandler{
		inspectionService: inspectionService,
		logger:            logger,
	}
}

// CreateInspection godoc
// @Summary Record an inspection
// @Description Accepts JSON or multipart/form-data; multipart bodies may attach up to 5 faultsImages and one odometerImage
// @Tags inspections
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param inspection body validators.InspectionCreateRequest true "Inspection"
// @Success 201 {object} models.Inspection
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /inspections [post]
func (h *InspectionHandler) CreateInspection(c *gin.Context) {
	var request validators.InspectionCreateRequest
	uploads := &services.InspectionUploads{}

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

		faults := form.File["faultsImages"]
		if len(faults) > utils.MaxFaultImages {
			utils.BadRequestResponse(c, "Too many fault images")
			return
		}
		uploads.FaultsImages = faults

		if odometer := form.File["odometerImage"]; len(odometer) > 0 {
			uploads.OdometerImage = odometer[0]
		}
	} else {
		if err := c.ShouldBindJSON(&request); err != nil {
			utils.ValidationErrorResponse(c, []utils.ErrorDetail{{Message: err.Error()}})
			return
		}
	}

	if errs := validators.ValidateInspectionCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	inspection, err := h.inspectionService.CreateInspection(c.Request.Context(), &request, uploads)
	if err != nil {
		// The only not-found a create can hit is the referenced vehicle.
		respondServiceError(c, h.logger, "Vehicle", err)
		return
	}

	utils.CreatedResponse(c, inspection)
}

// ListInspections godoc
// @Summary List inspections
// @Tags inspections
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {array} models.Inspection
// @Router /inspections [get]
func (h *InspectionHandler) ListInspections(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	inspections, total, err := h.inspectionService.ListInspections(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, "Inspection", err)
		return
	}

	if params != nil {
		utils.SetPaginationHeaders(c, utils.CreatePaginationMeta(params, total))
	}

	utils.SuccessResponse(c, inspections)
}

// ListInspectionsByDate godoc
// @Summary List inspections for a calendar day
// @Description Matches inspections whose timestamp falls inside the given UTC day; answers 404 when none match
// @Tags inspections
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.Inspection
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /inspections/date [get]
func (h *InspectionHandler) ListInspectionsByDate(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		utils.BadRequestResponse(c, "Date is required")
		return
	}

	date, err := utils.ParseDateOnly(raw)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	inspections, err := h.inspectionService.ListInspectionsByDate(c.Request.Context(), date)
	if err != nil {
		respondServiceError(c, h.logger, "Inspection", err)
		return
	}

	if len(inspections) == 0 {
		utils.ErrorResponse(c, http.StatusNotFound, "No inspections found for this date")
		return
	}

	utils.SuccessResponse(c, inspections)
}

// GetInspection godoc
// @Summary Get an inspection
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} models.Inspection
// @Failure 404 {object} utils.ErrorBody
// @Router /inspections/{id} [get]
func (h *InspectionHandler) GetInspection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inspection ID")
		return
	}

	inspection, err := h.inspectionService.GetInspection(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "Inspection", err)
		return
	}

	utils.SuccessResponse(c, inspection)
}

// DeleteInspection godoc
// @Summary Delete an inspection
// @Description Removes the inspection, cleans up its stored images, and returns the deleted record
// @Tags inspections
// @Produce json
// @Param id path string true "Inspection ID"
// @Success 200 {object} models.Inspection
// @Failure 404 {object} utils.ErrorBody
// @Router /inspections/{id} [delete]
func (h *InspectionHandler) DeleteInspection(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inspection ID")
		return
	}

	inspection, err := h.inspectionService.DeleteInspection(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, "Inspection", err)
		return
	}

	utils.SuccessResponse(c, inspection)
}
