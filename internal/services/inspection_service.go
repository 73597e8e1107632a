package services

import (
	"context"
	"mime/multipart"
	"time"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/google/uuid"
)

// InspectionUploads carries the file parts of a multipart inspection
// submission.
type InspectionUploads struct {
	FaultsImages  []*multipart.FileHeader
	OdometerImage *multipart.FileHeader
}

type InspectionService interface {
	CreateInspection(ctx context.Context, request *validators.InspectionCreateRequest, uploads *InspectionUploads) (*models.Inspection, error)
	GetInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error)
	ListInspections(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error)
	ListInspectionsByDate(ctx context.Context, date time.Time) ([]*models.Inspection, error)
	DeleteInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error)
}

type inspectionService struct {
	inspectionRepo interfaces.InspectionRepository
	vehicleRepo    interfaces.VehicleRepository
	media          MediaService
	logger         *logger.Logger
}

func NewInspectionService(
	inspectionRepo interfaces.InspectionRepository,
	vehicleRepo interfaces.VehicleRepository,
	media MediaService,
	logger *logger.Logger,
) InspectionService {
	return &inspectionService{
		inspectionRepo: inspectionRepo,
		vehicleRepo:    vehicleRepo,
		media:          media,
		logger:         logger,
	}
}

func (s *inspectionService) CreateInspection(ctx context.Context, request *validators.InspectionCreateRequest, uploads *InspectionUploads) (*models.Inspection, error) {
	vehicleID, err := uuid.Parse(request.VehicleID)
	if err != nil {
		return nil, err
	}

	// The vehicle reference is checked up front so a missing vehicle fails
	// before any image reaches the object store.
	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	inspection := &models.Inspection{
		VehicleID:        vehicleID,
		Mileage:          *request.Mileage,
		OverallCondition: request.OverallCondition,

		ExteriorWindshield: request.ExteriorWindshield,
		ExteriorMirrors:    request.ExteriorMirrors,
		ExteriorLights:     request.ExteriorLights,
		ExteriorTires:      request.ExteriorTires,

		EngineOil:               request.EngineOil,
		EngineCoolant:           request.EngineCoolant,
		EngineBrakeFluid:        request.EngineBrakeFluid,
		EngineTransmissionFluid: request.EngineTransmissionFluid,
		EnginePowerSteering:     request.EnginePowerSteering,
		EngineBattery:           request.EngineBattery,

		InteriorSeats:     request.InteriorSeats,
		InteriorSeatbelts: request.InteriorSeatbelts,
		InteriorHorn:      request.InteriorHorn,
		InteriorAC:        request.InteriorAC,
		Windows:           request.Windows,

		Brakes:           request.Brakes,
		Exhaust:          request.Exhaust,
		LightsIndicators: request.LightsIndicators,

		SpareTire:        request.SpareTire,
		Jack:             request.Jack,
		WheelSpanner:     request.WheelSpanner,
		WheelLockNutTool: request.WheelLockNutTool,
		FireExtinguisher: request.FireExtinguisher,

		Notes: request.Notes,
	}

	if request.Date != "" {
		date, err := utils.ParseDateOnly(request.Date)
		if err != nil {
			return nil, err
		}
		inspection.Date = date
	}

	if uploads != nil && len(uploads.FaultsImages) > 0 {
		uploaded, err := s.media.UploadImages(ctx, utils.FolderInspectionFaults, uploads.FaultsImages)
		if err != nil {
			return nil, err
		}
		for _, file := range uploaded {
			inspection.FaultsImagesURL = append(inspection.FaultsImagesURL, file.URL)
			inspection.FaultsImageKeys = append(inspection.FaultsImageKeys, file.Key)
		}
	}

	if uploads != nil && uploads.OdometerImage != nil {
		uploaded, err := s.media.UploadImage(ctx, utils.FolderInspectionOdometer, uploads.OdometerImage)
		if err != nil {
			s.media.DeleteImages(ctx, inspection.FaultsImageKeys)
			return nil, err
		}
		inspection.OdometerImageURL = uploaded.URL
		inspection.OdometerImageKey = uploaded.Key
	}

	if err := s.inspectionRepo.Create(ctx, inspection); err != nil {
		// Keep the store consistent with the database when the insert fails.
		s.media.DeleteImages(ctx, append(append([]string{}, inspection.FaultsImageKeys...), inspection.OdometerImageKey))
		return nil, err
	}

	s.logger.WithVehicleID(vehicleID).WithField("inspection_id", inspection.ID.String()).Info("Inspection created")

	return inspection, nil
}

func (s *inspectionService) GetInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	return s.inspectionRepo.GetByID(ctx, id)
}

func (s *inspectionService) ListInspections(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	return s.inspectionRepo.List(ctx, params)
}

func (s *inspectionService) ListInspectionsByDate(ctx context.Context, date time.Time) ([]*models.Inspection, error) {
	start, end := utils.DayWindow(date)
	return s.inspectionRepo.ListByDateRange(ctx, start, end)
}

func (s *inspectionService) DeleteInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	inspection, err := s.inspectionRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	keys := append([]string{}, inspection.FaultsImageKeys...)
	if inspection.OdometerImageKey != "" {
		keys = append(keys, inspection.OdometerImageKey)
	}
	s.media.DeleteImages(ctx, keys)

	s.logger.WithField("inspection_id", id.String()).Info("Inspection deleted")

	return inspection, nil
}
