package services

import (
	"context"
	"mime/multipart"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/google/uuid"
)

// MaintenanceUploads carries the file parts of a multipart maintenance
// submission.
type MaintenanceUploads struct {
	OdometerImage *multipart.FileHeader
	Invoices      []*multipart.FileHeader
	Photos        []*multipart.FileHeader
}

type MaintenanceService interface {
	CreateRecord(ctx context.Context, request *validators.MaintenanceCreateRequest, uploads *MaintenanceUploads) (*models.MaintenanceRecord, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error)
	ListRecords(ctx context.Context, params *utils.PaginationParams) ([]*models.MaintenanceRecord, int64, error)
	ListRecordsByLicensePlate(ctx context.Context, licensePlate string) ([]*models.MaintenanceRecord, error)
	UpdateRecord(ctx context.Context, id uuid.UUID, request *validators.MaintenanceUpdateRequest) (*models.MaintenanceRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error)
}

type maintenanceService struct {
	maintenanceRepo interfaces.MaintenanceRepository
	vehicleRepo     interfaces.VehicleRepository
	media           MediaService
	logger          *logger.Logger
}

func NewMaintenanceService(
	maintenanceRepo interfaces.MaintenanceRepository,
	vehicleRepo interfaces.VehicleRepository,
	media MediaService,
	logger *logger.Logger,
) MaintenanceService {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		media:           media,
		logger:          logger,
	}
}

func (s *maintenanceService) CreateRecord(ctx context.Context, request *validators.MaintenanceCreateRequest, uploads *MaintenanceUploads) (*models.MaintenanceRecord, error) {
	vehicleID, err := uuid.Parse(request.VehicleID)
	if err != nil {
		return nil, err
	}

	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	record := &models.MaintenanceRecord{
		VehicleID:          vehicleID,
		Mileage:            *request.Mileage,
		TypeOfMaintenance:  request.TypeOfMaintenance,
		Description:        request.Description,
		PerformedBy:        request.PerformedBy,
		ServiceCenter:      request.ServiceCenter,
		Parts:              request.Parts,
		NextServiceMileage: request.NextServiceMileage,
	}
	if request.Cost != nil {
		record.Cost = *request.Cost
	}

	if request.Date != "" {
		date, err := utils.ParseDateOnly(request.Date)
		if err != nil {
			return nil, err
		}
		record.Date = date
	}
	if request.NextServiceDate != "" {
		next, err := utils.ParseDateOnly(request.NextServiceDate)
		if err != nil {
			return nil, err
		}
		record.NextServiceDate = &next
	}

	var uploadedKeys []string
	rollback := func() { s.media.DeleteImages(ctx, uploadedKeys) }

	if uploads != nil && uploads.OdometerImage != nil {
		uploaded, err := s.media.UploadImage(ctx, utils.FolderMaintenanceOdo, uploads.OdometerImage)
		if err != nil {
			return nil, err
		}
		record.OdometerImageURL = uploaded.URL
		record.OdometerImageKey = uploaded.Key
		uploadedKeys = append(uploadedKeys, uploaded.Key)
	}

	if uploads != nil && len(uploads.Invoices) > 0 {
		uploaded, err := s.media.UploadImages(ctx, utils.FolderMaintenanceInvoice, uploads.Invoices)
		if err != nil {
			rollback()
			return nil, err
		}
		for _, file := range uploaded {
			record.InvoicesURL = append(record.InvoicesURL, file.URL)
			record.InvoiceKeys = append(record.InvoiceKeys, file.Key)
			uploadedKeys = append(uploadedKeys, file.Key)
		}
	}

	if uploads != nil && len(uploads.Photos) > 0 {
		uploaded, err := s.media.UploadImages(ctx, utils.FolderMaintenancePhotos, uploads.Photos)
		if err != nil {
			rollback()
			return nil, err
		}
		for _, file := range uploaded {
			record.PhotosURL = append(record.PhotosURL, file.URL)
			record.PhotoKeys = append(record.PhotoKeys, file.Key)
			uploadedKeys = append(uploadedKeys, file.Key)
		}
	}

	if err := s.maintenanceRepo.Create(ctx, record); err != nil {
		rollback()
		return nil, err
	}

	s.logger.WithVehicleID(vehicleID).WithField("maintenance_id", record.ID.String()).Info("Maintenance record created")

	return record, nil
}

func (s *maintenanceService) GetRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	return s.maintenanceRepo.GetByID(ctx, id)
}

func (s *maintenanceService) ListRecords(ctx context.Context, params *utils.PaginationParams) ([]*models.MaintenanceRecord, int64, error) {
	return s.maintenanceRepo.List(ctx, params)
}

// ListRecordsByLicensePlate resolves the plate to a vehicle first; an unknown
// plate is a vehicle-level not-found, not an empty history.
func (s *maintenanceService) ListRecordsByLicensePlate(ctx context.Context, licensePlate string) ([]*models.MaintenanceRecord, error) {
	vehicle, err := s.vehicleRepo.GetByLicensePlate(ctx, licensePlate)
	if err != nil {
		return nil, err
	}

	return s.maintenanceRepo.ListByVehicleID(ctx, vehicle.ID)
}

func (s *maintenanceService) UpdateRecord(ctx context.Context, id uuid.UUID, request *validators.MaintenanceUpdateRequest) (*models.MaintenanceRecord, error) {
	updates := map[string]interface{}{}

	if request.VehicleID != "" {
		vehicleID, err := uuid.Parse(request.VehicleID)
		if err != nil {
			return nil, err
		}
		if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
			return nil, err
		}
		updates["vehicle_id"] = vehicleID
	}
	if request.Date != "" {
		date, err := utils.ParseDateOnly(request.Date)
		if err != nil {
			return nil, err
		}
		updates["date"] = date
	}
	if request.Mileage != nil {
		updates["mileage"] = *request.Mileage
	}
	if request.TypeOfMaintenance != "" {
		updates["maintenance_type"] = request.TypeOfMaintenance
	}
	if request.Description != "" {
		updates["description"] = request.Description
	}
	if request.PerformedBy != "" {
		updates["performed_by"] = request.PerformedBy
	}
	if request.ServiceCenter != "" {
		updates["service_center"] = request.ServiceCenter
	}
	if request.Cost != nil {
		updates["cost"] = *request.Cost
	}
	if request.Parts != nil {
		updates["parts"] = request.Parts
	}
	if request.NextServiceDate != "" {
		next, err := utils.ParseDateOnly(request.NextServiceDate)
		if err != nil {
			return nil, err
		}
		updates["next_service_date"] = next
	}
	if request.NextServiceMileage != nil {
		updates["next_service_mileage"] = *request.NextServiceMileage
	}

	record, err := s.maintenanceRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("maintenance_id", id.String()).Info("Maintenance record updated")

	return record, nil
}

func (s *maintenanceService) DeleteRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	record, err := s.maintenanceRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	var keys []string
	if record.OdometerImageKey != "" {
		keys = append(keys, record.OdometerImageKey)
	}
	keys = append(keys, record.InvoiceKeys...)
	keys = append(keys, record.PhotoKeys...)
	s.media.DeleteImages(ctx, keys)

	s.logger.WithField("maintenance_id", id.String()).Info("Maintenance record deleted")

	return record, nil
}
