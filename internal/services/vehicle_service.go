package services

import (
	"context"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/google/uuid"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, request *validators.VehicleCreateRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	UpdateVehicle(ctx context.Context, id uuid.UUID, request *validators.VehicleUpdateRequest) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	stockImages StockImageCatalog
	logger      *logger.Logger
}

func NewVehicleService(
	vehicleRepo interfaces.VehicleRepository,
	stockImages StockImageCatalog,
	logger *logger.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		stockImages: stockImages,
		logger:      logger,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, request *validators.VehicleCreateRequest) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		Make:           request.Make,
		Model:          request.Model,
		Year:           request.Year,
		VIN:            request.VIN,
		EngineNumber:   request.EngineNumber,
		LicensePlate:   request.LicensePlate,
		FuelType:       request.FuelType,
		Transmission:   request.Transmission,
		CurrentMileage: *request.CurrentMileage,
		Colour:         request.Colour,
		VehicleType:    request.VehicleType,
		ImageURL:       s.stockImages.ImageFor(request.VehicleType),
		Status:         models.VehicleStatusActive,
	}
	if request.Status != "" {
		vehicle.Status = models.VehicleStatus(request.Status)
	}

	if err := s.vehicleRepo.CreateUnique(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.WithVehicleID(vehicle.ID).WithField("license_plate", vehicle.LicensePlate).Info("Vehicle created")

	return vehicle, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error) {
	return s.vehicleRepo.GetByLicensePlate(ctx, licensePlate)
}

func (s *vehicleService) ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, params)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, request *validators.VehicleUpdateRequest) (*models.Vehicle, error) {
	updates := request.Updates()

	// Changing the vehicle type refreshes the stock image to match.
	if request.VehicleType != "" {
		updates["image_url"] = s.stockImages.ImageFor(request.VehicleType)
	}

	vehicle, err := s.vehicleRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.logger.WithVehicleID(id).Info("Vehicle updated")

	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.WithVehicleID(id).Info("Vehicle deleted")

	return vehicle, nil
}
