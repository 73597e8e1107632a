package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"moovsafe/internal/handlers"
	"moovsafe/internal/middleware"
	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/services"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"
	"moovsafe/routes"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	if err != nil {
		t.Fatalf("failed to build logger: %v", err)
	}
	log.SetOutput(io.Discard)
	return log
}

func intPtr(v int) *int { return &v }

// stubVehicleService implements services.VehicleService with canned data.
type stubVehicleService struct {
	vehicles  map[uuid.UUID]*models.Vehicle
	createErr error
}

func newStubVehicleService() *stubVehicleService {
	return &stubVehicleService{vehicles: map[uuid.UUID]*models.Vehicle{}}
}

func (s *stubVehicleService) CreateVehicle(ctx context.Context, request *validators.VehicleCreateRequest) (*models.Vehicle, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	vehicle := &models.Vehicle{
		ID:           uuid.New(),
		Make:         request.Make,
		Model:        request.Model,
		Year:         request.Year,
		VIN:          request.VIN,
		EngineNumber: request.EngineNumber,
		LicensePlate: request.LicensePlate,
		Status:       models.VehicleStatusActive,
	}
	s.vehicles[vehicle.ID] = vehicle
	return vehicle, nil
}

func (s *stubVehicleService) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return vehicle, nil
}

func (s *stubVehicleService) GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error) {
	for _, vehicle := range s.vehicles {
		if vehicle.LicensePlate == licensePlate {
			return vehicle, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (s *stubVehicleService) ListVehicles(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	var vehicles []*models.Vehicle
	for _, vehicle := range s.vehicles {
		vehicles = append(vehicles, vehicle)
	}
	if vehicles == nil {
		vehicles = []*models.Vehicle{}
	}
	return vehicles, int64(len(vehicles)), nil
}

func (s *stubVehicleService) UpdateVehicle(ctx context.Context, id uuid.UUID, request *validators.VehicleUpdateRequest) (*models.Vehicle, error) {
	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	if request.Colour != "" {
		vehicle.Colour = request.Colour
	}
	return vehicle, nil
}

func (s *stubVehicleService) DeleteVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	delete(s.vehicles, id)
	return vehicle, nil
}

func newVehicleRouter(t *testing.T, stub *stubVehicleService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := newTestLogger(t)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())

	api := router.Group("/api")
	routes.SetupVehicleRoutes(api, handlers.NewVehicleHandler(stub, log), log)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()
	var body utils.ErrorBody
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", recorder.Body.String(), err)
	}
	return body
}

// stubInspectionService implements services.InspectionService. Known vehicle
// IDs gate creation the way the real service checks the registry.
type stubInspectionService struct {
	inspections map[uuid.UUID]*models.Inspection
	byDate      []*models.Inspection
	vehicleIDs  map[uuid.UUID]bool
	lastUploads *services.InspectionUploads
}

func newStubInspectionService() *stubInspectionService {
	return &stubInspectionService{
		inspections: map[uuid.UUID]*models.Inspection{},
		vehicleIDs:  map[uuid.UUID]bool{},
	}
}

func (s *stubInspectionService) CreateInspection(ctx context.Context, request *validators.InspectionCreateRequest, uploads *services.InspectionUploads) (*models.Inspection, error) {
	vehicleID, err := uuid.Parse(request.VehicleID)
	if err != nil {
		return nil, err
	}
	if !s.vehicleIDs[vehicleID] {
		return nil, interfaces.ErrNotFound
	}
	s.lastUploads = uploads

	inspection := &models.Inspection{
		ID:               uuid.New(),
		VehicleID:        vehicleID,
		Date:             time.Now().UTC(),
		Mileage:          *request.Mileage,
		OverallCondition: request.OverallCondition,
	}
	s.inspections[inspection.ID] = inspection
	return inspection, nil
}

func (s *stubInspectionService) GetInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	inspection, ok := s.inspections[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return inspection, nil
}

func (s *stubInspectionService) ListInspections(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	inspections := []*models.Inspection{}
	for _, inspection := range s.inspections {
		inspections = append(inspections, inspection)
	}
	return inspections, int64(len(inspections)), nil
}

func (s *stubInspectionService) ListInspectionsByDate(ctx context.Context, date time.Time) ([]*models.Inspection, error) {
	return s.byDate, nil
}

func (s *stubInspectionService) DeleteInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	inspection, ok := s.inspections[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	delete(s.inspections, id)
	return inspection, nil
}

func newInspectionRouter(t *testing.T, stub *stubInspectionService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	routes.SetupInspectionRoutes(api, handlers.NewInspectionHandler(stub, newTestLogger(t)))

	return router
}

// stubMaintenanceService implements services.MaintenanceService. Histories
// are keyed by license plate; an unknown plate is a vehicle-level not-found.
type stubMaintenanceService struct {
	records     map[uuid.UUID]*models.MaintenanceRecord
	vehicleIDs  map[uuid.UUID]bool
	plates      map[string][]*models.MaintenanceRecord
	lastUploads *services.MaintenanceUploads
}

func newStubMaintenanceService() *stubMaintenanceService {
	return &stubMaintenanceService{
		records:    map[uuid.UUID]*models.MaintenanceRecord{},
		vehicleIDs: map[uuid.UUID]bool{},
		plates:     map[string][]*models.MaintenanceRecord{},
	}
}

func (s *stubMaintenanceService) CreateRecord(ctx context.Context, request *validators.MaintenanceCreateRequest, uploads *services.MaintenanceUploads) (*models.MaintenanceRecord, error) {
	vehicleID, err := uuid.Parse(request.VehicleID)
	if err != nil {
		return nil, err
	}
	if !s.vehicleIDs[vehicleID] {
		return nil, interfaces.ErrNotFound
	}
	s.lastUploads = uploads

	record := &models.MaintenanceRecord{
		ID:                uuid.New(),
		VehicleID:         vehicleID,
		Mileage:           *request.Mileage,
		TypeOfMaintenance: request.TypeOfMaintenance,
		PerformedBy:       request.PerformedBy,
	}
	s.records[record.ID] = record
	return record, nil
}

func (s *stubMaintenanceService) GetRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return record, nil
}

func (s *stubMaintenanceService) ListRecords(ctx context.Context, params *utils.PaginationParams) ([]*models.MaintenanceRecord, int64, error) {
	records := []*models.MaintenanceRecord{}
	for _, record := range s.records {
		records = append(records, record)
	}
	return records, int64(len(records)), nil
}

func (s *stubMaintenanceService) ListRecordsByLicensePlate(ctx context.Context, licensePlate string) ([]*models.MaintenanceRecord, error) {
	records, ok := s.plates[licensePlate]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return records, nil
}

func (s *stubMaintenanceService) UpdateRecord(ctx context.Context, id uuid.UUID, request *validators.MaintenanceUpdateRequest) (*models.MaintenanceRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	if request.Description != "" {
		record.Description = request.Description
	}
	return record, nil
}

func (s *stubMaintenanceService) DeleteRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	delete(s.records, id)
	return record, nil
}

func newMaintenanceRouter(t *testing.T, stub *stubMaintenanceService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := newTestLogger(t)
	router := gin.New()
	api := router.Group("/api")
	routes.SetupMaintenanceRoutes(api, handlers.NewMaintenanceHandler(stub, log), log)

	return router
}

