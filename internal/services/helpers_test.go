package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"moovsafe/internal/models"
	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/utils"
	"moovsafe/pkg/logger"
	"moovsafe/pkg/storage"

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

// fileHeaders builds real multipart.FileHeader values by writing and
// re-parsing a multipart body; contents map filename to file body.
func fileHeaders(t *testing.T, field string, files map[string]string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, content := range files {
		part, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("failed to parse multipart form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[field]
}

func singleFileHeader(t *testing.T, field, name, content string) *multipart.FileHeader {
	t.Helper()
	headers := fileHeaders(t, field, map[string]string{name: content})
	if len(headers) != 1 {
		t.Fatalf("expected one header, got %d", len(headers))
	}
	return headers[0]
}

// fakeProvider is an in-memory storage.Provider. Upload answers a URL derived
// from the uploaded content so tests can assert ordering.
type fakeProvider struct {
	uploads   map[string]string
	deleted   []string
	failKeys  map[string]bool
	uploadErr error
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{uploads: map[string]string{}, failKeys: map[string]bool{}}
}

func (p *fakeProvider) Upload(ctx context.Context, request *storage.UploadRequest) (*storage.UploadResponse, error) {
	if p.uploadErr != nil {
		return nil, p.uploadErr
	}
	content, err := io.ReadAll(request.Reader)
	if err != nil {
		return nil, err
	}
	p.uploads[request.Key] = string(content)
	return &storage.UploadResponse{
		Key:  request.Key,
		URL:  "https://cdn.test/" + string(content),
		Size: int64(len(content)),
	}, nil
}

func (p *fakeProvider) Delete(ctx context.Context, key string) error {
	if p.failKeys[key] {
		return fmt.Errorf("delete failed for %s", key)
	}
	p.deleted = append(p.deleted, key)
	delete(p.uploads, key)
	return nil
}

func (p *fakeProvider) FileExists(ctx context.Context, key string) (bool, error) {
	_, ok := p.uploads[key]
	return ok, nil
}

func (p *fakeProvider) GetURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "https://cdn.test/signed/" + key, nil
}

// fakeVehicleRepo implements interfaces.VehicleRepository in memory with the
// same conflict semantics as the Postgres repository.
type fakeVehicleRepo struct {
	vehicles map[uuid.UUID]*models.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[uuid.UUID]*models.Vehicle{}}
}

func (r *fakeVehicleRepo) CreateUnique(ctx context.Context, vehicle *models.Vehicle) error {
	var fields []string
	hasPlate, hasVIN, hasEngine := false, false, false
	for _, existing := range r.vehicles {
		hasPlate = hasPlate || existing.LicensePlate == vehicle.LicensePlate
		hasVIN = hasVIN || existing.VIN == vehicle.VIN
		hasEngine = hasEngine || existing.EngineNumber == vehicle.EngineNumber
	}
	if hasPlate {
		fields = append(fields, "licensePlate")
	}
	if hasVIN {
		fields = append(fields, "vin")
	}
	if hasEngine {
		fields = append(fields, "engineNumber")
	}
	if len(fields) > 0 {
		return &interfaces.ConflictError{Fields: fields}
	}

	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return vehicle, nil
}

func (r *fakeVehicleRepo) GetByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error) {
	for _, vehicle := range r.vehicles {
		if strings.EqualFold(vehicle.LicensePlate, licensePlate) {
			return vehicle, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeVehicleRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	var vehicles []*models.Vehicle
	for _, vehicle := range r.vehicles {
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, int64(len(vehicles)), nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	if colour, ok := updates["colour"].(string); ok {
		vehicle.Colour = colour
	}
	if imageURL, ok := updates["image_url"].(string); ok {
		vehicle.ImageURL = imageURL
	}
	if vehicleType, ok := updates["vehicle_type"].(string); ok {
		vehicle.VehicleType = vehicleType
	}
	return vehicle, nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	delete(r.vehicles, id)
	return vehicle, nil
}

// fakeInspectionRepo captures the last date range it was queried with.
type fakeInspectionRepo struct {
	inspections map[uuid.UUID]*models.Inspection
	lastStart   time.Time
	lastEnd     time.Time
	createErr   error
}

func newFakeInspectionRepo() *fakeInspectionRepo {
	return &fakeInspectionRepo{inspections: map[uuid.UUID]*models.Inspection{}}
}

func (r *fakeInspectionRepo) Create(ctx context.Context, inspection *models.Inspection) error {
	if r.createErr != nil {
		return r.createErr
	}
	if inspection.ID == uuid.Nil {
		inspection.ID = uuid.New()
	}
	if inspection.Date.IsZero() {
		inspection.Date = time.Now().UTC()
	}
	r.inspections[inspection.ID] = inspection
	return nil
}

func (r *fakeInspectionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	inspection, ok := r.inspections[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return inspection, nil
}

func (r *fakeInspectionRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Inspection, int64, error) {
	var inspections []*models.Inspection
	for _, inspection := range r.inspections {
		inspections = append(inspections, inspection)
	}
	return inspections, int64(len(inspections)), nil
}

func (r *fakeInspectionRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*models.Inspection, error) {
	r.lastStart, r.lastEnd = start, end
	var matched []*models.Inspection
	for _, inspection := range r.inspections {
		if !inspection.Date.Before(start) && !inspection.Date.After(end) {
			matched = append(matched, inspection)
		}
	}
	return matched, nil
}

func (r *fakeInspectionRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	inspection, ok := r.inspections[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	delete(r.inspections, id)
	return inspection, nil
}

type fakeMaintenanceRepo struct {
	records map[uuid.UUID]*models.MaintenanceRecord
	updates map[string]interface{}
}

func newFakeMaintenanceRepo() *fakeMaintenanceRepo {
	return &fakeMaintenanceRepo{records: map[uuid.UUID]*models.MaintenanceRecord{}}
}

func (r *fakeMaintenanceRepo) Create(ctx context.Context, record *models.MaintenanceRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeMaintenanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return record, nil
}

func (r *fakeMaintenanceRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.MaintenanceRecord, int64, error) {
	var records []*models.MaintenanceRecord
	for _, record := range r.records {
		records = append(records, record)
	}
	return records, int64(len(records)), nil
}

func (r *fakeMaintenanceRepo) ListByVehicleID(ctx context.Context, vehicleID uuid.UUID) ([]*models.MaintenanceRecord, error) {
	var records []*models.MaintenanceRecord
	for _, record := range r.records {
		if record.VehicleID == vehicleID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (r *fakeMaintenanceRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.MaintenanceRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	r.updates = updates
	return record, nil
}

func (r *fakeMaintenanceRepo) Delete(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	delete(r.records, id)
	return record, nil
}
