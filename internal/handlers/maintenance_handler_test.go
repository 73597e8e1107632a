package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"moovsafe/internal/models"

	"github.com/google/uuid"
)

func maintenancePayload(vehicleID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"vehicleId":         vehicleID.String(),
		"mileage":           61000,
		"typeOfMaintenance": "Oil change",
		"performedBy":       "Workshop",
	}
}

func TestCreateMaintenanceRecordJSON(t *testing.T) {
	stub := newStubMaintenanceService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newMaintenanceRouter(t, stub)

	recorder := doJSON(t, router, http.MethodPost, "/api/maintenance", maintenancePayload(vehicleID))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var record models.MaintenanceRecord
	if err := json.Unmarshal(recorder.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if record.VehicleID != vehicleID || record.TypeOfMaintenance != "Oil change" {
		t.Errorf("unexpected record: %+v", record)
	}
}

func TestCreateMaintenanceRecordUnknownVehicleReturns404(t *testing.T) {
	router := newMaintenanceRouter(t, newStubMaintenanceService())

	recorder := doJSON(t, router, http.MethodPost, "/api/maintenance", maintenancePayload(uuid.New()))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Vehicle not found" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestCreateMaintenanceRecordBadPerformedBy(t *testing.T) {
	stub := newStubMaintenanceService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newMaintenanceRouter(t, stub)

	payload := maintenancePayload(vehicleID)
	payload["performedBy"] = "Neighbour"

	recorder := doJSON(t, router, http.MethodPost, "/api/maintenance", payload)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Invalid data" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func multipartMaintenance(t *testing.T, vehicleID uuid.UUID, invoiceCount, photoCount int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("vehicleId", vehicleID.String())
	writer.WriteField("mileage", "61000")
	writer.WriteField("typeOfMaintenance", "Brake service")
	writer.WriteField("performedBy", "Workshop")

	odometer, err := writer.CreateFormFile("odometerImage", "odometer.jpg")
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	odometer.Write([]byte("image-bytes"))

	for i := 0; i < invoiceCount; i++ {
		part, err := writer.CreateFormFile("invoices", fmt.Sprintf("invoice%d.jpg", i))
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write([]byte("image-bytes"))
	}
	for i := 0; i < photoCount; i++ {
		part, err := writer.CreateFormFile("photos", fmt.Sprintf("photo%d.jpg", i))
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write([]byte("image-bytes"))
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	return &buf, writer.FormDataContentType()
}

func TestCreateMaintenanceRecordMultipart(t *testing.T) {
	stub := newStubMaintenanceService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newMaintenanceRouter(t, stub)

	body, contentType := multipartMaintenance(t, vehicleID, 2, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/maintenance", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if stub.lastUploads == nil {
		t.Fatal("expected uploads forwarded to the service")
	}
	if stub.lastUploads.OdometerImage == nil {
		t.Error("expected odometer image forwarded")
	}
	if len(stub.lastUploads.Invoices) != 2 || len(stub.lastUploads.Photos) != 1 {
		t.Errorf("unexpected uploads: %d invoices, %d photos",
			len(stub.lastUploads.Invoices), len(stub.lastUploads.Photos))
	}
}

func TestCreateMaintenanceRecordTooManyInvoices(t *testing.T) {
	stub := newStubMaintenanceService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newMaintenanceRouter(t, stub)

	body, contentType := multipartMaintenance(t, vehicleID, 6, 0)
	req := httptest.NewRequest(http.MethodPost, "/api/maintenance", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 6 invoices, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Too many invoice images" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestCreateMaintenanceRecordTooManyPhotos(t *testing.T) {
	stub := newStubMaintenanceService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newMaintenanceRouter(t, stub)

	body, contentType := multipartMaintenance(t, vehicleID, 0, 6)
	req := httptest.NewRequest(http.MethodPost, "/api/maintenance", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 6 photos, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Too many photos" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestListMaintenanceByLicensePlate(t *testing.T) {
	stub := newStubMaintenanceService()
	stub.plates["CA 123-456"] = []*models.MaintenanceRecord{
		{ID: uuid.New(), TypeOfMaintenance: "Oil change"},
	}
	router := newMaintenanceRouter(t, stub)

	recorder := doJSON(t, router, http.MethodGet, "/api/maintenance/vehicle/CA%20123-456", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var records []models.MaintenanceRecord
	if err := json.Unmarshal(recorder.Body.Bytes(), &records); err != nil {
		t.Fatalf("expected raw array: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected one record, got %d", len(records))
	}
}

func TestListMaintenanceByUnknownPlateReturns404(t *testing.T) {
	router := newMaintenanceRouter(t, newStubMaintenanceService())

	recorder := doJSON(t, router, http.MethodGet, "/api/maintenance/vehicle/XX%20000-000", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Vehicle not found" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestUpdateMaintenanceRecordEmptyBody(t *testing.T) {
	stub := newStubMaintenanceService()
	record := &models.MaintenanceRecord{ID: uuid.New()}
	stub.records[record.ID] = record
	router := newMaintenanceRouter(t, stub)

	recorder := doJSON(t, router, http.MethodPut, "/api/maintenance/"+record.ID.String(), map[string]interface{}{})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "No fields to update" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestUpdateMaintenanceRecord(t *testing.T) {
	stub := newStubMaintenanceService()
	record := &models.MaintenanceRecord{ID: uuid.New()}
	stub.records[record.ID] = record
	router := newMaintenanceRouter(t, stub)

	recorder := doJSON(t, router, http.MethodPut, "/api/maintenance/"+record.ID.String(),
		map[string]interface{}{"description": "Replaced front pads"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var updated models.MaintenanceRecord
	if err := json.Unmarshal(recorder.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Description != "Replaced front pads" {
		t.Errorf("unexpected record: %+v", updated)
	}
}

func TestDeleteMaintenanceRecord(t *testing.T) {
	stub := newStubMaintenanceService()
	record := &models.MaintenanceRecord{ID: uuid.New(), TypeOfMaintenance: "Oil change"}
	stub.records[record.ID] = record
	router := newMaintenanceRouter(t, stub)

	recorder := doJSON(t, router, http.MethodDelete, "/api/maintenance/"+record.ID.String(), nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodDelete, "/api/maintenance/"+record.ID.String(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Maintenance record not found" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}
