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

func inspectionPayload(vehicleID uuid.UUID) map[string]interface{} {
	return map[string]interface{}{
		"vehicleId":        vehicleID.String(),
		"mileage":          52000,
		"overallCondition": "good",
	}
}

func TestCreateInspectionJSON(t *testing.T) {
	stub := newStubInspectionService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newInspectionRouter(t, stub)

	recorder := doJSON(t, router, http.MethodPost, "/api/inspections", inspectionPayload(vehicleID))
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var inspection models.Inspection
	if err := json.Unmarshal(recorder.Body.Bytes(), &inspection); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if inspection.VehicleID != vehicleID {
		t.Errorf("unexpected record: %+v", inspection)
	}
}

func TestCreateInspectionUnknownVehicleReturns404(t *testing.T) {
	router := newInspectionRouter(t, newStubInspectionService())

	recorder := doJSON(t, router, http.MethodPost, "/api/inspections", inspectionPayload(uuid.New()))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Vehicle not found" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestCreateInspectionMissingFieldsReturns400(t *testing.T) {
	router := newInspectionRouter(t, newStubInspectionService())

	recorder := doJSON(t, router, http.MethodPost, "/api/inspections", map[string]interface{}{})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Invalid data" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func multipartInspection(t *testing.T, vehicleID uuid.UUID, faultCount int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.WriteField("vehicleId", vehicleID.String())
	writer.WriteField("mileage", "52000")
	writer.WriteField("overallCondition", "good")
	for i := 0; i < faultCount; i++ {
		part, err := writer.CreateFormFile("faultsImages", fmt.Sprintf("fault%d.jpg", i))
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

func TestCreateInspectionMultipart(t *testing.T) {
	stub := newStubInspectionService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newInspectionRouter(t, stub)

	body, contentType := multipartInspection(t, vehicleID, 2)
	req := httptest.NewRequest(http.MethodPost, "/api/inspections", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if stub.lastUploads == nil || len(stub.lastUploads.FaultsImages) != 2 {
		t.Errorf("expected two fault images forwarded, got %+v", stub.lastUploads)
	}
}

func TestCreateInspectionTooManyFaultImages(t *testing.T) {
	stub := newStubInspectionService()
	vehicleID := uuid.New()
	stub.vehicleIDs[vehicleID] = true
	router := newInspectionRouter(t, stub)

	body, contentType := multipartInspection(t, vehicleID, 6)
	req := httptest.NewRequest(http.MethodPost, "/api/inspections", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for 6 fault images, got %d", recorder.Code)
	}
}

func TestListInspectionsByDateEmptyReturns404(t *testing.T) {
	router := newInspectionRouter(t, newStubInspectionService())

	recorder := doJSON(t, router, http.MethodGet, "/api/inspections/date?date=2026-08-31", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty day, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "No inspections found for this date" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}

func TestListInspectionsByDateBadFormat(t *testing.T) {
	router := newInspectionRouter(t, newStubInspectionService())

	recorder := doJSON(t, router, http.MethodGet, "/api/inspections/date?date=31-08-2026", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, http.MethodGet, "/api/inspections/date", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing date, got %d", recorder.Code)
	}
}

func TestListInspectionsByDateReturnsMatches(t *testing.T) {
	stub := newStubInspectionService()
	stub.byDate = []*models.Inspection{{ID: uuid.New()}}
	router := newInspectionRouter(t, stub)

	recorder := doJSON(t, router, http.MethodGet, "/api/inspections/date?date=2026-08-31", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var inspections []models.Inspection
	if err := json.Unmarshal(recorder.Body.Bytes(), &inspections); err != nil {
		t.Fatalf("expected raw array: %v", err)
	}
	if len(inspections) != 1 {
		t.Errorf("expected one inspection, got %d", len(inspections))
	}
}

func TestDeleteInspectionNotFound(t *testing.T) {
	router := newInspectionRouter(t, newStubInspectionService())

	recorder := doJSON(t, router, http.MethodDelete, "/api/inspections/"+uuid.NewString(), nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if body := decodeError(t, recorder); body.Error != "Inspection not found" {
		t.Errorf("unexpected message: %q", body.Error)
	}
}
