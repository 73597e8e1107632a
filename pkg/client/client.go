// Package client is a typed Go client for the fleet API, mirroring the calls
// the mobile app makes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moovsafe/internal/models"
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"

	"github.com/google/uuid"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx answer decoded from the error wire format.
type APIError struct {
	StatusCode int
	Body       utils.ErrorBody
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Body.Error)
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New returns a client rooted at baseURL, e.g. "http://localhost:3000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateVehicle(ctx context.Context, request *validators.VehicleCreateRequest) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.do(ctx, http.MethodPost, "/api/vehicles", nil, request, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.do(ctx, http.MethodGet, "/api/vehicles/"+id.String(), nil, nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := c.do(ctx, http.MethodGet, "/api/vehicles", nil, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *Client) GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.do(ctx, http.MethodGet, "/api/vehicles/license/"+url.PathEscape(licensePlate), nil, nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) UpdateVehicle(ctx context.Context, id uuid.UUID, request *validators.VehicleUpdateRequest) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.do(ctx, http.MethodPut, "/api/vehicles/"+id.String(), nil, request, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := c.do(ctx, http.MethodDelete, "/api/vehicles/"+id.String(), nil, nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *Client) CreateInspection(ctx context.Context, request *validators.InspectionCreateRequest) (*models.Inspection, error) {
	var inspection models.Inspection
	if err := c.do(ctx, http.MethodPost, "/api/inspections", nil, request, &inspection); err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (c *Client) GetInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	var inspection models.Inspection
	if err := c.do(ctx, http.MethodGet, "/api/inspections/"+id.String(), nil, nil, &inspection); err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (c *Client) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	var inspections []models.Inspection
	if err := c.do(ctx, http.MethodGet, "/api/inspections", nil, nil, &inspections); err != nil {
		return nil, err
	}
	return inspections, nil
}

// ListInspectionsByDate expects date in YYYY-MM-DD form.
func (c *Client) ListInspectionsByDate(ctx context.Context, date string) ([]models.Inspection, error) {
	query := url.Values{"date": {date}}
	var inspections []models.Inspection
	if err := c.do(ctx, http.MethodGet, "/api/inspections/date", query, nil, &inspections); err != nil {
		return nil, err
	}
	return inspections, nil
}

func (c *Client) DeleteInspection(ctx context.Context, id uuid.UUID) (*models.Inspection, error) {
	var inspection models.Inspection
	if err := c.do(ctx, http.MethodDelete, "/api/inspections/"+id.String(), nil, nil, &inspection); err != nil {
		return nil, err
	}
	return &inspection, nil
}

func (c *Client) CreateMaintenanceRecord(ctx context.Context, request *validators.MaintenanceCreateRequest) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := c.do(ctx, http.MethodPost, "/api/maintenance", nil, request, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) GetMaintenanceRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := c.do(ctx, http.MethodGet, "/api/maintenance/"+id.String(), nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) ListMaintenanceRecords(ctx context.Context) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	if err := c.do(ctx, http.MethodGet, "/api/maintenance", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) ListMaintenanceByLicensePlate(ctx context.Context, licensePlate string) ([]models.MaintenanceRecord, error) {
	var records []models.MaintenanceRecord
	path := "/api/maintenance/vehicle/" + url.PathEscape(licensePlate)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) UpdateMaintenanceRecord(ctx context.Context, id uuid.UUID, request *validators.MaintenanceUpdateRequest) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := c.do(ctx, http.MethodPut, "/api/maintenance/"+id.String(), nil, request, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) DeleteMaintenanceRecord(ctx context.Context, id uuid.UUID) (*models.MaintenanceRecord, error) {
	var record models.MaintenanceRecord
	if err := c.do(ctx, http.MethodDelete, "/api/maintenance/"+id.String(), nil, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr.Body); err != nil {
			apiErr.Body.Error = resp.Status
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
