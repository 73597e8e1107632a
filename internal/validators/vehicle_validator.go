package validators

import (
	"moovsafe/internal/models"
)

type VehicleCreateRequest struct {
	Make           string `json:"make" validate:"required,min=1,max=255"`
	Model          string `json:"model" validate:"required,min=1,max=255"`
	Year           int    `json:"year" validate:"required,min=1950,max=2100"`
	VIN            string `json:"vin" validate:"required,vin_number"`
	EngineNumber   string `json:"engineNumber" validate:"required,min=2,max=50"`
	LicensePlate   string `json:"licensePlate" validate:"required,license_plate"`
	FuelType       string `json:"fuelType" validate:"required,max=100"`
	Transmission   string `json:"transmission" validate:"required,max=50"`
	CurrentMileage *int   `json:"currentMileage" validate:"required,min=0"`
	Colour         string `json:"colour" validate:"required,max=50"`
	VehicleType    string `json:"vehicleType" validate:"omitempty,max=50"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

type VehicleUpdateRequest struct {
	Make           string `json:"make" validate:"omitempty,min=1,max=255"`
	Model          string `json:"model" validate:"omitempty,min=1,max=255"`
	Year           int    `json:"year" validate:"omitempty,min=1950,max=2100"`
	VIN            string `json:"vin" validate:"omitempty,vin_number"`
	EngineNumber   string `json:"engineNumber" validate:"omitempty,min=2,max=50"`
	LicensePlate   string `json:"licensePlate" validate:"omitempty,license_plate"`
	FuelType       string `json:"fuelType" validate:"omitempty,max=100"`
	Transmission   string `json:"transmission" validate:"omitempty,max=50"`
	CurrentMileage *int   `json:"currentMileage" validate:"omitempty,min=0"`
	Colour         string `json:"colour" validate:"omitempty,max=50"`
	VehicleType    string `json:"vehicleType" validate:"omitempty,max=50"`
	Status         string `json:"status" validate:"omitempty,oneof=active inactive maintenance"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}

// HasUpdates reports whether at least one field is set; partial updates with
// an empty body are rejected upstream with a 400.
func (r *VehicleUpdateRequest) HasUpdates() bool {
	return r.Make != "" || r.Model != "" || r.Year != 0 || r.VIN != "" ||
		r.EngineNumber != "" || r.LicensePlate != "" || r.FuelType != "" ||
		r.Transmission != "" || r.CurrentMileage != nil || r.Colour != "" ||
		r.VehicleType != "" || r.Status != ""
}

// Updates builds the column update map for the fields that were supplied.
func (r *VehicleUpdateRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Make != "" {
		updates["make"] = r.Make
	}
	if r.Model != "" {
		updates["model"] = r.Model
	}
	if r.Year != 0 {
		updates["year"] = r.Year
	}
	if r.VIN != "" {
		updates["vin"] = r.VIN
	}
	if r.EngineNumber != "" {
		updates["engine_number"] = r.EngineNumber
	}
	if r.LicensePlate != "" {
		updates["license_plate"] = r.LicensePlate
	}
	if r.FuelType != "" {
		updates["fuel_type"] = r.FuelType
	}
	if r.Transmission != "" {
		updates["transmission"] = r.Transmission
	}
	if r.CurrentMileage != nil {
		updates["current_mileage"] = *r.CurrentMileage
	}
	if r.Colour != "" {
		updates["colour"] = r.Colour
	}
	if r.VehicleType != "" {
		updates["vehicle_type"] = r.VehicleType
	}
	if r.Status != "" {
		updates["status"] = models.VehicleStatus(r.Status)
	}
	return updates
}
