package validators

// MaintenanceCreateRequest binds multipart form fields; the file parts
// (odometerImage, invoices, photos) are handled by the handler.
type MaintenanceCreateRequest struct {
	VehicleID          string   `json:"vehicleId" form:"vehicleId" validate:"required,uuid_ref"`
	Date               string   `json:"date" form:"date" validate:"omitempty,date_only"`
	Mileage            *int     `json:"mileage" form:"mileage" validate:"required,min=0"`
	TypeOfMaintenance  string   `json:"typeOfMaintenance" form:"typeOfMaintenance" validate:"required,max=100"`
	Description        string   `json:"description" form:"description" validate:"omitempty,max=5000"`
	PerformedBy        string   `json:"performedBy" form:"performedBy" validate:"required,oneof=DIY Workshop"`
	ServiceCenter      string   `json:"serviceCenter" form:"serviceCenter" validate:"omitempty,max=255"`
	Cost               *int     `json:"cost" form:"cost" validate:"omitempty,min=0"`
	Parts              []string `json:"parts" form:"parts" validate:"omitempty,dive,max=255"`
	NextServiceDate    string   `json:"nextServiceDate" form:"nextServiceDate" validate:"omitempty,date_only"`
	NextServiceMileage *int     `json:"nextServiceMileage" form:"nextServiceMileage" validate:"omitempty,min=0"`
}

type MaintenanceUpdateRequest struct {
	VehicleID          string   `json:"vehicleId" validate:"omitempty,uuid_ref"`
	Date               string   `json:"date" validate:"omitempty,date_only"`
	Mileage            *int     `json:"mileage" validate:"omitempty,min=0"`
	TypeOfMaintenance  string   `json:"typeOfMaintenance" validate:"omitempty,max=100"`
	Description        string   `json:"description" validate:"omitempty,max=5000"`
	PerformedBy        string   `json:"performedBy" validate:"omitempty,oneof=DIY Workshop"`
	ServiceCenter      string   `json:"serviceCenter" validate:"omitempty,max=255"`
	Cost               *int     `json:"cost" validate:"omitempty,min=0"`
	Parts              []string `json:"parts" validate:"omitempty,dive,max=255"`
	NextServiceDate    string   `json:"nextServiceDate" validate:"omitempty,date_only"`
	NextServiceMileage *int     `json:"nextServiceMileage" validate:"omitempty,min=0"`
}

func ValidateMaintenanceCreate(req *MaintenanceCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateMaintenanceUpdate(req *MaintenanceUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func (r *MaintenanceUpdateRequest) HasUpdates() bool {
	return r.VehicleID != "" || r.Date != "" || r.Mileage != nil ||
		r.TypeOfMaintenance != "" || r.Description != "" || r.PerformedBy != "" ||
		r.ServiceCenter != "" || r.Cost != nil || r.Parts != nil ||
		r.NextServiceDate != "" || r.NextServiceMileage != nil
}
