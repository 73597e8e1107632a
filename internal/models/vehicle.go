package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle is a fleet vehicle. VIN, license plate and engine number are each
// unique across the fleet; JSON field names follow the wire format the mobile
// client consumes.
type Vehicle struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Make           string        `json:"make" gorm:"size:255;not null"`
	Model          string        `json:"model" gorm:"size:255;not null"`
	Year           int           `json:"year" gorm:"not null"`
	VIN            string        `json:"vin" gorm:"column:vin;size:50;not null;uniqueIndex"`
	EngineNumber   string        `json:"engineNumber" gorm:"size:50;not null;uniqueIndex"`
	LicensePlate   string        `json:"licensePlate" gorm:"size:20;not null;uniqueIndex"`
	FuelType       string        `json:"fuelType" gorm:"size:100;not null"`
	Transmission   string        `json:"transmission" gorm:"size:50;not null"`
	CurrentMileage int           `json:"currentMileage" gorm:"not null"`
	Colour         string        `json:"colour" gorm:"size:50;not null"`
	VehicleType    string        `json:"vehicleType" gorm:"size:50"`
	ImageURL       string        `json:"imageUrl" gorm:"column:image_url;size:255"`
	Status         VehicleStatus `json:"status" gorm:"size:50;default:active"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
