package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PerformedByDIY      = "DIY"
	PerformedByWorkshop = "Workshop"
)

// MaintenanceRecord captures one maintenance event for a vehicle, including
// receipts and photos uploaded alongside it.
type MaintenanceRecord struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `json:"vehicleId" gorm:"type:uuid;not null;index"`
	Date      time.Time `json:"date"`
	Mileage   int       `json:"mileage" gorm:"not null"`

	TypeOfMaintenance string `json:"typeOfMaintenance" gorm:"column:maintenance_type;size:100;not null"`
	Description       string `json:"description" gorm:"type:text"`
	PerformedBy       string `json:"performedBy" gorm:"size:50;not null"`
	ServiceCenter     string `json:"serviceCenter" gorm:"size:255"`
	Cost              int    `json:"cost"`

	Parts []string `json:"parts" gorm:"serializer:json;type:jsonb"`

	OdometerImageURL string   `json:"odometerImageUrl" gorm:"column:odometer_image_url;size:255"`
	OdometerImageKey string   `json:"-" gorm:"size:255"`
	InvoicesURL      []string `json:"invoicesUrl" gorm:"column:invoices_url;serializer:json;type:jsonb"`
	InvoiceKeys      []string `json:"-" gorm:"serializer:json;type:jsonb"`
	PhotosURL        []string `json:"photosUrl" gorm:"column:photos_url;serializer:json;type:jsonb"`
	PhotoKeys        []string `json:"-" gorm:"serializer:json;type:jsonb"`

	NextServiceDate    *time.Time `json:"nextServiceDate"`
	NextServiceMileage *int       `json:"nextServiceMileage"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_history"
}

func (m *MaintenanceRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	return nil
}
