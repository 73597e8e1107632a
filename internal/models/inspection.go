package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inspection is a point-in-time condition checklist for a vehicle. VehicleID
// is a soft reference; existence is checked at creation time but not enforced
// with a foreign key. Image keys are the object-store identifiers recorded at
// upload time so deletion never has to re-derive them from URLs.
type Inspection struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `json:"vehicleId" gorm:"type:uuid;not null;index"`
	Date      time.Time `json:"date" gorm:"not null"`
	Mileage   int       `json:"mileage" gorm:"not null"`

	OverallCondition string `json:"overallCondition" gorm:"size:100;not null"`

	// Exterior
	ExteriorWindshield string `json:"exteriorWindshield" gorm:"size:50"`
	ExteriorMirrors    string `json:"exteriorMirrors" gorm:"size:50"`
	ExteriorLights     string `json:"exteriorLights" gorm:"size:50"`
	ExteriorTires      string `json:"exteriorTires" gorm:"size:50"`

	// Engine & fluids
	EngineOil               string `json:"engineOil" gorm:"size:50"`
	EngineCoolant           string `json:"engineCoolant" gorm:"size:50"`
	EngineBrakeFluid        string `json:"engineBrakeFluid" gorm:"size:50"`
	EngineTransmissionFluid string `json:"engineTransmissionFluid" gorm:"size:50"`
	EnginePowerSteering     string `json:"enginePowerSteering" gorm:"size:50"`
	EngineBattery           string `json:"engineBattery" gorm:"size:50"`

	// Interior
	InteriorSeats     string `json:"interiorSeats" gorm:"size:50"`
	InteriorSeatbelts string `json:"interiorSeatbelts" gorm:"size:50"`
	InteriorHorn      string `json:"interiorHorn" gorm:"size:50"`
	InteriorAC        string `json:"interiorAC" gorm:"column:interior_ac;size:50"`
	Windows           string `json:"windows" gorm:"size:50"`

	// Mechanical / safety
	Brakes           string `json:"brakes" gorm:"size:50"`
	Exhaust          string `json:"exhaust" gorm:"size:50"`
	LightsIndicators string `json:"lightsIndicators" gorm:"size:50"`

	// Trunk kit
	SpareTire        string `json:"spareTire" gorm:"size:50"`
	Jack             string `json:"jack" gorm:"size:50"`
	WheelSpanner     string `json:"wheelSpanner" gorm:"size:50"`
	WheelLockNutTool string `json:"wheelLockNutTool" gorm:"size:50"`
	FireExtinguisher string `json:"fireExtinguisher" gorm:"size:50"`

	Notes string `json:"notes" gorm:"type:text"`

	FaultsImagesURL  []string `json:"faultsImagesUrl" gorm:"column:faults_images_url;serializer:json;type:jsonb"`
	FaultsImageKeys  []string `json:"-" gorm:"column:faults_image_keys;serializer:json;type:jsonb"`
	OdometerImageURL string   `json:"odometerImageUrl" gorm:"column:odometer_image_url;size:255"`
	OdometerImageKey string   `json:"-" gorm:"size:255"`
}

func (Inspection) TableName() string {
	return "inspections"
}

func (i *Inspection) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Date.IsZero() {
		i.Date = time.Now().UTC()
	}
	return nil
}
