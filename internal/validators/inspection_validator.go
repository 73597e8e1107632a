package validators

// InspectionCreateRequest binds both JSON and multipart form bodies; file
// parts (faultsImages, odometerImage) are read from the multipart form by the
// handler, not bound here.
type InspectionCreateRequest struct {
	VehicleID        string `json:"vehicleId" form:"vehicleId" validate:"required,uuid_ref"`
	Date             string `json:"date" form:"date" validate:"omitempty,date_only"`
	Mileage          *int   `json:"mileage" form:"mileage" validate:"required,min=0"`
	OverallCondition string `json:"overallCondition" form:"overallCondition" validate:"required,max=100"`

	ExteriorWindshield string `json:"exteriorWindshield" form:"exteriorWindshield" validate:"omitempty,max=50"`
	ExteriorMirrors    string `json:"exteriorMirrors" form:"exteriorMirrors" validate:"omitempty,max=50"`
	ExteriorLights     string `json:"exteriorLights" form:"exteriorLights" validate:"omitempty,max=50"`
	ExteriorTires      string `json:"exteriorTires" form:"exteriorTires" validate:"omitempty,max=50"`

	EngineOil               string `json:"engineOil" form:"engineOil" validate:"omitempty,max=50"`
	EngineCoolant           string `json:"engineCoolant" form:"engineCoolant" validate:"omitempty,max=50"`
	EngineBrakeFluid        string `json:"engineBrakeFluid" form:"engineBrakeFluid" validate:"omitempty,max=50"`
	EngineTransmissionFluid string `json:"engineTransmissionFluid" form:"engineTransmissionFluid" validate:"omitempty,max=50"`
	EnginePowerSteering     string `json:"enginePowerSteering" form:"enginePowerSteering" validate:"omitempty,max=50"`
	EngineBattery           string `json:"engineBattery" form:"engineBattery" validate:"omitempty,max=50"`

	InteriorSeats     string `json:"interiorSeats" form:"interiorSeats" validate:"omitempty,max=50"`
	InteriorSeatbelts string `json:"interiorSeatbelts" form:"interiorSeatbelts" validate:"omitempty,max=50"`
	InteriorHorn      string `json:"interiorHorn" form:"interiorHorn" validate:"omitempty,max=50"`
	InteriorAC        string `json:"interiorAC" form:"interiorAC" validate:"omitempty,max=50"`
	Windows           string `json:"windows" form:"windows" validate:"omitempty,max=50"`

	Brakes           string `json:"brakes" form:"brakes" validate:"omitempty,max=50"`
	Exhaust          string `json:"exhaust" form:"exhaust" validate:"omitempty,max=50"`
	LightsIndicators string `json:"lightsIndicators" form:"lightsIndicators" validate:"omitempty,max=50"`

	SpareTire        string `json:"spareTire" form:"spareTire" validate:"omitempty,max=50"`
	Jack             string `json:"jack" form:"jack" validate:"omitempty,max=50"`
	WheelSpanner     string `json:"wheelSpanner" form:"wheelSpanner" validate:"omitempty,max=50"`
	WheelLockNutTool string `json:"wheelLockNutTool" form:"wheelLockNutTool" validate:"omitempty,max=50"`
	FireExtinguisher string `json:"fireExtinguisher" form:"fireExtinguisher" validate:"omitempty,max=50"`

	Notes string `json:"notes" form:"notes" validate:"omitempty,max=5000"`
}

func ValidateInspectionCreate(req *InspectionCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}
