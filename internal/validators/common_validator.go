package validators

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"moovsafe/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report wire-format (json tag) field names in errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("uuid_ref", validateUUIDRef)
	validate.RegisterValidation("license_plate", validateLicensePlate)
	validate.RegisterValidation("vin_number", validateVIN)
	validate.RegisterValidation("date_only", validateDateOnly)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details converts validation errors into the response detail shape.
func (v ValidationErrors) Details() []utils.ErrorDetail {
	details := make([]utils.ErrorDetail, 0, len(v))
	for _, err := range v {
		details = append(details, utils.ErrorDetail{Field: err.Field, Message: err.Message})
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "uuid_ref":
		return fmt.Sprintf("%s must be a valid UUID", err.Field())
	case "license_plate":
		return "Invalid license plate format"
	case "vin_number":
		return "Invalid VIN number"
	case "date_only":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateUUIDRef(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func validateLicensePlate(fl validator.FieldLevel) bool {
	plate := fl.Field().String()
	if plate == "" {
		return true
	}

	plateRegex := regexp.MustCompile(`^[A-Z0-9\-\s]{2,10}$`)
	return plateRegex.MatchString(strings.ToUpper(plate))
}

func validateVIN(fl validator.FieldLevel) bool {
	vin := fl.Field().String()
	if vin == "" {
		return true
	}

	if len(vin) != 17 {
		return false
	}

	vinRegex := regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
	return vinRegex.MatchString(strings.ToUpper(vin))
}

func validateDateOnly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := utils.ParseDateOnly(value)
	return err == nil
}

// IsValidUUID reports whether id parses as a UUID.
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
