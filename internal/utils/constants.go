package utils

// Application constants
const (
	AppName    = "MoovSafe"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// File upload
	MaxImageSize = 5 * 1024 * 1024 // 5MB

	// Multipart field limits
	MaxFaultImages    = 5
	MaxInvoiceUploads = 5
	MaxPhotoUploads   = 5

	// Object store folder prefixes
	FolderInspectionFaults   = "moovsafe/inspections/faults"
	FolderInspectionOdometer = "moovsafe/inspections/odometer"
	FolderMaintenanceInvoice = "moovsafe/maintenance/invoices"
	FolderMaintenancePhotos  = "moovsafe/maintenance/photos"
	FolderMaintenanceOdo     = "moovsafe/maintenance/odometer"
)

// Response status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common error messages
const (
	ErrValidationFailed = "Invalid data"
	ErrInternalServer   = "Internal Server Error"
)
