package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is one field-level problem inside an error response.
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorBody is the error wire format: { error, details? }. Success responses
// carry the raw record or list instead of an envelope.
type ErrorBody struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

func ErrorResponseWithDetails(c *gin.Context, statusCode int, message string, details []ErrorDetail) {
	c.JSON(statusCode, ErrorBody{Error: message, Details: details})
}

func ValidationErrorResponse(c *gin.Context, details []ErrorDetail) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrValidationFailed, details)
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, resource string) {
	ErrorResponse(c, http.StatusNotFound, resource+" not found")
}

// ConflictResponse enumerates the colliding fields of a uniqueness violation.
func ConflictResponse(c *gin.Context, message string, fields []string) {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range fields {
		details = append(details, ErrorDetail{Field: field, Message: field + " already exists"})
	}
	ErrorResponseWithDetails(c, http.StatusConflict, message, details)
}

// InternalServerErrorResponse deliberately hides the cause from the client;
// callers log it server side.
func InternalServerErrorResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, ErrInternalServer)
}
