package middleware

import (
	"moovsafe/internal/utils"
	"moovsafe/internal/validators"
	"moovsafe/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CleanBodyKey is the context key the validated request body is stored under.
const CleanBodyKey = "clean_body"

// ValidateBody returns a middleware that binds the JSON body into a fresh
// value from newRequest, validates it, and stores the typed result in the
// context for the handler. Malformed or invalid bodies are rejected with a
// 400 carrying field-level details. A nil factory is a programming error and
// answers 500 instead of panicking.
func ValidateBody(newRequest func() interface{}, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if newRequest == nil {
			if log != nil {
				log.WithRequestID(c.GetString("request_id")).Error("validation middleware configured without a request factory")
			}
			utils.InternalServerErrorResponse(c)
			c.Abort()
			return
		}

		req := newRequest()
		if err := c.ShouldBindJSON(req); err != nil {
			utils.ValidationErrorResponse(c, []utils.ErrorDetail{{Message: err.Error()}})
			c.Abort()
			return
		}

		if errs := validators.ValidateStruct(req); len(errs) > 0 {
			utils.ValidationErrorResponse(c, errs.Details())
			c.Abort()
			return
		}

		c.Set(CleanBodyKey, req)
		c.Next()
	}
}

// CleanBody retrieves the validated body stored by ValidateBody.
func CleanBody(c *gin.Context) interface{} {
	return c.MustGet(CleanBodyKey)
}
