package handlers

import (
	"errors"

	"moovsafe/internal/repositories/interfaces"
	"moovsafe/internal/services"
	"moovsafe/internal/utils"
	"moovsafe/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service-layer error into the wire format.
// Unexpected errors are logged with their cause and answered with an opaque
// 500; the client never sees internals.
func respondServiceError(c *gin.Context, log *logger.Logger, resource string, err error) {
	if errors.Is(err, interfaces.ErrNotFound) {
		utils.NotFoundResponse(c, resource)
		return
	}

	if conflict, ok := interfaces.AsConflict(err); ok {
		utils.ConflictResponse(c, resource+" already exists", conflict.Fields)
		return
	}

	if errors.Is(err, services.ErrInvalidImage) {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	log.WithError(err).WithField("path", c.FullPath()).Error("Request failed")
	utils.InternalServerErrorResponse(c)
}
