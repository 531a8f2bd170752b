package api

import (
	"errors"
	"net/http"

	"carewell/patient-api/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// failFlow translates a flow error into a response. Expected failures
// carry their own user-facing message, anything else is a storage or
// internal fault and only a generic body leaves the server.
func failFlow(c *gin.Context, requestID string, err error) {
	var status int

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrDuplicateEmail):
		status = http.StatusConflict
	case errors.Is(err, auth.ErrInvalidOrExpiredToken):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrUserNotFound):
		status = http.StatusNotFound
	case auth.IsValidationError(err):
		status = http.StatusBadRequest
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Flow failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(status, gin.H{
		"error":     err.Error(),
		"requestID": requestID,
	})
}
