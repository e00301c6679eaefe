package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"fluffyrudy-blog-api/models"
)

// GetStatusCode maps a service error onto the HTTP status it is surfaced as.
// Unrecognized errors are treated as store failures.
func GetStatusCode(err error) int {
	var (
		validationErr models.ErrorValidation
		notFoundErr   models.ErrorNotFound
		conflictErr   models.ErrorConflict
		inUseErr      models.ErrorInUse
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &inUseErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes the JSON error body for a service error. Store failures
// are logged and answered with a generic message so internal details never
// reach the client.
func SendError(c *gin.Context, err error) {
	var inUseErr models.ErrorInUse
	if errors.As(err, &inUseErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     inUseErr.Message,
			"postCount": inUseErr.PostCount,
		})
		return
	}

	var validationErr models.ErrorValidation
	if errors.As(err, &validationErr) && len(validationErr.Invalid) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   validationErr.Message,
			"invalid": validationErr.Invalid,
		})
		return
	}

	status := GetStatusCode(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
