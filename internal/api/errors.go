package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/maxaizer/jobboard/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// writeError maps the domain error taxonomy onto HTTP responses. Unknown
// faults are logged with detail and answered with a bare server error.
func writeError(c *gin.Context, err error) {

	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  validationErr.Fields,
		})
		return
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundErr.Error()})
		return
	}

	var forbiddenErr *models.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": forbiddenErr.Reason})
		return
	}

	var conflictErr *models.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusBadRequest, gin.H{"message": conflictErr.Message})
		return
	}

	var unavailableErr *models.UnavailableError
	if errors.As(err, &unavailableErr) {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("store unavailable on %v: %v", c.FullPath(), err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Service unavailable"})
		return
	}

	log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
		Errorf("unexpected error on %v: %v", c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}

func writeBodyError(c *gin.Context, err error) {
	if errors.Is(err, errSalaryNotNumeric) {
		writeError(c, models.NewValidationError("monthlySalary", "must be a number"))
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
}
