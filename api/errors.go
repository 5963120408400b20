package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/registry"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrScheduleInPast), errors.Is(err, domain.ErrInvalidAircraft):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrFlightNotFound), errors.Is(err, domain.ErrAircraftNotFound):
		return http.StatusNotFound
	case errors.Is(err, registry.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
