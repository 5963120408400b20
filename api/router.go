package api

import (
	"net/http"

	"github.com/Domenick1991/airline/internal/service/aircraft"
	"github.com/Domenick1991/airline/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the flight and aircraft handlers under /api/v1.
func NewRouter(flightSvc flights.FlightUseCase, aircraftSvc aircraft.AircraftUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	NewFlightHandler(flightSvc).Register(v1.Group("/flights"))
	NewAircraftHandler(aircraftSvc).Register(v1.Group("/aircraft"))
	return router
}
