package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type createFlightRequest struct {
	FlightNumber string `json:"flight_number" binding:"required"`
	Origin       string `json:"origin" binding:"required"`
	Destination  string `json:"destination" binding:"required"`
	Schedule     string `json:"schedule" binding:"required"`
}

type assignAircraftRequest struct {
	AircraftID string `json:"aircraft_id" binding:"required"`
}

type flightResponse struct {
	FlightID          string   `json:"flight_id"`
	FlightNumber      string   `json:"flight_number"`
	AliasFlightNumber []string `json:"alias_flight_number"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	Schedule          string   `json:"schedule"`
	AircraftID        string   `json:"aircraft_id,omitempty"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.POST("/:id/aircraft", h.assign)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schedule, err := time.Parse(time.RFC3339Nano, req.Schedule)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule"})
		return
	}

	id, err := h.service.CreateFlight(c.Request.Context(), flights.CreateFlightInput{
		FlightNumber: req.FlightNumber,
		Origin:       req.Origin,
		Destination:  req.Destination,
		Schedule:     schedule,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"flight_id": id})
}

func (h *FlightHandler) assign(c *gin.Context) {
	var req assignAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	flightID := c.Param("id")
	if err := h.service.AssignAircraft(c.Request.Context(), flightID, req.AircraftID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": flightID, "aircraft_id": req.AircraftID})
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetFlight(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]flightResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toFlightResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		FlightID:          f.ID,
		FlightNumber:      f.FlightNumber,
		AliasFlightNumber: f.AliasFlightNumber,
		Origin:            f.Route.Origin,
		Destination:       f.Route.Destination,
		Schedule:          f.Route.Schedule.Format(time.RFC3339Nano),
		AircraftID:        f.AircraftID(),
	}
}
