package api

import (
	"net/http"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/service/aircraft"
	"github.com/gin-gonic/gin"
)

type AircraftHandler struct {
	service aircraft.AircraftUseCase
}

type registerAircraftRequest struct {
	AircraftID         string `json:"aircraft_id" binding:"required"`
	FirstClassSeats    int    `json:"first_class_seats"`
	BusinessClassSeats int    `json:"business_class_seats"`
	EconomyClassSeats  int    `json:"economy_class_seats"`
}

func NewAircraftHandler(service aircraft.AircraftUseCase) *AircraftHandler {
	return &AircraftHandler{service: service}
}

func (h *AircraftHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id", h.get)
}

func (h *AircraftHandler) create(c *gin.Context) {
	var req registerAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a := domain.Aircraft{
		ID:                 req.AircraftID,
		FirstClassSeats:    req.FirstClassSeats,
		BusinessClassSeats: req.BusinessClassSeats,
		EconomyClassSeats:  req.EconomyClassSeats,
	}
	if err := h.service.Register(c.Request.Context(), a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AircraftHandler) get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
