package handlers

import (
	"net/http"
	"strconv"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/http/middleware"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/services"

	"github.com/gin-gonic/gin"
)

func tripIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid trip id", nil)
		return 0, false
	}
	return id, true
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	repo := repositories.TripRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load trips", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createTripRequest struct {
	TripID          int    `json:"trip_id"`
	DateTime        string `json:"date_time"`
	CurrentCapacity int    `json:"current_capacity"`
	BusLicensePlate string `json:"bus_license_plate"`
	Driver          string `json:"driver"`
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var req createTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	trip := models.Trip{
		TripID:          req.TripID,
		DateTime:        req.DateTime,
		CurrentCapacity: req.CurrentCapacity,
		BusLicensePlate: req.BusLicensePlate,
	}
	if req.Driver != "" {
		trip.DriverEmail = &req.Driver
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	if err := svc.CreateTrip(trip); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip created successfully",
		"trip_id": req.TripID,
	})
}

// GET /api/trips/:id
// Returns the trip with its ordered stops; itinerary entries whose stop was
// deleted are skipped.
func GetTrip(c *gin.Context) {
	id, ok := tripIDParam(c)
	if !ok {
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	detail, err := svc.TripWithStops(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GET /api/stops/trip/:id (legacy path the mobile client uses)
// Only the ordered stops, without the trip envelope.
func GetTripStops(c *gin.Context) {
	id, ok := tripIDParam(c)
	if !ok {
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	detail, err := svc.TripWithStops(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail.Stops)
}

type attachStopsRequest struct {
	Stops []models.ItineraryInput `json:"stops"`
}

// PUT /api/trips/:id/stops
// Replaces the trip's itinerary atomically.
func AttachTripStops(c *gin.Context) {
	id, ok := tripIDParam(c)
	if !ok {
		return
	}

	var req attachStopsRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	if err := svc.AttachStops(id, req.Stops); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Itinerary saved"})
}

// DELETE /api/trips/:id
func DeleteTrip(c *gin.Context) {
	id, ok := tripIDParam(c)
	if !ok {
		return
	}

	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	if err := svc.DeleteTrip(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}
