package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/buses
func GetBuses(c *gin.Context) {
	repo := repositories.BusRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load buses", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/buses/:plate
func GetBus(c *gin.Context) {
	repo := repositories.BusRepository{DB: intconfig.DB}
	bus, err := repo.GetByPlate(c.Param("plate"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load bus", err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var bus models.Bus
	if !BindJSONOrError(c, &bus) {
		return
	}

	bus.LicensePlate = strings.TrimSpace(bus.LicensePlate)
	if bus.LicensePlate == "" {
		RespondError(c, http.StatusBadRequest, "license_plate is required", nil)
		return
	}
	if bus.Capacity < 0 {
		RespondError(c, http.StatusBadRequest, "capacity must not be negative", nil)
		return
	}

	repo := repositories.BusRepository{DB: intconfig.DB}
	if err := repo.Create(bus); err != nil {
		RespondError(c, http.StatusBadRequest, "failed to create bus", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Bus created"})
}

// PUT /api/buses/:plate
func UpdateBus(c *gin.Context) {
	var bus models.Bus
	if !BindJSONOrError(c, &bus) {
		return
	}
	bus.LicensePlate = c.Param("plate")

	repo := repositories.BusRepository{DB: intconfig.DB}
	updated, err := repo.Update(bus)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update bus", err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bus updated"})
}

// DELETE /api/buses/:plate
func DeleteBus(c *gin.Context) {
	repo := repositories.BusRepository{DB: intconfig.DB}
	deleted, err := repo.Delete(c.Param("plate"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete bus", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bus not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bus deleted"})
}
