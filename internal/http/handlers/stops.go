package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/stops
func GetStops(c *gin.Context) {
	repo := repositories.StopRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load stops", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/stops/:name
func GetStop(c *gin.Context) {
	repo := repositories.StopRepository{DB: intconfig.DB}
	stop, err := repo.GetByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load stop", err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// POST /api/stops
func CreateStop(c *gin.Context) {
	var stop models.Stop
	if !BindJSONOrError(c, &stop) {
		return
	}

	stop.Name = utils.NormalizeStopName(stop.Name)
	if stop.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	repo := repositories.StopRepository{DB: intconfig.DB}
	if err := repo.Create(stop); err != nil {
		RespondError(c, http.StatusBadRequest, "failed to create stop", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stop created"})
}

type updateStopRequest struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// PUT /api/stops/:name
// Name is immutable identity; only coordinates move.
func UpdateStop(c *gin.Context) {
	name := c.Param("name")

	var req updateStopRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.StopRepository{DB: intconfig.DB}
	stop, err := repo.GetByName(name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load stop", err)
		return
	}

	if req.Longitude != nil {
		stop.Longitude = *req.Longitude
	}
	if req.Latitude != nil {
		stop.Latitude = *req.Latitude
	}

	if _, err := repo.UpdateCoordinates(name, stop.Longitude, stop.Latitude); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update stop", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stop updated"})
}

// DELETE /api/stops/:name
func DeleteStop(c *gin.Context) {
	repo := repositories.StopRepository{DB: intconfig.DB}
	deleted, err := repo.Delete(c.Param("name"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete stop", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stop deleted"})
}

// GET /api/connections
func GetStopConnections(c *gin.Context) {
	repo := repositories.ConnectionRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load connections", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/connections
// Both endpoints must reference existing stops; a->b and b->a are
// independent edges.
func UpsertStopConnection(c *gin.Context) {
	var conn models.StopConnection
	if !BindJSONOrError(c, &conn) {
		return
	}

	conn.FromStop = utils.NormalizeStopName(conn.FromStop)
	conn.ToStop = utils.NormalizeStopName(conn.ToStop)
	if conn.FromStop == "" || conn.ToStop == "" {
		RespondError(c, http.StatusBadRequest, "from_stop and to_stop are required", nil)
		return
	}

	stopRepo := repositories.StopRepository{DB: intconfig.DB}
	for _, name := range []string{conn.FromStop, conn.ToStop} {
		if _, err := stopRepo.GetByName(name); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Stop not found"})
				return
			}
			RespondError(c, http.StatusInternalServerError, "failed to look up stop", err)
			return
		}
	}

	repo := repositories.ConnectionRepository{DB: intconfig.DB}
	if err := repo.Upsert(conn); err != nil {
		RespondError(c, http.StatusBadRequest, "failed to save connection", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Connection saved"})
}

// DELETE /api/connections?from=A&to=B
func DeleteStopConnection(c *gin.Context) {
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		RespondError(c, http.StatusBadRequest, "from and to are required", nil)
		return
	}

	repo := repositories.ConnectionRepository{DB: intconfig.DB}
	deleted, err := repo.Delete(from, to)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete connection", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Connection not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Connection deleted"})
}
