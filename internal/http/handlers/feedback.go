package handlers

import (
	"net/http"
	"strconv"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/feedback
func GetFeedbacks(c *gin.Context) {
	repo := repositories.FeedbackRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load feedback", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createFeedbackRequest struct {
	Comment  string `json:"comment"`
	TripID   int    `json:"trip_id"`
	Customer string `json:"customer"`
}

// POST /api/feedback
func CreateFeedback(c *gin.Context) {
	var req createFeedbackRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Customer = strings.TrimSpace(req.Customer)
	if strings.TrimSpace(req.Comment) == "" || req.Customer == "" {
		RespondError(c, http.StatusBadRequest, "comment and customer are required", nil)
		return
	}

	repo := repositories.FeedbackRepository{DB: intconfig.DB}
	id, err := repo.Create(models.Feedback{
		Comment:       req.Comment,
		TripID:        req.TripID,
		CustomerEmail: req.Customer,
	})
	if err != nil {
		RespondError(c, http.StatusBadRequest, "failed to create feedback", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Feedback created",
		"feedback_id": id,
	})
}

type respondFeedbackRequest struct {
	Response string `json:"response"`
	Support  string `json:"support"`
}

// PATCH /api/feedback/:id
// Records the support response; the support assignment only changes when a
// support email is supplied.
func RespondFeedback(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid feedback id", nil)
		return
	}

	var req respondFeedbackRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Response) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing response text"})
		return
	}

	repo := repositories.FeedbackRepository{DB: intconfig.DB}
	updated, err := repo.Respond(id, req.Response, strings.TrimSpace(req.Support))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update feedback", err)
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback updated with response"})
}
