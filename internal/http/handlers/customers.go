package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/http/middleware"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/customers
func GetCustomers(c *gin.Context) {
	repo := repositories.CustomerRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load customers", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createCustomerRequest struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Sname    string  `json:"sname"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	Balance  float64 `json:"balance"`
}

// POST /api/customers
// Creates the user row and the customer row in one transaction; a failure
// rolls both back.
func CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	tx, err := intconfig.DB.Begin()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to start transaction", err)
		return
	}

	userRepo := repositories.UserRepository{DB: intconfig.DB}
	if err := userRepo.CreateWith(tx, models.User{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		Sname:        strings.TrimSpace(req.Sname),
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(req.Phone),
	}); err != nil {
		_ = tx.Rollback()
		RespondError(c, http.StatusBadRequest, "failed to create user", err)
		return
	}

	customerRepo := repositories.CustomerRepository{DB: intconfig.DB}
	if err := customerRepo.CreateWith(tx, req.Email, req.Balance); err != nil {
		_ = tx.Rollback()
		RespondError(c, http.StatusBadRequest, "failed to create customer", err)
		return
	}

	if err := tx.Commit(); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to commit", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Customer created successfully"})
}

// GET /api/customers/:email
func GetCustomer(c *gin.Context) {
	repo := repositories.CustomerRepository{DB: intconfig.DB}
	profile, err := repo.GetProfile(c.Param("email"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load customer", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type updateCustomerRequest struct {
	Balance *float64 `json:"balance"`
	Name    *string  `json:"name"`
	Sname   *string  `json:"sname"`
	Phone   *string  `json:"phone"`
}

// PUT /api/customers/:email
// Updates only the fields present in the payload.
func UpdateCustomer(c *gin.Context) {
	email := c.Param("email")

	var req updateCustomerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	customerRepo := repositories.CustomerRepository{DB: intconfig.DB}
	profile, err := customerRepo.GetProfile(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load customer", err)
		return
	}

	if req.Balance != nil {
		if err := customerRepo.UpdateBalance(email, *req.Balance); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to update balance", err)
			return
		}
		profile.Balance = *req.Balance
	}

	if req.Name != nil || req.Sname != nil || req.Phone != nil {
		if req.Name != nil {
			profile.Name = *req.Name
		}
		if req.Sname != nil {
			profile.Sname = *req.Sname
		}
		if req.Phone != nil {
			profile.Phone = *req.Phone
		}
		userRepo := repositories.UserRepository{DB: intconfig.DB}
		if err := userRepo.UpdateProfile(email, profile.Name, profile.Sname, profile.Phone); err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to update user", err)
			return
		}
	}

	c.JSON(http.StatusOK, profile)
}

// GET /api/customers/:email/trips
// Listing a customer's bookings settles them: cost and refunded_credit are
// recomputed from the current itineraries and written back before the
// response is returned.
func GetCustomerTrips(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	views, err := svc.TripsForCustomer(c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/customers/:email/refunded-total
func GetTotalRefundedCredit(c *gin.Context) {
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	total, err := svc.TotalRefundedCredit(c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"refunded_credit": total})
}

type createBookingRequest struct {
	TripID        int    `json:"trip_id"`
	StartPosition string `json:"start_position"`
	EndPosition   string `json:"end_position"`
}

// POST /api/customers/:email/trips
func CreateCustomerBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	id, err := svc.CreateBooking(models.CustomerTrip{
		TripID:        req.TripID,
		StartStop:     req.StartPosition,
		EndStop:       req.EndPosition,
		CustomerEmail: c.Param("email"),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Booking created successfully",
		"customer_trip_id": id,
	})
}

// GET /api/customers/:email/trips/:id/e-ticket
func GetBookingETicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", nil)
		return
	}

	svc := services.TicketService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(id, c.Param("email"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
