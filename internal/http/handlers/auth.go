package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/domain/models"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("dev-fallback-key")

// SetJWTSecret overrides the signing key from the environment at startup.
func SetJWTSecret(secret string) {
	if strings.TrimSpace(secret) != "" {
		jwtSecret = []byte(secret)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/users/login
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	userRepo := repositories.UserRepository{DB: intconfig.DB}

	user, err := userRepo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Email or password incorrect"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to query user: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email or password incorrect"})
		return
	}

	role, err := userRepo.RoleOf(user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to resolve role: " + err.Error()})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"role":  role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user": gin.H{
			"email": user.Email,
			"name":  user.Name,
			"sname": user.Sname,
			"phone": user.Phone,
			"role":  role,
		},
	})
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Sname    string `json:"sname"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/users/register
// Signup is the customer path: the user row and its customer specialization
// row are created in one transaction.
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || strings.TrimSpace(req.Password) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	userRepo := repositories.UserRepository{DB: intconfig.DB}

	exists, err := userRepo.Exists(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to check user: " + err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	tx, err := intconfig.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to start registration"})
		return
	}

	if err := userRepo.CreateWith(tx, models.User{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		Sname:        strings.TrimSpace(req.Sname),
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(req.Phone),
	}); err != nil {
		_ = tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save user: " + err.Error()})
		return
	}

	customerRepo := repositories.CustomerRepository{DB: intconfig.DB}
	if err := customerRepo.CreateWith(tx, req.Email, 0); err != nil {
		_ = tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save customer: " + err.Error()})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to commit registration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}
