package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userEmailKey = "userEmail"
	userRoleKey  = "userRole"
)

// AuthRequired parses the Bearer token and puts email/role on the context.
func AuthRequired(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		if email, ok := claims["email"].(string); ok {
			c.Set(userEmailKey, email)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}

		c.Next()
	}
}

// GetUserEmail returns the authenticated email, empty when unauthenticated.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
