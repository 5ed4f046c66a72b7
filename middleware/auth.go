package middleware

import (
	"net/http"
	"strings"

	"main/services"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// AuthMiddleware verifies the bearer token on protected routes. A missing
// token is a 401; any failed verification, forged or expired alike, is a
// 403 with no further detail.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the verified claims stored by AuthMiddleware.
func GetClaims(c *gin.Context) (*services.Claims, bool) {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*services.Claims)
	return claims, ok
}

// SetClaims injects claims directly, used by handler tests.
func SetClaims(c *gin.Context, claims *services.Claims) {
	c.Set(claimsKey, claims)
}
