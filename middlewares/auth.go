package middlewares

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtKey() []byte {
	key := os.Getenv("JWT_SECRET")
	if key == "" {
		key = "your_secret_key"
	}
	return []byte(key)
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthMiddleware проверяет Bearer-токен и кладет id родителя в контекст
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return jwtKey(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: missing user id"})
			c.Abort()
			return
		}

		c.Set("parent_id", claims.UserID)
		c.Next()
	}
}

// ParentID извлекает id аутентифицированного родителя из контекста
func ParentID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("parent_id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
