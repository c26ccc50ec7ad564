package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cherki-hamza/vigile-parent-backend/services"

	"github.com/gin-gonic/gin"
)

// respondError сопоставляет сервисные ошибки со статусами; неожиданные
// ошибки хранилища не попадают в ответ клиенту.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidPairingCode),
		errors.Is(err, services.ErrInvalidOTP),
		errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Server error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}
