package controllers

import (
	"net/http"

	"github.com/cherki-hamza/vigile-parent-backend/middlewares"
	"github.com/cherki-hamza/vigile-parent-backend/services"

	"github.com/gin-gonic/gin"
)

var pairingService *services.PairingService

func SetPairingService(service *services.PairingService) {
	pairingService = service
}

// GeneratePairingCode выдает (или обновляет) код привязки родителя
func GeneratePairingCode(c *gin.Context) {
	parentID, ok := middlewares.ParentID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	code, err := pairingService.GeneratePairingCode(parentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": code})
}

// PairDevice открыт без сессии: агент на устройстве ребенка
// подтверждает себя email+паролем родителя и кодом привязки
func PairDevice(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Code     string `json:"code" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Age      int    `json:"age"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := pairingService.PairDevice(input.Email, input.Password, input.Code, input.Name, input.Age)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Device paired successfully", "child": child})
}

func VerifyPairingCode(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := pairingService.VerifyPairingCode(input.Email, input.Code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Pairing code verified successfully"})
}

// CheckPairingCodeStatus обслуживает публичный поллер статуса кода
func CheckPairingCodeStatus(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	used, err := pairingService.CheckPairingCodeStatus(input.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"used": used})
}

func LoginAndSendOTP(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	if err := pairingService.LoginAndSendOTP(input.Email, input.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "OTP sent to email"})
}

func VerifyOTPAndPairDevice(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		OTP   string `json:"otp" binding:"required"`
		Name  string `json:"name" binding:"required"`
		Age   int    `json:"age"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := pairingService.VerifyOTPAndPairDevice(input.Email, input.OTP, input.Name, input.Age)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Device paired successfully", "child": child})
}
