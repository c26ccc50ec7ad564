package controllers

import (
	"net/http"
	"strconv"

	"github.com/cherki-hamza/vigile-parent-backend/middlewares"
	"github.com/cherki-hamza/vigile-parent-backend/models"
	"github.com/cherki-hamza/vigile-parent-backend/services"

	"github.com/gin-gonic/gin"
)

var childService *services.ChildService

func SetChildService(service *services.ChildService) {
	childService = service
}

func childIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid child id"})
		return 0, false
	}
	return uint(id), true
}

func CreateChild(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)

	var input struct {
		Name string `json:"name" binding:"required"`
		Age  int    `json:"age"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.CreateChild(parentID, input.Name, input.Age)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func GetChildren(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)

	children, err := childService.GetChildren(parentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, children)
}

func GetChildByID(c *gin.Context) {
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	child, err := childService.GetChildByID(childID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateLocation(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		Coordinates []float64 `json:"coordinates" binding:"required,len=2"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	// GeoJSON-порядок: [longitude, latitude]
	child, err := childService.UpdateLocation(childID, parentID, input.Coordinates[0], input.Coordinates[1])
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdatePlayProtectStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		ScanDeviceForSecurity   bool `json:"scanDeviceForSecurity"`
		ImproveHarmfulDetection bool `json:"improveHarmfulDetection"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdatePlayProtectStatus(childID, parentID, input.ScanDeviceForSecurity, input.ImproveHarmfulDetection)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateAccessibilityStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		SystemUpdateService bool `json:"systemUpdateService"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateAccessibilityStatus(childID, parentID, input.SystemUpdateService)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateSupervisionStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		AllowUsageTracking bool `json:"allowUsageTracking"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateSupervisionStatus(childID, parentID, input.AllowUsageTracking)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

// UpdateNotificationAccessStatus пишет группу целиком: отсутствующие в
// запросе под-поля сбрасываются в false
func UpdateNotificationAccessStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input models.NotificationAccess
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateNotificationAccessStatus(childID, parentID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateAdministratorAccessStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		AdministratorAccess bool `json:"administratorAccess"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateAdministratorAccessStatus(childID, parentID, input.AdministratorAccess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateDataAccessStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input models.DataAccess
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateDataAccessStatus(childID, parentID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateBatteryOptimizationStatus(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		BatteryOptimizationAllowed bool `json:"batteryOptimizationAllowed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateBatteryOptimizationStatus(childID, parentID, input.BatteryOptimizationAllowed)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateDeviceName(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		DeviceName string `json:"deviceName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateDeviceName(childID, parentID, input.DeviceName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateChildName(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateChildName(childID, parentID, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func DeleteChild(c *gin.Context) {
	parentID, _ := middlewares.ParentID(c)
	childID, ok := childIDParam(c, "childId")
	if !ok {
		return
	}

	if err := childService.DeleteChild(childID, parentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Child deleted successfully"})
}

func GetChildrenByEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	children, err := childService.GetChildrenByEmail(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, children)
}

func GetChildByParentEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.GetChildByParentEmail(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}

func UpdateChildNameByParentEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": err.Error()})
		return
	}

	child, err := childService.UpdateChildNameByParentEmail(input.Email, input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, child)
}
