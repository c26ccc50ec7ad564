package routes

import (
	"github.com/cherki-hamza/vigile-parent-backend/controllers"
	"github.com/cherki-hamza/vigile-parent-backend/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/request-password-reset", controllers.RequestPasswordReset)
		auth.POST("/verify-otp", controllers.VerifyResetOTP)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	children := r.Group("/api/children")

	// Публичные маршруты: ими пользуется агент на устройстве ребенка,
	// у которого еще нет сессии. Доступ защищает только неугадываемость
	// кода/OTP.
	children.POST("/pair-device", controllers.PairDevice)
	children.POST("/verify-pairing-code", controllers.VerifyPairingCode)
	children.POST("/check-pairing-code-status", controllers.CheckPairingCodeStatus)
	children.POST("/login-and-send-otp", controllers.LoginAndSendOTP)
	children.POST("/verify-otp-and-pair-device", controllers.VerifyOTPAndPairDevice)
	children.POST("/children-by-email", controllers.GetChildrenByEmail)
	children.POST("/get-child-by-parent-email", controllers.GetChildByParentEmail)
	children.PUT("/update-child-name-by-parent-email", controllers.UpdateChildNameByParentEmail)

	// Маршруты родителя (JWT)
	protected := children.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.POST("/", controllers.CreateChild)
		protected.GET("/", controllers.GetChildren)
		protected.POST("/generate-pairing-code", controllers.GeneratePairingCode)
		protected.GET("/:childId", controllers.GetChildByID)
		protected.PUT("/:childId/location", controllers.UpdateLocation)
		protected.PUT("/:childId/play-protect-status", controllers.UpdatePlayProtectStatus)
		protected.PUT("/:childId/accessibility-status", controllers.UpdateAccessibilityStatus)
		protected.PUT("/:childId/supervision-status", controllers.UpdateSupervisionStatus)
		protected.PUT("/:childId/notification-access-status", controllers.UpdateNotificationAccessStatus)
		protected.PUT("/:childId/administrator-access-status", controllers.UpdateAdministratorAccessStatus)
		protected.PUT("/:childId/data-access-status", controllers.UpdateDataAccessStatus)
		protected.PUT("/:childId/battery-optimization-status", controllers.UpdateBatteryOptimizationStatus)
		protected.PUT("/:childId/update-device-name", controllers.UpdateDeviceName)
		protected.PUT("/:childId/update-name", controllers.UpdateChildName)
		protected.DELETE("/:childId", controllers.DeleteChild)
	}
}
