package routes

import (
	"sahayak-be/controllers"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the OTP authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/verify-otp", ac.VerifyOtp)
		auth.POST("/signup-user", ac.SignupUser)
		auth.POST("/signup-admin", ac.SignupAdmin)
	}
}
