package routes

import (
	"sahayak-be/controllers"

	"github.com/gin-gonic/gin"
)

// ProfileRoutes sets up the account settings routes
func ProfileRoutes(r *gin.Engine, pc *controllers.ProfileController) {
	profile := r.Group("/api/profile")
	{
		profile.POST("/username-check", pc.CheckUsername)
		profile.GET("/:userId", pc.GetProfile)
		profile.PUT("/:userId", pc.UpdateProfile)
		profile.POST("/:userId/change-password", pc.ChangePassword)
		profile.POST("/:userId/avatar", pc.UploadAvatar)
		profile.GET("/:userId/activity", pc.Activity)
		profile.GET("/:userId/sessions", pc.GetSessions)
		profile.POST("/:userId/sessions/logout-all", pc.LogoutAllSessions)
		profile.POST("/:userId/two-factor/toggle", pc.Toggle2FA)
	}
}
