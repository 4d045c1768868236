package routes

import (
	"sahayak-be/controllers"

	"github.com/gin-gonic/gin"
)

// CommunityRoutes sets up the volunteering feed and event routes
func CommunityRoutes(r *gin.Engine, cc *controllers.CommunityController) {
	posts := r.Group("/api/community-posts")
	{
		posts.GET("", cc.ListPosts)
		posts.POST("", cc.CreatePost)
		posts.POST("/:id/like", cc.LikePost)
	}

	r.GET("/api/community-events", cc.ListEvents)
}
