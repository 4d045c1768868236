package routes

import (
	"sahayak-be/config"
	"sahayak-be/controllers"
	"sahayak-be/middlewares"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue lifecycle routes. The status override
// is staff tooling and sits behind the auth middleware.
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController) {
	issues := r.Group("/api/issues")
	{
		issues.GET("", ic.ListIssues)
		issues.POST("", middlewares.IssueRateLimiter(config.IssueRateLimit()), ic.CreateIssue)
		issues.GET("/:id", ic.GetIssue)
		issues.POST("/:id/vote", ic.VoteIssue)
		issues.POST("/:id/comments", ic.AddComment)
		issues.POST("/:id/contributions", ic.AddContribution)
		issues.POST("/:id/contributions/:cid/vote", ic.VoteContribution)
		issues.PUT("/:id/status", middlewares.AuthMiddleware(), ic.UpdateStatus)
	}

	r.GET("/api/stats", ic.Stats)
	r.GET("/api/meta/wards", ic.Wards)
}
