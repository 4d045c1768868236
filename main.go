package main

import (
	"log"
	"net/http"

	"sahayak-be/config"
	"sahayak-be/controllers"
	"sahayak-be/routes"
	"sahayak-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := config.ConnectRedis(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	if config.RedisClient == nil {
		log.Println("Redis not configured, issue rate limiting disabled")
	}

	issueStore := store.NewIssueStore(config.VerificationThreshold())
	if n := issueStore.Seed(); n > 0 {
		log.Printf("Seeded %d sample issues", n)
	}
	communityStore := store.NewCommunityStore()

	controllers.RegisterValidators()

	r := gin.Default()
	r.Use(cors.Default())

	routes.IssueRoutes(r, controllers.NewIssueController(issueStore))
	routes.AuthRoutes(r, controllers.NewAuthController())
	routes.ProfileRoutes(r, controllers.NewProfileController(issueStore))
	routes.CommunityRoutes(r, controllers.NewCommunityController(communityStore))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
