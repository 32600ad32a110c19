package main

import (
	"fmt"
	"log"
	"net/http"

	"pulsefeed/backend/internal/auth"
	"pulsefeed/backend/internal/config"
	"pulsefeed/backend/internal/database"
	"pulsefeed/backend/internal/handler"
	"pulsefeed/backend/internal/profile"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "pulsefeed/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Pulsefeed API
// @version         1.0
// @description     This is the API for the Pulsefeed service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Profile routes resolve visibility through this store
	handler.ProfileStore = profile.NewGormStore(database.DB)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Profile routes (public, with optional viewer identity)
		profileRoutes := apiV1.Group("/profiles")
		profileRoutes.Use(auth.OptionalAuthMiddleware())
		{
			profileRoutes.GET("/:username", handler.GetProfileByUsername)
			profileRoutes.GET("/:username/posts", handler.GetProfilePosts)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.GET("/me/privacy", handler.GetMyPrivacy)
			userRoutes.PUT("/me/privacy", handler.UpdateMyPrivacy)
			userRoutes.GET("/me/followers", handler.GetFollowers)
			userRoutes.GET("/me/following", handler.GetFollowing)

			// Follow lifecycle
			userRoutes.POST("/:id/follow", handler.FollowUser)
			userRoutes.DELETE("/:id/follow", handler.UnfollowUser)
			userRoutes.POST("/:id/accept", handler.AcceptFollow)
			userRoutes.POST("/:id/decline", handler.DeclineFollow)
		}

		// Post routes (protected)
		postRoutes := apiV1.Group("/posts")
		postRoutes.Use(auth.AuthMiddleware())
		{
			postRoutes.POST("", handler.CreatePost)
			postRoutes.DELETE("/:id", handler.DeletePost)
		}

		// Media routes (protected)
		mediaRoutes := apiV1.Group("/media")
		mediaRoutes.Use(auth.AuthMiddleware())
		{
			mediaRoutes.POST("/keys", handler.NewUploadKey)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			adminRoutes.DELETE("/posts/:id", handler.AdminDeletePost)
		}
	}

	fmt.Println("Server is running on :8080")
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(":8080"))
}
