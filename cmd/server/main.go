package main

import (
	"fmt"
	"log"
	"net/http"

	"socialnet/backend/internal/auth"
	"socialnet/backend/internal/config"
	"socialnet/backend/internal/database"
	"socialnet/backend/internal/handler"
	"socialnet/backend/internal/hub"
	"socialnet/backend/internal/repository"
	"socialnet/backend/internal/service"
	"socialnet/backend/internal/storage"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "socialnet/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Socialnet API
// @version         1.0
// @description     This is the API for the Socialnet service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	db := database.Connect(config.AppConfig.DatabaseURL)

	users := &repository.GormUserStore{DB: db}
	relationships := &repository.GormRelationshipStore{DB: db}
	posts := &repository.GormPostStore{DB: db}
	messages := &repository.GormChatMessageStore{DB: db}

	h := &handler.Handler{
		Accounts:  &service.AccountService{Users: users},
		Relations: &service.RelationshipService{Users: users, Relationships: relationships},
		Posts:     &service.PostService{Posts: posts, Users: users, Relationships: relationships},
		Chat:      &service.ChatService{Users: users, Messages: messages, Relationships: relationships},
		Hub:       hub.NewHub(),
		Images:    &storage.ImageStore{Root: config.AppConfig.UploadDir},
	}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Uploaded images
	router.Static("/images", config.AppConfig.UploadDir+"/images")

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", h.RegisterUser)
			authRoutes.POST("/login", h.LoginUser)
		}

		// Public profile routes (relation data added when a token is present)
		publicUserRoutes := apiV1.Group("/users")
		publicUserRoutes.Use(auth.OptionalAuthMiddleware())
		{
			publicUserRoutes.GET("/:username", h.GetUserByUsername)
			publicUserRoutes.GET("/:username/friends", h.GetFriends)
			publicUserRoutes.GET("/:username/posts", h.GetUserPosts)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", h.SearchUsers)
			userRoutes.GET("/me", h.GetMe)
			userRoutes.PUT("/me", h.UpdateMe)
			userRoutes.PUT("/me/password", h.ChangePassword)
			userRoutes.POST("/me/avatar", h.UploadAvatar)
			userRoutes.GET("/me/requests", h.GetIncomingRequests)
		}

		// Friendship routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.POST("/:id/request", h.SendRequest)
			friendRoutes.POST("/:id/cancel", h.CancelRequest)
			friendRoutes.POST("/:id/accept", h.AcceptRequest)
			friendRoutes.POST("/:id/decline", h.DeclineRequest)
			friendRoutes.POST("/:id/remove", h.RemoveFriend)
		}

		// Post routes (protected)
		postRoutes := apiV1.Group("")
		postRoutes.Use(auth.AuthMiddleware())
		{
			postRoutes.GET("/feed", h.GetFeed)
			postRoutes.POST("/posts", h.CreatePost)
			postRoutes.GET("/chat/:id/messages", h.GetChatHistory)
		}
	}

	// Chat websocket (token checked inside, headers are not always available)
	router.GET("/ws/chat/:room", h.ChatSocket)

	fmt.Println("Server is running on " + config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
