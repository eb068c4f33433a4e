package main

import (
	"log"

	"quill/config"
	"quill/controllers"
	"quill/database"
	"quill/handlers"
	"quill/limiter"
	"quill/middleware"
	"quill/routes"
	"quill/services"
	"quill/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "quill/docs"
)

// @title Quill Blogging API
// @version 1.0
// @description A blogging backend with token authentication, ownership-scoped CRUD and per-route rate limiting

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	db := database.Connect(cfg)
	database.Migrate(db)

	var store limiter.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = limiter.NewRedisStore(rdb)
		log.Printf("Rate limiter using redis at %s", cfg.RedisAddr)
	} else {
		store = limiter.NewMemoryStore()
		log.Println("Rate limiter using in-process counters")
	}

	tokens := utils.NewTokenService(cfg.JWTSecret)

	r := gin.Default()

	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Logger())

	hubService := services.NewHubService()

	authController := controllers.NewAuthController(db, tokens)
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	commentController := controllers.NewCommentController(db, hubService)
	likeController := controllers.NewLikeController(db)
	wsHandler := handlers.NewWebSocketHandler(hubService)

	routes.SetupRoutes(r, tokens, store, authController, userController, postController, commentController, likeController, wsHandler)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
