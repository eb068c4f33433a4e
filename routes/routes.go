package routes

import (
	"net/http"
	"time"

	"quill/controllers"
	"quill/handlers"
	"quill/limiter"
	"quill/middleware"
	"quill/utils"

	"github.com/gin-gonic/gin"
)

// Per-route quotas, counted over a fixed one-minute window.
const (
	authQuota   = 10
	apiQuota    = 30
	quotaWindow = time.Minute
)

func SetupRoutes(
	r *gin.Engine,
	tokens *utils.TokenService,
	store limiter.Store,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	likeController *controllers.LikeController,
	wsHandler *handlers.WebSocketHandler,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/token", middleware.RateLimit(store, authQuota, quotaWindow), authController.Login)
	}

	users := r.Group("/users")
	{
		users.POST("/", middleware.RateLimit(store, authQuota, quotaWindow), userController.Register)

		// Limiter first: throttled requests must be rejected before token resolution.
		me := users.Group("", middleware.RateLimit(store, apiQuota, quotaWindow), middleware.AuthRequired(tokens))
		{
			me.GET("/get", userController.GetCurrentUser)
			me.GET("/posts", userController.GetCurrentUserPosts)
		}
	}

	posts := r.Group("/posts", middleware.RateLimit(store, apiQuota, quotaWindow), middleware.AuthRequired(tokens))
	{
		posts.GET("/", postController.ListPosts)
		posts.POST("/", postController.CreatePost)
		posts.GET("/:id", postController.GetPost)
		posts.PUT("/:id", postController.UpdatePost)
		posts.PATCH("/:id", postController.PublishPost)
		posts.DELETE("/:id", postController.DeletePost)

		posts.POST("/:id/comments", commentController.CreateComment)
		posts.GET("/:id/comments", commentController.ListComments)
		posts.GET("/:id/comments/live", wsHandler.LiveComments)

		posts.POST("/:id/like", likeController.ToggleLike)
		posts.GET("/:id/likes-count", likeController.CountLikes)
	}
}
