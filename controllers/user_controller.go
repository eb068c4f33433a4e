package controllers

import (
	"errors"
	"net/http"

	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	db          *gorm.DB
	userService *services.UserService
	postService *services.PostService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		db:          db,
		userService: services.NewUserService(db),
		postService: services.NewPostService(db),
	}
}

// Register creates a new user account.
func (uc *UserController) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.userService.CreateUser(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "user with this email or username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created successfully",
		"data":    user,
	})
}

// GetCurrentUser returns the authenticated user's record.
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	user, err := uc.userService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetCurrentUserPosts returns every post authored by the
// authenticated user.
func (uc *UserController) GetCurrentUserPosts(c *gin.Context) {
	userID := c.GetUint("user_id")

	if _, err := uc.userService.GetUserByID(userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	posts, err := uc.postService.GetPostsByAuthor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}
