package controllers

import (
	"net/http"

	"quill/models"
	"quill/services"
	"quill/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	db          *gorm.DB
	tokens      *utils.TokenService
	userService *services.UserService
}

func NewAuthController(db *gorm.DB, tokens *utils.TokenService) *AuthController {
	return &AuthController{
		db:          db,
		tokens:      tokens,
		userService: services.NewUserService(db),
	}
}

// Login exchanges credentials for a bearer token. Unknown email and
// wrong password produce the same response.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	user, ok := ac.userService.Authenticate(req.Email, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := ac.tokens.Generate(user.Email, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
