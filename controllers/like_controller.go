package controllers

import (
	"errors"
	"net/http"

	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LikeController struct {
	db          *gorm.DB
	likeService *services.LikeService
}

func NewLikeController(db *gorm.DB) *LikeController {
	return &LikeController{
		db:          db,
		likeService: services.NewLikeService(db),
	}
}

// ToggleLike likes the post when the caller has not liked it yet and
// removes the like otherwise.
func (lc *LikeController) ToggleLike(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	userID := c.GetUint("user_id")

	liked, err := lc.likeService.ToggleLike(userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "post already liked"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle like"})
		}
		return
	}

	msg := "unliked"
	if liked {
		msg = "liked"
	}

	c.JSON(http.StatusOK, gin.H{"msg": msg})
}

// CountLikes reports the like total and the usernames of the likers.
func (lc *LikeController) CountLikes(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	total, likers, err := lc.likeService.CountLikes(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count likes"})
		return
	}

	c.JSON(http.StatusOK, models.LikeCountResponse{
		TotalLikes: total,
		Likers:     likers,
	})
}

