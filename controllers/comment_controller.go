package controllers

import (
	"net/http"

	"quill/models"
	"quill/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	db             *gorm.DB
	commentService *services.CommentService
	hubService     *services.HubService
}

func NewCommentController(db *gorm.DB, hubService *services.HubService) *CommentController {
	return &CommentController{
		db:             db,
		commentService: services.NewCommentService(db),
		hubService:     hubService,
	}
}

// CreateComment adds a comment to a post and pushes it to live
// subscribers of that post's feed.
func (cc *CommentController) CreateComment(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	comment, err := cc.commentService.CreateComment(userID, postID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	cc.hubService.BroadcastToPost(postID, "comment_created", comment)

	c.JSON(http.StatusCreated, comment)
}

// ListComments returns a post's comments, oldest first.
func (cc *CommentController) ListComments(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	comments, err := cc.commentService.GetCommentsByPost(postID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch comments"})
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	c.JSON(http.StatusOK, comments)
}

