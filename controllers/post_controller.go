package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"quill/models"
	"quill/services"
	"quill/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db          *gorm.DB
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
	}
}

// ListPosts returns a page of posts, optionally filtered by a
// case-insensitive substring search over title and content. A search
// that matches nothing is a 404; a term under 3 characters is a 400.
func (pc *PostController) ListPosts(c *gin.Context) {
	var query models.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, posts, err := pc.postService.ListPosts(query.Limit, query.Offset, query.Search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch posts"})
		return
	}

	if query.Search != "" && total == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no posts matched the search"})
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	c.JSON(http.StatusOK, models.ListPostsResponse{
		Total:  total,
		Limit:  query.Limit,
		Offset: query.Offset,
		Item:   posts,
	})
}

// CreatePost persists a new post owned by the authenticated user.
func (pc *PostController) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	post, err := pc.postService.CreatePost(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			c.JSON(http.StatusConflict, gin.H{"error": "slug already exists"})
		case errors.Is(err, utils.ErrSlugExhausted):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not allocate a unique slug"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost looks a post up by its slug.
func (pc *PostController) GetPost(c *gin.Context) {
	slug := c.Param("id")

	post, err := pc.postService.GetPostBySlug(slug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost replaces title and content of the caller's own post.
// Someone else's post is reported as missing, never as forbidden.
func (pc *PostController) UpdatePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	if err := pc.postService.UpdatePost(id, userID, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// PublishPost marks the caller's own post as published. The update
// payload is accepted for wire compatibility but only the publish
// flag is applied.
func (pc *PostController) PublishPost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("user_id")

	if err := pc.postService.PublishPost(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to publish post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeletePost removes the caller's own post and everything attached
// to it.
func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := parsePostID(c)
	if !ok {
		return
	}

	userID := c.GetUint("user_id")

	if err := pc.postService.DeletePost(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}

// parsePostID reads the numeric :id path parameter shared by the
// post, comment and like routes.
func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post ID"})
		return 0, false
	}
	return uint(id), true
}
