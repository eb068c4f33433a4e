package services

import (
	"quill/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// CreateComment inserts a comment against the post id as given. The
// post is not checked for existence; see the open question on orphan
// comments in DESIGN.md.
func (s *CommentService) CreateComment(userID, postID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		Content: req.Content,
		UserID:  userID,
		PostID:  postID,
	}

	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) GetCommentsByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).Order("created_at ASC, id ASC").Find(&comments).Error
	return comments, err
}
