package services

import (
	"errors"

	"quill/models"

	"gorm.io/gorm"
)

type LikeService struct {
	db *gorm.DB
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db}
}

// ToggleLike likes the post when no like by this user exists and
// unlikes it otherwise. Returns true when the post ends up liked.
// A missing post reports gorm.ErrRecordNotFound; the unique
// (user_id, post_id) index resolves concurrent double-likes.
func (s *LikeService) ToggleLike(userID, postID uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, gorm.ErrRecordNotFound
	}

	var like models.Like
	err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error

	if err == nil {
		if err := s.db.Delete(&like).Error; err != nil {
			return false, err
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like = models.Like{UserID: userID, PostID: postID}
	if err := s.db.Create(&like).Error; err != nil {
		return false, err
	}
	return true, nil
}

// CountLikes returns the number of likes on a post together with the
// usernames of the users who liked it.
func (s *LikeService) CountLikes(postID uint) (int64, []string, error) {
	var total int64
	if err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	likers := []string{}
	err := s.db.Model(&models.Like{}).
		Joins("JOIN users ON users.id = likes.user_id").
		Where("likes.post_id = ?", postID).
		Order("likes.id ASC").
		Pluck("users.username", &likers).Error
	if err != nil {
		return 0, nil, err
	}

	return total, likers, nil
}
