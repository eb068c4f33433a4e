package services

import (
	"strings"

	"quill/models"
	"quill/utils"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// ListPosts returns one page of posts and the total size of the
// matched set. An empty search term matches everything; a non-empty
// term is a case-insensitive substring match against title or content.
func (s *PostService) ListPosts(limit, offset int, search string) (int64, []models.Post, error) {
	filter := func(tx *gorm.DB) *gorm.DB {
		if search == "" {
			return tx
		}
		pattern := "%" + strings.ToLower(search) + "%"
		return tx.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := filter(s.db.Model(&models.Post{})).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var posts []models.Post
	if err := filter(s.db.Model(&models.Post{})).Order("id ASC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return 0, nil, err
	}

	return total, posts, nil
}

// CreatePost persists a post for the author. When no slug is supplied
// one is derived from the title right before the insert, so collision
// retries stay visible here instead of hiding in a storage hook.
func (s *PostService) CreatePost(authorID uint, req *models.CreatePostRequest) (*models.Post, error) {
	slug := req.Slug
	if slug == "" {
		var err error
		slug, err = utils.GenerateSlug(req.Title, s.slugExists)
		if err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		Slug:     slug,
		AuthorID: authorID,
	}

	// The unique constraint on slug backstops the check-then-insert
	// race between concurrent creations.
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) slugExists(slug string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (s *PostService) GetPostBySlug(slug string) (*models.Post, error) {
	var post models.Post
	if err := s.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost modifies title and content of the author's own post.
// A missing post and someone else's post both report
// gorm.ErrRecordNotFound.
func (s *PostService) UpdatePost(id, authorID uint, req *models.UpdatePostRequest) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(map[string]interface{}{
			"title":   req.Title,
			"content": req.Content,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PublishPost flips is_published on the author's own post. The rest
// of the update payload is accepted by the handler but not applied.
func (s *PostService) PublishPost(id, authorID uint) error {
	result := s.db.Model(&models.Post{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Update("is_published", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeletePost removes the author's own post together with its comments
// and likes in one transaction.
func (s *PostService) DeletePost(id, authorID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Post{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", id).Delete(&models.Like{}).Error
	})
}

func (s *PostService) GetPostsByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Where("author_id = ?", authorID).Order("id ASC").Find(&posts).Error
	return posts, err
}

func (s *PostService) PostExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
