package models

import (
	"time"
)

type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Author      User      `json:"-" gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=100"`
	Content string `json:"content" binding:"required"`
	Slug    string `json:"slug" binding:"omitempty,max=120"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" binding:"required,min=3,max=100"`
	Content string `json:"content" binding:"required"`
}

type ListPostsQuery struct {
	Limit  int    `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
	Search string `form:"search" binding:"omitempty,min=3"`
}

// ListPostsResponse keeps the original wire format, including the
// singular "item" key for the page of results.
type ListPostsResponse struct {
	Total  int64  `json:"total"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Item   []Post `json:"item"`
}
