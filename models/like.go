package models

type Like struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID uint `json:"post_id" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	User   User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type LikeCountResponse struct {
	TotalLikes int64    `json:"total_likes"`
	Likers     []string `json:"likers"`
}
