package models

import "time"

// Like represents a like on a post. At most one row may exist per
// (user, post); the unique index enforces that under concurrent likes.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_likes_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_likes_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
