package models

import "time"

// MaxCommentLength bounds comment content, matching the column size.
const MaxCommentLength = 200

// Comment represents a comment on a post. Removal is a soft delete: the row
// flips to StatusDeleted and drops out of listings and the post's counter.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Content   string    `json:"content" gorm:"size:200;not null"`
	Status    Status    `json:"status" gorm:"size:10;default:active;index"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=200"`
}
