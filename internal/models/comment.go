package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment on a resource. Editing overwrites Content and CreatedAt in place,
// so the displayed timestamp of an edited comment is the edit time.
type Comment struct {
	gorm.Model `json:"-"`
	ID         uint   `json:"id" gorm:"primaryKey"`
	ResourceID uint   `json:"resource_id" gorm:"index"`
	UserID     uint   `json:"user_id" gorm:"index"`
	Content    string `json:"content"`
}

// CreateCommentRequest defines the request body for adding a comment
type CreateCommentRequest struct {
	ResourceID uint   `json:"resource_id" validate:"required"`
	UserID     uint   `json:"user_id" validate:"required"`
	Content    string `json:"content" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	CommentID uint   `json:"comment_id" validate:"required"`
	UserID    uint   `json:"user_id" validate:"required"`
	Content   string `json:"content" validate:"required,min=1,max=500"`
}

// DeleteCommentRequest defines the request body for soft-deleting a comment
type DeleteCommentRequest struct {
	CommentID uint `json:"comment_id" validate:"required"`
	UserID    uint `json:"user_id" validate:"required"`
}

// CommentView is the comment shape consumed by the client, joined with the
// commenting user's display name. UserID is serialized as a string for
// consistency with the frontend.
type CommentView struct {
	ID         uint      `json:"id"`
	ResourceID uint      `json:"resourceId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
}
