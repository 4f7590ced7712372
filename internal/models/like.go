package models

import "time"

// Like (upvote) is a membership fact: at most one row per (user, resource)
// pair, enforced by the composite unique index. Un-liking hard-deletes the
// row, so no soft-delete column here.
type Like struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_likes_user_resource"`
	ResourceID uint      `json:"resource_id" gorm:"uniqueIndex:idx_likes_user_resource"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToggleLikeRequest defines the request body for toggling an upvote
type ToggleLikeRequest struct {
	UserID     uint `json:"user_id" validate:"required"`
	ResourceID uint `json:"resource_id" validate:"required"`
}
