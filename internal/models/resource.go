package models

import (
	"time"

	"gorm.io/gorm"
)

// Resource is a shared study link. CourseID is copied from the author's
// course at creation time and never revisited afterwards.
type Resource struct {
	gorm.Model  `json:"-"`
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	CategoryID  uint   `json:"category_id" gorm:"index"`
	CourseID    uint   `json:"course_id" gorm:"index"`
	AuthorID    uint   `json:"author_id" gorm:"index"`
	IsPublic    bool   `json:"is_public"`
}

// CreateResourceRequest defines the request body for creating a resource
type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	URL         string `json:"url" validate:"required,url"`
	CategoryID  uint   `json:"category_id" validate:"required"`
	UserID      uint   `json:"user_id" validate:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// UpdateResourceRequest defines the request body for a partial resource
// update. Pointer fields distinguish "absent" from zero values.
type UpdateResourceRequest struct {
	ResourceID  uint    `json:"resource_id" validate:"required"`
	UserID      uint    `json:"user_id" validate:"required"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	URL         *string `json:"url" validate:"omitempty,url"`
	CategoryID  *uint   `json:"category_id"`
	IsPublic    *bool   `json:"isPublic"`
}

// Patch converts the mutable fields of the request into a ResourcePatch.
func (r UpdateResourceRequest) Patch() ResourcePatch {
	return ResourcePatch{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		CategoryID:  r.CategoryID,
		IsPublic:    r.IsPublic,
	}
}

// DeleteResourceRequest defines the request body for soft-deleting a resource
type DeleteResourceRequest struct {
	ResourceID uint `json:"resource_id" validate:"required"`
	UserID     uint `json:"user_id" validate:"required"`
}

// ResourcePatch carries the subset of resource columns an update touches.
type ResourcePatch struct {
	Title       *string
	Description *string
	URL         *string
	CategoryID  *uint
	IsPublic    *bool
}

// Changes returns the present fields as column updates.
func (p ResourcePatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Title != nil {
		changes["title"] = *p.Title
	}
	if p.Description != nil {
		changes["description"] = *p.Description
	}
	if p.URL != nil {
		changes["url"] = *p.URL
	}
	if p.CategoryID != nil {
		changes["category_id"] = *p.CategoryID
	}
	if p.IsPublic != nil {
		changes["is_public"] = *p.IsPublic
	}
	return changes
}

// ResourceView is the denormalized resource shape consumed by the client:
// the resource row joined with author name, author's course code, category
// name, and the distinct ids of users who upvoted it.
type ResourceView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	IsPublic    bool      `json:"is_public"`
	DateAdded   time.Time `json:"dateAdded"`
	CategoryID  uint      `json:"category_id"`
	Category    string    `json:"category"`
	AuthorID    uint      `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	CourseCode  string    `json:"course_code"`
	Upvotes     []string  `json:"upvotes" gorm:"-"`
}

// ResourceSummary is the compact shape returned for a user's own resources.
type ResourceSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category"`
}
