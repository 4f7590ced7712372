package models

import "gorm.io/gorm"

type User struct {
	gorm.Model   `json:"-"`
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	PasswordHash string `json:"-"`                        // Store bcrypt hash, ignore for JSON serialization
	CourseID     uint   `json:"course_id" gorm:"index"`
}

// RegisterRequest defines the request body for self-service registration
type RegisterRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	CourseCode string `json:"course_code" validate:"required"`
}

// LoginRequest defines the request body for email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest defines the request body for direct user creation (users POST)
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	CourseID uint   `json:"course_id" validate:"required"`
}

// UpdateUserRequest defines the request body for updating a profile.
// Only the fields present are applied; Major is resolved against the
// course directory by name or code.
type UpdateUserRequest struct {
	ID       uint    `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,min=2,max=50"`
	Major    *string `json:"major"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// UserPatch carries the subset of user columns an update actually touches.
type UserPatch struct {
	Name         *string
	CourseID     *uint
	PasswordHash *string
}

// Changes returns the present fields as column updates.
func (p UserPatch) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if p.Name != nil {
		changes["name"] = *p.Name
	}
	if p.CourseID != nil {
		changes["course_id"] = *p.CourseID
	}
	if p.PasswordHash != nil {
		changes["password_hash"] = *p.PasswordHash
	}
	return changes
}

// Profile is the user as shown on profile pages, joined with the course.
type Profile struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Major      string `json:"major"`
	CourseCode string `json:"course_code"`
}

// AuthUser is the login/register response payload.
type AuthUser struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CourseCode string `json:"course_code"`
}
