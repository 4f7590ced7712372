package models

// Course is the classroom/major a user belongs to. Read-mostly; rows are
// seeded at startup and joined at registration via the short code.
type Course struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
	Code string `json:"code" gorm:"uniqueIndex"`
}
