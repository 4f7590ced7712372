package models

// Category tags a resource. Fixed small set, seeded at startup.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}
