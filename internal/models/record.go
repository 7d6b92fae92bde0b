package models

// Record represents a single expense: a user spent an amount in a category.
type Record struct {
	Base
	UserID     uint    `gorm:"not null;index" json:"user_id"`
	CategoryID uint    `gorm:"not null;index" json:"category_id"`
	Amount     float64 `gorm:"not null" json:"amount"`
}
