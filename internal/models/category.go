package models

// Category represents a spending category. Global categories have no
// owner and are visible to every user; custom categories carry the
// owning user's id and are visible only to that user.
type Category struct {
	Base
	Name     string `gorm:"not null;size:255" json:"name"`
	IsCustom bool   `gorm:"not null;default:false" json:"is_custom"`
	OwnerID  *uint  `gorm:"index" json:"owner_id,omitempty"`

	Records []Record `gorm:"foreignKey:CategoryID" json:"records,omitempty"`
}
