package models

// User represents the user model in the database.
// The password hash is never serialized into API responses.
type User struct {
	Base
	Name     string `gorm:"uniqueIndex;not null;size:255" json:"name"`
	Password string `gorm:"not null" json:"-"`

	Categories []Category `gorm:"foreignKey:OwnerID" json:"categories,omitempty"`
	Records    []Record   `gorm:"foreignKey:UserID" json:"records,omitempty"`
}
