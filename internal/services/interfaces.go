package services

import (
	"spendbook/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	Register(name, password string) (*models.User, error)
	Authenticate(name, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	ListUsers() ([]models.User, error)
	DeleteUser(id uint) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string, ownerID *uint) (*models.Category, error)
	ListVisible(requesterID *uint) ([]models.Category, error)
	GetCategoryByID(id uint, requesterID *uint) (*models.Category, error)
	DeleteCategory(id uint) error
}

// RecordFilter holds the filter parameters for listing records.
// At least one of the two must be set.
type RecordFilter struct {
	UserID     *uint
	CategoryID *uint
}

// RecordServicer defines the contract for record-related business logic.
type RecordServicer interface {
	CreateRecord(userID, categoryID uint, amount float64) (*models.Record, error)
	ListRecords(filter RecordFilter) ([]models.Record, error)
	GetRecordByID(id uint) (*models.Record, error)
	DeleteRecord(id uint) error
}
