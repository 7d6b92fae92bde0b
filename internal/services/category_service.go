package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendbook/internal/errors"
	"spendbook/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a category. With a nil ownerID the category is
// global and visible to everyone; with an owner it is a custom category
// visible only to that user. The owner must exist.
func (s *categoryService) CreateCategory(name string, ownerID *uint) (*models.Category, error) {
	if len(name) < minNameLen || len(name) > maxNameLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be between 1 and 255 characters")
	}

	if ownerID != nil {
		var owner models.User
		if err := s.db.First(&owner, *ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	category := &models.Category{
		Name:     name,
		IsCustom: ownerID != nil,
		OwnerID:  ownerID,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// ListVisible returns the categories the requester may see: every
// global category plus the requester's own custom categories. With a
// nil requester only global categories are returned.
func (s *categoryService) ListVisible(requesterID *uint) ([]models.Category, error) {
	q := s.db.Order("id")
	if requesterID == nil {
		q = q.Where("is_custom = ?", false)
	} else {
		q = q.Where("is_custom = ? OR owner_id = ?", false, *requesterID)
	}

	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID, subject to the same
// visibility rule as ListVisible: a custom category is returned only to
// its owner. Anyone else gets not-found, so the lookup does not reveal
// that the id exists.
func (s *categoryService) GetCategoryByID(id uint, requesterID *uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if category.IsCustom {
		if requesterID == nil || category.OwnerID == nil || *category.OwnerID != *requesterID {
			return nil, apperrors.ErrCategoryNotFound
		}
	}
	return &category, nil
}

// DeleteCategory removes a category and every record referencing it as
// one transaction.
func (s *categoryService) DeleteCategory(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Where("category_id = ?", id).Delete(&models.Record{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		res := tx.Delete(&category)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrCategoryNotFound
		}
		return nil
	})
}
