package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	apperrors "spendbook/internal/errors"
	"spendbook/internal/models"
)

// recordService handles record-related business logic.
type recordService struct {
	db *gorm.DB
}

// NewRecordService creates a new RecordServicer.
func NewRecordService(db *gorm.DB) RecordServicer {
	return &recordService{db: db}
}

// CreateRecord creates an expense record. The referenced user is
// checked before the category, so a request where both are missing
// reports the user.
func (s *recordService) CreateRecord(userID, categoryID uint, amount float64) (*models.Record, error) {
	if userID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id must be a positive integer")
	}
	if categoryID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id must be a positive integer")
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a positive number")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	record := &models.Record{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return record, nil
}

// ListRecords returns records matching the filter, most recent first.
// At least one filter key must be present.
func (s *recordService) ListRecords(filter RecordFilter) ([]models.Record, error) {
	if filter.UserID == nil && filter.CategoryID == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one of user_id or category_id is required")
	}

	q := s.db.Model(&models.Record{})
	if filter.UserID != nil {
		if *filter.UserID == 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "user_id must be a positive integer")
		}
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.CategoryID != nil {
		if *filter.CategoryID == 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category_id must be a positive integer")
		}
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var records []models.Record
	if err := q.Order("created_at DESC, id DESC").Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// GetRecordByID retrieves a record by ID
func (s *recordService) GetRecordByID(id uint) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// DeleteRecord removes a record unconditionally.
func (s *recordService) DeleteRecord(id uint) error {
	res := s.db.Delete(&models.Record{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRecordNotFound
	}
	return nil
}
