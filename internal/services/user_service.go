package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "spendbook/internal/errors"
	"spendbook/internal/models"
)

const (
	minNameLen     = 1
	maxNameLen     = 255
	minPasswordLen = 6
	maxPasswordLen = 255
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// Register creates a new user with a bcrypt-hashed password. The
// uniqueness check and the insert run in one transaction so concurrent
// registrations with the same name cannot both succeed; the unique
// index on name backstops the check.
func (s *userService) Register(name, password string) (*models.User, error) {
	if len(name) < minNameLen || len(name) > maxNameLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name must be between 1 and 255 characters")
	}
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be between 6 and 255 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:     name,
		Password: string(hashedPassword),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateName
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateName
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies a name/password pair. An unknown name and a
// wrong password return the identical error so callers cannot probe
// which names are registered.
func (s *userService) Authenticate(name, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("name = ?", name).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// ListUsers retrieves all users
func (s *userService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return users, nil
}

// DeleteUser removes a user together with everything that references
// it: the user's records, the user's custom categories, and the
// records referencing those categories. The whole cascade is one
// transaction; a concurrent read sees either all of it or none of it.
func (s *userService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Record{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var ownedIDs []uint
		if err := tx.Model(&models.Category{}).Where("owner_id = ?", id).Pluck("id", &ownedIDs).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(ownedIDs) > 0 {
			if err := tx.Where("category_id IN ?", ownedIDs).Delete(&models.Record{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if err := tx.Where("id IN ?", ownedIDs).Delete(&models.Category{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		res := tx.Delete(&user)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrUserNotFound
		}
		return nil
	})
}
