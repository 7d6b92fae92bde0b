package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"spendbook/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique name.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	name := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithName(t, db, name)
}

// CreateTestUserWithName creates a user with the given name.
func CreateTestUserWithName(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     name,
		Password: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCategory creates a global category.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	category := &models.Category{
		Name: fmt.Sprintf("Test Category %d", nextID()),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestCustomCategory creates a custom category owned by the given user.
func CreateTestCustomCategory(t *testing.T, db *gorm.DB, ownerID uint) *models.Category {
	t.Helper()

	category := &models.Category{
		Name:     fmt.Sprintf("Test Custom Category %d", nextID()),
		IsCustom: true,
		OwnerID:  &ownerID,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test custom category: %v", err)
	}
	return category
}

// CreateTestRecord creates a record with the given amount.
func CreateTestRecord(t *testing.T, db *gorm.DB, userID, categoryID uint, amount float64) *models.Record {
	t.Helper()

	record := &models.Record{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}
