package services

import (
	"strings"
	"testing"

	"spendbook/internal/models"
	"spendbook/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("global", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		cat, err := svc.CreateCategory("Food", nil)
		testutil.AssertNoError(t, err)

		if cat.ID == 0 {
			t.Fatal("expected non-zero category ID")
		}
		if cat.IsCustom {
			t.Error("expected global category")
		}
		if cat.OwnerID != nil {
			t.Errorf("expected nil owner, got %d", *cat.OwnerID)
		}
	})

	t.Run("custom", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		cat, err := svc.CreateCategory("Hobbies", &user.ID)
		testutil.AssertNoError(t, err)

		if !cat.IsCustom {
			t.Error("expected custom category")
		}
		if cat.OwnerID == nil || *cat.OwnerID != user.ID {
			t.Errorf("expected owner %d, got %v", user.ID, cat.OwnerID)
		}
	})

	t.Run("unknown_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		unknown := uint(99999)
		_, err := svc.CreateCategory("Hobbies", &unknown)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory("", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("name_too_long", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.CreateCategory(strings.Repeat("x", 256), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListVisible(t *testing.T) {
	t.Run("no_requester_sees_global_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user := testutil.CreateTestUser(t, db)
		global := testutil.CreateTestCategory(t, db)
		testutil.CreateTestCustomCategory(t, db, user.ID)

		categories, err := svc.ListVisible(nil)
		testutil.AssertNoError(t, err)

		if len(categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(categories))
		}
		if categories[0].ID != global.ID {
			t.Errorf("expected global category %d, got %d", global.ID, categories[0].ID)
		}
	})

	t.Run("requester_sees_global_plus_own_custom", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		userA := testutil.CreateTestUser(t, db)
		userB := testutil.CreateTestUser(t, db)

		global := testutil.CreateTestCategory(t, db)
		ownCustom := testutil.CreateTestCustomCategory(t, db, userA.ID)
		otherCustom := testutil.CreateTestCustomCategory(t, db, userB.ID)

		categories, err := svc.ListVisible(&userA.ID)
		testutil.AssertNoError(t, err)

		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		seen := map[uint]bool{}
		for _, cat := range categories {
			seen[cat.ID] = true
		}
		if !seen[global.ID] {
			t.Error("expected global category to be visible")
		}
		if !seen[ownCustom.ID] {
			t.Error("expected own custom category to be visible")
		}
		if seen[otherCustom.ID] {
			t.Error("another user's custom category must not be visible")
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		created := testutil.CreateTestCategory(t, db)

		cat, err := svc.GetCategoryByID(created.ID, nil)
		testutil.AssertNoError(t, err)

		if cat.ID != created.ID {
			t.Errorf("expected category ID %d, got %d", created.ID, cat.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		_, err := svc.GetCategoryByID(99999, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("custom_returned_to_owner", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		owner := testutil.CreateTestUser(t, db)
		custom := testutil.CreateTestCustomCategory(t, db, owner.ID)

		cat, err := svc.GetCategoryByID(custom.ID, &owner.ID)
		testutil.AssertNoError(t, err)

		if cat.ID != custom.ID {
			t.Errorf("expected category ID %d, got %d", custom.ID, cat.ID)
		}
	})

	t.Run("custom_hidden_from_other_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		custom := testutil.CreateTestCustomCategory(t, db, owner.ID)

		_, err := svc.GetCategoryByID(custom.ID, &other.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		_, err = svc.GetCategoryByID(custom.ID, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		err := svc.DeleteCategory(99999)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("cascades_to_records", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)

		user := testutil.CreateTestUser(t, db)
		doomed := testutil.CreateTestCategory(t, db)
		kept := testutil.CreateTestCategory(t, db)

		testutil.CreateTestRecord(t, db, user.ID, doomed.ID, 10)
		testutil.CreateTestRecord(t, db, user.ID, doomed.ID, 20)
		surviving := testutil.CreateTestRecord(t, db, user.ID, kept.ID, 30)

		testutil.AssertNoError(t, svc.DeleteCategory(doomed.ID))

		_, err := svc.GetCategoryByID(doomed.ID, nil)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")

		var remaining []models.Record
		if err := db.Find(&remaining).Error; err != nil {
			t.Fatalf("failed to load records: %v", err)
		}
		if len(remaining) != 1 || remaining[0].ID != surviving.ID {
			t.Errorf("expected only record %d to survive, got %d records", surviving.ID, len(remaining))
		}
	})
}
