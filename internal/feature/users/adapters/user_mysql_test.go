package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	// Create User table
	err = db.AutoMigrate(&entity.User{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestUser(username string) *entity.User {
	return &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Phone:    "090-0000-0000",
	}
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Save_Insert(t *testing.T) {
	t.Run("successful insert assigns id and timestamps", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("alice")

		err := repo.Save(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
		assert.Equal(t, user.CreatedAt, user.UpdatedAt, "CreatedAt and UpdatedAt should match on insert")
	})

	t.Run("duplicate username error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Save(context.Background(), newTestUser("duplicate"))
		require.NoError(t, err, "failed to create first user")

		// Create second user with the same username
		err = repo.Save(context.Background(), newTestUser("duplicate"))

		assert.Error(t, err, "should return duplicate error")
	})
}

func TestUserMySQL_Save_Update(t *testing.T) {
	t.Run("update refreshes updated_at and keeps created_at", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("update-me")
		err := repo.Save(context.Background(), user)
		require.NoError(t, err, "failed to create user")

		createdAt := user.CreatedAt
		prevUpdatedAt := user.UpdatedAt

		time.Sleep(10 * time.Millisecond)
		user.UpdateInfo("changed@example.com", "080-1111-2222")
		err = repo.Save(context.Background(), user)

		assert.NoError(t, err, "failed to update user")

		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err, "failed to find user")
		assert.Equal(t, "changed@example.com", found.Email, "email was not updated")
		assert.Equal(t, "080-1111-2222", found.Phone, "phone was not updated")
		assert.Equal(t, "update-me", found.Username, "username must not change")
		assert.Equal(t, createdAt.Unix(), found.CreatedAt.Unix(), "CreatedAt must not change")
		assert.True(t, found.UpdatedAt.After(prevUpdatedAt), "UpdatedAt was not refreshed")
	})
}

func TestUserMySQL_FindAll(t *testing.T) {
	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err, "failed to list users")
		assert.Empty(t, users, "expected no users")
	})

	t.Run("returns every stored row", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		for _, name := range []string{"user1", "user2", "user3"} {
			err := repo.Save(context.Background(), newTestUser(name))
			require.NoError(t, err, "failed to create test data")
		}

		users, err := repo.FindAll(context.Background())

		assert.NoError(t, err, "failed to list users")
		assert.Len(t, users, 3, "unexpected number of users")
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := newTestUser("findbyid")
		err := repo.Save(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Username, found.Username, "username does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 999)

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_FindByUsername(t *testing.T) {
	t.Run("find user by username successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := newTestUser("findme")
		err := repo.Save(context.Background(), expected)
		require.NoError(t, err, "failed to create test data")

		found, err := repo.FindByUsername(context.Background(), "findme")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, "findme", found.Username, "username does not match")
	})

	t.Run("username not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByUsername(context.Background(), "ghost")

		assert.Error(t, err, "should return error")
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		users := []*entity.User{newTestUser("user1"), newTestUser("user2"), newTestUser("user3")}
		for _, u := range users {
			err := repo.Save(context.Background(), u)
			require.NoError(t, err, "failed to create test data")
		}

		found, err := repo.FindByUsername(context.Background(), "user2")

		assert.NoError(t, err, "failed to find user")
		assert.NotNil(t, found, "user is nil")
		assert.Equal(t, users[1].ID, found.ID, "ID does not match")
	})
}

func TestUserMySQL_ExistsByUsername(t *testing.T) {
	t.Run("returns true for an existing username", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Save(context.Background(), newTestUser("present"))
		require.NoError(t, err, "failed to create test data")

		exists, err := repo.ExistsByUsername(context.Background(), "present")

		assert.NoError(t, err, "exists check failed")
		assert.True(t, exists, "expected username to exist")
	})

	t.Run("returns false for a missing username", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		exists, err := repo.ExistsByUsername(context.Background(), "absent")

		assert.NoError(t, err, "exists check failed")
		assert.False(t, exists, "expected username not to exist")
	})
}

func TestUserMySQL_ExistsByID(t *testing.T) {
	t.Run("returns true for an existing ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("present")
		err := repo.Save(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		exists, err := repo.ExistsByID(context.Background(), user.ID)

		assert.NoError(t, err, "exists check failed")
		assert.True(t, exists, "expected ID to exist")
	})

	t.Run("returns false for a missing ID", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		exists, err := repo.ExistsByID(context.Background(), 999)

		assert.NoError(t, err, "exists check failed")
		assert.False(t, exists, "expected ID not to exist")
	})
}

func TestUserMySQL_DeleteByID(t *testing.T) {
	t.Run("deleted user can no longer be found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("doomed")
		err := repo.Save(context.Background(), user)
		require.NoError(t, err, "failed to create test data")

		err = repo.DeleteByID(context.Background(), user.ID)
		assert.NoError(t, err, "failed to delete user")

		found, err := repo.FindByID(context.Background(), user.ID)
		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("deleting a missing ID is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.DeleteByID(context.Background(), 999)

		assert.NoError(t, err, "delete of missing row should not fail")
	})

	t.Run("other rows are unaffected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		keep := newTestUser("keep")
		drop := newTestUser("drop")
		require.NoError(t, repo.Save(context.Background(), keep), "failed to create test data")
		require.NoError(t, repo.Save(context.Background(), drop), "failed to create test data")

		err := repo.DeleteByID(context.Background(), drop.ID)
		require.NoError(t, err, "failed to delete user")

		found, err := repo.FindByID(context.Background(), keep.ID)
		assert.NoError(t, err, "remaining user should still be found")
		assert.Equal(t, "keep", found.Username, "wrong user deleted")
	})
}

func TestUserMySQL_Timestamps(t *testing.T) {
	t.Run("CreatedAt and UpdatedAt are automatically set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		beforeCreate := time.Now()
		user := newTestUser("timestamp")

		err := repo.Save(context.Background(), user)
		require.NoError(t, err, "failed to create user")

		afterCreate := time.Now()

		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
		assert.False(t, user.UpdatedAt.IsZero(), "UpdatedAt is not set")
		assert.True(t, user.CreatedAt.After(beforeCreate) || user.CreatedAt.Equal(beforeCreate),
			"CreatedAt is before creation time")
		assert.True(t, user.CreatedAt.Before(afterCreate) || user.CreatedAt.Equal(afterCreate),
			"CreatedAt is after creation time")

		// Timestamps are preserved after retrieval
		found, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err, "failed to find user")

		assert.Equal(t, user.CreatedAt.Unix(), found.CreatedAt.Unix(), "CreatedAt does not match")
		assert.Equal(t, user.UpdatedAt.Unix(), found.UpdatedAt.Unix(), "UpdatedAt does not match")
	})
}
