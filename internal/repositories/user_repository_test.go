package repositories

import (
	"testing"

	"localpro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Email: "dup@test.com", PasswordHash: "x"}))
	err := repo.Create(&models.User{Email: "dup@test.com", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserFindByEmail_PreloadsProfile(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	created := createTestUser(t, db, "jane@test.com", "Jane Doe", "")

	user, err := repo.FindByEmail("jane@test.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Jane Doe", user.Profile.FullName)

	_, err = repo.FindByEmail("nobody@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserFindByResetToken(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "jane@test.com", "Jane Doe", "")

	user.ResetToken = "reset-abc"
	require.NoError(t, repo.Update(user))

	found, err := repo.FindByResetToken("reset-abc")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByResetToken("bogus")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
