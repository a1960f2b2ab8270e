package repositories

import (
	"testing"
	"time"

	"localpro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate_RejectsOutOfRangeRating(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewReviewRepository(db)

	assert.ErrorIs(t, repo.Create(&models.Review{Rating: 0}), ErrInvalidReviewRating)
	assert.ErrorIs(t, repo.Create(&models.Review{Rating: 6}), ErrInvalidReviewRating)
}

func TestReviewFindByService_NewestFirstWithAuthor(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewReviewRepository(db)
	provider := createTestUser(t, db, "p@test.com", "Provider", "")
	alice := createTestUser(t, db, "alice@test.com", "Alice", "")
	bob := createTestUser(t, db, "bob@test.com", "Bob", "")
	service := createTestService(t, db, provider.ID, testServiceOpts{title: "Cleaning", active: true})

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Review{
		ServiceID: service.ID, UserID: alice.ID, Rating: 4, Comment: "good", CreatedAt: base,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		ServiceID: service.ID, UserID: bob.ID, Rating: 5, Comment: "great", CreatedAt: base.Add(time.Hour),
	}).Error)

	reviews, err := repo.FindByService(service.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "great", reviews[0].Comment)
	assert.Equal(t, "good", reviews[1].Comment)
	require.NotNil(t, reviews[0].Author)
	assert.Equal(t, "Bob", reviews[0].Author.FullName)
}

func TestRefreshTokenRevoke(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewRefreshTokenRepository(db)
	user := createTestUser(t, db, "u@test.com", "U", "")

	token := &models.RefreshToken{
		UserID:    user.ID,
		Token:     "tok-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(token))

	found, err := repo.FindByToken("tok-1")
	require.NoError(t, err)
	assert.True(t, found.Valid(time.Now()))

	require.NoError(t, repo.Revoke("tok-1"))
	found, err = repo.FindByToken("tok-1")
	require.NoError(t, err)
	assert.False(t, found.Valid(time.Now()))

	_, err = repo.FindByToken("missing")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}
