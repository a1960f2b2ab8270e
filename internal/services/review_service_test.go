package services

import (
	"net/http"
	"testing"

	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreate_OnMissingService(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc := NewReviewService(e.reviewRepo, e.serviceRepo)
	user := e.createUser(t, "jane@test.com", "Jane")

	_, err := svc.Create(user.ID, "00000000-0000-0000-0000-000000000000", &dto.CreateReviewRequest{Rating: 5})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestReviewCreateAndList(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	reviewSvc := NewReviewService(e.reviewRepo, e.serviceRepo)
	serviceSvc := NewServiceService(e.serviceRepo, e.categoryRepo)

	provider := e.createUser(t, "pro@test.com", "Provider")
	reviewer := e.createUser(t, "rita@test.com", "Rita Reviewer")

	created, err := serviceSvc.Create(provider.ID, &dto.CreateServiceRequest{
		Title:       "House Cleaning",
		Description: "Deep clean",
	})
	require.NoError(t, err)

	review, err := reviewSvc.Create(reviewer.ID, created.ID, &dto.CreateReviewRequest{
		Rating:  5,
		Comment: "spotless",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rita Reviewer", review.AuthorName)

	listed, err := reviewSvc.ListByService(created.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 5, listed[0].Rating)
	assert.Equal(t, "spotless", listed[0].Comment)
}

func TestCategoryDisplayList(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc := NewCategoryService(e.categoryRepo)

	display := svc.DisplayList()
	assert.Len(t, display, 13)
	// showcase list is static and carries no database IDs
	for _, c := range display {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon)
	}
}

func TestProfileUpdate_OnlyProvidedFieldsChange(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc := NewProfileService(e.profileRepo)
	user := e.createUser(t, "jane@test.com", "Jane Doe")

	business := "Sparkle Cleaning Co"
	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		BusinessName: &business,
	})
	require.NoError(t, err)

	assert.Equal(t, "Sparkle Cleaning Co", updated.BusinessName)
	// untouched fields keep their values
	assert.Equal(t, "Jane Doe", updated.FullName)
	assert.Equal(t, "jane@test.com", updated.Email)
	// display name prefers the business name once set
	assert.Equal(t, "Sparkle Cleaning Co", updated.DisplayName)

	empty := ""
	updated, err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		BusinessName: &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.DisplayName)
}
