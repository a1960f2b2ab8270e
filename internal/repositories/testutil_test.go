package repositories

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"localpro_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// setupTestDB opens a fresh in-memory database per test so tests can
// run in parallel without sharing state. The database is named so every
// pooled connection sees the same schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Service{},
		&models.Review{},
		&models.Upload{},
		&models.RefreshToken{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, fullName, businessName string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{
		ID:           user.ID,
		FullName:     fullName,
		BusinessName: businessName,
		ContactEmail: email,
	}
	require.NoError(t, db.Create(profile).Error)

	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

type testServiceOpts struct {
	title      string
	location   string
	categoryID *string
	active     bool
	createdAt  time.Time
}

func createTestService(t *testing.T, db *gorm.DB, userID string, opts testServiceOpts) *models.Service {
	t.Helper()

	service := &models.Service{
		UserID:      userID,
		Title:       opts.title,
		Description: "test description",
		Location:    opts.location,
		CategoryID:  opts.categoryID,
		Active:      opts.active,
	}
	if !opts.createdAt.IsZero() {
		service.CreatedAt = opts.createdAt
	}
	require.NoError(t, db.Create(service).Error)
	// the column default forces active=true on insert for zero values
	if !opts.active {
		require.NoError(t, db.Model(service).Update("active", false).Error)
	}
	return service
}
