package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"localpro_backend/internal/config"
	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-1234567890"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

var testDBCounter atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svcdb%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
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

type testEnv struct {
	db               *gorm.DB
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	serviceRepo      repositories.ServiceRepository
	categoryRepo     repositories.CategoryRepository
	reviewRepo       repositories.ReviewRepository
	uploadRepo       repositories.UploadRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	return &testEnv{
		db:               db,
		userRepo:         repositories.NewUserRepository(db),
		profileRepo:      repositories.NewProfileRepository(db),
		refreshTokenRepo: repositories.NewRefreshTokenRepository(db),
		serviceRepo:      repositories.NewServiceRepository(db),
		categoryRepo:     repositories.NewCategoryRepository(db),
		reviewRepo:       repositories.NewReviewRepository(db),
		uploadRepo:       repositories.NewUploadRepository(db),
	}
}

func (e *testEnv) createUser(t *testing.T, email, fullName string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "x"}
	require.NoError(t, e.db.Create(user).Error)
	require.NoError(t, e.db.Create(&models.Profile{
		ID:           user.ID,
		FullName:     fullName,
		ContactEmail: email,
	}).Error)
	return user
}

func (e *testEnv) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, e.db.Create(category).Error)
	return category
}
