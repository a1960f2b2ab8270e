package repositories

import (
	"errors"

	"localpro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)
	Update(profile *models.Profile) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	var existing models.Profile
	if err := r.db.First(&existing, "id = ?", profile.ID).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
