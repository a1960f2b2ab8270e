package repositories

import (
	"errors"

	"localpro_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidReviewRating = errors.New("rating must be between 1 and 5")
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	FindByService(serviceID string) ([]models.Review, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Author").First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByService returns the service's reviews with their authors,
// newest first.
func (r *ReviewRepositoryImpl) FindByService(serviceID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Preload("Author").
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
