package repositories

import (
	"errors"
	"strings"

	"localpro_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service not found")

// ServiceSearchCriteria is the filter set a browse session produces.
// Empty fields are not applied; non-empty fields combine with AND.
type ServiceSearchCriteria struct {
	Title      string `form:"title"`
	CategoryID string `form:"category_id"`
	Provider   string `form:"provider"`
	Location   string `form:"location"`
	UserID     string `form:"user_id"`

	// ActiveOnly scopes the listing to live services. Public listings set
	// it; an owner browsing their own services does not, so inactive
	// drafts stay visible to them.
	ActiveOnly bool `form:"-"`
}

type ServiceRepository interface {
	Create(service *models.Service) error
	FindByID(id string) (*models.Service, error)
	Search(criteria ServiceSearchCriteria) ([]models.Service, error)
	Update(service *models.Service) error
	Delete(id string) error
}

type ServiceRepositoryImpl struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

func (r *ServiceRepositoryImpl) FindByID(id string) (*models.Service, error) {
	var service models.Service
	err := r.db.
		Preload("Profile").
		Preload("Category").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.created_at DESC")
		}).
		Preload("Reviews.Author").
		First(&service, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &service, nil
}

// Search translates the filter set into a single query. Substring matches
// are case-insensitive (LOWER ... LIKE, portable across postgres and the
// sqlite test database); the provider filter matches the joined profile's
// full or business name; results always come back newest first.
func (r *ServiceRepositoryImpl) Search(criteria ServiceSearchCriteria) ([]models.Service, error) {
	var services []models.Service

	query := r.db.Model(&models.Service{})

	if criteria.ActiveOnly {
		query = query.Where("services.active = ?", true)
	}

	if criteria.Title != "" {
		query = query.Where("LOWER(services.title) LIKE ?", contains(criteria.Title))
	}

	if criteria.CategoryID != "" {
		query = query.Where("services.category_id = ?", criteria.CategoryID)
	}

	if criteria.Location != "" {
		query = query.Where("LOWER(services.location) LIKE ?", contains(criteria.Location))
	}

	if criteria.UserID != "" {
		query = query.Where("services.user_id = ?", criteria.UserID)
	}

	if criteria.Provider != "" {
		pattern := contains(criteria.Provider)
		query = query.
			Joins("JOIN profiles ON profiles.id = services.user_id").
			Where("LOWER(profiles.full_name) LIKE ? OR LOWER(profiles.business_name) LIKE ?", pattern, pattern)
	}

	err := query.
		Preload("Profile").
		Preload("Category").
		Order("services.created_at DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (r *ServiceRepositoryImpl) Update(service *models.Service) error {
	return r.db.Save(service).Error
}

func (r *ServiceRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Service{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}
	return nil
}

func contains(q string) string {
	return "%" + strings.ToLower(q) + "%"
}
