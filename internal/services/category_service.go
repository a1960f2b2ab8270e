package services

import (
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"
)

type CategoryService interface {
	List() ([]dto.CategoryResponse, error)
	DisplayList() []dto.CategoryResponse
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

// List returns the category table, name-ordered; this is what the
// service form's category picker consumes.
func (s *CategoryServiceImpl) List() ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Icon:        c.Icon,
			Description: c.Description,
		})
	}
	return resp, nil
}

// DisplayList is the static list behind the categories showcase page.
// It is sourced independently from the category table and the two are
// not guaranteed to stay in sync; unifying them is a pending product
// decision, so both sources are kept explicit.
func (s *CategoryServiceImpl) DisplayList() []dto.CategoryResponse {
	return []dto.CategoryResponse{
		{Name: "Home Services", Icon: "🏠"},
		{Name: "Personal Training", Icon: "💪"},
		{Name: "Tech Support", Icon: "💻"},
		{Name: "Education", Icon: "📚"},
		{Name: "Beauty & Wellness", Icon: "💅"},
		{Name: "Events", Icon: "🎉"},
		{Name: "Automotive Services", Icon: "🚗"},
		{Name: "Pet Services", Icon: "🐾"},
		{Name: "Creative & Media", Icon: "🎨"},
		{Name: "Food & Catering", Icon: "🍽️"},
		{Name: "Music & Entertainment", Icon: "🎵"},
		{Name: "Rental & Moving Services", Icon: "📦"},
		{Name: "Other", Icon: "❓"},
	}
}
