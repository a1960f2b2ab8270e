package services

import (
	"errors"

	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"
)

type ServiceService interface {
	Create(userID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Get(id string) (*dto.ServiceResponse, error)
	Search(query *dto.ServiceSearchQuery, callerID string) (*dto.ServiceListResponse, error)
	Update(userID, serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(userID, serviceID string) error
}

type ServiceServiceImpl struct {
	serviceRepo  repositories.ServiceRepository
	categoryRepo repositories.CategoryRepository
}

func NewServiceService(
	serviceRepo repositories.ServiceRepository,
	categoryRepo repositories.CategoryRepository,
) ServiceService {
	return &ServiceServiceImpl{
		serviceRepo:  serviceRepo,
		categoryRepo: categoryRepo,
	}
}

// Create stamps the authenticated user as the owner. A missing userID is
// a wiring bug in the caller, not a client error.
func (s *ServiceServiceImpl) Create(userID string, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if userID == "" {
		return nil, apperrors.InternalError(errors.New("create service called without an authenticated user"))
	}

	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	service := &models.Service{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		PriceType:   normalizePriceType(req.PriceType),
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		Location:    req.Location,
		Active:      true,
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := s.serviceRepo.Create(service); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	created, err := s.serviceRepo.FindByID(service.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toServiceResponse(created), nil
}

func (s *ServiceServiceImpl) Get(id string) (*dto.ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return toServiceResponse(service), nil
}

// Search applies the listing scope rule: public listings only show active
// services, while an owner browsing their own services sees everything,
// inactive drafts included.
func (s *ServiceServiceImpl) Search(query *dto.ServiceSearchQuery, callerID string) (*dto.ServiceListResponse, error) {
	criteria := repositories.ServiceSearchCriteria{
		Title:      query.Title,
		CategoryID: query.CategoryID,
		Provider:   query.Provider,
		Location:   query.Location,
		UserID:     query.UserID,
		ActiveOnly: query.UserID == "" || query.UserID != callerID,
	}

	services, err := s.serviceRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.ServiceListResponse{
		Services: make([]dto.ServiceResponse, 0, len(services)),
		Total:    len(services),
	}
	for i := range services {
		resp.Services = append(resp.Services, *toServiceResponse(&services[i]))
	}
	return resp, nil
}

func (s *ServiceServiceImpl) Update(userID, serviceID string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := s.findOwned(userID, serviceID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCategory(req.CategoryID); err != nil {
		return nil, err
	}

	service.Title = req.Title
	service.Description = req.Description
	service.Price = req.Price
	service.PriceType = normalizePriceType(req.PriceType)
	service.ImageURL = req.ImageURL
	service.CategoryID = req.CategoryID
	service.Location = req.Location
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := s.serviceRepo.Update(service); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	updated, err := s.serviceRepo.FindByID(service.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toServiceResponse(updated), nil
}

func (s *ServiceServiceImpl) Delete(userID, serviceID string) error {
	if _, err := s.findOwned(userID, serviceID); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(serviceID); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

// findOwned loads the service and enforces the ownership invariant:
// only the owning profile may edit or delete a service.
func (s *ServiceServiceImpl) findOwned(userID, serviceID string) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(serviceID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if service.UserID != userID {
		return nil, apperrors.Forbidden("services", "You do not own this service")
	}

	return service, nil
}

func (s *ServiceServiceImpl) checkCategory(categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	if _, err := s.categoryRepo.FindByID(*categoryID); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.NewBadRequestError("Unknown category")
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

func normalizePriceType(priceType string) string {
	if priceType == "" {
		return models.PriceTypeFixed
	}
	return priceType
}

func toServiceResponse(service *models.Service) *dto.ServiceResponse {
	resp := &dto.ServiceResponse{
		ID:          service.ID,
		UserID:      service.UserID,
		Title:       service.Title,
		Description: service.Description,
		Price:       service.Price,
		PriceType:   service.PriceType,
		PriceLabel:  service.PriceLabel(),
		ImageURL:    service.ImageURL,
		CategoryID:  service.CategoryID,
		Location:    service.Location,
		Active:      service.Active,
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}

	if service.Profile != nil {
		resp.Provider = toProfileResponse(service.Profile)
	}
	if service.Category != nil {
		resp.Category = &dto.CategoryResponse{
			ID:          service.Category.ID,
			Name:        service.Category.Name,
			Icon:        service.Category.Icon,
			Description: service.Category.Description,
		}
	}
	for i := range service.Reviews {
		resp.Reviews = append(resp.Reviews, *toReviewResponse(&service.Reviews[i]))
	}

	return resp
}
