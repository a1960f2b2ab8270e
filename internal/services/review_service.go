package services

import (
	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"
)

type ReviewService interface {
	Create(userID, serviceID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByService(serviceID string) ([]dto.ReviewResponse, error)
}

type ReviewServiceImpl struct {
	reviewRepo  repositories.ReviewRepository
	serviceRepo repositories.ServiceRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	serviceRepo repositories.ServiceRepository,
) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:  reviewRepo,
		serviceRepo: serviceRepo,
	}
}

// Create stores a review on an existing service. Reviews are write-once;
// there is no update or delete path.
func (s *ReviewServiceImpl) Create(userID, serviceID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.serviceRepo.FindByID(serviceID); err != nil {
		if apperrors.Is(err, repositories.ErrServiceNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	review := &models.Review{
		ServiceID: serviceID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if apperrors.Is(err, repositories.ErrInvalidReviewRating) {
			return nil, apperrors.NewBadRequestError(err.Error())
		}
		return nil, apperrors.DatabaseError(err)
	}

	created, err := s.reviewRepo.FindByID(review.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toReviewResponse(created), nil
}

func (s *ReviewServiceImpl) ListByService(serviceID string) ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByService(serviceID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, *toReviewResponse(&reviews[i]))
	}
	return resp, nil
}

func toReviewResponse(review *models.Review) *dto.ReviewResponse {
	resp := &dto.ReviewResponse{
		ID:        review.ID,
		ServiceID: review.ServiceID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.Author != nil {
		resp.AuthorName = review.Author.DisplayName()
	}
	return resp
}
