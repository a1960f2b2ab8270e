package services

import (
	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"
)

type ProfileService interface {
	GetProfile(id string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (s *ProfileServiceImpl) GetProfile(id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile applies only the fields present in the request; the
// profile is always the caller's own — there is no way to address
// someone else's.
func (s *ProfileServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.BusinessName != nil {
		profile.BusinessName = *req.BusinessName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.CoverURL != nil {
		profile.CoverURL = *req.CoverURL
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *models.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:           profile.ID,
		FullName:     profile.FullName,
		BusinessName: profile.BusinessName,
		DisplayName:  profile.DisplayName(),
		Email:        profile.ContactEmail,
		AvatarURL:    profile.AvatarURL,
		CoverURL:     profile.CoverURL,
		Bio:          profile.Bio,
		Location:     profile.Location,
		Phone:        profile.Phone,
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}
