package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"localpro_backend/internal/auth"
	"localpro_backend/internal/email"
	"localpro_backend/internal/logger"
	"localpro_backend/internal/models"
	"localpro_backend/internal/repositories"
	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"
)

const (
	refreshTokenTTL  = 30 * 24 * time.Hour
	resetTokenExpiry = time.Hour
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	Me(userID string) (*dto.UserResponse, error)
	ForgotPassword(emailAddr string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates the user plus its empty profile and signs the user in.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	// The profile shares the user's ID and starts out nearly empty;
	// the user fills it in via profile edit.
	profile := &models.Profile{
		ID:           user.ID,
		FullName:     req.FullName,
		ContactEmail: req.Email,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		// without the profile the account is unusable, undo the user
		_ = s.userRepo.Delete(user.ID)
		return nil, apperrors.DatabaseError(err)
	}
	user.Profile = profile

	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildLoginResponse(user)
}

// Refresh exchanges a valid refresh token for a new token pair.
// The old token is revoked (rotation).
func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.LoginResponse, error) {
	rt, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !rt.Valid(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(rt.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Revoke(rt.Token); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.refreshTokenRepo.Revoke(refreshToken); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *AuthServiceImpl) Me(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.DatabaseError(err)
	}
	return buildUserResponse(user), nil
}

// ForgotPassword issues a reset token and mails it. An unknown email is
// reported as success so the endpoint cannot be used to probe accounts.
func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.DatabaseError(err)
	}

	token := generateRandomToken()
	expiry := time.Now().Add(resetTokenExpiry)
	user.ResetToken = token
	user.ResetTokenExpiry = &expiry

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.DatabaseError(err)
	}

	go func() {
		if err := s.emailProvider.SendPasswordReset(user.Email, token); err != nil {
			logger.WithError(err).Error("failed to send password reset email", "email", user.Email)
		}
	}()

	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return apperrors.ErrTokenExpired
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExpiry = nil

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.DatabaseError(err)
	}

	// a password change invalidates every session
	if err := s.refreshTokenRepo.RevokeAllForUser(user.ID); err != nil {
		return apperrors.DatabaseError(err)
	}

	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     generateRandomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         buildUserResponse(user),
	}, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
	if user.Profile != nil {
		resp.Profile = toProfileResponse(user.Profile)
	}
	return resp
}

func generateRandomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return hex.EncodeToString([]byte(time.Now().String()))
	}
	return hex.EncodeToString(bytes)
}
