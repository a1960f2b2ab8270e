package handlers

import (
	"net/http"

	"localpro_backend/internal/middleware"
	"localpro_backend/internal/services"
	"localpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// public profile pages
	r.GET("/profiles/:profileId", h.GetProfile)

	// the caller's own profile
	own := r.Group("/profile")
	own.Use(middleware.AuthMiddleware())
	{
		own.GET("", h.GetOwnProfile)
		own.PUT("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID := c.Param("profileId")

	profile, err := h.profileService.GetProfile(profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
