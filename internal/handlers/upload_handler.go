package handlers

import (
	"net/http"

	"localpro_backend/internal/middleware"
	"localpro_backend/internal/services"
	"localpro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("/:bucket", h.Upload)
	}
}

// Upload accepts a multipart file under the "file" field and stores it
// in the requested bucket, scoped to the authenticated user.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == "" {
		h.HandleServiceError(c, apperrors.ErrUnauthorized)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("missing file field"))
		return
	}

	resp, err := h.uploadService.Upload(c.Request.Context(), userID, c.Param("bucket"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
