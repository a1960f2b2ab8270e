package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"localpro_backend/internal/storage"
	"localpro_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler serves stored objects over HTTP. It backs the public URLs
// local storage hands out; R2 objects are served by the bucket itself.
type FileHandler struct {
	*BaseHandler
	storage storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		storage:     store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/files/*path", h.Serve)
}

func (h *FileHandler) Serve(c *gin.Context) {
	filePath := strings.TrimPrefix(c.Param("path"), "/")
	if filePath == "" || strings.Contains(filePath, "..") {
		h.HandleServiceError(c, apperrors.NewBadRequestError("invalid file path"))
		return
	}

	ctx := c.Request.Context()

	exists, err := h.storage.Exists(ctx, filePath)
	if err != nil {
		h.HandleServiceError(c, apperrors.StorageError(err))
		return
	}
	if !exists {
		h.HandleServiceError(c, apperrors.New(apperrors.CodeNotFound, "files", "File not found", http.StatusNotFound))
		return
	}

	reader, err := h.storage.Get(ctx, filePath)
	if err != nil {
		h.HandleServiceError(c, apperrors.StorageError(err))
		return
	}
	defer reader.Close()

	if size, err := h.storage.GetSize(ctx, filePath); err == nil {
		c.Header("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Header("Cache-Control", "public, max-age=86400")

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// headers are already written, nothing left to report to the client
		_ = c.Error(err)
	}
}
