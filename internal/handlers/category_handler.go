package handlers

import (
	"net/http"

	"localpro_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/display", h.DisplayList)
	}
}

// List serves the category table the service form picker uses.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// DisplayList serves the static showcase list used by the categories
// and about pages.
func (h *CategoryHandler) DisplayList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.categoryService.DisplayList()})
}
