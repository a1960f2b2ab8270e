package handlers

import (
	"net/http"

	"localpro_backend/internal/middleware"
	"localpro_backend/internal/services"
	"localpro_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	*BaseHandler
	serviceService services.ServiceService
	reviewService  services.ReviewService
}

func NewServiceHandler(
	base *BaseHandler,
	serviceService services.ServiceService,
	reviewService services.ReviewService,
) *ServiceHandler {
	return &ServiceHandler{
		BaseHandler:    base,
		serviceService: serviceService,
		reviewService:  reviewService,
	}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Listing and detail are public; optional auth lets an owner see
	// their own inactive services when filtering by user_id.
	public := r.Group("/services")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("", h.Search)
		public.GET("/:serviceId", h.Get)
		public.GET("/:serviceId/reviews", h.ListReviews)
	}

	protected := r.Group("/services")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.Create)
		protected.PUT("/:serviceId", h.Update)
		protected.DELETE("/:serviceId", h.Delete)
		protected.POST("/:serviceId/reviews", h.CreateReview)
	}
}

// Search runs the filtered listing query. All filters are optional and
// combine with AND; empty filters return the full active-scoped listing.
func (h *ServiceHandler) Search(c *gin.Context) {
	var query dto.ServiceSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.serviceService.Search(&query, middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	serviceID := c.Param("serviceId")

	resp, err := h.serviceService.Get(serviceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.CreateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.serviceService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	serviceID := c.Param("serviceId")

	var req dto.UpdateServiceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.serviceService.Update(userID, serviceID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	serviceID := c.Param("serviceId")

	if err := h.serviceService.Delete(userID, serviceID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

func (h *ServiceHandler) ListReviews(c *gin.Context) {
	serviceID := c.Param("serviceId")

	reviews, err := h.reviewService.ListByService(serviceID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *ServiceHandler) CreateReview(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	serviceID := c.Param("serviceId")

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(userID, serviceID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
