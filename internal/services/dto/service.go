package dto

import "time"

type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required" validate:"required,max=200"`
	Description string   `json:"description" binding:"required" validate:"required,max=5000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	PriceType   string   `json:"price_type" validate:"price_type"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=500"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
	Location    string   `json:"location" validate:"omitempty,max=200"`
	Active      *bool    `json:"active"`
}

type UpdateServiceRequest struct {
	Title       string   `json:"title" binding:"required" validate:"required,max=200"`
	Description string   `json:"description" binding:"required" validate:"required,max=5000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	PriceType   string   `json:"price_type" validate:"price_type"`
	ImageURL    string   `json:"image_url" validate:"omitempty,max=500"`
	CategoryID  *string  `json:"category_id" validate:"omitempty,uuid"`
	Location    string   `json:"location" validate:"omitempty,max=200"`
	Active      *bool    `json:"active"`
}

// ServiceSearchQuery is the query-string shape of a search request.
type ServiceSearchQuery struct {
	Title      string `form:"title"`
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	Provider   string `form:"provider"`
	Location   string `form:"location"`
	UserID     string `form:"user_id" validate:"omitempty,uuid"`
}

type ServiceResponse struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       *float64          `json:"price"`
	PriceType   string            `json:"price_type"`
	PriceLabel  string            `json:"price_label"`
	ImageURL    string            `json:"image_url"`
	CategoryID  *string           `json:"category_id"`
	Location    string            `json:"location"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Provider    *ProfileResponse  `json:"provider,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Reviews     []ReviewResponse  `json:"reviews,omitempty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
