package dto

import "time"

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	ServiceID  string    `json:"service_id"`
	UserID     string    `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}
