package dto

import "time"

// UpdateProfileRequest carries only writable profile fields; identity and
// timestamps are never client-supplied. Nil pointers mean "leave as is".
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,max=120"`
	BusinessName *string `json:"business_name" validate:"omitempty,max=120"`
	Bio          *string `json:"bio" validate:"omitempty,max=2000"`
	Location     *string `json:"location" validate:"omitempty,max=200"`
	Phone        *string `json:"phone" validate:"omitempty,max=40"`
	AvatarURL    *string `json:"avatar_url" validate:"omitempty,max=500"`
	CoverURL     *string `json:"cover_url" validate:"omitempty,max=500"`
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	BusinessName string    `json:"business_name"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatar_url"`
	CoverURL     string    `json:"cover_url"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
