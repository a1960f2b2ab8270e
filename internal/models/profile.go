package models

import "time"

// Profile holds the public-facing data of a user. There is exactly one
// per user, created empty at registration and only ever updated by its
// owner. Profiles are never deleted.
type Profile struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"` // same as User.ID
	FullName     string    `json:"full_name"`
	BusinessName string    `json:"business_name"`
	ContactEmail string    `json:"email"`
	AvatarURL    string    `json:"avatar_url"`
	CoverURL     string    `json:"cover_url"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Services []Service `gorm:"foreignKey:UserID" json:"services,omitempty"`
}

// DisplayName is the provider name shown on service cards: business name
// first, then personal name, then the contact email as a last resort.
func (p *Profile) DisplayName() string {
	if p.BusinessName != "" {
		return p.BusinessName
	}
	if p.FullName != "" {
		return p.FullName
	}
	return p.ContactEmail
}
