package models

import "time"

// User is the authentication identity. Application data lives in Profile,
// which shares the user's ID.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	Profile *Profile `gorm:"foreignKey:ID;references:ID" json:"profile,omitempty"`
}
