package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is left by a user on a service. Reviews are write-once: they
// are never updated or deleted through the API.
type Review struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ServiceID string    `gorm:"type:uuid;not null;index" json:"service_id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Author *Profile `gorm:"foreignKey:UserID;references:ID" json:"profiles,omitempty"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
