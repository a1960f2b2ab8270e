package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is read-only reference data seeded at migration time.
type Category struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// SeedCategories is the canonical category table content.
func SeedCategories() []Category {
	return []Category{
		{Name: "Home Services", Icon: "🏠"},
		{Name: "Personal Training", Icon: "💪"},
		{Name: "Tech Support", Icon: "💻"},
		{Name: "Education", Icon: "📚"},
		{Name: "Beauty & Wellness", Icon: "💅"},
		{Name: "Events", Icon: "🎉"},
		{Name: "Automotive Services", Icon: "🚗"},
		{Name: "Pet Services", Icon: "🐾"},
		{Name: "Creative & Media", Icon: "🎨"},
		{Name: "Food & Catering", Icon: "🍽️"},
		{Name: "Music & Entertainment", Icon: "🎵"},
		{Name: "Rental & Moving Services", Icon: "📦"},
		{Name: "Other", Icon: "❓"},
	}
}
