package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Price types a service can carry.
const (
	PriceTypeFixed    = "fixed"
	PriceTypeHourly   = "hourly"
	PriceTypeVariable = "variable"
)

// Service is a listing offered by a provider. Created, updated and
// deleted only by its owning profile; the active flag controls whether
// it shows up in public listings.
type Service struct {
	BaseModel
	UserID      string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	Price       *float64 `json:"price"`
	PriceType   string   `gorm:"default:fixed" json:"price_type"`
	ImageURL    string   `json:"image_url"`
	CategoryID  *string  `gorm:"type:uuid;index" json:"category_id"`
	Location    string   `json:"location"`
	Active      bool     `gorm:"default:true" json:"active"`

	Profile  *Profile  `gorm:"foreignKey:UserID;references:ID" json:"profiles,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"categories,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:ServiceID" json:"reviews,omitempty"`
}

// PriceLabel renders the price the way listings display it:
// no price => "Price on request", fixed => "$80", hourly => "$50/hr",
// variable => "$200+".
func (s *Service) PriceLabel() string {
	if s.Price == nil {
		return "Price on request"
	}

	amount := strconv.FormatFloat(*s.Price, 'f', -1, 64)
	// keep two decimals when the price is not a whole number
	if strings.Contains(amount, ".") {
		amount = fmt.Sprintf("%.2f", *s.Price)
	}

	switch s.PriceType {
	case PriceTypeHourly:
		return "$" + amount + "/hr"
	case PriceTypeVariable:
		return "$" + amount + "+"
	default:
		return "$" + amount
	}
}
