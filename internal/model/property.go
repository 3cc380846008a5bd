package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusActive  PropertyStatus = "active"
	PropertyStatusPending PropertyStatus = "pending"
	PropertyStatusSold    PropertyStatus = "sold"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusActive, PropertyStatusPending, PropertyStatusSold:
		return true
	}
	return false
}

func PropertyStatuses() []string {
	return []string{
		string(PropertyStatusActive),
		string(PropertyStatusPending),
		string(PropertyStatusSold),
	}
}

type Property struct {
	ID          string                      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string                      `json:"title" gorm:"not null"`
	Slug        string                      `json:"slug" gorm:"index"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Price       string                      `json:"price" gorm:"type:decimal(12,2);not null"`
	Address     string                      `json:"address" gorm:"not null"`
	City        string                      `json:"city" gorm:"not null;default:'Montreal'"`
	Province    string                      `json:"province" gorm:"not null;default:'Quebec'"`
	Bedrooms    int                         `json:"bedrooms" gorm:"not null"`
	Bathrooms   int                         `json:"bathrooms" gorm:"not null"`
	SquareFeet  int                         `json:"squareFeet" gorm:"column:square_feet;not null"`
	LotSize     *int                        `json:"lotSize" gorm:"column:lot_size"`
	YearBuilt   *int                        `json:"yearBuilt" gorm:"column:year_built"`
	Status      PropertyStatus              `json:"status" gorm:"not null;default:'active'"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	Images      datatypes.JSONSlice[string] `json:"images"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

// BeforeCreate assigns the id and slug and fills defaults so stored rows
// never carry nil arrays or an empty status.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	if p.City == "" {
		p.City = "Montreal"
	}
	if p.Province == "" {
		p.Province = "Quebec"
	}
	if p.Status == "" {
		p.Status = PropertyStatusActive
	}
	if p.Features == nil {
		p.Features = datatypes.JSONSlice[string]{}
	}
	if p.Images == nil {
		p.Images = datatypes.JSONSlice[string]{}
	}
	return nil
}
