package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Viewing Status
type ViewingStatus string

const (
	ViewingStatusPending   ViewingStatus = "pending"
	ViewingStatusConfirmed ViewingStatus = "confirmed"
	ViewingStatusCompleted ViewingStatus = "completed"
	ViewingStatusCancelled ViewingStatus = "cancelled"
)

func (s ViewingStatus) Valid() bool {
	switch s {
	case ViewingStatusPending, ViewingStatusConfirmed, ViewingStatusCompleted, ViewingStatusCancelled:
		return true
	}
	return false
}

func ViewingStatuses() []string {
	return []string{
		string(ViewingStatusPending),
		string(ViewingStatusConfirmed),
		string(ViewingStatusCompleted),
		string(ViewingStatusCancelled),
	}
}

// Viewing is a scheduled showing request. Unlike Lead the property reference
// is mandatory, and viewings are removed together with their property.
type Viewing struct {
	ID            string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PropertyID    string        `json:"propertyId" gorm:"column:property_id;type:varchar(36);not null;index"`
	Name          string        `json:"name" gorm:"not null"`
	Email         string        `json:"email" gorm:"not null"`
	Phone         string        `json:"phone" gorm:"not null"`
	PreferredDate string        `json:"preferredDate" gorm:"column:preferred_date"`
	PreferredTime string        `json:"preferredTime" gorm:"column:preferred_time"`
	Message       string        `json:"message" gorm:"type:text"`
	Status        ViewingStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time     `json:"createdAt"`

	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
}

func (v *Viewing) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = ViewingStatusPending
	}
	return nil
}
