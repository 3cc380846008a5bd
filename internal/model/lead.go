package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead Status
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusClosed    LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusClosed:
		return true
	}
	return false
}

func LeadStatuses() []string {
	return []string{
		string(LeadStatusNew),
		string(LeadStatusContacted),
		string(LeadStatusQualified),
		string(LeadStatusClosed),
	}
}

// Lead is a contact form submission, optionally tied to a property. When the
// referenced property is deleted the reference is nulled so the contact
// history survives.
type Lead struct {
	ID               string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name             string     `json:"name" gorm:"not null"`
	Email            string     `json:"email" gorm:"not null"`
	Phone            string     `json:"phone" gorm:"not null"`
	Message          string     `json:"message" gorm:"type:text;not null"`
	PropertyID       *string    `json:"propertyId" gorm:"column:property_id;type:varchar(36);index"`
	PropertyInterest string     `json:"propertyInterest" gorm:"column:property_interest"`
	Status           LeadStatus `json:"status" gorm:"not null;default:'new'"`
	CreatedAt        time.Time  `json:"createdAt"`

	Property *Property `json:"-" gorm:"foreignKey:PropertyID;constraint:OnDelete:SET NULL"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	return nil
}
