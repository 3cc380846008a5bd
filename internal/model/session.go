package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a server-held login session. A JWT is only honored while its
// session row exists and has not expired, so logout actually revokes access.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"userId" gorm:"column:user_id;type:varchar(36);not null;index"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
