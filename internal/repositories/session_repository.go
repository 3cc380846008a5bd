package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"courtier_backend/internal/model"
)

// SessionRepository is the persistence layer for login sessions.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) GetByID(id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.First(&session, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not fetch session %s: %w", id, err)
	}
	return &session, nil
}

func (r *SessionRepository) Create(session *model.Session) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("could not create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(id string) (bool, error) {
	res := r.db.Delete(&model.Session{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("could not delete session %s: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteExpired removes sessions past their expiry and reports how many
// rows went away. Run daily by the cleanup cron.
func (r *SessionRepository) DeleteExpired() (int64, error) {
	res := r.db.Where("expires_at < ?", time.Now()).Delete(&model.Session{})
	if res.Error != nil {
		return 0, fmt.Errorf("could not purge expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
