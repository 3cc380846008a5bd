package cron

import (
	"github.com/robfig/cron/v3"

	"courtier_backend/internal/repositories"
	"courtier_backend/pkg/logger"
)

// InitSessionCleanupCron purges expired login sessions every night. The auth
// middleware already rejects expired sessions; this just keeps the table
// from growing without bound.
func InitSessionCleanupCron(sessions *repositories.SessionRepository) {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		purgeExpiredSessions(sessions)
	})
	if err != nil {
		logger.Log.Errorf("Could not initialize session cleanup cron: %v", err)
		return
	}

	c.Start()
}

func purgeExpiredSessions(sessions *repositories.SessionRepository) {
	count, err := sessions.DeleteExpired()
	if err != nil {
		logger.Log.Errorf("Error purging expired sessions: %v", err)
		return
	}
	if count > 0 {
		logger.Log.Infof("Purged %d expired sessions", count)
	}
}
