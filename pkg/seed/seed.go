package seed

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"courtier_backend/internal/model"
	"courtier_backend/pkg/logger"
)

// SeedAdminUser bootstraps the broker's admin account from the environment.
// Credentials live in the database as a bcrypt hash, never in source.
func SeedAdminUser(db *gorm.DB, email, password string) {
	if email == "" || password == "" {
		logger.Log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.User
	if err := db.First(&existing, "email = ?", email).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorf("Could not hash admin password: %v", err)
		return
	}

	user := model.User{
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		logger.Log.Errorf("Could not seed admin user: %v", err)
		return
	}

	logger.Log.Infof("Seeded admin user %s", email)
}
