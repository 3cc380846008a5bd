package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "courtier_backend/pkg/logger"
)

// InitDB opens the PostgreSQL connection and configures the pool.
func InitDB(dsn string) (*gorm.DB, error) {
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.New(pgConfig), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	applog.Log.Info("Database connected successfully")

	return db, nil
}

// MigrateDatabase creates or updates one table per model.
func MigrateDatabase(db *gorm.DB, models ...interface{}) error {
	for _, m := range models {
		if !db.Migrator().HasTable(m) {
			if err := db.Migrator().CreateTable(m); err != nil {
				return err
			}
			applog.Log.Infof("Created table for %T", m)
		} else {
			if err := db.Migrator().AutoMigrate(m); err != nil {
				return err
			}
			applog.Log.Debugf("Updated table for %T", m)
		}
	}
	return nil
}
