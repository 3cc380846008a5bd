package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"courtier_backend/internal/controller"
	"courtier_backend/internal/middleware"
	"courtier_backend/internal/model"
	"courtier_backend/internal/repositories"
	"courtier_backend/pkg/config"
	"courtier_backend/pkg/cron"
	"courtier_backend/pkg/database"
	"courtier_backend/pkg/email"
	"courtier_backend/pkg/logger"
	"courtier_backend/pkg/seed"
	"courtier_backend/pkg/utils/jwt"
	"courtier_backend/pkg/utils/storage"
)

func main() {
	cfg := config.Load()
	logger.Init()

	if cfg.Database.URL == "" {
		logger.Log.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWT.Secret == "" {
		logger.Log.Fatal("JWT_SECRET is not set")
	}
	jwt.Init(cfg.JWT.Secret)

	if err := email.InitEmailService(cfg.Email.ResendAPIKey); err != nil {
		logger.Log.Fatalf("Could not initialize email service: %v", err)
	}

	db, err := database.InitDB(cfg.Database.URL)
	if err != nil {
		logger.Log.Fatalf("Could not connect to database: %v", err)
	}

	err = database.MigrateDatabase(db,
		&model.User{},
		&model.Session{},
		&model.Property{},
		&model.Lead{},
		&model.Viewing{},
	)
	if err != nil {
		logger.Log.Warnf("Migration warning: %v", err)
	}

	seed.SeedAdminUser(db, cfg.Admin.Email, cfg.Admin.Password)

	propertyRepo := repositories.NewPropertyRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	viewingRepo := repositories.NewViewingRepository(db)
	userRepo := repositories.NewUserRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	cron.InitSessionCleanupCron(sessionRepo)

	var uploader storage.Uploader
	if cfg.Storage.Driver == "s3" {
		uploader, err = storage.NewS3Storage(cfg.Storage.AWSRegion, cfg.Storage.AWSBucket, cfg.Storage.AWSKey, cfg.Storage.AWSSecret)
	} else {
		uploader, err = storage.NewLocalStorage(cfg.Storage.UploadDir)
	}
	if err != nil {
		logger.Log.Fatalf("Could not initialize upload storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			logger.Log.Errorf("Unhandled error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New())

	if cfg.Storage.Driver == "local" {
		app.Static("/uploads/properties", cfg.Storage.UploadDir)
	}

	auth := middleware.AuthRequired(sessionRepo)
	api := app.Group("/api")

	controller.NewAuthController(userRepo, sessionRepo).RegisterRoutes(api, auth)
	controller.NewPropertyController(propertyRepo).RegisterRoutes(api, auth)
	controller.NewLeadController(leadRepo, cfg.Email.NotifyEmail).RegisterRoutes(api, auth)
	controller.NewViewingController(viewingRepo, propertyRepo, cfg.Email.NotifyEmail).RegisterRoutes(api, auth)
	controller.NewUploadController(uploader).RegisterRoutes(api, auth)
	controller.NewStatsController(db).RegisterRoutes(api, auth)

	logger.Log.Infof("Server is running on port %s", cfg.Server.Port)
	logger.Log.Fatal(app.Listen(":" + cfg.Server.Port))
}
