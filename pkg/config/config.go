package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Storage  StorageConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

type AdminConfig struct {
	Email    string
	Password string
}

type StorageConfig struct {
	Driver    string // "local" or "s3"
	UploadDir string
	AWSRegion string
	AWSBucket string
	AWSKey    string
	AWSSecret string
}

type EmailConfig struct {
	ResendAPIKey string
	NotifyEmail  string
}

func Load() *Config {
	godotenv.Load()

	viper.SetDefault("PORT", "3000")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads/properties")
	viper.SetDefault("AWS_REGION", "ca-central-1")
	viper.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("PORT"),
		},
		Database: DatabaseConfig{
			URL: viper.GetString("DATABASE_URL"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			Driver:    viper.GetString("STORAGE_DRIVER"),
			UploadDir: viper.GetString("UPLOAD_DIR"),
			AWSRegion: viper.GetString("AWS_REGION"),
			AWSBucket: viper.GetString("AWS_BUCKET_NAME"),
			AWSKey:    viper.GetString("AWS_ACCESS_KEY_ID"),
			AWSSecret: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Email: EmailConfig{
			ResendAPIKey: viper.GetString("RESEND_API_KEY"),
			NotifyEmail:  viper.GetString("NOTIFY_EMAIL"),
		},
	}
}
