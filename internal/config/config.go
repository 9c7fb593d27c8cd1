package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8000"`

	AdminEmail        string `env:"ADMIN_EMAIL"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	SessionTTL     time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	// StorageDriver selects the blob backend: s3, mongo or local.
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"s3"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"ACCESS_KEY_ID"`
	S3SecretKey string `env:"SECRET_ACCESS_KEY"`
	S3UseSSL    bool   `env:"S3_USE_SSL" envDefault:"true"`

	MongoURI        string `env:"MONGO_URI"`
	MongoDatabase   string `env:"MONGO_DATABASE" envDefault:"courses"`
	MongoCollection string `env:"MONGO_COLLECTION" envDefault:"plan_files"`

	LocalStorageDir string `env:"LOCAL_STORAGE_DIR" envDefault:"./uploads"`

	LogFile     string `env:"LOG_FILE" envDefault:"/tmp/logs.txt"`
	TemplateDir string `env:"TEMPLATE_DIR" envDefault:"./templates"`
	StaticDir   string `env:"STATIC_DIR" envDefault:"./static"`
}

func Load() (Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if cfg.AdminEmail == "" {
		return Config{}, fmt.Errorf("config: ADMIN_EMAIL is required")
	}
	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("config: ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}

	return cfg, nil
}
