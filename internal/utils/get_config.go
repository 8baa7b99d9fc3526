package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v2"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"

	StorageNone  = "none"
	StorageS3    = "s3"
	StorageMinio = "minio"
)

// Config is read from config.yaml first; environment variables override it.
type Config struct {
	AppPort          string `yaml:"APP_PORT" env:"APP_PORT"`
	AppURL           string `yaml:"APP_URL" env:"APP_URL"`
	LogLevel         string `yaml:"LOG_LEVEL" env:"LOG_LEVEL"`
	LogFile          string `yaml:"LOG_FILE" env:"LOG_FILE"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX" env:"RATE_LIMIT_MAX"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS" env:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER" env:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER" env:"DB_USER"`
	DBName     string `yaml:"DB_NAME" env:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD" env:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT" env:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" env:"DB_HOST"`
	DBSeed     bool   `yaml:"DB_SEED" env:"DB_SEED"`

	// When set, creates referencing unknown users, nationalities or
	// categories are rejected instead of stored with dangling keys.
	StrictReferences bool `yaml:"STRICT_REFERENCES" env:"STRICT_REFERENCES"`

	JWTSecret string `yaml:"JWT_SECRET" env:"JWT_SECRET"`

	StorageDriver string `yaml:"STORAGE_DRIVER" env:"STORAGE_DRIVER"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" env:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" env:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" env:"AWS_SECRET_KEY"`

	// MinIO configuration
	MinioEndpoint  string `yaml:"MINIO_ENDPOINT" env:"MINIO_ENDPOINT"`
	MinioAccessKey string `yaml:"MINIO_ACCESS_KEY" env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `yaml:"MINIO_SECRET_KEY" env:"MINIO_SECRET_KEY"`
	MinioBucket    string `yaml:"MINIO_BUCKET" env:"MINIO_BUCKET"`
	MinioUseSSL    bool   `yaml:"MINIO_USE_SSL" env:"MINIO_USE_SSL"`
}

func DefaultConfig() Config {
	return Config{
		AppPort:          "8080",
		AppURL:           "http://localhost:8080",
		LogLevel:         "info",
		LogFile:          "./logs/app.log",
		RateLimitMax:     10,
		CORSAllowOrigins: "*",
		DBDriver:         DriverMemory,
		DBPort:           "5432",
		DBHost:           "localhost",
		DBSeed:           true,
		JWTSecret:        "devsecret",
		StorageDriver:    StorageNone,
		MinioEndpoint:    "localhost:9000",
		MinioBucket:      "gcs-food-images",
	}
}

// LoadConfig applies defaults, then the YAML file at path (a missing file is
// not an error), then the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverMemory, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.StorageDriver {
	case StorageNone, StorageS3, StorageMinio:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.RateLimitMax < 0 {
		return errors.New("RATE_LIMIT_MAX must not be negative")
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
	)
}
