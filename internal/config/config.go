package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Everything has a
// development-friendly default; nothing is required.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// BaseURL is the externally visible base URL, used to build share links.
	BaseURL string
	// Env is "development" or "production". Development enables live reload.
	Env string
	// SessionSecret signs the session cookie.
	SessionSecret string
	// UploadDir is where profile images are stored on disk.
	UploadDir string
	// UploadDelay simulates upload-pipeline latency.
	UploadDelay time.Duration
	// VerifyDelay simulates social link verification latency.
	VerifyDelay time.Duration
}

// New loads configuration from environment variables, reading a .env file
// first if one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		Addr:          getEnv("APP_ADDR", ":8080"),
		BaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		Env:           getEnv("APP_ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-insecure-secret"),
		UploadDir:     getEnv("UPLOAD_DIR", "data/uploads"),
		UploadDelay:   getDuration("UPLOAD_DELAY", 1500*time.Millisecond),
		VerifyDelay:   getDuration("VERIFY_DELAY", time.Second),
	}
}

// IsDevelopment reports whether the app runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
