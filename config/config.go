package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment.
type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	JWTSecret    string
	JWTExpire    time.Duration
	ClientOrigin string
	Env          string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	FrontendURL        string
}

// Load reads configuration from the environment. A missing .env file is
// fine in production, where variables come from the platform.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "fitness"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpire:    getDuration("JWT_EXPIRE", 24*time.Hour),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:3000"),
		Env:          getEnv("APP_ENV", "development"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

// IsProduction reports whether the service runs in production mode.
// It controls gin's mode and whether error responses carry stack traces.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GoogleEnabled reports whether the Google OAuth login routes should be mounted.
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Println("Invalid duration for", key, "- using default:", err)
		return fallback
	}
	return d
}
