package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL        string
	RedisURL           string
	FrontendURL        string  // Frontend base URL (login screen, QR code target)
	JWTSecret          string  // Secret key for session token signing
	JWTTTL             int     // Session token expiration time in hours
	SuperuserName      string  // The single identity allowed to view all rows; empty disables the superuser view
	Port               string  // HTTP listen port
	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int     // Burst size for auth endpoints
}

// ReminderConfig holds the configuration for the standalone reminder job.
// Every field without a default is required; the job refuses to start without it.
type ReminderConfig struct {
	DatabaseURL    string
	MailAPIURL     string // Mail provider send endpoint base URL
	MailPublicKey  string
	MailPrivateKey string
	SenderEmail    string
	SenderName     string
	AppLink        string // Link placed in the reminder email body
	SendIntervalMS int    // Fixed delay between sends, respects the provider rate limit
}

// Load reads the web server configuration. Missing connection secrets are fatal:
// the process refuses to start rather than degrading.
func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 24),
		SuperuserName:      getEnv("SUPERUSER_NAME", ""),
		Port:               getEnv("PORT", "8080"),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

// LoadReminder reads the reminder job configuration from environment variables.
// All required variables must be present or the process exits with code 1.
func LoadReminder() *ReminderConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &ReminderConfig{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MailAPIURL:     getEnv("MAIL_API_URL", "https://api.mailjet.com"),
		MailPublicKey:  getEnv("MAIL_PUBLIC_KEY", ""),
		MailPrivateKey: getEnv("MAIL_PRIVATE_KEY", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", ""),
		SenderName:     getEnv("SENDER_NAME", "The Gratitude App"),
		AppLink:        getEnv("APP_LINK", "http://localhost:3000"),
		SendIntervalMS: getEnvInt("SEND_INTERVAL_MS", 500),
	}

	required := []struct {
		name  string
		value string
	}{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"MAIL_PUBLIC_KEY", cfg.MailPublicKey},
		{"MAIL_PRIVATE_KEY", cfg.MailPrivateKey},
		{"SENDER_EMAIL", cfg.SenderEmail},
	}
	for _, req := range required {
		if req.value == "" {
			log.Fatalf("FATAL: %s environment variable not set", req.name)
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
