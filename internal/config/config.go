package config

import (
	"os"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port    string
	APIPort string
	Env     string

	LogLevel string

	// Text generation provider
	GeminiAPIKey      string
	GeminiModelID     string
	GenerationTimeout time.Duration

	// Remote submission of finalized appointments
	SubmitBaseURL  string
	SubmitTimeout  time.Duration
	AppointmentCSV string

	// Session store selection
	SessionStore  string // "memory" or "redis"
	SessionTTL    time.Duration
	RedisAddr     string
	RedisPassword string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		APIPort: getEnv("API_PORT", "8000"),
		Env:     getEnv("ENV", "development"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:     getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", 10*time.Second),

		SubmitBaseURL:  getEnv("POC_API_URL", "http://localhost:8000/api/appointments"),
		SubmitTimeout:  getEnvAsDuration("SUBMIT_TIMEOUT", 5*time.Second),
		AppointmentCSV: getEnv("APPOINTMENT_CSV", "appointments.csv"),

		SessionStore:  getEnv("SESSION_STORE", "memory"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		CORSAllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
