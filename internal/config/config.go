package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Groq    GroqConfig
	Import  ImportConfig
	Logging LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
}

// GroqConfig holds Groq completion API configuration
type GroqConfig struct {
	APIKey         string
	APIBase        string
	Model          string
	MaxTokens      int
	EnhanceTokens  int
	TopP           float64
	Timeout        int // seconds, per request
	RetryAttempts  int // total attempts on HTTP 429
	BackoffSeconds int // linear backoff unit between retries
	Enabled        bool
}

// ImportConfig holds bulk import limits
type ImportConfig struct {
	MaxRows int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization,X-Api-Key"),
		},
		Groq: GroqConfig{
			APIKey:         getEnv("GROQ_API_KEY", ""),
			APIBase:        getEnv("GROQ_API_BASE", "https://api.groq.com/openai/v1"),
			Model:          getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
			MaxTokens:      getEnvAsInt("GROQ_MAX_TOKENS", 2000),
			EnhanceTokens:  getEnvAsInt("GROQ_ENHANCE_MAX_TOKENS", 1500),
			TopP:           getEnvAsFloat("GROQ_TOP_P", 0.9),
			Timeout:        getEnvAsInt("GROQ_TIMEOUT", 30),
			RetryAttempts:  getEnvAsInt("GROQ_RETRY_ATTEMPTS", 3),
			BackoffSeconds: getEnvAsInt("GROQ_BACKOFF_SECONDS", 2),
			Enabled:        getEnv("GROQ_API_KEY", "") != "",
		},
		Import: ImportConfig{
			MaxRows: getEnvAsInt("IMPORT_MAX_ROWS", 500),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}
