package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Save backend selectors
const (
	SaveBackendFile     = "file"
	SaveBackendPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	AdminKey    string // shared key gating the admin surface

	SaveBackend string // "file" or "postgres"
	SavePath    string // save file location for the file backend
	SaveKey     string // storage key the state is persisted under

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	GenAIBaseURL string // generative content endpoint; empty disables remote calls
	GenAIAPIKey  string
	GenAIModel   string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		AdminKey:    getEnv("ADMIN_KEY", ""),

		SaveBackend: getEnv("SAVE_BACKEND", SaveBackendFile),
		SavePath:    getEnv("SAVE_PATH", "saves/blox_clicker.json"),
		SaveKey:     getEnv("SAVE_KEY", "bloxSim_save_v1"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "bloxclicker"),

		GenAIBaseURL: getEnv("GENAI_BASE_URL", ""),
		GenAIAPIKey:  getEnv("GENAI_API_KEY", ""),
		GenAIModel:   getEnv("GENAI_MODEL", "gemini-2.5-flash"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.SaveBackend != SaveBackendFile && cfg.SaveBackend != SaveBackendPostgres {
		return nil, fmt.Errorf("invalid SAVE_BACKEND value: %s", cfg.SaveBackend)
	}

	// Validate admin key is set; the admin surface is unrestricted behind it
	if cfg.AdminKey == "" {
		return nil, fmt.Errorf("ADMIN_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
