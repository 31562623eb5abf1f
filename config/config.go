package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	Claims   ClaimsConfig
	Export   ExportConfig
	Worker   WorkerConfig
}

// DatabaseConfig holds the session store configuration
type DatabaseConfig struct {
	Driver     string // SESSION_DB_DRIVER: "sqlite" (default) or "mysql"
	SQLitePath string // SQLITE_PATH: database file for the sqlite driver
	DSN        string // SESSION_DB_DSN - takes precedence over individual DB_* vars
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// AuthConfig holds token and password hashing settings
type AuthConfig struct {
	JWTSecret  string        // JWT_SECRET
	TokenTTL   time.Duration // TOKEN_TTL (e.g. "12h")
	BcryptCost int           // BCRYPT_COST (0 = bcrypt default)
}

// ClaimsConfig holds claim store settings
type ClaimsConfig struct {
	SeedMockClaims bool   // SEED_MOCK_CLAIMS: load demo claims on start
	CatalogFile    string // CATALOG_FILE: optional YAML lookup-table override
}

// ExportConfig holds CSV export settings
type ExportConfig struct {
	Timezone string // EXPORT_TIMEZONE: zone used to format exported dates
}

// WorkerConfig holds background worker settings
type WorkerConfig struct {
	SessionCheckInterval time.Duration // SESSION_CHECK_INTERVAL: 0 disables the session worker
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:     getEnv("SESSION_DB_DRIVER", "sqlite"),
			SQLitePath: getEnv("SQLITE_PATH", "claimdesk.db"),
			DSN:        os.Getenv("SESSION_DB_DSN"),
			Host:       getEnv("DB_HOST", "127.0.0.1"),
			Port:       getEnv("DB_PORT", "3306"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			DBName:     getEnv("DB_NAME", "claimdesk"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "claimdesk-dev-secret"),
			TokenTTL:   getEnvDuration("TOKEN_TTL", 12*time.Hour),
			BcryptCost: getEnvInt("BCRYPT_COST", 0),
		},
		Claims: ClaimsConfig{
			SeedMockClaims: getEnvBool("SEED_MOCK_CLAIMS", true),
			CatalogFile:    os.Getenv("CATALOG_FILE"),
		},
		Export: ExportConfig{
			Timezone: getEnv("EXPORT_TIMEZONE", "America/Argentina/Buenos_Aires"),
		},
		Worker: WorkerConfig{
			SessionCheckInterval: getEnvDuration("SESSION_CHECK_INTERVAL", time.Minute),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration parses a Go duration ("30s", "5m") or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
