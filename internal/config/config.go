package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the gateway
type Config struct {
	AppMode  string
	Port     string
	Database DatabaseConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Cookie   CookieConfig
	Metrics  MetricsConfig
}

// DatabaseConfig holds the session database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// UpstreamConfig holds the EMS API configuration
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// SessionConfig holds session lifetime and sealing configuration
type SessionConfig struct {
	Secret         string // sealing key for tokens at rest
	IdleMinutes    int    // sliding expiry
	AbsoluteHours  int    // hard expiry, regardless of activity
	RevalidateCron string // cron spec for silent token revalidation
	SweepCron      string // cron spec for expired-session cleanup
}

// CookieConfig holds session cookie configuration
type CookieConfig struct {
	Name     string
	Secure   bool
	SameSite string
	Domain   string
}

// MetricsConfig holds the metrics listener configuration
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// Global config instance
var AppConfig *Config

// Load reads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Get APP_MODE (default to "dev") - trim spaces for Windows compatibility
	appMode := strings.TrimSpace(getEnv("APP_MODE", "dev"))
	if appMode != "dev" && appMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", appMode)
	}

	config := &Config{
		AppMode:  appMode,
		Port:     getEnv("PORT", "3000"),
		Database: loadDatabaseConfig(appMode),
		Upstream: loadUpstreamConfig(appMode),
		Session:  loadSessionConfig(appMode),
		Cookie:   loadCookieConfig(appMode),
		Metrics:  loadMetricsConfig(),
	}

	if config.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("EMS_API_URL is required")
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s]", appMode)
	return config, nil
}

// loadDatabaseConfig loads session database config based on mode
func loadDatabaseConfig(mode string) DatabaseConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	return DatabaseConfig{
		Host:     getEnv(prefix+"DB_HOST", "localhost"),
		Port:     getEnv(prefix+"DB_PORT", "3306"),
		User:     getEnv(prefix+"DB_USER", "root"),
		Password: getEnv(prefix+"DB_PASS", ""),
		DBName:   getEnv(prefix+"DB_NAME", "ems_gateway"),
	}
}

// loadUpstreamConfig loads the EMS API config based on mode
func loadUpstreamConfig(mode string) UpstreamConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	timeout, _ := strconv.Atoi(getEnv("EMS_API_TIMEOUT_SECONDS", "15"))

	defaultURL := ""
	if mode == "dev" {
		defaultURL = "http://localhost:8080"
	}

	return UpstreamConfig{
		BaseURL:        strings.TrimRight(getEnv(prefix+"EMS_API_URL", getEnv("EMS_API_URL", defaultURL)), "/"),
		TimeoutSeconds: timeout,
	}
}

// loadSessionConfig loads session config based on mode
func loadSessionConfig(mode string) SessionConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	idleMins, _ := strconv.Atoi(getEnv("SESSION_IDLE_MINUTES", "60"))
	absoluteHours, _ := strconv.Atoi(getEnv("SESSION_ABSOLUTE_HOURS", "12"))

	return SessionConfig{
		Secret:         getEnv(prefix+"SESSION_SECRET", "default_session_secret"),
		IdleMinutes:    idleMins,
		AbsoluteHours:  absoluteHours,
		RevalidateCron: getEnv("SESSION_REVALIDATE_CRON", "@every 10m"),
		SweepCron:      getEnv("SESSION_SWEEP_CRON", "@every 5m"),
	}
}

// loadCookieConfig loads cookie config based on mode
func loadCookieConfig(mode string) CookieConfig {
	prefix := "DEV_"
	if mode == "prod" {
		prefix = "PROD_"
	}

	secure, _ := strconv.ParseBool(getEnv(prefix+"COOKIE_SECURE", "false"))

	return CookieConfig{
		Name:     getEnv("COOKIE_NAME", "ems_session"),
		Secure:   secure,
		SameSite: getEnv("COOKIE_SAMESITE", "lax"),
		Domain:   getEnv("COOKIE_DOMAIN", ""),
	}
}

// loadMetricsConfig loads the metrics listener config
func loadMetricsConfig() MetricsConfig {
	enabled, _ := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	return MetricsConfig{
		Enabled: enabled,
		Addr:    getEnv("METRICS_ADDR", ":9100"),
	}
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	origins := getEnv("ALLOWED_ORIGINS", "")
	if origins == "" {
		if c.IsDev() {
			return "*"
		}
		return "https://ems.example.com"
	}
	return origins
}
