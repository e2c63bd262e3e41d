package config

import (
	"os"
	"strconv"

	"print-order-server/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort    string
	Environment   string
	DataPath      string
	UploadPath    string
	StaticPath    string
	MaxUploadSize int64
	LogLevel      string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Many PaaS environments provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:    getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		Environment:   getEnvOrDefault("ENVIRONMENT", "development"),
		DataPath:      getEnvOrDefault("DATA_PATH", "./data"),
		UploadPath:    getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		StaticPath:    getEnvOrDefault("STATIC_PATH", "./client/dist"),
		MaxUploadSize: getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 50*1024*1024), // 50MB default
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "your-secret-key-change-in-production"),
		// The admin credential is a single fixed pair. The defaults mirror
		// the dashboard's built-in login; override via env if needed.
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "printshop123"),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetEnvironment returns "development" or "production"
func (c *AppConfig) GetEnvironment() string {
	return c.Environment
}

// GetDataPath returns the directory holding orders.json and files.json
func (c *AppConfig) GetDataPath() string {
	return c.DataPath
}

// GetUploadPath returns the blob directory path
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetStaticPath returns the built client assets directory
func (c *AppConfig) GetStaticPath() string {
	return c.StaticPath
}

// GetMaxUploadSize returns the maximum allowed upload request body size
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetJWTSecret returns the token signing secret
func (c *AppConfig) GetJWTSecret() string {
	return c.JWTSecret
}

// GetAdminUsername returns the fixed admin username
func (c *AppConfig) GetAdminUsername() string {
	return c.AdminUsername
}

// GetAdminPassword returns the fixed admin password
func (c *AppConfig) GetAdminPassword() string {
	return c.AdminPassword
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
