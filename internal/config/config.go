// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultChatTimeout bounds a chat call when CHAT_TIMEOUT_SECONDS is unset.
	DefaultChatTimeout = 30 * time.Second
	// DefaultAnalyticsTimeout bounds an analytics call when ANALYTICS_TIMEOUT_SECONDS is unset.
	DefaultAnalyticsTimeout = 10 * time.Second
)

// Config holds all configuration for the application.
type Config struct {
	Backend  BackendConfig
	Server   ServerConfig
	Notifier NotifierConfig
	Log      LogConfig
}

// BackendConfig holds the conversational backend configuration.
type BackendConfig struct {
	URL              string
	ChatTimeout      time.Duration
	AnalyticsTimeout time.Duration
}

// ServerConfig holds configuration for the local HTTP surface.
type ServerConfig struct {
	Host           string
	Port           int
	GinMode        string
	AllowedOrigins []string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NotifierConfig holds configuration for the external append notifier.
type NotifierConfig struct {
	Type          string
	Host          string
	Port          string
	Password      string
	DB            int
	ChannelPrefix string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Backend: BackendConfig{
			URL:              strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8000"), "/"),
			ChatTimeout:      getEnvAsSeconds("CHAT_TIMEOUT_SECONDS", DefaultChatTimeout),
			AnalyticsTimeout: getEnvAsSeconds("ANALYTICS_TIMEOUT_SECONDS", DefaultAnalyticsTimeout),
		},
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "127.0.0.1"),
			Port:           getEnvAsInt("SERVER_PORT", 8090),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),
		},
		Notifier: NotifierConfig{
			Type:          getEnv("NOTIFIER_TYPE", "none"),
			Host:          getEnv("REDIS_HOST", "localhost"),
			Port:          getEnv("REDIS_PORT", "6379"),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvAsInt("REDIS_DB", 0),
			ChannelPrefix: getEnv("NOTIFIER_CHANNEL_PREFIX", "chat"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the client cannot run with.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("BACKEND_URL must not be empty")
	}
	if c.Backend.ChatTimeout <= 0 {
		return fmt.Errorf("CHAT_TIMEOUT_SECONDS must be positive")
	}
	if c.Backend.AnalyticsTimeout <= 0 {
		return fmt.Errorf("ANALYTICS_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsSeconds gets an environment variable holding whole seconds as a duration.
func getEnvAsSeconds(key string, defaultValue time.Duration) time.Duration {
	return time.Duration(getEnvAsInt(key, int(defaultValue/time.Second))) * time.Second
}

// getEnvAsList gets a comma separated environment variable as a slice.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
