package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr    string
	AllowedOrigin string
	SendBuffer    int
	RecorderQueue int

	LogLevel  string
	LogFormat string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MongoURI      string
	MongoDatabase string
}

// LoadEnvFile loads .env if there is one. A missing file is not an error.
func LoadEnvFile() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		SendBuffer:    getEnvInt("SEND_BUFFER", 256),
		RecorderQueue: getEnvInt("RECORDER_QUEUE", 64),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		DBHost:        getEnv("DB_HOST", ""),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "user"),
		DBPassword:    getSecret("DB_PASSWORD", "password"),
		DBName:        getEnv("DB_NAME", "cheesechase"),
		MongoURI:      getSecret("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "cheesechase"),
	}
}

// PostgresEnabled is false when no DB_HOST is configured.
func (c *Config) PostgresEnabled() bool { return c.DBHost != "" }

func (c *Config) MongoEnabled() bool { return c.MongoURI != "" }

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(c.LogLevel)}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// getEnv reads an environment variable and returns its value or a default value
func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		slog.Info("environment variable not set, using default", "key", key, "default", defaultValue)
		return defaultValue
	}
	return value
}

// getSecret is getEnv without echoing the default.
func getSecret(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		slog.Info("environment variable not set, using default", "key", key)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return value
}
