package app

import "os"

type Config struct {
	DatabaseFile string // Optional: path to SQLite database file (default: ./userdir.db)
	Env          string // Environment (dev, staging, prod) (default: dev)
	LogLevel     string // Log level (debug, info, warn, error) (default: info)
	LogFormat    string // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	return Config{
		DatabaseFile: getEnvOrDefault("USERDIR_DATABASE_FILE", "userdir.db"),
		Env:          getEnvOrDefault("ENV", "dev"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:    getEnvOrDefault("LOG_FORMAT", "text"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
