package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the shooter binary.
const (
	EnvDBPath   = "SHOOTER_DB"
	EnvSSHAddr  = "SHOOTER_SSH_ADDR"
	EnvHostKey  = "SHOOTER_HOST_KEY"
	EnvLogLevel = "SHOOTER_LOG_LEVEL"
)

// LoadEnv loads variables from the given .env files (default ".env").
// Missing files are not an error; variables already set in the process win.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// GetEnv returns the value of an environment variable or a default value.
func GetEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
