package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvToken       = "TELEGRAM_TOKEN"
	EnvOwnerID     = "OWNER_ID"
	EnvTempDir     = "TEMP_DIR"
	EnvMaxFileSize = "MAX_FILE_SIZE_MB"
)

// Default values
const (
	DefaultMaxFileSizeMB = 50 // Telegram Bot API upload cap
)

// Config holds the process-wide configuration. It is built once at
// startup and passed explicitly to the components that need it; nothing
// reads the environment after FromEnv returns.
type Config struct {
	Token       string
	OwnerID     int64
	TempDir     string
	MaxFileSize int64 // bytes
}

// FromEnv builds a Config from environment variables. TELEGRAM_TOKEN
// and OWNER_ID are required; TEMP_DIR and MAX_FILE_SIZE_MB fall back to
// the system temp directory and the Telegram 50 MB cap.
func FromEnv() (Config, error) {
	token := os.Getenv(EnvToken)
	if token == "" {
		return Config{}, fmt.Errorf("%s is not set", EnvToken)
	}

	ownerRaw := os.Getenv(EnvOwnerID)
	if ownerRaw == "" {
		return Config{}, fmt.Errorf("%s is not set", EnvOwnerID)
	}
	ownerID, err := strconv.ParseInt(ownerRaw, 10, 64)
	if err != nil || ownerID <= 0 {
		return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvOwnerID, ownerRaw)
	}

	tempDir := os.Getenv(EnvTempDir)
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	maxMB := int64(DefaultMaxFileSizeMB)
	if raw := os.Getenv(EnvMaxFileSize); raw != "" {
		maxMB, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || maxMB <= 0 {
			return Config{}, fmt.Errorf("%s must be a positive integer, got %q", EnvMaxFileSize, raw)
		}
	}

	return Config{
		Token:       token,
		OwnerID:     ownerID,
		TempDir:     tempDir,
		MaxFileSize: maxMB * 1024 * 1024,
	}, nil
}
