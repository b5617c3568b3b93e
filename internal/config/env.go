package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that provide defaults for CLI flags.
const (
	EnvDB       = "COLORSWITCH_DB"
	EnvConfig   = "COLORSWITCH_CONFIG"
	EnvSeed     = "COLORSWITCH_SEED"
	EnvLogLevel = "COLORSWITCH_LOG_LEVEL"
)

// LoadEnv reads KEY=VALUE pairs from the given .env files (default ".env")
// into the process environment. Missing files are ignored; variables that
// are already set win over file values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: failed to load %s: %w", f, err)
		}
	}
	return nil
}

// EnvString returns the variable's value, or def when it is unset or empty.
func EnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvInt64 returns the variable parsed as an integer, or def when it is unset.
func EnvInt64(key string, def int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def, fmt.Errorf("config: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}
