package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvDBPath      = "T2048_DB"
	EnvTopLimit    = "T2048_TOP_LIMIT"
	EnvShareURL    = "T2048_SHARE_URL"
	EnvSSHAddr     = "T2048_SSH_ADDR"
	EnvHostKey     = "T2048_HOST_KEY"
	EnvIdleTimeout = "T2048_IDLE_TIMEOUT"
)

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// A .env file in the working directory is loaded first if present.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	// Missing .env is fine; variables already set take precedence
	_ = godotenv.Load()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/t2048.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// applyEnv overrides cfg with any T2048_* variables that are set.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		cfg.Storage.Path = v
	}
	if v, ok := os.LookupEnv(EnvTopLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvTopLimit, v, err)
		}
		cfg.Storage.TopLimit = n
	}
	if v, ok := os.LookupEnv(EnvShareURL); ok {
		cfg.Share.URL = v
	}
	if v, ok := os.LookupEnv(EnvSSHAddr); ok && v != "" {
		cfg.Server.Address = v
	}
	if v, ok := os.LookupEnv(EnvHostKey); ok && v != "" {
		cfg.Server.HostKeyPath = v
	}
	if v, ok := os.LookupEnv(EnvIdleTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvIdleTimeout, v, err)
		}
		cfg.Server.IdleTimeout = d
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
