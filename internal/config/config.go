// Package config provides YAML-based configuration loading for the game,
// with environment overrides for deployments.
package config

import "time"

// Config contains all configuration for the game and its hosts.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Share   ShareConfig   `yaml:"share"`
	Server  ServerConfig  `yaml:"server"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	Path     string `yaml:"path"`
	TopLimit int    `yaml:"top_limit"` // Rows shown by the scores command
}

// ShareConfig defines the text offered when a game ends.
type ShareConfig struct {
	URL string `yaml:"url"` // Appended to the share text when set
}

// ServerConfig defines the SSH host.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.t2048/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
