// Package config provides configuration management for claude-clear using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/claude-clear/internal/paths"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// TargetPath is the configuration document to clean.
	// Defaults to ~/.claude.json.
	TargetPath string `mapstructure:"target_path" yaml:"target_path"`

	// LockTimeoutSeconds bounds how long a clean waits for the advisory lock.
	LockTimeoutSeconds int `mapstructure:"lock_timeout_seconds" yaml:"lock_timeout_seconds"`

	// MinCleanSizeBytes is the size below which cleaning asks for
	// confirmation; such files are usually already clean.
	MinCleanSizeBytes int64 `mapstructure:"min_clean_size_bytes" yaml:"min_clean_size_bytes"`

	Backup BackupConfig `mapstructure:"backup" yaml:"backup"`
}

// BackupConfig holds backup-related settings.
type BackupConfig struct {
	// RetentionCount is the number of backups "backup prune" keeps by default.
	RetentionCount int `mapstructure:"retention_count" yaml:"retention_count"`
}

// Defaults for configuration values.
const (
	DefaultLockTimeoutSeconds = 5
	DefaultMinCleanSizeBytes  = 100 * 1024
	DefaultRetentionCount     = 5
)

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support (CLAUDE_CLEAR_TARGET_PATH, ...)
	viper.SetEnvPrefix("CLAUDE_CLEAR")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("target_path", paths.DefaultTargetPath())
	viper.SetDefault("lock_timeout_seconds", DefaultLockTimeoutSeconds)
	viper.SetDefault("min_clean_size_bytes", DefaultMinCleanSizeBytes)
	viper.SetDefault("backup.retention_count", DefaultRetentionCount)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.TargetPath = paths.ExpandHome(cfg.TargetPath)

	return &cfg, nil
}

// Default returns the built-in configuration without consulting any file.
func Default() *Config {
	return &Config{
		Version:            1,
		TargetPath:         paths.DefaultTargetPath(),
		LockTimeoutSeconds: DefaultLockTimeoutSeconds,
		MinCleanSizeBytes:  DefaultMinCleanSizeBytes,
		Backup: BackupConfig{
			RetentionCount: DefaultRetentionCount,
		},
	}
}
