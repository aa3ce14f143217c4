package config

import "time"

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// CleanerConfig controls pruning of finished schedule rows.
// RetentionDays == 0 disables the cleaner.
type CleanerConfig struct {
	RetentionDays int `mapstructure:"retention_days"`
}
