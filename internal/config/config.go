package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Deck    DeckConfig    `mapstructure:"deck" validate:"required"`
	Session SessionConfig `mapstructure:"session" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DeckConfig controls how decks are built from the dataset.
type DeckConfig struct {
	// GroupLimit is the number of leading dataset groups in a revision deck.
	GroupLimit int `mapstructure:"group_limit" validate:"required,min=1"`
	// DatasetPath replaces the embedded dataset when set.
	DatasetPath string `mapstructure:"dataset_path" validate:"omitempty,file"`
	// Seed makes shuffles reproducible; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

// SessionConfig controls the lifetime of in-memory browser sessions.
type SessionConfig struct {
	TTL           time.Duration `mapstructure:"ttl" validate:"required,gt=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"required,gt=0"`
	CookieName    string        `mapstructure:"cookie_name" validate:"required,printascii"`
}
