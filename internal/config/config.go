// Package config provides YAML-based configuration loading for the game:
// where the word list comes from and how the SSH server listens.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for the game and server.
type Config struct {
	Words  WordsConfig  `yaml:"words"`
	Server ServerConfig `yaml:"server"`
}

// WordsConfig describes the word list source.
// Total and AnswerIndex are fixed properties of the list, not discovered at runtime.
type WordsConfig struct {
	Path        string `yaml:"path"`         // Empty means the embedded list
	Total       int    `yaml:"total"`        // Number of words to read
	AnswerIndex int    `yaml:"answer_index"` // First word eligible as a secret
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`     // Empty means ~/.wordle/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"` // e.g. "30m"
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Validate checks the word list constants.
func (c Config) Validate() error {
	if c.Words.Total <= 0 {
		return fmt.Errorf("%w: words.total must be positive, got %d", ErrInvalid, c.Words.Total)
	}
	if c.Words.AnswerIndex < 0 || c.Words.AnswerIndex >= c.Words.Total {
		return fmt.Errorf("%w: words.answer_index %d not in [0,%d)", ErrInvalid, c.Words.AnswerIndex, c.Words.Total)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalid)
	}
	return nil
}
