package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

//go:embed defaults/wordle.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Words: WordsConfig{
			Path:        "",
			Total:       words.DefaultTotal,
			AnswerIndex: words.DefaultAnswerIndex,
		},
		Server: ServerConfig{
			Address:     ":23235",
			HostKey:     "",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
