package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the assessvault CLI.
//
// Fields:
//   - DatabasePath: path of the local SQLite file holding accounts and records.
//   - LogLevel: slog level name (debug, info, warn, error).
//   - MessageDuration: default display time handed to the message notifier.
type Config struct {
	DatabasePath    string
	LogLevel        string
	MessageDuration time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "assessvault.db"
	c.LogLevel = "info"
	c.MessageDuration = 3 * time.Second
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/-config (if any), then command-line flags. Later sources win.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
