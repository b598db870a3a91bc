package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/assessvault/internal/flagx"
	"github.com/dmitrijs2005/assessvault/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Omitted fields keep
// their current value.
type JsonConfig struct {
	DatabasePath    string          `json:"database_path"`
	LogLevel        string          `json:"log_level"`
	MessageDuration *timex.Duration `json:"message_duration"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.MessageDuration != nil {
		cfg.MessageDuration = jc.MessageDuration.Duration
	}
	return nil
}
