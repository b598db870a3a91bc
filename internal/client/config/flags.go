package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/assessvault/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-d string   path of the local database file
//	-l string   log level
//	-m int      message display duration (seconds)
//
// Only these flags are considered; the rest of args is left to other parsers.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	messageDuration := fs.Int("m", int(cfg.MessageDuration.Seconds()), "message display duration (in seconds)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.MessageDuration = time.Duration(*messageDuration) * time.Second
	return nil
}
