// Package config loads runtime configuration for the assessvault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-l string   log level (debug, info, warn, error)
//	-m int      message display duration (seconds)
//
// # JSON schema
//
// message_duration accepts a duration string or integer nanoseconds:
//
//	{
//	  "database_path": "/home/me/.assessvault.db",
//	  "log_level": "debug",
//	  "message_duration": "5s"
//	}
package config
