package config

import (
	"path/filepath"

	"github.com/alecthomas/kong"
)

// DefaultConfigPath is read when present; a missing file is not an error.
const DefaultConfigPath = "~/.config/wellness/config.json"

// Config is embedded into the CLI grammar, so every field is a global flag.
type Config struct {
	ConfigFile kong.ConfigFlag `name:"config" short:"c" help:"JSON config file."`

	Server   string `short:"a" default:"127.0.0.1:50051" env:"WELLNESS_SERVER" help:"Address of the wellness server."`
	DataDir  string `type:"path" default:"~/.wellness" env:"WELLNESS_DATA_DIR" help:"Directory for the session cache and logs."`
	LogFile  string `type:"path" env:"WELLNESS_LOG_FILE" help:"Log file (default: <data-dir>/wellness.log)."`
	TimeZone string `name:"time-zone" env:"WELLNESS_TIME_ZONE" help:"IANA time zone that decides what \"today\" is (default: the server's)."`
	Debug    bool   `env:"WELLNESS_DEBUG" help:"Verbose logging, mirrored to stderr."`
}

// Options returns the kong options that wire the JSON config loader.
func Options() []kong.Option {
	return []kong.Option{kong.Configuration(kong.JSON, DefaultConfigPath)}
}

// LogPath is LogFile, or wellness.log inside DataDir when unset.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "wellness.log")
}
