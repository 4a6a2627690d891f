package stackreport

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config holds the logging integration settings. The backtrace verbosity
// switch is deliberately not here; it stays an environment lookup read at
// format time.
type Config struct {
	Level             string `toml:"level"`
	LogFile           string `toml:"log_file"`
	MaxSizeMB         int    `toml:"max_size_mb"`
	MaxAgeDays        int    `toml:"max_age_days"`
	Compress          bool   `toml:"compress"`
	NoColor           bool   `toml:"no_color"`
	WarnOnPlainErrors bool   `toml:"warn_on_plain_errors"`
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		LogFile:    "data/logs/app.log",
		MaxSizeMB:  100,
		MaxAgeDays: 30,
		Compress:   true,
	}
}

// LoadConfig reads a TOML config file. A missing file is not an error:
// the defaults are returned. Settings absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	return cfg, nil
}
