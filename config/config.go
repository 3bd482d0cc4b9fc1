package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the process reads at startup. All fields
// have working defaults; a config file only needs the keys it wants to
// override.
type Config struct {
	Board      Board `mapstructure:"board"`
	TickMillis int   `mapstructure:"tick_millis"`
	Log        Log   `mapstructure:"log"`
}

// Board sets the dimensions used when no encoded board string is given
// on the command line.
type Board struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`        // empty: console only
	MaxSize    int    `mapstructure:"max_size"`    // MB per rotated file
	MaxBackups int    `mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // days rotated files kept
	Compress   bool   `mapstructure:"compress"`
}

// Load reads the config file at path, or returns the defaults when
// path is empty. The file format follows the extension (yaml, toml,
// json — anything viper reads).
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("board.width", 20)
	v.SetDefault("board.height", 10)
	v.SetDefault("tick_millis", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
