package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds lifheader settings from the config file, environment and flags
type Config struct {
	OutputFormat string `mapstructure:"output_format"`
	Timestamp    string `mapstructure:"timestamp"`
	DefaultType  string `mapstructure:"default_type"`
	BufferSize   int    `mapstructure:"buffer_size"`
	Verbose      bool   `mapstructure:"verbose"`
	Quiet        bool   `mapstructure:"quiet"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output_format", "table")
	v.SetDefault("timestamp", "mtime")
	v.SetDefault("default_type", "")
	v.SetDefault("buffer_size", 256)
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
}

// LoadConfig loads configuration into v and unmarshals it. configFile, when
// set, replaces the search path and must exist.
func LoadConfig(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("lifheader")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.lifheader")
		v.AddConfigPath("/etc/lifheader")
	}

	SetDefaults(v)

	// Allow environment variables
	v.SetEnvPrefix("LIFHEADER")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}
