// Package config loads headtags CLI settings from a .headtags.yaml file,
// HEADTAGS_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-headtags/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. HEADTAGS_BASE_URL.
const EnvPrefix = "HEADTAGS"

// Keys understood by the CLI.
const (
	KeyDir       = "dir"
	KeyPattern   = "pattern"
	KeyRenderer  = "renderer"
	KeyBaseURL   = "base_url"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Config holds resolved CLI settings.
type Config struct {
	Dir       string `mapstructure:"dir"`
	Pattern   string `mapstructure:"pattern"`
	Renderer  string `mapstructure:"renderer"`
	BaseURL   string `mapstructure:"base_url"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// NewViper returns a viper instance with defaults and environment binding
// applied. Keys must have a default for AutomaticEnv to reach Unmarshal.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyPattern, "")
	v.SetDefault(KeyRenderer, "html")
	v.SetDefault(KeyBaseURL, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configFile when given, or looks for .headtags.yaml in searchDir.
// A missing default file is not an error; a missing explicit file is.
func Load(v *viper.Viper, configFile, searchDir string) (Config, error) {
	if v == nil {
		v = NewViper()
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if searchDir == "" {
			searchDir = "."
		}
		v.AddConfigPath(searchDir)
		v.SetConfigName(".headtags")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the CLI cannot act on.
func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New("config: dir is required")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}

func (c *Config) normalize() {
	c.Dir = strings.TrimSpace(c.Dir)
	c.Pattern = strings.TrimSpace(c.Pattern)
	c.Renderer = strings.ToLower(strings.TrimSpace(c.Renderer))
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}
