/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Run configuration for Myograph. Loads analysis settings from flags,
environment (MYOGRAPH_ prefix), and an optional config file via viper, with
validation before any data is touched.
*/

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kleascm/myograph/pkg/dispatch"
	"github.com/kleascm/myograph/pkg/logging"
)

// Config holds the settings for one analysis run.
type Config struct {
	// Input
	InputPath   string `mapstructure:"input"`
	LabelColumn string `mapstructure:"label_column"`
	SplitEpochs bool   `mapstructure:"split_epochs"`
	OutputPath  string `mapstructure:"output"`

	// Analysis
	SamplingRate float64 `mapstructure:"sampling_rate"`
	Method       string  `mapstructure:"method"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	LogDir    string `mapstructure:"log_dir"`
	LogFiles  int    `mapstructure:"log_max_files"`
}

// Load reads configuration from viper: an optional config file plus
// environment variables with the MYOGRAPH prefix.
func Load() (*Config, error) {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("MYOGRAPH")
	viper.AutomaticEnv()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before a run starts.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if c.SamplingRate <= 0 {
		return fmt.Errorf("sampling rate must be positive, got %g", c.SamplingRate)
	}
	if _, err := dispatch.ParseMethod(c.Method); err != nil {
		return err
	}
	return c.LoggerConfig().Validate()
}

// LoggerConfig derives the logging configuration for this run.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	format := logging.LogFormat(c.LogFormat)
	if c.LogFormat == "" {
		format = logging.LogFormatCustom
	}
	level := logging.LogLevel(c.LogLevel)
	if c.LogLevel == "" {
		level = logging.LogLevelInfo
	}
	files := c.LogFiles
	if files == 0 {
		files = 10
	}
	return &logging.LoggerConfig{
		Level:     level,
		Format:    format,
		OutputDir: c.LogDir,
		MaxFiles:  files,
		Timestamp: true,
		Colors:    true,
	}
}
