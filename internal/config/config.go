package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Completion struct {
		Provider       string `mapstructure:"provider"` // "openai", "gemini" or "none"
		Model          string `mapstructure:"model"`
		OpenaiApiKey   string `mapstructure:"openai_api_key"`
		GoogleApiKey   string `mapstructure:"google_api_key"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"completion"`

	Categorization struct {
		// ExtraKeywords appends trigger keywords per category without
		// changing the rule priority order.
		ExtraKeywords map[string][]string `mapstructure:"extra_keywords"`
	} `mapstructure:"categorization"`

	// Templates overrides or extends the built-in response templates,
	// keyed by category label.
	Templates map[string][]string `mapstructure:"templates"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".") // Look for config.yaml in the current directory

	// Allow Viper to read environment variables; the provider API keys
	// bind to their conventional env var names so no config file is
	// needed to enable an external provider.
	viper.AutomaticEnv()
	viper.BindEnv("completion.openai_api_key", "OPENAI_API_KEY")
	viper.BindEnv("completion.google_api_key", "GEMINI_API_KEY")

	viper.SetDefault("completion.provider", "openai")
	viper.SetDefault("completion.timeout_seconds", 10)
	viper.SetDefault("server.addr", "localhost")
	viper.SetDefault("server.port", "8080")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults carry
		// the whole configuration.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
