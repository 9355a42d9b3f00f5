package config

import (
	"github.com/spf13/viper"
)

// ServerConfig is process-wide and fixed at startup. The presence of the
// Anthropic key decides live-vs-template mode for the process lifetime.
type ServerConfig struct {
	Port            string `mapstructure:"port"`
	AnthropicAPIKey string `mapstructure:"anthropic_api_key"`
	Model           string `mapstructure:"model"`
	MaxTokens       int    `mapstructure:"max_tokens"`
	StaticDir       string `mapstructure:"static_dir"`
}

// LoadServer reads configuration from the environment (PROMPTFORGE_ prefix)
// with an optional yaml file on top. ANTHROPIC_API_KEY and PORT are honored
// without the prefix for parity with the usual deployment environment.
func LoadServer(configFile string) (*ServerConfig, error) {
	v := viper.New()

	v.SetDefault("port", "3001")
	v.SetDefault("model", "claude-sonnet-4-5-20250514")
	v.SetDefault("max_tokens", 2000)
	v.SetDefault("static_dir", "dist")

	v.SetEnvPrefix("promptforge")
	v.AutomaticEnv()
	_ = v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("port", "PORT")

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &ServerConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
