package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Completion CompletionConfig `mapstructure:"completion"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects the word store. Driver "memory" keeps words in
// process memory and ignores DSN.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite3 mysql memory"`
	DSN    string `mapstructure:"dsn" validate:"required_unless=Driver memory"`
}

// CompletionConfig selects and configures the chat-completion provider.
// An empty APIKey is allowed: every generation then falls back to placeholder text.
type CompletionConfig struct {
	Provider  string        `mapstructure:"provider" validate:"required,oneof=openai anthropic"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model" validate:"required"`
	BaseURL   string        `mapstructure:"base_url" validate:"omitempty,url"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	MaxTokens int64         `mapstructure:"max_tokens" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

const (
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAnthropicModel = "claude-3-5-haiku-latest"
)

// Load reads configuration from an optional YAML file and the environment.
// Environment variables use the VOCAB_ prefix (VOCAB_DATABASE_DSN, ...);
// provider keys are also read from OPENAI_API_KEY and ANTHROPIC_API_KEY.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocablearn")
	}

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 90*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "vocablearn.db")
	v.SetDefault("completion.provider", "openai")
	v.SetDefault("completion.model", "")
	v.SetDefault("completion.base_url", "")
	v.SetDefault("completion.timeout", 30*time.Second)
	v.SetDefault("completion.max_tokens", 512)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("VOCAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("completion.api_key", "VOCAB_COMPLETION_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind completion API key environment variables: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if cfg.Completion.Model == "" {
		cfg.Completion.Model = defaultModel(cfg.Completion.Provider)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaultModel(provider string) string {
	if provider == "anthropic" {
		return DefaultAnthropicModel
	}
	return DefaultOpenAIModel
}
