package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIAPIKey     string `env:"OPENAI_API_KEY,required,notEmpty"`
	Model            string `env:"SUMMARIZER_MODEL"   envDefault:"gpt-5-mini-2025-08-07"`
	MaxSummaryTokens int64  `env:"MAX_SUMMARY_TOKENS" envDefault:"130"`
	MinSummaryTokens int64  `env:"MIN_SUMMARY_TOKENS" envDefault:"30"`
	MaxInputTokens   int    `env:"MAX_INPUT_TOKENS"   envDefault:"1024"`
	MinInputWords    int    `env:"MIN_INPUT_WORDS"    envDefault:"40"`
}

// Load reads configuration from the environment, honoring a .env file in the
// working directory if one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.MinSummaryTokens <= 0 || c.MaxSummaryTokens <= 0 {
		return fmt.Errorf("summary token bounds must be positive")
	}
	if c.MinSummaryTokens > c.MaxSummaryTokens {
		return fmt.Errorf(
			"MIN_SUMMARY_TOKENS (%d) must not exceed MAX_SUMMARY_TOKENS (%d)",
			c.MinSummaryTokens,
			c.MaxSummaryTokens,
		)
	}
	if c.MaxInputTokens <= 0 {
		return fmt.Errorf("MAX_INPUT_TOKENS must be positive")
	}
	if c.MinInputWords < 1 {
		return fmt.Errorf("MIN_INPUT_WORDS must be at least 1")
	}

	return nil
}
