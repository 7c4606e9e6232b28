package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/suppd/pkg/log"
)

// OpenAIConfig carries the one required credential of the whole
// process. A missing key aborts startup.
type OpenAIConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY,required,notEmpty"`
	BaseURL     string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	Model       string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature float64       `env:"OPENAI_TEMPERATURE" envDefault:"0.1"`
	MaxTokens   int           `env:"OPENAI_MAX_TOKENS" envDefault:"2000"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT" envDefault:"30s"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
