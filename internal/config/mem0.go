package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/suppd/pkg/log"
)

type Mem0Config struct {
	BaseURL string `env:"MEM0_BASE_URL" envDefault:"http://localhost:8888"`
	// APIKey is only needed against the hosted platform; a self-hosted
	// server usually runs without one.
	APIKey  string        `env:"MEM0_API_KEY"`
	Timeout time.Duration `env:"MEM0_TIMEOUT" envDefault:"15s"`
}

func NewMem0Config(ctx context.Context) *Mem0Config {
	c := &Mem0Config{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Mem0 config")
	}
	return c
}
