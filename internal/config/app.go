package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/suppd/pkg/log"
)

type AppConfig struct {
	CompanyName string `env:"SUPPD_COMPANY_NAME" envDefault:"TechCorp"`
	HTTPAddr    string `env:"SUPPD_HTTP_ADDR" envDefault:":8080"`

	// Context Management
	ContextLimit       int `env:"SUPPD_CONTEXT_LIMIT" envDefault:"3"`
	ContextTokenBudget int `env:"SUPPD_CONTEXT_TOKEN_BUDGET" envDefault:"1500"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}
