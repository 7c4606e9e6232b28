package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/internal/providers/llm"
	"github.com/sandevgo/suppd/internal/providers/mem0"
	"github.com/sandevgo/suppd/internal/service/agent"
	"github.com/sandevgo/suppd/internal/service/loader"
	"github.com/sandevgo/suppd/pkg/log"
)

// App holds the wired application graph, constructed once at process
// start and passed by handle to every command and request handler.
type App struct {
	Cfg   *config.AppConfig
	Agent *agent.Agent
	KB    *loader.Loader

	store     *mem0.Client
	completer *llm.OpenAI
}

// Close releases the backend client connection pools.
func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		return err
	}
	return a.completer.Close()
}

func newApp(ctx context.Context) *App {
	initEnv(ctx)

	appCfg := config.NewAppConfig(ctx)
	openaiCfg := config.NewOpenAIConfig(ctx)
	mem0Cfg := config.NewMem0Config(ctx)

	store := mem0.NewClient(mem0Cfg)
	completer := llm.NewOpenAI(openaiCfg)
	kb := loader.New(store)

	ag := agent.New(
		appCfg,
		store,
		kb,
		completer,
		agent.NewTokenCounter(openaiCfg.Model),
	)

	return &App{
		Cfg:       appCfg,
		Agent:     ag,
		KB:        kb,
		store:     store,
		completer: completer,
	}
}

func initEnv(ctx context.Context) {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(".env"); err != nil {
		return
	}

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Err(err).Msg("failed to load .env file")
		return
	}
	logger.Debug().Msg("loaded .env file")
}
