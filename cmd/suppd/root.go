package main

import (
	"context"
	"os"

	"github.com/sandevgo/suppd/internal/config"
	"github.com/sandevgo/suppd/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "suppd",
	Short: "suppd, a customer support chatbot service",
	Long:  `suppd is a customer support chatbot backed by a hosted LLM and an external memory service.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
