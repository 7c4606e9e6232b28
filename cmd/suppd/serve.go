package main

import (
	"os"
	"os/signal"

	transport "github.com/sandevgo/suppd/internal/transport/http"
	"github.com/sandevgo/suppd/pkg/log"
	"github.com/sandevgo/suppd/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the support chatbot HTTP API",
	Long:  `Bootstraps the knowledge base (loading it only if empty) and serves the chat and admin endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting suppd")

		app := newApp(ctx)

		// Bootstrap the knowledge base partition. The service can still
		// answer without it, so a failed bootstrap degrades, not aborts.
		if res, err := app.KB.Initialize(ctx); err != nil {
			logger.Error().Err(err).Msg("knowledge base bootstrap failed")
		} else if res.LoadedCount > 0 {
			logger.Info().Int("loaded", res.LoadedCount).Msg("knowledge base initialized")
		}

		services := []srv.Service{
			transport.NewServer(app.Cfg.HTTPAddr, app.Agent, app.KB),
			srv.NewCleanup(app.Close),
		}

		srv.StartServices(ctx, services)
		srv.ShutdownServices(ctx, services)

		logger.Info().Msg("suppd has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
