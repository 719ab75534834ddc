package main

import (
	nethttp "net/http"
	"os"

	"github.com/sandevgo/sensei/internal/config"
	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/transport/http"
	"github.com/sandevgo/sensei/internal/transport/telegram"
	"github.com/sandevgo/sensei/pkg/log"
	"github.com/sandevgo/sensei/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat API and enabled transports",
	Long:  `Serves POST /chat and GET /health, plus /metrics and the Telegram bot when enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stdout)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Str("agent", core.AgentName).Str("version", core.AgentVersion).Msg("starting sensei")

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}

		services := []srv.Service{srv.NewCleanup(rt.close)}

		var metricsHandler nethttp.Handler
		if rt.metrics != nil {
			metricsHandler = rt.metrics.Handler()
		}
		services = append(services, http.NewServer(http.Config{
			Addr:        rt.app.HTTPAddr,
			Region:      rt.app.Region,
			ModelID:     rt.llm.Model,
			Bucket:      rt.app.Bucket,
			Prefix:      rt.app.Prefix,
			AllowOrigin: rt.app.CORSOrigin,
			Metrics:     metricsHandler,
		}, rt.chat))

		if rt.app.EnableTelegram {
			bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), rt.chat)
			if err != nil {
				_ = rt.close()
				return err
			}
			services = append(services, bot)
		}

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("sensei has been shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
