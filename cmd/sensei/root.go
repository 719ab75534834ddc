package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/sensei/internal/config"
	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/ui"
	"github.com/sandevgo/sensei/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:     "sensei",
	Short:   "Sensei, a portfolio assistant",
	Long:    `Sensei answers visitor questions about a portfolio owner from the site's own documents.`,
	Version: core.AgentVersion,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	CustomizeHelp(rootCmd)
}

// setupLogger loads <runtime>/.env first so LOG_FORMAT and SENSEI_DEBUG may live there.
func setupLogger(ctx context.Context, out io.Writer) (context.Context, func()) {
	envPath, envErr := initEnv(config.GetRuntimePath())

	ctx, flush := log.NewContextWithLogger(ctx, log.Options{
		Debug: debug || config.IsDebug(),
		JSON:  config.IsJSONLog(),
		Out:   out,
	})

	logger := log.FromCtx(ctx)
	switch {
	case envErr != nil:
		logger.Warn().Err(envErr).Str("path", envPath).Msg("failed to load .env file")
	case envPath != "":
		logger.Debug().Str("path", envPath).Msg("loaded .env file")
	}
	return ctx, flush
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces | StyleFlag}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
