package main

import (
	"fmt"
	"os"

	"github.com/sandevgo/sensei/internal/config"
	"github.com/sandevgo/sensei/pkg/env"
	"github.com/spf13/cobra"
)

var showSecrets bool

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the effective configuration in .env format",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		opts := env.Options{Defaults: true, Mask: !showSecrets}
		for _, c := range []any{config.NewAppConfig(ctx), config.NewLLMConfig(ctx)} {
			out, err := env.Marshal(c, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func init() {
	envCmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print API keys and tokens in clear")
	rootCmd.AddCommand(envCmd)
}
