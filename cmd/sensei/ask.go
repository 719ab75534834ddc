package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/internal/service/ui"
	"github.com/spf13/cobra"
)

var (
	askName     string
	askLanguage string
)

var askCmd = &cobra.Command{
	Use:          "ask <question>",
	Short:        "Ask a single question and print the reply",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		resp, err := rt.chat.Reply(ctx, core.ChatRequest{
			Message:  strings.Join(args, " "),
			Name:     askName,
			Language: askLanguage,
		})
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorStyle.Render(err.Error()))
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Answer(resp.Message))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askName, "name", "n", "", "visitor name")
	askCmd.Flags().StringVarP(&askLanguage, "lang", "l", "", "reply language (en, fr), detected when empty")
	rootCmd.AddCommand(askCmd)
}
