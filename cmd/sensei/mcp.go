package main

import (
	"os"

	"github.com/sandevgo/sensei/internal/transport/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the ask_portfolio tool over MCP stdio",
	Long:  `Runs a Model Context Protocol server on stdin/stdout. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		return mcp.NewServer(rt.chat).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
