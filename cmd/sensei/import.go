package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/sensei/internal/core"
	"github.com/sandevgo/sensei/pkg/log"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Copy a directory tree into the document store",
	Long: `Every regular file under <dir> is stored under its slash-separated relative path,
so <dir>/documents.json becomes the snapshot and <dir>/docs/... the prefix objects.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context(), os.Stderr)
		defer flushLog()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		defer rt.close()

		n, err := importTree(ctx, rt.store, args[0])
		if err != nil {
			return err
		}
		log.FromCtx(ctx).Info().Int("objects", n).Str("store", rt.app.StoreDriver).Msg("import complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// importTree skips hidden files and directories.
func importTree(ctx context.Context, store core.WritableStore, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		body, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		key := filepath.ToSlash(rel)
		if err := store.Put(ctx, key, body); err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
		log.FromCtx(ctx).Debug().Str("key", key).Int("bytes", len(body)).Msg("imported object")
		count++
		return nil
	})
	return count, err
}
