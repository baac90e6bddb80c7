package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/snippets"
)

var snippetsCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Manage the saved expression library",
}

var snippetsSaveCmd = &cobra.Command{
	Use:   "save <name> <expression>",
	Short: "Save (or overwrite) a named expression",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")
		return withStore(func(ctx context.Context, store *snippets.Store) error {
			id, err := store.Save(ctx, args[0], args[1], desc)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved %q (%s)\n", args[0], id)
			return nil
		})
	},
}

var snippetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved expressions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *snippets.Store) error {
			all, err := store.List(ctx)
			if err != nil {
				return err
			}
			for _, sn := range all {
				fmt.Fprintf(os.Stdout, "%s\t%s\n", sn.Name, sn.Code)
			}
			return nil
		})
	},
}

var snippetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one saved expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *snippets.Store) error {
			sn, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, sn.Code)
			if sn.Description != "" {
				fmt.Fprintln(os.Stderr, sn.Description)
			}
			return nil
		})
	},
}

var snippetsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved expression",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *snippets.Store) error {
			return store.Delete(ctx, args[0])
		})
	},
}

func init() {
	snippetsSaveCmd.Flags().String("description", "", "optional description")
	snippetsCmd.AddCommand(snippetsSaveCmd, snippetsListCmd, snippetsShowCmd, snippetsRmCmd)
	rootCmd.AddCommand(snippetsCmd)
}

// withStore opens the configured snippet database, runs fn, and closes it.
func withStore(fn func(context.Context, *snippets.Store) error) error {
	cfg := config.Load()
	ctx := context.Background()
	if dir := filepath.Dir(cfg.SnippetDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snippet directory: %w", err)
		}
	}
	store, err := snippets.Open(ctx, cfg.SnippetDB)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(ctx, store)
}
