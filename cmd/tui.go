package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/snippets"
	"github.com/enigmatic-figure/TensorMath-Node/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive expression editor",
	Long: `Open a live editor with bracket linting, parse status, and sampled
weight-curve previews for every schedule in the expression. Tokens resolve
to deterministic preview vectors; use eval for real token libraries.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("snippet", "", "open a saved snippet in the editor")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	initial := ""
	if name, _ := cmd.Flags().GetString("snippet"); name != "" {
		store, err := snippets.Open(context.Background(), cfg.SnippetDB)
		if err != nil {
			return err
		}
		sn, err := store.Get(context.Background(), name)
		store.Close()
		if err != nil {
			return err
		}
		initial = sn.Code
	}

	if fi, err := os.Stderr.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		return fmt.Errorf("tensormath tui requires a TTY (terminal)")
	}
	return tui.Run(reg, cfg.MaxDepth, initial)
}
