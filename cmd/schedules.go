package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/frontend"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Print the registered schedules, curves, and example templates",
	Long: `Emit the frontend configuration snapshot as JSON: metadata for every
registered schedule kind, the curve catalogue, and example expressions.
Editors consume this to offer completion and curve previews.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		reg, err := buildRegistry(cfg)
		if err != nil {
			return err
		}
		out, err := frontend.Build(reg).MarshalIndent()
		if err != nil {
			return fmt.Errorf("encoding snapshot: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
}
