package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the schedule pack and re-register kinds on change",
	Long: `Watch the configured schedules.toml and re-apply it to the registry on
every change (last write wins). Intended for tuning schedule packs while a
preview of the registry is open elsewhere.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cfg.SchedulePack == "" {
		return fmt.Errorf("no schedule pack configured; set schedule_pack in .tensormath.yaml")
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "registered kinds: %v\n", reg.Names())

	watcher, err := config.NewPackWatcher(cfg.SchedulePack)
	if err != nil {
		return err
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	fmt.Fprintf(os.Stderr, "watching %s\n", cfg.SchedulePack)
	for {
		select {
		case change := <-watcher.Changes:
			if change.Err != nil {
				fmt.Fprintf(os.Stderr, "✗ %v (keeping previous registrations)\n", change.Err)
				continue
			}
			change.Pack.Apply(reg)
			fmt.Fprintf(os.Stderr, "✓ reloaded, registered kinds: %v\n", reg.Names())
		case <-sig:
			return nil
		}
	}
}
