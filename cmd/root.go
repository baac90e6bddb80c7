package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

var rootCmd = &cobra.Command{
	Use:   "tensormath",
	Short: "Prompt-math expression engine",
	Long: "TensorMath parses and evaluates prompt-math expressions: bracket-scoped\n" +
		"vector arithmetic over named embeddings with time-varying schedule envelopes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .tensormath.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".tensormath")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("TENSORMATH")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// buildRegistry constructs the schedule registry for a session: builtins
// plus the configured schedule pack, if any.
func buildRegistry(cfg config.Config) (*schedule.Registry, error) {
	reg := schedule.NewRegistry()
	if cfg.SchedulePack == "" {
		return reg, nil
	}
	pack, err := config.LoadPack(cfg.SchedulePack)
	if err != nil {
		return nil, err
	}
	pack.Apply(reg)
	return reg, nil
}
