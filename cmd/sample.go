package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/eval"
	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

var sampleCmd = &cobra.Command{
	Use:   "sample <expression>",
	Short: "Sample schedule weights across the timeline",
	Long: `Evaluate an expression and print each schedule binding's weight at a
series of timeline positions. With --total-steps the positions are raw
sampler steps converted through step-based normalization; otherwise they
are normalized [0,1] positions.`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().Int("points", 11, "number of sample points")
	sampleCmd.Flags().Int("total-steps", 0, "interpret positions as sampler steps out of this total")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	p := &parser.Parser{Schedules: reg, MaxDepth: cfg.MaxDepth}
	ast, err := p.Parse(args[0])
	if err != nil {
		return err
	}

	// Sampling only needs the bindings; resolve every token to a pad so
	// no token library is required.
	ev := eval.New(nil, reg)
	ev.Pad = padFrom(config.Config{PadEnabled: true, PadDim: 1})
	result, err := ev.Evaluate(ast)
	if err != nil {
		return err
	}
	if len(result.Schedules) == 0 {
		fmt.Fprintln(os.Stderr, "expression has no schedules")
		return nil
	}

	points, _ := cmd.Flags().GetInt("points")
	if points < 2 {
		points = 2
	}
	totalSteps, _ := cmd.Flags().GetInt("total-steps")

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "position\t")
	for _, b := range result.Schedules {
		fmt.Fprintf(w, "%s/%s\t", b.Token, b.Direction)
	}
	fmt.Fprintln(w)

	for i := 0; i < points; i++ {
		tau := float64(i) / float64(points-1)
		label := fmt.Sprintf("%.2f", tau)
		if totalSteps > 0 {
			step := tau * float64(totalSteps)
			tl := schedule.Timeline{Mode: schedule.StepBased, TotalSteps: totalSteps}
			tau, err = tl.Normalize(step)
			if err != nil {
				return err
			}
			label = fmt.Sprintf("%d/%d", int(step), totalSteps)
		}
		fmt.Fprintf(w, "%s\t", label)
		for _, b := range result.Schedules {
			fmt.Fprintf(w, "%.4f\t", b.WeightAt(tau))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
