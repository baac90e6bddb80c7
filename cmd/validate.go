package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <expression>",
	Short: "Lint bracket structure and check the expression parses",
	Long: `Run the bracket validator and the parser over an expression and report
findings with line and column positions. Exits non-zero if the expression
is structurally or syntactically invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	expr := args[0]
	ok := true

	if findings := validator.Check(expr); len(findings) > 0 {
		ok = false
		for _, f := range findings {
			fmt.Fprintf(os.Stderr, "✗ %s at %d:%d: %s\n", f.Kind, f.Line, f.Col, f.Message)
		}
	} else {
		fmt.Fprintln(os.Stderr, "✓ brackets balanced")
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	p := &parser.Parser{Schedules: reg, MaxDepth: cfg.MaxDepth}
	if _, err := p.Parse(expr); err != nil {
		ok = false
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
	} else {
		fmt.Fprintln(os.Stderr, "✓ expression parses")
	}

	if !ok {
		os.Exit(1)
	}
	return nil
}
