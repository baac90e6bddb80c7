package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enigmatic-figure/TensorMath-Node/internal/config"
	"github.com/enigmatic-figure/TensorMath-Node/internal/eval"
	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/snippets"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Parse and evaluate a prompt-math expression",
	Long: `Evaluate an expression against a token library and print the combined
tensor plus all schedule bindings as JSON. The expression comes from the
argument or, with --snippet, from the snippet library.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().String("tokens", "", "JSON file mapping token names to vectors")
	evalCmd.Flags().String("snippet", "", "evaluate a saved snippet instead of an argument")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	expr, err := exprFromArgs(cmd, args, cfg)
	if err != nil {
		return err
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	p := &parser.Parser{Schedules: reg, MaxDepth: cfg.MaxDepth}
	ast, err := p.Parse(expr)
	if err != nil {
		return err
	}

	tokensPath, _ := cmd.Flags().GetString("tokens")
	lib, err := loadTokenLibrary(tokensPath)
	if err != nil {
		return err
	}

	ev := eval.New(lookupFrom(lib), reg)
	ev.Pad = padFrom(cfg)
	result, err := ev.Evaluate(ast)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

// exprFromArgs returns the expression text from the positional argument or
// the snippet library.
func exprFromArgs(cmd *cobra.Command, args []string, cfg config.Config) (string, error) {
	name, _ := cmd.Flags().GetString("snippet")
	if name == "" {
		if len(args) == 0 {
			return "", fmt.Errorf("an expression argument or --snippet is required")
		}
		return args[0], nil
	}
	store, err := snippets.Open(context.Background(), cfg.SnippetDB)
	if err != nil {
		return "", err
	}
	defer store.Close()
	sn, err := store.Get(context.Background(), name)
	if err != nil {
		return "", err
	}
	return sn.Code, nil
}
