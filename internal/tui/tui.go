package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a bubbletea program for the editor using the
// alternate screen buffer.
func NewProgram(reg *schedule.Registry, maxDepth int, initial string, opts ...tea.ProgramOption) *Program {
	model := NewModel(reg, maxDepth, initial)
	allOpts := []tea.ProgramOption{tea.WithAltScreen()}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(model, allOpts...)
}

// Run creates and runs the editor, blocking until it exits.
func Run(reg *schedule.Registry, maxDepth int, initial string) error {
	p := NewProgram(reg, maxDepth, initial)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given
// writer. Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}
