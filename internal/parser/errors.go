package parser

import (
	"errors"
	"fmt"

	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

// ErrSyntax is the sentinel all SyntaxError values unwrap to.
var ErrSyntax = errors.New("syntax error")

// SyntaxError is a fatal structural error. It aborts the parse and carries
// the source position for inline diagnostics.
type SyntaxError struct {
	Msg string
	At  Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.At.Line, e.At.Col, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// UnknownScheduleError is raised at parse time when a schedule suffix names
// a kind absent from the registry.
type UnknownScheduleError struct {
	Name string
	At   Pos
}

func (e *UnknownScheduleError) Error() string {
	return fmt.Sprintf("unknown schedule %q at %d:%d", e.Name, e.At.Line, e.At.Col)
}

func (e *UnknownScheduleError) Unwrap() error { return schedule.ErrUnknownSchedule }
