// Package parser builds the prompt-math AST: a bracket-scoped arithmetic
// expression over token references, with schedule calls attached to the
// primaries they modify. The whole expression must be wrapped once in
// double brackets; single brackets name tokens.
package parser

import (
	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

// Pos is a source position. Offset is a byte offset; Line and Col are 1-based.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// Node is one AST node. The variant set is closed: Literal, TokenRef,
// BinaryOp, Grouping, FunctionCall, ScheduleAttachment.
type Node interface {
	Pos() Pos
	node()
}

// Literal is a numeric constant.
type Literal struct {
	Value float64
	At    Pos
}

// TokenRef references an externally supplied vector by name. Names come
// from single-bracket forms and may contain spaces.
type TokenRef struct {
	Name string
	At   Pos
}

// BinaryOp combines two sub-expressions with +, - or *.
type BinaryOp struct {
	Op          string // "+", "-" or "*"
	Left, Right Node
	At          Pos
}

// Grouping is an explicit parenthesization used to override precedence.
type Grouping struct {
	Inner Node
	At    Pos
}

// FunctionCall invokes a named blend/aggregate function with full
// sub-expressions as arguments. Name resolution is deferred to evaluation.
type FunctionCall struct {
	Name string
	Args []Node
	At   Pos
}

// ScheduleAttachment wraps the smallest preceding primary expression with a
// schedule call. For tensor combination it evaluates as its base; the
// schedule itself is emitted as a binding by the evaluator.
type ScheduleAttachment struct {
	Base     Node
	Schedule string
	Args     []schedule.Arg
	At       Pos
}

func (n *Literal) Pos() Pos            { return n.At }
func (n *TokenRef) Pos() Pos           { return n.At }
func (n *BinaryOp) Pos() Pos           { return n.At }
func (n *Grouping) Pos() Pos           { return n.At }
func (n *FunctionCall) Pos() Pos       { return n.At }
func (n *ScheduleAttachment) Pos() Pos { return n.At }

func (*Literal) node()            {}
func (*TokenRef) node()           {}
func (*BinaryOp) node()           {}
func (*Grouping) node()           {}
func (*FunctionCall) node()       {}
func (*ScheduleAttachment) node() {}
