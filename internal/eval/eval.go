// Package eval walks a parsed prompt-math AST, resolves token references
// to vectors through an injected lookup, applies arithmetic combinators,
// and collects the schedule bindings attached along the way. The tensor
// value of a scheduled sub-expression is its base value unmodified;
// applying time weights is the renderer's job, using the emitted bindings.
package eval

import (
	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
	"github.com/enigmatic-figure/TensorMath-Node/internal/vector"
)

// Lookup resolves a token name to its vector. The second return reports
// whether the name resolved; the evaluator never guesses on a miss.
type Lookup func(name string) (vector.Vector, bool)

// Result is the outcome of one evaluation. Schedules appear in
// left-to-right source order and is never nil.
type Result struct {
	Tensor    vector.Vector      `json:"tensor"`
	Schedules []schedule.Binding `json:"schedules"`
}

// Evaluator evaluates ASTs against a token lookup and a schedule registry.
// All per-call state is local: an Evaluator is safe to reuse across calls.
type Evaluator struct {
	Lookup   Lookup
	Pad      vector.Vector // substituted for unresolved tokens when non-nil
	Registry *schedule.Registry

	funcs map[string]Func
}

// New returns an evaluator with the builtin blend functions installed.
func New(lookup Lookup, registry *schedule.Registry) *Evaluator {
	return &Evaluator{
		Lookup:   lookup,
		Registry: registry,
		funcs:    builtinFuncs(),
	}
}

// RegisterFunc installs (or replaces) a blend function under name.
func (e *Evaluator) RegisterFunc(name string, fn Func) {
	if e.funcs == nil {
		e.funcs = builtinFuncs()
	}
	e.funcs[name] = fn
}

// Evaluate walks root and produces the combined tensor plus all schedule
// bindings encountered. A purely scalar expression yields a 1-element
// tensor so the result shape is uniform.
func (e *Evaluator) Evaluate(root parser.Node) (Result, error) {
	if e.funcs == nil {
		e.funcs = builtinFuncs()
	}
	res := Result{Schedules: []schedule.Binding{}}
	v, err := e.walk(root, &res.Schedules)
	if err != nil {
		return Result{}, err
	}
	if v.IsNum {
		res.Tensor = vector.Vector{v.Num}
	} else {
		res.Tensor = v.Vec
	}
	return res, nil
}

func (e *Evaluator) walk(n parser.Node, out *[]schedule.Binding) (Value, error) {
	switch t := n.(type) {
	case *parser.Literal:
		return scalar(t.Value), nil

	case *parser.TokenRef:
		return e.resolveToken(t)

	case *parser.Grouping:
		return e.walk(t.Inner, out)

	case *parser.BinaryOp:
		left, err := e.walk(t.Left, out)
		if err != nil {
			return Value{}, err
		}
		right, err := e.walk(t.Right, out)
		if err != nil {
			return Value{}, err
		}
		return combine(t, left, right)

	case *parser.FunctionCall:
		return e.call(t, out)

	case *parser.ScheduleAttachment:
		base, err := e.walk(t.Base, out)
		if err != nil {
			return Value{}, err
		}
		binding, err := e.Registry.Resolve(t.Schedule, ExprString(t.Base), t.Args)
		if err != nil {
			return Value{}, err
		}
		*out = append(*out, binding)
		return base, nil
	}
	return Value{}, &TypeMismatchError{Op: "evaluate", Msg: "unsupported node", At: n.Pos()}
}

func (e *Evaluator) resolveToken(t *parser.TokenRef) (Value, error) {
	if e.Lookup != nil {
		if v, ok := e.Lookup(t.Name); ok {
			return vec(v), nil
		}
	}
	if e.Pad != nil {
		return vec(e.Pad.Clone()), nil
	}
	return Value{}, &UnresolvedTokenError{Token: t.Name, At: t.At}
}

func (e *Evaluator) call(t *parser.FunctionCall, out *[]schedule.Binding) (Value, error) {
	fn, ok := e.funcs[t.Name]
	if !ok {
		return Value{}, &UnknownFunctionError{Function: t.Name, At: t.At}
	}
	if len(t.Args) < fn.MinArgs || (fn.MaxArgs >= 0 && len(t.Args) > fn.MaxArgs) {
		return Value{}, &ArityError{Function: t.Name, Want: fn.ArityDesc, Got: len(t.Args), At: t.At}
	}
	args := make([]Value, len(t.Args))
	for i, a := range t.Args {
		v, err := e.walk(a, out)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return fn.Apply(args, t.At)
}

// combine applies a binary operator. Addition and subtraction are
// elementwise between vectors and broadcast a scalar operand as a bias;
// multiplication only scales a vector by a number. A vector-vector product
// is a type mismatch: the language has no elementwise or dot product.
func combine(op *parser.BinaryOp, left, right Value) (Value, error) {
	switch op.Op {
	case "+":
		switch {
		case left.IsNum && right.IsNum:
			return scalar(left.Num + right.Num), nil
		case left.IsNum:
			return vec(vector.AddBias(right.Vec, left.Num)), nil
		case right.IsNum:
			return vec(vector.AddBias(left.Vec, right.Num)), nil
		default:
			sum, err := vector.Add(left.Vec, right.Vec)
			if err != nil {
				return Value{}, &TypeMismatchError{Op: "+", Msg: err.Error(), At: op.At}
			}
			return vec(sum), nil
		}
	case "-":
		switch {
		case left.IsNum && right.IsNum:
			return scalar(left.Num - right.Num), nil
		case left.IsNum:
			return vec(vector.AddBias(vector.Scale(right.Vec, -1), left.Num)), nil
		case right.IsNum:
			return vec(vector.AddBias(left.Vec, -right.Num)), nil
		default:
			diff, err := vector.Sub(left.Vec, right.Vec)
			if err != nil {
				return Value{}, &TypeMismatchError{Op: "-", Msg: err.Error(), At: op.At}
			}
			return vec(diff), nil
		}
	case "*":
		switch {
		case left.IsNum && right.IsNum:
			return scalar(left.Num * right.Num), nil
		case left.IsNum:
			return vec(vector.Scale(right.Vec, left.Num)), nil
		case right.IsNum:
			return vec(vector.Scale(left.Vec, right.Num)), nil
		default:
			return Value{}, &TypeMismatchError{Op: "*", Msg: "between two vectors is not defined", At: op.At}
		}
	}
	return Value{}, &TypeMismatchError{Op: op.Op, Msg: "is not a supported operator", At: op.At}
}
