package eval

import (
	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/vector"
)

// Func is a blend/aggregate function callable from expressions. Arity is
// validated before Apply runs.
type Func struct {
	// MinArgs/MaxArgs bound the accepted argument count. MaxArgs < 0
	// means variadic.
	MinArgs int
	MaxArgs int
	// ArityDesc is the human description used in ArityError messages.
	ArityDesc string
	Apply     func(args []Value, at parser.Pos) (Value, error)
}

// builtinFuncs is the default arithmetic-function namespace. It is
// disjoint from the schedule namespace: a name here is reachable anywhere
// in an expression, schedule names only after "@".
func builtinFuncs() map[string]Func {
	return map[string]Func{
		"mean":     {MinArgs: 1, MaxArgs: -1, ArityDesc: "one or more vector", Apply: applyMean},
		"lerp":     {MinArgs: 3, MaxArgs: 3, ArityDesc: "exactly 3 (vector, vector, weight)", Apply: applyLerp},
		"add_bias": {MinArgs: 2, MaxArgs: 2, ArityDesc: "exactly 2 (vector, bias)", Apply: applyAddBias},
		"scale":    {MinArgs: 2, MaxArgs: 2, ArityDesc: "exactly 2 (vector, factor)", Apply: applyScale},
		"norm":     {MinArgs: 1, MaxArgs: 1, ArityDesc: "exactly 1 vector", Apply: applyNorm},
		"clamp":    {MinArgs: 3, MaxArgs: 3, ArityDesc: "exactly 3 (vector, min, max)", Apply: applyClamp},
	}
}

func applyMean(args []Value, at parser.Pos) (Value, error) {
	vs := make([]vector.Vector, len(args))
	for i, a := range args {
		if a.IsNum {
			return Value{}, &TypeMismatchError{Op: "mean", Msg: "takes vectors, got a number", At: at}
		}
		vs[i] = a.Vec
	}
	out, err := vector.Mean(vs)
	if err != nil {
		return Value{}, &TypeMismatchError{Op: "mean", Msg: err.Error(), At: at}
	}
	return vec(out), nil
}

func applyLerp(args []Value, at parser.Pos) (Value, error) {
	if args[0].IsNum || args[1].IsNum || !args[2].IsNum {
		return Value{}, &TypeMismatchError{Op: "lerp", Msg: "wants (vector, vector, number)", At: at}
	}
	out, err := vector.Lerp(args[0].Vec, args[1].Vec, args[2].Num)
	if err != nil {
		return Value{}, &TypeMismatchError{Op: "lerp", Msg: err.Error(), At: at}
	}
	return vec(out), nil
}

func applyAddBias(args []Value, at parser.Pos) (Value, error) {
	if args[0].IsNum || !args[1].IsNum {
		return Value{}, &TypeMismatchError{Op: "add_bias", Msg: "wants (vector, number)", At: at}
	}
	return vec(vector.AddBias(args[0].Vec, args[1].Num)), nil
}

func applyScale(args []Value, at parser.Pos) (Value, error) {
	if args[0].IsNum || !args[1].IsNum {
		return Value{}, &TypeMismatchError{Op: "scale", Msg: "wants (vector, number)", At: at}
	}
	return vec(vector.Scale(args[0].Vec, args[1].Num)), nil
}

func applyNorm(args []Value, at parser.Pos) (Value, error) {
	if args[0].IsNum {
		return Value{}, &TypeMismatchError{Op: "norm", Msg: "wants a vector", At: at}
	}
	return vec(vector.LayerNorm(args[0].Vec, 1e-5)), nil
}

func applyClamp(args []Value, at parser.Pos) (Value, error) {
	if args[0].IsNum || !args[1].IsNum || !args[2].IsNum {
		return Value{}, &TypeMismatchError{Op: "clamp", Msg: "wants (vector, number, number)", At: at}
	}
	return vec(vector.Clamp(args[0].Vec, args[1].Num, args[2].Num)), nil
}
