package eval

import (
	"errors"
	"fmt"

	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
)

// Sentinels for errors.Is checks. The typed errors below unwrap to these.
var (
	ErrUnresolvedToken = errors.New("unresolved token")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrArity           = errors.New("wrong argument count")
	ErrUnknownFunction = errors.New("unknown function")
)

// UnresolvedTokenError names a token the lookup could not supply when no
// pad vector is configured. Silent zero-substitution is never performed;
// it would mask author typos.
type UnresolvedTokenError struct {
	Token string
	At    parser.Pos
}

func (e *UnresolvedTokenError) Error() string {
	return fmt.Sprintf("unresolved token %q at %d:%d", e.Token, e.At.Line, e.At.Col)
}

func (e *UnresolvedTokenError) Unwrap() error { return ErrUnresolvedToken }

// TypeMismatchError reports an operation applied to operand types the
// language does not define, e.g. a vector-vector product.
type TypeMismatchError struct {
	Op  string
	Msg string
	At  parser.Pos
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %d:%d: %s %s", e.At.Line, e.At.Col, e.Op, e.Msg)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ArityError reports a blend-function call with the wrong argument count.
type ArityError struct {
	Function string
	Want     string // human description of the accepted arity
	Got      int
	At       parser.Pos
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %s arguments, got %d (at %d:%d)", e.Function, e.Want, e.Got, e.At.Line, e.At.Col)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// UnknownFunctionError reports a blend-function name with no registered
// implementation. Unlike schedule names this is an evaluation-time error;
// the function may be registered after parsing.
type UnknownFunctionError struct {
	Function string
	At       parser.Pos
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q at %d:%d", e.Function, e.At.Line, e.At.Col)
}

func (e *UnknownFunctionError) Unwrap() error { return ErrUnknownFunction }
