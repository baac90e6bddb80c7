package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/enigmatic-figure/TensorMath-Node/internal/parser"
	"github.com/enigmatic-figure/TensorMath-Node/internal/vector"
)

// Value is the result of evaluating a sub-expression: either a scalar
// (numeric literal arithmetic) or a vector.
type Value struct {
	Vec   vector.Vector
	Num   float64
	IsNum bool
}

func scalar(v float64) Value    { return Value{Num: v, IsNum: true} }
func vec(v vector.Vector) Value { return Value{Vec: v} }

func (v Value) kind() string {
	if v.IsNum {
		return "number"
	}
	return "vector"
}

// ExprString renders a node back to canonical expression text (without the
// outer double brackets). It names schedule-attachment bases, so grouped
// bases get a stable token identity in emitted bindings.
func ExprString(n parser.Node) string {
	switch t := n.(type) {
	case *parser.Literal:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case *parser.TokenRef:
		return t.Name
	case *parser.BinaryOp:
		return fmt.Sprintf("%s %s %s", ExprString(t.Left), t.Op, ExprString(t.Right))
	case *parser.Grouping:
		return "(" + ExprString(t.Inner) + ")"
	case *parser.FunctionCall:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = ExprString(a)
		}
		return t.Name + "(" + strings.Join(parts, ", ") + ")"
	case *parser.ScheduleAttachment:
		return ExprString(t.Base)
	}
	return ""
}
