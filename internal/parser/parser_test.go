package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	return &Parser{Schedules: schedule.NewRegistry()}
}

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	node, err := newParser(t).Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return node
}

func TestParseTokenRef(t *testing.T) {
	t.Parallel()

	ref, ok := mustParse(t, "[[ [oil painting] ]]").(*TokenRef)
	if !ok {
		t.Fatal("want *TokenRef root")
	}
	if ref.Name != "oil painting" {
		t.Errorf("name = %q, want %q", ref.Name, "oil painting")
	}
}

func TestParsePrecedence(t *testing.T) {
	t.Parallel()

	// a + b*c parses as a + (b*c).
	root, ok := mustParse(t, "[[ [a] + 2*[c] ]]").(*BinaryOp)
	if !ok {
		t.Fatal("want *BinaryOp root")
	}
	if root.Op != "+" {
		t.Fatalf("root op = %q, want +", root.Op)
	}
	right, ok := root.Right.(*BinaryOp)
	if !ok || right.Op != "*" {
		t.Fatalf("right = %T, want * BinaryOp", root.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	t.Parallel()

	// a - b + c parses as (a - b) + c.
	root := mustParse(t, "[[ [a] - [b] + [c] ]]").(*BinaryOp)
	if root.Op != "+" {
		t.Fatalf("root op = %q, want +", root.Op)
	}
	left, ok := root.Left.(*BinaryOp)
	if !ok || left.Op != "-" {
		t.Fatalf("left = %T, want - BinaryOp", root.Left)
	}
	if _, ok := root.Right.(*TokenRef); !ok {
		t.Fatalf("right = %T, want *TokenRef", root.Right)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	t.Parallel()

	root := mustParse(t, "[[ 0.7*([style] - [photo]) ]]").(*BinaryOp)
	if root.Op != "*" {
		t.Fatalf("root op = %q, want *", root.Op)
	}
	if _, ok := root.Left.(*Literal); !ok {
		t.Fatalf("left = %T, want *Literal", root.Left)
	}
	grp, ok := root.Right.(*Grouping)
	if !ok {
		t.Fatalf("right = %T, want *Grouping", root.Right)
	}
	if inner, ok := grp.Inner.(*BinaryOp); !ok || inner.Op != "-" {
		t.Fatalf("group inner = %T, want - BinaryOp", grp.Inner)
	}
}

func TestParseFunctionCall(t *testing.T) {
	t.Parallel()

	call, ok := mustParse(t, "[[ mean([blurry], [grainy], [ugly]) ]]").(*FunctionCall)
	if !ok {
		t.Fatal("want *FunctionCall root")
	}
	if call.Name != "mean" || len(call.Args) != 3 {
		t.Fatalf("call = %s/%d args, want mean/3", call.Name, len(call.Args))
	}
	// Arguments are full expressions.
	nested := mustParse(t, "[[ lerp([a] + [b], [c], 0.5) ]]").(*FunctionCall)
	if _, ok := nested.Args[0].(*BinaryOp); !ok {
		t.Errorf("arg 0 = %T, want *BinaryOp", nested.Args[0])
	}
}

func TestParseScheduleSuffix(t *testing.T) {
	t.Parallel()

	att, ok := mustParse(t, "[[ [detailed] @ fade_in(0.2, 0.8) ]]").(*ScheduleAttachment)
	if !ok {
		t.Fatal("want *ScheduleAttachment root")
	}
	if att.Schedule != "fade_in" {
		t.Errorf("schedule = %q, want fade_in", att.Schedule)
	}
	if _, ok := att.Base.(*TokenRef); !ok {
		t.Errorf("base = %T, want *TokenRef", att.Base)
	}
	want := []schedule.Arg{schedule.NumArg(0.2), schedule.NumArg(0.8)}
	if len(att.Args) != 2 || att.Args[0] != want[0] || att.Args[1] != want[1] {
		t.Errorf("args = %v, want %v", att.Args, want)
	}
}

func TestScheduleBindsToSmallestPrimary(t *testing.T) {
	t.Parallel()

	// In "a + b @ s" the schedule attaches to b, not the whole sum.
	root := mustParse(t, "[[ [a] + [b] @ fade_in(0, 1) ]]").(*BinaryOp)
	if _, ok := root.Left.(*TokenRef); !ok {
		t.Fatalf("left = %T, want bare *TokenRef", root.Left)
	}
	att, ok := root.Right.(*ScheduleAttachment)
	if !ok {
		t.Fatalf("right = %T, want *ScheduleAttachment", root.Right)
	}
	if ref := att.Base.(*TokenRef); ref.Name != "b" {
		t.Errorf("scheduled token = %q, want b", ref.Name)
	}
}

func TestScheduleOnGroup(t *testing.T) {
	t.Parallel()

	att := mustParse(t, "[[ ([a] + [b]) @ fade_out(0.1, 0.9) ]]").(*ScheduleAttachment)
	if _, ok := att.Base.(*Grouping); !ok {
		t.Errorf("base = %T, want *Grouping", att.Base)
	}
}

func TestStackedSchedulesViaGrouping(t *testing.T) {
	t.Parallel()

	outer := mustParse(t, "[[ ([a] @ fade_in(0, 0.5)) @ fade_out(0.5, 1) ]]").(*ScheduleAttachment)
	grp := outer.Base.(*Grouping)
	inner, ok := grp.Inner.(*ScheduleAttachment)
	if !ok {
		t.Fatalf("inner = %T, want *ScheduleAttachment", grp.Inner)
	}
	if inner.Schedule != "fade_in" || outer.Schedule != "fade_out" {
		t.Errorf("schedules = %s/%s, want fade_in/fade_out", inner.Schedule, outer.Schedule)
	}
}

func TestScheduleArgKinds(t *testing.T) {
	t.Parallel()

	att := mustParse(t, `[[ [a] @ fade_in(0.1, -0.5, "Smooth", ease_in) ]]`).(*ScheduleAttachment)
	want := []schedule.Arg{
		schedule.NumArg(0.1),
		schedule.NumArg(-0.5),
		schedule.StrArg("Smooth"),
		schedule.StrArg("ease_in"),
	}
	if len(att.Args) != len(want) {
		t.Fatalf("got %d args, want %d", len(att.Args), len(want))
	}
	for i := range want {
		if att.Args[i] != want[i] {
			t.Errorf("arg %d = %v, want %v", i, att.Args[i], want[i])
		}
	}
}

func TestUnknownScheduleRejectedAtParseTime(t *testing.T) {
	t.Parallel()

	_, err := newParser(t).Parse("[[ [a] @ pulse(0, 1) ]]")
	if !errors.Is(err, schedule.ErrUnknownSchedule) {
		t.Fatalf("got %v, want ErrUnknownSchedule", err)
	}
	var unknown *UnknownScheduleError
	if !errors.As(err, &unknown) || unknown.Name != "pulse" {
		t.Errorf("error %v does not carry the schedule name", err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"missing wrapper", "[a] + [b]"},
		{"unterminated wrapper", "[[ [a]"},
		{"trailing tokens", "[[ [a] ]] extra"},
		{"trailing bracket", "[[ [a] ]]]"},
		{"empty token name", "[[ [] ]]"},
		{"dangling operator", "[[ [a] + ]]"},
		{"bare identifier", "[[ mean ]]"},
		{"unclosed group", "[[ ([a] + [b] ]]"},
		{"schedule without parens", "[[ [a] @ fade_in ]]"},
		{"schedule missing name", "[[ [a] @ (0, 1) ]]"},
		{"expression as schedule arg", "[[ [a] @ fade_in([b], 1) ]]"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := newParser(t).Parse(tt.src)
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) err = %v, want ErrSyntax", tt.src, err)
			}
		})
	}
}

func TestSyntaxErrorCarriesPosition(t *testing.T) {
	t.Parallel()

	_, err := newParser(t).Parse("[[ [a] + ]]")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
	if serr.At.Line != 1 || serr.At.Col != 10 {
		t.Errorf("position = %d:%d, want 1:10", serr.At.Line, serr.At.Col)
	}
}

func TestDepthGuard(t *testing.T) {
	t.Parallel()

	deep := "[[ " + strings.Repeat("(", 80) + "[a]" + strings.Repeat(")", 80) + " ]]"
	p := &Parser{Schedules: schedule.NewRegistry(), MaxDepth: 16}
	if _, err := p.Parse(deep); !errors.Is(err, ErrSyntax) {
		t.Fatalf("deep nesting: got %v, want ErrSyntax", err)
	}

	shallow := "[[ (([a])) ]]"
	if _, err := p.Parse(shallow); err != nil {
		t.Fatalf("shallow nesting rejected: %v", err)
	}
}

func TestNumericLiteralForms(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"[[ 0.7 ]]", "[[ .25 ]]", "[[ 1e-3 ]]", "[[ 42 ]]"} {
		if _, ok := mustParse(t, src).(*Literal); !ok {
			t.Errorf("Parse(%q): want *Literal root", src)
		}
	}
}
