package parser

import (
	"fmt"
	"strconv"

	"github.com/enigmatic-figure/TensorMath-Node/internal/lexer"
	"github.com/enigmatic-figure/TensorMath-Node/internal/schedule"
)

// DefaultMaxDepth bounds grouping and function-call nesting so pathological
// input cannot blow the stack.
const DefaultMaxDepth = 64

// ScheduleNamer answers whether a schedule name is registered. The parser
// rejects unknown schedule names while parsing; arithmetic function names
// are deferred to evaluation because they may be registered later.
type ScheduleNamer interface {
	Has(name string) bool
}

// Parser parses prompt-math expression text into an AST.
type Parser struct {
	Schedules ScheduleNamer
	MaxDepth  int // 0 means DefaultMaxDepth
}

// Parse lexes src and parses the single double-bracket-wrapped expression
// it must contain.
func (p *Parser) Parse(src string) (Node, error) {
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	st := &state{
		toks:      lexer.Scan(src),
		schedules: p.Schedules,
		maxDepth:  maxDepth,
	}
	return st.parseExpression()
}

type state struct {
	toks      []lexer.Token
	pos       int
	depth     int
	schedules ScheduleNamer
	maxDepth  int
}

func (s *state) cur() lexer.Token  { return s.toks[s.pos] }
func (s *state) next() lexer.Token { t := s.toks[s.pos]; s.advance(); return t }

func (s *state) advance() {
	if s.pos < len(s.toks)-1 {
		s.pos++
	}
}

func pos(t lexer.Token) Pos { return Pos{Offset: t.Offset, Line: t.Line, Col: t.Col} }

func (s *state) errf(t lexer.Token, format string, args ...any) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), At: pos(t)}
}

// parseExpression enforces the outer [[ ]] wrapper around exactly one sum.
func (s *state) parseExpression() (Node, error) {
	if s.cur().Kind != lexer.DoubleBracketOpen {
		return nil, s.errf(s.cur(), "expression must open with %q", "[[")
	}
	s.advance()
	root, err := s.parseSum()
	if err != nil {
		return nil, err
	}
	if s.cur().Kind != lexer.DoubleBracketClose {
		return nil, s.errf(s.cur(), "expression is not terminated by %q", "]]")
	}
	s.advance()
	if s.cur().Kind != lexer.EOF {
		return nil, s.errf(s.cur(), "unexpected %q after closing %q", s.cur().Text, "]]")
	}
	return root, nil
}

// parseSum handles the lowest precedence level: term (('+'|'-') term)*.
func (s *state) parseSum() (Node, error) {
	left, err := s.parseTerm()
	if err != nil {
		return nil, err
	}
	for s.cur().Kind == lexer.Plus || s.cur().Kind == lexer.Minus {
		op := s.next()
		right, err := s.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op.Text, Left: left, Right: right, At: pos(op)}
	}
	return left, nil
}

// parseTerm handles multiplication: unary ('*' unary)*.
func (s *state) parseTerm() (Node, error) {
	left, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	for s.cur().Kind == lexer.Star {
		op := s.next()
		right, err := s.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op.Text, Left: left, Right: right, At: pos(op)}
	}
	return left, nil
}

// parseUnary parses a primary with an optional schedule suffix. The suffix
// binds to the smallest preceding primary, never a whole sum, so in
// "a + b @ fade_in(...)" only b is scheduled.
func (s *state) parseUnary() (Node, error) {
	base, err := s.parsePrimary()
	if err != nil {
		return nil, err
	}
	if s.cur().Kind != lexer.ScheduleOp {
		return base, nil
	}
	at := s.next() // "@"
	nameTok := s.cur()
	if nameTok.Kind != lexer.Ident {
		return nil, s.errf(nameTok, "expected schedule name after %q", "@")
	}
	s.advance()
	if s.schedules == nil || !s.schedules.Has(nameTok.Text) {
		return nil, &UnknownScheduleError{Name: nameTok.Text, At: pos(nameTok)}
	}
	args, err := s.parseScheduleArgs()
	if err != nil {
		return nil, err
	}
	return &ScheduleAttachment{Base: base, Schedule: nameTok.Text, Args: args, At: pos(at)}, nil
}

func (s *state) parsePrimary() (Node, error) {
	t := s.cur()
	switch t.Kind {
	case lexer.Number:
		s.advance()
		v, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return nil, s.errf(t, "malformed number %q", t.Text)
		}
		return &Literal{Value: v, At: pos(t)}, nil

	case lexer.BracketOpen:
		s.advance()
		name := s.cur()
		if name.Kind != lexer.TokenName {
			return nil, s.errf(name, "expected token name after %q", "[")
		}
		if name.Text == "" {
			return nil, s.errf(name, "empty token name")
		}
		s.advance()
		if s.cur().Kind != lexer.BracketClose {
			return nil, s.errf(s.cur(), "token name %q is missing its closing %q", name.Text, "]")
		}
		s.advance()
		return &TokenRef{Name: name.Text, At: pos(name)}, nil

	case lexer.ParenOpen:
		s.advance()
		if err := s.push(t); err != nil {
			return nil, err
		}
		inner, err := s.parseSum()
		s.depth--
		if err != nil {
			return nil, err
		}
		if s.cur().Kind != lexer.ParenClose {
			return nil, s.errf(s.cur(), "expected %q to close group", ")")
		}
		s.advance()
		return &Grouping{Inner: inner, At: pos(t)}, nil

	case lexer.Ident:
		s.advance()
		if s.cur().Kind != lexer.ParenOpen {
			return nil, s.errf(t, "bare identifier %q; token references use %q", t.Text, "[name]")
		}
		s.advance()
		if err := s.push(t); err != nil {
			return nil, err
		}
		args, err := s.parseCallArgs()
		s.depth--
		if err != nil {
			return nil, err
		}
		return &FunctionCall{Name: t.Text, Args: args, At: pos(t)}, nil
	}
	return nil, s.errf(t, "unexpected %q", t.Kind)
}

// parseCallArgs parses the argument list of a blend function call. Each
// argument is a full sub-expression; the opening paren is already consumed.
func (s *state) parseCallArgs() ([]Node, error) {
	var args []Node
	if s.cur().Kind == lexer.ParenClose {
		s.advance()
		return args, nil
	}
	for {
		arg, err := s.parseSum()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch s.cur().Kind {
		case lexer.Comma:
			s.advance()
		case lexer.ParenClose:
			s.advance()
			return args, nil
		default:
			return nil, s.errf(s.cur(), "expected %q or %q in argument list", ",", ")")
		}
	}
}

// parseScheduleArgs parses the positional arguments of a schedule call.
// Schedule parameters are floats and strings, so arguments are restricted
// to (optionally negated) numbers, quoted strings, and bare identifiers;
// bare identifiers pass through as strings so "curve" arguments may be
// written unquoted.
func (s *state) parseScheduleArgs() ([]schedule.Arg, error) {
	open := s.cur()
	if open.Kind != lexer.ParenOpen {
		return nil, s.errf(open, "expected %q after schedule name", "(")
	}
	s.advance()
	var args []schedule.Arg
	if s.cur().Kind == lexer.ParenClose {
		s.advance()
		return args, nil
	}
	for {
		arg, err := s.parseScheduleArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		switch s.cur().Kind {
		case lexer.Comma:
			s.advance()
		case lexer.ParenClose:
			s.advance()
			return args, nil
		default:
			return nil, s.errf(s.cur(), "expected %q or %q in schedule arguments", ",", ")")
		}
	}
}

func (s *state) parseScheduleArg() (schedule.Arg, error) {
	t := s.cur()
	switch t.Kind {
	case lexer.String:
		s.advance()
		return schedule.StrArg(t.Text), nil
	case lexer.Ident:
		s.advance()
		return schedule.StrArg(t.Text), nil
	case lexer.Minus:
		s.advance()
		num := s.cur()
		if num.Kind != lexer.Number {
			return schedule.Arg{}, s.errf(num, "expected number after %q", "-")
		}
		s.advance()
		v, err := strconv.ParseFloat(num.Text, 64)
		if err != nil {
			return schedule.Arg{}, s.errf(num, "malformed number %q", num.Text)
		}
		return schedule.NumArg(-v), nil
	case lexer.Number:
		s.advance()
		v, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return schedule.Arg{}, s.errf(t, "malformed number %q", t.Text)
		}
		return schedule.NumArg(v), nil
	}
	return schedule.Arg{}, s.errf(t, "schedule arguments must be numbers or strings, got %q", t.Kind)
}

// push tracks nesting depth, rejecting expressions beyond the guard.
func (s *state) push(t lexer.Token) error {
	s.depth++
	if s.depth > s.maxDepth {
		return s.errf(t, "expression nesting exceeds %d levels", s.maxDepth)
	}
	return nil
}
