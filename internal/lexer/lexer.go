// Package lexer converts prompt-math expression text into a typed token
// stream. Lexing never fails: characters that fit no token class are
// captured verbatim inside token-name brackets and dropped everywhere else.
// Structural problems are left to the bracket validator and the parser.
package lexer

import "strings"

// Kind identifies the class of a lexed token.
type Kind int

const (
	EOF Kind = iota
	DoubleBracketOpen
	DoubleBracketClose
	BracketOpen
	BracketClose
	ParenOpen
	ParenClose
	ScheduleOp // "@"
	Plus
	Minus
	Star
	Number
	String
	Ident
	TokenName // verbatim content of a single-bracket form
	Comma
)

var kindNames = map[Kind]string{
	EOF:                "EOF",
	DoubleBracketOpen:  "[[",
	DoubleBracketClose: "]]",
	BracketOpen:        "[",
	BracketClose:       "]",
	ParenOpen:          "(",
	ParenClose:         ")",
	ScheduleOp:         "@",
	Plus:               "+",
	Minus:              "-",
	Star:               "*",
	Number:             "NUMBER",
	String:             "STRING",
	Ident:              "IDENT",
	TokenName:          "TOKEN",
	Comma:              ",",
}

// String returns a printable name for k, used in diagnostics.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Token is one lexical unit with its source position. Offset is a byte
// offset into the original text; Line and Col are 1-based.
type Token struct {
	Kind   Kind
	Text   string // decoded content for Number/String/TokenName, raw otherwise
	Offset int
	Line   int
	Col    int
}

// Scan lexes src into a token stream terminated by an EOF token.
func Scan(src string) []Token {
	l := &scanner{src: src, line: 1, col: 1}
	return l.run()
}

type scanner struct {
	src    string
	pos    int
	line   int
	col    int
	tokens []Token
}

func (s *scanner) run() []Token {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		switch {
		case c == '#':
			s.skipComment()
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '[':
			if s.peekAt(1) == '[' {
				s.emitWide(DoubleBracketOpen, 2)
			} else {
				s.scanTokenName()
			}
		case c == ']':
			if s.peekAt(1) == ']' {
				s.emitWide(DoubleBracketClose, 2)
			} else {
				s.emitWide(BracketClose, 1)
			}
		case c == '(':
			s.emitWide(ParenOpen, 1)
		case c == ')':
			s.emitWide(ParenClose, 1)
		case c == '@':
			s.emitWide(ScheduleOp, 1)
		case c == '+':
			s.emitWide(Plus, 1)
		case c == '-':
			s.emitWide(Minus, 1)
		case c == '*':
			s.emitWide(Star, 1)
		case c == ',':
			s.emitWide(Comma, 1)
		case c == '"':
			s.scanString()
		case c >= '0' && c <= '9' || c == '.' && isDigit(s.peekAt(1)):
			s.scanNumber()
		case isIdentStart(c):
			s.scanIdent()
		default:
			// Unrecognized character outside any bracket scope: drop it.
			s.advance()
		}
	}
	s.tokens = append(s.tokens, Token{Kind: EOF, Offset: s.pos, Line: s.line, Col: s.col})
	return s.tokens
}

// scanTokenName consumes "[" and captures everything up to the matching "]"
// verbatim, spaces included. Token names are not re-lexed as identifiers.
func (s *scanner) scanTokenName() {
	start, line, col := s.pos, s.line, s.col
	s.advance() // "["
	s.tokens = append(s.tokens, Token{Kind: BracketOpen, Text: "[", Offset: start, Line: line, Col: col})

	nameStart, nameLine, nameCol := s.pos, s.line, s.col
	var b strings.Builder
	for s.pos < len(s.src) && s.src[s.pos] != ']' {
		b.WriteByte(s.src[s.pos])
		s.advance()
	}
	name := strings.TrimSpace(b.String())
	s.tokens = append(s.tokens, Token{Kind: TokenName, Text: name, Offset: nameStart, Line: nameLine, Col: nameCol})

	if s.pos < len(s.src) {
		s.emitWide(BracketClose, 1)
	}
	// An unterminated name leaves no closing token; the validator reports it.
}

// scanString consumes a double-quoted string, honoring backslash escapes.
// An unterminated string runs to end of input.
func (s *scanner) scanString() {
	start, line, col := s.pos, s.line, s.col
	s.advance() // opening quote
	var b strings.Builder
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '\\' && s.pos+1 < len(s.src) {
			s.advance()
			switch s.src[s.pos] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(s.src[s.pos])
			}
			s.advance()
			continue
		}
		if c == '"' {
			s.advance()
			break
		}
		b.WriteByte(c)
		s.advance()
	}
	s.tokens = append(s.tokens, Token{Kind: String, Text: b.String(), Offset: start, Line: line, Col: col})
}

func (s *scanner) scanNumber() {
	start, line, col := s.pos, s.line, s.col
	for s.pos < len(s.src) && (isDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
		s.advance()
	}
	// Exponent suffix: 1e-3, 2.5E+4.
	if s.pos < len(s.src) && (s.src[s.pos] == 'e' || s.src[s.pos] == 'E') {
		next := s.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(s.peekAt(2))) {
			s.advance()
			if s.src[s.pos] == '+' || s.src[s.pos] == '-' {
				s.advance()
			}
			for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
				s.advance()
			}
		}
	}
	s.tokens = append(s.tokens, Token{Kind: Number, Text: s.src[start:s.pos], Offset: start, Line: line, Col: col})
}

func (s *scanner) scanIdent() {
	start, line, col := s.pos, s.line, s.col
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.advance()
	}
	s.tokens = append(s.tokens, Token{Kind: Ident, Text: s.src[start:s.pos], Offset: start, Line: line, Col: col})
}

func (s *scanner) skipComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.advance()
	}
}

// emitWide appends a token of width bytes taken from the source.
func (s *scanner) emitWide(kind Kind, width int) {
	t := Token{Kind: kind, Text: s.src[s.pos : s.pos+width], Offset: s.pos, Line: s.line, Col: s.col}
	for i := 0; i < width; i++ {
		s.advance()
	}
	s.tokens = append(s.tokens, t)
}

func (s *scanner) advance() {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
