// Package validator performs a fast, position-aware structural check of
// bracket nesting in prompt-math text. It is independent of the parser so
// it can run as a live linting pass on partial or invalid input.
package validator

import "fmt"

// FindingKind classifies a structural problem.
type FindingKind string

const (
	MismatchedBracket       FindingKind = "mismatched_bracket"
	UnmatchedClosing        FindingKind = "unmatched_closing"
	UnclosedBracket         FindingKind = "unclosed_bracket"
	UnbalancedDoubleBracket FindingKind = "unbalanced_double_bracket"
)

// Finding is one advisory diagnostic. Line and Col are 1-based.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Line    int         `json:"line"`
	Col     int         `json:"column"`
	Message string      `json:"message"`
}

// bracket classes tracked on the stack. Double brackets are a distinct
// class from single brackets so "[[" is never satisfied by "]".
type bracketClass int

const (
	classSingle bracketClass = iota
	classDouble
	classParen
)

func (c bracketClass) open() string {
	switch c {
	case classDouble:
		return "[["
	case classParen:
		return "("
	default:
		return "["
	}
}

func (c bracketClass) close() string {
	switch c {
	case classDouble:
		return "]]"
	case classParen:
		return ")"
	default:
		return "]"
	}
}

type openBracket struct {
	class bracketClass
	line  int
	col   int
}

// Check scans text left to right with a single stack and returns findings
// in source order. A nil result means the text is structurally valid.
// Comments ("#" to end of line) and double-quoted strings are skipped so
// bracket characters inside them are not counted.
//
// The scan stops at the first mismatched or unmatched closing bracket:
// everything after it would be matched against a poisoned stack and the
// contract is to report the first offending position deterministically.
// When no closing-site error occurs, every bracket still open at end of
// input is reported, innermost first, plus a dedicated finding when the
// double-bracket markers have odd parity.
func Check(text string) []Finding {
	var findings []Finding
	var stack []openBracket
	doubleMarkers := 0

	line, col := 1, 1
	advance := func(width int) {
		for i := 0; i < width; i++ {
			if text[0] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			text = text[1:]
		}
	}

	push := func(c bracketClass) {
		stack = append(stack, openBracket{class: c, line: line, col: col})
	}

	for len(text) > 0 {
		c := text[0]
		switch {
		case c == '#':
			for len(text) > 0 && text[0] != '\n' {
				advance(1)
			}
		case c == '"':
			advance(1)
			for len(text) > 0 && text[0] != '"' {
				if text[0] == '\\' && len(text) > 1 {
					advance(1)
				}
				advance(1)
			}
			if len(text) > 0 {
				advance(1)
			}
		case c == '[' && len(text) > 1 && text[1] == '[':
			doubleMarkers++
			push(classDouble)
			advance(2)
		case c == '[':
			push(classSingle)
			advance(1)
		case c == '(':
			push(classParen)
			advance(1)
		case c == ']' && len(text) > 1 && text[1] == ']':
			doubleMarkers++
			if fs := popExpect(&stack, classDouble, line, col); fs != nil {
				return fs
			}
			advance(2)
		case c == ']':
			if fs := popExpect(&stack, classSingle, line, col); fs != nil {
				return fs
			}
			advance(1)
		case c == ')':
			if fs := popExpect(&stack, classParen, line, col); fs != nil {
				return fs
			}
			advance(1)
		default:
			advance(1)
		}
	}

	// Anything still open at end of input is unclosed, innermost first.
	for i := len(stack) - 1; i >= 0; i-- {
		ob := stack[i]
		findings = append(findings, Finding{
			Kind:    UnclosedBracket,
			Line:    ob.line,
			Col:     ob.col,
			Message: fmt.Sprintf("%q opened here is never closed", ob.class.open()),
		})
	}

	if doubleMarkers%2 != 0 {
		findings = append(findings, Finding{
			Kind:    UnbalancedDoubleBracket,
			Line:    line,
			Col:     col,
			Message: "odd number of double-bracket markers in input",
		})
	}
	return findings
}

// popExpect pops the innermost open bracket and reports a finding when the
// closing token at (line, col) does not match it.
func popExpect(stack *[]openBracket, want bracketClass, line, col int) []Finding {
	s := *stack
	if len(s) == 0 {
		return []Finding{{
			Kind:    UnmatchedClosing,
			Line:    line,
			Col:     col,
			Message: fmt.Sprintf("%q closes nothing", want.close()),
		}}
	}
	top := s[len(s)-1]
	*stack = s[:len(s)-1]
	if top.class != want {
		return []Finding{{
			Kind:    MismatchedBracket,
			Line:    line,
			Col:     col,
			Message: fmt.Sprintf("expected %q to close %q opened at %d:%d, found %q", top.class.close(), top.class.open(), top.line, top.col, want.close()),
		}}
	}
	return nil
}
