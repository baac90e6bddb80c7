package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// kinds strips positions so token streams compare concisely.
func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanBasicExpression(t *testing.T) {
	t.Parallel()

	toks := Scan("[[ [king] - [man] + [woman] ]]")
	want := []Kind{
		DoubleBracketOpen,
		BracketOpen, TokenName, BracketClose,
		Minus,
		BracketOpen, TokenName, BracketClose,
		Plus,
		BracketOpen, TokenName, BracketClose,
		DoubleBracketClose,
		EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if toks[2].Text != "king" {
		t.Errorf("first token name = %q, want %q", toks[2].Text, "king")
	}
}

func TestScanTightBrackets(t *testing.T) {
	t.Parallel()

	// No spaces: the double-bracket wrapper must still lex greedily.
	toks := Scan("[[[a]-[b]]]")
	want := []Kind{
		DoubleBracketOpen,
		BracketOpen, TokenName, BracketClose,
		Minus,
		BracketOpen, TokenName, BracketClose,
		DoubleBracketClose,
		EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenNamesKeepSpaces(t *testing.T) {
	t.Parallel()

	toks := Scan("[[ [oil painting] ]]")
	if toks[2].Kind != TokenName || toks[2].Text != "oil painting" {
		t.Errorf("token = %+v, want TokenName %q", toks[2], "oil painting")
	}
}

func TestTokenNamesAreVerbatim(t *testing.T) {
	t.Parallel()

	// Characters that are operators outside brackets are literal content
	// inside a token name.
	toks := Scan("[a+b @ x]")
	if toks[1].Kind != TokenName || toks[1].Text != "a+b @ x" {
		t.Errorf("token = %+v, want verbatim name %q", toks[1], "a+b @ x")
	}
}

func TestScanScheduleCall(t *testing.T) {
	t.Parallel()

	toks := Scan(`[[ [detailed] @ fade_in(0.2, 0.8, "smooth") ]]`)
	want := []Kind{
		DoubleBracketOpen,
		BracketOpen, TokenName, BracketClose,
		ScheduleOp, Ident, ParenOpen,
		Number, Comma, Number, Comma, String,
		ParenClose,
		DoubleBracketClose,
		EOF,
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
	if toks[11].Text != "smooth" {
		t.Errorf("string literal = %q, want %q (quotes stripped)", toks[11].Text, "smooth")
	}
}

func TestScanNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"0.5", "0.5"},
		{"2", "2"},
		{"1e-3", "1e-3"},
		{"2.5E+4", "2.5E+4"},
		{".25", ".25"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			toks := Scan(tt.in)
			if toks[0].Kind != Number || toks[0].Text != tt.want {
				t.Errorf("Scan(%q)[0] = %v %q, want Number %q", tt.in, toks[0].Kind, toks[0].Text, tt.want)
			}
		})
	}
}

func TestCommentsAreDiscarded(t *testing.T) {
	t.Parallel()

	toks := Scan("[[ [a] # trailing note\n]]")
	want := []Kind{DoubleBracketOpen, BracketOpen, TokenName, BracketClose, DoubleBracketClose, EOF}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestStringEscapes(t *testing.T) {
	t.Parallel()

	toks := Scan(`"a\"b\n"`)
	if toks[0].Kind != String || toks[0].Text != "a\"b\n" {
		t.Errorf("string = %q, want %q", toks[0].Text, "a\"b\n")
	}
}

func TestLexingNeverFails(t *testing.T) {
	t.Parallel()

	// Unrecognized characters outside brackets are dropped; lexing always
	// terminates with EOF.
	toks := Scan("?? %% [[ [a] ]] !!")
	if toks[len(toks)-1].Kind != EOF {
		t.Fatal("stream does not end with EOF")
	}
	want := []Kind{DoubleBracketOpen, BracketOpen, TokenName, BracketClose, DoubleBracketClose, EOF}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	toks := Scan("[[\n[a]\n]]")
	// Line 2 starts after the first newline.
	if toks[1].Line != 2 || toks[1].Col != 1 {
		t.Errorf("bracket position = %d:%d, want 2:1", toks[1].Line, toks[1].Col)
	}
	if toks[4].Line != 3 {
		t.Errorf("closing wrapper line = %d, want 3", toks[4].Line)
	}
}

func TestUnterminatedTokenName(t *testing.T) {
	t.Parallel()

	toks := Scan("[[ [dangling")
	// The name is captured but no closing bracket token is emitted; the
	// validator reports the structural problem.
	want := []Kind{DoubleBracketOpen, BracketOpen, TokenName, EOF}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}
