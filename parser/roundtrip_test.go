package parser

import (
	"testing"

	"github.com/qasm3-go/oq3cst/syntax"
)

// TestRoundTrip_TextReproducesSource checks §8's lossless round-trip
// invariant: concatenating every token's text, including trivia, yields
// the exact original source, error nodes included.
func TestRoundTrip_TextReproducesSource(t *testing.T) {
	sources := []string{
		"OPENQASM 3.0;\n",
		"qubit[2] q;\ncreg c[2];\n",
		"gate rz(theta) q {\n    U(0, 0, theta) q;\n}\n",
		"if (a == 1) {\n    x = 1;\n} else if (a == 2) {\n    x = 2;\n} else {\n    x = 3;\n}",
		"for int i in 0:3 {\n    x = i;\n}",
		"x = a + b * c; // trailing comment\n",
		"qubit q;\n@@@\nqubit r;",
		// structural errors that occur after a production has already
		// opened its own node (missing ')'/'}', here and below) must not
		// leave any builder frame open, let alone drop bytes from it.
		"if (a == 1 {\n    x = 1;\n}",
		"gate h q U(0, 0, 0) q; }",
		// a lexical error (unterminated string) must still surface its
		// consumed bytes in the tree rather than silently dropping them.
		`x = "unterminated;`,
	}
	for _, src := range sources {
		green, _ := Parse(src)
		if got := syntax.Text(green); got != src {
			t.Errorf("Text(Parse(%q)) = %q, want the source reproduced byte-for-byte", src, got)
		}
	}
}

// TestRoundTrip_StructuralErrorMidProductionDoesNotPanic checks that a
// structural error discovered after a production has already opened its
// own builder frame (the common case for malformed input) is recovered
// without corrupting the stack — Parse must return, not panic, and the
// tree must still cover every byte of the input.
func TestRoundTrip_StructuralErrorMidProductionDoesNotPanic(t *testing.T) {
	src := "if (a == 1 { x = 1; }"
	green, err := Parse(src)
	if err == nil {
		t.Fatal("expected an accumulated error for the missing ')'")
	}
	if got := syntax.Text(green); got != src {
		t.Errorf("Text(Parse(%q)) = %q, want the source reproduced byte-for-byte", src, got)
	}
}

// TestRoundTrip_LexicalErrorIsNotDropped checks that a lexical error
// (here, an unterminated string literal) still places its consumed bytes
// into the tree via an ERROR node, rather than silently discarding them.
func TestRoundTrip_LexicalErrorIsNotDropped(t *testing.T) {
	src := `x = "unterminated;`
	green, err := Parse(src)
	if err == nil {
		t.Fatal("expected an accumulated error for the unterminated string")
	}
	if got := syntax.Text(green); got != src {
		t.Errorf("Text(Parse(%q)) = %q, want the source reproduced byte-for-byte", src, got)
	}
}

// TestRoundTrip_NodeTextRangeSpansFirstToLastToken checks §8's invariant
// that a node's TextRange equals the span from its first token through
// its last token inclusive.
func TestRoundTrip_NodeTextRangeSpansFirstToLastToken(t *testing.T) {
	src := "x = a + b * c;"
	green, _ := Parse(src)
	root := syntax.NewRoot(green)
	stmt := root.Children()[0]

	first := stmt.FirstToken()
	last := stmt.LastToken()
	if first == nil || last == nil {
		t.Fatal("statement node has no tokens")
	}

	start, end := stmt.TextRange()
	wantStart := stmt.Offset()
	if start != wantStart {
		t.Errorf("TextRange() start = %v, want %v", start, wantStart)
	}
	wantEnd := wantStart + stmt.Green().Width()
	if end != wantEnd {
		t.Errorf("TextRange() end = %v, want %v", end, wantEnd)
	}
}
