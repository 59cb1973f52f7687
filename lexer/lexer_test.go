package lexer

import (
	"testing"

	"github.com/qasm3-go/oq3cst/syntax"
)

func kinds(toks []Token) []syntax.Kind {
	ks := make([]syntax.Kind, 0, len(toks))
	for _, t := range toks {
		if t.Kind == syntax.KindNil {
			continue
		}
		ks = append(ks, t.Kind)
	}
	return ks
}

func TestTokenize_VersionHeader(t *testing.T) {
	toks, err := Tokenize("OPENQASM 3.0;")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	got := kinds(toks)
	want := []syntax.Kind{
		syntax.KindKwOPENQASM, syntax.KindWhitespace, syntax.KindFloatNumber, syntax.KindSemicolon,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %v: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenize_Operators(t *testing.T) {
	tests := []struct {
		src  string
		want syntax.Kind
	}{
		{"+", syntax.KindPlus},
		{"++", syntax.KindPlusPlus},
		{"+=", syntax.KindPlusEq},
		{">>=", syntax.KindShrEq},
		{">>", syntax.KindShr},
		{">", syntax.KindGt},
		{"==", syntax.KindEqEq},
		{"->", syntax.KindArrow},
		{"::", syntax.KindColonColon},
		{":", syntax.KindColon},
	}
	for _, tt := range tests {
		toks, err := Tokenize(tt.src)
		if err != nil {
			t.Fatalf("Tokenize(%q) returned error: %v", tt.src, err)
		}
		got := kinds(toks)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("Tokenize(%q) kinds = %v, want [%v]", tt.src, got, tt.want)
		}
	}
}

func TestTokenize_Identifiers(t *testing.T) {
	toks, err := Tokenize("qubit q0")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	got := kinds(toks)
	want := []syntax.Kind{syntax.KindKwQubit, syntax.KindWhitespace, syntax.KindIdent}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %v: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTokenize_HardwareQubit(t *testing.T) {
	toks, err := Tokenize("$0")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(toks) < 1 || toks[0].Kind != syntax.KindHardwareQubit {
		t.Fatalf("Tokenize(\"$0\") = %v, want a HardwareQubit token first", toks)
	}
	if toks[0].Text != "$0" {
		t.Errorf("Tokenize(\"$0\")[0].Text = %q, want %q", toks[0].Text, "$0")
	}
}

func TestTokenize_StringLiteral(t *testing.T) {
	toks, err := Tokenize(`"stdgates.inc"`)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if len(toks) < 1 || toks[0].Kind != syntax.KindString {
		t.Fatalf("Tokenize returned %v, want a String token first", toks)
	}
	if toks[0].Text != `"stdgates.inc"` {
		t.Errorf("Text = %q, want the quotes preserved verbatim", toks[0].Text)
	}
}

func TestTokenize_UnclosedStringIsAnError(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
}

func TestTokenize_Comment(t *testing.T) {
	toks, err := Tokenize("// a comment\nx")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	got := kinds(toks)
	want := []syntax.Kind{syntax.KindComment, syntax.KindWhitespace, syntax.KindIdent}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTokenize_Offsets(t *testing.T) {
	toks, err := Tokenize("a b")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	if toks[0].Offset != 0 {
		t.Errorf("first token offset = %v, want 0", toks[0].Offset)
	}
	if toks[2].Offset != 2 {
		t.Errorf("third token offset = %v, want 2", toks[2].Offset)
	}
}

func TestTokenize_TerminatesWithKindNil(t *testing.T) {
	toks, err := Tokenize("x")
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}
	last := toks[len(toks)-1]
	if last.Kind != syntax.KindNil {
		t.Fatalf("last token kind = %v, want KindNil", last.Kind)
	}
}
