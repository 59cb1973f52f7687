// Package lexer is a hand-rolled, rune-level tokenizer for OpenQASM 3
// source, in the idiom of the teacher's own grammar-spec scanner
// (grammar/lexical/parser/lexer.go): a small reader wrapper with a
// pushback buffer standing in for that lexer's peekChar1/peekChar2
// fields, rather than a generated DFA table (see DESIGN.md for why the
// generated-lexer path, maleeni, is not reusable here).
//
// The core packages (syntax, ast, precedence) never import this one;
// per §1's non-goal, the tree is lexer-agnostic. This package exists so
// the parser has a real token producer to drive against in tests and in
// cmd/oq3.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/qasm3-go/oq3cst/syntax"
)

// Token is one entry of the §6.2 token-stream contract: a kind, its
// exact source text, and its byte offset. Trivia tokens (Kind.IsTrivia)
// appear inline in the stream in source order; callers that build a
// tree attach them to whichever node is under construction when they
// arrive, which is what gives "trailing trivia on the last line attaches
// to the previous token" (§6.2) for free — there is no next significant
// token left to defer it to.
type Token struct {
	Kind   syntax.Kind
	Text   string
	Offset int
}

var keywords = map[string]syntax.Kind{
	"OPENQASM": syntax.KindKwOPENQASM, "def": syntax.KindKwDef, "gate": syntax.KindKwGate,
	"measure": syntax.KindKwMeasure, "barrier": syntax.KindKwBarrier, "cal": syntax.KindKwCal,
	"defcal": syntax.KindKwDefCal, "defcalgrammar": syntax.KindKwDefCalGrammar,
	"for": syntax.KindKwFor, "while": syntax.KindKwWhile, "if": syntax.KindKwIf,
	"else": syntax.KindKwElse, "return": syntax.KindKwReturn, "box": syntax.KindKwBox,
	"break": syntax.KindKwBreak, "continue": syntax.KindKwContinue, "end": syntax.KindKwEnd,
	"let": syntax.KindKwLet, "const": syntax.KindKwConst, "input": syntax.KindKwInput,
	"output": syntax.KindKwOutput, "creg": syntax.KindKwCReg, "qreg": syntax.KindKwQReg,
	"gphase": syntax.KindKwGPhase, "reset": syntax.KindKwReset, "include": syntax.KindKwInclude,
	"in": syntax.KindKwIn,
	"bit": syntax.KindKwBit, "int": syntax.KindKwInt, "uint": syntax.KindKwUint,
	"float": syntax.KindKwFloat, "angle": syntax.KindKwAngle, "bool": syntax.KindKwBool,
	"duration": syntax.KindKwDuration, "stretch": syntax.KindKwStretch,
	"complex": syntax.KindKwComplex, "qubit": syntax.KindKwQubit, "array": syntax.KindKwArray,
	"true": syntax.KindTrue, "false": syntax.KindFalse,
}

var timingUnits = []string{"dt", "ns", "us", "µs", "ms", "s"}

const nullRune = rune(-1)

// Lexer scans OQ3 source one token at a time. It holds a *bufio.Reader
// plus a small pushback queue, playing the role vartan's peekChar1/
// peekChar2 pair plays for its own lexer, generalized to arbitrary
// depth since operator tokens here run up to three runes (`>>=`).
type Lexer struct {
	src     *bufio.Reader
	pending []rune
	offset  int
}

// New wraps src for tokenizing.
func New(src io.Reader) *Lexer {
	return &Lexer{src: bufio.NewReader(src)}
}

// NewFromString is a convenience constructor over a string source.
func NewFromString(src string) *Lexer {
	return New(strings.NewReader(src))
}

func (l *Lexer) readRune() (rune, bool) {
	if n := len(l.pending); n > 0 {
		r := l.pending[0]
		l.pending = l.pending[1:]
		return r, true
	}
	r, _, err := l.src.ReadRune()
	if err != nil {
		return nullRune, false
	}
	return r, true
}

func (l *Lexer) unreadRune(r rune) {
	l.pending = append([]rune{r}, l.pending...)
}

func (l *Lexer) peekRune() (rune, bool) {
	r, ok := l.readRune()
	if ok {
		l.unreadRune(r)
	}
	return r, ok
}

// Next scans and returns the next token, including trivia. At end of
// input it returns a zero-width KindNil token.
func (l *Lexer) Next() (Token, error) {
	start := l.offset
	r, ok := l.readRune()
	if !ok {
		return Token{Kind: syntax.KindNil, Offset: start}, nil
	}
	l.offset += utf8.RuneLen(r)

	switch {
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		return l.scanWhitespace(r, start), nil
	case r == '/':
		if n, ok := l.peekRune(); ok && (n == '/' || n == '*') {
			return l.scanComment(start)
		}
		return l.scanOperator(r, start)
	case r == '"' || r == '\'':
		return l.scanString(r, start)
	case r == '$':
		return l.scanHardwareQubit(start)
	case r == '_' || unicode.IsLetter(r):
		return l.scanIdentOrKeyword(r, start)
	case unicode.IsDigit(r):
		return l.scanNumber(r, start)
	default:
		return l.scanOperator(r, start)
	}
}

func (l *Lexer) scanWhitespace(first rune, start int) Token {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			b.WriteRune(r)
			l.offset += utf8.RuneLen(r)
			continue
		}
		l.unreadRune(r)
		break
	}
	return Token{Kind: syntax.KindWhitespace, Text: b.String(), Offset: start}
}

func (l *Lexer) scanComment(start int) (Token, error) {
	var b strings.Builder
	b.WriteRune('/')
	second, _ := l.readRune()
	l.offset += utf8.RuneLen(second)
	b.WriteRune(second)
	if second == '/' {
		for {
			r, ok := l.readRune()
			if !ok || r == '\n' {
				if ok {
					l.unreadRune(r)
				}
				break
			}
			l.offset += utf8.RuneLen(r)
			b.WriteRune(r)
		}
		return Token{Kind: syntax.KindComment, Text: b.String(), Offset: start}, nil
	}
	// block comment '/* ... */'
	for {
		r, ok := l.readRune()
		if !ok {
			return Token{Kind: syntax.KindError, Text: b.String(), Offset: start},
				fmt.Errorf("lexer: unterminated block comment at offset %d", start)
		}
		l.offset += utf8.RuneLen(r)
		b.WriteRune(r)
		if r == '*' {
			if n, ok := l.peekRune(); ok && n == '/' {
				l.readRune()
				l.offset += utf8.RuneLen(n)
				b.WriteRune(n)
				break
			}
		}
	}
	return Token{Kind: syntax.KindComment, Text: b.String(), Offset: start}, nil
}

func (l *Lexer) scanString(quote rune, start int) (Token, error) {
	var b strings.Builder
	b.WriteRune(quote)
	isBitString := true
	for {
		r, ok := l.readRune()
		if !ok {
			return Token{Kind: syntax.KindError, Text: b.String(), Offset: start},
				fmt.Errorf("lexer: unterminated string literal at offset %d", start)
		}
		l.offset += utf8.RuneLen(r)
		b.WriteRune(r)
		if r == quote {
			break
		}
		if r != '0' && r != '1' {
			isBitString = false
		}
		if r == '\\' {
			esc, ok := l.readRune()
			if !ok {
				return Token{Kind: syntax.KindError, Text: b.String(), Offset: start},
					fmt.Errorf("lexer: unterminated escape sequence at offset %d", start)
			}
			l.offset += utf8.RuneLen(esc)
			b.WriteRune(esc)
			isBitString = false
		}
	}
	kind := syntax.KindString
	if isBitString && b.Len() > 2 {
		kind = syntax.KindBitString
	}
	return Token{Kind: kind, Text: b.String(), Offset: start}, nil
}

func (l *Lexer) scanHardwareQubit(start int) (Token, error) {
	var b strings.Builder
	b.WriteRune('$')
	n := 0
	for {
		r, ok := l.readRune()
		if !ok || !unicode.IsDigit(r) {
			if ok {
				l.unreadRune(r)
			}
			break
		}
		l.offset += utf8.RuneLen(r)
		b.WriteRune(r)
		n++
	}
	if n == 0 {
		return Token{Kind: syntax.KindError, Text: b.String(), Offset: start},
			fmt.Errorf("lexer: '$' not followed by digits at offset %d", start)
	}
	return Token{Kind: syntax.KindHardwareQubit, Text: b.String(), Offset: start}, nil
}

func (l *Lexer) scanIdentOrKeyword(first rune, start int) (Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	for {
		r, ok := l.readRune()
		if !ok || !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if ok {
				l.unreadRune(r)
			}
			break
		}
		l.offset += utf8.RuneLen(r)
		b.WriteRune(r)
	}
	text := b.String()
	if kind, ok := keywords[text]; ok {
		return Token{Kind: kind, Text: text, Offset: start}, nil
	}
	return Token{Kind: syntax.KindIdent, Text: text, Offset: start}, nil
}

func (l *Lexer) scanNumber(first rune, start int) (Token, error) {
	var b strings.Builder
	b.WriteRune(first)
	isFloat := false
	for {
		r, ok := l.readRune()
		if !ok {
			break
		}
		if unicode.IsDigit(r) {
			l.offset += utf8.RuneLen(r)
			b.WriteRune(r)
			continue
		}
		if r == '.' && !isFloat {
			if n, ok := l.peekRune(); !ok || !unicode.IsDigit(n) {
				l.unreadRune(r)
				break
			}
			isFloat = true
			l.offset += utf8.RuneLen(r)
			b.WriteRune(r)
			continue
		}
		l.unreadRune(r)
		break
	}
	kind := syntax.KindIntNumber
	if isFloat {
		kind = syntax.KindFloatNumber
	}
	if unit, ok := l.matchTimingUnit(); ok {
		b.WriteString(unit)
		if isFloat {
			kind = syntax.KindTimingFloatNumber
		} else {
			kind = syntax.KindTimingIntNumber
		}
	}
	return Token{Kind: kind, Text: b.String(), Offset: start}, nil
}

// matchTimingUnit greedily consumes one of the timing suffixes
// (dt, ns, us, µs, ms, s) if the upcoming runes spell one out, restoring
// everything read on a mismatch.
func (l *Lexer) matchTimingUnit() (string, bool) {
	var consumed []rune
	defer func() {
		for i := len(consumed) - 1; i >= 0; i-- {
			l.unreadRune(consumed[i])
			l.offset -= utf8.RuneLen(consumed[i])
		}
	}()
	read := func() (rune, bool) {
		r, ok := l.readRune()
		if ok {
			consumed = append(consumed, r)
			l.offset += utf8.RuneLen(r)
		}
		return r, ok
	}
	for _, unit := range timingUnits {
		runes := []rune(unit)
		ok := true
		for i, want := range runes {
			var got rune
			var readOK bool
			if i < len(consumed) {
				got = consumed[i]
				readOK = true
			} else {
				got, readOK = read()
			}
			if !readOK || got != want {
				ok = false
				break
			}
		}
		if ok && len(consumed) == len(runes) {
			matched := string(consumed)
			consumed = nil
			return matched, true
		}
	}
	return "", false
}

type opRule struct {
	text string
	kind syntax.Kind
}

// operatorsByLength buckets every operator and delimiter by its length in
// runes (the slice index), so the scanner can try 3, then 2, then 1.
var operatorsByLength = [][]opRule{
	nil,
	{
		{"(", syntax.KindLParen}, {")", syntax.KindRParen},
		{"{", syntax.KindLBrace}, {"}", syntax.KindRBrace},
		{"[", syntax.KindLBracket}, {"]", syntax.KindRBracket},
		{",", syntax.KindComma}, {";", syntax.KindSemicolon},
		{":", syntax.KindColon}, {"@", syntax.KindAt},
		{"=", syntax.KindEq}, {"<", syntax.KindLt}, {">", syntax.KindGt},
		{"|", syntax.KindPipe}, {"^", syntax.KindCaret}, {"&", syntax.KindAmp},
		{"+", syntax.KindPlus}, {"-", syntax.KindMinus},
		{"*", syntax.KindStar}, {"/", syntax.KindSlash}, {"%", syntax.KindPercent},
	},
	{
		{"::", syntax.KindColonColon}, {"->", syntax.KindArrow},
		{"==", syntax.KindEqEq}, {"!=", syntax.KindNotEq},
		{"<=", syntax.KindLtEq}, {">=", syntax.KindGtEq},
		{"||", syntax.KindPipePipe}, {"&&", syntax.KindAmpAmp},
		{"<<", syntax.KindShl}, {">>", syntax.KindShr},
		{"++", syntax.KindPlusPlus},
		{"+=", syntax.KindPlusEq}, {"-=", syntax.KindMinusEq},
		{"*=", syntax.KindStarEq}, {"/=", syntax.KindSlashEq},
		{"%=", syntax.KindPercentEq}, {"&=", syntax.KindAmpEq},
		{"|=", syntax.KindPipeEq}, {"^=", syntax.KindCaretEq},
	},
	{
		{"<<=", syntax.KindShlEq}, {">>=", syntax.KindShrEq},
	},
}

func (l *Lexer) scanOperator(first rune, start int) (Token, error) {
	runes := []rune{first}
	for len(runes) < 3 {
		r, ok := l.readRune()
		if !ok {
			break
		}
		l.offset += utf8.RuneLen(r)
		runes = append(runes, r)
	}
	for length := len(runes); length >= 1; length-- {
		candidate := string(runes[:length])
		for _, rule := range operatorsByLength[length] {
			if rule.text == candidate {
				for i := len(runes) - 1; i >= length; i-- {
					l.unreadRune(runes[i])
					l.offset -= utf8.RuneLen(runes[i])
				}
				return Token{Kind: rule.kind, Text: candidate, Offset: start}, nil
			}
		}
	}
	for i := len(runes) - 1; i >= 1; i-- {
		l.unreadRune(runes[i])
		l.offset -= utf8.RuneLen(runes[i])
	}
	return Token{Kind: syntax.KindError, Text: string(first), Offset: start},
		fmt.Errorf("lexer: unrecognized character %q at offset %d", first, start)
}

// Tokenize scans src to completion and returns every token, trivia
// included, ending with the zero-width KindNil token. On a lexical error
// it returns the tokens scanned before the failing one, and the error.
func Tokenize(src string) ([]Token, error) {
	l := NewFromString(src)
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return out, err
		}
		if tok.Kind == syntax.KindNil {
			return append(out, tok), nil
		}
		out = append(out, tok)
	}
}
