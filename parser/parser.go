// Package parser is the concrete Pratt/recursive-descent driver for OQ3
// source (§4.6): it turns a token stream into a green tree via
// syntax.Builder, using the precedence package's binding-power table to
// resolve expressions.
//
// Structured the way the teacher's own hand-written grammar-file parser
// is (spec/grammar/parser/parser.go, grammar/lexical/parser/parser.go):
// a parser struct holding a token source and a buffer of lookahead tokens,
// productions that panic an *oerr.SpecError on malformed input, and a
// defer/recover wrapper around each top-level item that appends the
// error and resynchronizes at the next statement boundary, rather than
// aborting the whole parse.
package parser

import (
	"github.com/qasm3-go/oq3cst/lexer"
	"github.com/qasm3-go/oq3cst/oerr"
	"github.com/qasm3-go/oq3cst/precedence"
	"github.com/qasm3-go/oq3cst/syntax"
)

// TokenSource is the contract a token producer must satisfy (§4.6): a
// stream of lexer.Tokens, trivia included, terminated by a zero-width
// token of KindNil. package lexer.Lexer satisfies this directly, but the
// parser never names that type, so any other tokenizer can stand in.
type TokenSource interface {
	Next() (lexer.Token, error)
}

// Parser drives one parse of a token stream into a *syntax.GreenNode.
type Parser struct {
	src       TokenSource
	b         *syntax.Builder
	lookahead []lexer.Token
	leading   [][]lexer.Token // trivia/error tokens read before each lookahead entry, not yet in the tree
	lastTok   lexer.Token
	errs      oerr.Errors
	// line/col track the position just past the last token read from src
	// (lookahead included), for error messages.
	line, col int
}

// New returns a Parser consuming tokens from src.
func New(src TokenSource) *Parser {
	return &Parser{src: src, b: syntax.NewBuilder(), line: 1, col: 1}
}

// NewFromString is a convenience constructor over the default lexer.
func NewFromString(src string) *Parser {
	return New(lexer.NewFromString(src))
}

// Parse runs the parser to completion, returning the root green node and
// any accumulated errors. The returned tree always covers the entire
// input (§7): a non-nil error does not mean parsing stopped early.
func Parse(src string) (*syntax.GreenNode, error) {
	p := NewFromString(src)
	return p.ParseRoot()
}

// ParseRoot parses an entire OQ3 file: an optional VersionString followed
// by a sequence of items, until end of input.
func (p *Parser) ParseRoot() (*syntax.GreenNode, error) {
	cp := p.b.StartNode(syntax.KindRoot)
	for p.peek(0) != syntax.KindNil {
		p.parseItemRecovering()
	}
	p.b.FinishNode(cp)
	root := p.b.Finish()
	if len(p.errs) > 0 {
		return root, p.errs
	}
	return root, nil
}

// parseItemRecovering parses one top-level item, catching any panic
// raised by a production and resynchronizing at the next statement
// boundary, mirroring vartan's parseRoot/parseTopLevelDirective recover
// pattern. A production that panics after opening one or more of its own
// builder frames (the common case: any structural error past the very
// first token) would otherwise leave those frames open forever, so the
// depth is snapshotted up front and forced back to it before resync runs
// — resync assumes it is pushing into the frame this item started with.
func (p *Parser) parseItemRecovering() {
	depth := p.b.Depth()
	defer func() {
		if r := recover(); r != nil {
			specErr, ok := r.(*oerr.SpecError)
			if !ok {
				panic(r)
			}
			p.errs = append(p.errs, specErr)
			p.b.UnwindTo(depth)
			p.resync()
		}
	}()
	p.parseItem()
}

// resync skips tokens until a statement terminator, a closing brace, or
// a keyword that begins a new top-level item, the same skip-to-sync-
// point idiom as vartan's skipOverTo.
func (p *Parser) resync() {
	for {
		k := p.peek(0)
		if k == syntax.KindNil {
			return
		}
		if isItemStart(k) {
			return
		}
		// bump itself pushes the token; the ERROR node is opened around it
		// so the skipped token appears once.
		cp := p.b.StartNode(syntax.KindError)
		p.bump()
		p.b.FinishNode(cp)
		if k == syntax.KindSemicolon || k == syntax.KindRBrace {
			return
		}
	}
}

func isItemStart(k syntax.Kind) bool {
	switch k {
	case syntax.KindKwOPENQASM, syntax.KindKwDef, syntax.KindKwGate, syntax.KindKwDefCal,
		syntax.KindKwCal, syntax.KindKwDefCalGrammar, syntax.KindKwFor, syntax.KindKwIf,
		syntax.KindKwWhile, syntax.KindKwReset, syntax.KindKwMeasure, syntax.KindKwBarrier,
		syntax.KindKwInclude, syntax.KindKwLet, syntax.KindKwBreak, syntax.KindKwContinue,
		syntax.KindKwEnd, syntax.KindKwGPhase, syntax.KindKwConst, syntax.KindKwInput,
		syntax.KindKwOutput, syntax.KindKwCReg, syntax.KindKwQReg:
		return true
	default:
		return isTypeKeyword(k)
	}
}

// --- token source plumbing -------------------------------------------

// fill ensures p.lookahead has at least n+1 significant (non-trivia)
// tokens buffered, pulling trivia tokens straight into the builder as it
// encounters them (§6.2: trivia attaches to the following significant
// token simply by being pushed into the tree immediately before it).
func (p *Parser) fill(n int) {
	for len(p.lookahead) <= n {
		p.leading = append(p.leading, nil)
		tok := p.nextSignificant()
		p.lookahead = append(p.lookahead, tok)
	}
	for _, t := range p.leading[0] {
		if t.Kind.IsTrivia() {
			p.b.Token(t.Kind, t.Text)
		} else {
			p.b.Error(t.Kind, t.Text)
		}
	}
	p.leading[0] = nil
}

func (p *Parser) nextSignificant() lexer.Token {
	for {
		tok, err := p.src.Next()
		if err != nil {
			p.errs = append(p.errs, &oerr.SpecError{Cause: err, Row: p.line, Col: p.col})
			// The lexer still reports the exact bytes it consumed for the
			// failed token (§7: "unrecognized character -> an error token
			// carrying the offending text"); push them into the tree as an
			// ERROR node rather than discarding them, the same contract
			// resync() honors for structural errors.
			p.advancePos(tok.Text)
			p.leading[len(p.leading)-1] = append(p.leading[len(p.leading)-1], tok)
			continue
		}
		if tok.Kind == syntax.KindNil {
			return tok
		}
		p.advancePos(tok.Text)
		if tok.Kind.IsTrivia() {
			p.leading[len(p.leading)-1] = append(p.leading[len(p.leading)-1], tok)
			continue
		}
		return tok
	}
}

func (p *Parser) advancePos(text string) {
	for _, r := range text {
		if r == '\n' {
			p.line++
			p.col = 1
		} else {
			p.col++
		}
	}
}

// peek returns the kind of the n-th upcoming significant token (0 =
// next).
func (p *Parser) peek(n int) syntax.Kind {
	p.fill(n)
	return p.lookahead[n].Kind
}

func (p *Parser) peekTok(n int) lexer.Token {
	p.fill(n)
	return p.lookahead[n]
}

// bump consumes the next significant token, pushing it into the green
// tree as a child of whatever node is currently open, and returns it.
func (p *Parser) bump() lexer.Token {
	p.fill(0)
	tok := p.lookahead[0]
	p.lookahead = p.lookahead[1:]
	p.leading = p.leading[1:]
	p.lastTok = tok
	if tok.Kind != syntax.KindNil {
		p.b.Token(tok.Kind, tok.Text)
	}
	return tok
}

// expect bumps the next token if it has kind k, or raises a structural
// SyntaxError naming expected.
func (p *Parser) expect(k syntax.Kind, expected *oerr.SyntaxError) lexer.Token {
	if p.peek(0) != k {
		p.fail(expected)
	}
	return p.bump()
}

func (p *Parser) fail(cause *oerr.SyntaxError) {
	panic(&oerr.SpecError{Cause: cause, Row: p.line, Col: p.col, Detail: p.peekTok(0).Text})
}

// bindingPowerOf looks up the infix/range binding power of the upcoming
// token, or (0, false) if it does not start an infix operator.
func bindingPowerOf(k syntax.Kind) (precedence.Power, bool) {
	if k == syntax.KindColon {
		return precedence.Power{Left: 5, Right: 5}, true
	}
	if precedence.IsBinaryOperator(k) {
		return precedence.OperatorPower(k), true
	}
	return precedence.Power{}, false
}
