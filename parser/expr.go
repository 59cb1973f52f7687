package parser

import (
	"github.com/qasm3-go/oq3cst/oerr"
	"github.com/qasm3-go/oq3cst/syntax"
)

// parseExpr is the Pratt loop of §4.6: parse one primary (or prefix)
// expression, then repeatedly fold in postfix and infix operators whose
// left binding power is at least minRight, left-associating by default
// since each fold lowers the remaining minRight to the operator's own
// right power.
//
// mark is taken before the primary is parsed so that, once an operator
// reveals a wrapper is needed, StartNodeAt can retroactively promote the
// already-built left operand into the new node's first child — the one
// maneuver a plain recursive-descent parser never needs and a Pratt one
// always does.
func (p *Parser) parseExpr(minRight int) {
	mark := p.b.Mark()
	atomKind := p.parsePrimary()

	for {
		k := p.peek(0)
		switch {
		case k == syntax.KindLParen:
			if 29 < minRight {
				return
			}
			cp := p.b.StartNodeAt(syntax.KindCallExpr, mark)
			p.parseArgList()
			p.b.FinishNode(cp)
			atomKind = syntax.KindCallExpr

		case k == syntax.KindLBracket:
			if 29 < minRight {
				return
			}
			wrapKind := syntax.KindIndexExpr
			if atomKind == syntax.KindIdentifier {
				wrapKind = syntax.KindIndexedIdentifier
			}
			cp := p.b.StartNodeAt(wrapKind, mark)
			p.bump()
			p.parseIndexList()
			p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
			p.b.FinishNode(cp)
			atomKind = wrapKind

		case k == syntax.KindColon:
			if 5 < minRight {
				return
			}
			cp := p.b.StartNodeAt(syntax.KindRangeExpr, mark)
			p.bump()
			if canStartExpr(p.peek(0)) {
				p.parseExpr(6)
			}
			if p.peek(0) == syntax.KindColon {
				p.bump()
				if canStartExpr(p.peek(0)) {
					p.parseExpr(6)
				}
			}
			p.b.FinishNode(cp)
			atomKind = syntax.KindRangeExpr

		default:
			pw, ok := bindingPowerOf(k)
			if !ok || pw.Left < minRight {
				return
			}
			cp := p.b.StartNodeAt(syntax.KindBinExpr, mark)
			p.bump()
			p.parseExpr(pw.Right)
			p.b.FinishNode(cp)
			atomKind = syntax.KindBinExpr
		}
	}
}

// canStartExpr reports whether k can begin parsePrimary, used to decide
// whether an optional expression (a range operand, a return value, a box
// designator) is actually present.
func canStartExpr(k syntax.Kind) bool {
	switch k {
	case syntax.KindIdent, syntax.KindIntNumber, syntax.KindFloatNumber,
		syntax.KindTimingIntNumber, syntax.KindTimingFloatNumber, syntax.KindString,
		syntax.KindBitString, syntax.KindTrue, syntax.KindFalse, syntax.KindHardwareQubit,
		syntax.KindLParen, syntax.KindLBrace,
		syntax.KindKwReturn, syntax.KindKwBreak, syntax.KindKwContinue, syntax.KindKwBox,
		syntax.KindKwIf, syntax.KindKwWhile, syntax.KindKwFor, syntax.KindKwMeasure:
		return true
	default:
		return isTypeKeyword(k)
	}
}

func isTypeKeyword(k syntax.Kind) bool {
	switch k {
	case syntax.KindKwBit, syntax.KindKwInt, syntax.KindKwUint, syntax.KindKwFloat,
		syntax.KindKwAngle, syntax.KindKwBool, syntax.KindKwDuration, syntax.KindKwStretch,
		syntax.KindKwComplex, syntax.KindKwQubit, syntax.KindKwArray:
		return true
	default:
		return false
	}
}

// parsePrimary parses one atomic or prefix expression — everything
// parseExpr's postfix/infix loop does not itself handle — and returns
// the node kind it built, so the caller can decide whether a following
// '[' should build an IndexedIdentifier (base is a bare Identifier) or
// the general IndexExpr.
func (p *Parser) parsePrimary() syntax.Kind {
	switch k := p.peek(0); {
	case k == syntax.KindIdent:
		cp := p.b.StartNode(syntax.KindIdentifier)
		p.bump()
		p.b.FinishNode(cp)
		return syntax.KindIdentifier

	case k.IsLiteral():
		cp := p.b.StartNode(syntax.KindLiteral)
		p.bump()
		p.b.FinishNode(cp)
		return syntax.KindLiteral

	case k == syntax.KindHardwareQubit:
		cp := p.b.StartNode(syntax.KindHardwareQubitExpr)
		p.bump()
		p.b.FinishNode(cp)
		return syntax.KindHardwareQubitExpr

	case k == syntax.KindLParen:
		cp := p.b.StartNode(syntax.KindParenExpr)
		p.bump()
		p.parseExpr(0)
		p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
		p.b.FinishNode(cp)
		return syntax.KindParenExpr

	case k == syntax.KindLBrace:
		cp := p.b.StartNode(syntax.KindArrayLiteral)
		p.bump()
		p.parseExprCommaList(syntax.KindRBrace)
		p.expect(syntax.KindRBrace, oerr.ErrExpectedCloseBrace)
		p.b.FinishNode(cp)
		return syntax.KindArrayLiteral

	case k == syntax.KindKwReturn:
		cp := p.b.StartNode(syntax.KindReturnExpr)
		p.bump()
		if canStartExpr(p.peek(0)) {
			p.parseExpr(1)
		}
		p.b.FinishNode(cp)
		return syntax.KindReturnExpr

	case k == syntax.KindKwBreak:
		cp := p.b.StartNode(syntax.KindBreakExpr)
		p.bump()
		if canStartExpr(p.peek(0)) {
			p.parseExpr(1)
		}
		p.b.FinishNode(cp)
		return syntax.KindBreakExpr

	case k == syntax.KindKwContinue:
		cp := p.b.StartNode(syntax.KindContinueExpr)
		p.bump()
		p.b.FinishNode(cp)
		return syntax.KindContinueExpr

	case k == syntax.KindKwBox:
		cp := p.b.StartNode(syntax.KindBoxExpr)
		p.bump()
		if p.peek(0) != syntax.KindLBrace {
			p.parseExpr(1)
		}
		p.parseBlock()
		p.b.FinishNode(cp)
		return syntax.KindBoxExpr

	case k == syntax.KindKwIf:
		return p.parseIfExpr()

	case k == syntax.KindKwWhile:
		cp := p.b.StartNode(syntax.KindWhileExpr)
		p.bump()
		p.expect(syntax.KindLParen, oerr.ErrExpectedOpenParen)
		p.parseExpr(0)
		p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
		p.parseBlock()
		p.b.FinishNode(cp)
		return syntax.KindWhileExpr

	case k == syntax.KindKwFor:
		cp := p.b.StartNode(syntax.KindForExpr)
		p.bump()
		loopVar := p.b.StartNode(syntax.KindIdentifier)
		p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
		p.b.FinishNode(loopVar)
		p.expect(syntax.KindKwIn, oerr.ErrExpectedExpr)
		p.parseExpr(0)
		p.parseBlock()
		p.b.FinishNode(cp)
		return syntax.KindForExpr

	case k == syntax.KindKwMeasure:
		cp := p.b.StartNode(syntax.KindMeasureExpression)
		p.bump()
		p.parseGateOperand()
		p.b.FinishNode(cp)
		return syntax.KindMeasureExpression

	case isTypeKeyword(k):
		cp := p.b.StartNode(syntax.KindCastExpression)
		p.parseType()
		p.expect(syntax.KindLParen, oerr.ErrExpectedOpenParen)
		p.parseExpr(0)
		p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
		p.b.FinishNode(cp)
		return syntax.KindCastExpression

	default:
		p.fail(oerr.ErrExpectedExpr)
		panic("unreachable")
	}
}

// parseIfExpr parses `if (cond) block (else (block | if-expr))?` as an
// IfExpr node. It is shared by parsePrimary's expression-position entry
// point and, at the statement level, an `else if` chain under IfStmt —
// both want the identical nested shape (§9).
func (p *Parser) parseIfExpr() syntax.Kind {
	cp := p.b.StartNode(syntax.KindIfExpr)
	p.bump()
	p.expect(syntax.KindLParen, oerr.ErrExpectedOpenParen)
	p.parseExpr(0)
	p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
	p.parseBlock()
	if p.peek(0) == syntax.KindKwElse {
		p.bump()
		if p.peek(0) == syntax.KindKwIf {
			p.parseIfExpr()
		} else {
			p.parseBlock()
		}
	}
	p.b.FinishNode(cp)
	return syntax.KindIfExpr
}

// parseExprCommaList parses zero or more comma-separated expressions up
// to (but not including) the closer token, used by ArgList, ArrayLiteral
// and SetExpr bodies.
func (p *Parser) parseExprCommaList(closer syntax.Kind) {
	if p.peek(0) == closer {
		return
	}
	for {
		p.parseExpr(0)
		if p.peek(0) == syntax.KindComma {
			p.bump()
			if p.peek(0) == closer {
				break
			}
			continue
		}
		break
	}
}

// parseArgList parses a parenthesized, comma-separated expression list
// into an ArgList node: `(arg, arg, ...)`.
func (p *Parser) parseArgList() {
	p.expect(syntax.KindLParen, oerr.ErrExpectedOpenParen)
	cp := p.b.StartNode(syntax.KindArgList)
	p.parseExprCommaList(syntax.KindRParen)
	p.b.FinishNode(cp)
	p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
}

// parseIndexList parses one or more comma-separated IndexKind members
// inside `[...]`: a bare Expr, a RangeExpr, or a SetExpr.
func (p *Parser) parseIndexList() {
	for {
		p.parseIndexKind()
		if p.peek(0) == syntax.KindComma {
			p.bump()
			continue
		}
		break
	}
}

func (p *Parser) parseIndexKind() {
	if p.peek(0) == syntax.KindLBrace {
		cp := p.b.StartNode(syntax.KindSetExpr)
		p.bump()
		p.parseExprCommaList(syntax.KindRBrace)
		p.expect(syntax.KindRBrace, oerr.ErrExpectedCloseBrace)
		p.b.FinishNode(cp)
		return
	}
	if p.peek(0) == syntax.KindColon {
		// A leading bare ':' (e.g. "a[:]") has no start operand: build the
		// RangeExpr directly rather than going through parseExpr, which
		// requires a primary to open its Mark against.
		cp := p.b.StartNode(syntax.KindRangeExpr)
		p.bump()
		if canStartExpr(p.peek(0)) {
			p.parseExpr(6)
		}
		if p.peek(0) == syntax.KindColon {
			p.bump()
			if canStartExpr(p.peek(0)) {
				p.parseExpr(6)
			}
		}
		p.b.FinishNode(cp)
		return
	}
	p.parseExpr(0)
}

// parseGateOperand parses one qubit-operand-position expression: a plain
// identifier (optionally indexed, producing IndexedIdentifier) or a
// hardware qubit.
func (p *Parser) parseGateOperand() {
	if p.peek(0) == syntax.KindHardwareQubit {
		cp := p.b.StartNode(syntax.KindHardwareQubitExpr)
		p.bump()
		p.b.FinishNode(cp)
		return
	}
	mark := p.b.Mark()
	idCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(idCp)
	if p.peek(0) == syntax.KindLBracket {
		cp := p.b.StartNodeAt(syntax.KindIndexedIdentifier, mark)
		p.bump()
		p.parseIndexList()
		p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
		p.b.FinishNode(cp)
	}
}

// parseQubitList parses a comma-separated list of gate operands with no
// enclosing delimiter, terminated by whatever the caller checks for next
// (';' for a gate call or gphase statement).
func (p *Parser) parseQubitList() {
	cp := p.b.StartNode(syntax.KindQubitList)
	for {
		p.parseGateOperand()
		if p.peek(0) == syntax.KindComma {
			p.bump()
			continue
		}
		break
	}
	p.b.FinishNode(cp)
}

// parseBlock parses a `{ stmt* }` block.
func (p *Parser) parseBlock() {
	cp := p.b.StartNode(syntax.KindBlockExpr)
	p.expect(syntax.KindLBrace, oerr.ErrExpectedOpenBrace)
	for p.peek(0) != syntax.KindRBrace && p.peek(0) != syntax.KindNil {
		p.parseItemRecovering()
	}
	p.expect(syntax.KindRBrace, oerr.ErrExpectedCloseBrace)
	p.b.FinishNode(cp)
}
