package parser

import (
	"github.com/qasm3-go/oq3cst/oerr"
	"github.com/qasm3-go/oq3cst/syntax"
)

// parseType parses one classical or quantum type, with its optional
// bracketed designator (§4.1): bit[8], int[32], uint[32], float[64],
// angle[20], bool, duration, stretch, complex[T], qubit[n], array[T, n].
func (p *Parser) parseType() {
	switch k := p.peek(0); k {
	case syntax.KindKwBit:
		p.parseSimpleType(syntax.KindBitType, true)
	case syntax.KindKwInt:
		p.parseSimpleType(syntax.KindIntType, true)
	case syntax.KindKwUint:
		p.parseSimpleType(syntax.KindUintType, true)
	case syntax.KindKwFloat:
		p.parseSimpleType(syntax.KindFloatType, true)
	case syntax.KindKwAngle:
		p.parseSimpleType(syntax.KindAngleType, true)
	case syntax.KindKwBool:
		p.parseSimpleType(syntax.KindBoolType, false)
	case syntax.KindKwDuration:
		p.parseSimpleType(syntax.KindDurationType, false)
	case syntax.KindKwStretch:
		p.parseSimpleType(syntax.KindStretchType, false)
	case syntax.KindKwQubit:
		p.parseSimpleType(syntax.KindQubitType, true)
	case syntax.KindKwComplex:
		cp := p.b.StartNode(syntax.KindComplexType)
		p.bump()
		if p.peek(0) == syntax.KindLBracket {
			p.bump()
			p.parseType()
			p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
		}
		p.b.FinishNode(cp)
	case syntax.KindKwArray:
		cp := p.b.StartNode(syntax.KindArrayType)
		p.bump()
		p.expect(syntax.KindLBracket, oerr.ErrExpectedOpenBracket)
		p.parseType()
		p.expect(syntax.KindComma, oerr.ErrExpectedExpr)
		p.parseExpr(0)
		p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
		p.b.FinishNode(cp)
	default:
		p.fail(oerr.ErrExpectedType)
	}
}

// parseSimpleType parses a type keyword with an optional `[designator]`,
// which is itself a bare expression, not a nested type.
func (p *Parser) parseSimpleType(kind syntax.Kind, allowsDesignator bool) {
	cp := p.b.StartNode(kind)
	p.bump()
	if allowsDesignator && p.peek(0) == syntax.KindLBracket {
		p.bump()
		p.parseExpr(0)
		p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
	}
	p.b.FinishNode(cp)
}
