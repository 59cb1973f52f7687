package parser

import (
	"github.com/qasm3-go/oq3cst/oerr"
	"github.com/qasm3-go/oq3cst/syntax"
)

// parseItem parses exactly one item (§4.1): either a top-level
// declaration/directive or, inside a block, a statement. Dispatch is by
// the next token's kind; ident-led statements need extra lookahead to
// tell a gate call, an assignment, and a bare expression statement apart
// (§9).
func (p *Parser) parseItem() {
	switch k := p.peek(0); k {
	case syntax.KindKwOPENQASM:
		p.parseVersionString()
	case syntax.KindKwDef:
		p.parseDef()
	case syntax.KindKwGate:
		p.parseGate()
	case syntax.KindKwDefCal:
		p.parseDefCal()
	case syntax.KindKwCal:
		p.parseCal()
	case syntax.KindKwDefCalGrammar:
		p.parseDefCalGrammar()
	case syntax.KindKwInclude:
		p.parseInclude()
	case syntax.KindKwFor:
		p.parseForStmt()
	case syntax.KindKwIf:
		p.parseIfStmt()
	case syntax.KindKwWhile:
		p.parseWhileStmt()
	case syntax.KindKwReset:
		p.parseReset()
	case syntax.KindKwMeasure:
		p.parseMeasureStmt()
	case syntax.KindKwBarrier:
		p.parseBarrier()
	case syntax.KindKwLet:
		p.parseLetStmt()
	case syntax.KindKwBreak:
		p.parseBreakStmt()
	case syntax.KindKwContinue:
		p.parseContinueStmt()
	case syntax.KindKwEnd:
		p.parseEndStmt()
	case syntax.KindKwGPhase:
		p.parseGPhaseCallStmt()
	case syntax.KindKwConst, syntax.KindKwInput, syntax.KindKwOutput,
		syntax.KindKwCReg, syntax.KindKwQReg:
		p.parseClassicalOrQuantumDecl()
	case syntax.KindIdent:
		p.parseIdentLedItem()
	default:
		if isTypeKeyword(k) {
			p.parseClassicalOrQuantumDecl()
			return
		}
		p.fail(oerr.ErrUnexpectedToken)
	}
}

// parseVersionString parses the file header `OPENQASM 3.0;` / `3.1;`.
func (p *Parser) parseVersionString() {
	cp := p.b.StartNode(syntax.KindVersionString)
	p.bump()
	if p.peek(0) == syntax.KindFloatNumber || p.peek(0) == syntax.KindIntNumber {
		p.bump()
	} else {
		p.fail(oerr.ErrExpectedExpr)
	}
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseTypedParamList parses a comma-separated `(type? name)*` list: the
// shape Def's parameters and DefCal's angle parameters share. The caller
// has already consumed the opening '('.
func (p *Parser) parseTypedParamList() {
	cp := p.b.StartNode(syntax.KindParamList)
	if p.peek(0) != syntax.KindRParen {
		for {
			if isTypeKeyword(p.peek(0)) {
				p.parseType()
			}
			idCp := p.b.StartNode(syntax.KindIdentifier)
			p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
			p.b.FinishNode(idCp)
			if p.peek(0) == syntax.KindComma {
				p.bump()
				continue
			}
			break
		}
	}
	p.b.FinishNode(cp)
}

// parseBareIdentListAs parses a comma-separated list of bare identifiers
// with no enclosing delimiter, wrapped in a node of the given kind:
// Gate's qubit_args (ParamList) or DefCal's qubit_args (QubitList).
func (p *Parser) parseBareIdentListAs(kind syntax.Kind) {
	cp := p.b.StartNode(kind)
	for p.peek(0) == syntax.KindIdent {
		idCp := p.b.StartNode(syntax.KindIdentifier)
		p.bump()
		p.b.FinishNode(idCp)
		if p.peek(0) == syntax.KindComma {
			p.bump()
			continue
		}
		break
	}
	p.b.FinishNode(cp)
}

// parseOpaqueBlock parses a brace-delimited block whose content is not
// OQ3 statement grammar — a Cal/DefCal body, which holds pulse-grammar
// text interpreted per whatever DefCalGrammar named (§9, out of core
// scope) — by balancing braces and taking every token as-is rather than
// parsing statements from it.
func (p *Parser) parseOpaqueBlock() {
	cp := p.b.StartNode(syntax.KindBlockExpr)
	p.expect(syntax.KindLBrace, oerr.ErrExpectedOpenBrace)
	depth := 1
	for depth > 0 {
		k := p.peek(0)
		if k == syntax.KindNil {
			break
		}
		if k == syntax.KindLBrace {
			depth++
		}
		if k == syntax.KindRBrace {
			depth--
			if depth == 0 {
				break
			}
		}
		p.bump()
	}
	p.expect(syntax.KindRBrace, oerr.ErrExpectedCloseBrace)
	p.b.FinishNode(cp)
}

// parseDef parses `def name(params) -> returnType? { body }`.
func (p *Parser) parseDef() {
	cp := p.b.StartNode(syntax.KindDef)
	p.bump()
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(nameCp)
	p.expect(syntax.KindLParen, oerr.ErrExpectedOpenParen)
	p.parseTypedParamList()
	p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
	if p.peek(0) == syntax.KindArrow {
		p.bump()
		p.parseType()
	}
	p.parseBlock()
	p.b.FinishNode(cp)
}

// parseGate parses `gate name(angle_params)? qubit_args { body }`.
// angle_params always produces a ParamList child, possibly empty, so
// Gate's two ParamList children stay positionally distinguishable even
// when the source omits the parens entirely (§8 scenario 3).
func (p *Parser) parseGate() {
	cp := p.b.StartNode(syntax.KindGate)
	p.bump()
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(nameCp)
	if p.peek(0) == syntax.KindLParen {
		p.bump()
		p.parseBareIdentListAs(syntax.KindParamList)
		p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
	} else {
		empty := p.b.StartNode(syntax.KindParamList)
		p.b.FinishNode(empty)
	}
	p.parseBareIdentListAs(syntax.KindParamList)
	p.parseBlock()
	p.b.FinishNode(cp)
}

// parseDefCal parses `defcal name(angle_params)? qubit_args -> returnType? { body }`.
// Unlike Gate, DefCal's qubit_args is a QubitList child (manual.go),
// and its body is opaque pulse-grammar text.
func (p *Parser) parseDefCal() {
	cp := p.b.StartNode(syntax.KindDefCal)
	p.bump()
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(nameCp)
	if p.peek(0) == syntax.KindLParen {
		p.bump()
		p.parseTypedParamList()
		p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
	} else {
		empty := p.b.StartNode(syntax.KindParamList)
		p.b.FinishNode(empty)
	}
	p.parseBareIdentListAs(syntax.KindQubitList)
	if p.peek(0) == syntax.KindArrow {
		p.bump()
		p.parseType()
	}
	p.parseOpaqueBlock()
	p.b.FinishNode(cp)
}

// parseCal parses `cal { ... }`.
func (p *Parser) parseCal() {
	cp := p.b.StartNode(syntax.KindCal)
	p.bump()
	p.parseOpaqueBlock()
	p.b.FinishNode(cp)
}

// parseDefCalGrammar parses `defcalgrammar "name";`.
func (p *Parser) parseDefCalGrammar() {
	cp := p.b.StartNode(syntax.KindDefCalGrammar)
	p.bump()
	p.expect(syntax.KindString, oerr.ErrExpectedExpr)
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseInclude parses `include "file.qasm";`.
func (p *Parser) parseInclude() {
	cp := p.b.StartNode(syntax.KindInclude)
	p.bump()
	p.expect(syntax.KindString, oerr.ErrExpectedExpr)
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseForStmt parses `for type? name in iterable body`.
func (p *Parser) parseForStmt() {
	cp := p.b.StartNode(syntax.KindForStmt)
	p.bump()
	if isTypeKeyword(p.peek(0)) {
		p.parseType()
	}
	idCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(idCp)
	p.expect(syntax.KindKwIn, oerr.ErrExpectedExpr)
	p.parseExpr(0)
	p.parseBlock()
	p.b.FinishNode(cp)
}

// parseIfStmt parses `if (cond) { then } (else ({ else } | if ...))?`.
// The else-if chain is a nested IfExpr, mirroring IfExpr's own Else
// (§9, ast.IfStmt.Else doc comment).
func (p *Parser) parseIfStmt() {
	cp := p.b.StartNode(syntax.KindIfStmt)
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
}

// parseWhileStmt parses `while (cond) body`.
func (p *Parser) parseWhileStmt() {
	cp := p.b.StartNode(syntax.KindWhileStmt)
	p.bump()
	p.expect(syntax.KindLParen, oerr.ErrExpectedOpenParen)
	p.parseExpr(0)
	p.expect(syntax.KindRParen, oerr.ErrExpectedCloseParen)
	p.parseBlock()
	p.b.FinishNode(cp)
}

// parseReset parses `reset operand;`.
func (p *Parser) parseReset() {
	cp := p.b.StartNode(syntax.KindReset)
	p.bump()
	p.parseGateOperand()
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseMeasureStmt parses the statement-position `measure operand (->
// target)?;`. Per §8 scenario 4 the Measure node's range ends at operand;
// an arrow target, if present, is consumed as trailing tokens of the
// enclosing statement rather than modeled by a dedicated field (out of
// core scope).
func (p *Parser) parseMeasureStmt() {
	cp := p.b.StartNode(syntax.KindMeasure)
	p.bump()
	p.parseGateOperand()
	p.b.FinishNode(cp)
	if p.peek(0) == syntax.KindArrow {
		p.bump()
		p.parseGateOperand()
	}
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
}

// parseBarrier parses `barrier operands?;`.
func (p *Parser) parseBarrier() {
	cp := p.b.StartNode(syntax.KindBarrier)
	p.bump()
	if p.peek(0) == syntax.KindIdent || p.peek(0) == syntax.KindHardwareQubit {
		for {
			p.parseGateOperand()
			if p.peek(0) == syntax.KindComma {
				p.bump()
				continue
			}
			break
		}
	}
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseLetStmt parses `let name = value;`.
func (p *Parser) parseLetStmt() {
	cp := p.b.StartNode(syntax.KindLetStmt)
	p.bump()
	idCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(idCp)
	p.expect(syntax.KindEq, oerr.ErrExpectedExpr)
	p.parseExpr(0)
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseBreakStmt, parseContinueStmt, parseEndStmt parse their nullary
// keyword-plus-semicolon statements. EndStmt is parsed against the 'end'
// keyword, not the 'break' keyword the grammar's literal text names for
// it — see DESIGN.md: as written that text collides with BreakStmt's own
// production, so the two would never be distinguishable by lookahead.
func (p *Parser) parseBreakStmt() {
	cp := p.b.StartNode(syntax.KindBreakStmt)
	p.bump()
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

func (p *Parser) parseContinueStmt() {
	cp := p.b.StartNode(syntax.KindContinueStmt)
	p.bump()
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

func (p *Parser) parseEndStmt() {
	cp := p.b.StartNode(syntax.KindEndStmt)
	p.bump()
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseGPhaseCallStmt parses `gphase(angle) operands?;`.
func (p *Parser) parseGPhaseCallStmt() {
	cp := p.b.StartNode(syntax.KindGPhaseCallStmt)
	p.bump()
	if p.peek(0) == syntax.KindLParen {
		p.parseArgList()
	}
	if p.peek(0) == syntax.KindIdent || p.peek(0) == syntax.KindHardwareQubit {
		p.parseQubitList()
	}
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseClassicalOrQuantumDecl parses a classical or quantum variable
// declaration, covering both OQ3's type-keyword forms and the legacy
// OpenQASM 2 `creg`/`qreg` register forms.
func (p *Parser) parseClassicalOrQuantumDecl() {
	if p.peek(0) == syntax.KindKwQubit || p.peek(0) == syntax.KindKwQReg {
		p.parseQuantumDecl()
		return
	}
	cp := p.b.StartNode(syntax.KindClassicalDeclarationStatement)
	switch p.peek(0) {
	case syntax.KindKwConst, syntax.KindKwInput, syntax.KindKwOutput:
		p.bump()
	}
	legacy := false
	if p.peek(0) == syntax.KindKwCReg {
		legacy = true
		typeCp := p.b.StartNode(syntax.KindBitType)
		p.bump()
		if p.peek(0) == syntax.KindLBracket {
			p.bump()
			p.parseExpr(0)
			p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
		}
		p.b.FinishNode(typeCp)
	} else {
		p.parseType()
	}
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(nameCp)
	// `creg c[2];` puts the size after the name; it stays a child of the
	// statement, after the Identifier.
	if legacy && p.peek(0) == syntax.KindLBracket {
		p.bump()
		p.parseExpr(0)
		p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
	}
	if p.peek(0) == syntax.KindEq {
		p.bump()
		p.parseExpr(0)
	}
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

func (p *Parser) parseQuantumDecl() {
	cp := p.b.StartNode(syntax.KindQuantumDeclarationStatement)
	typeCp := p.b.StartNode(syntax.KindQubitType)
	legacy := p.peek(0) == syntax.KindKwQReg
	p.bump()
	if p.peek(0) == syntax.KindLBracket {
		p.bump()
		p.parseExpr(0)
		p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
	}
	p.b.FinishNode(typeCp)
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.expect(syntax.KindIdent, oerr.ErrExpectedIdent)
	p.b.FinishNode(nameCp)
	// `qreg q[2];` puts the size after the name; it stays a child of the
	// statement, after the Identifier.
	if legacy && p.peek(0) == syntax.KindLBracket {
		p.bump()
		p.parseExpr(0)
		p.expect(syntax.KindRBracket, oerr.ErrExpectedCloseBracket)
	}
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseIdentLedItem resolves the three statement shapes that can start
// with a bare identifier (§9): a type alias declaration (`name : type;`),
// a gate call (`name(args)? operand, ...;`, distinguished by a qubit
// operand directly following with no intervening operator), and anything
// else — an assignment target or a bare expression statement — which
// falls to the generic Pratt expression parser.
func (p *Parser) parseIdentLedItem() {
	if p.peek(1) == syntax.KindColon {
		p.parseTypeDeclarationStmt()
		return
	}
	if p.looksLikeGateCall() {
		p.parseGateCallStmt()
		return
	}

	mark := p.b.Mark()
	// Minimum power 5 stops the target before an assignment operator
	// (left power 4), so the operator is seen here instead of folded in.
	p.parseExpr(5)

	switch {
	case p.peek(0).IsAssignOp():
		cp := p.b.StartNodeAt(syntax.KindAssignmentStmt, mark)
		p.bump()
		p.parseExpr(0)
		p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
		p.b.FinishNode(cp)
	default:
		cp := p.b.StartNodeAt(syntax.KindExprStmt, mark)
		p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
		p.b.FinishNode(cp)
	}
}

func (p *Parser) parseTypeDeclarationStmt() {
	cp := p.b.StartNode(syntax.KindTypeDeclarationStmt)
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.bump()
	p.b.FinishNode(nameCp)
	p.expect(syntax.KindColon, oerr.ErrExpectedExpr)
	p.parseType()
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// parseGateCallStmt parses `name(angle_args)? operand, operand, ...;`.
func (p *Parser) parseGateCallStmt() {
	cp := p.b.StartNode(syntax.KindGateCallStmt)
	nameCp := p.b.StartNode(syntax.KindIdentifier)
	p.bump()
	p.b.FinishNode(nameCp)
	if p.peek(0) == syntax.KindLParen {
		p.parseArgList()
	}
	p.parseQubitList()
	p.expect(syntax.KindSemicolon, oerr.ErrExpectedSemi)
	p.b.FinishNode(cp)
}

// looksLikeGateCall performs unbounded, non-destructive lookahead (pure
// peeking never consumes) to tell a gate call apart from a plain
// function call or assignment: an identifier, an optional parenthesized
// angle-argument group, and then — with no operator or separator between
// them — another qubit operand. `rx(0.5) q;` and `h q;` match; `foo();`
// and `x = 1;` do not.
func (p *Parser) looksLikeGateCall() bool {
	if p.peek(0) != syntax.KindIdent {
		return false
	}
	idx := 1
	if p.peek(idx) == syntax.KindLParen {
		depth := 1
		idx++
		for depth > 0 {
			k := p.peek(idx)
			if k == syntax.KindNil {
				return false
			}
			if k == syntax.KindLParen {
				depth++
			}
			if k == syntax.KindRParen {
				depth--
			}
			idx++
		}
	}
	next := p.peek(idx)
	return next == syntax.KindIdent || next == syntax.KindHardwareQubit
}
