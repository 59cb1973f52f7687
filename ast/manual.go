// This file holds the accessors the generator described in package
// schema cannot derive mechanically from a grammar production: two
// same-kind children distinguished only by position, an optional
// sibling with no distinguishing kind, or a name ("start") the
// generator would otherwise intercept. See the exclusion list in §4.4
// and the worked cases in §9.
package ast

import "github.com/qasm3-go/oq3cst/syntax"

// AngleParams returns Gate's first ParamList child: the optional
// `(p1, p2, ...)` angle parameters. Gate has two ParamList children in
// source order (angle params, then qubit args); position, not label,
// distinguishes them.
func (v Gate) AngleParams() []Identifier {
	if pl := v.n.NthChild(syntax.KindParamList, 0); pl != nil {
		return identifierChildren(pl)
	}
	return nil
}

// QubitArgs returns Gate's second ParamList child: the qubit argument
// list every gate definition requires.
func (v Gate) QubitArgs() []Identifier {
	if pl := v.n.NthChild(syntax.KindParamList, 1); pl != nil {
		return identifierChildren(pl)
	}
	return nil
}

// AngleParams returns DefCal's first ParamList child, mirroring Gate's.
func (v DefCal) AngleParams() []Identifier {
	if pl := v.n.NthChild(syntax.KindParamList, 0); pl != nil {
		return identifierChildren(pl)
	}
	return nil
}

// QubitArgs returns DefCal's QubitList child.
func (v DefCal) QubitArgs() []Identifier {
	if ql := v.n.ChildByKind(syntax.KindQubitList); ql != nil {
		return identifierChildren(ql)
	}
	return nil
}

// Then returns IfStmt's first branch, always present. Both branches are
// brace blocks in concrete OQ3 syntax, so — unlike the generic-Stmt
// shape the production's field list suggests — this returns BlockExpr
// directly, the same correction WhileStmt/ForStmt's Body already apply.
func (v IfStmt) Then() (BlockExpr, bool) {
	blocks := v.n.ChildrenByKind(syntax.KindBlockExpr)
	if len(blocks) == 0 {
		return BlockExpr{}, false
	}
	return CastBlockExpr(blocks[0])
}

// Else returns IfStmt's second branch, if the source included one: a
// plain BlockExpr, or — for an `else if` chain — a nested IfExpr, the
// same two-shape Else an IfExpr itself returns (§9). Narrow the result
// with CastBlockExpr/CastIfExpr as needed.
func (v IfStmt) Else() (Expr, bool) {
	blocks := v.n.ChildrenByKind(syntax.KindBlockExpr)
	if len(blocks) > 1 {
		return CastExpr(blocks[1])
	}
	if nested := v.n.ChildByKind(syntax.KindIfExpr); nested != nil {
		return CastExpr(nested)
	}
	return nil, false
}

// Iterable returns ForStmt's range/array source expression. The
// production labels the loop variable but gives the source expression
// no field name (§4.4), so position — the one Expr child that is not
// also the loop variable's Identifier — disambiguates it.
func (v ForStmt) Iterable() (Expr, bool) {
	loopVar, hasLoopVar := v.LoopVar()
	for _, c := range v.n.Children() {
		if hasLoopVar && c == loopVar.Syntax() {
			continue
		}
		if e, ok := CastExpr(c); ok {
			return e, true
		}
	}
	return nil, false
}

// FilePath extracts the quoted payload of Include's filename literal,
// with the surrounding quote characters stripped. Named to match the
// FilePath node kind's role in the grammar schema (§4.4), not a literal
// accessor the generator could derive: the string contents, not the
// token, are what callers want.
func (v Include) FilePath() string {
	t := v.n.ChildTokenByKind(syntax.KindString)
	if t == nil {
		if fp := v.n.ChildByKind(syntax.KindFilePath); fp != nil {
			t = fp.ChildTokenByKind(syntax.KindString)
		}
	}
	if t == nil {
		return ""
	}
	text := t.Text()
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'') {
		return text[1 : len(text)-1]
	}
	return text
}
