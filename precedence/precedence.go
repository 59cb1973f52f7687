// Package precedence implements §4.5 of the design notes: the binding
// power table for every Expr variant, the prefix/infix/postfix/paren-like
// classification it induces, and the needs_parens_in(parent) contract a
// rewrite or pretty-printer uses to decide whether relocating an
// expression under a new parent requires wrapping it in a ParenExpr.
//
// None of this exists in the teacher (vartan resolves its own grammar's
// ambiguities once, ahead of time, via LALR precedence/associativity
// declarations baked into its parsing tables — see grammar.precAndAssoc in
// grammar/grammar.go); a Pratt parser instead asks these questions live,
// at parse time and again whenever a rewrite repositions a subtree. The
// (left, right) binding-power pair and its "N / N+1 / N-1" convention are
// carried over directly from that table's vocabulary, generalized from a
// fixed LALR conflict resolution to a per-node query.
package precedence

import "github.com/qasm3-go/oq3cst/syntax"

// Power is a binding-power pair. By convention the caller never inspects
// Left/Right in isolation except through the helpers in this file; the
// pair only has meaning relative to a neighboring node's pair.
type Power struct {
	Left, Right int
}

// opPower tabulates the binding power of a BinExpr by the kind of its
// infix operator token, per the table in §4.5.
var opPower = map[syntax.Kind]Power{
	syntax.KindEq: {4, 3}, syntax.KindPlusEq: {4, 3}, syntax.KindMinusEq: {4, 3},
	syntax.KindStarEq: {4, 3}, syntax.KindSlashEq: {4, 3}, syntax.KindPercentEq: {4, 3},
	syntax.KindShlEq: {4, 3}, syntax.KindShrEq: {4, 3}, syntax.KindAmpEq: {4, 3},
	syntax.KindPipeEq: {4, 3}, syntax.KindCaretEq: {4, 3},

	syntax.KindPipePipe: {7, 8},
	syntax.KindAmpAmp:   {9, 10},

	syntax.KindEqEq: {11, 11}, syntax.KindNotEq: {11, 11},
	syntax.KindLt: {11, 11}, syntax.KindLtEq: {11, 11},
	syntax.KindGt: {11, 11}, syntax.KindGtEq: {11, 11},

	syntax.KindPipe:  {13, 14},
	syntax.KindCaret: {15, 16},
	syntax.KindAmp:   {17, 18},

	syntax.KindShl: {19, 20}, syntax.KindShr: {19, 20},

	syntax.KindPlus: {21, 22}, syntax.KindMinus: {21, 22},
	// Concatenation shares the additive tier at the token level (§9: the
	// precedence of ++ relative to other operators is not stated in the
	// grammar the spec was drawn from, and the design notes say to
	// assume it sits with '+').
	syntax.KindPlusPlus: {21, 22},

	syntax.KindStar: {23, 24}, syntax.KindSlash: {23, 24}, syntax.KindPercent: {23, 24},
}

// IsBinaryOperator reports whether op is one of the infix operator token
// kinds BinExpr can hold, the set the Pratt driver consults while
// deciding whether the next token continues the current expression.
func IsBinaryOperator(op syntax.Kind) bool {
	_, ok := opPower[op]
	return ok
}

// OperatorPower returns the binding power of a BinExpr's infix operator
// token. It panics if op is not one of the recognized binary operator
// kinds; callers only call this after confirming the BinExpr's operator
// child, so an unrecognized kind indicates a bug in the parser, not bad
// input.
func OperatorPower(op syntax.Kind) Power {
	p, ok := opPower[op]
	if !ok {
		panic("precedence: unrecognized binary operator kind " + op.String())
	}
	return p
}

// nodePower tabulates the fixed binding power of every Expr kind whose
// power does not depend on an operator token (everything except BinExpr,
// whose power is OperatorPower of its own operator child).
var nodePower = map[syntax.Kind]Power{
	// paren-like / nullary
	syntax.KindIdentifier:         {0, 0},
	syntax.KindHardwareQubitExpr:  {0, 0},
	syntax.KindLiteral:            {0, 0},
	syntax.KindArrayLiteral:       {0, 0},
	syntax.KindParenExpr:          {0, 0},
	syntax.KindBlockExpr:          {0, 0},
	syntax.KindIfExpr:             {0, 0},
	syntax.KindWhileExpr:          {0, 0},
	syntax.KindForExpr:            {0, 0},
	syntax.KindArrayExpr:          {0, 0},
	syntax.KindSetExpr:            {0, 0},
	syntax.KindMeasureExpression:  {0, 0},
	syntax.KindContinueExpr:       {0, 0},
	// CastExpression (e.g. `int[32](x)`) is self-delimiting the same way
	// a call is, but the grammar gives it no operator token to the left
	// of anything: treat it as an atom. (Not stated in §4.5's table;
	// resolved conservatively — see DESIGN.md.)
	syntax.KindCastExpression: {0, 0},

	// prefix
	syntax.KindReturnExpr: {0, 1},
	syntax.KindBreakExpr:  {0, 1},
	syntax.KindBoxExpr:    {0, 27},

	// postfix
	syntax.KindCallExpr:          {29, 0},
	syntax.KindGateCallExpr:      {29, 0},
	syntax.KindIndexExpr:         {29, 0},
	syntax.KindIndexedIdentifier: {29, 0},

	// non-associative infix
	syntax.KindRangeExpr: {5, 5},
}

// BindingPower returns n's (left, right) binding power. For a BinExpr it
// looks at the operator token child; for every other Expr kind it is a
// fixed value from the table above.
func BindingPower(n *syntax.Node) Power {
	if n == nil {
		return Power{0, 0}
	}
	if n.Kind() == syntax.KindBinExpr {
		return OperatorPower(binExprOperator(n))
	}
	if p, ok := nodePower[n.Kind()]; ok {
		return p
	}
	return Power{0, 0}
}

// binExprOperator returns the operator token kind of a BinExpr node: the
// one direct token child that is an operator, sandwiched between the lhs
// and rhs node children.
func binExprOperator(n *syntax.Node) syntax.Kind {
	for _, c := range n.ChildrenWithTokens() {
		if c.IsToken() {
			k := c.Kind()
			if _, ok := opPower[k]; ok {
				return k
			}
		}
	}
	panic("precedence: BinExpr has no recognizable operator token")
}

// IsParenLike reports whether kind is a nullary/atomic/paren-wrapping Expr
// variant: binding power (0, 0).
func IsParenLike(kind syntax.Kind) bool {
	p, ok := fixedOrZero(kind)
	return ok && p.Left == 0 && p.Right == 0
}

// IsPrefix reports whether kind binds only on its right: (0, N), N != 0.
func IsPrefix(kind syntax.Kind) bool {
	p, ok := fixedOrZero(kind)
	return ok && p.Left == 0 && p.Right != 0
}

// IsPostfix reports whether kind binds only on its left: (N, 0), N != 0.
func IsPostfix(kind syntax.Kind) bool {
	p, ok := fixedOrZero(kind)
	return ok && p.Right == 0 && p.Left != 0
}

// IsInfix reports whether kind binds on both sides.
func IsInfix(kind syntax.Kind) bool {
	if kind == syntax.KindBinExpr {
		return true
	}
	p, ok := fixedOrZero(kind)
	return ok && p.Left != 0 && p.Right != 0
}

func fixedOrZero(kind syntax.Kind) (Power, bool) {
	if kind == syntax.KindBinExpr {
		// A BinExpr's class (infix, never paren-like/prefix/postfix) does
		// not depend on which operator it holds.
		return Power{1, 1}, true
	}
	p, ok := nodePower[kind]
	return p, ok
}

// statementFreeKinds are the Expr kinds that also stand alone as a
// statement without a trailing semicolon (§4.5's statement rule, §8
// scenario 6).
var statementFreeKinds = map[syntax.Kind]bool{
	syntax.KindIfExpr:    true,
	syntax.KindBlockExpr: true,
	syntax.KindWhileExpr: true,
	syntax.KindForExpr:   true,
}

// RequiresSemiToBeStmt reports whether an expression of this kind needs a
// trailing ';' to be valid as a standalone statement. IfExpr, BlockExpr,
// WhileExpr, and ForExpr do not.
func RequiresSemiToBeStmt(kind syntax.Kind) bool {
	return !statementFreeKinds[kind]
}
