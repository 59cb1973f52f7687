package precedence

import "github.com/qasm3-go/oq3cst/syntax"

// leftSpineChild returns the position on the statement rule's walk: a
// BinExpr's lhs, a Call/GateCallExpr's callee, or an IndexExpr's base
// (§4.5 "statement rule", §9).
func leftSpineChild(n *syntax.Node) *syntax.Node {
	switch n.Kind() {
	case syntax.KindBinExpr, syntax.KindCallExpr, syntax.KindGateCallExpr, syntax.KindIndexExpr:
		children := n.Children()
		if len(children) == 0 {
			return nil
		}
		return children[0]
	default:
		return nil
	}
}

// StatementRuleNeedsParens walks self's leftmost spine (BinExpr.lhs,
// CallExpr/GateCallExpr.callee, IndexExpr.base). If any node on that spine
// is one that does not require a trailing semicolon to stand alone as a
// statement (IfExpr, BlockExpr, WhileExpr, ForExpr), the expression must
// be parenthesized before it can be used as a standalone statement or
// placed at the head of a statement list, or its leading sub-expression
// would be re-parsed as its own statement (§4.5, §8 scenario 6).
func StatementRuleNeedsParens(self *syntax.Node) bool {
	cur := self
	for cur != nil {
		if !RequiresSemiToBeStmt(cur.Kind()) {
			return true
		}
		cur = leftSpineChild(cur)
	}
	return false
}

// operatorOffset returns the source offset used to compare n against a
// neighboring node for associativity purposes: the operator token's
// offset for infix/prefix/postfix forms, or the node's own start offset
// for paren-like/atomic forms (§4.5 "source order").
func operatorOffset(n *syntax.Node) int {
	switch n.Kind() {
	case syntax.KindBinExpr:
		for _, c := range n.ChildrenWithTokens() {
			if c.IsToken() {
				if _, ok := opPower[c.Kind()]; ok {
					return c.Offset()
				}
			}
		}
	case syntax.KindRangeExpr:
		if t := n.ChildTokenByKind(syntax.KindColon); t != nil {
			return t.Offset()
		}
	case syntax.KindReturnExpr, syntax.KindBreakExpr, syntax.KindBoxExpr:
		if t := n.FirstToken(); t != nil {
			return t.Offset()
		}
	case syntax.KindCallExpr, syntax.KindGateCallExpr:
		if t := n.ChildTokenByKind(syntax.KindLParen); t != nil {
			return t.Offset()
		}
	case syntax.KindIndexExpr, syntax.KindIndexedIdentifier:
		if t := n.ChildTokenByKind(syntax.KindLBracket); t != nil {
			return t.Offset()
		}
	}
	return n.Offset()
}

// isBareReturnOrBreak reports whether n is a ReturnExpr/BreakExpr with no
// value expression.
func isBareReturnOrBreak(n *syntax.Node) bool {
	if n.Kind() != syntax.KindReturnExpr && n.Kind() != syntax.KindBreakExpr {
		return false
	}
	return len(n.Children()) == 0
}

// isHeadPosition reports whether self occupies the head-expression slot
// of an if/while/for construct: the child position immediately followed
// by a block, per §4.5 rule 3a.
func isHeadPosition(parent, self *syntax.Node) bool {
	switch parent.Kind() {
	case syntax.KindIfExpr, syntax.KindWhileExpr, syntax.KindForExpr:
	default:
		return false
	}
	siblings := parent.Children()
	for i, c := range siblings {
		if c == self {
			return i+1 < len(siblings) && siblings[i+1].Kind() == syntax.KindBlockExpr
		}
	}
	return false
}

// rangeStop returns a RangeExpr's rightmost Expr operand (its "stop"),
// the last node child in source order.
func rangeStop(n *syntax.Node) *syntax.Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[len(children)-1]
}

// NeedsParensIn reports whether self must be wrapped in parentheses to
// preserve its meaning when placed as a child of parent (§4.5). parent may
// be an argument list, a statement list (a BlockExpr's statement
// sequence, or the file root), or another expression.
func NeedsParensIn(self, parent *syntax.Node) bool {
	if self == nil || parent == nil {
		return false
	}

	switch parent.Kind() {
	case syntax.KindArgList:
		return false
	case syntax.KindBlockExpr, syntax.KindRoot:
		return StatementRuleNeedsParens(self)
	}

	if isHeadPosition(parent, self) {
		if isBareReturnOrBreak(self) {
			return true
		}
		if self.Kind() == syntax.KindRangeExpr {
			if stop := rangeStop(self); stop != nil && stop.Kind() == syntax.KindBlockExpr {
				return true
			}
		}
	}

	if isBareReturnOrBreak(self) && IsPostfix(parent.Kind()) {
		return false
	}

	if IsParenLike(self.Kind()) || IsParenLike(parent.Kind()) {
		return false
	}

	selfOff, parentOff := operatorOffset(self), operatorOffset(parent)

	if IsPrefix(self.Kind()) {
		if IsPrefix(parent.Kind()) || selfOff > parentOff {
			return false
		}
	}
	if IsPostfix(self.Kind()) {
		if IsPostfix(parent.Kind()) || selfOff < parentOff {
			return false
		}
	}

	left, right, inv := self, parent, false
	if selfOff > parentOff {
		left, right, inv = parent, self, true
	}
	leftR := BindingPower(left).Right
	rightL := BindingPower(right).Left
	return (leftR < rightL) != inv
}
