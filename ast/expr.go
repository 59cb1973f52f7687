package ast

import (
	"github.com/qasm3-go/oq3cst/precedence"
	"github.com/qasm3-go/oq3cst/syntax"
)

// Expr is the enum view over every member of the expression sum (§4.1).
// Any concrete ExprNode-based view satisfies it.
type Expr interface {
	Syntax() *syntax.Node
	isExpr()
}

// ExprNode is embedded by every Expr alternative. It supplies the
// precedence-engine passthrough methods of §6.3 so that every expression
// view, regardless of its concrete kind, answers binding_power,
// is_paren_like, is_prefix, is_postfix, requires_semi_to_be_stmt, and
// needs_parens_in the same way.
type ExprNode struct{ Node }

func (v ExprNode) isExpr() {}

// BindingPower returns the (left, right) binding-power pair of §4.5.
func (v ExprNode) BindingPower() (left, right int) {
	p := precedence.BindingPower(v.n)
	return p.Left, p.Right
}

func (v ExprNode) IsParenLike() bool { return precedence.IsParenLike(v.n.Kind()) }
func (v ExprNode) IsPrefix() bool    { return precedence.IsPrefix(v.n.Kind()) }
func (v ExprNode) IsPostfix() bool   { return precedence.IsPostfix(v.n.Kind()) }
func (v ExprNode) IsInfix() bool     { return precedence.IsInfix(v.n.Kind()) }

// RequiresSemiToBeStmt reports whether this expression needs a trailing
// ';' to be valid as a standalone statement.
func (v ExprNode) RequiresSemiToBeStmt() bool {
	return precedence.RequiresSemiToBeStmt(v.n.Kind())
}

// NeedsParensIn reports whether v must be parenthesized when relocated
// under parent (§4.5).
func (v ExprNode) NeedsParensIn(parent Expr) bool {
	if parent == nil {
		return false
	}
	return precedence.NeedsParensIn(v.n, parent.Syntax())
}

// CastExpr narrows a red node to the Expr view matching its kind, or
// returns (nil, false) if the node's kind is not a member of the Expr
// sum.
func CastExpr(n *syntax.Node) (Expr, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.KindArrayExpr:
		return ArrayExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindBinExpr:
		return BinExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindBlockExpr:
		return BlockExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindBoxExpr:
		return BoxExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindCallExpr:
		return CallExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindCastExpression:
		return CastExpression{ExprNode{wrapNode(n)}}, true
	case syntax.KindIndexExpr:
		return IndexExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindIndexedIdentifier:
		return IndexedIdentifier{ExprNode{wrapNode(n)}}, true
	case syntax.KindLiteral:
		return Literal{ExprNode{wrapNode(n)}}, true
	case syntax.KindParenExpr:
		return ParenExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindRangeExpr:
		return RangeExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindReturnExpr:
		return ReturnExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindArrayLiteral:
		return ArrayLiteral{ExprNode{wrapNode(n)}}, true
	case syntax.KindMeasureExpression:
		return MeasureExpression{ExprNode{wrapNode(n)}}, true
	case syntax.KindIdentifier:
		return Identifier{ExprNode{wrapNode(n)}}, true
	case syntax.KindHardwareQubitExpr:
		return HardwareQubit{ExprNode{wrapNode(n)}}, true
	case syntax.KindBreakExpr:
		return BreakExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindContinueExpr:
		return ContinueExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindGateCallExpr:
		return GateCallExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindIfExpr:
		return IfExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindWhileExpr:
		return WhileExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindForExpr:
		return ForExpr{ExprNode{wrapNode(n)}}, true
	case syntax.KindSetExpr:
		return SetExpr{ExprNode{wrapNode(n)}}, true
	default:
		return nil, false
	}
}

// exprChildren returns every direct Expr child of n, in source order,
// skipping non-Expr children (tokens, type nodes, lists).
func exprChildren(n *syntax.Node) []Expr {
	var out []Expr
	for _, c := range n.Children() {
		if e, ok := CastExpr(c); ok {
			out = append(out, e)
		}
	}
	return out
}

func firstExprChild(n *syntax.Node) (Expr, bool) {
	for _, c := range n.Children() {
		if e, ok := CastExpr(c); ok {
			return e, true
		}
	}
	return nil, false
}

// ArrayExpr is a braces-delimited expression list used where an array
// value is expected, e.g. a gate-call angle argument `{1, 2}`.
type ArrayExpr struct{ ExprNode }

func CastArrayExpr(n *syntax.Node) (ArrayExpr, bool) {
	if n == nil || n.Kind() != syntax.KindArrayExpr {
		return ArrayExpr{}, false
	}
	return ArrayExpr{ExprNode{wrapNode(n)}}, true
}

func (v ArrayExpr) Elements() []Expr { return exprChildren(v.n) }

// BinExpr is a binary operator expression: lhs op rhs.
type BinExpr struct{ ExprNode }

func CastBinExpr(n *syntax.Node) (BinExpr, bool) {
	if n == nil || n.Kind() != syntax.KindBinExpr {
		return BinExpr{}, false
	}
	return BinExpr{ExprNode{wrapNode(n)}}, true
}

func (v BinExpr) Lhs() (Expr, bool) {
	children := v.n.Children()
	if len(children) == 0 {
		return nil, false
	}
	return CastExpr(children[0])
}

func (v BinExpr) Rhs() (Expr, bool) {
	children := v.n.Children()
	if len(children) < 2 {
		return nil, false
	}
	return CastExpr(children[len(children)-1])
}

// Op returns the operator token's kind.
func (v BinExpr) Op() syntax.Kind {
	for _, c := range v.n.ChildrenWithTokens() {
		if c.IsToken() && c.Kind().IsPunctuation() {
			return c.Kind()
		}
	}
	return syntax.KindNil
}

// BlockExpr is a `{ stmt* }` block, usable both as a statement body and,
// via this view, as an Expr for precedence purposes (§9's "statement vs
// expression duality").
type BlockExpr struct{ ExprNode }

func CastBlockExpr(n *syntax.Node) (BlockExpr, bool) {
	if n == nil || n.Kind() != syntax.KindBlockExpr {
		return BlockExpr{}, false
	}
	return BlockExpr{ExprNode{wrapNode(n)}}, true
}

func (v BlockExpr) Statements() []Stmt { return stmtChildren(v.n) }

// BoxExpr is a `box <duration>? { ... }` timing scope.
type BoxExpr struct{ ExprNode }

func CastBoxExpr(n *syntax.Node) (BoxExpr, bool) {
	if n == nil || n.Kind() != syntax.KindBoxExpr {
		return BoxExpr{}, false
	}
	return BoxExpr{ExprNode{wrapNode(n)}}, true
}

func (v BoxExpr) Designator() (Expr, bool) {
	body := v.n.ChildByKind(syntax.KindBlockExpr)
	for _, c := range v.n.Children() {
		if c == body {
			continue
		}
		if e, ok := CastExpr(c); ok {
			return e, true
		}
	}
	return nil, false
}

func (v BoxExpr) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// CallExpr is a postfix function call `callee(args)`.
type CallExpr struct{ ExprNode }

func CastCallExpr(n *syntax.Node) (CallExpr, bool) {
	if n == nil || n.Kind() != syntax.KindCallExpr {
		return CallExpr{}, false
	}
	return CallExpr{ExprNode{wrapNode(n)}}, true
}

func (v CallExpr) Callee() (Expr, bool) { return firstExprChild(v.n) }

func (v CallExpr) Args() []Expr {
	if args := v.n.ChildByKind(syntax.KindArgList); args != nil {
		return exprChildren(args)
	}
	return nil
}

// CastExpression is a type-conversion expression `type(expr)`, e.g.
// `int[32](x)`.
type CastExpression struct{ ExprNode }

func CastCastExpression(n *syntax.Node) (CastExpression, bool) {
	if n == nil || n.Kind() != syntax.KindCastExpression {
		return CastExpression{}, false
	}
	return CastExpression{ExprNode{wrapNode(n)}}, true
}

func (v CastExpression) Type() (Type, bool) { return firstType(v.n) }

func (v CastExpression) Arg() (Expr, bool) {
	for _, c := range v.n.Children() {
		if _, ok := CastType(c); ok {
			continue
		}
		return CastExpr(c)
	}
	return nil, false
}

// IndexExpr is a postfix index expression `base[indices]`.
type IndexExpr struct{ ExprNode }

func CastIndexExpr(n *syntax.Node) (IndexExpr, bool) {
	if n == nil || n.Kind() != syntax.KindIndexExpr {
		return IndexExpr{}, false
	}
	return IndexExpr{ExprNode{wrapNode(n)}}, true
}

func (v IndexExpr) Base() (Expr, bool) { return firstExprChild(v.n) }

func (v IndexExpr) Indices() []IndexKind { return indexKindChildren(v.n) }

// IndexedIdentifier is the lvalue-position spelling of an indexed name,
// e.g. the target of an AssignmentStmt.
type IndexedIdentifier struct{ ExprNode }

func CastIndexedIdentifier(n *syntax.Node) (IndexedIdentifier, bool) {
	if n == nil || n.Kind() != syntax.KindIndexedIdentifier {
		return IndexedIdentifier{}, false
	}
	return IndexedIdentifier{ExprNode{wrapNode(n)}}, true
}

func (v IndexedIdentifier) Base() (Identifier, bool) {
	return CastIdentifier(v.n.ChildByKind(syntax.KindIdentifier))
}

func (v IndexedIdentifier) Indices() []IndexKind { return indexKindChildren(v.n) }

// Literal wraps one literal token: int/float/timing/string/bit-string/
// true/false (§3).
type Literal struct{ ExprNode }

func CastLiteral(n *syntax.Node) (Literal, bool) {
	if n == nil || n.Kind() != syntax.KindLiteral {
		return Literal{}, false
	}
	return Literal{ExprNode{wrapNode(n)}}, true
}

// Token returns the literal's single token child.
func (v Literal) Token() *syntax.Node {
	for _, c := range v.n.ChildrenWithTokens() {
		if c.IsToken() {
			return c
		}
	}
	return nil
}

// LiteralKind returns the kind of the wrapped literal token.
func (v Literal) LiteralKind() syntax.Kind {
	if t := v.Token(); t != nil {
		return t.Kind()
	}
	return syntax.KindNil
}

// ParenExpr is a parenthesized expression `(inner)`.
type ParenExpr struct{ ExprNode }

func CastParenExpr(n *syntax.Node) (ParenExpr, bool) {
	if n == nil || n.Kind() != syntax.KindParenExpr {
		return ParenExpr{}, false
	}
	return ParenExpr{ExprNode{wrapNode(n)}}, true
}

func (v ParenExpr) Inner() (Expr, bool) { return firstExprChild(v.n) }

// RangeExpr is `start? : step? : stop?`, used in slices and for-loop
// iterables.
type RangeExpr struct{ ExprNode }

func CastRangeExpr(n *syntax.Node) (RangeExpr, bool) {
	if n == nil || n.Kind() != syntax.KindRangeExpr {
		return RangeExpr{}, false
	}
	return RangeExpr{ExprNode{wrapNode(n)}}, true
}

// TheStart returns the range's start operand. Named TheStart, not Start,
// because the code generator intercepts the plain name "start" (§4.4,
// §9) — this is one of the manually-implemented accessors.
func (v RangeExpr) TheStart() (Expr, bool) {
	children := v.n.Children()
	if len(children) == 0 {
		return nil, false
	}
	// A leading ':' (as in `a[:3]`) means the start was omitted.
	if colon := v.n.ChildTokenByKind(syntax.KindColon); colon != nil && colon.Offset() < children[0].Offset() {
		return nil, false
	}
	return CastExpr(children[0])
}

// Step returns the range's step operand, if present (three operands:
// start : step : stop).
func (v RangeExpr) Step() (Expr, bool) {
	children := v.n.Children()
	if len(children) != 3 {
		return nil, false
	}
	return CastExpr(children[1])
}

// Stop returns the range's stop operand.
func (v RangeExpr) Stop() (Expr, bool) {
	children := v.n.Children()
	if len(children) == 0 {
		return nil, false
	}
	// A trailing ':' (as in `a[1:]`) means the stop was omitted.
	all := v.n.ChildrenWithTokens()
	for i := len(all) - 1; i >= 0 && !all[i].IsNode(); i-- {
		if all[i].Kind() == syntax.KindColon {
			return nil, false
		}
	}
	return CastExpr(children[len(children)-1])
}

// ReturnExpr is `return value?`.
type ReturnExpr struct{ ExprNode }

func CastReturnExpr(n *syntax.Node) (ReturnExpr, bool) {
	if n == nil || n.Kind() != syntax.KindReturnExpr {
		return ReturnExpr{}, false
	}
	return ReturnExpr{ExprNode{wrapNode(n)}}, true
}

func (v ReturnExpr) Value() (Expr, bool) { return firstExprChild(v.n) }

// ArrayLiteral is a `{ elem, elem, ... }` value list.
type ArrayLiteral struct{ ExprNode }

func CastArrayLiteral(n *syntax.Node) (ArrayLiteral, bool) {
	if n == nil || n.Kind() != syntax.KindArrayLiteral {
		return ArrayLiteral{}, false
	}
	return ArrayLiteral{ExprNode{wrapNode(n)}}, true
}

func (v ArrayLiteral) Elements() []Expr { return exprChildren(v.n) }

// MeasureExpression wraps the operand of a `measure` expression. Per §8
// scenario 4, its range covers only through the operand; the `-> target`
// arrow belongs to the enclosing statement, out of core scope.
type MeasureExpression struct{ ExprNode }

func CastMeasureExpression(n *syntax.Node) (MeasureExpression, bool) {
	if n == nil || n.Kind() != syntax.KindMeasureExpression {
		return MeasureExpression{}, false
	}
	return MeasureExpression{ExprNode{wrapNode(n)}}, true
}

func (v MeasureExpression) Operand() (GateOperand, bool) {
	for _, c := range v.n.Children() {
		if g, ok := CastGateOperand(c); ok {
			return g, true
		}
	}
	return GateOperand{}, false
}

// Identifier is a plain name token wrapped in a node.
type Identifier struct{ ExprNode }

func CastIdentifier(n *syntax.Node) (Identifier, bool) {
	if n == nil || n.Kind() != syntax.KindIdentifier {
		return Identifier{}, false
	}
	return Identifier{ExprNode{wrapNode(n)}}, true
}

// Name returns the identifier's text.
func (v Identifier) Name() string {
	if t := v.n.ChildTokenByKind(syntax.KindIdent); t != nil {
		return t.Text()
	}
	return v.n.Text()
}

// HardwareQubit is a `$<digits>` physical qubit reference.
type HardwareQubit struct{ ExprNode }

func CastHardwareQubit(n *syntax.Node) (HardwareQubit, bool) {
	if n == nil || n.Kind() != syntax.KindHardwareQubitExpr {
		return HardwareQubit{}, false
	}
	return HardwareQubit{ExprNode{wrapNode(n)}}, true
}

func (v HardwareQubit) Name() string { return v.n.Text() }

// BreakExpr is `break value?`, provisioned as an Expr alongside BreakStmt
// so the precedence engine can reason about it uniformly (§4.1).
type BreakExpr struct{ ExprNode }

func CastBreakExpr(n *syntax.Node) (BreakExpr, bool) {
	if n == nil || n.Kind() != syntax.KindBreakExpr {
		return BreakExpr{}, false
	}
	return BreakExpr{ExprNode{wrapNode(n)}}, true
}

func (v BreakExpr) Value() (Expr, bool) { return firstExprChild(v.n) }

// ContinueExpr is `continue`, nullary.
type ContinueExpr struct{ ExprNode }

func CastContinueExpr(n *syntax.Node) (ContinueExpr, bool) {
	if n == nil || n.Kind() != syntax.KindContinueExpr {
		return ContinueExpr{}, false
	}
	return ContinueExpr{ExprNode{wrapNode(n)}}, true
}

// GateCallExpr is the expression-shaped form of a gate call, provisioned
// for precedence purposes alongside GateCallStmt (§4.1).
type GateCallExpr struct{ ExprNode }

func CastGateCallExpr(n *syntax.Node) (GateCallExpr, bool) {
	if n == nil || n.Kind() != syntax.KindGateCallExpr {
		return GateCallExpr{}, false
	}
	return GateCallExpr{ExprNode{wrapNode(n)}}, true
}

func (v GateCallExpr) Callee() (Expr, bool) { return firstExprChild(v.n) }

func (v GateCallExpr) Args() []Expr {
	if args := v.n.ChildByKind(syntax.KindArgList); args != nil {
		return exprChildren(args)
	}
	return nil
}

func (v GateCallExpr) Operands() []GateOperand {
	if ops := v.n.ChildByKind(syntax.KindQubitList); ops != nil {
		return gateOperandChildren(ops)
	}
	return nil
}

// IfExpr is the expression-shaped form of an if/else, provisioned
// alongside IfStmt for precedence purposes (§4.1, §9).
type IfExpr struct{ ExprNode }

func CastIfExpr(n *syntax.Node) (IfExpr, bool) {
	if n == nil || n.Kind() != syntax.KindIfExpr {
		return IfExpr{}, false
	}
	return IfExpr{ExprNode{wrapNode(n)}}, true
}

func (v IfExpr) Cond() (Expr, bool) { return firstExprChild(v.n) }

func (v IfExpr) Then() (BlockExpr, bool) {
	blocks := v.n.ChildrenByKind(syntax.KindBlockExpr)
	if len(blocks) == 0 {
		return BlockExpr{}, false
	}
	return CastBlockExpr(blocks[0])
}

func (v IfExpr) Else() (Expr, bool) {
	blocks := v.n.ChildrenByKind(syntax.KindBlockExpr)
	if len(blocks) > 1 {
		return CastExpr(blocks[1])
	}
	if nested := v.n.ChildByKind(syntax.KindIfExpr); nested != nil {
		return CastExpr(nested)
	}
	return nil, false
}

// WhileExpr is the expression-shaped form of a while loop (§4.1).
type WhileExpr struct{ ExprNode }

func CastWhileExpr(n *syntax.Node) (WhileExpr, bool) {
	if n == nil || n.Kind() != syntax.KindWhileExpr {
		return WhileExpr{}, false
	}
	return WhileExpr{ExprNode{wrapNode(n)}}, true
}

func (v WhileExpr) Cond() (Expr, bool) { return firstExprChild(v.n) }

func (v WhileExpr) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// ForExpr is the expression-shaped form of a for loop (§4.1).
type ForExpr struct{ ExprNode }

func CastForExpr(n *syntax.Node) (ForExpr, bool) {
	if n == nil || n.Kind() != syntax.KindForExpr {
		return ForExpr{}, false
	}
	return ForExpr{ExprNode{wrapNode(n)}}, true
}

func (v ForExpr) LoopVar() (Identifier, bool) {
	return CastIdentifier(v.n.ChildByKind(syntax.KindIdentifier))
}

// Iterable returns the loop's range/array source expression. Named
// Iterable, not a grammar-derived label, because the production has no
// field name to draw one from (§4.4) — manually implemented.
func (v ForExpr) Iterable() (Expr, bool) {
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

func (v ForExpr) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// SetExpr is a `{ elem, elem, ... }` set used in set-valued index
// positions, e.g. `a[{1, 2, 3}]`.
type SetExpr struct{ ExprNode }

func CastSetExpr(n *syntax.Node) (SetExpr, bool) {
	if n == nil || n.Kind() != syntax.KindSetExpr {
		return SetExpr{}, false
	}
	return SetExpr{ExprNode{wrapNode(n)}}, true
}

func (v SetExpr) Elements() []Expr { return exprChildren(v.n) }

// FlattenConcat normalizes a (possibly right-nested) chain of `++`
// BinExpr nodes into a flat left-to-right operand list, so that a
// concatenation built as nested BinExpr nodes compares equal to one
// parsed as a flat alias-expression form (§9).
func FlattenConcat(e Expr) []Expr {
	bin, ok := e.(BinExpr)
	if !ok || bin.Op() != syntax.KindPlusPlus {
		return []Expr{e}
	}
	var out []Expr
	if lhs, ok := bin.Lhs(); ok {
		out = append(out, FlattenConcat(lhs)...)
	}
	if rhs, ok := bin.Rhs(); ok {
		out = append(out, FlattenConcat(rhs)...)
	}
	return out
}
