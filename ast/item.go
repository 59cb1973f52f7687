package ast

import "github.com/qasm3-go/oq3cst/syntax"

// Stmt is the enum view over every statement-position node kind (§4.1,
// §9). Several of these kinds are also reachable through Expr (IfStmt
// and IfExpr share no node kind — they are distinct productions — but
// BlockExpr backs both a statement's body and an expression value, per
// the design note in §9 that a single underlying node can be viewed as
// either depending on context).
type Stmt interface {
	Syntax() *syntax.Node
	isStmt()
}

// StmtNode is embedded by every Stmt alternative.
type StmtNode struct{ Node }

func (v StmtNode) isStmt() {}

// CastStmt narrows a red node to the Stmt view matching its kind, or
// returns (nil, false) if the node's kind is not a statement kind.
func CastStmt(n *syntax.Node) (Stmt, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.KindDef:
		return Def{StmtNode{wrapNode(n)}}, true
	case syntax.KindGate:
		return Gate{StmtNode{wrapNode(n)}}, true
	case syntax.KindDefCal:
		return DefCal{StmtNode{wrapNode(n)}}, true
	case syntax.KindCal:
		return Cal{StmtNode{wrapNode(n)}}, true
	case syntax.KindDefCalGrammar:
		return DefCalGrammar{StmtNode{wrapNode(n)}}, true
	case syntax.KindTypeDeclarationStmt:
		return TypeDeclarationStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindClassicalDeclarationStatement:
		return ClassicalDeclarationStatement{StmtNode{wrapNode(n)}}, true
	case syntax.KindQuantumDeclarationStatement:
		return QuantumDeclarationStatement{StmtNode{wrapNode(n)}}, true
	case syntax.KindGateCallStmt:
		return GateCallStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindGPhaseCallStmt:
		return GPhaseCallStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindLetStmt:
		return LetStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindAssignmentStmt:
		return AssignmentStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindInclude:
		return Include{StmtNode{wrapNode(n)}}, true
	case syntax.KindForStmt:
		return ForStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindIfStmt:
		return IfStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindWhileStmt:
		return WhileStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindReset:
		return Reset{StmtNode{wrapNode(n)}}, true
	case syntax.KindMeasure:
		return Measure{StmtNode{wrapNode(n)}}, true
	case syntax.KindBarrier:
		return Barrier{StmtNode{wrapNode(n)}}, true
	case syntax.KindVersionString:
		return VersionString{StmtNode{wrapNode(n)}}, true
	case syntax.KindBreakStmt:
		return BreakStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindContinueStmt:
		return ContinueStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindEndStmt:
		return EndStmt{StmtNode{wrapNode(n)}}, true
	case syntax.KindExprStmt:
		return ExprStmt{StmtNode{wrapNode(n)}}, true
	default:
		return nil, false
	}
}

func stmtChildren(n *syntax.Node) []Stmt {
	var out []Stmt
	for _, c := range n.Children() {
		if s, ok := CastStmt(c); ok {
			out = append(out, s)
		}
	}
	return out
}

func firstStmtChild(n *syntax.Node) (Stmt, bool) {
	for _, c := range n.Children() {
		if s, ok := CastStmt(c); ok {
			return s, true
		}
	}
	return nil, false
}

func identChild(n *syntax.Node) (Identifier, bool) {
	return CastIdentifier(n.ChildByKind(syntax.KindIdentifier))
}

// Def is a `def name(params) -> returnType { body }` subroutine
// definition.
type Def struct{ StmtNode }

func CastDef(n *syntax.Node) (Def, bool) {
	if n == nil || n.Kind() != syntax.KindDef {
		return Def{}, false
	}
	return Def{StmtNode{wrapNode(n)}}, true
}

func (v Def) Name() (Identifier, bool) { return identChild(v.n) }

func (v Def) Params() []Identifier {
	if pl := v.n.ChildByKind(syntax.KindParamList); pl != nil {
		return identifierChildren(pl)
	}
	return nil
}

func (v Def) ReturnType() (Type, bool) { return firstType(v.n) }

func (v Def) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// Gate is a `gate name(angle_params) qubit_args { body }` definition.
// AngleParams and QubitArgs are manually implemented in manual.go: both
// are ParamList children of the same kind, distinguished only by
// position (§4.4, §9).
type Gate struct{ StmtNode }

func CastGate(n *syntax.Node) (Gate, bool) {
	if n == nil || n.Kind() != syntax.KindGate {
		return Gate{}, false
	}
	return Gate{StmtNode{wrapNode(n)}}, true
}

func (v Gate) Name() (Identifier, bool) { return identChild(v.n) }

func (v Gate) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// DefCal is a `defcal name(angle_params) qubit_args -> returnType { body }`
// calibration definition.
type DefCal struct{ StmtNode }

func CastDefCal(n *syntax.Node) (DefCal, bool) {
	if n == nil || n.Kind() != syntax.KindDefCal {
		return DefCal{}, false
	}
	return DefCal{StmtNode{wrapNode(n)}}, true
}

func (v DefCal) Name() (Identifier, bool) { return identChild(v.n) }

func (v DefCal) ReturnType() (Type, bool) { return firstType(v.n) }

func (v DefCal) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// Cal is a `cal { ... }` block of opaque pulse-grammar text, parsed per
// whatever grammar the enclosing file's DefCalGrammar names (§9: the
// body's internal structure is out of core scope).
type Cal struct{ StmtNode }

func CastCal(n *syntax.Node) (Cal, bool) {
	if n == nil || n.Kind() != syntax.KindCal {
		return Cal{}, false
	}
	return Cal{StmtNode{wrapNode(n)}}, true
}

func (v Cal) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// DefCalGrammar is `defcalgrammar "name";`, naming the grammar used to
// interpret subsequent Cal/DefCal bodies.
type DefCalGrammar struct{ StmtNode }

func CastDefCalGrammar(n *syntax.Node) (DefCalGrammar, bool) {
	if n == nil || n.Kind() != syntax.KindDefCalGrammar {
		return DefCalGrammar{}, false
	}
	return DefCalGrammar{StmtNode{wrapNode(n)}}, true
}

// GrammarName returns the naming string literal's text, quotes included.
func (v DefCalGrammar) GrammarName() string {
	if t := v.n.ChildTokenByKind(syntax.KindString); t != nil {
		return t.Text()
	}
	return ""
}

// TypeDeclarationStmt declares a type alias: `name : type;`.
type TypeDeclarationStmt struct{ StmtNode }

func CastTypeDeclarationStmt(n *syntax.Node) (TypeDeclarationStmt, bool) {
	if n == nil || n.Kind() != syntax.KindTypeDeclarationStmt {
		return TypeDeclarationStmt{}, false
	}
	return TypeDeclarationStmt{StmtNode{wrapNode(n)}}, true
}

func (v TypeDeclarationStmt) Name() (Identifier, bool) { return identChild(v.n) }
func (v TypeDeclarationStmt) Type() (Type, bool)        { return firstType(v.n) }

// ClassicalDeclarationStatement declares a classical variable, optionally
// `const`/`input`/`output` qualified, with an optional initializer.
type ClassicalDeclarationStatement struct{ StmtNode }

func CastClassicalDeclarationStatement(n *syntax.Node) (ClassicalDeclarationStatement, bool) {
	if n == nil || n.Kind() != syntax.KindClassicalDeclarationStatement {
		return ClassicalDeclarationStatement{}, false
	}
	return ClassicalDeclarationStatement{StmtNode{wrapNode(n)}}, true
}

func (v ClassicalDeclarationStatement) Type() (Type, bool) { return firstType(v.n) }
func (v ClassicalDeclarationStatement) Name() (Identifier, bool) { return identChild(v.n) }

func (v ClassicalDeclarationStatement) Init() (Expr, bool) {
	// The initializer is the first node after '='; a legacy register size
	// (`creg c[2];`) also follows the name but precedes any '='.
	eq := v.n.ChildTokenByKind(syntax.KindEq)
	if eq == nil {
		return nil, false
	}
	for _, c := range v.n.Children() {
		if c.Offset() > eq.Offset() {
			return CastExpr(c)
		}
	}
	return nil, false
}

// Modifier returns the leading 'const'/'input'/'output' keyword token's
// kind, if present.
func (v ClassicalDeclarationStatement) Modifier() (syntax.Kind, bool) {
	for _, c := range v.n.ChildrenWithTokens() {
		if !c.IsToken() {
			continue
		}
		switch c.Kind() {
		case syntax.KindKwConst, syntax.KindKwInput, syntax.KindKwOutput:
			return c.Kind(), true
		}
	}
	return syntax.KindNil, false
}

// QuantumDeclarationStatement declares a qubit or qubit register:
// `qubit[size]? name;`.
type QuantumDeclarationStatement struct{ StmtNode }

func CastQuantumDeclarationStatement(n *syntax.Node) (QuantumDeclarationStatement, bool) {
	if n == nil || n.Kind() != syntax.KindQuantumDeclarationStatement {
		return QuantumDeclarationStatement{}, false
	}
	return QuantumDeclarationStatement{StmtNode{wrapNode(n)}}, true
}

func (v QuantumDeclarationStatement) Type() (Type, bool)       { return firstType(v.n) }
func (v QuantumDeclarationStatement) Name() (Identifier, bool) { return identChild(v.n) }

// GateCallStmt is a statement-position gate invocation:
// `name(angle_args) qubit_operands;`.
type GateCallStmt struct{ StmtNode }

func CastGateCallStmt(n *syntax.Node) (GateCallStmt, bool) {
	if n == nil || n.Kind() != syntax.KindGateCallStmt {
		return GateCallStmt{}, false
	}
	return GateCallStmt{StmtNode{wrapNode(n)}}, true
}

func (v GateCallStmt) Callee() (Identifier, bool) { return identChild(v.n) }

func (v GateCallStmt) Args() []Expr {
	if args := v.n.ChildByKind(syntax.KindArgList); args != nil {
		return exprChildren(args)
	}
	return nil
}

func (v GateCallStmt) Operands() []GateOperand {
	if ops := v.n.ChildByKind(syntax.KindQubitList); ops != nil {
		return gateOperandChildren(ops)
	}
	return nil
}

// GPhaseCallStmt is `gphase(angle) qubit_operands?;`.
type GPhaseCallStmt struct{ StmtNode }

func CastGPhaseCallStmt(n *syntax.Node) (GPhaseCallStmt, bool) {
	if n == nil || n.Kind() != syntax.KindGPhaseCallStmt {
		return GPhaseCallStmt{}, false
	}
	return GPhaseCallStmt{StmtNode{wrapNode(n)}}, true
}

func (v GPhaseCallStmt) Args() []Expr {
	if args := v.n.ChildByKind(syntax.KindArgList); args != nil {
		return exprChildren(args)
	}
	return nil
}

func (v GPhaseCallStmt) Operands() []GateOperand {
	if ops := v.n.ChildByKind(syntax.KindQubitList); ops != nil {
		return gateOperandChildren(ops)
	}
	return nil
}

// LetStmt is `let name = value;`, aliasing an existing qubit/register
// expression. Value may be a flat or nested `++` concatenation; use
// FlattenConcat to normalize before comparing two LetStmts (§9).
type LetStmt struct{ StmtNode }

func CastLetStmt(n *syntax.Node) (LetStmt, bool) {
	if n == nil || n.Kind() != syntax.KindLetStmt {
		return LetStmt{}, false
	}
	return LetStmt{StmtNode{wrapNode(n)}}, true
}

func (v LetStmt) Name() (Identifier, bool) { return identChild(v.n) }

func (v LetStmt) Value() (Expr, bool) {
	name, hasName := v.Name()
	for _, c := range v.n.Children() {
		if hasName && c == name.Syntax() {
			continue
		}
		return CastExpr(c)
	}
	return nil, false
}

// AssignmentStmt is `target op= value;`, where op is one of §4.5's
// assignment operators.
type AssignmentStmt struct{ StmtNode }

func CastAssignmentStmt(n *syntax.Node) (AssignmentStmt, bool) {
	if n == nil || n.Kind() != syntax.KindAssignmentStmt {
		return AssignmentStmt{}, false
	}
	return AssignmentStmt{StmtNode{wrapNode(n)}}, true
}

func (v AssignmentStmt) Target() (Expr, bool) { return firstExprChild(v.n) }

func (v AssignmentStmt) Op() syntax.Kind {
	for _, c := range v.n.ChildrenWithTokens() {
		if c.IsToken() && c.Kind().IsAssignOp() {
			return c.Kind()
		}
	}
	return syntax.KindNil
}

func (v AssignmentStmt) Value() (Expr, bool) {
	children := v.n.Children()
	if len(children) < 2 {
		return nil, false
	}
	return CastExpr(children[len(children)-1])
}

// Include is `include filename;`. FilePath is manually implemented in
// manual.go to extract the quoted payload (§4.4).
type Include struct{ StmtNode }

func CastInclude(n *syntax.Node) (Include, bool) {
	if n == nil || n.Kind() != syntax.KindInclude {
		return Include{}, false
	}
	return Include{StmtNode{wrapNode(n)}}, true
}

// ForStmt is `for var in iterable { body }`. Iterable is manually
// implemented in manual.go: the production gives it no field name to
// derive an accessor from (§4.4, §9).
type ForStmt struct{ StmtNode }

func CastForStmt(n *syntax.Node) (ForStmt, bool) {
	if n == nil || n.Kind() != syntax.KindForStmt {
		return ForStmt{}, false
	}
	return ForStmt{StmtNode{wrapNode(n)}}, true
}

func (v ForStmt) LoopVar() (Identifier, bool) { return identChild(v.n) }

func (v ForStmt) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// IfStmt is `if (cond) then else?`. Then and Else are manually
// implemented in manual.go: Else is optional and neither child carries a
// distinguishing kind from the other branch in every case (§4.4, §9).
type IfStmt struct{ StmtNode }

func CastIfStmt(n *syntax.Node) (IfStmt, bool) {
	if n == nil || n.Kind() != syntax.KindIfStmt {
		return IfStmt{}, false
	}
	return IfStmt{StmtNode{wrapNode(n)}}, true
}

func (v IfStmt) Cond() (Expr, bool) { return firstExprChild(v.n) }

// WhileStmt is `while (cond) body`.
type WhileStmt struct{ StmtNode }

func CastWhileStmt(n *syntax.Node) (WhileStmt, bool) {
	if n == nil || n.Kind() != syntax.KindWhileStmt {
		return WhileStmt{}, false
	}
	return WhileStmt{StmtNode{wrapNode(n)}}, true
}

func (v WhileStmt) Cond() (Expr, bool) { return firstExprChild(v.n) }

func (v WhileStmt) Body() (BlockExpr, bool) {
	return CastBlockExpr(v.n.ChildByKind(syntax.KindBlockExpr))
}

// Reset is `reset operand;`.
type Reset struct{ StmtNode }

func CastReset(n *syntax.Node) (Reset, bool) {
	if n == nil || n.Kind() != syntax.KindReset {
		return Reset{}, false
	}
	return Reset{StmtNode{wrapNode(n)}}, true
}

func (v Reset) Operand() (GateOperand, bool) {
	for _, c := range v.n.Children() {
		if g, ok := CastGateOperand(c); ok {
			return g, true
		}
	}
	return GateOperand{}, false
}

// Measure is the statement-position form `measure operand;`, used
// without an arrow target. Per §8 scenario 4, the node's range ends at
// operand; any `-> target` belongs to the enclosing statement, out of
// core scope.
type Measure struct{ StmtNode }

func CastMeasure(n *syntax.Node) (Measure, bool) {
	if n == nil || n.Kind() != syntax.KindMeasure {
		return Measure{}, false
	}
	return Measure{StmtNode{wrapNode(n)}}, true
}

func (v Measure) Operand() (GateOperand, bool) {
	for _, c := range v.n.Children() {
		if g, ok := CastGateOperand(c); ok {
			return g, true
		}
	}
	return GateOperand{}, false
}

// Barrier is `barrier operands?;`.
type Barrier struct{ StmtNode }

func CastBarrier(n *syntax.Node) (Barrier, bool) {
	if n == nil || n.Kind() != syntax.KindBarrier {
		return Barrier{}, false
	}
	return Barrier{StmtNode{wrapNode(n)}}, true
}

func (v Barrier) Operands() []GateOperand { return gateOperandChildren(v.n) }

// VersionString is the file header `OPENQASM 3.0;` or `OPENQASM 3.1;`.
// Version returns the raw version token text, since the grammar this
// was drawn from leaves numeric parsing of it out of core scope (§6.4).
type VersionString struct{ StmtNode }

func CastVersionString(n *syntax.Node) (VersionString, bool) {
	if n == nil || n.Kind() != syntax.KindVersionString {
		return VersionString{}, false
	}
	return VersionString{StmtNode{wrapNode(n)}}, true
}

func (v VersionString) Version() string {
	for _, c := range v.n.ChildrenWithTokens() {
		if c.IsToken() && (c.Kind() == syntax.KindFloatNumber || c.Kind() == syntax.KindIntNumber) {
			return c.Text()
		}
	}
	return ""
}

// BreakStmt is `break;`, nullary.
type BreakStmt struct{ StmtNode }

func CastBreakStmt(n *syntax.Node) (BreakStmt, bool) {
	if n == nil || n.Kind() != syntax.KindBreakStmt {
		return BreakStmt{}, false
	}
	return BreakStmt{StmtNode{wrapNode(n)}}, true
}

// ContinueStmt is `continue;`, nullary.
type ContinueStmt struct{ StmtNode }

func CastContinueStmt(n *syntax.Node) (ContinueStmt, bool) {
	if n == nil || n.Kind() != syntax.KindContinueStmt {
		return ContinueStmt{}, false
	}
	return ContinueStmt{StmtNode{wrapNode(n)}}, true
}

// EndStmt is `end;`, nullary.
type EndStmt struct{ StmtNode }

func CastEndStmt(n *syntax.Node) (EndStmt, bool) {
	if n == nil || n.Kind() != syntax.KindEndStmt {
		return EndStmt{}, false
	}
	return EndStmt{StmtNode{wrapNode(n)}}, true
}

// ExprStmt wraps a bare expression used as a statement, e.g. a CallExpr
// invoked for its side effects: `f(a);`.
type ExprStmt struct{ StmtNode }

func CastExprStmt(n *syntax.Node) (ExprStmt, bool) {
	if n == nil || n.Kind() != syntax.KindExprStmt {
		return ExprStmt{}, false
	}
	return ExprStmt{StmtNode{wrapNode(n)}}, true
}

func (v ExprStmt) Inner() (Expr, bool) { return firstExprChild(v.n) }

func identifierChildren(n *syntax.Node) []Identifier {
	var out []Identifier
	for _, c := range n.Children() {
		if id, ok := CastIdentifier(c); ok {
			out = append(out, id)
		}
	}
	return out
}
