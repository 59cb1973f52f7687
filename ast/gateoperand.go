package ast

import "github.com/qasm3-go/oq3cst/syntax"

// GateOperand is the enum view over the three node kinds legal in a
// qubit-operand position: a plain Identifier, an IndexedIdentifier, or
// a HardwareQubit (§4.1, §8 scenario 4).
type GateOperand struct {
	Node
	kind syntax.Kind
}

// CastGateOperand narrows a red node to the GateOperand view, or returns
// (GateOperand{}, false) if n's kind is not a legal operand kind.
func CastGateOperand(n *syntax.Node) (GateOperand, bool) {
	if n == nil {
		return GateOperand{}, false
	}
	switch n.Kind() {
	case syntax.KindIdentifier, syntax.KindIndexedIdentifier, syntax.KindHardwareQubitExpr:
		return GateOperand{Node: wrapNode(n), kind: n.Kind()}, true
	default:
		return GateOperand{}, false
	}
}

// AsIdentifier narrows the operand to its Identifier form.
func (v GateOperand) AsIdentifier() (Identifier, bool) { return CastIdentifier(v.n) }

// AsIndexedIdentifier narrows the operand to its IndexedIdentifier form.
func (v GateOperand) AsIndexedIdentifier() (IndexedIdentifier, bool) {
	return CastIndexedIdentifier(v.n)
}

// AsHardwareQubit narrows the operand to its HardwareQubit form.
func (v GateOperand) AsHardwareQubit() (HardwareQubit, bool) { return CastHardwareQubit(v.n) }

func gateOperandChildren(n *syntax.Node) []GateOperand {
	var out []GateOperand
	for _, c := range n.Children() {
		if g, ok := CastGateOperand(c); ok {
			out = append(out, g)
		}
	}
	return out
}

// IndexKind is the enum view over the three node kinds legal inside an
// index expression's brackets: a bare Expr, a RangeExpr, or a SetExpr
// (§4.1).
type IndexKind struct {
	Node
	kind syntax.Kind
}

// CastIndexKind narrows a red node to the IndexKind view.
func CastIndexKind(n *syntax.Node) (IndexKind, bool) {
	if n == nil {
		return IndexKind{}, false
	}
	switch n.Kind() {
	case syntax.KindRangeExpr, syntax.KindSetExpr:
		return IndexKind{Node: wrapNode(n), kind: n.Kind()}, true
	default:
		if _, ok := CastExpr(n); ok {
			return IndexKind{Node: wrapNode(n), kind: n.Kind()}, true
		}
		return IndexKind{}, false
	}
}

// AsExpr narrows the index to its bare-expression form.
func (v IndexKind) AsExpr() (Expr, bool) { return CastExpr(v.n) }

// AsRangeExpr narrows the index to its RangeExpr form.
func (v IndexKind) AsRangeExpr() (RangeExpr, bool) { return CastRangeExpr(v.n) }

// AsSetExpr narrows the index to its SetExpr form.
func (v IndexKind) AsSetExpr() (SetExpr, bool) { return CastSetExpr(v.n) }

func indexKindChildren(n *syntax.Node) []IndexKind {
	var out []IndexKind
	children := n.Children()
	if len(children) > 0 {
		// The first node child is the indexed base, not an index.
		children = children[1:]
	}
	for _, c := range children {
		if ik, ok := CastIndexKind(c); ok {
			out = append(out, ik)
		}
	}
	return out
}
