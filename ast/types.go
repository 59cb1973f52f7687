package ast

import "github.com/qasm3-go/oq3cst/syntax"

// Type is the enum view over every classical/quantum type node kind
// (§4.1): bit, int, uint, float, angle, bool, duration, stretch,
// complex, qubit, and array.
type Type interface {
	Syntax() *syntax.Node
	isType()
}

// TypeNode is embedded by every Type alternative.
type TypeNode struct{ Node }

func (v TypeNode) isType() {}

// Designator returns the type's bracketed size/width expression, if any
// (`bit[8]`, `int[32]`, `qubit[n]`, `float[64]`, ...). Types with no
// designator in the source return (nil, false).
func (v TypeNode) Designator() (Expr, bool) { return firstExprChild(v.n) }

// CastType narrows a red node to the Type view matching its kind, or
// returns (nil, false) if the node's kind is not a type kind.
func CastType(n *syntax.Node) (Type, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind() {
	case syntax.KindBitType:
		return BitType{TypeNode{wrapNode(n)}}, true
	case syntax.KindIntType:
		return IntType{TypeNode{wrapNode(n)}}, true
	case syntax.KindUintType:
		return UintType{TypeNode{wrapNode(n)}}, true
	case syntax.KindFloatType:
		return FloatType{TypeNode{wrapNode(n)}}, true
	case syntax.KindAngleType:
		return AngleType{TypeNode{wrapNode(n)}}, true
	case syntax.KindBoolType:
		return BoolType{TypeNode{wrapNode(n)}}, true
	case syntax.KindDurationType:
		return DurationType{TypeNode{wrapNode(n)}}, true
	case syntax.KindStretchType:
		return StretchType{TypeNode{wrapNode(n)}}, true
	case syntax.KindComplexType:
		return ComplexType{TypeNode{wrapNode(n)}}, true
	case syntax.KindQubitType:
		return QubitType{TypeNode{wrapNode(n)}}, true
	case syntax.KindArrayType:
		return ArrayType{TypeNode{wrapNode(n)}}, true
	default:
		return nil, false
	}
}

func firstType(n *syntax.Node) (Type, bool) {
	for _, c := range n.Children() {
		if t, ok := CastType(c); ok {
			return t, true
		}
	}
	return nil, false
}

type BitType struct{ TypeNode }

func CastBitType(n *syntax.Node) (BitType, bool) {
	if n == nil || n.Kind() != syntax.KindBitType {
		return BitType{}, false
	}
	return BitType{TypeNode{wrapNode(n)}}, true
}

type IntType struct{ TypeNode }

func CastIntType(n *syntax.Node) (IntType, bool) {
	if n == nil || n.Kind() != syntax.KindIntType {
		return IntType{}, false
	}
	return IntType{TypeNode{wrapNode(n)}}, true
}

type UintType struct{ TypeNode }

func CastUintType(n *syntax.Node) (UintType, bool) {
	if n == nil || n.Kind() != syntax.KindUintType {
		return UintType{}, false
	}
	return UintType{TypeNode{wrapNode(n)}}, true
}

type FloatType struct{ TypeNode }

func CastFloatType(n *syntax.Node) (FloatType, bool) {
	if n == nil || n.Kind() != syntax.KindFloatType {
		return FloatType{}, false
	}
	return FloatType{TypeNode{wrapNode(n)}}, true
}

type AngleType struct{ TypeNode }

func CastAngleType(n *syntax.Node) (AngleType, bool) {
	if n == nil || n.Kind() != syntax.KindAngleType {
		return AngleType{}, false
	}
	return AngleType{TypeNode{wrapNode(n)}}, true
}

type BoolType struct{ TypeNode }

func CastBoolType(n *syntax.Node) (BoolType, bool) {
	if n == nil || n.Kind() != syntax.KindBoolType {
		return BoolType{}, false
	}
	return BoolType{TypeNode{wrapNode(n)}}, true
}

type DurationType struct{ TypeNode }

func CastDurationType(n *syntax.Node) (DurationType, bool) {
	if n == nil || n.Kind() != syntax.KindDurationType {
		return DurationType{}, false
	}
	return DurationType{TypeNode{wrapNode(n)}}, true
}

type StretchType struct{ TypeNode }

func CastStretchType(n *syntax.Node) (StretchType, bool) {
	if n == nil || n.Kind() != syntax.KindStretchType {
		return StretchType{}, false
	}
	return StretchType{TypeNode{wrapNode(n)}}, true
}

type ComplexType struct{ TypeNode }

func CastComplexType(n *syntax.Node) (ComplexType, bool) {
	if n == nil || n.Kind() != syntax.KindComplexType {
		return ComplexType{}, false
	}
	return ComplexType{TypeNode{wrapNode(n)}}, true
}

// Base returns complex's element type, e.g. the `float[64]` in
// `complex[float[64]]`.
func (v ComplexType) Base() (Type, bool) { return firstType(v.n) }

type QubitType struct{ TypeNode }

func CastQubitType(n *syntax.Node) (QubitType, bool) {
	if n == nil || n.Kind() != syntax.KindQubitType {
		return QubitType{}, false
	}
	return QubitType{TypeNode{wrapNode(n)}}, true
}

// ArrayType is `array[elementType, size]`.
type ArrayType struct{ TypeNode }

func CastArrayType(n *syntax.Node) (ArrayType, bool) {
	if n == nil || n.Kind() != syntax.KindArrayType {
		return ArrayType{}, false
	}
	return ArrayType{TypeNode{wrapNode(n)}}, true
}

func (v ArrayType) ElementType() (Type, bool) { return firstType(v.n) }

func (v ArrayType) Size() (Expr, bool) { return firstExprChild(v.n) }
