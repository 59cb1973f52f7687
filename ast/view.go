// Package ast is the typed AST facade over the lossless syntax tree
// (§4.4): a family of thin, non-owning views that wrap a *syntax.Node and
// expose one accessor per labeled grammar field.
//
// Most of this file's neighbors (expr.go, item.go, types.go, ...) are
// written the way a code generator driven by the grammar schema
// (package schema) would emit them: one view type per node kind, a Cast
// constructor, a Syntax accessor, and one method per labeled child. A few
// accessors cannot be derived mechanically from the grammar — two
// same-kind children with no distinguishing label, or a name the
// generator would otherwise intercept — and are written by hand in
// manual.go instead, per the exclusion list described in §4.4 and §9.
package ast

import "github.com/qasm3-go/oq3cst/syntax"

// Node is embedded by every typed view; it carries the wrapped red cursor
// and the handful of operations common to all of them.
type Node struct {
	n *syntax.Node
}

// Syntax returns the underlying red-tree node this view wraps.
func (v Node) Syntax() *syntax.Node { return v.n }

// Text returns the exact source text this view's node covers.
func (v Node) Text() string { return v.n.Text() }

func wrapNode(n *syntax.Node) Node { return Node{n: n} }
