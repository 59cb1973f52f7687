package syntax

// Node is a red-tree cursor: a lazily-populated overlay on a shared green
// element that adds a parent pointer and an absolute byte offset without
// ever mutating the green data underneath it (§3, §4.3).
//
// Red nodes are cheap to create and are not interned: two Node values
// wrapping the same green element at the same position are equal in the
// sense that matters (kind, offset, green identity) but MUST NOT be
// compared with ==; compare by kind and TextRange, per §4.3.
type Node struct {
	green  GreenElement
	parent *Node
	offset int

	// childCache memoizes the red children computed for this node so that
	// repeated traversals of the same subtree reuse cursors instead of
	// reallocating them (§4.3: "O(1) amortized for cached traversals").
	childCache []*Node
}

// NewRoot wraps a green tree's root in a parentless red cursor at offset
// zero. This is the only entry point that manufactures a Node without a
// parent.
func NewRoot(green GreenElement) *Node {
	return &Node{green: green, offset: 0}
}

func (n *Node) Green() GreenElement { return n.green }
func (n *Node) Kind() Kind          { return n.green.Kind() }
func (n *Node) Parent() *Node       { return n.parent }

// Offset is the absolute byte offset of n's first character in the
// original source.
func (n *Node) Offset() int { return n.offset }

// TextRange returns the half-open [start, end) byte range n covers.
func (n *Node) TextRange() (start, end int) {
	return n.offset, n.offset + n.green.Width()
}

// Text returns the exact source text n covers, trivia included.
func (n *Node) Text() string {
	return Text(n.green)
}

// Token returns the green token backing n, if n wraps a token rather than
// a node.
func (n *Node) Token() (*GreenToken, bool) {
	return AsToken(n.green)
}

// IsToken/IsNode mirror Kind.IsToken/IsNode for the wrapped element.
func (n *Node) IsToken() bool { _, ok := n.green.(*GreenToken); return ok }
func (n *Node) IsNode() bool  { _, ok := n.green.(*GreenNode); return ok }

// ChildrenWithTokens returns the red cursors for every direct child
// (node or token) of n, computing and caching them on first access.
func (n *Node) ChildrenWithTokens() []*Node {
	if n.childCache != nil {
		return n.childCache
	}
	gn, ok := AsNode(n.green)
	if !ok {
		n.childCache = []*Node{}
		return n.childCache
	}
	children := make([]*Node, 0, len(gn.Children()))
	off := n.offset
	for _, c := range gn.Children() {
		children = append(children, &Node{green: c, parent: n, offset: off})
		off += c.Width()
	}
	n.childCache = children
	return children
}

// Children returns only the red cursors over node (not token) children.
func (n *Node) Children() []*Node {
	all := n.ChildrenWithTokens()
	out := make([]*Node, 0, len(all))
	for _, c := range all {
		if c.IsNode() {
			out = append(out, c)
		}
	}
	return out
}

// NextSibling returns the red cursor following n among its parent's node
// children (tokens are skipped), or nil if n is the last child or has no
// parent.
func (n *Node) NextSibling() *Node {
	return n.sibling(1)
}

// PrevSibling returns the red cursor preceding n among its parent's node
// children (tokens are skipped), or nil if n is the first child or has no
// parent.
func (n *Node) PrevSibling() *Node {
	return n.sibling(-1)
}

func (n *Node) sibling(delta int) *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.Children()
	for i, s := range siblings {
		if s == n {
			j := i + delta
			if j < 0 || j >= len(siblings) {
				return nil
			}
			return siblings[j]
		}
	}
	return nil
}

// FirstToken returns the red cursor over the first token under n.
func (n *Node) FirstToken() *Node {
	cur := n
	for {
		children := cur.ChildrenWithTokens()
		if len(children) == 0 {
			if cur.IsToken() {
				return cur
			}
			return nil
		}
		cur = children[0]
	}
}

// LastToken returns the red cursor over the last token under n.
func (n *Node) LastToken() *Node {
	cur := n
	for {
		children := cur.ChildrenWithTokens()
		if len(children) == 0 {
			if cur.IsToken() {
				return cur
			}
			return nil
		}
		cur = children[len(children)-1]
	}
}

// ChildByKind returns the first direct child node with the given kind, or
// nil. Typed AST accessors for singleton labeled children are built on
// top of this (and ChildrenByKind for repeated ones).
func (n *Node) ChildByKind(kind Kind) *Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// ChildrenByKind returns every direct child node with the given kind, in
// source order.
func (n *Node) ChildrenByKind(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// ChildTokenByKind returns the first direct token child with the given
// kind, or nil.
func (n *Node) ChildTokenByKind(kind Kind) *Node {
	for _, c := range n.ChildrenWithTokens() {
		if c.IsToken() && c.Kind() == kind {
			return c
		}
	}
	return nil
}

// NthChild returns the i-th direct child node (0-indexed, tokens
// excluded), or nil if out of range. Used by manually-implemented
// accessors that disambiguate two same-kind children by position, e.g.
// Gate's angle_params/qubit_args (§4.4, §9).
func (n *Node) NthChild(kind Kind, i int) *Node {
	matches := n.ChildrenByKind(kind)
	if i < 0 || i >= len(matches) {
		return nil
	}
	return matches[i]
}
