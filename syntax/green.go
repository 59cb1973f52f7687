package syntax

// GreenToken is an immutable leaf of the green tree: a kind and the exact
// source text it covers, trivia included.
type GreenToken struct {
	kind Kind
	text string
}

// NewGreenToken returns a green token. Callers normally go through a
// Builder rather than constructing tokens directly.
func NewGreenToken(kind Kind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() Kind    { return t.kind }
func (t *GreenToken) Text() string  { return t.text }
func (t *GreenToken) Width() int    { return len(t.text) }

// GreenNode is an immutable, ref-counted-by-sharing interior node: a kind
// and an ordered sequence of children (nodes or tokens). Its width is the
// sum of its children's widths, computed once at construction (§3).
type GreenNode struct {
	kind     Kind
	width    int
	children []GreenElement
}

// GreenElement is either a *GreenNode or a *GreenToken. Go has no sum
// types, so the interface plays that role; AsNode/AsToken discriminate.
type GreenElement interface {
	Kind() Kind
	Width() int
	isGreenElement()
}

func (*GreenNode) isGreenElement()  {}
func (*GreenToken) isGreenElement() {}

// NewGreenNode builds a node from already-finished children. Width is the
// sum of the children's widths; this is the one place that invariant is
// established.
func NewGreenNode(kind Kind, children []GreenElement) *GreenNode {
	w := 0
	for _, c := range children {
		w += c.Width()
	}
	return &GreenNode{kind: kind, width: w, children: children}
}

func (n *GreenNode) Kind() Kind               { return n.kind }
func (n *GreenNode) Width() int                { return n.width }
func (n *GreenNode) Children() []GreenElement { return n.children }

// AsNode narrows a GreenElement to *GreenNode, or returns (nil, false).
func AsNode(e GreenElement) (*GreenNode, bool) {
	n, ok := e.(*GreenNode)
	return n, ok
}

// AsToken narrows a GreenElement to *GreenToken, or returns (nil, false).
func AsToken(e GreenElement) (*GreenToken, bool) {
	t, ok := e.(*GreenToken)
	return t, ok
}

// Text concatenates the text of every token under e, depth-first,
// reproducing the exact source substring e covers (§3's round-trip
// invariant; this is the "Render" operation SPEC_FULL.md adds).
func Text(e GreenElement) string {
	var buf []byte
	writeText(e, &buf)
	return string(buf)
}

func writeText(e GreenElement, buf *[]byte) {
	switch v := e.(type) {
	case *GreenToken:
		*buf = append(*buf, v.text...)
	case *GreenNode:
		for _, c := range v.children {
			writeText(c, buf)
		}
	}
}

// FirstToken returns the first token reachable by always descending into
// the first child, or nil if e is an empty node.
func FirstToken(e GreenElement) *GreenToken {
	for {
		switch v := e.(type) {
		case *GreenToken:
			return v
		case *GreenNode:
			if len(v.children) == 0 {
				return nil
			}
			e = v.children[0]
		default:
			return nil
		}
	}
}

// LastToken returns the last token reachable by always descending into the
// last child, or nil if e is an empty node.
func LastToken(e GreenElement) *GreenToken {
	for {
		switch v := e.(type) {
		case *GreenToken:
			return v
		case *GreenNode:
			if len(v.children) == 0 {
				return nil
			}
			e = v.children[len(v.children)-1]
		default:
			return nil
		}
	}
}
