package syntax

// Builder assembles a GreenNode tree from a flat event stream
// (start/token/finish), the way vartan's driver turns shift/reduce events
// into *driver/parser.Node values via SyntaxTreeBuilder.Shift/Reduce. The
// parser (package parser) is the only intended caller.
//
// Calls to StartNode and FinishNode must be balanced; Finish panics if
// they are not, the same defensive stance vartan's semantic stack takes
// when Reduce pops more frames than were pushed.
type Builder struct {
	// stack holds one entry per StartNode that has not yet been closed.
	// Each entry accumulates the children seen since it was opened.
	stack [][]GreenElement
	// internedTokens caches tokens by (kind, text) so identical tokens
	// share one *GreenToken (Token says which are cached), per §4.2's
	// "content-addressed cache" recommendation.
	internedTokens map[internKey]*GreenToken
	// root holds the outermost node once its StartNode/FinishNode pair at
	// depth 0 has closed.
	root *GreenNode
}

type internKey struct {
	kind Kind
	text string
}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder() *Builder {
	return &Builder{
		internedTokens: make(map[internKey]*GreenToken),
	}
}

// StartNode opens a new node of the given kind; subsequent Token/StartNode
// calls become its children until the matching FinishNode.
func (b *Builder) StartNode(kind Kind) Checkpoint {
	b.stack = append(b.stack, nil)
	cp := Checkpoint{depth: len(b.stack) - 1, kind: kind}
	return cp
}

// Checkpoint identifies an open node created by StartNode. Its kind is
// fixed at open time; FinishNode always closes with that kind, so callers
// cannot mismatch start/finish kinds.
type Checkpoint struct {
	depth int
	kind  Kind
}

// Mark records a position within the node currently open on top of the
// stack, to be passed to StartNodeAt later. This is what lets the Pratt
// parser (package parser) wrap an already-built left operand in a new
// BinExpr/CallExpr/IndexExpr node after the fact, once it has seen the
// operator that makes the wrapping necessary — the usual rowan-style
// "start_node_at" maneuver a left-recursive grammar needs and a plain
// recursive-descent one never does.
type Mark struct {
	depth int
	index int
}

// Mark returns a Mark at the current end of the open node's children.
func (b *Builder) Mark() Mark {
	top := len(b.stack) - 1
	if top < 0 {
		panic("syntax: Mark called with no open node")
	}
	return Mark{depth: top, index: len(b.stack[top])}
}

// StartNodeAt opens a new node of the given kind and retroactively
// reparents every child pushed since m was taken under it. m must refer
// to the node currently on top of the stack; nesting a StartNodeAt
// inside another open node between the Mark and this call is not
// supported, the same restriction rowan's green tree builder imposes.
func (b *Builder) StartNodeAt(kind Kind, m Mark) Checkpoint {
	top := len(b.stack) - 1
	if top != m.depth {
		panic("syntax: StartNodeAt mark does not refer to the currently open node")
	}
	reparented := b.stack[top][m.index:]
	b.stack[top] = b.stack[top][:m.index]
	b.stack = append(b.stack, append([]GreenElement(nil), reparented...))
	return Checkpoint{depth: len(b.stack) - 1, kind: kind}
}

// Token appends a token leaf to the node currently open on top of the
// stack. Identical (kind, text) tokens are interned so repeated
// identifiers and punctuation share storage.
func (b *Builder) Token(kind Kind, text string) {
	key := internKey{kind: kind, text: text}
	tok, ok := b.internedTokens[key]
	if !ok {
		tok = NewGreenToken(kind, text)
		// Every non-literal token (punctuation, keywords, identifiers,
		// trivia) is cached; literals only up to 8 bytes. Long literals
		// (strings, numbers) are not worth the retained memory.
		if !kind.IsLiteral() || len(text) <= 8 {
			b.internedTokens[key] = tok
		}
	}
	b.push(tok)
}

// Error appends a token wrapped in a first-class ERROR node, consuming
// input without discarding it (§7's structural-error contract).
func (b *Builder) Error(kind Kind, text string) {
	tok := NewGreenToken(kind, text)
	b.push(NewGreenNode(KindError, []GreenElement{tok}))
}

func (b *Builder) push(e GreenElement) {
	top := len(b.stack) - 1
	if top < 0 {
		panic("syntax: Token/Error called with no open node")
	}
	b.stack[top] = append(b.stack[top], e)
}

// FinishNode closes the node opened by the matching StartNode and attaches
// it as a child of the node one level up (or, at depth 0, becomes
// retrievable only via Finish).
func (b *Builder) FinishNode(cp Checkpoint) *GreenNode {
	if cp.depth != len(b.stack)-1 {
		panic("syntax: unbalanced StartNode/FinishNode calls")
	}
	children := b.stack[cp.depth]
	b.stack = b.stack[:cp.depth]
	node := NewGreenNode(cp.kind, children)
	if cp.depth > 0 {
		b.push(node)
	} else {
		// Stash the completed root so Finish can retrieve it even though
		// there is no parent frame to append it to.
		b.root = node
	}
	return node
}

// Depth returns the number of frames currently open. A caller that is
// about to run a production it might need to abort takes a Depth
// snapshot first and passes it to UnwindTo on failure.
func (b *Builder) Depth() int { return len(b.stack) }

// UnwindTo forcibly closes every frame opened since depth was recorded by
// Depth, wrapping each one's accumulated children in an ERROR node and
// attaching it to the frame below, so a panicking production never
// leaves the stack deeper than it found it. depth must not exceed the
// current depth.
func (b *Builder) UnwindTo(depth int) {
	for len(b.stack) > depth {
		top := len(b.stack) - 1
		children := b.stack[top]
		b.stack = b.stack[:top]
		node := NewGreenNode(KindError, children)
		if len(b.stack) > 0 {
			b.push(node)
		} else {
			b.root = node
		}
	}
}

// Finish returns the completed tree. It panics if any StartNode is still
// unmatched, and if no node was ever built.
func (b *Builder) Finish() *GreenNode {
	if len(b.stack) != 0 {
		panic("syntax: Finish called with unbalanced StartNode calls")
	}
	if b.root == nil {
		panic("syntax: Finish called before any node was built")
	}
	return b.root
}
