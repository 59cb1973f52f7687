package syntax

import "testing"

func TestBuilder_SimpleTree(t *testing.T) {
	b := NewBuilder()
	root := b.StartNode(KindRoot)
	b.Token(KindKwOPENQASM, "OPENQASM")
	b.Token(KindWhitespace, " ")
	b.Token(KindFloatNumber, "3.0")
	b.Token(KindSemicolon, ";")
	b.FinishNode(root)

	tree := b.Finish()
	if tree.Kind() != KindRoot {
		t.Fatalf("root kind = %v, want %v", tree.Kind(), KindRoot)
	}
	if got, want := len(tree.Children()), 4; got != want {
		t.Fatalf("len(children) = %v, want %v", got, want)
	}
	if got, want := Text(tree), "OPENQASM 3.0;"; got != want {
		t.Fatalf("Text(tree) = %q, want %q", got, want)
	}
}

func TestBuilder_StartNodeAt(t *testing.T) {
	b := NewBuilder()
	root := b.StartNode(KindRoot)

	m := b.Mark()
	idCp := b.StartNode(KindIdentifier)
	b.Token(KindIdent, "q")
	b.FinishNode(idCp)

	binCp := b.StartNodeAt(KindBinExpr, m)
	b.Token(KindPlus, "+")
	litCp := b.StartNode(KindLiteral)
	b.Token(KindIntNumber, "1")
	b.FinishNode(litCp)
	b.FinishNode(binCp)

	b.FinishNode(root)
	tree := b.Finish()

	if got, want := len(tree.Children()), 1; got != want {
		t.Fatalf("root has %v children, want %v (the wrap should have consumed the identifier)", got, want)
	}
	bin, ok := AsNode(tree.Children()[0])
	if !ok || bin.Kind() != KindBinExpr {
		t.Fatalf("root's only child is not a BinExpr")
	}
	if got, want := len(bin.Children()), 3; got != want {
		t.Fatalf("BinExpr has %v children, want %v", got, want)
	}
	if got, want := Text(bin), "q+1"; got != want {
		t.Fatalf("Text(bin) = %q, want %q", got, want)
	}
}

func TestBuilder_UnbalancedFinishPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic from a mismatched FinishNode")
		}
	}()
	b := NewBuilder()
	outer := b.StartNode(KindRoot)
	b.StartNode(KindIdentifier)
	b.FinishNode(outer) // wrong checkpoint: Identifier frame is still open
}

func TestBuilder_TokenInterning(t *testing.T) {
	b := NewBuilder()
	root := b.StartNode(KindRoot)
	b.Token(KindComma, ",")
	b.Token(KindComma, ",")
	b.FinishNode(root)
	tree := b.Finish()

	c0, _ := AsToken(tree.Children()[0])
	c1, _ := AsToken(tree.Children()[1])
	if c0 != c1 {
		t.Fatalf("identical short punctuation tokens were not interned to the same *GreenToken")
	}
}

func TestBuilder_Error(t *testing.T) {
	b := NewBuilder()
	root := b.StartNode(KindRoot)
	b.Error(KindAt, "@")
	b.FinishNode(root)
	tree := b.Finish()

	errNode, ok := AsNode(tree.Children()[0])
	if !ok || errNode.Kind() != KindError {
		t.Fatalf("expected an Error node wrapping the stray token")
	}
	if got, want := Text(errNode), "@"; got != want {
		t.Fatalf("Text(errNode) = %q, want %q", got, want)
	}
}

func TestBuilder_UnwindToClosesAbandonedFrames(t *testing.T) {
	b := NewBuilder()
	root := b.StartNode(KindRoot)
	b.Token(KindIdent, "x")

	depth := b.Depth()
	b.StartNode(KindIfStmt)
	b.Token(KindKwIf, "if")
	b.StartNode(KindBinExpr) // a nested frame is also abandoned
	b.Token(KindIdent, "a")

	b.UnwindTo(depth)
	if got := b.Depth(); got != depth {
		t.Fatalf("Depth() after UnwindTo = %v, want %v", got, depth)
	}

	b.Token(KindSemicolon, ";")
	b.FinishNode(root)
	tree := b.Finish()

	if got, want := Text(tree), "xifa;"; got != want {
		t.Fatalf("Text(tree) = %q, want %q (no byte should be dropped)", got, want)
	}
	if got, want := len(tree.Children()), 3; got != want {
		t.Fatalf("root has %v children, want %v (ident, the unwound error blob, semicolon)", got, want)
	}
	wrapped, ok := AsNode(tree.Children()[1])
	if !ok || wrapped.Kind() != KindError {
		t.Fatalf("abandoned frame was not closed into an Error node")
	}
}

func TestBuilder_UnwindToNoopWhenNothingIsOpen(t *testing.T) {
	b := NewBuilder()
	root := b.StartNode(KindRoot)
	depth := b.Depth()
	b.UnwindTo(depth) // nothing to unwind; must not panic or change state
	if got := b.Depth(); got != depth {
		t.Fatalf("Depth() = %v, want %v", got, depth)
	}
	b.FinishNode(root)
	b.Finish()
}
