package syntax

import "testing"

func buildSample() *GreenNode {
	b := NewBuilder()
	root := b.StartNode(KindRoot)
	id := b.StartNode(KindIdentifier)
	b.Token(KindIdent, "q")
	b.FinishNode(id)
	b.Token(KindWhitespace, " ")
	lit := b.StartNode(KindLiteral)
	b.Token(KindIntNumber, "0")
	b.FinishNode(lit)
	b.FinishNode(root)
	return b.Finish()
}

func TestNode_OffsetsAndText(t *testing.T) {
	root := NewRoot(buildSample())
	children := root.ChildrenWithTokens()
	if got, want := len(children), 3; got != want {
		t.Fatalf("len(children) = %v, want %v", got, want)
	}

	id, lit := children[0], children[2]
	if got, want := id.Offset(), 0; got != want {
		t.Fatalf("id.Offset() = %v, want %v", got, want)
	}
	if got, want := lit.Offset(), 2; got != want {
		t.Fatalf("lit.Offset() = %v, want %v", got, want)
	}
	start, end := lit.TextRange()
	if got, want := [2]int{start, end}, [2]int{2, 3}; got != want {
		t.Fatalf("lit.TextRange() = %v, want %v", got, want)
	}
	if got, want := id.Text(), "q"; got != want {
		t.Fatalf("id.Text() = %q, want %q", got, want)
	}
}

func TestNode_ChildrenFiltersTokens(t *testing.T) {
	root := NewRoot(buildSample())
	if got, want := len(root.Children()), 2; got != want {
		t.Fatalf("len(root.Children()) = %v, want %v (whitespace token should be excluded)", got, want)
	}
}

func TestNode_Siblings(t *testing.T) {
	root := NewRoot(buildSample())
	id := root.Children()[0]
	lit := root.Children()[1]

	if got := id.NextSibling(); got == nil || got.Kind() != KindLiteral {
		t.Fatalf("id.NextSibling() did not return the Literal node")
	}
	if got := lit.PrevSibling(); got == nil || got.Kind() != KindIdentifier {
		t.Fatalf("lit.PrevSibling() did not return the Identifier node")
	}
	if got := id.PrevSibling(); got != nil {
		t.Fatalf("id.PrevSibling() = %v, want nil", got)
	}
}

func TestNode_ChildByKind(t *testing.T) {
	root := NewRoot(buildSample())
	if got := root.ChildByKind(KindLiteral); got == nil {
		t.Fatal("ChildByKind(KindLiteral) = nil, want the Literal node")
	}
	if got := root.ChildByKind(KindBinExpr); got != nil {
		t.Fatalf("ChildByKind(KindBinExpr) = %v, want nil", got)
	}
}
