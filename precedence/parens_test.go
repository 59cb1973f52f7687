package precedence

import (
	"testing"

	"github.com/qasm3-go/oq3cst/syntax"
)

// buildIdent appends a single-token Identifier child to whatever node is
// open on b's stack.
func buildIdent(b *syntax.Builder, text string) {
	cp := b.StartNode(syntax.KindIdentifier)
	b.Token(syntax.KindIdent, text)
	b.FinishNode(cp)
}

func TestNeedsParensIn_TighterRightOperandNeedsNoParens(t *testing.T) {
	// a + b * c: the inner "b * c" BinExpr sits as the right operand of
	// the outer "+" BinExpr. Since '*' binds tighter than '+', no parens
	// are needed to preserve the grouping.
	b := syntax.NewBuilder()
	outer := b.StartNode(syntax.KindRoot)
	bin := b.StartNode(syntax.KindBinExpr)
	buildIdent(b, "a")
	b.Token(syntax.KindPlus, "+")
	inner := b.StartNode(syntax.KindBinExpr)
	buildIdent(b, "b")
	b.Token(syntax.KindStar, "*")
	buildIdent(b, "c")
	b.FinishNode(inner)
	b.FinishNode(bin)
	b.FinishNode(outer)

	root := syntax.NewRoot(b.Finish())
	parent := root.Children()[0]
	self := parent.Children()[1]

	if NeedsParensIn(self, parent) {
		t.Error("NeedsParensIn(b*c, a+_) = true, want false")
	}
}

func TestNeedsParensIn_LooserRightOperandNeedsParens(t *testing.T) {
	// a * (b + c) written without parens as a * b + c would reassociate
	// to (a * b) + c, so the "+" BinExpr must be parenthesized to survive
	// as the right operand of "*".
	b := syntax.NewBuilder()
	outer := b.StartNode(syntax.KindRoot)
	bin := b.StartNode(syntax.KindBinExpr)
	buildIdent(b, "a")
	b.Token(syntax.KindStar, "*")
	inner := b.StartNode(syntax.KindBinExpr)
	buildIdent(b, "b")
	b.Token(syntax.KindPlus, "+")
	buildIdent(b, "c")
	b.FinishNode(inner)
	b.FinishNode(bin)
	b.FinishNode(outer)

	root := syntax.NewRoot(b.Finish())
	parent := root.Children()[0]
	self := parent.Children()[1]

	if !NeedsParensIn(self, parent) {
		t.Error("NeedsParensIn(b+c, a*_) = false, want true")
	}
}

func TestNeedsParensIn_ArgListNeverNeedsParens(t *testing.T) {
	b := syntax.NewBuilder()
	outer := b.StartNode(syntax.KindRoot)
	args := b.StartNode(syntax.KindArgList)
	bin := b.StartNode(syntax.KindBinExpr)
	buildIdent(b, "a")
	b.Token(syntax.KindPlus, "+")
	buildIdent(b, "b")
	b.FinishNode(bin)
	b.FinishNode(args)
	b.FinishNode(outer)

	root := syntax.NewRoot(b.Finish())
	parent := root.Children()[0]
	self := parent.Children()[0]

	if NeedsParensIn(self, parent) {
		t.Error("an ArgList element should never need parens regardless of its own shape")
	}
}

func TestStatementRuleNeedsParens_BlockHeadedBinExpr(t *testing.T) {
	// An if-expression used as the lhs of a BinExpr, then placed at
	// statement position, would have its "if (...) {...}" re-parsed as
	// its own statement unless parenthesized.
	b := syntax.NewBuilder()
	outer := b.StartNode(syntax.KindRoot)
	bin := b.StartNode(syntax.KindBinExpr)
	ifExpr := b.StartNode(syntax.KindIfExpr)
	b.Token(syntax.KindKwIf, "if")
	b.FinishNode(ifExpr)
	b.Token(syntax.KindPlus, "+")
	buildIdent(b, "c")
	b.FinishNode(bin)
	b.FinishNode(outer)

	root := syntax.NewRoot(b.Finish())
	self := root.Children()[0]

	if !NeedsParensIn(self, root) {
		t.Error("a BinExpr whose left spine starts with an IfExpr must be parenthesized at statement position")
	}
}
