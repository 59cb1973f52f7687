package precedence

import (
	"testing"

	"github.com/qasm3-go/oq3cst/syntax"
)

func TestOperatorPower(t *testing.T) {
	tests := []struct {
		op   syntax.Kind
		want Power
	}{
		{syntax.KindEq, Power{4, 3}},
		{syntax.KindAmpAmp, Power{9, 10}},
		{syntax.KindPlus, Power{21, 22}},
		{syntax.KindPlusPlus, Power{21, 22}},
		{syntax.KindStar, Power{23, 24}},
	}
	for _, tt := range tests {
		if got := OperatorPower(tt.op); got != tt.want {
			t.Errorf("OperatorPower(%v) = %v, want %v", tt.op, got, tt.want)
		}
	}
}

func TestOperatorPower_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-operator kind")
		}
	}()
	OperatorPower(syntax.KindLParen)
}

func TestIsBinaryOperator(t *testing.T) {
	if !IsBinaryOperator(syntax.KindPlus) {
		t.Error("IsBinaryOperator(KindPlus) = false, want true")
	}
	if IsBinaryOperator(syntax.KindLParen) {
		t.Error("IsBinaryOperator(KindLParen) = true, want false")
	}
	if IsBinaryOperator(syntax.KindColon) {
		t.Error("IsBinaryOperator(KindColon) = true, want false (range binding power is not in the operator table)")
	}
}

func TestClassification(t *testing.T) {
	if !IsParenLike(syntax.KindIdentifier) {
		t.Error("Identifier should be paren-like")
	}
	if !IsPrefix(syntax.KindReturnExpr) {
		t.Error("ReturnExpr should be prefix")
	}
	if !IsPostfix(syntax.KindCallExpr) {
		t.Error("CallExpr should be postfix")
	}
	if !IsInfix(syntax.KindBinExpr) {
		t.Error("BinExpr should be infix")
	}
	if IsInfix(syntax.KindCallExpr) {
		t.Error("CallExpr is postfix, not infix")
	}
}

func TestRequiresSemiToBeStmt(t *testing.T) {
	if RequiresSemiToBeStmt(syntax.KindIfExpr) {
		t.Error("IfExpr should not require a trailing ';' as a statement")
	}
	if !RequiresSemiToBeStmt(syntax.KindCallExpr) {
		t.Error("CallExpr should require a trailing ';' as a statement")
	}
}
