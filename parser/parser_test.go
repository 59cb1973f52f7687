package parser

import (
	"testing"

	"github.com/qasm3-go/oq3cst/ast"
	"github.com/qasm3-go/oq3cst/syntax"
)

func parseOK(t *testing.T, src string) *syntax.Node {
	t.Helper()
	green, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	return syntax.NewRoot(green)
}

func TestParse_VersionString(t *testing.T) {
	root := parseOK(t, "OPENQASM 3.0;\n")
	stmt, ok := ast.CastVersionString(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a VersionString")
	}
	if got, want := stmt.Version(), "3.0"; got != want {
		t.Errorf("Version() = %q, want %q", got, want)
	}
}

func TestParse_QuantumDeclaration(t *testing.T) {
	root := parseOK(t, "qubit[2] q;")
	decl, ok := ast.CastQuantumDeclarationStatement(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a QuantumDeclarationStatement")
	}
	name, ok := decl.Name()
	if !ok || name.Name() != "q" {
		t.Errorf("Name() = %+v, %v; want \"q\", true", name, ok)
	}
	typ, ok := decl.Type()
	if !ok || typ.Syntax().Kind() != syntax.KindQubitType {
		t.Errorf("Type() kind = %v, want QubitType", typ.Syntax().Kind())
	}
}

func TestParse_LegacyRegisters(t *testing.T) {
	root := parseOK(t, "qreg q[2];\ncreg c[2];")
	qdecl, ok := ast.CastQuantumDeclarationStatement(root.Children()[0])
	if !ok {
		t.Fatal("qreg did not parse as a QuantumDeclarationStatement")
	}
	if typ, _ := qdecl.Type(); typ.Syntax().Kind() != syntax.KindQubitType {
		t.Errorf("qreg's synthesized type kind = %v, want QubitType", typ.Syntax().Kind())
	}

	cdecl, ok := ast.CastClassicalDeclarationStatement(root.Children()[1])
	if !ok {
		t.Fatal("creg did not parse as a ClassicalDeclarationStatement")
	}
	if typ, _ := cdecl.Type(); typ.Syntax().Kind() != syntax.KindBitType {
		t.Errorf("creg's synthesized type kind = %v, want BitType", typ.Syntax().Kind())
	}
}

func TestParse_GateCallStmt(t *testing.T) {
	root := parseOK(t, "rx(0.5) q[0];")
	call, ok := ast.CastGateCallStmt(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a GateCallStmt")
	}
	callee, ok := call.Callee()
	if !ok || callee.Name() != "rx" {
		t.Errorf("Callee() = %+v, %v; want \"rx\", true", callee, ok)
	}
	if got, want := len(call.Args()), 1; got != want {
		t.Fatalf("len(Args()) = %v, want %v", got, want)
	}
	if got, want := len(call.Operands()), 1; got != want {
		t.Fatalf("len(Operands()) = %v, want %v", got, want)
	}
}

func TestParse_GateCallStmt_NoAngleArgs(t *testing.T) {
	root := parseOK(t, "h q;")
	call, ok := ast.CastGateCallStmt(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a GateCallStmt")
	}
	if got, want := len(call.Args()), 0; got != want {
		t.Errorf("len(Args()) = %v, want %v", got, want)
	}
	if got, want := len(call.Operands()), 1; got != want {
		t.Errorf("len(Operands()) = %v, want %v", got, want)
	}
}

func TestParse_AssignmentVsGateCallDisambiguation(t *testing.T) {
	root := parseOK(t, "x = 1;")
	if _, ok := ast.CastAssignmentStmt(root.Children()[0]); !ok {
		t.Fatalf("\"x = 1;\" should parse as an AssignmentStmt, got kind %v", root.Children()[0].Kind())
	}
}

func TestParse_ExprStmtVsGateCallDisambiguation(t *testing.T) {
	root := parseOK(t, "foo();")
	if _, ok := ast.CastExprStmt(root.Children()[0]); !ok {
		t.Fatalf("\"foo();\" should parse as an ExprStmt, got kind %v", root.Children()[0].Kind())
	}
}

func TestParse_IfElseIfElseChain(t *testing.T) {
	root := parseOK(t, `
if (a == 1) {
    x = 1;
} else if (a == 2) {
    x = 2;
} else {
    x = 3;
}`)
	stmt, ok := ast.CastIfStmt(root.Children()[0])
	if !ok {
		t.Fatal("first item is not an IfStmt")
	}
	if _, ok := stmt.Then(); !ok {
		t.Fatal("IfStmt.Then() did not find a BlockExpr")
	}
	elseBranch, ok := stmt.Else()
	if !ok {
		t.Fatal("IfStmt.Else() did not find the else-if chain")
	}
	nestedIf, ok := ast.CastIfExpr(elseBranch.Syntax())
	if !ok {
		t.Fatalf("IfStmt.Else() branch kind = %v, want IfExpr", elseBranch.Syntax().Kind())
	}
	if _, ok := nestedIf.Else(); !ok {
		t.Fatal("the nested else-if's own Else() did not find the final plain else block")
	}
}

func TestParse_ForLoop(t *testing.T) {
	root := parseOK(t, `
for int i in 0:3 {
    x = i;
}`)
	stmt, ok := ast.CastForStmt(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a ForStmt")
	}
	loopVar, ok := stmt.LoopVar()
	if !ok || loopVar.Name() != "i" {
		t.Errorf("LoopVar() = %+v, %v; want \"i\", true", loopVar, ok)
	}
	if _, ok := stmt.Body(); !ok {
		t.Fatal("ForStmt.Body() did not find a BlockExpr")
	}
}

func TestParse_BinExprPrecedence(t *testing.T) {
	root := parseOK(t, "x = a + b * c;")
	assign, ok := ast.CastAssignmentStmt(root.Children()[0])
	if !ok {
		t.Fatal("first item is not an AssignmentStmt")
	}
	value, ok := assign.Value()
	if !ok {
		t.Fatal("AssignmentStmt.Value() missing")
	}
	outer, ok := ast.CastBinExpr(value.Syntax())
	if !ok {
		t.Fatalf("value kind = %v, want BinExpr", value.Syntax().Kind())
	}
	if got := outer.Op(); got != syntax.KindPlus {
		t.Fatalf("outer BinExpr operator = %v, want '+'", got)
	}
	rhs, ok := outer.Rhs()
	if !ok {
		t.Fatal("outer BinExpr has no rhs")
	}
	inner, ok := ast.CastBinExpr(rhs.Syntax())
	if !ok {
		t.Fatalf("rhs kind = %v, want BinExpr (b * c)", rhs.Syntax().Kind())
	}
	if got := inner.Op(); got != syntax.KindStar {
		t.Fatalf("inner BinExpr operator = %v, want '*'", got)
	}
}

func TestParse_IndexedIdentifierVsIndexExpr(t *testing.T) {
	root := parseOK(t, "reset q[0];")
	reset, ok := ast.CastReset(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a Reset")
	}
	operand, ok := reset.Operand()
	if !ok {
		t.Fatal("Reset.Operand() missing")
	}
	if _, ok := operand.AsIndexedIdentifier(); !ok {
		t.Fatalf("q[0] as a gate operand should narrow to IndexedIdentifier, got kind %v", operand.Syntax().Kind())
	}
}

func TestParse_RangeExpr(t *testing.T) {
	root := parseOK(t, "x = a[1:3];")
	assign, _ := ast.CastAssignmentStmt(root.Children()[0])
	value, _ := assign.Value()
	idx, ok := ast.CastIndexExpr(value.Syntax())
	if !ok {
		t.Fatalf("value kind = %v, want IndexExpr", value.Syntax().Kind())
	}
	indices := idx.Indices()
	if len(indices) != 1 {
		t.Fatalf("len(Indices()) = %v, want 1", len(indices))
	}
	rng, ok := indices[0].AsRangeExpr()
	if !ok {
		t.Fatalf("index kind = %v, want RangeExpr", indices[0].Syntax().Kind())
	}
	if _, ok := rng.TheStart(); !ok {
		t.Error("RangeExpr.TheStart() missing")
	}
	if _, ok := rng.Stop(); !ok {
		t.Error("RangeExpr.Stop() missing")
	}
}

func TestParse_GateDefinition_WithAngleParams(t *testing.T) {
	root := parseOK(t, `
gate rz(theta) q {
    U(0, 0, theta) q;
}`)
	gate, ok := ast.CastGate(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a Gate")
	}
	angle := gate.AngleParams()
	if len(angle) != 1 || angle[0].Name() != "theta" {
		t.Fatalf("AngleParams() = %v, want [theta]", angle)
	}
	qubits := gate.QubitArgs()
	if len(qubits) != 1 || qubits[0].Name() != "q" {
		t.Fatalf("QubitArgs() = %v, want [q]", qubits)
	}
}

func TestParse_GateDefinition_NoAngleParams(t *testing.T) {
	root := parseOK(t, `
gate h q {
}`)
	gate, ok := ast.CastGate(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a Gate")
	}
	if got := gate.AngleParams(); len(got) != 0 {
		t.Fatalf("AngleParams() = %v, want empty (parens omitted entirely)", got)
	}
	qubits := gate.QubitArgs()
	if len(qubits) != 1 || qubits[0].Name() != "q" {
		t.Fatalf("QubitArgs() = %v, want [q]", qubits)
	}
}

func TestParse_DefCal_QubitArgsIsQubitList(t *testing.T) {
	root := parseOK(t, `defcal rx(theta) q { }`)
	dc, ok := ast.CastDefCal(root.Children()[0])
	if !ok {
		t.Fatal("first item is not a DefCal")
	}
	if dc.Syntax().ChildByKind(syntax.KindQubitList) == nil {
		t.Fatal("DefCal should hold its qubit args in a QubitList child, not a ParamList")
	}
	qubits := dc.QubitArgs()
	if len(qubits) != 1 || qubits[0].Name() != "q" {
		t.Fatalf("QubitArgs() = %v, want [q]", qubits)
	}
}

func TestParse_ErrorRecoveryContinuesAfterMalformedItem(t *testing.T) {
	green, err := Parse("qubit q;\n@@@\nqubit r;")
	if err == nil {
		t.Fatal("expected accumulated errors for the stray '@@@' item")
	}
	root := syntax.NewRoot(green)
	var quantumDecls int
	for _, c := range root.Children() {
		if c.Kind() == syntax.KindQuantumDeclarationStatement {
			quantumDecls++
		}
	}
	if quantumDecls != 2 {
		t.Fatalf("found %v QuantumDeclarationStatement items, want 2 (parsing should resynchronize and continue)", quantumDecls)
	}
}
