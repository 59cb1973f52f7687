// Package schema is the "Code-Generation Input" component (§2.7, §6.1):
// a concrete, in-memory description of the OQ3 grammar's node taxonomy —
// productions, labeled fields, enum-view membership, and the manual
// accessor exclusion list. It plays the role vartan's own
// spec/grammar.Report plays for its LALR tables, but describes a
// hand-written recursive-descent/Pratt grammar instead of a generated
// one: there is no conflict/state data here, only the taxonomy an
// accessor generator would consume to emit the views in package ast.
//
// Nothing in this package is parsed from a grammar file — vartan reads
// its Report out of a compiled `.vartan` spec; this grammar has no text
// form in scope, only the output contract a generator would target, so
// Describe builds the schema as a literal Go value.
package schema

// FieldShape describes how many times a labeled child can appear.
type FieldShape int

const (
	FieldSingle FieldShape = iota
	FieldOptional
	FieldRepeated
)

func (s FieldShape) String() string {
	switch s {
	case FieldSingle:
		return "single"
	case FieldOptional:
		return "optional"
	case FieldRepeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// Field is one labeled child of a production: a name the generator turns
// into an accessor method, the kind name(s) it accepts, and its shape.
type Field struct {
	Label string   `json:"label"`
	Kinds []string `json:"kinds"`
	Shape FieldShape `json:"shape"`
}

// Terminal describes one token kind, mirroring the role
// grammar.Terminal plays in vartan's Report: here Precedence/Assoc are
// descriptive metadata carried through to JSON output, not consulted by
// the parser (a Pratt parser asks the precedence package directly,
// rather than compiling a conflict table ahead of time).
type Terminal struct {
	Name          string `json:"name"`
	Pattern       string `json:"pattern"`
	Precedence    int    `json:"prec,omitempty"`
	Associativity string `json:"assoc,omitempty"`
}

// NonTerminal is one node kind's production: its fields and the enum
// views (if any) it belongs to.
type NonTerminal struct {
	Name      string   `json:"name"`
	Fields    []Field  `json:"fields"`
	EnumViews []string `json:"enum_views,omitempty"`
}

// EnumView is a named polymorphic view over a set of node kinds, e.g.
// Expr over BinExpr/CallExpr/.../Identifier.
type EnumView struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// ManualAccessor records one accessor the generator cannot derive
// mechanically and why, per the exclusion list of §4.4/§9.
type ManualAccessor struct {
	NodeKind string `json:"node_kind"`
	Accessor string `json:"accessor"`
	Reason   string `json:"reason"`
}

// Schema is the complete description: the generator's full input.
type Schema struct {
	Terminals       []Terminal       `json:"terminals"`
	NonTerminals    []NonTerminal    `json:"non_terminals"`
	EnumViews       []EnumView       `json:"enum_views"`
	ManualAccessors []ManualAccessor `json:"manual_accessors"`
}

var operatorTerminals = []Terminal{
	{Name: "=", Pattern: "'='", Precedence: 4, Associativity: "right"},
	{Name: "+=", Pattern: "'+='", Precedence: 4, Associativity: "right"},
	{Name: "-=", Pattern: "'-='", Precedence: 4, Associativity: "right"},
	{Name: "*=", Pattern: "'*='", Precedence: 4, Associativity: "right"},
	{Name: "/=", Pattern: "'/='", Precedence: 4, Associativity: "right"},
	{Name: "%=", Pattern: "'%='", Precedence: 4, Associativity: "right"},
	{Name: "<<=", Pattern: "'<<='", Precedence: 4, Associativity: "right"},
	{Name: ">>=", Pattern: "'>>='", Precedence: 4, Associativity: "right"},
	{Name: "&=", Pattern: "'&='", Precedence: 4, Associativity: "right"},
	{Name: "|=", Pattern: "'|='", Precedence: 4, Associativity: "right"},
	{Name: "^=", Pattern: "'^='", Precedence: 4, Associativity: "right"},
	{Name: "||", Pattern: "'||'", Precedence: 7, Associativity: "left"},
	{Name: "&&", Pattern: "'&&'", Precedence: 9, Associativity: "left"},
	{Name: "==", Pattern: "'=='", Precedence: 11, Associativity: "none"},
	{Name: "!=", Pattern: "'!='", Precedence: 11, Associativity: "none"},
	{Name: "<", Pattern: "'<'", Precedence: 11, Associativity: "none"},
	{Name: "<=", Pattern: "'<='", Precedence: 11, Associativity: "none"},
	{Name: ">", Pattern: "'>'", Precedence: 11, Associativity: "none"},
	{Name: ">=", Pattern: "'>='", Precedence: 11, Associativity: "none"},
	{Name: "|", Pattern: "'|'", Precedence: 13, Associativity: "left"},
	{Name: "^", Pattern: "'^'", Precedence: 15, Associativity: "left"},
	{Name: "&", Pattern: "'&'", Precedence: 17, Associativity: "left"},
	{Name: "<<", Pattern: "'<<'", Precedence: 19, Associativity: "left"},
	{Name: ">>", Pattern: "'>>'", Precedence: 19, Associativity: "left"},
	{Name: "+", Pattern: "'+'", Precedence: 21, Associativity: "left"},
	{Name: "-", Pattern: "'-'", Precedence: 21, Associativity: "left"},
	// '++' shares the additive tier at the token level (§9, open question:
	// its precedence relative to the rest of the table is not stated).
	{Name: "++", Pattern: "'++'", Precedence: 21, Associativity: "left"},
	{Name: "*", Pattern: "'*'", Precedence: 23, Associativity: "left"},
	{Name: "/", Pattern: "'/'", Precedence: 23, Associativity: "left"},
	{Name: "%", Pattern: "'%'", Precedence: 23, Associativity: "left"},
}

var keywordTerminals = []Terminal{
	{Name: "OPENQASM", Pattern: "'OPENQASM'"}, {Name: "def", Pattern: "'def'"},
	{Name: "gate", Pattern: "'gate'"}, {Name: "measure", Pattern: "'measure'"},
	{Name: "barrier", Pattern: "'barrier'"}, {Name: "cal", Pattern: "'cal'"},
	{Name: "defcal", Pattern: "'defcal'"}, {Name: "defcalgrammar", Pattern: "'defcalgrammar'"},
	{Name: "for", Pattern: "'for'"}, {Name: "while", Pattern: "'while'"},
	{Name: "if", Pattern: "'if'"}, {Name: "else", Pattern: "'else'"},
	{Name: "return", Pattern: "'return'"}, {Name: "box", Pattern: "'box'"},
	{Name: "break", Pattern: "'break'"}, {Name: "continue", Pattern: "'continue'"},
	{Name: "end", Pattern: "'end'"}, {Name: "let", Pattern: "'let'"},
	{Name: "const", Pattern: "'const'"}, {Name: "input", Pattern: "'input'"},
	{Name: "output", Pattern: "'output'"}, {Name: "creg", Pattern: "'creg'"},
	{Name: "qreg", Pattern: "'qreg'"}, {Name: "gphase", Pattern: "'gphase'"},
	{Name: "reset", Pattern: "'reset'"}, {Name: "include", Pattern: "'include'"},
	{Name: "in", Pattern: "'in'"},
	{Name: "bit", Pattern: "'bit'"}, {Name: "int", Pattern: "'int'"},
	{Name: "uint", Pattern: "'uint'"}, {Name: "float", Pattern: "'float'"},
	{Name: "angle", Pattern: "'angle'"}, {Name: "bool", Pattern: "'bool'"},
	{Name: "duration", Pattern: "'duration'"}, {Name: "stretch", Pattern: "'stretch'"},
	{Name: "complex", Pattern: "'complex'"}, {Name: "qubit", Pattern: "'qubit'"},
	{Name: "array", Pattern: "'array'"},
}

var literalTerminals = []Terminal{
	{Name: "int_number", Pattern: "[0-9]+"},
	{Name: "float_number", Pattern: "[0-9]+\\.[0-9]+"},
	{Name: "timing_int_number", Pattern: "[0-9]+(dt|ns|us|µs|ms|s)"},
	{Name: "timing_float_number", Pattern: "[0-9]+\\.[0-9]+(dt|ns|us|µs|ms|s)"},
	{Name: "string", Pattern: "\"...\"|'...'"},
	{Name: "bit_string", Pattern: "\"[01]+\""},
	{Name: "true", Pattern: "'true'"},
	{Name: "false", Pattern: "'false'"},
	{Name: "ident", Pattern: "[A-Za-z_][A-Za-z0-9_]*"},
}

var delimiterTerminals = []Terminal{
	{Name: "(", Pattern: "'('"}, {Name: ")", Pattern: "')'"},
	{Name: "{", Pattern: "'{'"}, {Name: "}", Pattern: "'}'"},
	{Name: "[", Pattern: "'['"}, {Name: "]", Pattern: "']'"},
	{Name: ",", Pattern: "','"}, {Name: ";", Pattern: "';'"},
	{Name: ":", Pattern: "':'"}, {Name: "::", Pattern: "'::'"},
	{Name: "->", Pattern: "'->'"}, {Name: "@", Pattern: "'@'"},
	{Name: "$digits", Pattern: "'$' [0-9]+"},
}

func field(label string, shape FieldShape, kinds ...string) Field {
	return Field{Label: label, Kinds: kinds, Shape: shape}
}

var itemProductions = []NonTerminal{
	{Name: "Def", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("name", FieldSingle, "Identifier"),
		field("params", FieldRepeated, "Identifier"),
		field("return_type", FieldOptional, "Type"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "Gate", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("name", FieldSingle, "Identifier"),
		field("angle_params", FieldRepeated, "Identifier"),
		field("qubit_args", FieldRepeated, "Identifier"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "DefCal", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("name", FieldSingle, "Identifier"),
		field("angle_params", FieldRepeated, "Identifier"),
		field("qubit_args", FieldRepeated, "Identifier"),
		field("return_type", FieldOptional, "Type"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "Cal", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "DefCalGrammar", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("grammar_name", FieldSingle, "string"),
	}},
	{Name: "TypeDeclarationStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("name", FieldSingle, "Identifier"),
		field("type", FieldSingle, "Type"),
	}},
	{Name: "ClassicalDeclarationStatement", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("modifier", FieldOptional, "const|input|output"),
		field("type", FieldSingle, "Type"),
		field("name", FieldSingle, "Identifier"),
		field("init", FieldOptional, "Expr"),
	}},
	{Name: "QuantumDeclarationStatement", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("type", FieldSingle, "Type"),
		field("name", FieldSingle, "Identifier"),
	}},
	{Name: "GateCallStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("callee", FieldSingle, "Identifier"),
		field("args", FieldRepeated, "Expr"),
		field("operands", FieldRepeated, "GateOperand"),
	}},
	{Name: "GPhaseCallStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("args", FieldRepeated, "Expr"),
		field("operands", FieldRepeated, "GateOperand"),
	}},
	{Name: "LetStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("name", FieldSingle, "Identifier"),
		field("value", FieldSingle, "Expr"),
	}},
	{Name: "AssignmentStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("target", FieldSingle, "Expr"),
		field("value", FieldSingle, "Expr"),
	}},
	{Name: "Include", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("file_path", FieldSingle, "FilePath"),
	}},
	{Name: "ForStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("loop_var", FieldSingle, "Identifier"),
		field("iterable", FieldSingle, "Expr"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "IfStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("cond", FieldSingle, "Expr"),
		field("then_branch", FieldSingle, "BlockExpr"),
		field("else_branch", FieldOptional, "Expr"),
	}},
	{Name: "WhileStmt", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("cond", FieldSingle, "Expr"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "Reset", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("operand", FieldSingle, "GateOperand"),
	}},
	{Name: "Measure", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("operand", FieldSingle, "GateOperand"),
	}},
	{Name: "Barrier", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("operands", FieldRepeated, "GateOperand"),
	}},
	{Name: "VersionString", EnumViews: []string{"Item", "Stmt"}, Fields: []Field{
		field("version", FieldSingle, "float_number|int_number"),
	}},
	{Name: "BreakStmt", EnumViews: []string{"Item", "Stmt"}},
	{Name: "ContinueStmt", EnumViews: []string{"Item", "Stmt"}},
	{Name: "EndStmt", EnumViews: []string{"Item", "Stmt"}},
	{Name: "ExprStmt", EnumViews: []string{"Stmt"}, Fields: []Field{
		field("inner", FieldSingle, "Expr"),
	}},
}

var exprProductions = []NonTerminal{
	{Name: "ArrayExpr", EnumViews: []string{"Expr"}, Fields: []Field{field("elements", FieldRepeated, "Expr")}},
	{Name: "BinExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("lhs", FieldSingle, "Expr"),
		field("op", FieldSingle, "operator token"),
		field("rhs", FieldSingle, "Expr"),
	}},
	{Name: "BlockExpr", EnumViews: []string{"Expr"}, Fields: []Field{field("statements", FieldRepeated, "Stmt")}},
	{Name: "BoxExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("designator", FieldOptional, "Expr"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "CallExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("callee", FieldSingle, "Expr"),
		field("args", FieldRepeated, "Expr"),
	}},
	{Name: "CastExpression", EnumViews: []string{"Expr"}, Fields: []Field{
		field("type", FieldSingle, "Type"),
		field("arg", FieldSingle, "Expr"),
	}},
	{Name: "IndexExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("base", FieldSingle, "Expr"),
		field("indices", FieldRepeated, "IndexKind"),
	}},
	{Name: "IndexedIdentifier", EnumViews: []string{"Expr"}, Fields: []Field{
		field("base", FieldSingle, "Identifier"),
		field("indices", FieldRepeated, "IndexKind"),
	}},
	{Name: "Literal", EnumViews: []string{"Expr"}, Fields: []Field{field("token", FieldSingle, "literal token")}},
	{Name: "ParenExpr", EnumViews: []string{"Expr"}, Fields: []Field{field("inner", FieldSingle, "Expr")}},
	{Name: "RangeExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("thestart", FieldOptional, "Expr"),
		field("step", FieldOptional, "Expr"),
		field("stop", FieldOptional, "Expr"),
	}},
	{Name: "ReturnExpr", EnumViews: []string{"Expr"}, Fields: []Field{field("value", FieldOptional, "Expr")}},
	{Name: "ArrayLiteral", EnumViews: []string{"Expr"}, Fields: []Field{field("elements", FieldRepeated, "Expr")}},
	{Name: "MeasureExpression", EnumViews: []string{"Expr"}, Fields: []Field{field("operand", FieldSingle, "GateOperand")}},
	{Name: "Identifier", EnumViews: []string{"Expr"}, Fields: []Field{field("name", FieldSingle, "ident token")}},
	{Name: "HardwareQubit", EnumViews: []string{"Expr"}, Fields: []Field{field("name", FieldSingle, "hardware qubit token")}},
	{Name: "BreakExpr", EnumViews: []string{"Expr"}, Fields: []Field{field("value", FieldOptional, "Expr")}},
	{Name: "ContinueExpr", EnumViews: []string{"Expr"}},
	{Name: "GateCallExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("callee", FieldSingle, "Expr"),
		field("args", FieldRepeated, "Expr"),
		field("operands", FieldRepeated, "GateOperand"),
	}},
	{Name: "IfExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("cond", FieldSingle, "Expr"),
		field("then_branch", FieldSingle, "BlockExpr"),
		field("else_branch", FieldOptional, "Expr"),
	}},
	{Name: "WhileExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("cond", FieldSingle, "Expr"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "ForExpr", EnumViews: []string{"Expr"}, Fields: []Field{
		field("loop_var", FieldSingle, "Identifier"),
		field("iterable", FieldSingle, "Expr"),
		field("body", FieldSingle, "BlockExpr"),
	}},
	{Name: "SetExpr", EnumViews: []string{"Expr"}, Fields: []Field{field("elements", FieldRepeated, "Expr")}},
}

var typeProductions = []NonTerminal{
	{Name: "BitType", EnumViews: []string{"Type"}, Fields: []Field{field("designator", FieldOptional, "Expr")}},
	{Name: "IntType", EnumViews: []string{"Type"}, Fields: []Field{field("designator", FieldOptional, "Expr")}},
	{Name: "UintType", EnumViews: []string{"Type"}, Fields: []Field{field("designator", FieldOptional, "Expr")}},
	{Name: "FloatType", EnumViews: []string{"Type"}, Fields: []Field{field("designator", FieldOptional, "Expr")}},
	{Name: "AngleType", EnumViews: []string{"Type"}, Fields: []Field{field("designator", FieldOptional, "Expr")}},
	{Name: "BoolType", EnumViews: []string{"Type"}},
	{Name: "DurationType", EnumViews: []string{"Type"}},
	{Name: "StretchType", EnumViews: []string{"Type"}},
	{Name: "ComplexType", EnumViews: []string{"Type"}, Fields: []Field{field("base", FieldSingle, "Type")}},
	{Name: "QubitType", EnumViews: []string{"Type"}, Fields: []Field{field("designator", FieldOptional, "Expr")}},
	{Name: "ArrayType", EnumViews: []string{"Type"}, Fields: []Field{
		field("element_type", FieldSingle, "Type"),
		field("size", FieldSingle, "Expr"),
	}},
}

var supportProductions = []NonTerminal{
	{Name: "ParamList", Fields: []Field{field("elements", FieldRepeated, "Identifier")}},
	{Name: "QubitList", Fields: []Field{field("elements", FieldRepeated, "GateOperand")}},
	{Name: "ArgList", Fields: []Field{field("elements", FieldRepeated, "Expr")}},
	{Name: "FilePath", Fields: []Field{field("payload", FieldSingle, "string token")}},
}

var enumViews = []EnumView{
	{Name: "Item", Members: itemNames()},
	{Name: "Stmt", Members: itemNames()},
	{Name: "Expr", Members: exprNames()},
	{Name: "Type", Members: typeNames()},
	{Name: "GateOperand", Members: []string{"Identifier", "IndexedIdentifier", "HardwareQubit"}},
	{Name: "IndexKind", Members: exprNames()},
}

func itemNames() []string {
	names := make([]string, 0, len(itemProductions))
	for _, p := range itemProductions {
		if p.Name != "ExprStmt" {
			names = append(names, p.Name)
		}
	}
	return names
}

func exprNames() []string {
	names := make([]string, 0, len(exprProductions))
	for _, p := range exprProductions {
		names = append(names, p.Name)
	}
	return names
}

func typeNames() []string {
	names := make([]string, 0, len(typeProductions))
	for _, p := range typeProductions {
		names = append(names, p.Name)
	}
	return names
}

// manualAccessors is the exclusion list of §4.4/§9: accessors written by
// hand in ast/manual.go because the generator cannot derive them from
// field labels alone.
var manualAccessors = []ManualAccessor{
	{NodeKind: "Gate", Accessor: "AngleParams", Reason: "two unlabeled ParamList children; disambiguated by position, not label"},
	{NodeKind: "Gate", Accessor: "QubitArgs", Reason: "two unlabeled ParamList children; disambiguated by position, not label"},
	{NodeKind: "DefCal", Accessor: "AngleParams", Reason: "shares Gate's leading optional-ParamList shape"},
	{NodeKind: "DefCal", Accessor: "QubitArgs", Reason: "qubit args are a QubitList child, not a second ParamList like Gate's"},
	{NodeKind: "IfStmt", Accessor: "Then", Reason: "then/else both BlockExpr children with no distinguishing kind"},
	{NodeKind: "IfStmt", Accessor: "Else", Reason: "optional branch with no distinguishing kind from Then"},
	{NodeKind: "ForStmt", Accessor: "Iterable", Reason: "production gives the range/array source no field name"},
	{NodeKind: "RangeExpr", Accessor: "TheStart", Reason: "plain name 'start' is intercepted by the generator"},
	{NodeKind: "Include", Accessor: "FilePath", Reason: "extracts the quoted payload of a string literal, not the literal token itself"},
}

// Describe returns the complete grammar schema for the OQ3 core: every
// terminal, every node kind's fields, every enum view, and the manual
// accessor exclusion list.
func Describe() *Schema {
	var nonTerminals []NonTerminal
	nonTerminals = append(nonTerminals, itemProductions...)
	nonTerminals = append(nonTerminals, exprProductions...)
	nonTerminals = append(nonTerminals, typeProductions...)
	nonTerminals = append(nonTerminals, supportProductions...)

	var terminals []Terminal
	terminals = append(terminals, keywordTerminals...)
	terminals = append(terminals, operatorTerminals...)
	terminals = append(terminals, literalTerminals...)
	terminals = append(terminals, delimiterTerminals...)

	return &Schema{
		Terminals:       terminals,
		NonTerminals:    nonTerminals,
		EnumViews:       enumViews,
		ManualAccessors: manualAccessors,
	}
}
