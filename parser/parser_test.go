package parser_test

import (
	"errors"
	"testing"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/parser"
	"github.com/t14raptor/go-scope/token"
)

func TestIssue26(t *testing.T) {
	code := `const a = {}
const c = { a: 1 }
for (a.b in c) {
  console.log(a.b)
}`
	_, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse code: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// firstStmt returns the concrete statement node from the i-th top-level statement.
func firstStmt(p *ast.Program, i int) ast.VisitableNode {
	return p.Body[i].Unwrap()
}

// exprOf extracts the inner concrete expression from an ExpressionStatement.
func exprOf(s ast.VisitableNode) ast.VisitableNode {
	return s.(*ast.ExpressionStatement).Expression.Unwrap()
}

// initializerExpr extracts the initializer expression from the first
// VariableDeclarator of a VariableDeclaration statement.
func initializerExpr(s ast.VisitableNode) ast.VisitableNode {
	init := s.(*ast.VariableDeclaration).List[0].Initializer
	if init == nil {
		return nil
	}
	return init.Unwrap()
}

// identifiers collects the names of all identifiers in source order.
type identifiers struct {
	ast.NoopVisitor
	names []string
}

func (v *identifiers) VisitIdentifier(n *ast.Identifier) {
	v.names = append(v.names, n.Name)
}

func collectIdentifiers(node ast.VisitableNode) []string {
	v := &identifiers{}
	v.V = v
	node.VisitWith(v)
	return v.names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------------

func TestVariableDeclarationAST(t *testing.T) {
	tests := []struct {
		code  string
		token token.Token
		names []string
	}{
		{"var a = 1, b;", token.Var, []string{"a", "b"}},
		{"let x = y;", token.Let, []string{"x"}},
		{"const k = 2;", token.Const, []string{"k"}},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		decl, ok := firstStmt(p, 0).(*ast.VariableDeclaration)
		if !ok {
			t.Fatalf("%q: stmt = %T; want *ast.VariableDeclaration", tt.code, firstStmt(p, 0))
		}
		if decl.Token != tt.token {
			t.Errorf("%q: token = %v; want %v", tt.code, decl.Token, tt.token)
		}
		if len(decl.List) != len(tt.names) {
			t.Fatalf("%q: declarators = %d; want %d", tt.code, len(decl.List), len(tt.names))
		}
		for i, name := range tt.names {
			id, ok := decl.List[i].Target.Target.(*ast.Identifier)
			if !ok || id.Name != name {
				t.Errorf("%q: declarator %d = %#v; want identifier %s", tt.code, i, decl.List[i].Target.Target, name)
			}
		}
	}
}

func TestFunctionDeclarationAST(t *testing.T) {
	p := mustParse(t, "async function f(a, b = 1, ...rest) { return a }")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration).Function

	if fn.Name == nil || fn.Name.Name != "f" {
		t.Fatalf("name = %v; want f", fn.Name)
	}
	if !fn.Async {
		t.Errorf("Async = false; want true")
	}
	if got := len(fn.ParameterList.List); got != 2 {
		t.Fatalf("params = %d; want 2", got)
	}
	if fn.ParameterList.List[1].Initializer == nil {
		t.Errorf("second param has no default value")
	}
	if fn.ParameterList.Rest == nil {
		t.Fatalf("rest parameter missing")
	}
	if id, ok := fn.ParameterList.Rest.Target.(*ast.Identifier); !ok || id.Name != "rest" {
		t.Errorf("rest = %#v; want identifier rest", fn.ParameterList.Rest.Target)
	}
	if got := len(fn.Body.List); got != 1 {
		t.Errorf("body statements = %d; want 1", got)
	}
}

func TestGeneratorDeclarationAST(t *testing.T) {
	p := mustParse(t, "function* gen() { yield* other() }")
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration).Function
	if !fn.Generator {
		t.Errorf("Generator = false; want true")
	}
	y, ok := exprOf(fn.Body.List[0].Unwrap()).(*ast.YieldExpression)
	if !ok {
		t.Fatalf("body[0] = %T; want *ast.YieldExpression", exprOf(fn.Body.List[0].Unwrap()))
	}
	if !y.Delegate {
		t.Errorf("Delegate = false; want true")
	}
}

func TestClassDeclarationAST(t *testing.T) {
	p := mustParse(t, `class A extends B {
  static count = 0;
  #secret;
  constructor(x) { this.x = x }
  get value() { return 1 }
  static { A.count++ }
}`)
	class := firstStmt(p, 0).(*ast.ClassDeclaration).Class
	if class.Name == nil || class.Name.Name != "A" {
		t.Fatalf("name = %v; want A", class.Name)
	}
	if class.SuperClass == nil {
		t.Fatalf("missing superclass")
	}
	if id, ok := class.SuperClass.Unwrap().(*ast.Identifier); !ok || id.Name != "B" {
		t.Errorf("superclass = %#v; want B", class.SuperClass.Unwrap())
	}
	if got := len(class.Body); got != 5 {
		t.Fatalf("class elements = %d; want 5", got)
	}

	field := class.Body[0].Element.(*ast.FieldDefinition)
	if !field.Static || field.Initializer == nil {
		t.Errorf("field = %+v; want static with initializer", field)
	}
	if _, ok := class.Body[1].Element.(*ast.FieldDefinition).Key.Unwrap().(*ast.PrivateIdentifier); !ok {
		t.Errorf("second field key is not a private identifier")
	}
	if m := class.Body[3].Element.(*ast.MethodDefinition); m.Kind != ast.PropertyKindGet {
		t.Errorf("getter kind = %v; want get", m.Kind)
	}
	if _, ok := class.Body[4].Element.(*ast.ClassStaticBlock); !ok {
		t.Errorf("last element = %T; want *ast.ClassStaticBlock", class.Body[4].Element)
	}
}

// ---------------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------------

func TestArrayLiteralAST(t *testing.T) {
	p := mustParse(t, "var a = [1, 'two', true, null, ...rest]")
	arr := initializerExpr(firstStmt(p, 0)).(*ast.ArrayLiteral)

	if got := len(arr.Value); got != 5 {
		t.Fatalf("array length = %d; want 5", got)
	}
	if n, ok := arr.Value[0].Unwrap().(*ast.NumberLiteral); !ok || n.Literal != "1" {
		t.Errorf("arr[0] = %#v; want number 1", arr.Value[0].Unwrap())
	}
	if s, ok := arr.Value[1].Unwrap().(*ast.StringLiteral); !ok || s.Value != "two" || s.Raw != "'two'" {
		t.Errorf("arr[1] = %#v; want string two", arr.Value[1].Unwrap())
	}
	if _, ok := arr.Value[2].Unwrap().(*ast.BooleanLiteral); !ok {
		t.Errorf("arr[2] = %T; want *ast.BooleanLiteral", arr.Value[2].Unwrap())
	}
	if _, ok := arr.Value[3].Unwrap().(*ast.NullLiteral); !ok {
		t.Errorf("arr[3] = %T; want *ast.NullLiteral", arr.Value[3].Unwrap())
	}
	if _, ok := arr.Value[4].Unwrap().(*ast.SpreadElement); !ok {
		t.Errorf("arr[4] = %T; want *ast.SpreadElement", arr.Value[4].Unwrap())
	}
}

func TestObjectLiteralAST(t *testing.T) {
	p := mustParse(t, "var o = { a: 1, b, [c]: 2, m() {}, ...d }")
	obj := initializerExpr(firstStmt(p, 0)).(*ast.ObjectLiteral)
	if got := len(obj.Value); got != 5 {
		t.Fatalf("properties = %d; want 5", got)
	}

	keyed := obj.Value[0].Prop.(*ast.PropertyKeyed)
	if keyed.Computed {
		t.Errorf("a: Computed = true; want false")
	}
	if short, ok := obj.Value[1].Prop.(*ast.PropertyShort); !ok || short.Name.Name != "b" {
		t.Errorf("props[1] = %#v; want shorthand b", obj.Value[1].Prop)
	}
	if computed := obj.Value[2].Prop.(*ast.PropertyKeyed); !computed.Computed {
		t.Errorf("[c]: Computed = false; want true")
	}
	if method := obj.Value[3].Prop.(*ast.PropertyKeyed); method.Kind != ast.PropertyKindMethod {
		t.Errorf("m: kind = %v; want method", method.Kind)
	}
	if _, ok := obj.Value[4].Prop.(*ast.SpreadElement); !ok {
		t.Errorf("props[4] = %T; want *ast.SpreadElement", obj.Value[4].Prop)
	}
}

func TestMemberExpressionAST(t *testing.T) {
	p := mustParse(t, "a.b[c].d")
	outer := exprOf(firstStmt(p, 0)).(*ast.MemberExpression)
	if outer.Computed {
		t.Errorf(".d: Computed = true; want false")
	}
	inner := outer.Object.Unwrap().(*ast.MemberExpression)
	if !inner.Computed {
		t.Errorf("[c]: Computed = false; want true")
	}
	if got, want := collectIdentifiers(outer), []string{"a", "b", "c", "d"}; !equalNames(got, want) {
		t.Errorf("identifiers = %v; want %v", got, want)
	}
}

func TestAssignmentOperatorsAST(t *testing.T) {
	tests := []struct {
		code string
		op   token.Token
	}{
		{"x = 1", token.Assign},
		{"x += 1", token.AddAssign},
		{"x -= 1", token.SubtractAssign},
		{"x ||= 1", token.LogicalOrAssign},
		{"x ??= 1", token.CoalesceAssign},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		assign, ok := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
		if !ok {
			t.Fatalf("%q: expr = %T; want *ast.AssignExpression", tt.code, exprOf(firstStmt(p, 0)))
		}
		if assign.Operator != tt.op {
			t.Errorf("%q: operator = %v; want %v", tt.code, assign.Operator, tt.op)
		}
		if id, ok := assign.Left.Unwrap().(*ast.Identifier); !ok || id.Name != "x" {
			t.Errorf("%q: left = %#v; want x", tt.code, assign.Left.Unwrap())
		}
	}
}

func TestUpdateExpressionsAST(t *testing.T) {
	tests := []struct {
		code    string
		op      token.Token
		postfix bool
	}{
		{"i++", token.Increment, true},
		{"++i", token.Increment, false},
		{"i--", token.Decrement, true},
		{"--i", token.Decrement, false},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		upd := exprOf(firstStmt(p, 0)).(*ast.UpdateExpression)
		if upd.Operator != tt.op || upd.Postfix != tt.postfix {
			t.Errorf("%q: got (%v, postfix=%v); want (%v, postfix=%v)", tt.code, upd.Operator, upd.Postfix, tt.op, tt.postfix)
		}
	}
}

func TestUnaryTypeofAST(t *testing.T) {
	p := mustParse(t, "typeof x")
	un := exprOf(firstStmt(p, 0)).(*ast.UnaryExpression)
	if un.Operator != token.Typeof {
		t.Errorf("operator = %v; want typeof", un.Operator)
	}
}

func TestSequenceExpressionAST(t *testing.T) {
	p := mustParse(t, "a, b, c")
	seq := exprOf(firstStmt(p, 0)).(*ast.SequenceExpression)
	if got := len(seq.Sequence); got != 3 {
		t.Errorf("sequence length = %d; want 3", got)
	}
}

func TestTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "`a${b}c${d}`")
	tmpl := exprOf(firstStmt(p, 0)).(*ast.TemplateLiteral)
	if got := len(tmpl.Expressions); got != 2 {
		t.Errorf("substitutions = %d; want 2", got)
	}
	if tmpl.Tag != nil {
		t.Errorf("untagged template has tag")
	}
}

func TestTaggedTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "tag`x${y}`")
	tmpl := exprOf(firstStmt(p, 0)).(*ast.TemplateLiteral)
	if tmpl.Tag == nil {
		t.Fatalf("missing tag")
	}
	if got, want := collectIdentifiers(tmpl), []string{"tag", "y"}; !equalNames(got, want) {
		t.Errorf("identifiers = %v; want %v", got, want)
	}
}

func TestArrowFunctionAST(t *testing.T) {
	tests := []struct {
		code   string
		params int
		block  bool
	}{
		{"x => x", 1, false},
		{"(a, b) => a + b", 2, false},
		{"async () => { await f() }", 0, true},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		fn, ok := exprOf(firstStmt(p, 0)).(*ast.ArrowFunctionLiteral)
		if !ok {
			t.Fatalf("%q: expr = %T; want *ast.ArrowFunctionLiteral", tt.code, exprOf(firstStmt(p, 0)))
		}
		if got := len(fn.ParameterList.List); got != tt.params {
			t.Errorf("%q: params = %d; want %d", tt.code, got, tt.params)
		}
		if _, block := fn.Body.Body.(*ast.BlockStatement); block != tt.block {
			t.Errorf("%q: block body = %v; want %v", tt.code, block, tt.block)
		}
	}
}

func TestNewExpressionAST(t *testing.T) {
	p := mustParse(t, "new Foo(a, b)")
	n := exprOf(firstStmt(p, 0)).(*ast.NewExpression)
	if id, ok := n.Callee.Unwrap().(*ast.Identifier); !ok || id.Name != "Foo" {
		t.Errorf("callee = %#v; want Foo", n.Callee.Unwrap())
	}
	if got := len(n.ArgumentList); got != 2 {
		t.Errorf("arguments = %d; want 2", got)
	}
}

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

func TestDestructuringDeclaration(t *testing.T) {
	p := mustParse(t, "const { a, b: [c, d = 1], ...e } = obj")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	pattern, ok := decl.List[0].Target.Target.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("target = %T; want *ast.ObjectPattern", decl.List[0].Target.Target)
	}
	if got := len(pattern.Properties); got != 2 {
		t.Errorf("properties = %d; want 2", got)
	}
	if pattern.Rest == nil {
		t.Errorf("missing rest element")
	}
	if got, want := collectIdentifiers(decl), []string{"a", "b", "c", "d", "e", "obj"}; !equalNames(got, want) {
		t.Errorf("identifiers = %v; want %v", got, want)
	}
}

func TestDestructuringAssignment(t *testing.T) {
	p := mustParse(t, "[a, b] = [b, a]")
	assign := exprOf(firstStmt(p, 0)).(*ast.AssignExpression)
	if _, ok := assign.Left.Unwrap().(*ast.ArrayPattern); !ok {
		t.Errorf("left = %T; want *ast.ArrayPattern", assign.Left.Unwrap())
	}
	if _, ok := assign.Right.Unwrap().(*ast.ArrayLiteral); !ok {
		t.Errorf("right = %T; want *ast.ArrayLiteral", assign.Right.Unwrap())
	}
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestForStatementAST(t *testing.T) {
	p := mustParse(t, "for (let i = 0; i < n; i++) { f(i) }")
	stmt := firstStmt(p, 0).(*ast.ForStatement)
	decl, ok := stmt.Initializer.Initializer.(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("initializer = %T; want *ast.VariableDeclaration", stmt.Initializer.Initializer)
	}
	if decl.Token != token.Let {
		t.Errorf("initializer token = %v; want let", decl.Token)
	}
	if stmt.Test == nil || stmt.Update == nil {
		t.Errorf("test/update missing: %+v", stmt)
	}
}

func TestForStatementEmptyAST(t *testing.T) {
	p := mustParse(t, "for (;;) {}")
	stmt := firstStmt(p, 0).(*ast.ForStatement)
	if stmt.Initializer != nil || stmt.Test != nil || stmt.Update != nil {
		t.Errorf("for(;;) has clauses: %+v", stmt)
	}
}

func TestForInStatementAST(t *testing.T) {
	p := mustParse(t, "for (const k in obj) {}")
	stmt := firstStmt(p, 0).(*ast.ForInStatement)
	decl, ok := stmt.Into.Into.(*ast.VariableDeclaration)
	if !ok || decl.Token != token.Const {
		t.Errorf("into = %#v; want const declaration", stmt.Into.Into)
	}
}

func TestForOfStatementAST(t *testing.T) {
	p := mustParse(t, "for (x of xs) {}")
	stmt := firstStmt(p, 0).(*ast.ForOfStatement)
	expr, ok := stmt.Into.Into.(*ast.Expression)
	if !ok {
		t.Fatalf("into = %T; want *ast.Expression", stmt.Into.Into)
	}
	if id, ok := expr.Unwrap().(*ast.Identifier); !ok || id.Name != "x" {
		t.Errorf("into = %#v; want x", expr.Unwrap())
	}
}

func TestTryCatchFinallyAST(t *testing.T) {
	p := mustParse(t, "try { a() } catch (e) { b(e) } finally { c() }")
	stmt := firstStmt(p, 0).(*ast.TryStatement)
	if stmt.Catch == nil || stmt.Catch.Parameter == nil {
		t.Fatalf("missing catch parameter")
	}
	if id, ok := stmt.Catch.Parameter.Target.(*ast.Identifier); !ok || id.Name != "e" {
		t.Errorf("catch param = %#v; want e", stmt.Catch.Parameter.Target)
	}
	if stmt.Finally == nil {
		t.Errorf("missing finally block")
	}
}

func TestSwitchCaseAST(t *testing.T) {
	p := mustParse(t, "switch (x) { case 1: a(); b(); break; default: c() }")
	stmt := firstStmt(p, 0).(*ast.SwitchStatement)
	if got := len(stmt.Body); got != 2 {
		t.Fatalf("clauses = %d; want 2", got)
	}
	if stmt.Body[0].Test == nil {
		t.Errorf("case 1 has no test")
	}
	if got := len(stmt.Body[0].Consequent); got != 3 {
		t.Errorf("case 1 consequent = %d; want 3", got)
	}
	if stmt.Body[1].Test != nil {
		t.Errorf("default clause has a test")
	}
}

func TestIfElseChainAST(t *testing.T) {
	p := mustParse(t, "if (a) b(); else if (c) d(); else e()")
	stmt := firstStmt(p, 0).(*ast.IfStatement)
	inner, ok := stmt.Alternate.Unwrap().(*ast.IfStatement)
	if !ok {
		t.Fatalf("alternate = %T; want *ast.IfStatement", stmt.Alternate.Unwrap())
	}
	if inner.Alternate == nil {
		t.Errorf("missing final else")
	}
}

func TestLabelledBreakContinue(t *testing.T) {
	p := mustParse(t, "outer: for (;;) { break outer }")
	stmt := firstStmt(p, 0).(*ast.LabelledStatement)
	if stmt.Label.Name != "outer" {
		t.Errorf("label = %q; want outer", stmt.Label.Name)
	}
}

func TestUseStrictDirective(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{`"use strict"; x = 1`, true},
		{`'use strict'`, true},
		{`x = 1; "use strict"`, false},
		{`"use\x20strict"`, false},
	}
	for _, tt := range tests {
		p := mustParse(t, tt.code)
		if got := p.Body.HasUseStrict(); got != tt.want {
			t.Errorf("HasUseStrict(%q) = %v; want %v", tt.code, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Positions
// ---------------------------------------------------------------------------

func TestIdentifierPositions(t *testing.T) {
	p := mustParse(t, "let abc = d")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	id := decl.List[0].Target.Target.(*ast.Identifier)
	if id.Idx.Offset() != 4 {
		t.Errorf("abc offset = %d; want 4", id.Idx.Offset())
	}
	if id.Idx1()-id.Idx0() != 3 {
		t.Errorf("abc length = %d; want 3", id.Idx1()-id.Idx0())
	}
	if p.End.Offset() != len("let abc = d") {
		t.Errorf("program end = %d; want %d", p.End.Offset(), len("let abc = d"))
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestParseErrors(t *testing.T) {
	cases := []string{
		"var",
		"if (",
		"(1 +)",
		"let [",
		"class {",
	}
	for _, code := range cases {
		_, err := parser.ParseFile(code)
		if err == nil {
			t.Errorf("expected parse error for: %s", code)
			continue
		}
		var perr *parser.Error
		if !errors.As(err, &perr) {
			t.Errorf("%q: error %v is not a *parser.Error", code, err)
		}
	}
}

func TestModulesUnsupported(t *testing.T) {
	_, err := parser.ParseFile(`import x from "y"`)
	if err == nil {
		t.Fatalf("expected error for import declaration")
	}
}

func TestEdgeCaseSyntax(t *testing.T) {
	cases := []string{
		"",
		";",
		";;;;;;",
		"(((((1)))))",
		"a?.b?.[c]?.(d)",
		"x ?? y",
		"label: { break label }",
		"#!/usr/bin/env node\nfoo()",
		"/* comment */ a // trailing",
		"async function* g() { for await (const x of y) yield x }",
	}
	for _, code := range cases {
		if _, err := parser.ParseFile(code); err != nil {
			t.Errorf("ParseFile(%q) error: %v", code, err)
		}
	}
}
