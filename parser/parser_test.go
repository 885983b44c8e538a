package parser_test

import (
	"testing"

	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/parser"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseScript(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

func mustParseOpts(t *testing.T, code string, opts parser.Options) *ast.Program {
	t.Helper()
	p, err := parser.Parse(code, opts)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

func mustFail(t *testing.T, code string) error {
	t.Helper()
	_, err := parser.ParseScript(code)
	if err == nil {
		t.Fatalf("expected error parsing:\n%s", code)
	}
	return err
}

func mustFailOpts(t *testing.T, code string, opts parser.Options) error {
	t.Helper()
	_, err := parser.Parse(code, opts)
	if err == nil {
		t.Fatalf("expected error parsing:\n%s", code)
	}
	return err
}

func firstStmt(p *ast.Program, i int) ast.Stmt {
	return p.Body[i]
}

func exprOf(s ast.Stmt) ast.Expr {
	return s.(*ast.ExpressionStatement).Expression
}

func initializerExpr(s ast.Stmt) ast.Expr {
	return s.(*ast.VariableDeclaration).Declarations[0].Init
}

func bodyOf(s ast.Stmt) *ast.BlockStatement {
	return s.(*ast.FunctionDeclaration).Body
}

// ===========================================================================
// Concrete end-to-end scenarios
// ===========================================================================

func TestConstDeclarationAST(t *testing.T) {
	p := mustParse(t, "const fooBar = 123;")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	if decl.Kind != "const" {
		t.Fatalf("Kind = %q, want const", decl.Kind)
	}
	if len(decl.Declarations) != 1 {
		t.Fatalf("len(Declarations) = %d, want 1", len(decl.Declarations))
	}
	id, ok := decl.Declarations[0].Id.(*ast.Identifier)
	if !ok || id.Name != "fooBar" {
		t.Fatalf("Id = %#v, want Identifier fooBar", decl.Declarations[0].Id)
	}
	lit, ok := decl.Declarations[0].Init.(*ast.Literal)
	if !ok || lit.Value.(float64) != 123 {
		t.Fatalf("Init = %#v, want Literal 123", decl.Declarations[0].Init)
	}
}

func TestDivisionVsUnaryMinusAST(t *testing.T) {
	p := mustParse(t, "1 / -1")
	bin := exprOf(firstStmt(p, 0)).(*ast.BinaryExpression)
	if bin.Operator != "/" {
		t.Fatalf("Operator = %q, want /", bin.Operator)
	}
	left, ok := bin.Left.(*ast.Literal)
	if !ok || left.Value.(float64) != 1 {
		t.Fatalf("Left = %#v, want Literal 1", bin.Left)
	}
	un, ok := bin.Right.(*ast.UnaryExpression)
	if !ok || un.Operator != "-" || !un.Prefix {
		t.Fatalf("Right = %#v, want UnaryExpression -", bin.Right)
	}
	arg, ok := un.Argument.(*ast.Literal)
	if !ok || arg.Value.(float64) != 1 {
		t.Fatalf("Argument = %#v, want Literal 1", un.Argument)
	}
}

func TestRegExpLiteralAST(t *testing.T) {
	p := mustParse(t, "/a/i")
	lit := exprOf(firstStmt(p, 0)).(*ast.Literal)
	if lit.Regex == nil {
		t.Fatalf("Regex = nil, want non-nil")
	}
	if lit.Regex.Pattern != "a" || lit.Regex.Flags != "i" {
		t.Fatalf("Regex = %#v, want {a i}", lit.Regex)
	}
}

func TestRegExpDuplicateFlagFails(t *testing.T) {
	mustFail(t, "/./gig;")
}

func TestPrefixIncrementAST(t *testing.T) {
	p := mustParse(t, "++x")
	up := exprOf(firstStmt(p, 0)).(*ast.UpdateExpression)
	if up.Operator != "++" || !up.Prefix {
		t.Fatalf("UpdateExpression = %#v, want prefix ++", up)
	}
	id, ok := up.Argument.(*ast.Identifier)
	if !ok || id.Name != "x" {
		t.Fatalf("Argument = %#v, want Identifier x", up.Argument)
	}
}

func TestDirectivePrologueDelaysStrictMode(t *testing.T) {
	mustFail(t, "function f(){ 'use strict'; var eval; }")
}

func TestStatementBeforeDirectiveNeverEntersStrictMode(t *testing.T) {
	mustParse(t, "function f(){ var eval; 'use strict'; }")
}

func TestUseStrictAfterDirectiveFailsOnEval(t *testing.T) {
	mustFail(t, "function f(){ 'use strict'; 'use strict'; var eval; }")
}

func TestImportNamespaceAST(t *testing.T) {
	p := mustParseOpts(t, `import * as m from 's'`, parser.Options{SourceType: ast.SourceTypeModule})
	imp := firstStmt(p, 0).(*ast.ImportDeclaration)
	if len(imp.Specifiers) != 1 {
		t.Fatalf("len(Specifiers) = %d, want 1", len(imp.Specifiers))
	}
	ns, ok := imp.Specifiers[0].(*ast.ImportNamespaceSpecifier)
	if !ok || ns.Local.Name != "m" {
		t.Fatalf("Specifiers[0] = %#v, want ImportNamespaceSpecifier m", imp.Specifiers[0])
	}
	if imp.Source.Value.(string) != "s" {
		t.Fatalf("Source = %#v, want Literal s", imp.Source)
	}
}

func TestArrowTwoParamsAST(t *testing.T) {
	p := mustParse(t, "(a,b)=>a+b")
	arrow := exprOf(firstStmt(p, 0)).(*ast.ArrowFunctionExpression)
	if len(arrow.Params) != 2 {
		t.Fatalf("len(Params) = %d, want 2", len(arrow.Params))
	}
	for i, name := range []string{"a", "b"} {
		id, ok := arrow.Params[i].(*ast.Identifier)
		if !ok || id.Name != name {
			t.Fatalf("Params[%d] = %#v, want Identifier %s", i, arrow.Params[i], name)
		}
	}
	if !arrow.Expression {
		t.Fatalf("Expression = false, want true (concise body)")
	}
}

func TestArrowDoublyParenthesizedParamsFails(t *testing.T) {
	mustFail(t, "((a),(b))=>0")
}

// ===========================================================================
// Expressions
// ===========================================================================

func TestArrayLiteralAST(t *testing.T) {
	p := mustParse(t, "[1, 2, 3]")
	arr := exprOf(firstStmt(p, 0)).(*ast.ArrayExpression)
	if len(arr.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(arr.Elements))
	}
}

func TestArrayLiteralElisionAST(t *testing.T) {
	p := mustParse(t, "[1, , 3]")
	arr := exprOf(firstStmt(p, 0)).(*ast.ArrayExpression)
	if len(arr.Elements) != 3 {
		t.Fatalf("len(Elements) = %d, want 3", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Fatalf("Elements[1] = %#v, want nil (elision)", arr.Elements[1])
	}
}

func TestArrayLiteralSpreadAST(t *testing.T) {
	p := mustParse(t, "[...a, b]")
	arr := exprOf(firstStmt(p, 0)).(*ast.ArrayExpression)
	if _, ok := arr.Elements[0].(*ast.SpreadElement); !ok {
		t.Fatalf("Elements[0] = %#v, want SpreadElement", arr.Elements[0])
	}
}

func TestObjectLiteralShorthandAST(t *testing.T) {
	p := mustParse(t, "({a, b: 1})")
	obj := exprOf(firstStmt(p, 0)).(*ast.ObjectExpression)
	if len(obj.Properties) != 2 {
		t.Fatalf("len(Properties) = %d, want 2", len(obj.Properties))
	}
	first := obj.Properties[0].(*ast.Property)
	if !first.Shorthand {
		t.Fatalf("Properties[0].Shorthand = false, want true")
	}
}

func TestObjectLiteralSpreadAST(t *testing.T) {
	p := mustParse(t, "({...a, b: 1})")
	obj := exprOf(firstStmt(p, 0)).(*ast.ObjectExpression)
	if _, ok := obj.Properties[0].(*ast.SpreadElement); !ok {
		t.Fatalf("Properties[0] = %#v, want SpreadElement", obj.Properties[0])
	}
}

func TestTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "`a${b}c`")
	tpl := exprOf(firstStmt(p, 0)).(*ast.TemplateLiteral)
	if len(tpl.Quasis) != 2 || len(tpl.Expressions) != 1 {
		t.Fatalf("TemplateLiteral = %#v, want 2 quasis / 1 expression", tpl)
	}
	if tpl.Quasis[0].Cooked != "a" || tpl.Quasis[1].Cooked != "c" {
		t.Fatalf("Quasis cooked = %q/%q, want a/c", tpl.Quasis[0].Cooked, tpl.Quasis[1].Cooked)
	}
}

func TestTaggedTemplateLiteralAST(t *testing.T) {
	p := mustParse(t, "tag`x`")
	tagged := exprOf(firstStmt(p, 0)).(*ast.TaggedTemplateExpression)
	id, ok := tagged.Tag.(*ast.Identifier)
	if !ok || id.Name != "tag" {
		t.Fatalf("Tag = %#v, want Identifier tag", tagged.Tag)
	}
}

func TestSequenceExpressionAST(t *testing.T) {
	p := mustParse(t, "a, b, c")
	seq := exprOf(firstStmt(p, 0)).(*ast.SequenceExpression)
	if len(seq.Expressions) != 3 {
		t.Fatalf("len(Expressions) = %d, want 3", len(seq.Expressions))
	}
}

func TestConditionalExpressionAST(t *testing.T) {
	p := mustParse(t, "a ? b : c")
	cond := exprOf(firstStmt(p, 0)).(*ast.ConditionalExpression)
	if _, ok := cond.Test.(*ast.Identifier); !ok {
		t.Fatalf("Test = %#v, want Identifier", cond.Test)
	}
}

func TestOptionalChainingAST(t *testing.T) {
	p := mustParse(t, "a?.b?.c")
	chain := exprOf(firstStmt(p, 0)).(*ast.ChainExpression)
	outer, ok := chain.Expression.(*ast.MemberExpression)
	if !ok || !outer.Optional {
		t.Fatalf("Expression = %#v, want optional MemberExpression", chain.Expression)
	}
}

func TestOptionalCallAST(t *testing.T) {
	p := mustParse(t, "a?.()")
	chain := exprOf(firstStmt(p, 0)).(*ast.ChainExpression)
	call, ok := chain.Expression.(*ast.CallExpression)
	if !ok || !call.Optional {
		t.Fatalf("Expression = %#v, want optional CallExpression", chain.Expression)
	}
}

func TestNewExpressionAST(t *testing.T) {
	p := mustParse(t, "new Foo(1, 2)")
	n := exprOf(firstStmt(p, 0)).(*ast.NewExpression)
	if len(n.Arguments) != 2 {
		t.Fatalf("len(Arguments) = %d, want 2", len(n.Arguments))
	}
}

func TestClassPrivateFieldAST(t *testing.T) {
	p := mustParse(t, "class C { #x = 1; get() { return this.#x; } }")
	cls := firstStmt(p, 0).(*ast.ClassDeclaration)
	field, ok := cls.Body.Body[0].(*ast.PropertyDefinition)
	if !ok {
		t.Fatalf("Body[0] = %#v, want PropertyDefinition", cls.Body.Body[0])
	}
	if _, ok := field.Key.(*ast.PrivateIdentifier); !ok {
		t.Fatalf("Key = %#v, want PrivateIdentifier", field.Key)
	}
}

func TestClassStaticBlockAST(t *testing.T) {
	p := mustParse(t, "class C { static { x = 1; } }")
	cls := firstStmt(p, 0).(*ast.ClassDeclaration)
	if _, ok := cls.Body.Body[0].(*ast.StaticBlock); !ok {
		t.Fatalf("Body[0] = %#v, want StaticBlock", cls.Body.Body[0])
	}
}

func TestObjectRestPatternAST(t *testing.T) {
	p := mustParse(t, "const {a, ...rest} = obj;")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	pat := decl.Declarations[0].Id.(*ast.ObjectPattern)
	if len(pat.Properties) != 2 {
		t.Fatalf("len(Properties) = %d, want 2", len(pat.Properties))
	}
	if _, ok := pat.Properties[1].(*ast.RestElement); !ok {
		t.Fatalf("Properties[1] = %#v, want RestElement", pat.Properties[1])
	}
}

func TestBigIntLiteralAST(t *testing.T) {
	p := mustParse(t, "100n")
	lit := exprOf(firstStmt(p, 0)).(*ast.BigIntLiteral)
	if lit.Value != "100" {
		t.Fatalf("Value = %q, want 100", lit.Value)
	}
}

func TestOptionalCatchBindingAST(t *testing.T) {
	p := mustParse(t, "try {} catch {}")
	try := firstStmt(p, 0).(*ast.TryStatement)
	if try.Handler.Param != nil {
		t.Fatalf("Handler.Param = %#v, want nil", try.Handler.Param)
	}
}

// ===========================================================================
// Statements
// ===========================================================================

func TestIfElseChainAST(t *testing.T) {
	p := mustParse(t, "if (a) b; else if (c) d; else e;")
	ifStmt := firstStmt(p, 0).(*ast.IfStatement)
	elseIf, ok := ifStmt.Alternate.(*ast.IfStatement)
	if !ok {
		t.Fatalf("Alternate = %#v, want IfStatement", ifStmt.Alternate)
	}
	if _, ok := elseIf.Alternate.(*ast.ExpressionStatement); !ok {
		t.Fatalf("Alternate.Alternate = %#v, want ExpressionStatement", elseIf.Alternate)
	}
}

func TestForStatementFullAST(t *testing.T) {
	p := mustParse(t, "for (let i = 0; i < 10; i++) {}")
	f := firstStmt(p, 0).(*ast.ForStatement)
	if f.Init == nil || f.Test == nil || f.Update == nil {
		t.Fatalf("ForStatement = %#v, want all clauses present", f)
	}
}

func TestForOfAwaitAST(t *testing.T) {
	p := mustParseOpts(t, "async function f() { for await (const x of y) {} }", parser.Options{Next: true})
	fn := firstStmt(p, 0).(*ast.FunctionDeclaration)
	forOf := fn.Body.Body[0].(*ast.ForOfStatement)
	if !forOf.Await {
		t.Fatalf("Await = false, want true")
	}
}

func TestForOfAwaitRequiresNextOption(t *testing.T) {
	mustFail(t, "async function f() { for await (const x of y) {} }")
}

func TestSwitchStatementAST(t *testing.T) {
	p := mustParse(t, "switch (a) { case 1: b; break; default: c; }")
	sw := firstStmt(p, 0).(*ast.SwitchStatement)
	if len(sw.Cases) != 2 {
		t.Fatalf("len(Cases) = %d, want 2", len(sw.Cases))
	}
	if sw.Cases[1].Test != nil {
		t.Fatalf("Cases[1].Test = %#v, want nil (default)", sw.Cases[1].Test)
	}
}

func TestSwitchMultipleDefaultFails(t *testing.T) {
	mustFail(t, "switch (a) { default: b; default: c; }")
}

func TestLabeledBreakContinueAST(t *testing.T) {
	p := mustParse(t, "outer: for (;;) { continue outer; break outer; }")
	labeled := firstStmt(p, 0).(*ast.LabeledStatement)
	if labeled.Label.Name != "outer" {
		t.Fatalf("Label = %#v, want outer", labeled.Label)
	}
}

func TestTryCatchFinallyAST(t *testing.T) {
	p := mustParse(t, "try { a(); } catch (e) { b(); } finally { c(); }")
	try := firstStmt(p, 0).(*ast.TryStatement)
	if try.Handler == nil || try.Finalizer == nil {
		t.Fatalf("TryStatement = %#v, want handler and finalizer", try)
	}
	id, ok := try.Handler.Param.(*ast.Identifier)
	if !ok || id.Name != "e" {
		t.Fatalf("Handler.Param = %#v, want Identifier e", try.Handler.Param)
	}
}

func TestWithStatementAST(t *testing.T) {
	p := mustParse(t, "with (obj) { a; }")
	if _, ok := firstStmt(p, 0).(*ast.WithStatement); !ok {
		t.Fatalf("Body[0] = %#v, want WithStatement", firstStmt(p, 0))
	}
}

func TestWithStatementFailsInStrictMode(t *testing.T) {
	mustFail(t, "'use strict'; with (obj) { a; }")
}

// ===========================================================================
// Modules
// ===========================================================================

func TestExportDefaultAnonymousFunctionAST(t *testing.T) {
	p := mustParseOpts(t, "export default function() {}", parser.Options{SourceType: ast.SourceTypeModule})
	exp := firstStmt(p, 0).(*ast.ExportDefaultDeclaration)
	fn, ok := exp.Declaration.(*ast.FunctionDeclaration)
	if !ok || fn.Id != nil {
		t.Fatalf("Declaration = %#v, want anonymous FunctionDeclaration", exp.Declaration)
	}
}

func TestExportNamedWithSourceAST(t *testing.T) {
	p := mustParseOpts(t, "export { a, b as c } from 's'", parser.Options{SourceType: ast.SourceTypeModule})
	exp := firstStmt(p, 0).(*ast.ExportNamedDeclaration)
	if len(exp.Specifiers) != 2 || exp.Source == nil {
		t.Fatalf("ExportNamedDeclaration = %#v, want 2 specifiers and a source", exp)
	}
}

func TestExportAllAsNamespaceAST(t *testing.T) {
	p := mustParseOpts(t, "export * as ns from 's'", parser.Options{SourceType: ast.SourceTypeModule})
	exp := firstStmt(p, 0).(*ast.ExportAllDeclaration)
	if exp.Exported == nil || exp.Exported.Name != "ns" {
		t.Fatalf("Exported = %#v, want ns", exp.Exported)
	}
}

func TestImportOutsideModuleFails(t *testing.T) {
	mustFail(t, "import x from 'y'")
}

// ===========================================================================
// JSX
// ===========================================================================

func TestJSXElementAST(t *testing.T) {
	p := mustParseOpts(t, "const el = <div className=\"x\">{y}</div>;", parser.Options{JSX: true})
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	el := decl.Declarations[0].Init.(*ast.JSXElement)
	name := el.OpeningElement.Name.(*ast.JSXIdentifier)
	if name.Name != "div" {
		t.Fatalf("Name = %#v, want div", name)
	}
	if len(el.OpeningElement.Attributes) != 1 {
		t.Fatalf("len(Attributes) = %d, want 1", len(el.OpeningElement.Attributes))
	}
	foundExpr := false
	for _, child := range el.Children {
		if _, ok := child.(*ast.JSXExpressionContainer); ok {
			foundExpr = true
		}
	}
	if !foundExpr {
		t.Fatalf("Children = %#v, want a JSXExpressionContainer", el.Children)
	}
}

func TestJSXWithoutOptionFails(t *testing.T) {
	mustFail(t, "const el = <div/>;")
}

func TestJSXSelfClosingAST(t *testing.T) {
	p := mustParseOpts(t, "<Foo.Bar />", parser.Options{JSX: true})
	el := exprOf(firstStmt(p, 0)).(*ast.JSXElement)
	if !el.OpeningElement.SelfClosing {
		t.Fatalf("SelfClosing = false, want true")
	}
	member, ok := el.OpeningElement.Name.(*ast.JSXMemberExpression)
	if !ok || member.Property.Name != "Bar" {
		t.Fatalf("Name = %#v, want JSXMemberExpression ending in Bar", el.OpeningElement.Name)
	}
}

// ===========================================================================
// Stage-3 / V8 option packs
// ===========================================================================

func TestDynamicImportRequiresNextOption(t *testing.T) {
	mustFail(t, "import('x')")
}

func TestDynamicImportAST(t *testing.T) {
	p := mustParseOpts(t, "import('x')", parser.Options{Next: true})
	imp := exprOf(firstStmt(p, 0)).(*ast.ImportExpression)
	lit, ok := imp.Source.(*ast.Literal)
	if !ok || lit.Value.(string) != "x" {
		t.Fatalf("Source = %#v, want Literal x", imp.Source)
	}
}

func TestImportMetaAST(t *testing.T) {
	p := mustParseOpts(t, "import.meta", parser.Options{SourceType: ast.SourceTypeModule})
	meta := exprOf(firstStmt(p, 0)).(*ast.MetaProperty)
	if meta.Meta.Name != "import" || meta.Property.Name != "meta" {
		t.Fatalf("MetaProperty = %#v, want import.meta", meta)
	}
}

func TestRegExpDotAllFlagRequiresNextOption(t *testing.T) {
	mustFail(t, "/./s")
}

func TestRegExpDotAllFlagAST(t *testing.T) {
	p := mustParseOpts(t, "/./s", parser.Options{Next: true})
	lit := exprOf(firstStmt(p, 0)).(*ast.Literal)
	if lit.Regex.Flags != "s" {
		t.Fatalf("Flags = %q, want s", lit.Regex.Flags)
	}
}

func TestDoExpressionRequiresV8Option(t *testing.T) {
	mustFail(t, "let x = do { 1; };")
}

func TestDoExpressionAST(t *testing.T) {
	p := mustParseOpts(t, "let x = do { 1; };", parser.Options{V8: true})
	doExpr := initializerExpr(firstStmt(p, 0)).(*ast.DoExpression)
	if len(doExpr.Body.Body) != 1 {
		t.Fatalf("Body = %#v, want one statement", doExpr.Body)
	}
}

func TestThrowExpressionRequiresNextOrV8(t *testing.T) {
	mustFail(t, "const x = a ?? throw new Error();")
}

func TestThrowExpressionAST(t *testing.T) {
	p := mustParseOpts(t, "const x = a ?? throw new Error();", parser.Options{Next: true})
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	logical := decl.Declarations[0].Init.(*ast.LogicalExpression)
	if _, ok := logical.Right.(*ast.ThrowExpression); !ok {
		t.Fatalf("Right = %#v, want ThrowExpression", logical.Right)
	}
}

// ===========================================================================
// Comments and locations
// ===========================================================================

func TestCommentsOptionCollectsComments(t *testing.T) {
	var comments []ast.Comment
	_, err := parser.Parse("// line\n/* block */ a;", parser.Options{Comments: &comments})
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("len(comments) = %d, want 2", len(comments))
	}
	if comments[0].Kind != ast.LineComment || comments[1].Kind != ast.BlockComment {
		t.Fatalf("Kinds = %v/%v, want Line/Block", comments[0].Kind, comments[1].Kind)
	}
	if comments[0].Text != "// line" || comments[1].Text != "/* block */" {
		t.Fatalf("Text = %q/%q", comments[0].Text, comments[1].Text)
	}
}

func TestOnCommentCallback(t *testing.T) {
	var kinds []ast.CommentKind
	_, err := parser.Parse("/* a */ x; // b", parser.Options{
		OnComment: func(kind ast.CommentKind, text string, start, end ast.Idx) {
			kinds = append(kinds, kind)
		},
	})
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(kinds) != 2 {
		t.Fatalf("len(kinds) = %d, want 2", len(kinds))
	}
}

func TestLocationsOptionPopulatesProgramLoc(t *testing.T) {
	p := mustParseOpts(t, "a;\nb;", parser.Options{Locations: true})
	if p.Loc == nil {
		t.Fatalf("Loc = nil, want non-nil")
	}
	if p.Loc.Start.Line != 1 || p.Loc.End.Line != 2 {
		t.Fatalf("Loc = %#v, want start line 1, end line 2", p.Loc)
	}
}

func TestLocationsOptionOffByDefault(t *testing.T) {
	p := mustParse(t, "a;")
	if p.Loc != nil {
		t.Fatalf("Loc = %#v, want nil", p.Loc)
	}
}

// ===========================================================================
// Boundary behaviors
// ===========================================================================

func TestEmptySourceAST(t *testing.T) {
	p := mustParse(t, "")
	if len(p.Body) != 0 {
		t.Fatalf("Body = %#v, want empty", p.Body)
	}
}

func TestShebangLineAST(t *testing.T) {
	p := mustParse(t, "#!/usr/bin/env node\nvar x = 1;")
	if len(p.Body) != 1 {
		t.Fatalf("Body = %#v, want one statement", p.Body)
	}
}

func TestUnicodeEscapeIdentifierCollision(t *testing.T) {
	p := mustParse(t, "var f\\u006Fo = 1; foo;")
	decl := firstStmt(p, 0).(*ast.VariableDeclaration)
	if id, ok := decl.Declarations[0].Id.(*ast.Identifier); !ok || id.Name != "foo" {
		t.Fatalf("Declarations[0].Id = %#v, want Identifier foo", decl.Declarations[0].Id)
	}
	ref := exprOf(firstStmt(p, 1)).(*ast.Identifier)
	if ref.Name != "foo" {
		t.Fatalf("Name = %q, want foo", ref.Name)
	}
}

func TestFunctionDeclarationBodyAST(t *testing.T) {
	p := mustParse(t, "function f() { return 1; }")
	body := bodyOf(firstStmt(p, 0))
	ret, ok := body.Body[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("Body[0] = %#v, want ReturnStatement", body.Body[0])
	}
	lit, ok := ret.Argument.(*ast.Literal)
	if !ok || lit.Value.(float64) != 1 {
		t.Fatalf("Argument = %#v, want Literal 1", ret.Argument)
	}
}

// ===========================================================================
// ASI
// ===========================================================================

func TestASIInsertsAfterReturn(t *testing.T) {
	p := mustParse(t, "function f() {\n  return\n  1\n}")
	body := bodyOf(firstStmt(p, 0))
	if len(body.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2 (ASI splits return and 1)", len(body.Body))
	}
	ret := body.Body[0].(*ast.ReturnStatement)
	if ret.Argument != nil {
		t.Fatalf("Argument = %#v, want nil", ret.Argument)
	}
}

func TestASIDoesNotInsertBeforeBinaryContinuation(t *testing.T) {
	p := mustParse(t, "a\n+\nb")
	if len(p.Body) != 1 {
		t.Fatalf("len(Body) = %d, want 1 (no ASI mid binary expression)", len(p.Body))
	}
}

func TestNoLineTerminatorAfterThrowFails(t *testing.T) {
	mustFail(t, "throw\n1;")
}

func TestRestrictedProductionPostfixIncrementAST(t *testing.T) {
	p := mustParse(t, "a\n++\nb")
	if len(p.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2 (ASI before ++ on new line)", len(p.Body))
	}
}
