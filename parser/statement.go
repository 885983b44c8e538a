package parser

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// parseStatementList parses statements until stop reports true. It also
// recognizes the directive prologue at the head of the list (a run of
// bare string-literal ExpressionStatements) and, if one of them is
// exactly "use strict", switches the parser into strict mode for the
// remainder of the list — this single function backs both Program and
// function/block bodies, unlike the fixed RightBrace/Eof check the
// teacher hardcodes into each call site.
func (p *parser) parseStatementList(stop func() bool) []ast.Stmt {
	var body []ast.Stmt
	inPrologue := true
	for !stop() {
		p.singleStatementBody = false
		stmt := p.parseStatement()
		if inPrologue {
			if es, ok := stmt.(*ast.ExpressionStatement); ok && es.Directive != "" {
				if es.Directive == "use strict" {
					p.ctx |= ctxStrict
				}
			} else {
				inPrologue = false
			}
		}
		body = append(body, stmt)
	}
	return body
}

func (p *parser) parseStatement() ast.Stmt {
	// Only the statements of the Program's own list see ctxTopLevel;
	// anything nested inside one is parsed with it cleared.
	topLevel := p.ctx.has(ctxTopLevel)
	p.ctx = p.ctx.without(ctxTopLevel)
	if topLevel {
		defer func() { p.ctx |= ctxTopLevel }()
	}
	switch p.token.Kind {
	case token.LeftBrace:
		return p.parseBlockStatement()
	case token.Semicolon:
		return p.parseEmptyStatement()
	case token.If:
		return p.parseIfStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Continue:
		return p.parseContinueStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.With:
		return p.parseWithStatement()
	case token.Switch:
		return p.parseSwitchStatement()
	case token.Throw:
		return p.parseThrowStatement()
	case token.Try:
		return p.parseTryStatement()
	case token.Debugger:
		return p.parseDebuggerStatement()
	case token.Function:
		start := p.idx0()
		if p.singleStatementBody {
			if p.peek().Kind == token.Multiply {
				p.error(ErrGeneratorInSingleStatement)
			} else if p.ctx.has(ctxStrict) {
				p.error(ErrStrictModeFunctionInBlock)
			}
		}
		return p.parseFunctionDeclaration(start, false, false)
	case token.Class:
		return p.parseClassDeclaration()
	case token.Var, token.Let, token.Const:
		return p.parseVariableStatement()
	case token.Import:
		if !topLevel || !p.ctx.has(ctxModule) {
			if p.peek().Kind != token.LeftParenthesis && p.peek().Kind != token.Period {
				p.error(ErrImportExportOutsideModule)
			}
		} else if p.peek().Kind != token.LeftParenthesis && p.peek().Kind != token.Period {
			return p.parseImportDeclaration()
		}
	case token.Export:
		if !p.ctx.has(ctxModule) {
			p.error(ErrImportExportOutsideModule)
		}
		if !topLevel {
			p.error(ErrImportExportNotTopLevel)
		}
		return p.parseExportDeclaration()
	case token.Async:
		if p.peek().Kind == token.Function {
			start := p.idx0()
			p.next()
			return p.parseFunctionDeclaration(start, true, false)
		}
	}

	start := p.idx0()
	if p.isBindingIdentifier(p.token.Kind) && p.peek().Kind == token.Colon {
		return p.parseLabeledStatement(start)
	}
	return p.parseExpressionStatement(start)
}

func (p *parser) parseBlockStatement() *ast.BlockStatement {
	start := p.idx0()
	p.expect(token.LeftBrace)
	p.openScope()
	body := p.parseStatementList(func() bool { return p.token.Kind == token.RightBrace || p.token.Kind == token.Eof })
	p.closeScope()
	p.expect(token.RightBrace)
	return &ast.BlockStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: body}
}

func (p *parser) parseEmptyStatement() *ast.EmptyStatement {
	start := p.idx0()
	p.next()
	return &ast.EmptyStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
}

func (p *parser) parseDebuggerStatement() *ast.DebuggerStatement {
	start := p.idx0()
	p.next()
	p.semicolon()
	return &ast.DebuggerStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
}

func (p *parser) parseExpressionStatement(start ast.Idx) *ast.ExpressionStatement {
	isStringLiteral := p.token.Kind == token.String
	raw := p.currentRaw()
	expr := p.parseExpression()
	p.semicolon()
	directive := ""
	if isStringLiteral {
		if lit, ok := expr.(*ast.Literal); ok {
			if s, ok := lit.Value.(string); ok {
				_ = raw
				directive = s
			}
		}
	}
	return &ast.ExpressionStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Expression: expr, Directive: directive}
}

func (p *parser) parseIfStatement() *ast.IfStatement {
	start := p.idx0()
	p.next()
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.singleStatementBody = true
	consequent := p.parseStatement()
	var alternate ast.Stmt
	if p.token.Kind == token.Else {
		p.next()
		p.singleStatementBody = true
		alternate = p.parseStatement()
	}
	return &ast.IfStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *parser) parseDoWhileStatement() *ast.DoWhileStatement {
	start := p.idx0()
	p.next()
	p.openScope()
	p.scope.inIteration = true
	p.singleStatementBody = true
	body := p.parseStatement()
	p.closeScope()
	p.expect(token.While)
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	if p.token.Kind == token.Semicolon {
		p.next()
	}
	return &ast.DoWhileStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: body, Test: test}
}

func (p *parser) parseWhileStatement() *ast.WhileStatement {
	start := p.idx0()
	p.next()
	p.expect(token.LeftParenthesis)
	test := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.openScope()
	p.scope.inIteration = true
	p.singleStatementBody = true
	body := p.parseStatement()
	p.closeScope()
	return &ast.WhileStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Test: test, Body: body}
}

func (p *parser) parseWithStatement() *ast.WithStatement {
	start := p.idx0()
	if p.ctx.has(ctxStrict) {
		p.error(ErrStrictModeWith)
	}
	p.next()
	p.expect(token.LeftParenthesis)
	object := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.singleStatementBody = true
	body := p.parseStatement()
	return &ast.WithStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Object: object, Body: body}
}

func (p *parser) parseContinueStatement() *ast.ContinueStatement {
	start := p.idx0()
	p.next()
	var label *ast.Identifier
	if !p.token.OnNewLine && p.isBindingIdentifier(p.token.Kind) {
		label = p.parseIdentifier()
		if !p.labelExists(label.Name) {
			p.errorAt(ErrUndefinedLabel, label.Idx0(), label.Name)
		}
	} else if !p.inLoop() {
		p.error(ErrIllegalContinue)
	}
	p.semicolon()
	return &ast.ContinueStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Label: label}
}

func (p *parser) parseBreakStatement() *ast.BreakStatement {
	start := p.idx0()
	p.next()
	var label *ast.Identifier
	if !p.token.OnNewLine && p.isBindingIdentifier(p.token.Kind) {
		label = p.parseIdentifier()
		if !p.labelExists(label.Name) {
			p.errorAt(ErrUndefinedLabel, label.Idx0(), label.Name)
		}
	} else if !p.inLoopOrSwitch() {
		p.error(ErrIllegalBreak)
	}
	p.semicolon()
	return &ast.BreakStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Label: label}
}

func (p *parser) parseReturnStatement() *ast.ReturnStatement {
	start := p.idx0()
	if !p.ctx.has(ctxFunction) {
		p.error(ErrIllegalReturn)
	}
	p.next()
	var arg ast.Expr
	if !p.canInsertSemicolon() {
		arg = p.parseExpression()
	}
	p.semicolon()
	return &ast.ReturnStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: arg}
}

func (p *parser) parseThrowStatement() *ast.ThrowStatement {
	start := p.idx0()
	p.next()
	if p.token.OnNewLine {
		p.error(ErrNewlineAfterThrow)
	}
	arg := p.parseExpression()
	p.semicolon()
	return &ast.ThrowStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: arg}
}

func (p *parser) parseTryStatement() *ast.TryStatement {
	start := p.idx0()
	p.next()
	block := p.parseBlockStatement()

	var handler *ast.CatchClause
	if p.token.Kind == token.Catch {
		cstart := p.idx0()
		p.next()
		var param ast.Pattern
		p.openScope()
		if p.token.Kind == token.LeftParenthesis {
			p.next()
			param = p.parseBindingTarget()
			p.declareLexicalPattern(param)
			p.expect(token.RightParenthesis)
		}
		body := p.parseBlockStatementInScope()
		p.closeScope()
		handler = &ast.CatchClause{NodeBase: ast.NodeBase{Start: cstart, End: p.lastEnd}, Param: param, Body: body}
	}

	var finalizer *ast.BlockStatement
	if p.token.Kind == token.Finally {
		p.next()
		finalizer = p.parseBlockStatement()
	}

	if handler == nil && finalizer == nil {
		p.errorUnexpectedToken()
	}
	return &ast.TryStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Block: block, Handler: handler, Finalizer: finalizer}
}

// parseBlockStatementInScope parses a `{ ... }` body without opening a
// fresh scope — used for the catch body, which shares the scope opened
// for the catch parameter binding.
func (p *parser) parseBlockStatementInScope() *ast.BlockStatement {
	start := p.idx0()
	p.expect(token.LeftBrace)
	body := p.parseStatementList(func() bool { return p.token.Kind == token.RightBrace || p.token.Kind == token.Eof })
	p.expect(token.RightBrace)
	return &ast.BlockStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: body}
}

func (p *parser) parseSwitchStatement() *ast.SwitchStatement {
	start := p.idx0()
	p.next()
	p.expect(token.LeftParenthesis)
	discriminant := p.parseExpression()
	p.expect(token.RightParenthesis)
	p.expect(token.LeftBrace)

	p.openScope()
	p.scope.inSwitch = true
	seenDefault := false
	var cases []*ast.SwitchCase
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
		cstart := p.idx0()
		var test ast.Expr
		if p.token.Kind == token.Case {
			p.next()
			test = p.parseExpression()
		} else {
			p.expect(token.Default)
			if seenDefault {
				p.error(ErrMultipleDefaultInSwitch)
			}
			seenDefault = true
		}
		p.expect(token.Colon)
		var consequent []ast.Stmt
		for p.token.Kind != token.Case && p.token.Kind != token.Default && p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
			p.singleStatementBody = false
			consequent = append(consequent, p.parseStatement())
		}
		cases = append(cases, &ast.SwitchCase{NodeBase: ast.NodeBase{Start: cstart, End: p.lastEnd}, Test: test, Consequent: consequent})
	}
	p.closeScope()
	p.expect(token.RightBrace)
	return &ast.SwitchStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Discriminant: discriminant, Cases: cases}
}

func (p *parser) parseLabeledStatement(start ast.Idx) ast.Stmt {
	label := p.parseIdentifier()
	p.expect(token.Colon)
	if p.labelExists(label.Name) {
		p.errorAt(ErrDuplicateLabel, label.Idx0(), label.Name)
	}
	p.scope.labels = append(p.scope.labels, label.Name)
	var body ast.Stmt
	if p.token.Kind == token.Function {
		fstart := p.idx0()
		if p.peek().Kind == token.Multiply {
			p.error(ErrGeneratorInSingleStatement)
		} else if p.ctx.has(ctxStrict) {
			p.error(ErrStrictModeFunctionInBlock)
		}
		body = p.parseFunctionDeclaration(fstart, false, false)
	} else {
		p.singleStatementBody = true
		body = p.parseStatement()
	}
	p.scope.labels = p.scope.labels[:len(p.scope.labels)-1]
	return &ast.LabeledStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Label: label, Body: body}
}

// parseForStatement disambiguates the four for-statement forms (C-style,
// for-in, for-of, and for-await-of) by speculatively parsing the header's
// leading binding/expression and reacting to what follows it.
func (p *parser) parseForStatement() ast.Stmt {
	start := p.idx0()
	p.next()
	await := false
	if p.token.Kind == token.Await {
		if p.ctx.has(ctxAwait) {
			if !p.ctx.has(ctxNext) {
				p.errorAt(ErrFeatureNotEnabled, p.idx0(), "for-await-of", "next")
			}
			await = true
			p.next()
		}
	}
	p.expect(token.LeftParenthesis)

	p.openScope()
	defer p.closeScope()
	p.scope.inIteration = true

	if p.token.Kind == token.Semicolon {
		return p.parseForRest(start, nil, await)
	}

	if p.token.Kind == token.Var || p.token.Kind == token.Let || p.token.Kind == token.Const {
		kind := p.token.Kind
		kindStr := kind.String()
		dstart := p.idx0()
		p.next()
		target := p.parseBindingTarget()

		var init ast.Expr
		hasInit := p.token.Kind == token.Assign
		if hasInit {
			p.next()
			init = p.parseAssignmentExpressionNoIn()
		}

		if p.token.Kind == token.In || p.token.Kind == token.Of {
			isOf := p.token.Kind == token.Of
			if hasInit {
				p.error(ErrForInOfLoopInit)
			}
			p.next()
			p.declareForBinding(kind, target)
			decl := &ast.VariableDeclaration{
				NodeBase:     ast.NodeBase{Start: dstart, End: target.Idx1()},
				Kind:         kindStr,
				Declarations: []*ast.VariableDeclarator{{NodeBase: ast.NodeBase{Start: target.Idx0(), End: target.Idx1()}, Id: target}},
			}
			return p.parseForInOf(start, decl, isOf, await)
		}

		if !hasInit {
			if kind == token.Const {
				p.error(ErrConstWithoutInit)
			} else if _, ok := target.(*ast.Identifier); !ok {
				p.error(ErrLetConstWithoutInit)
			}
		}
		p.declareForBinding(kind, target)
		decl := &ast.VariableDeclaration{
			NodeBase: ast.NodeBase{Start: dstart, End: p.lastEnd},
			Kind:     kindStr,
			Declarations: []*ast.VariableDeclarator{{NodeBase: ast.NodeBase{Start: target.Idx0(), End: p.lastEnd}, Id: target, Init: init}},
		}
		for p.token.Kind == token.Comma {
			p.next()
			d := p.parseVariableDeclarator(kind)
			p.declareForBinding(kind, d.Id)
			decl.Declarations = append(decl.Declarations, d)
		}
		return p.parseForRest(start, decl, await)
	}

	outerCtx := p.ctx
	p.ctx = p.ctx.without(ctxIn)
	init := p.parseExpression()
	p.ctx = outerCtx

	if p.token.Kind == token.In || p.token.Kind == token.Of {
		isOf := p.token.Kind == token.Of
		if _, ok := init.(*ast.SequenceExpression); ok && isOf {
			p.error(ErrForOfMultipleBindings)
		} else if !isOf && !isDestructurableTarget(init) {
			p.error(ErrInvalidLHSInForIn)
		}
		p.next()
		target := p.reinterpretAsPattern(init)
		return p.parseForInOf(start, target, isOf, await)
	}
	return p.parseForRest(start, init, await)
}

// declareForBinding declares a for-statement header's loop variable in
// the scope parseForStatement opened for it — a var binding hoists to the
// enclosing function as usual, while let/const (and any destructuring,
// regardless of kind) go through declareLexical's pattern walk.
func (p *parser) declareForBinding(kind token.Token, target ast.Pattern) {
	if kind == token.Var {
		var names []*ast.Identifier
		collectBoundIdentifiers(target, &names)
		for _, id := range names {
			p.declareVar(id.Name)
		}
		return
	}
	p.declareLexicalPattern(target)
}

// isDestructurableTarget reports whether e is one of the expression
// shapes a for-in/for-of left-hand side can reinterpret as an assignment
// target — used to give ErrInvalidLHSInForIn a specific diagnosis instead
// of falling through to a generic destructuring error.
func isDestructurableTarget(e ast.Node) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpression, *ast.ArrayExpression, *ast.ObjectExpression:
		return true
	}
	return false
}

func (p *parser) parseAssignmentExpressionNoIn() ast.Expr {
	outerCtx := p.ctx
	p.ctx = p.ctx.without(ctxIn)
	e := p.parseAssignmentExpression()
	p.ctx = outerCtx
	return e
}

func (p *parser) parseVariableDeclarator(kind token.Token) *ast.VariableDeclarator {
	start := p.idx0()
	target := p.parseBindingTarget()
	var init ast.Expr
	if p.token.Kind == token.Assign {
		p.next()
		init = p.parseAssignmentExpressionNoIn()
	} else if kind == token.Const {
		if _, ok := target.(*ast.Identifier); ok {
			p.error(ErrConstWithoutInit)
		}
	}
	return &ast.VariableDeclarator{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Id: target, Init: init}
}

// parseForInOf finishes a for-in/for-of header once `in`/`of` has been
// consumed and left/target has been built.
func (p *parser) parseForInOf(start ast.Idx, left ast.Node, isOf, await bool) ast.Stmt {
	var right ast.Expr
	if isOf {
		right = p.parseAssignmentExpression()
	} else {
		right = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	p.singleStatementBody = true
	body := p.parseStatement()
	if isOf {
		return &ast.ForOfStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Left: left, Right: right, Body: body, Await: await}
	}
	return &ast.ForInStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Left: left, Right: right, Body: body}
}

// parseForRest finishes a C-style for-statement header once the
// initializer (possibly nil) has been parsed.
func (p *parser) parseForRest(start ast.Idx, init ast.Node, await bool) *ast.ForStatement {
	_ = await
	p.expect(token.Semicolon)
	var test ast.Expr
	if p.token.Kind != token.Semicolon {
		test = p.parseExpression()
	}
	p.expect(token.Semicolon)
	var update ast.Expr
	if p.token.Kind != token.RightParenthesis {
		update = p.parseExpression()
	}
	p.expect(token.RightParenthesis)
	p.singleStatementBody = true
	body := p.parseStatement()
	return &ast.ForStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Init: init, Test: test, Update: update, Body: body}
}

func (p *parser) parseVariableStatement() *ast.VariableDeclaration {
	decl := p.parseVariableDeclarationList()
	p.semicolon()
	return decl
}

func (p *parser) parseVariableDeclarationList() *ast.VariableDeclaration {
	start := p.idx0()
	kind := p.token.Kind
	p.next()
	decls := []*ast.VariableDeclarator{p.parseVariableDeclaratorChecked(kind)}
	for p.token.Kind == token.Comma {
		p.next()
		decls = append(decls, p.parseVariableDeclaratorChecked(kind))
	}
	return &ast.VariableDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Declarations: decls, Kind: kind.String()}
}

func (p *parser) parseVariableDeclaratorChecked(kind token.Token) *ast.VariableDeclarator {
	d := p.parseVariableDeclarator(kind)
	switch id := d.Id.(type) {
	case *ast.Identifier:
		if kind == token.Var {
			p.declareVar(id.Name)
		} else {
			p.declareLexical(id)
		}
	default:
		if d.Init == nil {
			p.error(ErrLetConstWithoutInit)
		}
		if kind == token.Var {
			var names []*ast.Identifier
			collectBoundIdentifiers(d.Id, &names)
			for _, name := range names {
				p.declareVar(name.Name)
			}
		} else {
			p.declareLexicalPattern(d.Id)
		}
	}
	return d
}
