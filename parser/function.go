package parser

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// parseFunctionExpression parses a function expression starting at the
// `function` keyword; start/async describe whatever `async` prefix the
// caller already consumed (or start==p.idx0() and async==false if not).
func (p *parser) parseFunctionExpression(start ast.Idx, async bool) *ast.FunctionExpression {
	p.expect(token.Function)
	generator := false
	if p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}

	var id *ast.Identifier
	outerCtx := p.ctx
	innerCtxForName := p.ctx.without(ctxGenerator | ctxAsync | ctxYield | ctxAwait | ctxAwaitExpr).with(ctxFunction | ctxNewTarget)
	if generator {
		innerCtxForName |= ctxGenerator | ctxYield
	}
	if async {
		innerCtxForName |= ctxAsync | ctxAwait | ctxAwaitExpr
	}
	if p.isBindingIdentifier(p.token.Kind) {
		p.ctx = innerCtxForName
		id = p.parseBindingIdentifier()
		p.ctx = outerCtx
	}

	p.ctx = innerCtxForName
	params := p.parseFunctionParams()
	wasStrict := p.ctx.has(ctxStrict)
	body := p.parseFunctionBody()
	p.checkRetroactiveParams(params, wasStrict)
	p.ctx = outerCtx

	return &ast.FunctionExpression{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
		Id: id, Params: params.list, Body: body, Generator: generator, Async: async,
	}
}

// parseFunctionDeclaration parses a function declaration starting at the
// `function` keyword. allowAnonymous permits a missing name, legal only
// directly under `export default`.
func (p *parser) parseFunctionDeclaration(start ast.Idx, async, allowAnonymous bool) *ast.FunctionDeclaration {
	p.expect(token.Function)
	generator := false
	if p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}

	var id *ast.Identifier
	outerCtx := p.ctx
	innerCtx := p.ctx.without(ctxGenerator | ctxAsync | ctxYield | ctxAwait | ctxAwaitExpr).with(ctxFunction | ctxNewTarget)
	if generator {
		innerCtx |= ctxGenerator | ctxYield
	}
	if async {
		innerCtx |= ctxAsync | ctxAwait | ctxAwaitExpr
	}

	if p.isBindingIdentifier(p.token.Kind) {
		id = p.parseBindingIdentifier()
		p.declareVar(id.Name)
	} else if !allowAnonymous {
		p.errorUnexpectedToken()
	}

	p.ctx = innerCtx
	params := p.parseFunctionParams()
	wasStrict := p.ctx.has(ctxStrict)
	body := p.parseFunctionBody()
	p.checkRetroactiveParams(params, wasStrict)
	p.ctx = outerCtx

	return &ast.FunctionDeclaration{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
		Id: id, Params: params.list, Body: body, Generator: generator, Async: async,
	}
}

// paramList is what parseFunctionParams records about the list it just
// parsed, so the caller can retroactively validate it once the function
// body has had a chance to establish strict mode through its own
// directive — something that can't be known until parseFunctionBody
// returns, since the parameter list is always parsed first.
type paramList struct {
	list   []ast.Pattern
	names  []*ast.Identifier
	simple bool
}

func (p *parser) parseFunctionParams() paramList {
	p.openScope()
	p.scope.inFunction = true
	p.scope.inFuncParams = true
	defer p.closeScope()

	outerCtx := p.ctx
	p.ctx = p.ctx.without(ctxYield | ctxAwaitExpr)

	p.expect(token.LeftParenthesis)
	info := paramList{simple: true}
	for p.token.Kind != token.RightParenthesis && p.token.Kind != token.Eof {
		if p.token.Kind == token.Ellipsis {
			start := p.idx0()
			p.next()
			target := p.parseBindingTarget()
			info.simple = false
			rest := &ast.RestElement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: target}
			p.checkNoRestDefault()
			collectBoundIdentifiers(target, &info.names)
			info.list = append(info.list, rest)
			break
		}
		start := p.idx0()
		target := p.parseBindingTarget()
		if _, ok := target.(*ast.Identifier); !ok {
			info.simple = false
		}
		param := target
		if p.token.Kind == token.Assign {
			info.simple = false
			p.next()
			param = &ast.AssignmentPattern{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Left: target, Right: p.parseAssignmentExpression()}
		}
		collectBoundIdentifiers(target, &info.names)
		info.list = append(info.list, param)
		if p.token.Kind != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightParenthesis)

	p.ctx = outerCtx
	return info
}

// checkRetroactiveParams re-validates a parameter list against strict-mode
// rules that can only be known after the fact: parseFunctionParams always
// runs before parseFunctionBody has had a chance to see the body's own
// "use strict" directive, so eval/arguments/future-reserved parameter
// names, duplicate names, and a non-simple list paired with the body's own
// directive can't be rejected at the point the parameter is parsed.
// wasStrict is whether the function was already strict before its body
// was parsed; it's used to tell a directive the body just established
// apart from strictness the function merely inherited.
func (p *parser) checkRetroactiveParams(info paramList, wasStrict bool) {
	if !p.ctx.has(ctxStrict) {
		return
	}
	seen := make(map[string]bool, len(info.names))
	for _, id := range info.names {
		if seen[id.Name] {
			p.errorAt(ErrStrictModeDuplicateParam, id.Idx0(), id.Name)
			continue
		}
		seen[id.Name] = true
		if id.Name == "eval" || id.Name == "arguments" {
			p.errorAt(ErrStrictModeAssignEval, id.Idx0())
		} else if isStrictReservedWord(id.Name) {
			p.errorAt(ErrStrictModeReservedWord, id.Idx0())
		}
	}
	if !wasStrict && !info.simple {
		p.errorAt(ErrStrictModeNonSimpleParams, info.list[0].Idx0())
	}
}

// parseFunctionBody parses a `{ ... }` function body, recognizing the
// leading directive prologue (only "use strict" changes behavior; other
// directives are recorded as plain ExpressionStatements like any engine
// does). Strict mode turned on by the body's directive is left set in
// p.ctx so the caller's checkRetroactiveParams sees it; every caller
// restores its own context afterwards.
func (p *parser) parseFunctionBody() *ast.BlockStatement {
	start := p.idx0()
	p.expect(token.LeftBrace)

	p.openScope()
	p.scope.inFunction = true

	body := p.parseStatementList(func() bool { return p.token.Kind == token.RightBrace || p.token.Kind == token.Eof })

	p.closeScope()
	p.expect(token.RightBrace)
	return &ast.BlockStatement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: body}
}
