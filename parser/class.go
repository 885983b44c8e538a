package parser

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

func (p *parser) parseClassDeclaration() *ast.ClassDeclaration {
	start := p.idx0()
	p.next()
	var id *ast.Identifier
	if p.isBindingIdentifier(p.token.Kind) {
		id = p.parseBindingIdentifier()
		p.declareLexical(id)
	}
	superClass, body := p.parseClassTail()
	return &ast.ClassDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Id: id, SuperClass: superClass, Body: body}
}

func (p *parser) parseClassExpression() *ast.ClassExpression {
	start := p.idx0()
	p.next()
	var id *ast.Identifier
	if p.isBindingIdentifier(p.token.Kind) {
		id = p.parseBindingIdentifier()
	}
	superClass, body := p.parseClassTail()
	return &ast.ClassExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Id: id, SuperClass: superClass, Body: body}
}

// parseClassTail parses everything after `class` / `class Name`: the
// optional `extends` clause and the `{ ... }` body. A class's body is
// always strict mode, regardless of the enclosing context.
func (p *parser) parseClassTail() (ast.Expr, *ast.ClassBody) {
	outerCtx := p.ctx
	p.ctx |= ctxStrict

	var superClass ast.Expr
	if p.token.Kind == token.Extends {
		p.next()
		superClass = p.parseLeftHandSideExpression()
	}

	body := p.parseClassBody(superClass != nil)
	p.ctx = outerCtx
	return superClass, body
}

func (p *parser) parseClassBody(derived bool) *ast.ClassBody {
	start := p.idx0()
	p.expect(token.LeftBrace)

	p.pushPrivateScope()

	hasConstructor := false
	var elements []ast.Node
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
		if p.token.Kind == token.Semicolon {
			p.next()
			continue
		}
		el, isCtor := p.parseClassElement(derived, &hasConstructor)
		if isCtor {
			if hasConstructor {
				p.error(ErrDuplicateConstructor)
			}
			hasConstructor = true
		}
		elements = append(elements, el)
	}
	p.expect(token.RightBrace)
	p.popPrivateScope()
	return &ast.ClassBody{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: elements}
}

// pushPrivateScope/popPrivateScope/declarePrivateName/usePrivateName track
// the #name declarations and references of one class body, so a reference
// to an undeclared private name is caught even though — unlike every
// other binding — private names are visible throughout the whole class
// regardless of whether the reference textually precedes the declaration.
func (p *parser) pushPrivateScope() {
	p.privateScopes = append(p.privateScopes, &privateClassScope{declared: map[string]privateKind{}})
}

func (p *parser) popPrivateScope() {
	scope := p.privateScopes[len(p.privateScopes)-1]
	p.privateScopes = p.privateScopes[:len(p.privateScopes)-1]
	for _, use := range scope.uses {
		if _, ok := scope.declared[use.Name]; !ok {
			p.errorAt(ErrPrivateFieldNotDefined, use.Idx0(), use.Name)
		}
	}
}

func (p *parser) declarePrivateName(id *ast.PrivateIdentifier, kind privateKind) {
	if len(p.privateScopes) == 0 {
		return
	}
	scope := p.privateScopes[len(p.privateScopes)-1]
	if existing, ok := scope.declared[id.Name]; ok {
		pairedAccessor := (existing == privateGetter && kind == privateSetter) || (existing == privateSetter && kind == privateGetter)
		if !pairedAccessor {
			p.errorAt(ErrDuplicatePrivateField, id.Idx0(), id.Name)
			return
		}
	}
	scope.declared[id.Name] = kind
}

func (p *parser) usePrivateName(id *ast.PrivateIdentifier) {
	if len(p.privateScopes) == 0 {
		return
	}
	scope := p.privateScopes[len(p.privateScopes)-1]
	scope.uses = append(scope.uses, id)
}

func (p *parser) parseClassElement(derived bool, hasConstructor *bool) (ast.Node, bool) {
	start := p.idx0()

	static := false
	if p.token.Kind == token.Static {
		if p.peek().Kind == token.LeftBrace {
			p.next()
			return p.parseStaticBlock(start), false
		}
		if p.peek().Kind != token.LeftParenthesis && p.peek().Kind != token.Assign &&
			p.peek().Kind != token.Semicolon && !p.peek().OnNewLine {
			static = true
			p.next()
		}
	}

	generator := false
	async := false
	kindWord := ""

	if p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}
	if p.currentString() == "async" && !generator && p.peek().Kind != token.LeftParenthesis &&
		p.peek().Kind != token.Assign && p.peek().Kind != token.Semicolon && !p.peek().OnNewLine {
		async = true
		p.next()
		if p.token.Kind == token.Multiply {
			generator = true
			p.next()
		}
	}
	if (p.currentString() == "get" || p.currentString() == "set") && !async && !generator &&
		p.peek().Kind != token.LeftParenthesis && p.peek().Kind != token.Assign && p.peek().Kind != token.Semicolon {
		kindWord = p.currentString()
		p.next()
	}

	computed := p.token.Kind == token.LeftBracket
	key := p.parsePropertyKey()

	_, isPrivate := key.(*ast.PrivateIdentifier)

	name := ""
	if id, ok := key.(*ast.Identifier); ok {
		name = id.Name
	}

	if p.token.Kind == token.LeftParenthesis {
		kind := "method"
		isConstructor := false
		if kindWord == "get" {
			kind = "get"
		} else if kindWord == "set" {
			kind = "set"
		} else if !static && name == "constructor" && !computed && !isPrivate {
			kind = "constructor"
			isConstructor = true
			if generator {
				p.error(ErrConstructorGenerator)
			}
			if async {
				p.error(ErrConstructorAsync)
			}
		}

		if isPrivate {
			p.declarePrivateName(key.(*ast.PrivateIdentifier), methodPrivateKind(kind))
		}

		outerCtx := p.ctx
		p.ctx = p.ctx.without(ctxGenerator | ctxAsync | ctxSuperProp | ctxSuperCall | ctxYield | ctxAwait | ctxAwaitExpr).with(ctxFunction | ctxSuperProp | ctxNewTarget)
		if isConstructor && derived {
			p.ctx |= ctxSuperCall
		}
		if generator {
			p.ctx |= ctxGenerator | ctxYield
		}
		if async {
			p.ctx |= ctxAsync | ctxAwait | ctxAwaitExpr
		}
		params := p.parseFunctionParams()
		if kind == "get" && len(params.list) != 0 {
			p.error(ErrBadGetterArity)
		}
		if kind == "set" && len(params.list) != 1 {
			p.error(ErrBadSetterArity)
		}
		wasStrict := p.ctx.has(ctxStrict)
		body := p.parseFunctionBody()
		p.checkRetroactiveParams(params, wasStrict)
		p.ctx = outerCtx

		fn := &ast.FunctionExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Params: params.list, Body: body, Generator: generator, Async: async}
		if static && name == "prototype" && !computed {
			p.error(ErrStaticPrototype)
		}
		return &ast.MethodDefinition{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Key: key, Value: fn, Kind: kind, Computed: computed, Static: static}, isConstructor
	}

	if isPrivate {
		p.declarePrivateName(key.(*ast.PrivateIdentifier), privateField)
	}

	// Field declaration (stage-3 class fields).
	var value ast.Expr
	if p.token.Kind == token.Assign {
		p.next()
		outerCtx := p.ctx
		p.ctx = p.ctx.without(ctxNewTarget).with(ctxSuperProp)
		value = p.parseAssignmentExpression()
		p.ctx = outerCtx
	}
	if static && name == "prototype" && !computed {
		p.error(ErrStaticPrototype)
	}
	p.semicolon()
	return &ast.PropertyDefinition{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Key: key, Value: value, Computed: computed, Static: static}, false
}

// methodPrivateKind maps a MethodDefinition.Kind string to the
// privateKind bucket used for duplicate-declaration checking — a getter
// and setter sharing a private name is the one legal "duplicate".
func methodPrivateKind(kind string) privateKind {
	switch kind {
	case "get":
		return privateGetter
	case "set":
		return privateSetter
	default:
		return privateMethod
	}
}

func (p *parser) parseStaticBlock(start ast.Idx) *ast.StaticBlock {
	outerCtx := p.ctx
	p.ctx = p.ctx.without(ctxGenerator | ctxAsync | ctxNewTarget).with(ctxFunction | ctxSuperProp)
	p.ctx = p.ctx.without(ctxAwait | ctxAwaitExpr | ctxYield)

	p.expect(token.LeftBrace)
	p.openScope()
	body := p.parseStatementList(func() bool { return p.token.Kind == token.RightBrace || p.token.Kind == token.Eof })
	p.closeScope()
	p.expect(token.RightBrace)
	p.ctx = outerCtx
	return &ast.StaticBlock{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: body}
}
