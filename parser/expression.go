package parser

import (
	"strconv"
	"strings"

	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

func (p *parser) parseIdentifier() *ast.Identifier {
	name := p.currentString()
	start, end := p.idx0(), p.idx1()
	p.next()
	return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: end}, Name: name}
}

// isBindingIdentifier reports whether kind can stand for an identifier
// reference in the current context — a plain Identifier, or a
// contextual keyword not currently reserved by [Yield]/[Await].
func (p *parser) isBindingIdentifier(kind token.Token) bool {
	if kind == token.Identifier {
		return true
	}
	if kind == token.Await {
		return !p.ctx.has(ctxAwait)
	}
	if kind == token.Yield {
		return !p.ctx.has(ctxGenerator)
	}
	return token.UnreservedWord(kind) && token.ID(kind)
}

func (p *parser) parsePrimaryExpression() ast.Expr {
	start := p.idx0()
	switch p.token.Kind {
	case token.Identifier, token.Let, token.Static, token.As, token.From, token.Get, token.Set, token.Of:
		name := p.currentString()
		p.next()
		return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
	case token.Await:
		if !p.ctx.has(ctxAwait) {
			name := p.currentString()
			p.next()
			return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
		}
	case token.Yield:
		if !p.ctx.has(ctxGenerator) {
			name := p.currentString()
			p.next()
			return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
		}
	case token.Null:
		p.next()
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: nil, Raw: "null"}
	case token.True, token.False:
		val := p.token.Kind == token.True
		raw := p.currentRaw()
		p.next()
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: val, Raw: raw}
	case token.String:
		value := p.currentString()
		raw := p.currentRaw()
		if p.token.HasOctalEscape && p.ctx.has(ctxStrict) {
			p.error(ErrStrictModeOctalEscape)
		}
		p.next()
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: value, Raw: raw}
	case token.Number:
		raw := p.currentRaw()
		p.checkStrictOctalNumericLiteral(start, raw)
		p.next()
		if strings.HasSuffix(raw, "n") {
			return &ast.BigIntLiteral{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: strings.TrimSuffix(raw, "n"), Raw: raw}
		}
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: parseNumericValue(raw), Raw: raw}
	case token.PrivateIdentifier:
		name := p.currentString()
		p.next()
		return &ast.PrivateIdentifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
	case token.Slash, token.QuotientAssign:
		return p.parseRegExpLiteral(start)
	case token.LeftBrace:
		return p.parseObjectExpression()
	case token.LeftBracket:
		return p.parseArrayExpression()
	case token.LeftParenthesis:
		return p.parseParenthesizedOrArrow(start)
	case token.NoSubstitutionTemplate, token.TemplateHead:
		return p.parseTemplateLiteral(nil)
	case token.This:
		p.next()
		return &ast.ThisExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
	case token.Super:
		p.next()
		return &ast.Super{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
	case token.Async:
		if fn := p.tryParseAsyncFunctionExpression(); fn != nil {
			return fn
		}
		name := p.currentString()
		p.next()
		return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
	case token.Function:
		return p.parseFunctionExpression(start, false)
	case token.Class:
		return p.parseClassExpression()
	case token.Import:
		return p.parseImportExpressionOrMeta(start)
	case token.Do:
		if p.ctx.has(ctxV8) {
			p.next()
			body := p.parseBlockStatement()
			return &ast.DoExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Body: body}
		}
	case token.Throw:
		if p.ctx.has(ctxNext) || p.ctx.has(ctxV8) {
			p.next()
			arg := p.parseAssignmentExpression()
			return &ast.ThrowExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: arg}
		}
	case token.Less:
		if p.ctx.has(ctxJSX) {
			elem := p.parseJSXElement()
			p.next()
			return elem
		}
	}

	p.errorUnexpectedToken()
	p.next()
	return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: ""}
}

func (p *parser) parseRegExpLiteral(start ast.Idx) ast.Expr {
	p.scanner.RewindForRegExp(start)
	pattern, flags := p.scanner.ScanRegExp(p.ctx.has(ctxNext))
	raw := "/" + pattern + "/" + flags
	p.token.Idx1 = p.scanner.Offset()
	p.next()
	return &ast.Literal{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
		Raw:      raw,
		Regex:    &ast.RegExpValue{Pattern: pattern, Flags: flags},
	}
}

func parseNumericValue(raw string) float64 {
	s := strings.ReplaceAll(raw, "_", "")
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f
	}
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return float64(n)
	}
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		return float64(n)
	}
	return 0
}

func (p *parser) parseArrayExpression() *ast.ArrayExpression {
	start := p.idx0()
	p.expect(token.LeftBracket)
	var elements []ast.Expr
	for p.token.Kind != token.RightBracket && p.token.Kind != token.Eof {
		if p.token.Kind == token.Comma {
			p.next()
			elements = append(elements, nil)
			continue
		}
		if p.token.Kind == token.Ellipsis {
			elements = append(elements, p.parseSpreadElement())
		} else {
			elements = append(elements, p.parseAssignmentExpression())
		}
		if p.token.Kind != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBracket)
	return &ast.ArrayExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Elements: elements}
}

func (p *parser) parseSpreadElement() *ast.SpreadElement {
	start := p.idx0()
	p.expect(token.Ellipsis)
	return &ast.SpreadElement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: p.parseAssignmentExpression()}
}

func (p *parser) parseObjectExpression() *ast.ObjectExpression {
	start := p.idx0()
	p.expect(token.LeftBrace)
	var props []ast.Node
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
		props = append(props, p.parseObjectProperty())
		if p.token.Kind != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)
	return &ast.ObjectExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Properties: props}
}

func (p *parser) parseObjectProperty() ast.Node {
	start := p.idx0()
	if p.token.Kind == token.Ellipsis {
		p.next()
		return &ast.SpreadElement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: p.parseAssignmentExpression()}
	}

	generator := false
	if p.token.Kind == token.Multiply {
		generator = true
		p.next()
	}
	async := false
	if p.token.Kind == token.Async && p.peek().Kind != token.Colon && p.peek().Kind != token.LeftParenthesis && p.peek().Kind != token.Comma && p.peek().Kind != token.RightBrace {
		async = true
		p.next()
		if p.token.Kind == token.Multiply {
			generator = true
			p.next()
		}
	}
	kindWord := ""
	if (p.currentString() == "get" || p.currentString() == "set") && !async && !generator {
		next := p.peek().Kind
		if next != token.Colon && next != token.LeftParenthesis && next != token.Comma && next != token.RightBrace && next != token.Assign {
			kindWord = p.currentString()
			p.next()
		}
	}

	computed := p.token.Kind == token.LeftBracket
	key := p.parsePropertyKey()

	if generator || async || kindWord != "" || p.token.Kind == token.LeftParenthesis {
		kind := "init"
		if kindWord == "get" {
			kind = "get"
		} else if kindWord == "set" {
			kind = "set"
		} else {
			kind = "init"
		}
		fn := p.parseMethodBody(generator, async)
		method := kind == "init"
		return &ast.Property{
			NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
			Key:      key, Value: fn, Kind: kind, Computed: computed, Method: method,
		}
	}

	if p.token.Kind == token.Colon {
		p.next()
		return &ast.Property{
			NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
			Key:      key, Value: p.parseAssignmentExpression(), Kind: "init", Computed: computed,
		}
	}

	// Shorthand, possibly with a default (cover grammar for destructuring).
	var value ast.Node = key
	if p.token.Kind == token.Assign {
		p.next()
		id, _ := key.(*ast.Identifier)
		value = &ast.AssignmentPattern{
			NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
			Left:     id, Right: p.parseAssignmentExpression(),
		}
	}
	return &ast.Property{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
		Key:      key, Value: value, Kind: "init", Computed: false, Shorthand: true,
	}
}

func (p *parser) parsePropertyKey() ast.Expr {
	start := p.idx0()
	switch p.token.Kind {
	case token.LeftBracket:
		p.next()
		key := p.parseAssignmentExpression()
		p.expect(token.RightBracket)
		return key
	case token.String:
		value := p.currentString()
		raw := p.currentRaw()
		if p.token.HasOctalEscape && p.ctx.has(ctxStrict) {
			p.error(ErrStrictModeOctalEscape)
		}
		p.next()
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: value, Raw: raw}
	case token.Number:
		raw := p.currentRaw()
		p.checkStrictOctalNumericLiteral(start, raw)
		p.next()
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: parseNumericValue(raw), Raw: raw}
	case token.PrivateIdentifier:
		name := p.currentString()
		p.next()
		return &ast.PrivateIdentifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
	default:
		name := p.currentString()
		p.next()
		return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
	}
}

// checkStrictOctalNumericLiteral reports a legacy octal (015) or
// non-octal-decimal-with-leading-zero (08, 09) integer literal under
// strict mode — both share the LegacyOctalIntegerLiteral early error.
// Hex/octal-prefix/binary-prefix, decimals with a fraction, and
// separator/BigInt-suffixed literals are never legacy syntax and return
// immediately.
func (p *parser) checkStrictOctalNumericLiteral(start ast.Idx, raw string) {
	if !p.ctx.has(ctxStrict) || len(raw) < 2 || raw[0] != '0' {
		return
	}
	switch raw[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B', '.', '_':
		return
	}
	for i := 1; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return
		}
	}
	p.errorAt(ErrStrictModeOctalNumericLiteral, start)
}

func (p *parser) parseMethodBody(generator, async bool) *ast.FunctionExpression {
	start := p.idx0()
	outerCtx := p.ctx
	p.ctx = p.ctx.without(ctxGenerator | ctxAsync | ctxYield | ctxAwait | ctxAwaitExpr).with(ctxFunction | ctxNewTarget)
	if generator {
		p.ctx |= ctxGenerator | ctxYield
	}
	if async {
		p.ctx |= ctxAsync | ctxAwait | ctxAwaitExpr
	}
	params := p.parseFunctionParams()
	wasStrict := p.ctx.has(ctxStrict)
	body := p.parseFunctionBody()
	p.checkRetroactiveParams(params, wasStrict)
	p.ctx = outerCtx
	return &ast.FunctionExpression{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
		Params:   params.list, Body: body, Generator: generator, Async: async,
	}
}

func (p *parser) parseTemplateLiteral(tag ast.Expr) ast.Expr {
	start := p.idx0()
	var quasis []*ast.TemplateElement
	var exprs []ast.Expr
	for {
		qStart := p.idx0()
		cooked := p.token.TemplateParsed(p.scanner)
		raw := p.token.TemplateLiteral(p.scanner)
		tail := p.token.Kind == token.NoSubstitutionTemplate || p.token.Kind == token.TemplateTail
		quasis = append(quasis, &ast.TemplateElement{
			NodeBase: ast.NodeBase{Start: qStart, End: p.idx1()},
			Tail:     tail, Cooked: cooked, Raw: raw,
		})
		if tail {
			p.next()
			break
		}
		p.next()
		exprs = append(exprs, p.parseExpression())
		if p.token.Kind != token.RightBrace {
			p.errorUnexpectedToken()
			break
		}
		startIdx := p.token.Idx0
		kind := p.scanner.ScanTemplate(true)
		p.scanner.Token.Idx0 = startIdx
		p.scanner.Token.Idx1 = p.scanner.Offset()
		p.scanner.Token.Kind = kind
		p.token = p.scanner.Token
	}
	lit := &ast.TemplateLiteral{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Quasis: quasis, Expressions: exprs}
	if tag != nil {
		return &ast.TaggedTemplateExpression{NodeBase: ast.NodeBase{Start: tag.Idx0(), End: p.lastEnd}, Tag: tag, Quasi: lit}
	}
	return lit
}

// parseParenthesizedOrArrow implements the cover grammar for
// `(...)` — it may turn out to be a parenthesized expression or the
// head of an arrow function, which isn't known until the token after
// the matching `)`.
func (p *parser) parseParenthesizedOrArrow(start ast.Idx) ast.Expr {
	st := p.mark()
	p.next() // (
	var elements []ast.Expr
	for p.token.Kind != token.RightParenthesis && p.token.Kind != token.Eof {
		if p.token.Kind == token.Ellipsis {
			elements = append(elements, p.parseSpreadElement())
		} else {
			elements = append(elements, p.parseAssignmentExpression())
		}
		if p.token.Kind != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightParenthesis)

	if p.token.Kind == token.Arrow && !p.token.OnNewLine {
		p.restore(st)
		params := p.parseFunctionParams()
		return p.parseArrowFunctionTail(start, params, false)
	}

	if len(elements) == 0 {
		p.errorUnexpectedToken()
		return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
	}
	if len(elements) == 1 {
		return elements[0]
	}
	return &ast.SequenceExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Expressions: elements}
}

func (p *parser) tryParseAsyncFunctionExpression() ast.Expr {
	st := p.mark()
	start := p.idx0()
	p.next() // async
	if p.token.OnNewLine {
		p.restore(st)
		return nil
	}
	if p.token.Kind == token.Function {
		return p.parseFunctionExpression(start, true)
	}
	if p.isBindingIdentifier(p.token.Kind) {
		id := p.parseIdentifier()
		if p.token.Kind == token.Arrow && !p.token.OnNewLine {
			params := paramList{list: []ast.Pattern{id}, names: []*ast.Identifier{id}, simple: true}
			return p.parseArrowFunctionTail(start, params, true)
		}
		p.restore(st)
		return nil
	}
	if p.token.Kind == token.LeftParenthesis {
		pst := p.mark()
		p.next()
		depth := 1
		for depth > 0 && p.token.Kind != token.Eof {
			switch p.token.Kind {
			case token.LeftParenthesis:
				depth++
			case token.RightParenthesis:
				depth--
			}
			p.next()
		}
		isArrow := p.token.Kind == token.Arrow && !p.token.OnNewLine
		p.restore(pst)
		if isArrow {
			params := p.parseFunctionParams()
			return p.parseArrowFunctionTail(start, params, true)
		}
	}
	p.restore(st)
	return nil
}

func (p *parser) parseArrowFunctionTail(start ast.Idx, params paramList, async bool) ast.Expr {
	p.expect(token.Arrow)
	outerCtx := p.ctx
	p.ctx = p.ctx.without(ctxGenerator).with(ctxFunction)
	if async {
		p.ctx |= ctxAsync | ctxAwait | ctxAwaitExpr
	} else {
		p.ctx = p.ctx.without(ctxAsync | ctxAwait | ctxAwaitExpr)
	}
	wasStrict := p.ctx.has(ctxStrict)
	var body ast.Node
	expression := p.token.Kind != token.LeftBrace
	if expression {
		body = p.parseAssignmentExpression()
	} else {
		body = p.parseFunctionBody()
	}
	p.checkRetroactiveParams(params, wasStrict)
	p.ctx = outerCtx
	return &ast.ArrowFunctionExpression{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
		Params:   params.list, Body: body, Expression: expression, Async: async,
	}
}

func (p *parser) parseArgumentList() []ast.Expr {
	p.expect(token.LeftParenthesis)
	var args []ast.Expr
	for p.token.Kind != token.RightParenthesis && p.token.Kind != token.Eof {
		if p.token.Kind == token.Ellipsis {
			args = append(args, p.parseSpreadElement())
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if p.token.Kind != token.RightParenthesis {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightParenthesis)
	return args
}

func (p *parser) parseNewExpression() ast.Expr {
	start := p.idx0()
	p.next() // new
	if p.token.Kind == token.Period {
		p.next()
		if p.currentString() != "target" {
			p.errorUnexpectedToken()
		} else if !p.ctx.has(ctxNewTarget) {
			p.error(ErrNewTargetOutsideFunction)
		}
		meta := &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: start + 3}, Name: "new"}
		prop := p.parseIdentifier()
		return &ast.MetaProperty{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Meta: meta, Property: prop}
	}
	callee := p.parseMemberExpressionChain(p.parseNewOrPrimary(), false)
	node := &ast.NewExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Callee: callee}
	if p.token.Kind == token.LeftParenthesis {
		node.Arguments = p.parseArgumentList()
	}
	node.End = p.lastEnd
	return node
}

func (p *parser) parseNewOrPrimary() ast.Expr {
	if p.token.Kind == token.New {
		return p.parseNewExpression()
	}
	return p.parsePrimaryExpression()
}

// parseMemberExpressionChain consumes `.x`, `[x]`, and tagged templates
// but stops before call parentheses — used by `new` callees, which bind
// tighter than a call.
func (p *parser) parseMemberExpressionChain(left ast.Expr, allowCall bool) ast.Expr {
	for {
		switch p.token.Kind {
		case token.Period:
			left = p.parseDotMember(left, false)
		case token.LeftBracket:
			left = p.parseComputedMember(left, false)
		case token.NoSubstitutionTemplate, token.TemplateHead:
			left = p.parseTemplateLiteral(left)
		case token.LeftParenthesis:
			if !allowCall {
				return left
			}
			args := p.parseArgumentList()
			left = &ast.CallExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: p.lastEnd}, Callee: left, Arguments: args}
		default:
			return left
		}
	}
}

func (p *parser) parseDotMember(left ast.Expr, optional bool) ast.Expr {
	p.next() // .
	if p.token.Kind == token.PrivateIdentifier {
		name := p.currentString()
		prop := &ast.PrivateIdentifier{NodeBase: ast.NodeBase{Start: p.idx0(), End: p.idx1()}, Name: name}
		p.usePrivateName(prop)
		p.next()
		return &ast.MemberExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: p.lastEnd}, Object: left, Property: prop, Optional: optional}
	}
	if !token.ID(p.token.Kind) {
		p.errorUnexpectedToken()
	}
	prop := p.parseIdentifier()
	return &ast.MemberExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: p.lastEnd}, Object: left, Property: prop, Optional: optional}
}

func (p *parser) parseComputedMember(left ast.Expr, optional bool) ast.Expr {
	p.next() // [
	prop := p.parseExpression()
	p.expect(token.RightBracket)
	return &ast.MemberExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: p.lastEnd}, Object: left, Property: prop, Computed: true, Optional: optional}
}

// parseLeftHandSideExpression parses a call/member/optional-chain
// expression. hasOptional tracks whether an optional-chain link was seen
// so the whole thing gets wrapped in a ChainExpression.
func (p *parser) parseLeftHandSideExpression() ast.Expr {
	var left ast.Expr
	if p.token.Kind == token.New {
		left = p.parseNewExpression()
	} else if p.token.Kind == token.Super {
		left = p.parseSuperExpression()
	} else {
		left = p.parsePrimaryExpression()
	}

	hasOptional := false
	for {
		switch p.token.Kind {
		case token.Period:
			left = p.parseDotMember(left, false)
		case token.LeftBracket:
			left = p.parseComputedMember(left, false)
		case token.LeftParenthesis:
			args := p.parseArgumentList()
			left = &ast.CallExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: p.lastEnd}, Callee: left, Arguments: args}
		case token.NoSubstitutionTemplate, token.TemplateHead:
			left = p.parseTemplateLiteral(left)
		case token.QuestionDot:
			hasOptional = true
			switch p.peek().Kind {
			case token.LeftParenthesis:
				p.next()
				args := p.parseArgumentList()
				left = &ast.CallExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: p.lastEnd}, Callee: left, Arguments: args, Optional: true}
			case token.LeftBracket:
				p.next()
				left = p.parseComputedMember(left, true)
			default:
				// parseDotMember consumes the `?.` itself, as it does a `.`.
				left = p.parseDotMember(left, true)
			}
		default:
			goto done
		}
	}
done:
	if hasOptional {
		return &ast.ChainExpression{NodeBase: ast.NodeBase{Start: left.Idx0(), End: left.Idx1()}, Expression: left}
	}
	return left
}

func (p *parser) parseSuperExpression() ast.Expr {
	start := p.idx0()
	p.next()
	switch p.token.Kind {
	case token.Period, token.LeftBracket:
		if !p.ctx.has(ctxSuperProp) {
			p.error(ErrSuperOutsideMethod)
		}
		return &ast.Super{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
	case token.LeftParenthesis:
		if !p.ctx.has(ctxSuperCall) {
			p.error(ErrSuperCallOutsideConstructor)
		}
		return &ast.Super{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
	}
	p.error(ErrSuperOutsideMethod)
	return &ast.Super{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}}
}

func (p *parser) parseUpdateExpression() ast.Expr {
	if p.token.Kind == token.Increment || p.token.Kind == token.Decrement {
		op := p.token.Kind
		start := p.idx0()
		p.next()
		operand := p.parseUnaryExpression()
		if !isValidAssignmentTarget(operand) {
			p.error(ErrInvalidLHSInAssignment)
		}
		return &ast.UpdateExpression{NodeBase: ast.NodeBase{Start: start, End: operand.Idx1()}, Operator: op.String(), Argument: operand, Prefix: true}
	}

	operand := p.parseLeftHandSideExpression()
	if (p.token.Kind == token.Increment || p.token.Kind == token.Decrement) && !p.token.OnNewLine {
		op := p.token.Kind
		if !isValidAssignmentTarget(operand) {
			p.error(ErrInvalidLHSInAssignment)
		}
		p.next()
		return &ast.UpdateExpression{NodeBase: ast.NodeBase{Start: operand.Idx0(), End: p.lastEnd}, Operator: op.String(), Argument: operand, Prefix: false}
	}
	return operand
}

func isValidAssignmentTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return true
	}
	return false
}

func (p *parser) parseUnaryExpression() ast.Expr {
	switch p.token.Kind {
	case token.Plus, token.Minus, token.Not, token.BitwiseNot, token.Delete, token.Void, token.Typeof:
		op := p.token.Kind
		start := p.idx0()
		p.next()
		operand := p.parseUnaryExpression()
		if op == token.Delete {
			if id, ok := operand.(*ast.Identifier); ok && p.ctx.has(ctxStrict) {
				_ = id
				p.error(ErrStrictModeDeleteUnqualified)
			}
		}
		return &ast.UnaryExpression{NodeBase: ast.NodeBase{Start: start, End: operand.Idx1()}, Operator: op.String(), Argument: operand, Prefix: true}
	case token.Await:
		if p.ctx.has(ctxAwait) {
			if !p.ctx.has(ctxAwaitExpr) {
				p.error(ErrAwaitInParameter)
			}
			start := p.idx0()
			p.next()
			return &ast.AwaitExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: p.parseUnaryExpression()}
		}
	}
	return p.parseUpdateExpression()
}

func (p *parser) parseBinaryExpression(minPrec int) ast.Expr {
	lhsParenthesized := p.token.Kind == token.LeftParenthesis
	var lhs ast.Expr
	if p.token.Kind == token.PrivateIdentifier && p.peek().Kind == token.In {
		name := p.currentString()
		priv := &ast.PrivateIdentifier{NodeBase: ast.NodeBase{Start: p.idx0(), End: p.idx1()}, Name: name}
		p.usePrivateName(priv)
		lhs = priv
		p.next()
	} else {
		lhs = p.parseUnaryExpression()
	}

	for {
		kind := p.token.Kind
		prec := kind.Precedence(p.ctx.has(ctxIn))
		if prec == 0 || prec <= minPrec {
			break
		}
		if kind == token.Exponent && !lhsParenthesized {
			switch lhs.(type) {
			case *ast.UnaryExpression, *ast.AwaitExpression:
				p.errorUnexpectedToken()
			}
		}
		p.next()
		rhsParenthesized := p.token.Kind == token.LeftParenthesis
		rhs := p.parseBinaryExpression(prec)
		_ = rhsParenthesized
		_ = lhsParenthesized

		switch kind {
		case token.LogicalAnd, token.LogicalOr, token.Coalesce:
			lhs = &ast.LogicalExpression{NodeBase: ast.NodeBase{Start: lhs.Idx0(), End: rhs.Idx1()}, Operator: kind.String(), Left: lhs, Right: rhs}
		default:
			lhs = &ast.BinaryExpression{NodeBase: ast.NodeBase{Start: lhs.Idx0(), End: rhs.Idx1()}, Operator: kind.String(), Left: lhs, Right: rhs}
		}
		lhsParenthesized = false
	}
	return lhs
}

func (p *parser) parseConditionalExpression() ast.Expr {
	test := p.parseBinaryExpression(0)
	if p.token.Kind != token.QuestionMark {
		return test
	}
	p.next()
	outerCtx := p.ctx
	p.ctx |= ctxIn
	consequent := p.parseAssignmentExpression()
	p.ctx = outerCtx
	p.expect(token.Colon)
	alternate := p.parseAssignmentExpression()
	return &ast.ConditionalExpression{
		NodeBase: ast.NodeBase{Start: test.Idx0(), End: alternate.Idx1()},
		Test:     test, Consequent: consequent, Alternate: alternate,
	}
}

var assignmentOperators = map[token.Token]bool{
	token.Assign: true, token.AddAssign: true, token.SubtractAssign: true,
	token.MultiplyAssign: true, token.ExponentAssign: true, token.QuotientAssign: true,
	token.RemainderAssign: true, token.AndAssign: true, token.OrAssign: true,
	token.ExclusiveOrAssign: true, token.ShiftLeftAssign: true, token.ShiftRightAssign: true,
	token.UnsignedShiftRightAssign: true, token.LogicalAndAssign: true,
	token.LogicalOrAssign: true, token.CoalesceAssign: true,
}

func (p *parser) parseAssignmentExpression() ast.Expr {
	start := p.idx0()

	if p.token.Kind == token.Yield && p.ctx.has(ctxGenerator) {
		if !p.ctx.has(ctxYield) {
			p.error(ErrYieldInParameter)
		}
		return p.parseYieldExpression()
	}

	if p.token.Kind == token.Async {
		if fn := p.tryParseAsyncFunctionExpression(); fn != nil {
			return fn
		}
	}

	if p.isBindingIdentifier(p.token.Kind) && p.peek().Kind == token.Arrow {
		id := p.parseIdentifier()
		params := paramList{list: []ast.Pattern{id}, names: []*ast.Identifier{id}, simple: true}
		return p.parseArrowFunctionTail(start, params, false)
	}

	left := p.parseConditionalExpression()

	if !assignmentOperators[p.token.Kind] {
		return left
	}

	op := p.token.Kind
	if op != token.Assign && !isValidAssignmentTarget(left) {
		p.error(ErrInvalidLHSInAssignment)
	}
	p.next()

	var target ast.Node = left
	if op == token.Assign {
		target = p.reinterpretAsPattern(left)
	}
	right := p.parseAssignmentExpression()
	return &ast.AssignmentExpression{
		NodeBase: ast.NodeBase{Start: start, End: right.Idx1()},
		Operator: op.String(), Left: target, Right: right,
	}
}

func (p *parser) parseYieldExpression() ast.Expr {
	start := p.idx0()
	p.next()
	delegate := false
	if p.token.Kind == token.Multiply && !p.token.OnNewLine {
		delegate = true
		p.next()
	}
	var arg ast.Expr
	if !p.canInsertSemicolon() && p.token.Kind != token.RightParenthesis && p.token.Kind != token.RightBracket && p.token.Kind != token.Comma {
		arg = p.parseAssignmentExpression()
	}
	end := p.lastEnd
	if arg != nil {
		end = arg.Idx1()
	}
	return &ast.YieldExpression{NodeBase: ast.NodeBase{Start: start, End: end}, Argument: arg, Delegate: delegate}
}

func (p *parser) parseExpression() ast.Expr {
	first := p.parseAssignmentExpression()
	if p.token.Kind != token.Comma {
		return first
	}
	exprs := []ast.Expr{first}
	for p.token.Kind == token.Comma {
		p.next()
		exprs = append(exprs, p.parseAssignmentExpression())
	}
	return &ast.SequenceExpression{NodeBase: ast.NodeBase{Start: first.Idx0(), End: exprs[len(exprs)-1].Idx1()}, Expressions: exprs}
}

func (p *parser) parseImportExpressionOrMeta(start ast.Idx) ast.Expr {
	p.next() // import
	if p.token.Kind == token.Period {
		p.next()
		prop := p.parseIdentifier()
		meta := &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: start + 6}, Name: "import"}
		return &ast.MetaProperty{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Meta: meta, Property: prop}
	}
	if !p.ctx.has(ctxNext) {
		p.errorAt(ErrFeatureNotEnabled, start, "dynamic import()", "next")
	}
	p.expect(token.LeftParenthesis)
	src := p.parseAssignmentExpression()
	p.expect(token.RightParenthesis)
	return &ast.ImportExpression{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Source: src}
}
