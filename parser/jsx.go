package parser

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// parseJSXElement parses a `<Tag ...>children</Tag>` or self-closing
// `<Tag ... />` element. The leading `<` is still the current token.
func (p *parser) parseJSXElement() *ast.JSXElement {
	start := p.idx0()
	opening := p.parseJSXOpeningElement(start)

	if opening.SelfClosing {
		return &ast.JSXElement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, OpeningElement: opening}
	}

	children := p.parseJSXChildren()

	closing := p.parseJSXClosingElement()
	if jsxNameString(opening.Name) != jsxNameString(closing.Name) {
		p.errorAt(ErrJSXTagMismatch, closing.Idx0(), jsxNameString(opening.Name))
	}

	return &ast.JSXElement{
		NodeBase:       ast.NodeBase{Start: start, End: p.lastEnd},
		OpeningElement: opening,
		Children:       children,
		ClosingElement: closing,
	}
}

func (p *parser) parseJSXOpeningElement(start ast.Idx) *ast.JSXOpeningElement {
	p.nextJSXIdentifier() // consume '<', land on the tag name
	name := p.parseJSXElementName()

	var attrs []ast.Node
	for p.token.Kind != token.Slash && p.token.Kind != token.Greater && p.token.Kind != token.Eof {
		attrs = append(attrs, p.parseJSXAttribute())
	}

	selfClosing := false
	if p.token.Kind == token.Slash {
		selfClosing = true
		p.next()
	}
	p.expectJSXGreater()

	return &ast.JSXOpeningElement{
		NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name, Attributes: attrs, SelfClosing: selfClosing,
	}
}

func (p *parser) parseJSXClosingElement() *ast.JSXClosingElement {
	start := p.idx0()
	if p.token.Kind != token.Slash {
		p.errorUnexpectedToken()
	}
	p.nextJSXIdentifier() // consume '/', scan the tag name
	name := p.parseJSXElementName()
	p.expectJSXGreater()
	return &ast.JSXClosingElement{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
}

// nextJSXIdentifier advances past the current token (normally `<` or
// `/`) and rescans the following run of identifier/hyphen bytes with the
// JSX-aware scanner entry point, so `data-foo` reads as one name.
func (p *parser) nextJSXIdentifier() {
	p.lastEnd = p.token.Idx1
	p.scanner.ScanJSXIdentifier()
	p.token = p.scanner.Token
}

func (p *parser) parseJSXElementName() ast.Node {
	start := p.idx0()
	name := p.currentString()
	p.nextJSXNameContinuation()
	var node ast.Node = &ast.JSXIdentifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}

	for p.token.Kind == token.Period {
		p.next()
		pstart := p.idx0()
		prop := p.currentString()
		p.nextJSXNameContinuation()
		node = &ast.JSXMemberExpression{
			NodeBase: ast.NodeBase{Start: start, End: p.lastEnd},
			Object:   node,
			Property: &ast.JSXIdentifier{NodeBase: ast.NodeBase{Start: pstart, End: p.lastEnd}, Name: prop},
		}
	}
	if p.token.Kind == token.Colon {
		ns := node.(*ast.JSXIdentifier)
		p.next()
		pstart := p.idx0()
		name := p.currentString()
		p.nextJSXNameContinuation()
		return &ast.JSXNamespacedName{
			NodeBase:  ast.NodeBase{Start: start, End: p.lastEnd},
			Namespace: ns,
			Name:      &ast.JSXIdentifier{NodeBase: ast.NodeBase{Start: pstart, End: p.lastEnd}, Name: name},
		}
	}
	return node
}

// nextJSXNameContinuation resumes normal tokenization after a JSX name
// segment — the scanner already left the cursor right after the name, so
// this just lets Next see what comes after it (`.`, `:`, an attribute, or
// the end of the tag).
func (p *parser) nextJSXNameContinuation() {
	p.next()
}

func (p *parser) parseJSXAttribute() ast.Node {
	start := p.idx0()
	if p.token.Kind == token.LeftBrace {
		p.next()
		p.expect(token.Ellipsis)
		arg := p.parseAssignmentExpression()
		p.expect(token.RightBrace)
		return &ast.JSXSpreadAttribute{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Argument: arg}
	}

	name := p.parseJSXAttributeName()
	var value ast.Node
	if p.token.Kind == token.Assign {
		p.next()
		switch p.token.Kind {
		case token.String:
			value = p.parseStringLiteral()
		case token.LeftBrace:
			value = p.parseJSXExpressionContainer()
		default:
			p.errorUnexpectedToken()
		}
	}
	return &ast.JSXAttribute{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name, Value: value}
}

func (p *parser) parseJSXAttributeName() ast.Node {
	start := p.idx0()
	name := p.currentString()
	p.nextJSXNameContinuation()
	id := &ast.JSXIdentifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
	if p.token.Kind == token.Colon {
		p.next()
		pstart := p.idx0()
		local := p.currentString()
		p.nextJSXNameContinuation()
		return &ast.JSXNamespacedName{
			NodeBase:  ast.NodeBase{Start: start, End: p.lastEnd},
			Namespace: id,
			Name:      &ast.JSXIdentifier{NodeBase: ast.NodeBase{Start: pstart, End: p.lastEnd}, Name: local},
		}
	}
	return id
}

func (p *parser) parseJSXExpressionContainer() *ast.JSXExpressionContainer {
	start := p.idx0()
	p.expect(token.LeftBrace)
	var expr ast.Node
	if p.token.Kind == token.RightBrace {
		expr = &ast.JSXEmptyExpression{NodeBase: ast.NodeBase{Start: p.idx0(), End: p.idx0()}}
	} else {
		expr = p.parseExpression()
	}
	// `{<Foo/><Bar/>}` parses the first element as a complete expression
	// and stops dead on the second `<`, which would otherwise surface as
	// a bare unexpected-token error at the closing brace.
	if p.token.Kind == token.Less {
		if _, ok := expr.(*ast.JSXElement); ok {
			p.error(ErrAdjacentJSXWithoutParen)
		}
	}
	p.expect(token.RightBrace)
	return &ast.JSXExpressionContainer{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Expression: expr}
}

// parseJSXChildren scans the text/element/expression mix between an
// opening and closing tag, reading raw text directly off the scanner
// since the main token loop has no JSX-text mode of its own.
func (p *parser) parseJSXChildren() []ast.Node {
	var children []ast.Node
	for {
		textTok := p.scanner.ScanJSXText()
		if textTok.Idx1 > textTok.Idx0 {
			raw := p.src[textTok.Idx0:textTok.Idx1]
			children = append(children, &ast.JSXText{NodeBase: ast.NodeBase{Start: textTok.Idx0, End: textTok.Idx1}, Value: raw, Raw: raw})
		}

		p.next()
		switch p.token.Kind {
		case token.Eof:
			p.error(ErrUnterminatedJSXElement)
			return children
		case token.Less:
			if p.peek().Kind == token.Slash {
				p.next() // leave the `/` current for parseJSXClosingElement
				return children
			}
			children = append(children, p.parseJSXElement())
		case token.LeftBrace:
			if p.peek().Kind == token.Ellipsis {
				start := p.idx0()
				p.next()
				p.next()
				arg := p.parseAssignmentExpression()
				p.expect(token.RightBrace)
				children = append(children, &ast.JSXSpreadChild{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Expression: arg})
			} else {
				children = append(children, p.parseJSXExpressionContainer())
			}
		default:
			return children
		}
	}
}

// expectJSXGreater records the `>` that closes a tag without resuming
// ordinary tokenization — the cursor must stay exactly where it is so
// the caller (children text, or the top-level JSX expression) can decide
// what comes next, rather than having it pre-scanned as a plain token.
func (p *parser) expectJSXGreater() {
	if p.token.Kind != token.Greater {
		p.errorUnexpectedToken()
		return
	}
	p.lastEnd = p.token.Idx1
}

func jsxNameString(n ast.Node) string {
	switch v := n.(type) {
	case *ast.JSXIdentifier:
		return v.Name
	case *ast.JSXMemberExpression:
		return jsxNameString(v.Object) + "." + v.Property.Name
	case *ast.JSXNamespacedName:
		return v.Namespace.Name + ":" + v.Name.Name
	}
	return ""
}
