package parser

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

func (p *parser) parseImportDeclaration() *ast.ImportDeclaration {
	start := p.idx0()
	p.expect(token.Import)

	var specifiers []ast.Node

	if p.token.Kind == token.String {
		src := p.parseStringLiteral()
		p.semicolon()
		return &ast.ImportDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Source: src}
	}

	if p.isBindingIdentifier(p.token.Kind) {
		local := p.parseBindingIdentifier()
		p.declareLexical(local)
		specifiers = append(specifiers, &ast.ImportDefaultSpecifier{NodeBase: local.NodeBase, Local: local})
		if p.token.Kind == token.Comma {
			p.next()
		}
	}

	if p.token.Kind == token.Multiply {
		nsStart := p.idx0()
		p.next()
		p.expectContextual(token.As, "as")
		local := p.parseBindingIdentifier()
		p.declareLexical(local)
		specifiers = append(specifiers, &ast.ImportNamespaceSpecifier{NodeBase: ast.NodeBase{Start: nsStart, End: p.lastEnd}, Local: local})
	} else if p.token.Kind == token.LeftBrace {
		p.next()
		for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
			sStart := p.idx0()
			imported := p.parseIdentifierName()
			local := imported
			if p.currentString() == "as" && p.token.Kind != token.Comma && p.token.Kind != token.RightBrace {
				p.expectContextual(token.As, "as")
				local = p.parseBindingIdentifier()
			}
			p.declareLexical(local)
			specifiers = append(specifiers, &ast.ImportSpecifier{NodeBase: ast.NodeBase{Start: sStart, End: p.lastEnd}, Imported: imported, Local: local})
			if p.token.Kind != token.RightBrace {
				p.expect(token.Comma)
			}
		}
		p.expect(token.RightBrace)
	}

	p.expectContextual(token.From, "from")
	src := p.parseStringLiteral()
	p.semicolon()
	return &ast.ImportDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Specifiers: specifiers, Source: src}
}

func (p *parser) parseExportDeclaration() ast.Stmt {
	start := p.idx0()
	p.expect(token.Export)

	if p.token.Kind == token.Multiply {
		p.next()
		var exported *ast.Identifier
		if p.currentString() == "as" {
			p.expectContextual(token.As, "as")
			exported = p.parseIdentifierName()
			p.declareExport(exported.Name, exported.Idx0())
		}
		p.expectContextual(token.From, "from")
		src := p.parseStringLiteral()
		p.semicolon()
		return &ast.ExportAllDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Source: src, Exported: exported}
	}

	if p.token.Kind == token.Default {
		p.declareExport("default", start)
		p.next()
		var decl ast.Node
		switch {
		case p.token.Kind == token.Function:
			decl = p.parseFunctionDeclaration(p.idx0(), false, true)
		case p.token.Kind == token.Async && p.peek().Kind == token.Function:
			fstart := p.idx0()
			p.next()
			decl = p.parseFunctionDeclaration(fstart, true, true)
		case p.token.Kind == token.Class:
			decl = p.parseClassDeclarationOptionalName()
		default:
			decl = p.parseAssignmentExpression()
			p.semicolon()
		}
		return &ast.ExportDefaultDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Declaration: decl}
	}

	if p.token.Kind == token.LeftBrace {
		p.next()
		var specs []*ast.ExportSpecifier
		for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
			sStart := p.idx0()
			local := p.parseIdentifierName()
			exported := local
			if p.currentString() == "as" && p.token.Kind != token.Comma && p.token.Kind != token.RightBrace {
				p.expectContextual(token.As, "as")
				exported = p.parseIdentifierName()
			}
			p.declareExport(exported.Name, exported.Idx0())
			specs = append(specs, &ast.ExportSpecifier{NodeBase: ast.NodeBase{Start: sStart, End: p.lastEnd}, Local: local, Exported: exported})
			if p.token.Kind != token.RightBrace {
				p.expect(token.Comma)
			}
		}
		p.expect(token.RightBrace)
		var src *ast.Literal
		if p.currentString() == "from" {
			p.expectContextual(token.From, "from")
			src = p.parseStringLiteral()
		}
		p.semicolon()
		return &ast.ExportNamedDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Specifiers: specs, Source: src}
	}

	var decl ast.Node
	switch p.token.Kind {
	case token.Var, token.Let, token.Const:
		decl = p.parseVariableStatement()
	case token.Function:
		decl = p.parseFunctionDeclaration(p.idx0(), false, false)
	case token.Async:
		fstart := p.idx0()
		p.next()
		decl = p.parseFunctionDeclaration(fstart, true, false)
	case token.Class:
		decl = p.parseClassDeclaration()
	default:
		p.errorUnexpectedToken()
	}
	p.declareExportedNames(decl)
	return &ast.ExportNamedDeclaration{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Declaration: decl}
}

// declareExportedNames registers every name a bare `export <decl>` binds,
// against ErrDuplicateExport — decl is whatever parseExportDeclaration's
// switch just produced.
func (p *parser) declareExportedNames(decl ast.Node) {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		for _, declarator := range d.Declarations {
			var names []*ast.Identifier
			collectBoundIdentifiers(declarator.Id, &names)
			for _, id := range names {
				p.declareExport(id.Name, id.Idx0())
			}
		}
	case *ast.FunctionDeclaration:
		if d.Id != nil {
			p.declareExport(d.Id.Name, d.Id.Idx0())
		}
	case *ast.ClassDeclaration:
		if d.Id != nil {
			p.declareExport(d.Id.Name, d.Id.Idx0())
		}
	}
}

// declareExport records one exported binding name, raising
// ErrDuplicateExport if the module already exports that name — "default"
// included, since a module may have at most one default export.
func (p *parser) declareExport(name string, idx ast.Idx) {
	if p.exportedNames == nil {
		p.exportedNames = make(map[string]bool)
	}
	if p.exportedNames[name] {
		p.errorAt(ErrDuplicateExport, idx, name)
		return
	}
	p.exportedNames[name] = true
}

func (p *parser) parseClassDeclarationOptionalName() *ast.ClassDeclaration {
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

func (p *parser) parseIdentifierName() *ast.Identifier {
	start := p.idx0()
	name := p.currentString()
	p.next()
	return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
}

// expectContextual consumes a contextual keyword (as/from/of/...) which
// the scanner only ever resolves to its dedicated token kind, never
// Identifier, so a direct kind check suffices.
func (p *parser) expectContextual(kind token.Token, text string) {
	if p.token.Kind != kind {
		p.errorUnexpectedToken()
		return
	}
	p.next()
}

func (p *parser) parseStringLiteral() *ast.Literal {
	start := p.idx0()
	if p.token.Kind != token.String {
		p.errorUnexpectedToken()
		return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.idx1()}}
	}
	value := p.currentString()
	raw := p.currentRaw()
	p.next()
	return &ast.Literal{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Value: value, Raw: raw}
}
