package parser

import (
	"github.com/wilt-23/cherow/ast"
	"github.com/wilt-23/cherow/token"
)

// reinterpretAsPattern converts the left-hand side of an `=` found in an
// assignment-target or destructuring position from the expression shape
// the cover grammar produced (ArrayExpression, ObjectExpression, a bare
// AssignmentExpression standing in for a default) into its pattern
// counterpart. Anything that isn't a valid assignment target reports
// ErrInvalidDestructuringTarget and is returned unchanged so parsing can
// continue.
func (p *parser) reinterpretAsPattern(e ast.Node) ast.Node {
	switch n := e.(type) {
	case *ast.Identifier, *ast.MemberExpression:
		return n
	case *ast.ArrayExpression:
		elements := make([]ast.Pattern, len(n.Elements))
		for i, el := range n.Elements {
			if el == nil {
				continue
			}
			if spread, ok := el.(*ast.SpreadElement); ok {
				if i != len(n.Elements)-1 {
					p.error(ErrRestElementNotLast)
				}
				if _, ok := spread.Argument.(*ast.AssignmentExpression); ok {
					p.errorAt(ErrRestElementWithDefault, spread.Argument.Idx0())
				}
				elements[i] = &ast.RestElement{NodeBase: spread.NodeBase, Argument: p.reinterpretAsPatternExpr(spread.Argument)}
				continue
			}
			elements[i] = p.reinterpretAsPatternExpr(el)
		}
		return &ast.ArrayPattern{NodeBase: n.NodeBase, Elements: elements}
	case *ast.ObjectExpression:
		props := make([]ast.Node, len(n.Properties))
		for i, prop := range n.Properties {
			switch pr := prop.(type) {
			case *ast.SpreadElement:
				if i != len(n.Properties)-1 {
					p.error(ErrRestElementNotLast)
				}
				if _, ok := pr.Argument.(*ast.AssignmentExpression); ok {
					p.errorAt(ErrRestElementWithDefault, pr.Argument.Idx0())
				}
				props[i] = &ast.RestElement{NodeBase: pr.NodeBase, Argument: p.reinterpretAsPatternExpr(pr.Argument)}
			case *ast.Property:
				value, ok := pr.Value.(ast.Expr)
				if !ok {
					props[i] = pr
					continue
				}
				np := *pr
				np.Value = p.reinterpretAsPattern(value)
				props[i] = &np
			}
		}
		return &ast.ObjectPattern{NodeBase: n.NodeBase, Properties: props}
	case *ast.AssignmentExpression:
		if n.Operator != "=" {
			p.errorAt(ErrInvalidDestructuringTarget, n.Idx0())
			return n
		}
		left, ok := n.Left.(ast.Pattern)
		if !ok {
			if expr, ok := n.Left.(ast.Expr); ok {
				left, _ = p.reinterpretAsPattern(expr).(ast.Pattern)
			}
		}
		return &ast.AssignmentPattern{NodeBase: n.NodeBase, Left: left, Right: n.Right}
	case *ast.AssignmentPattern:
		return n
	default:
		if expr, ok := e.(ast.Expr); ok {
			p.errorAt(ErrInvalidDestructuringTarget, expr.Idx0())
		}
		return e
	}
}

func (p *parser) reinterpretAsPatternExpr(e ast.Expr) ast.Pattern {
	n := p.reinterpretAsPattern(e)
	pat, ok := n.(ast.Pattern)
	if !ok {
		p.errorAt(ErrInvalidDestructuringTarget, e.Idx0())
		return &ast.Identifier{NodeBase: ast.NodeBase{Start: e.Idx0(), End: e.Idx1()}}
	}
	return pat
}

// parseBindingTarget parses a variable/parameter/catch binding directly
// as a pattern — used everywhere a binding is introduced (declarations,
// parameters, catch clauses) rather than reinterpreting an expression,
// since in all of those positions the grammar never allows anything
// expression-only to appear.
func (p *parser) parseBindingTarget() ast.Pattern {
	switch p.token.Kind {
	case token.LeftBracket:
		return p.parseArrayBindingPattern()
	case token.LeftBrace:
		return p.parseObjectBindingPattern()
	default:
		return p.parseBindingIdentifier()
	}
}

func (p *parser) parseBindingIdentifier() *ast.Identifier {
	start := p.idx0()
	if !p.isBindingIdentifier(p.token.Kind) {
		p.errorUnexpectedToken()
	}
	name := p.currentString()
	if name == "eval" || name == "arguments" {
		if p.ctx.has(ctxStrict) {
			p.error(ErrStrictModeAssignEval)
		}
	}
	p.next()
	return &ast.Identifier{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Name: name}
}

func (p *parser) parseArrayBindingPattern() *ast.ArrayPattern {
	start := p.idx0()
	p.expect(token.LeftBracket)
	var elements []ast.Pattern
	for p.token.Kind != token.RightBracket && p.token.Kind != token.Eof {
		if p.token.Kind == token.Comma {
			p.next()
			elements = append(elements, nil)
			continue
		}
		if p.token.Kind == token.Ellipsis {
			rstart := p.idx0()
			p.next()
			target := p.parseBindingTarget()
			p.checkNoRestDefault()
			elements = append(elements, &ast.RestElement{NodeBase: ast.NodeBase{Start: rstart, End: p.lastEnd}, Argument: target})
		} else {
			elements = append(elements, p.parseBindingElement())
		}
		if p.token.Kind != token.RightBracket {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBracket)
	return &ast.ArrayPattern{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Elements: elements}
}

func (p *parser) parseBindingElement() ast.Pattern {
	start := p.idx0()
	target := p.parseBindingTarget()
	if p.token.Kind == token.Assign {
		p.next()
		return &ast.AssignmentPattern{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Left: target, Right: p.parseAssignmentExpression()}
	}
	return target
}

func (p *parser) parseObjectBindingPattern() *ast.ObjectPattern {
	start := p.idx0()
	p.expect(token.LeftBrace)
	var props []ast.Node
	for p.token.Kind != token.RightBrace && p.token.Kind != token.Eof {
		if p.token.Kind == token.Ellipsis {
			rstart := p.idx0()
			p.next()
			target := p.parseBindingIdentifier()
			p.checkNoRestDefault()
			props = append(props, &ast.RestElement{NodeBase: ast.NodeBase{Start: rstart, End: p.lastEnd}, Argument: target})
		} else {
			pstart := p.idx0()
			computed := p.token.Kind == token.LeftBracket
			key := p.parsePropertyKey()
			var value ast.Node
			shorthand := false
			if p.token.Kind == token.Colon {
				p.next()
				value = p.parseBindingElement()
			} else {
				id, _ := key.(*ast.Identifier)
				shorthand = true
				if p.token.Kind == token.Assign {
					p.next()
					value = &ast.AssignmentPattern{NodeBase: ast.NodeBase{Start: pstart, End: p.lastEnd}, Left: id, Right: p.parseAssignmentExpression()}
				} else {
					value = id
				}
			}
			props = append(props, &ast.Property{
				NodeBase: ast.NodeBase{Start: pstart, End: p.lastEnd},
				Key:      key, Value: value, Kind: "init", Computed: computed, Shorthand: shorthand,
			})
		}
		if p.token.Kind != token.RightBrace {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightBrace)
	return &ast.ObjectPattern{NodeBase: ast.NodeBase{Start: start, End: p.lastEnd}, Properties: props}
}

// checkNoRestDefault reports `...x = y`, which reads as a rest element
// followed by a default — never legal, since rest elements absorb
// whatever's left and have nothing to default from. Called right after a
// rest element's target is parsed, with p.token still on the offending
// `=` if present.
func (p *parser) checkNoRestDefault() {
	if p.token.Kind != token.Assign {
		return
	}
	start := p.idx0()
	p.next()
	p.parseAssignmentExpression()
	p.errorAt(ErrRestElementWithDefault, start)
}

// collectBoundIdentifiers walks a binding pattern (or, via Property.Value,
// a node that's statically known to be one) and appends every identifier
// it binds to out, in source order. Used wherever a full set of names
// introduced by a pattern needs to be known at once: parameter-list
// validation, destructured lexical declarations, and export name tracking.
func collectBoundIdentifiers(n ast.Node, out *[]*ast.Identifier) {
	switch v := n.(type) {
	case *ast.Identifier:
		*out = append(*out, v)
	case *ast.ArrayPattern:
		for _, el := range v.Elements {
			if el != nil {
				collectBoundIdentifiers(el, out)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range v.Properties {
			switch pr := prop.(type) {
			case *ast.Property:
				collectBoundIdentifiers(pr.Value, out)
			case *ast.RestElement:
				collectBoundIdentifiers(pr.Argument, out)
			}
		}
	case *ast.AssignmentPattern:
		collectBoundIdentifiers(v.Left, out)
	case *ast.RestElement:
		collectBoundIdentifiers(v.Argument, out)
	}
}

// isStrictReservedWord reports whether name is one of the identifiers
// ordinary code can use freely but strict-mode code can't bind: the
// future-reserved words plus the two contextual keywords ("yield",
// "let") that are only reserved once strict mode is in effect.
func isStrictReservedWord(name string) bool {
	if name == "yield" || name == "let" {
		return true
	}
	return token.MatchKeyword(name).Is(token.FlagFutureReserved)
}
