package parser

import "github.com/wilt-23/cherow/ast"

// scope tracks the handful of lexical facts that change how a nested
// statement or expression must be parsed: which labels are reachable,
// whether break/continue/return are legal here, and which names have
// already been bound in this lexical scope (for redeclaration checks).
type scope struct {
	outer *scope

	inIteration  bool
	inSwitch     bool
	inFunction   bool
	inFuncParams bool

	labels []string

	lexicalNames map[string]bool
	varNames     map[string]bool
}

func (p *parser) openScope() {
	p.scope = &scope{outer: p.scope}
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

func (s *scope) hasLabel(name string) bool {
	for _, label := range s.labels {
		if label == name {
			return true
		}
	}
	if s.outer != nil && !s.inFunction {
		return s.outer.hasLabel(name)
	}
	return false
}

func (s *scope) declareLexical(name string) bool {
	if s.lexicalNames == nil {
		s.lexicalNames = make(map[string]bool)
	}
	if s.lexicalNames[name] || s.varNames[name] {
		return false
	}
	s.lexicalNames[name] = true
	return true
}

// declareLexical declares one identifier bound by let/const/class, in the
// current lexical scope, reporting a duplicate binding and the three
// identifiers the grammar singles out as never bindable (Infinity, NaN,
// undefined aren't keywords — they're ordinary global bindings — but a
// lexical declaration is required to reject them by name regardless).
func (p *parser) declareLexical(id *ast.Identifier) {
	switch id.Name {
	case "Infinity", "NaN", "undefined":
		p.errorAt(ErrDuplicateBinding, id.Idx0(), id.Name)
		return
	}
	if !p.scope.declareLexical(id.Name) {
		p.errorAt(ErrDuplicateBinding, id.Idx0(), id.Name)
	}
}

// declareLexicalPattern declares every identifier a (possibly
// destructuring) binding pattern introduces, via declareLexical.
func (p *parser) declareLexicalPattern(pat ast.Node) {
	var names []*ast.Identifier
	collectBoundIdentifiers(pat, &names)
	for _, id := range names {
		p.declareLexical(id)
	}
}

// declareVar records a `var` binding in the nearest function/Program
// scope, per ECMAScript's function-scoped hoisting; it climbs past
// block scopes but stops at a function boundary.
func (p *parser) declareVar(name string) bool {
	s := p.scope
	for s.outer != nil && !s.inFunction {
		s = s.outer
	}
	if s.varNames == nil {
		s.varNames = make(map[string]bool)
	}
	if s.lexicalNames[name] {
		return false
	}
	s.varNames[name] = true
	return true
}

func (p *parser) inLoopOrSwitch() bool {
	for s := p.scope; s != nil && !s.inFunction; s = s.outer {
		if s.inIteration || s.inSwitch {
			return true
		}
	}
	return false
}

func (p *parser) inLoop() bool {
	for s := p.scope; s != nil && !s.inFunction; s = s.outer {
		if s.inIteration {
			return true
		}
	}
	return false
}

func (p *parser) labelExists(name string) bool {
	return p.scope.hasLabel(name)
}
