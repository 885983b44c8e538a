package ast

// VariableDeclarator is a plain Node; Init is nil for an uninitialized
// `var`/`let` binding (forbidden for `const` and for any binding-pattern
// Id outside a for-in/for-of head).
type VariableDeclarator struct {
	NodeBase
	Id   Pattern
	Init Expr
}

type VariableDeclaration struct {
	NodeBase
	Declarations []*VariableDeclarator
	Kind         string // "var" | "let" | "const"
}

// FunctionDeclaration.Id is nil only for the `export default function(){}`
// form.
type FunctionDeclaration struct {
	NodeBase
	Id        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// ClassDeclaration.Id is nil only for the `export default class {}` form.
type ClassDeclaration struct {
	NodeBase
	Id         *Identifier
	SuperClass Expr
	Body       *ClassBody
}

func (*VariableDeclaration) stmtNode()  {}
func (*VariableDeclaration) declNode()  {}
func (*FunctionDeclaration) stmtNode()  {}
func (*FunctionDeclaration) declNode()  {}
func (*ClassDeclaration) stmtNode()     {}
func (*ClassDeclaration) declNode()     {}
