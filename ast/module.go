package ast

// ImportSpecifier is `{ imported as local }` inside a named import list;
// Imported equals Local for the non-renaming `{ local }` shorthand.
type ImportSpecifier struct {
	NodeBase
	Imported *Identifier
	Local    *Identifier
}

// ImportDefaultSpecifier is the `def` of `import def, ...`.
type ImportDefaultSpecifier struct {
	NodeBase
	Local *Identifier
}

// ImportNamespaceSpecifier is the `* as ns` form.
type ImportNamespaceSpecifier struct {
	NodeBase
	Local *Identifier
}

// ImportDeclaration.Specifiers holds *ImportSpecifier,
// *ImportDefaultSpecifier, and *ImportNamespaceSpecifier elements, legal
// only under sourceType "module".
type ImportDeclaration struct {
	NodeBase
	Specifiers []Node
	Source     *Literal
}

// ExportSpecifier is `{ local as exported }` inside a named export list.
type ExportSpecifier struct {
	NodeBase
	Local    *Identifier
	Exported *Identifier
}

// ExportNamedDeclaration carries either a Declaration (and no Specifiers)
// or a Specifiers list with an optional re-export Source.
type ExportNamedDeclaration struct {
	NodeBase
	Declaration Node
	Specifiers  []*ExportSpecifier
	Source      *Literal
}

// ExportDefaultDeclaration's Declaration is a FunctionDeclaration,
// ClassDeclaration (either possibly anonymous), or an arbitrary Expr.
type ExportDefaultDeclaration struct {
	NodeBase
	Declaration Node
}

// ExportAllDeclaration is `export * from "src"` or, with a non-nil
// Exported, `export * as ns from "src"`.
type ExportAllDeclaration struct {
	NodeBase
	Source   *Literal
	Exported *Identifier
}

func (*ImportDeclaration) stmtNode()          {}
func (*ImportDeclaration) moduleDeclNode()    {}
func (*ExportNamedDeclaration) stmtNode()       {}
func (*ExportNamedDeclaration) moduleDeclNode() {}
func (*ExportDefaultDeclaration) stmtNode()       {}
func (*ExportDefaultDeclaration) moduleDeclNode() {}
func (*ExportAllDeclaration) stmtNode()       {}
func (*ExportAllDeclaration) moduleDeclNode() {}
