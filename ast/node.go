// Package ast defines the ESTree-shaped syntax tree produced by the parser:
// positions, the Program root, comments, and the expression/statement/
// pattern/declaration node types described by the external interface.
package ast

// Idx is a zero-based byte offset into the parsed source.
type Idx int

// Position is a one-based line, zero-based column pair, reset on every
// line terminator recognized by the scanner.
type Position struct {
	Line   int
	Column int
}

// SourceLocation is ESTree's loc.{start,end} pair. When the Locations
// option is set the parser fills it on the Program node only; every other
// node's Loc stays nil.
type SourceLocation struct {
	Start Position
	End   Position
}

// Node is satisfied by every AST node. Idx0/Idx1 report the half-open byte
// range [Idx0, Idx1) the node spans, always populated; no option controls
// them.
type Node interface {
	Idx0() Idx
	Idx1() Idx
}

// NodeBase carries the fields common to every node. Embedding it gives a
// type Idx0/Idx1 for free and a place to hang optional range/location
// output without threading the options through every constructor.
type NodeBase struct {
	Start, End Idx
	Loc        *SourceLocation
}

func (n *NodeBase) Idx0() Idx { return n.Start }
func (n *NodeBase) Idx1() Idx { return n.End }

// Expr is satisfied by every node that can appear in an expression
// position.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every node that can appear directly in a statement
// list, including declarations and module import/export forms (ESTree
// treats Declaration and ModuleDeclaration as Statement subtypes).
type Stmt interface {
	Node
	stmtNode()
}

// Pattern is satisfied by every node that can appear in a binding or
// assignment-target position.
type Pattern interface {
	Node
	patternNode()
}

// Decl is satisfied by the three declaration forms, which are also Stmt.
type Decl interface {
	Stmt
	declNode()
}

// ModuleDecl is satisfied by the import/export forms, which are also Stmt.
type ModuleDecl interface {
	Stmt
	moduleDeclNode()
}

// CommentKind distinguishes `//` from `/* */` comments.
type CommentKind int

const (
	LineComment CommentKind = iota
	BlockComment
)

// Comment is appended to the caller-supplied sink when the Comments option
// is enabled; it is never attached to AST nodes.
type Comment struct {
	Kind       CommentKind
	Text       string
	Start, End Idx
	Loc        *SourceLocation
}

// SourceType names the grammar goal symbol a Program was parsed under.
type SourceType string

const (
	SourceTypeScript SourceType = "script"
	SourceTypeModule SourceType = "module"
)

// Program is the root node returned by ParseScript/ParseModule.
type Program struct {
	NodeBase
	Body       []Stmt
	SourceType SourceType
	Comments   []Comment
}
