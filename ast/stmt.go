package ast

type ExpressionStatement struct {
	NodeBase
	Expression Expr
	// Directive is the string value (escapes decoded, quotes stripped) of a
	// statement that is a lone string literal (e.g. "use strict"). It is set
	// wherever such a statement appears; parseStatementList honours it only
	// inside the leading directive prologue.
	Directive string
}

type BlockStatement struct {
	NodeBase
	Body []Stmt
}

type EmptyStatement struct{ NodeBase }

type DebuggerStatement struct{ NodeBase }

type WithStatement struct {
	NodeBase
	Object Expr
	Body   Stmt
}

type ReturnStatement struct {
	NodeBase
	Argument Expr
}

type LabeledStatement struct {
	NodeBase
	Label *Identifier
	Body  Stmt
}

type BreakStatement struct {
	NodeBase
	Label *Identifier
}

type ContinueStatement struct {
	NodeBase
	Label *Identifier
}

type IfStatement struct {
	NodeBase
	Test       Expr
	Consequent Stmt
	Alternate  Stmt
}

// SwitchCase is a plain Node, not itself a Stmt; a nil Test marks the
// default clause.
type SwitchCase struct {
	NodeBase
	Test       Expr
	Consequent []Stmt
}

type SwitchStatement struct {
	NodeBase
	Discriminant Expr
	Cases        []*SwitchCase
}

type ThrowStatement struct {
	NodeBase
	Argument Expr
}

// CatchClause is a plain Node; a nil Param marks an optional catch
// binding (stage-3; accepted with or without the `next` option).
type CatchClause struct {
	NodeBase
	Param Pattern
	Body  *BlockStatement
}

type TryStatement struct {
	NodeBase
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

type WhileStatement struct {
	NodeBase
	Test Expr
	Body Stmt
}

type DoWhileStatement struct {
	NodeBase
	Body Stmt
	Test Expr
}

// ForStatement.Init is a *VariableDeclaration or an Expr, or nil when the
// header omits it. Await is the documented ESTree addition for the
// stage-3 `for await` proposal, carried on ForStatement and ForOfStatement
// (ForInStatement has none); it is only ever true on a ForOfStatement,
// never on the C-style form.
type ForStatement struct {
	NodeBase
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
	Await  bool
}

// ForInStatement/ForOfStatement's Left is a *VariableDeclaration or a
// Pattern reinterpreted from the header's leading expression.
type ForInStatement struct {
	NodeBase
	Left  Node
	Right Expr
	Body  Stmt
}

type ForOfStatement struct {
	NodeBase
	Left  Node
	Right Expr
	Body  Stmt
	Await bool
}

func (*ExpressionStatement) stmtNode() {}
func (*BlockStatement) stmtNode()      {}
func (*EmptyStatement) stmtNode()      {}
func (*DebuggerStatement) stmtNode()   {}
func (*WithStatement) stmtNode()       {}
func (*ReturnStatement) stmtNode()     {}
func (*LabeledStatement) stmtNode()    {}
func (*BreakStatement) stmtNode()      {}
func (*ContinueStatement) stmtNode()   {}
func (*IfStatement) stmtNode()         {}
func (*SwitchStatement) stmtNode()     {}
func (*ThrowStatement) stmtNode()      {}
func (*TryStatement) stmtNode()        {}
func (*WhileStatement) stmtNode()      {}
func (*DoWhileStatement) stmtNode()    {}
func (*ForStatement) stmtNode()        {}
func (*ForInStatement) stmtNode()      {}
func (*ForOfStatement) stmtNode()      {}
