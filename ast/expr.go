package ast

// ThisExpression is the `this` keyword in expression position.
type ThisExpression struct{ NodeBase }

// Super is the bare `super` keyword, legal only as the object of a member
// expression (SuperProperty) or the callee of a call expression
// (SuperCall).
type Super struct{ NodeBase }

// Identifier is both an Expr and a Pattern: a bare reference reads as an
// expression, a bare binding target reads as a pattern.
type Identifier struct {
	NodeBase
	Name string
}

// PrivateIdentifier is a `#name` token, legal as a class element key, as
// the right-hand operand of `#x in obj`, and as a private member name.
type PrivateIdentifier struct {
	NodeBase
	Name string
}

// RegExpValue holds the verbatim pattern/flags of a regular-expression
// literal; body well-formedness only, never semantically validated here.
type RegExpValue struct {
	Pattern string
	Flags   string
}

// Literal covers boolean, null, numeric, string, and regex literals.
// Value holds the cooked Go value (bool, nil, float64, string); Regex is
// non-nil only for a regex literal, whose Value stays nil since host
// RegExp construction is out of scope for this parser.
type Literal struct {
	NodeBase
	Value interface{}
	Raw   string
	Regex *RegExpValue
}

// BigIntLiteral is the documented ESTree addition for a numeric literal
// carrying a trailing `n` BigInt suffix. Value is Raw with the suffix
// stripped, radix prefix and separators kept as written (`0x10n` gives
// `0x10`); Raw preserves the literal exactly as written.
type BigIntLiteral struct {
	NodeBase
	Value string
	Raw   string
}

type ArrayExpression struct {
	NodeBase
	Elements []Expr // a nil element is an elision hole
}

// Property is one key/value entry of an ObjectExpression, or — when Value
// holds a Pattern instead of an Expr — an entry of an ObjectPattern
// (ESTree reuses the Property shape for both).
type Property struct {
	NodeBase
	Key       Expr
	Value     Node
	Kind      string // "init" | "get" | "set"
	Computed  bool
	Shorthand bool
	Method    bool
}

type ObjectExpression struct {
	NodeBase
	Properties []Node // *Property or *SpreadElement
}

type FunctionExpression struct {
	NodeBase
	Id        *Identifier
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

// ArrowFunctionExpression's Body is either a *BlockStatement or, when
// Expression is true, a bare Expr (the concise body form).
type ArrowFunctionExpression struct {
	NodeBase
	Params     []Pattern
	Body       Node
	Expression bool
	Generator  bool
	Async      bool
}

type ClassExpression struct {
	NodeBase
	Id         *Identifier
	SuperClass Expr
	Body       *ClassBody
}

type TemplateElement struct {
	NodeBase
	Tail   bool
	Cooked string
	Raw    string
}

type TemplateLiteral struct {
	NodeBase
	Quasis     []*TemplateElement
	Expressions []Expr
}

type TaggedTemplateExpression struct {
	NodeBase
	Tag   Expr
	Quasi *TemplateLiteral
}

// SpreadElement is the expression-position `...x`, used in array
// elements, call arguments, and object-literal spread.
type SpreadElement struct {
	NodeBase
	Argument Expr
}

type UnaryExpression struct {
	NodeBase
	Operator string
	Prefix   bool
	Argument Expr
}

type UpdateExpression struct {
	NodeBase
	Operator string
	Prefix   bool
	Argument Expr
}

type BinaryExpression struct {
	NodeBase
	Operator string
	Left     Expr
	Right    Expr
}

type LogicalExpression struct {
	NodeBase
	Operator string
	Left     Expr
	Right    Expr
}

// AssignmentExpression's Left is a Pattern after reinterpretation, or a
// member expression (legal but never reinterpreted as a binding target).
type AssignmentExpression struct {
	NodeBase
	Operator string
	Left     Node
	Right    Expr
}

type ConditionalExpression struct {
	NodeBase
	Test       Expr
	Consequent Expr
	Alternate  Expr
}

type CallExpression struct {
	NodeBase
	Callee    Expr
	Arguments []Expr
	Optional  bool
}

type NewExpression struct {
	NodeBase
	Callee    Expr
	Arguments []Expr
}

// MemberExpression's Property is an Identifier/PrivateIdentifier when
// Computed is false, or an arbitrary Expr when Computed is true.
type MemberExpression struct {
	NodeBase
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

// ChainExpression wraps the outermost expression of an optional chain so
// short-circuiting is visible to a consumer without walking every node.
type ChainExpression struct {
	NodeBase
	Expression Expr
}

type SequenceExpression struct {
	NodeBase
	Expressions []Expr
}

type YieldExpression struct {
	NodeBase
	Argument Expr
	Delegate bool
}

type AwaitExpression struct {
	NodeBase
	Argument Expr
}

// ImportExpression is the stage-3 dynamic `import(source)` call form.
type ImportExpression struct {
	NodeBase
	Source Expr
}

// MetaProperty covers `new.target` and `import.meta`.
type MetaProperty struct {
	NodeBase
	Meta     *Identifier
	Property *Identifier
}

// ThrowExpression is the opt-in "throw as expression" pack's node.
type ThrowExpression struct {
	NodeBase
	Argument Expr
}

// DoExpression is the opt-in V8 `do { ... }` expression pack's node.
type DoExpression struct {
	NodeBase
	Body *BlockStatement
}

func (*ThisExpression) exprNode()            {}
func (*Super) exprNode()                     {}
func (*Identifier) exprNode()                {}
func (*PrivateIdentifier) exprNode()         {}
func (*Literal) exprNode()                   {}
func (*BigIntLiteral) exprNode()             {}
func (*ArrayExpression) exprNode()           {}
func (*ObjectExpression) exprNode()          {}
func (*FunctionExpression) exprNode()        {}
func (*ArrowFunctionExpression) exprNode()   {}
func (*ClassExpression) exprNode()           {}
func (*TemplateLiteral) exprNode()           {}
func (*TaggedTemplateExpression) exprNode()  {}
func (*SpreadElement) exprNode()             {}
func (*UnaryExpression) exprNode()           {}
func (*UpdateExpression) exprNode()          {}
func (*BinaryExpression) exprNode()          {}
func (*LogicalExpression) exprNode()         {}
func (*AssignmentExpression) exprNode()      {}
func (*ConditionalExpression) exprNode()     {}
func (*CallExpression) exprNode()            {}
func (*NewExpression) exprNode()             {}
func (*MemberExpression) exprNode()          {}
func (*ChainExpression) exprNode()           {}
func (*SequenceExpression) exprNode()        {}
func (*YieldExpression) exprNode()           {}
func (*AwaitExpression) exprNode()           {}
func (*ImportExpression) exprNode()          {}
func (*MetaProperty) exprNode()              {}
func (*ThrowExpression) exprNode()           {}
func (*DoExpression) exprNode()              {}
