package ast

// JSXIdentifier is a tag or attribute name; unlike Identifier it may
// contain hyphens (`data-foo`).
type JSXIdentifier struct {
	NodeBase
	Name string
}

// JSXMemberExpression is a dotted tag name (`a.b.c`); Object is either
// another *JSXMemberExpression or a *JSXIdentifier.
type JSXMemberExpression struct {
	NodeBase
	Object   Node
	Property *JSXIdentifier
}

// JSXNamespacedName is a `ns:name` tag or attribute name.
type JSXNamespacedName struct {
	NodeBase
	Namespace *JSXIdentifier
	Name      *JSXIdentifier
}

// JSXEmptyExpression fills a JSXExpressionContainer that holds only a
// comment (`{/* ... */}`).
type JSXEmptyExpression struct{ NodeBase }

// JSXExpressionContainer.Expression is an Expr, or a *JSXEmptyExpression.
type JSXExpressionContainer struct {
	NodeBase
	Expression Node
}

// JSXSpreadChild is `{...expr}` used as a JSXElement child.
type JSXSpreadChild struct {
	NodeBase
	Expression Expr
}

// JSXText is raw, unescaped text between JSX tags.
type JSXText struct {
	NodeBase
	Value string
	Raw   string
}

// JSXAttribute.Name is a *JSXIdentifier or *JSXNamespacedName; Value is
// nil for a bare boolean attribute, else a *Literal string or a
// *JSXExpressionContainer.
type JSXAttribute struct {
	NodeBase
	Name  Node
	Value Node
}

// JSXSpreadAttribute is `{...expr}` used as an attribute.
type JSXSpreadAttribute struct {
	NodeBase
	Argument Expr
}

// JSXOpeningElement.Name is a *JSXIdentifier, *JSXMemberExpression, or
// *JSXNamespacedName; Attributes holds *JSXAttribute and
// *JSXSpreadAttribute elements.
type JSXOpeningElement struct {
	NodeBase
	Name        Node
	Attributes  []Node
	SelfClosing bool
}

// JSXClosingElement.Name mirrors the opening element's Name; textual
// equality between the two is checked by the parser, not by this type.
type JSXClosingElement struct {
	NodeBase
	Name Node
}

// JSXElement.Children holds *JSXElement, *JSXExpressionContainer,
// *JSXSpreadChild, and *JSXText elements. ClosingElement is nil for a
// self-closing tag.
type JSXElement struct {
	NodeBase
	OpeningElement *JSXOpeningElement
	Children       []Node
	ClosingElement *JSXClosingElement
}

func (*JSXIdentifier) exprNode()       {}
func (*JSXMemberExpression) exprNode() {}
func (*JSXElement) exprNode()          {}
