package ast

import "github.com/t14raptor/go-scope/token"

type (
	Expressions []Expression

	// Expression is a struct to allow defining methods on it.
	Expression struct {
		Expr `optional:"true"`
	}

	// All expression nodes implement the Expr interface.
	Expr interface {
		VisitableNode
		_expr()
	}

	// BindingTarget is the target of a declaration, a parameter or a catch
	// clause.
	BindingTarget struct {
		Target
	}

	Target interface {
		Expr
		_bindingTarget()
	}

	Pattern interface {
		Target
		_pattern()
	}

	YieldExpression struct {
		Yield    Idx
		Argument *Expression `optional:"true"`
		Delegate bool
	}

	AwaitExpression struct {
		Await    Idx
		Argument *Expression
	}

	ArrayLiteral struct {
		LeftBracket  Idx
		RightBracket Idx
		Value        Expressions
	}

	// ArrayPattern elements are targets, or AssignExpressions whose Left is
	// the target and Right the default value. Holes have a nil Expr.
	ArrayPattern struct {
		LeftBracket  Idx
		RightBracket Idx
		Elements     Expressions
		Rest         *Expression `optional:"true"`
	}

	AssignExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	InvalidExpression struct {
		From Idx
		To   Idx
	}

	BinaryExpression struct {
		Operator token.Token
		Left     *Expression
		Right    *Expression
	}

	// MemberExpression is `a.b` or, when Computed, `a[b]`. A non-computed
	// Property is an *Identifier or *PrivateIdentifier naming the property,
	// not a variable reference.
	MemberExpression struct {
		Object   *Expression
		Property *Expression
		Computed bool
		End      Idx
	}

	CallExpression struct {
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ConditionalExpression struct {
		Test       *Expression
		Consequent *Expression
		Alternate  *Expression
	}

	NewExpression struct {
		New              Idx
		Callee           *Expression
		LeftParenthesis  Idx
		ArgumentList     Expressions
		RightParenthesis Idx
	}

	ObjectLiteral struct {
		LeftBrace  Idx
		RightBrace Idx
		Value      Properties
	}

	ObjectPattern struct {
		LeftBrace  Idx
		RightBrace Idx
		Properties Properties
		Rest       *Expression `optional:"true"`
	}

	SpreadElement struct {
		Expression Expression
	}

	SequenceExpression struct {
		Sequence Expressions
	}

	ThisExpression struct {
		Idx Idx
	}

	SuperExpression struct {
		Idx Idx
	}

	UnaryExpression struct {
		Operator token.Token
		Idx      Idx
		Operand  *Expression
	}

	UpdateExpression struct {
		Operator token.Token
		Idx      Idx // If a prefix operation
		Operand  *Expression
		Postfix  bool
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		Meta, Property *Identifier
		Idx            Idx
	}
)

func (*ArrayPattern) _pattern()  {}
func (*ObjectPattern) _pattern() {}

func (*ArrayPattern) _bindingTarget()      {}
func (*MemberExpression) _bindingTarget()  {}
func (*ObjectPattern) _bindingTarget()     {}
func (*Identifier) _bindingTarget()        {}
func (*InvalidExpression) _bindingTarget() {}

func (*ArrayLiteral) _expr()          {}
func (*AssignExpression) _expr()      {}
func (*YieldExpression) _expr()       {}
func (*AwaitExpression) _expr()       {}
func (*InvalidExpression) _expr()     {}
func (*BinaryExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*NewExpression) _expr()         {}
func (*ObjectLiteral) _expr()         {}
func (*SequenceExpression) _expr()    {}
func (*ThisExpression) _expr()        {}
func (*SuperExpression) _expr()       {}
func (*UnaryExpression) _expr()       {}
func (*UpdateExpression) _expr()      {}
func (*MetaProperty) _expr()          {}
func (*ObjectPattern) _expr()         {}
func (*ArrayPattern) _expr()          {}
func (*SpreadElement) _expr()         {}

// Unwrap returns the concrete expression, or nil.
func (n *Expression) Unwrap() Expr {
	if n == nil {
		return nil
	}
	return n.Expr
}
