package ast

type PropertyKind string

const (
	PropertyKindValue  PropertyKind = "value"
	PropertyKindGet    PropertyKind = "get"
	PropertyKindSet    PropertyKind = "set"
	PropertyKindMethod PropertyKind = "method"
)

type (
	Properties []Property

	Property struct {
		Prop
	}

	Prop interface {
		Expr
		_property()
	}

	// PropertyShort is `{a}` or, inside a pattern, `{a = 1}`.
	PropertyShort struct {
		Name        *Identifier
		Initializer *Expression `optional:"true"`
	}

	PropertyKeyed struct {
		Key      *Expression
		Kind     PropertyKind
		Value    *Expression
		Computed bool
	}
)

func (*PropertyShort) _property() {}
func (*PropertyKeyed) _property() {}
func (*SpreadElement) _property() {}

func (*PropertyShort) _expr() {}
func (*PropertyKeyed) _expr() {}
