package ast

type (
	BooleanLiteral struct {
		Idx   Idx
		Value bool
	}

	NullLiteral struct {
		Idx Idx
	}

	NumberLiteral struct {
		Idx     Idx
		Literal string
	}

	RegExpLiteral struct {
		Idx     Idx
		Literal string
	}

	StringLiteral struct {
		Idx Idx
		// Value is the literal without its quotes. Escapes are left as written.
		Value string
		Raw   string
	}

	TemplateElements []TemplateElement

	TemplateElement struct {
		Idx     Idx
		Literal string
	}

	TemplateLiteral struct {
		OpenQuote   Idx
		CloseQuote  Idx
		Tag         *Expression `optional:"true"`
		Elements    TemplateElements
		Expressions Expressions
	}
)

func (*BooleanLiteral) _expr()  {}
func (*NullLiteral) _expr()     {}
func (*NumberLiteral) _expr()   {}
func (*RegExpLiteral) _expr()   {}
func (*StringLiteral) _expr()   {}
func (*TemplateLiteral) _expr() {}
