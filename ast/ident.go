package ast

type (
	// ScopeContext marks the scope an identifier was bound in. Zero means the
	// identifier has not been resolved to any scope.
	ScopeContext int

	// Id is an identifier name qualified by the scope that declares it. Two
	// identifiers with the same name refer to the same binding iff their Ids
	// are equal.
	Id struct {
		Name         string
		ScopeContext ScopeContext
	}

	Identifier struct {
		Idx  Idx
		Name string
	}

	PrivateIdentifier struct {
		Identifier *Identifier
	}
)

// ToId qualifies the identifier with ctx.
func (n *Identifier) ToId(ctx ScopeContext) Id {
	return Id{Name: n.Name, ScopeContext: ctx}
}

func (*Identifier) _expr()        {}
func (*PrivateIdentifier) _expr() {}
