package resolver

import "github.com/t14raptor/go-scope/ast"

type DeclKind int

const (
	DeclKindVar DeclKind = iota
	DeclKindLet
	DeclKindConst
	DeclKindFunction
	DeclKindCatchParam
	DeclKindParameter
	DeclKindClass
	DeclKindImplicitGlobal
	DeclKindAmbient
)

var declKindNames = [...]string{
	DeclKindVar:            "var",
	DeclKindLet:            "let",
	DeclKindConst:          "const",
	DeclKindFunction:       "function",
	DeclKindCatchParam:     "catch-param",
	DeclKindParameter:      "parameter",
	DeclKindClass:          "class",
	DeclKindImplicitGlobal: "implicit-global",
	DeclKindAmbient:        "ambient",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "unknown"
}

// IsLexical reports whether declarations of this kind are block scoped.
func (k DeclKind) IsLexical() bool {
	return k == DeclKindLet || k == DeclKindConst || k == DeclKindClass
}

type Hoisting int

const (
	// HoistingHoisted bindings are moved to the top of the enclosing
	// function or global scope.
	HoistingHoisted Hoisting = iota
	// HoistingBlock bindings are local to their block.
	HoistingBlock
	// HoistingNone bindings are not hoisted at all.
	HoistingNone
)

func (h Hoisting) String() string {
	switch h {
	case HoistingHoisted:
		return "hoisted"
	case HoistingBlock:
		return "block"
	case HoistingNone:
		return "none"
	}
	return "unknown"
}

func (k DeclKind) hoisting() Hoisting {
	switch k {
	case DeclKindVar, DeclKindFunction:
		return HoistingHoisted
	case DeclKindLet, DeclKindConst, DeclKindClass:
		return HoistingBlock
	}
	return HoistingNone
}

type iterationMode int

const (
	iterationNone iterationMode = iota
	// iterationChained bindings copy the previous iteration's final value,
	// as let does in a for(;;) head.
	iterationChained
	// iterationFresh bindings start uninitialised on every iteration, as
	// let and const do in for-in and for-of heads.
	iterationFresh
)

// Binding is a declared name in a scope.
type Binding struct {
	Name     string
	Kind     DeclKind
	Scope    *Scope
	Hoisting Hoisting

	// Decl is the node that defines the binding. A later function
	// declaration of the same name replaces it.
	Decl ast.Node

	// Identifiers lists every identifier declaring the binding, in the order
	// they were registered.
	Identifiers []*ast.Identifier

	References []*Reference

	// Iter is the iteration index of a per-iteration binding and -1 for
	// every other binding.
	Iter int
	// Previous is the binding whose final value initialises this
	// iteration's binding. Nil unless the binding is chained.
	Previous *Binding

	mode       iterationMode
	head       *Binding
	iterations []*Binding

	// exprName marks the own name of a function or class expression, which
	// any other declaration of the name in the same scope replaces.
	exprName bool
}

func newBinding(scope *Scope, name string, kind DeclKind, decl ast.Node) *Binding {
	return &Binding{
		Name:     name,
		Kind:     kind,
		Scope:    scope,
		Hoisting: kind.hoisting(),
		Decl:     decl,
		Iter:     -1,
	}
}

// Id returns the scope-qualified name of the binding.
func (b *Binding) Id() ast.Id {
	return ast.Id{Name: b.Name, ScopeContext: b.Scope.Mark}
}

// PerIteration reports whether every loop iteration gets its own copy of the
// binding.
func (b *Binding) PerIteration() bool {
	return b.mode != iterationNone
}

// Head returns the binding declared in the loop head for a per-iteration
// binding, and b itself otherwise.
func (b *Binding) Head() *Binding {
	if b.head != nil {
		return b.head
	}
	return b
}

// Iteration returns the distinct binding for loop iteration i, creating it
// and its predecessors on first use. Bindings that are not per-iteration
// return themselves.
func (b *Binding) Iteration(i int) *Binding {
	head := b.Head()
	if head.mode == iterationNone || i < 0 {
		return head
	}
	for k := len(head.iterations); k <= i; k++ {
		it := &Binding{
			Name:        head.Name,
			Kind:        head.Kind,
			Scope:       head.Scope,
			Hoisting:    head.Hoisting,
			Decl:        head.Decl,
			Identifiers: head.Identifiers,
			Iter:        k,
			mode:        head.mode,
			head:        head,
		}
		if head.mode == iterationChained {
			if k == 0 {
				it.Previous = head
			} else {
				it.Previous = head.iterations[k-1]
			}
		}
		head.iterations = append(head.iterations, it)
	}
	return head.iterations[i]
}

// Position returns the position of the first declaring identifier.
func (b *Binding) Position() ast.Idx {
	if len(b.Identifiers) == 0 {
		return 0
	}
	return b.Identifiers[0].Idx
}

// initializedAt returns the position from which a lexical binding is
// initialised: the end of its declarator, of the class heritage, or of the
// iterated expression for a for-in or for-of head. Reads before it are in
// the temporal dead zone.
func (b *Binding) initializedAt() ast.Idx {
	pos := b.Position()
	switch decl := b.Decl.(type) {
	case *ast.VariableDeclaration:
		if b.Scope.Loop != nil {
			switch loop := b.Scope.Node.(type) {
			case *ast.ForInStatement:
				return loop.Source.Idx1()
			case *ast.ForOfStatement:
				return loop.Source.Idx1()
			}
		}
		for i := range decl.List {
			if d := &decl.List[i]; d.Idx0() <= pos && pos < d.Idx1() {
				return d.Idx1()
			}
		}
	case *ast.ClassDeclaration:
		if decl.Class.SuperClass != nil {
			return decl.Class.SuperClass.Idx1()
		}
	}
	if len(b.Identifiers) > 0 {
		return b.Identifiers[0].Idx1()
	}
	return pos
}

// Used reports whether anything other than a declaration refers to b.
func (b *Binding) Used() bool {
	for _, ref := range b.References {
		if ref.Kind != ReferenceKindDeclaration {
			return true
		}
	}
	return false
}

// redeclare makes the function declaration decl the defining declaration of
// b.
func (b *Binding) redeclare(kind DeclKind, decl ast.Node) {
	b.Kind = kind
	b.Hoisting = kind.hoisting()
	b.Decl = decl
	b.exprName = false
}
