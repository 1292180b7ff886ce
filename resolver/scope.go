package resolver

import "github.com/t14raptor/go-scope/ast"

type ScopeKind int

const (
	ScopeKindGlobal ScopeKind = iota
	ScopeKindFunction
	ScopeKindBlock
	ScopeKindCatch
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeKindGlobal:
		return "global"
	case ScopeKindFunction:
		return "function"
	case ScopeKindBlock:
		return "block"
	case ScopeKindCatch:
		return "catch"
	}
	return "unknown"
}

const (
	UnresolvedMark ast.ScopeContext = 0
	TopLevelMark   ast.ScopeContext = 1
)

type LoopKind int

const (
	LoopKindFor LoopKind = iota
	LoopKindForIn
	LoopKindForOf
)

func (k LoopKind) String() string {
	switch k {
	case LoopKindFor:
		return "for"
	case LoopKindForIn:
		return "for-in"
	case LoopKindForOf:
		return "for-of"
	}
	return "unknown"
}

// Loop describes the head of a loop whose declarations live in their own
// scope.
type Loop struct {
	Kind     LoopKind
	Bindings []*Binding
}

// Scope is a lexical environment. Bindings are kept in declaration order.
type Scope struct {
	Kind     ScopeKind
	Parent   *Scope
	Children []*Scope

	// Mark uniquely identifies the scope within its tree.
	Mark ast.ScopeContext

	Strict bool

	// Node is the syntax node that opened the scope.
	Node ast.Node

	// Loop is set on scopes holding the declarations of a loop head.
	Loop *Loop

	declaredSymbols map[string]*Binding
	order           []*Binding

	// conflicted is set once a redeclaration conflict was reported. No
	// further declarations are registered afterwards.
	conflicted bool
}

func newScope(kind ScopeKind, parent *Scope, mark ast.ScopeContext, node ast.Node) *Scope {
	s := &Scope{
		Kind:            kind,
		Parent:          parent,
		Mark:            mark,
		Node:            node,
		declaredSymbols: make(map[string]*Binding),
	}
	if parent != nil {
		s.Strict = parent.Strict
		parent.Children = append(parent.Children, s)
	}
	return s
}

// Own returns the binding for name declared directly in s.
func (s *Scope) Own(name string) *Binding {
	return s.declaredSymbols[name]
}

// Lookup walks outward from s and returns the first binding for name.
func (s *Scope) Lookup(name string) *Binding {
	for scope := s; scope != nil; scope = scope.Parent {
		if b, ok := scope.declaredSymbols[name]; ok {
			return b
		}
	}
	return nil
}

// Bindings returns the bindings of s in declaration order.
func (s *Scope) Bindings() []*Binding {
	return s.order
}

// FunctionScope returns the nearest function or global scope enclosing s,
// s included.
func (s *Scope) FunctionScope() *Scope {
	scope := s
	for scope.Parent != nil && scope.Kind != ScopeKindFunction {
		scope = scope.Parent
	}
	return scope
}

// Conflicted reports whether a redeclaration conflict was found in s.
func (s *Scope) Conflicted() bool {
	return s.conflicted
}

// Encloses reports whether inner is s or one of its descendants.
func (s *Scope) Encloses(inner *Scope) bool {
	for scope := inner; scope != nil; scope = scope.Parent {
		if scope == s {
			return true
		}
	}
	return false
}

func (s *Scope) isFunctionLike() bool {
	return s.Kind == ScopeKindFunction || s.Kind == ScopeKindGlobal
}

func (s *Scope) add(b *Binding) {
	s.declaredSymbols[b.Name] = b
	s.order = append(s.order, b)
}

// Tree is the scope tree of one program together with the declarations
// registered while building it.
type Tree struct {
	Program *ast.Program
	Root    *Scope

	scopes []*Scope
	byNode map[ast.Node]*Scope

	// declared maps each declaring identifier to its binding. Identifiers
	// whose declaration was rejected map to nil.
	declared map[*ast.Identifier]*Binding

	occurrences []occurrence
	ambient     map[string]*Binding
	opts        options

	table      *ReferenceTable
	err        error
	resolveErr error
}

// Scopes returns every scope in pre-order.
func (t *Tree) Scopes() []*Scope {
	return t.scopes
}

// ScopeOf returns the scope opened by node, or nil if node does not open one.
func (t *Tree) ScopeOf(node ast.Node) *Scope {
	return t.byNode[node]
}

// Scope returns the scope with the given mark.
func (t *Tree) Scope(mark ast.ScopeContext) *Scope {
	i := int(mark) - int(TopLevelMark)
	if i < 0 || i >= len(t.scopes) {
		return nil
	}
	return t.scopes[i]
}

func (s *Scope) remove(b *Binding) {
	delete(s.declaredSymbols, b.Name)
	for i, it := range s.order {
		if it == b {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
