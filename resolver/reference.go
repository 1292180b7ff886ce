package resolver

import (
	"slices"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/internal/graph"
)

type ReferenceKind int

const (
	ReferenceKindDeclaration ReferenceKind = iota
	ReferenceKindRead
	ReferenceKindWrite
	// ReferenceKindReadWrite is both read and written, as the target of a
	// compound assignment or an update expression.
	ReferenceKindReadWrite
)

func (k ReferenceKind) String() string {
	switch k {
	case ReferenceKindDeclaration:
		return "declaration"
	case ReferenceKindRead:
		return "read"
	case ReferenceKindWrite:
		return "write"
	case ReferenceKindReadWrite:
		return "read-write"
	}
	return "unknown"
}

// IsRead reports whether the reference reads the value (RHS).
func (k ReferenceKind) IsRead() bool {
	return k == ReferenceKindRead || k == ReferenceKindReadWrite
}

// IsWrite reports whether the reference assigns the value (LHS).
func (k ReferenceKind) IsWrite() bool {
	return k == ReferenceKindWrite || k == ReferenceKindReadWrite
}

type Status int

const (
	StatusResolved Status = iota
	StatusUnresolved
	StatusImplicitGlobal
	// StatusSkipped references were not resolved because their scope chain
	// crosses a scope with a redeclaration conflict.
	StatusSkipped
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusUnresolved:
		return "unresolved"
	case StatusImplicitGlobal:
		return "implicit-global"
	case StatusSkipped:
		return "skipped"
	}
	return "unknown"
}

// Reference is one occurrence of an identifier.
type Reference struct {
	Identifier *ast.Identifier
	Kind       ReferenceKind
	Status     Status

	// Binding is nil unless Status is resolved or implicit-global.
	Binding *Binding

	// Scope is the innermost scope containing the occurrence.
	Scope *Scope

	// Guarded is set on the operand of typeof, which may name an undeclared
	// variable without error.
	Guarded bool

	// InTDZ is set when a let, const or class binding is accessed before its
	// declaration within the same function.
	InTDZ bool

	strict bool
	owner  *ast.Identifier
}

// Id returns the identifier qualified by the scope of its binding, or by
// UnresolvedMark when it has none.
func (r *Reference) Id() ast.Id {
	if r.Binding == nil {
		return r.Identifier.ToId(UnresolvedMark)
	}
	return r.Identifier.ToId(r.Binding.Scope.Mark)
}

// ReferenceTable is the result of resolving every identifier occurrence of a
// tree.
type ReferenceTable struct {
	Tree *Tree

	refs   []*Reference
	byNode map[*ast.Identifier]*Reference
}

// References returns every reference in source order.
func (t *ReferenceTable) References() []*Reference {
	return t.refs
}

// ByIdentifier returns the reference recorded for id.
func (t *ReferenceTable) ByIdentifier(id *ast.Identifier) *Reference {
	return t.byNode[id]
}

// Unresolved returns the references that did not resolve to any binding.
func (t *ReferenceTable) Unresolved() []*Reference {
	var out []*Reference
	for _, ref := range t.refs {
		if ref.Status == StatusUnresolved {
			out = append(out, ref)
		}
	}
	return out
}

// FreeVariables returns the bindings referenced inside scope that are
// declared outside of it, in order of first reference. Ambient globals are
// not included.
func (t *ReferenceTable) FreeVariables(scope *Scope) []*Binding {
	var (
		out  []*Binding
		seen = make(map[*Binding]struct{})
	)
	for _, ref := range t.refs {
		b := ref.Binding
		if b == nil || b.Kind == DeclKindAmbient || ref.Kind == ReferenceKindDeclaration {
			continue
		}
		if !scope.Encloses(ref.Scope) || scope.Encloses(b.Scope) {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}

// Unused returns the declared bindings that are never read or written, in
// scope pre-order and declaration order.
func (t *ReferenceTable) Unused() []*Binding {
	var out []*Binding
	for _, scope := range t.Tree.Scopes() {
		for _, b := range scope.Bindings() {
			if b.Kind == DeclKindImplicitGlobal || b.Used() {
				continue
			}
			out = append(out, b)
		}
	}
	return out
}

// DeadCycles returns the groups of bindings that only reference each other,
// such as two functions calling one another that nothing else calls. A
// reference made outside the body of a named function or class keeps its
// binding alive. Bindings are listed in declaration order.
func (t *ReferenceTable) DeadCycles() [][]*Binding {
	deps := graph.NewDirected[*Binding, int]()
	roots := make(map[*Binding]struct{})
	for _, ref := range t.refs {
		b := ref.Binding
		if b == nil || ref.Kind == ReferenceKindDeclaration ||
			b.Kind == DeclKindAmbient || b.Kind == DeclKindImplicitGlobal {
			continue
		}
		owner := t.Tree.declared[ref.owner]
		if owner == nil {
			roots[b] = struct{}{}
			deps.AddNode(b)
			continue
		}
		if owner == b {
			continue
		}
		uses, _ := deps.EdgeWeight(owner, b)
		deps.AddEdge(owner, b, uses+1)
	}

	cycles := graph.Isolated(deps, roots)
	for _, cycle := range cycles {
		slices.SortStableFunc(cycle, func(a, b *Binding) int {
			return int(a.Position()) - int(b.Position())
		})
	}
	return cycles
}
