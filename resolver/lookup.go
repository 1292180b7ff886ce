package resolver

import (
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"golang.org/x/exp/maps"

	"github.com/t14raptor/go-scope/ast"
)

// ResolveReferences binds every identifier occurrence recorded in tree, in
// source order. The error aggregates the unresolved references. Calling it
// again on the same tree returns the first result.
func ResolveReferences(tree *Tree) (*ReferenceTable, error) {
	if tree.table != nil {
		return tree.table, tree.resolveErr
	}

	table := &ReferenceTable{
		Tree:   tree,
		refs:   make([]*Reference, 0, len(tree.occurrences)),
		byNode: make(map[*ast.Identifier]*Reference, len(tree.occurrences)),
	}
	var errs *multierror.Error
	for _, occ := range tree.occurrences {
		ref := &Reference{
			Identifier: occ.ident,
			Kind:       occ.kind,
			Scope:      occ.scope,
			Guarded:    occ.guarded,
			strict:     occ.strict,
			owner:      occ.owner,
		}
		if occ.kind == ReferenceKindDeclaration {
			if binding := tree.declared[occ.ident]; binding != nil {
				ref.bind(binding, StatusResolved)
			} else {
				ref.Status = StatusSkipped
			}
		} else if err := tree.lookup(ref); err != nil {
			errs = multierror.Append(errs, err)
		}
		table.refs = append(table.refs, ref)
		table.byNode[occ.ident] = ref
	}

	tree.table = table
	tree.resolveErr = errs.ErrorOrNil()
	return table, tree.resolveErr
}

func (r *Reference) bind(b *Binding, status Status) {
	r.Binding = b
	r.Status = status
	b.References = append(b.References, r)
}

// lookup walks outward from the scope of ref and binds it to the first
// binding of its name.
func (t *Tree) lookup(ref *Reference) error {
	name := ref.Identifier.Name
	for scope := ref.Scope; scope != nil; scope = scope.Parent {
		if scope.conflicted {
			ref.Status = StatusSkipped
			return nil
		}
		if b, ok := scope.declaredSymbols[name]; ok {
			ref.bind(b, StatusResolved)
			ref.InTDZ = b.Kind.IsLexical() &&
				ref.Identifier.Idx < b.initializedAt() &&
				ref.Scope.FunctionScope() == b.Scope.FunctionScope()
			return nil
		}
	}
	if b, ok := t.ambient[name]; ok {
		ref.bind(b, StatusResolved)
		return nil
	}

	switch {
	case ref.Guarded:
		ref.Status = StatusUnresolved
		return nil
	case ref.Kind == ReferenceKindWrite && !ref.strict:
		b := newBinding(t.Root, name, DeclKindImplicitGlobal, ref.Identifier)
		b.Identifiers = []*ast.Identifier{ref.Identifier}
		t.Root.add(b)
		ref.bind(b, StatusImplicitGlobal)
		t.opts.log.Debugf("implicit global %s created at offset %d", name, ref.Identifier.Idx.Offset())
		return nil
	}

	ref.Status = StatusUnresolved
	err := &UnresolvedReferenceError{
		Name:  name,
		Scope: ref.Scope,
		Idx:   ref.Identifier.Idx,
		Kind:  ref.Kind,
	}
	if t.opts.suggestions {
		err.Suggestion = t.suggest(ref.Scope, name)
	}
	return err
}

var editOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: func(a, b rune) bool { return a == b },
}

// suggest returns the visible name closest to name by edit distance, or ""
// when none is close enough.
func (t *Tree) suggest(scope *Scope, name string) string {
	seen := make(map[string]struct{})
	for s := scope; s != nil; s = s.Parent {
		for _, candidate := range maps.Keys(s.declaredSymbols) {
			seen[candidate] = struct{}{}
		}
	}
	for _, candidate := range maps.Keys(t.ambient) {
		seen[candidate] = struct{}{}
	}

	candidates := maps.Keys(seen)
	slices.Sort(candidates)

	limit := len(name) / 3
	if limit < 1 {
		limit = 1
	}
	best, bestDist := "", limit+1
	for _, candidate := range candidates {
		dist := levenshtein.DistanceForStrings([]rune(name), []rune(candidate), editOptions)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best
}
