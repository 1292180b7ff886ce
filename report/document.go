// Package report renders resolution results for people and tools.
package report

import (
	"errors"

	"github.com/t14raptor/go-scope/parser"
	"github.com/t14raptor/go-scope/resolver"
)

// Document is the serialisable view of one resolved file.
type Document struct {
	File        string       `json:"file" yaml:"file" cbor:"file"`
	Scopes      []Scope      `json:"scopes" yaml:"scopes" cbor:"scopes"`
	References  []Reference  `json:"references" yaml:"references" cbor:"references"`
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics" cbor:"diagnostics"`
	Unused      []BindingRef `json:"unused" yaml:"unused" cbor:"unused"`
	Summary     Summary      `json:"summary" yaml:"summary" cbor:"summary"`

	// DeadCycles groups bindings that are only referenced by each other.
	DeadCycles [][]BindingRef `json:"deadCycles" yaml:"deadCycles" cbor:"deadCycles"`
}

type Scope struct {
	Mark   int    `json:"mark" yaml:"mark" cbor:"mark"`
	Kind   string `json:"kind" yaml:"kind" cbor:"kind"`
	Parent int    `json:"parent,omitempty" yaml:"parent,omitempty" cbor:"parent,omitempty"`
	Strict bool   `json:"strict" yaml:"strict" cbor:"strict"`
	// Loop names the loop kind when the scope holds a loop head.
	Loop     string    `json:"loop,omitempty" yaml:"loop,omitempty" cbor:"loop,omitempty"`
	Start    Position  `json:"start" yaml:"start" cbor:"start"`
	Free     []string  `json:"free,omitempty" yaml:"free,omitempty" cbor:"free,omitempty"`
	Bindings []Binding `json:"bindings" yaml:"bindings" cbor:"bindings"`
}

type Binding struct {
	Name         string   `json:"name" yaml:"name" cbor:"name"`
	Kind         string   `json:"kind" yaml:"kind" cbor:"kind"`
	Hoisting     string   `json:"hoisting" yaml:"hoisting" cbor:"hoisting"`
	Position     Position `json:"position" yaml:"position" cbor:"position"`
	References   int      `json:"references" yaml:"references" cbor:"references"`
	PerIteration bool     `json:"perIteration,omitempty" yaml:"perIteration,omitempty" cbor:"perIteration,omitempty"`
}

type BindingRef struct {
	Name     string   `json:"name" yaml:"name" cbor:"name"`
	Kind     string   `json:"kind" yaml:"kind" cbor:"kind"`
	Scope    int      `json:"scope" yaml:"scope" cbor:"scope"`
	Position Position `json:"position" yaml:"position" cbor:"position"`
}

type Reference struct {
	Name     string   `json:"name" yaml:"name" cbor:"name"`
	Kind     string   `json:"kind" yaml:"kind" cbor:"kind"`
	Status   string   `json:"status" yaml:"status" cbor:"status"`
	Position Position `json:"position" yaml:"position" cbor:"position"`
	Scope    int      `json:"scope" yaml:"scope" cbor:"scope"`
	// Binding is the mark of the scope declaring the bound binding.
	Binding int  `json:"binding,omitempty" yaml:"binding,omitempty" cbor:"binding,omitempty"`
	Guarded bool `json:"guarded,omitempty" yaml:"guarded,omitempty" cbor:"guarded,omitempty"`
	InTDZ   bool `json:"inTDZ,omitempty" yaml:"inTDZ,omitempty" cbor:"inTDZ,omitempty"`
}

type DiagnosticKind string

const (
	DiagnosticSyntax     DiagnosticKind = "syntax-error"
	DiagnosticUnresolved DiagnosticKind = "unresolved-reference"
	DiagnosticRedeclared DiagnosticKind = "redeclaration-conflict"
	DiagnosticOther      DiagnosticKind = "error"
)

type Diagnostic struct {
	Kind       DiagnosticKind `json:"kind" yaml:"kind" cbor:"kind"`
	Name       string         `json:"name,omitempty" yaml:"name,omitempty" cbor:"name,omitempty"`
	Message    string         `json:"message" yaml:"message" cbor:"message"`
	Position   Position       `json:"position" yaml:"position" cbor:"position"`
	Suggestion string         `json:"suggestion,omitempty" yaml:"suggestion,omitempty" cbor:"suggestion,omitempty"`
}

type Summary struct {
	Scopes          int `json:"scopes" yaml:"scopes" cbor:"scopes"`
	Bindings        int `json:"bindings" yaml:"bindings" cbor:"bindings"`
	References      int `json:"references" yaml:"references" cbor:"references"`
	Unresolved      int `json:"unresolved" yaml:"unresolved" cbor:"unresolved"`
	ImplicitGlobals int `json:"implicitGlobals" yaml:"implicitGlobals" cbor:"implicitGlobals"`
	Errors          int `json:"errors" yaml:"errors" cbor:"errors"`
}

// New builds the document for file. res may be nil when the file could not
// be resolved at all; parseErr is the error returned by parser.ParseFile.
func New(file, src string, res *resolver.Result, parseErr error) *Document {
	lines := newLineIndex(src)
	doc := &Document{
		File:        file,
		Scopes:      []Scope{},
		References:  []Reference{},
		Diagnostics: []Diagnostic{},
		Unused:      []BindingRef{},
		DeadCycles:  [][]BindingRef{},
	}

	for _, err := range flatten(parseErr) {
		doc.Diagnostics = append(doc.Diagnostics, diagnostic(lines, err))
	}
	if res == nil {
		doc.Summary.Errors = len(doc.Diagnostics)
		return doc
	}

	for _, s := range res.Tree.Scopes() {
		entry := Scope{
			Mark:     int(s.Mark),
			Kind:     s.Kind.String(),
			Strict:   s.Strict,
			Bindings: []Binding{},
		}
		if s.Parent != nil {
			entry.Parent = int(s.Parent.Mark)
		}
		if s.Loop != nil {
			entry.Loop = s.Loop.Kind.String()
		}
		if s.Node != nil {
			entry.Start = lines.position(s.Node.Idx0())
		}
		if s.Kind == resolver.ScopeKindFunction {
			for _, b := range res.Table.FreeVariables(s) {
				entry.Free = append(entry.Free, b.Name)
			}
		}
		for _, b := range s.Bindings() {
			entry.Bindings = append(entry.Bindings, Binding{
				Name:         b.Name,
				Kind:         b.Kind.String(),
				Hoisting:     b.Hoisting.String(),
				Position:     lines.position(b.Position()),
				References:   len(b.References),
				PerIteration: b.PerIteration(),
			})
			doc.Summary.Bindings++
			if b.Kind == resolver.DeclKindImplicitGlobal {
				doc.Summary.ImplicitGlobals++
			}
		}
		doc.Scopes = append(doc.Scopes, entry)
	}

	for _, ref := range res.Table.References() {
		entry := Reference{
			Name:     ref.Identifier.Name,
			Kind:     ref.Kind.String(),
			Status:   ref.Status.String(),
			Position: lines.position(ref.Identifier.Idx),
			Scope:    int(ref.Scope.Mark),
			Guarded:  ref.Guarded,
			InTDZ:    ref.InTDZ,
		}
		if ref.Binding != nil {
			entry.Binding = int(ref.Binding.Scope.Mark)
		}
		if ref.Status == resolver.StatusUnresolved {
			doc.Summary.Unresolved++
		}
		doc.References = append(doc.References, entry)
	}

	for _, b := range res.Table.Unused() {
		doc.Unused = append(doc.Unused, bindingRef(lines, b))
	}
	for _, cycle := range res.Table.DeadCycles() {
		refs := make([]BindingRef, 0, len(cycle))
		for _, b := range cycle {
			refs = append(refs, bindingRef(lines, b))
		}
		doc.DeadCycles = append(doc.DeadCycles, refs)
	}

	for _, err := range res.Errors {
		doc.Diagnostics = append(doc.Diagnostics, diagnostic(lines, err))
	}

	doc.Summary.Scopes = len(doc.Scopes)
	doc.Summary.References = len(doc.References)
	doc.Summary.Errors = len(doc.Diagnostics)
	return doc
}

func bindingRef(lines lineIndex, b *resolver.Binding) BindingRef {
	return BindingRef{
		Name:     b.Name,
		Kind:     b.Kind.String(),
		Scope:    int(b.Scope.Mark),
		Position: lines.position(b.Position()),
	}
}

// flatten splits a joined error into its parts.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []error{err}
}

func diagnostic(lines lineIndex, err error) Diagnostic {
	var (
		unresolved *resolver.UnresolvedReferenceError
		conflict   *resolver.RedeclarationConflictError
		syntax     *parser.Error
	)
	switch {
	case errors.As(err, &unresolved):
		return Diagnostic{
			Kind:       DiagnosticUnresolved,
			Name:       unresolved.Name,
			Message:    err.Error(),
			Position:   lines.position(unresolved.Idx),
			Suggestion: unresolved.Suggestion,
		}
	case errors.As(err, &conflict):
		return Diagnostic{
			Kind:     DiagnosticRedeclared,
			Name:     conflict.Name,
			Message:  err.Error(),
			Position: lines.position(conflict.Idx),
		}
	case errors.As(err, &syntax):
		return Diagnostic{
			Kind:     DiagnosticSyntax,
			Message:  syntax.Message,
			Position: lines.position(syntax.Start),
		}
	}
	return Diagnostic{Kind: DiagnosticOther, Message: err.Error()}
}

// HasErrors reports whether the document carries any diagnostic.
func (d *Document) HasErrors() bool {
	return len(d.Diagnostics) > 0
}
