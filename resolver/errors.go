package resolver

import (
	"errors"
	"fmt"

	"github.com/t14raptor/go-scope/ast"
)

var (
	ErrUnresolvedReference   = errors.New("unresolved reference")
	ErrRedeclarationConflict = errors.New("redeclaration conflict")
)

// UnresolvedReferenceError reports an identifier that does not resolve to
// any binding.
type UnresolvedReferenceError struct {
	Name  string
	Scope *Scope
	Idx   ast.Idx
	Kind  ReferenceKind

	// Suggestion is the closest visible name, if any is close enough.
	Suggestion string
}

func (e *UnresolvedReferenceError) Error() string {
	msg := fmt.Sprintf("%s is not defined (offset %d)", e.Name, e.Idx.Offset())
	if e.Kind == ReferenceKindWrite {
		msg = fmt.Sprintf("assignment to undeclared variable %s in strict mode (offset %d)", e.Name, e.Idx.Offset())
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %s?", e.Suggestion)
	}
	return msg
}

func (e *UnresolvedReferenceError) Is(target error) bool {
	return target == ErrUnresolvedReference
}

// RedeclarationConflictError reports a declaration that collides with an
// existing binding.
type RedeclarationConflictError struct {
	Name  string
	Scope *Scope
	Idx   ast.Idx
	Kind  DeclKind

	Previous *Binding
}

func (e *RedeclarationConflictError) Error() string {
	if e.Previous == nil {
		return fmt.Sprintf("identifier %s has already been declared (offset %d)", e.Name, e.Idx.Offset())
	}
	return fmt.Sprintf("%s %s conflicts with %s declaration at offset %d (offset %d)",
		e.Kind, e.Name, e.Previous.Kind, e.Previous.Position().Offset(), e.Idx.Offset())
}

func (e *RedeclarationConflictError) Is(target error) bool {
	return target == ErrRedeclarationConflict
}
