package parser

import (
	"errors"
	"fmt"
	"unicode/utf8"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/t14raptor/go-scope/ast"
)

const (
	errUnexpectedToken = "Unexpected token %q"
	errMissingToken    = "Missing %s"
	errUnsupported     = "Unsupported syntax: %s"
)

// Error is a syntax error located in the source.
type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Start.Offset())
}

// errorf records an error spanning n.
func (p *parser) errorf(n *sitter.Node, msg string, msgValues ...any) error {
	err := &Error{
		Message: fmt.Sprintf(msg, msgValues...),
		Start:   p.idx0(n),
		End:     p.idx1(n),
	}
	p.errors = errors.Join(p.errors, err)
	return err
}

// collectSyntaxErrors reports every ERROR and MISSING node below n.
func (p *parser) collectSyntaxErrors(n *sitter.Node) {
	switch {
	case n.IsMissing():
		p.errorf(n, errMissingToken, n.Kind())
		return
	case n.IsError():
		p.errorf(n, errUnexpectedToken, truncate(p.text(n), 24))
		return
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		if child := n.Child(i); child != nil && child.HasError() {
			p.collectSyntaxErrors(child)
		}
	}
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
