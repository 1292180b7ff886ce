// Package parser turns JavaScript source into an ast.Program using the
// tree-sitter JavaScript grammar.
package parser

import (
	"errors"

	sitter "github.com/tree-sitter/go-tree-sitter"
	javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/internal/logging"
)

var log = logging.GetLogger("parser")

var language = sitter.NewLanguage(javascript.Language())

// parser converts one tree-sitter syntax tree. It is not safe for concurrent
// use; ParseFile creates a fresh one per call.
type parser struct {
	src []byte

	errors error
}

func newParser(src string) *parser {
	return &parser{src: []byte(src)}
}

// ParseFile parses the source code of a single JavaScript/ECMAScript source file and returns
// the corresponding ast.Program node.
//
// Syntax errors do not stop conversion: the returned program contains
// BadStatement and InvalidExpression nodes where the source could not be
// understood, and the error lists every problem found.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src).parse()
}

func (p *parser) parse() (*ast.Program, error) {
	ts := sitter.NewParser()
	defer ts.Close()
	if err := ts.SetLanguage(language); err != nil {
		return nil, err
	}

	tree := ts.Parse(p.src, nil)
	if tree == nil {
		return nil, errors.New("parser: no syntax tree produced")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.Kind() != "program" {
		return nil, errors.New("parser: unexpected root node")
	}
	if root.HasError() {
		p.collectSyntaxErrors(root)
	}

	program := &ast.Program{
		Body: p.parseStatementList(root),
		End:  p.idx1(root),
	}
	log.Debugf("parsed %d top-level statements from %d bytes", len(program.Body), len(p.src))
	return program, p.errors
}

func (p *parser) idx0(n *sitter.Node) ast.Idx {
	return ast.Idx(n.StartByte() + 1)
}

func (p *parser) idx1(n *sitter.Node) ast.Idx {
	return ast.Idx(n.EndByte() + 1)
}

func (p *parser) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	start, end := int(n.StartByte()), int(n.EndByte())
	if start < 0 || end < start || end > len(p.src) {
		return ""
	}
	return string(p.src[start:end])
}

// namedChildren returns the named children of n, skipping comments.
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := n.NamedChildCount()
	children := make([]*sitter.Node, 0, count)
	for i := uint(0); i < count; i++ {
		child := n.NamedChild(i)
		if child == nil || child.Kind() == "comment" {
			continue
		}
		children = append(children, child)
	}
	return children
}

// firstNamedChild returns the first non-comment named child of n.
func firstNamedChild(n *sitter.Node) *sitter.Node {
	if children := namedChildren(n); len(children) > 0 {
		return children[0]
	}
	return nil
}

// hasToken reports whether n has an anonymous child spelled kind, such as
// "async", "static" or "*".
func hasToken(n *sitter.Node, kind string) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child != nil && !child.IsNamed() && child.Kind() == kind {
			return true
		}
	}
	return false
}

// tokenBefore reports whether n has an anonymous child spelled kind that
// starts before the node stop.
func tokenBefore(n *sitter.Node, kind string, stop *sitter.Node) bool {
	for i := uint(0); i < n.ChildCount(); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if stop != nil && child.StartByte() >= stop.StartByte() {
			return false
		}
		if !child.IsNamed() && child.Kind() == kind {
			return true
		}
	}
	return false
}

func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Kind() == b.Kind()
}
