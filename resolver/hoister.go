package resolver

import (
	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/token"
)

// Hoister registers the declarations of a function or program body in its
// scope before the body is walked: var declarations and sloppy-mode block
// functions from any depth, and top-level function, let, const and class
// declarations. Nested function bodies and expressions are skipped.
type Hoister struct {
	ast.NoopVisitor

	resolver *builder
	scope    *Scope

	// depth counts the blocks entered below the body.
	depth int
	// through holds the block-scoped names of each entered block. A var
	// hoisted through a block must not collide with them.
	through []map[string]DeclKind
}

func newHoister(b *builder, scope *Scope) *Hoister {
	h := &Hoister{resolver: b, scope: scope}
	h.V = h
	return h
}

func (h *Hoister) enter(names map[string]DeclKind) {
	h.depth++
	h.through = append(h.through, names)
}

func (h *Hoister) leave() {
	h.depth--
	h.through = h.through[:len(h.through)-1]
}

// hoist declares id in the function scope after checking the blocks it is
// hoisted through.
func (h *Hoister) hoist(id *ast.Identifier, kind DeclKind, decl ast.Node) {
	for _, names := range h.through {
		prev, ok := names[id.Name]
		if !ok {
			continue
		}
		// Sloppy-mode block functions may repeat each other.
		if kind == DeclKindFunction && prev == DeclKindFunction {
			continue
		}
		h.resolver.conflict(h.scope, id, kind, nil)
		return
	}
	h.resolver.declare(h.scope, id, kind, decl)
}

func (h *Hoister) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n.Token == token.Var {
		for i := range n.List {
			for _, id := range findIds(n.List[i].Target) {
				h.hoist(id, DeclKindVar, n)
			}
		}
		return
	}
	if h.depth > 0 {
		return
	}
	kind := declKindOf(n.Token)
	for i := range n.List {
		for _, id := range findIds(n.List[i].Target) {
			h.resolver.declare(h.scope, id, kind, n)
		}
	}
}

func (h *Hoister) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	name := n.Function.Name
	if name == nil {
		return
	}
	switch {
	case h.depth == 0:
		h.resolver.declare(h.scope, name, DeclKindFunction, n)
	case !h.scope.Strict:
		h.hoist(name, DeclKindFunction, n)
	}
}

func (h *Hoister) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if h.depth == 0 && n.Class.Name != nil {
		h.resolver.declare(h.scope, n.Class.Name, DeclKindClass, n)
	}
}

func (h *Hoister) VisitBlockStatement(n *ast.BlockStatement) {
	h.enter(lexicalNames(n.List, h.scope.Strict))
	n.List.VisitWith(h)
	h.leave()
}

func (h *Hoister) VisitForStatement(n *ast.ForStatement) {
	decl, lexical := lexicalHead(n.Initializer)
	if lexical {
		h.enter(declaredNames(decl))
	}
	if n.Initializer != nil {
		n.Initializer.VisitWith(h)
	}
	n.Body.VisitWith(h)
	if lexical {
		h.leave()
	}
}

func (h *Hoister) visitForInto(into *ast.ForInto, body *ast.Statement) {
	decl, lexical := into.Into.(*ast.VariableDeclaration)
	lexical = lexical && decl.IsLexical()
	if lexical {
		h.enter(declaredNames(decl))
	}
	into.VisitWith(h)
	body.VisitWith(h)
	if lexical {
		h.leave()
	}
}

func (h *Hoister) VisitForInStatement(n *ast.ForInStatement) { h.visitForInto(n.Into, n.Body) }
func (h *Hoister) VisitForOfStatement(n *ast.ForOfStatement) { h.visitForInto(n.Into, n.Body) }

func (h *Hoister) VisitSwitchStatement(n *ast.SwitchStatement) {
	all := switchStatements(n)
	h.enter(lexicalNames(all, h.scope.Strict))
	for i := range n.Body {
		n.Body[i].Consequent.VisitWith(h)
	}
	h.leave()
}

func (h *Hoister) VisitCatchStatement(n *ast.CatchStatement) {
	names := lexicalNames(n.Body.List, h.scope.Strict)
	// A var may share the name of a plain catch parameter, not of one bound
	// by a destructuring pattern.
	if n.Parameter != nil {
		if _, simple := n.Parameter.Target.(*ast.Identifier); !simple {
			for _, id := range findIds(n.Parameter) {
				names[id.Name] = DeclKindCatchParam
			}
		}
	}
	h.enter(names)
	n.Body.List.VisitWith(h)
	h.leave()
}

func (h *Hoister) VisitExpression(n *ast.Expression)                     {}
func (h *Hoister) VisitFunctionLiteral(n *ast.FunctionLiteral)           {}
func (h *Hoister) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {}
func (h *Hoister) VisitClassLiteral(n *ast.ClassLiteral)                 {}
func (h *Hoister) VisitBindingTarget(n *ast.BindingTarget)               {}

// needsScope reports whether a statement list declares anything block
// scoped.
func needsScope(list ast.Statements, strict bool) bool {
	for i := range list {
		switch it := list[i].Stmt.(type) {
		case *ast.VariableDeclaration:
			if it.IsLexical() {
				return true
			}
		case *ast.ClassDeclaration:
			return true
		case *ast.FunctionDeclaration:
			if strict {
				return true
			}
		}
	}
	return false
}

// lexicalNames returns the names a statement list declares in its own
// block. Sloppy-mode functions are included since a var may not share their
// name either.
func lexicalNames(list ast.Statements, strict bool) map[string]DeclKind {
	names := make(map[string]DeclKind)
	for i := range list {
		switch it := list[i].Stmt.(type) {
		case *ast.VariableDeclaration:
			if it.IsLexical() {
				for name, kind := range declaredNames(it) {
					names[name] = kind
				}
			}
		case *ast.ClassDeclaration:
			if it.Class.Name != nil {
				names[it.Class.Name.Name] = DeclKindClass
			}
		case *ast.FunctionDeclaration:
			if it.Function.Name != nil {
				if _, ok := names[it.Function.Name.Name]; !ok || strict {
					names[it.Function.Name.Name] = DeclKindFunction
				}
			}
		}
	}
	return names
}

func declaredNames(decl *ast.VariableDeclaration) map[string]DeclKind {
	kind := declKindOf(decl.Token)
	names := make(map[string]DeclKind)
	for i := range decl.List {
		for _, id := range findIds(decl.List[i].Target) {
			names[id.Name] = kind
		}
	}
	return names
}

func lexicalHead(init *ast.ForLoopInitializer) (*ast.VariableDeclaration, bool) {
	if init == nil {
		return nil, false
	}
	decl, ok := init.Initializer.(*ast.VariableDeclaration)
	return decl, ok && decl.IsLexical()
}

func switchStatements(n *ast.SwitchStatement) ast.Statements {
	var all ast.Statements
	for i := range n.Body {
		all = append(all, n.Body[i].Consequent...)
	}
	return all
}

func declKindOf(tkn token.Token) DeclKind {
	switch tkn {
	case token.Let:
		return DeclKindLet
	case token.Const:
		return DeclKindConst
	}
	return DeclKindVar
}

// idsFinder collects the identifiers bound by a binding target, skipping
// default values, computed keys and member expressions.
type idsFinder struct {
	ast.NoopVisitor

	found []*ast.Identifier
}

func findIds(n ast.VisitableNode) []*ast.Identifier {
	v := &idsFinder{}
	v.V = v
	n.VisitWith(v)

	return v.found
}

func (v *idsFinder) VisitIdentifier(n *ast.Identifier) {
	v.found = append(v.found, n)
}

func (v *idsFinder) VisitAssignExpression(n *ast.AssignExpression) {
	n.Left.VisitWith(v)
}

func (v *idsFinder) VisitPropertyShort(n *ast.PropertyShort) {
	n.Name.VisitWith(v)
}

func (v *idsFinder) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	n.Value.VisitWith(v)
}

func (v *idsFinder) VisitMemberExpression(n *ast.MemberExpression) {}
