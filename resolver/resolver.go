// Package resolver binds every identifier of a JavaScript program to the
// scope that declares it.
//
// Resolution runs in two passes. BuildScopeTree creates the scopes and
// registers every declaration, hoisting var and function declarations the
// way the language does. ResolveReferences then looks up each identifier
// occurrence in source order.
package resolver

import (
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/tliron/commonlog"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/token"
)

// Loosely inspired from https://rustdoc.swc.rs/swc_ecma_transforms_base/fn.resolver.html

// occurrence is an identifier met while building the tree, waiting to be
// resolved.
type occurrence struct {
	ident   *ast.Identifier
	scope   *Scope
	kind    ReferenceKind
	strict  bool
	guarded bool
	owner   *ast.Identifier
}

type builder struct {
	ast.NoopVisitor

	tree    *Tree
	current *Scope

	identType ReferenceKind
	guarded   bool
	// inClass counts enclosing class bodies, which are always strict.
	inClass int
	// owner declares the innermost named function or class whose body is
	// being visited.
	owner *ast.Identifier

	nextCtxt ast.ScopeContext

	errs *multierror.Error
	log  commonlog.Logger
}

// Result holds both passes of a resolution.
type Result struct {
	Tree  *Tree
	Table *ReferenceTable

	// Errors lists every resolution error ordered by source position.
	Errors []error
}

// Resolve builds the scope tree of p and resolves all of its references.
// The returned error aggregates every UnresolvedReferenceError and
// RedeclarationConflictError; the result is usable either way.
func Resolve(p *ast.Program, opts ...Option) (*Result, error) {
	tree, buildErr := BuildScopeTree(p, opts...)
	table, resolveErr := ResolveReferences(tree)

	merr := multierror.Append(&multierror.Error{}, buildErr, resolveErr)
	sort.SliceStable(merr.Errors, func(i, j int) bool {
		return errorIdx(merr.Errors[i]) < errorIdx(merr.Errors[j])
	})

	tree.opts.log.Debugf("resolved %d references in %d scopes, %d errors",
		len(table.refs), len(tree.scopes), len(merr.Errors))
	return &Result{Tree: tree, Table: table, Errors: merr.Errors}, merr.ErrorOrNil()
}

func errorIdx(err error) ast.Idx {
	switch e := err.(type) {
	case *UnresolvedReferenceError:
		return e.Idx
	case *RedeclarationConflictError:
		return e.Idx
	}
	return 0
}

// BuildScopeTree creates the scope tree of p and registers every
// declaration in it. The error aggregates the redeclaration conflicts found;
// the tree is returned regardless.
func BuildScopeTree(p *ast.Program, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tree := &Tree{
		Program:  p,
		byNode:   make(map[ast.Node]*Scope),
		declared: make(map[*ast.Identifier]*Binding),
		ambient:  make(map[string]*Binding),
		opts:     o,
	}
	b := &builder{
		tree:      tree,
		identType: ReferenceKindRead,
		nextCtxt:  TopLevelMark,
		log:       o.log,
	}
	b.V = b
	p.VisitWith(b)

	names := o.globals
	if o.defaultGlobals {
		names = append(DefaultGlobals(), names...)
	}
	for _, name := range names {
		if _, ok := tree.ambient[name]; !ok {
			tree.ambient[name] = newBinding(tree.Root, name, DeclKindAmbient, nil)
		}
	}

	tree.err = b.errs.ErrorOrNil()
	return tree, tree.err
}

func (b *builder) pushScope(kind ScopeKind, node ast.Node) *Scope {
	ctx := b.nextCtxt
	b.nextCtxt++

	s := newScope(kind, b.current, ctx, node)
	if b.inClass > 0 {
		s.Strict = true
	}
	b.tree.scopes = append(b.tree.scopes, s)
	b.tree.byNode[node] = s
	b.current = s
	return s
}

func (b *builder) popScope() {
	b.log.Debugf("scope %d (%s) closed with %d bindings", b.current.Mark, b.current.Kind, len(b.current.order))
	if b.current.Parent != nil {
		b.current = b.current.Parent
	}
}

// declare registers id in scope. It returns nil when the declaration was
// rejected.
func (b *builder) declare(scope *Scope, id *ast.Identifier, kind DeclKind, decl ast.Node) *Binding {
	if scope.conflicted {
		b.tree.declared[id] = nil
		return nil
	}

	if prev := scope.declaredSymbols[id.Name]; prev != nil {
		switch {
		case prev.exprName:
			// Any declaration shadows the own name of a function or class
			// expression.
			scope.remove(prev)
		case kind.IsLexical() || prev.Hoisting == HoistingBlock || (kind == DeclKindFunction && !scope.isFunctionLike()):
			b.conflict(scope, id, kind, prev)
			return nil
		default:
			if kind == DeclKindFunction {
				prev.redeclare(kind, decl)
			}
			prev.Identifiers = append(prev.Identifiers, id)
			b.tree.declared[id] = prev
			return prev
		}
	}

	binding := newBinding(scope, id.Name, kind, decl)
	if kind == DeclKindFunction && !scope.isFunctionLike() {
		binding.Hoisting = HoistingBlock
	}
	binding.Identifiers = []*ast.Identifier{id}
	scope.add(binding)
	b.tree.declared[id] = binding
	return binding
}

func (b *builder) conflict(scope *Scope, id *ast.Identifier, kind DeclKind, prev *Binding) {
	scope.conflicted = true
	b.tree.declared[id] = nil

	err := &RedeclarationConflictError{
		Name:     id.Name,
		Scope:    scope,
		Idx:      id.Idx,
		Kind:     kind,
		Previous: prev,
	}
	b.log.Debugf("scope %d: %s", scope.Mark, err)
	b.errs = multierror.Append(b.errs, err)
}

// hoistFunctionBody registers the declarations of a function or program
// body in the current scope.
func (b *builder) hoistFunctionBody(list ast.Statements) {
	h := newHoister(b, b.current)
	list.VisitWith(h)
}

// hoistBlock registers the block-scoped declarations of a block in the
// current scope. Sloppy-mode functions were already hoisted out of it.
func (b *builder) hoistBlock(list ast.Statements) {
	scope := b.current
	for i := range list {
		switch it := list[i].Stmt.(type) {
		case *ast.VariableDeclaration:
			if !it.IsLexical() {
				continue
			}
			kind := declKindOf(it.Token)
			for j := range it.List {
				for _, id := range findIds(it.List[j].Target) {
					b.declare(scope, id, kind, it)
				}
			}
		case *ast.ClassDeclaration:
			if it.Class.Name != nil {
				b.declare(scope, it.Class.Name, DeclKindClass, it)
			}
		case *ast.FunctionDeclaration:
			if scope.Strict && it.Function.Name != nil {
				b.declare(scope, it.Function.Name, DeclKindFunction, it)
			}
		}
	}
}

func (b *builder) declareParams(params *ast.ParameterList, decl ast.Node) {
	for i := range params.List {
		for _, id := range findIds(params.List[i].Target) {
			b.declare(b.current, id, DeclKindParameter, decl)
		}
	}
	if params.Rest != nil {
		for _, id := range findIds(params.Rest) {
			b.declare(b.current, id, DeclKindParameter, decl)
		}
	}

	old := b.identType
	b.identType = ReferenceKindDeclaration
	params.VisitWith(b)
	b.identType = old
}

func (b *builder) declareLoopHead(kind LoopKind, decl *ast.VariableDeclaration, mode iterationMode) {
	scope := b.current
	scope.Loop = &Loop{Kind: kind}
	declKind := declKindOf(decl.Token)
	for i := range decl.List {
		for _, id := range findIds(decl.List[i].Target) {
			if binding := b.declare(scope, id, declKind, decl); binding != nil {
				binding.mode = mode
				scope.Loop.Bindings = append(scope.Loop.Bindings, binding)
			}
		}
	}
}

func (b *builder) record(id *ast.Identifier, kind ReferenceKind) {
	b.tree.occurrences = append(b.tree.occurrences, occurrence{
		ident:   id,
		scope:   b.current,
		kind:    kind,
		strict:  b.current.Strict || b.inClass > 0,
		guarded: b.guarded,
		owner:   b.owner,
	})
	b.guarded = false
}

func (b *builder) VisitProgram(n *ast.Program) {
	b.current = nil
	root := b.pushScope(ScopeKindGlobal, n)
	root.Strict = b.tree.opts.strict || n.Body.HasUseStrict()
	b.tree.Root = root

	b.hoistFunctionBody(n.Body)
	n.Body.VisitWith(b)
}

func (b *builder) VisitIdentifier(n *ast.Identifier) {
	if n == nil {
		return
	}
	b.record(n, b.identType)
}

func (b *builder) VisitPrivateIdentifier(n *ast.PrivateIdentifier) {}
func (b *builder) VisitMetaProperty(n *ast.MetaProperty)           {}
func (b *builder) VisitBreakStatement(n *ast.BreakStatement)       {}
func (b *builder) VisitContinueStatement(n *ast.ContinueStatement) {}

func (b *builder) VisitLabelledStatement(n *ast.LabelledStatement) {
	n.Statement.VisitWith(b)
}

func (b *builder) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Function.Name != nil {
		b.record(n.Function.Name, ReferenceKindDeclaration)
	}
	defer b.setOwner(n.Function.Name)()
	b.visitFunction(n.Function, false)
}

// setOwner makes id the owner of the references met until the returned
// function is called.
func (b *builder) setOwner(id *ast.Identifier) func() {
	old := b.owner
	if id != nil {
		b.owner = id
	}
	return func() { b.owner = old }
}

func (b *builder) VisitFunctionLiteral(n *ast.FunctionLiteral) {
	b.visitFunction(n, true)
}

func (b *builder) visitFunction(n *ast.FunctionLiteral, expr bool) {
	scope := b.pushScope(ScopeKindFunction, n)
	scope.Strict = scope.Strict || n.Body.List.HasUseStrict()

	if expr && n.Name != nil {
		if binding := b.declare(scope, n.Name, DeclKindFunction, n); binding != nil {
			binding.exprName = true
		}
		b.record(n.Name, ReferenceKindDeclaration)
	}

	b.declareParams(&n.ParameterList, n)
	b.hoistFunctionBody(n.Body.List)

	oldIdentType := b.identType
	b.identType = ReferenceKindRead
	// The body shares the function scope.
	n.Body.List.VisitWith(b)
	b.identType = oldIdentType

	b.popScope()
}

func (b *builder) VisitArrowFunctionLiteral(n *ast.ArrowFunctionLiteral) {
	scope := b.pushScope(ScopeKindFunction, n)
	body, block := n.Body.Body.(*ast.BlockStatement)
	if block {
		scope.Strict = scope.Strict || body.List.HasUseStrict()
	}

	b.declareParams(&n.ParameterList, n)

	oldIdentType := b.identType
	b.identType = ReferenceKindRead
	switch body := n.Body.Body.(type) {
	case *ast.BlockStatement:
		b.hoistFunctionBody(body.List)
		body.List.VisitWith(b)
	case *ast.Expression:
		body.VisitWith(b)
	}
	b.identType = oldIdentType

	b.popScope()
}

func (b *builder) VisitClassDeclaration(n *ast.ClassDeclaration) {
	if n.Class.Name != nil {
		b.record(n.Class.Name, ReferenceKindDeclaration)
	}
	defer b.setOwner(n.Class.Name)()
	b.visitClass(n.Class, false)
}

func (b *builder) VisitClassLiteral(n *ast.ClassLiteral) {
	b.visitClass(n, true)
}

func (b *builder) visitClass(n *ast.ClassLiteral, expr bool) {
	b.inClass++
	defer func() { b.inClass-- }()

	if expr && n.Name != nil {
		scope := b.pushScope(ScopeKindBlock, n)
		if binding := b.declare(scope, n.Name, DeclKindClass, n); binding != nil {
			binding.exprName = true
		}
		b.record(n.Name, ReferenceKindDeclaration)
		defer b.popScope()
	}

	oldIdentType := b.identType
	b.identType = ReferenceKindRead
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(b)
	}
	n.Body.VisitWith(b)
	b.identType = oldIdentType
}

func (b *builder) VisitMethodDefinition(n *ast.MethodDefinition) {
	if n.Computed {
		n.Key.VisitWith(b)
	}
	if n.Body != nil {
		n.Body.VisitWith(b)
	}
}

func (b *builder) VisitFieldDefinition(n *ast.FieldDefinition) {
	if n.Computed {
		n.Key.VisitWith(b)
	}
	if n.Initializer != nil {
		n.Initializer.VisitWith(b)
	}
}

func (b *builder) VisitClassStaticBlock(n *ast.ClassStaticBlock) {
	b.pushScope(ScopeKindFunction, n)
	b.hoistFunctionBody(n.Block.List)
	n.Block.List.VisitWith(b)
	b.popScope()
}

func (b *builder) VisitBlockStatement(n *ast.BlockStatement) {
	if !needsScope(n.List, b.current.Strict) {
		n.List.VisitWith(b)
		return
	}
	b.pushScope(ScopeKindBlock, n)
	b.hoistBlock(n.List)
	n.List.VisitWith(b)
	b.popScope()
}

func (b *builder) VisitCatchStatement(n *ast.CatchStatement) {
	b.pushScope(ScopeKindCatch, n)

	if n.Parameter != nil {
		for _, id := range findIds(n.Parameter) {
			b.declare(b.current, id, DeclKindCatchParam, n)
		}
		oldIdentType := b.identType
		b.identType = ReferenceKindDeclaration
		n.Parameter.VisitWith(b)
		b.identType = oldIdentType
	}

	// A function declared directly in the body is lexical there and may not
	// reuse a plain parameter's name. Strict mode gets this from hoistBlock,
	// and destructured parameters from the Hoister.
	if param, ok := catchParamIdent(n); ok && !b.current.Strict {
		for i := range n.Body.List {
			fn, ok := n.Body.List[i].Stmt.(*ast.FunctionDeclaration)
			if ok && fn.Function.Name != nil && fn.Function.Name.Name == param.Name {
				b.conflict(b.current, fn.Function.Name, DeclKindFunction, b.current.Own(param.Name))
			}
		}
	}

	// The body shares the catch scope.
	b.hoistBlock(n.Body.List)
	n.Body.List.VisitWith(b)

	b.popScope()
}

func catchParamIdent(n *ast.CatchStatement) (*ast.Identifier, bool) {
	if n.Parameter == nil {
		return nil, false
	}
	id, ok := n.Parameter.Target.(*ast.Identifier)
	return id, ok
}

func (b *builder) VisitSwitchStatement(n *ast.SwitchStatement) {
	n.Discriminant.VisitWith(b)

	all := switchStatements(n)
	scoped := needsScope(all, b.current.Strict)
	if scoped {
		b.pushScope(ScopeKindBlock, n)
		b.hoistBlock(all)
	}
	for i := range n.Body {
		n.Body[i].VisitWith(b)
	}
	if scoped {
		b.popScope()
	}
}

func (b *builder) VisitForStatement(n *ast.ForStatement) {
	decl, lexical := lexicalHead(n.Initializer)
	if lexical {
		b.pushScope(ScopeKindBlock, n)
		mode := iterationNone
		if decl.Token == token.Let {
			mode = iterationChained
		}
		b.declareLoopHead(LoopKindFor, decl, mode)
	}

	n.VisitChildrenWith(b)

	if lexical {
		b.popScope()
	}
}

func (b *builder) VisitForInStatement(n *ast.ForInStatement) {
	b.visitForInto(LoopKindForIn, n, n.Into, n.Source, n.Body)
}

func (b *builder) VisitForOfStatement(n *ast.ForOfStatement) {
	b.visitForInto(LoopKindForOf, n, n.Into, n.Source, n.Body)
}

func (b *builder) visitForInto(kind LoopKind, n ast.Node, into *ast.ForInto, source *ast.Expression, body *ast.Statement) {
	decl, lexical := into.Into.(*ast.VariableDeclaration)
	lexical = lexical && decl.IsLexical()
	if lexical {
		b.pushScope(ScopeKindBlock, n)
		b.declareLoopHead(kind, decl, iterationFresh)
	}

	oldIdentType := b.identType
	switch into := into.Into.(type) {
	case *ast.VariableDeclaration:
		into.VisitWith(b)
	case *ast.Expression:
		b.identType = ReferenceKindWrite
		into.VisitWith(b)
	}
	b.identType = ReferenceKindRead
	source.VisitWith(b)
	body.VisitWith(b)
	b.identType = oldIdentType

	if lexical {
		b.popScope()
	}
}

func (b *builder) VisitVariableDeclarator(n *ast.VariableDeclarator) {
	oldIdentType := b.identType
	b.identType = ReferenceKindDeclaration
	n.Target.VisitWith(b)
	b.identType = ReferenceKindRead
	if n.Initializer != nil {
		if id, ok := n.Target.Target.(*ast.Identifier); ok && isCallable(n.Initializer) {
			defer b.setOwner(id)()
		}
		n.Initializer.VisitWith(b)
	}
	b.identType = oldIdentType
}

// isCallable reports whether expr is a function or class literal, whose body
// only runs once the binding it initialises is used.
func isCallable(expr *ast.Expression) bool {
	switch expr.Unwrap().(type) {
	case *ast.FunctionLiteral, *ast.ArrowFunctionLiteral, *ast.ClassLiteral:
		return true
	}
	return false
}

func (b *builder) VisitAssignExpression(n *ast.AssignExpression) {
	oldIdentType := b.identType
	switch {
	case oldIdentType == ReferenceKindDeclaration:
		// Default value inside a binding pattern.
	case n.Operator == token.Assign:
		b.identType = ReferenceKindWrite
	default:
		b.identType = ReferenceKindReadWrite
	}
	n.Left.VisitWith(b)

	b.identType = ReferenceKindRead
	n.Right.VisitWith(b)
	b.identType = oldIdentType
}

func (b *builder) VisitUpdateExpression(n *ast.UpdateExpression) {
	oldIdentType := b.identType
	b.identType = ReferenceKindReadWrite
	n.Operand.VisitWith(b)
	b.identType = oldIdentType
}

func (b *builder) VisitUnaryExpression(n *ast.UnaryExpression) {
	if _, ok := n.Operand.Unwrap().(*ast.Identifier); ok && n.Operator == token.Typeof {
		b.guarded = true
	}
	n.Operand.VisitWith(b)
	b.guarded = false
}

func (b *builder) VisitMemberExpression(n *ast.MemberExpression) {
	oldIdentType := b.identType
	b.identType = ReferenceKindRead
	n.Object.VisitWith(b)
	if n.Computed {
		n.Property.VisitWith(b)
	}
	b.identType = oldIdentType
}

func (b *builder) VisitPropertyKeyed(n *ast.PropertyKeyed) {
	oldIdentType := b.identType
	if n.Computed {
		b.identType = ReferenceKindRead
		n.Key.VisitWith(b)
		b.identType = oldIdentType
	}
	n.Value.VisitWith(b)
}

func (b *builder) VisitPropertyShort(n *ast.PropertyShort) {
	n.Name.VisitWith(b)
	if n.Initializer != nil {
		oldIdentType := b.identType
		b.identType = ReferenceKindRead
		n.Initializer.VisitWith(b)
		b.identType = oldIdentType
	}
}
