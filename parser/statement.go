package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/token"
)

func (p *parser) parseStatementList(n *sitter.Node) (list ast.Statements) {
	for _, child := range namedChildren(n) {
		if child.Kind() == "hash_bang_line" {
			continue
		}
		list = append(list, ast.Statement{Stmt: p.parseStatement(child)})
	}
	return list
}

func (p *parser) parseStatement(n *sitter.Node) ast.Stmt {
	switch n.Kind() {
	case "expression_statement":
		return &ast.ExpressionStatement{Expression: p.parseExpression(firstNamedChild(n))}
	case "variable_declaration", "lexical_declaration":
		return p.parseVariableDeclaration(n)
	case "function_declaration", "generator_function_declaration":
		return &ast.FunctionDeclaration{Function: p.parseFunction(n)}
	case "class_declaration":
		return &ast.ClassDeclaration{Class: p.parseClass(n)}
	case "statement_block":
		return p.parseBlockStatement(n)
	case "if_statement":
		return p.parseIfStatement(n)
	case "for_statement":
		return p.parseForStatement(n)
	case "for_in_statement":
		return p.parseForInOrOfStatement(n)
	case "while_statement":
		return &ast.WhileStatement{
			While: p.idx0(n),
			Test:  p.parseExpression(n.ChildByFieldName("condition")),
			Body:  p.parseSubStatement(n.ChildByFieldName("body")),
		}
	case "do_statement":
		return &ast.DoWhileStatement{
			Do:   p.idx0(n),
			Body: p.parseSubStatement(n.ChildByFieldName("body")),
			Test: p.parseExpression(n.ChildByFieldName("condition")),
		}
	case "try_statement":
		return p.parseTryStatement(n)
	case "switch_statement":
		return p.parseSwitchStatement(n)
	case "return_statement":
		stmt := &ast.ReturnStatement{Return: p.idx0(n)}
		if arg := firstNamedChild(n); arg != nil {
			stmt.Argument = p.parseExpression(arg)
		}
		return stmt
	case "throw_statement":
		return &ast.ThrowStatement{
			Throw:    p.idx0(n),
			Argument: p.parseExpression(firstNamedChild(n)),
		}
	case "break_statement":
		return &ast.BreakStatement{Idx: p.idx0(n), Label: p.parseLabel(n.ChildByFieldName("label"))}
	case "continue_statement":
		return &ast.ContinueStatement{Idx: p.idx0(n), Label: p.parseLabel(n.ChildByFieldName("label"))}
	case "labeled_statement":
		label := n.ChildByFieldName("label")
		return &ast.LabelledStatement{
			Label:     p.parseLabel(label),
			Colon:     p.idx1(label),
			Statement: p.parseSubStatement(n.ChildByFieldName("body")),
		}
	case "with_statement":
		return &ast.WithStatement{
			With:   p.idx0(n),
			Object: p.parseExpression(n.ChildByFieldName("object")),
			Body:   p.parseSubStatement(n.ChildByFieldName("body")),
		}
	case "empty_statement":
		return &ast.EmptyStatement{Semicolon: p.idx0(n)}
	case "debugger_statement":
		return &ast.DebuggerStatement{Debugger: p.idx0(n)}
	case "import_statement", "export_statement":
		p.errorf(n, errUnsupported, "module "+n.Kind())
	case "ERROR":
		// Already reported by collectSyntaxErrors.
	default:
		p.errorf(n, errUnsupported, n.Kind())
	}
	return &ast.BadStatement{From: p.idx0(n), To: p.idx1(n)}
}

func (p *parser) parseSubStatement(n *sitter.Node) *ast.Statement {
	if n == nil {
		return &ast.Statement{Stmt: &ast.EmptyStatement{}}
	}
	return &ast.Statement{Stmt: p.parseStatement(n)}
}

func (p *parser) parseBlockStatement(n *sitter.Node) *ast.BlockStatement {
	return &ast.BlockStatement{
		LeftBrace:  p.idx0(n),
		List:       p.parseStatementList(n),
		RightBrace: p.idx1(n) - 1,
	}
}

func (p *parser) parseLabel(n *sitter.Node) *ast.Identifier {
	if n == nil {
		return nil
	}
	return &ast.Identifier{Idx: p.idx0(n), Name: p.text(n)}
}

func (p *parser) parseVariableDeclaration(n *sitter.Node) *ast.VariableDeclaration {
	decl := &ast.VariableDeclaration{Idx: p.idx0(n), Token: token.Var}
	if kind := n.ChildByFieldName("kind"); kind != nil {
		if tkn, ok := token.Lookup(p.text(kind)); ok {
			decl.Token = tkn
		}
	}
	for _, child := range namedChildren(n) {
		if child.Kind() != "variable_declarator" {
			continue
		}
		declarator := ast.VariableDeclarator{
			Target: p.parseBindingTarget(child.ChildByFieldName("name")),
		}
		if value := child.ChildByFieldName("value"); value != nil {
			declarator.Initializer = p.parseExpression(value)
		}
		decl.List = append(decl.List, declarator)
	}
	return decl
}

func (p *parser) parseIfStatement(n *sitter.Node) *ast.IfStatement {
	stmt := &ast.IfStatement{
		If:         p.idx0(n),
		Test:       p.parseExpression(n.ChildByFieldName("condition")),
		Consequent: p.parseSubStatement(n.ChildByFieldName("consequence")),
	}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		if alt.Kind() == "else_clause" {
			alt = firstNamedChild(alt)
		}
		stmt.Alternate = p.parseSubStatement(alt)
	}
	return stmt
}

func (p *parser) parseForStatement(n *sitter.Node) *ast.ForStatement {
	stmt := &ast.ForStatement{
		For:  p.idx0(n),
		Body: p.parseSubStatement(n.ChildByFieldName("body")),
	}
	if init := n.ChildByFieldName("initializer"); init != nil {
		switch init.Kind() {
		case "variable_declaration", "lexical_declaration":
			stmt.Initializer = &ast.ForLoopInitializer{Initializer: p.parseVariableDeclaration(init)}
		case "empty_statement", ";":
		default:
			if expr := p.parseOptionalExpressionStatement(init); expr != nil {
				stmt.Initializer = &ast.ForLoopInitializer{Initializer: expr}
			}
		}
	}
	stmt.Test = p.parseOptionalExpressionStatement(n.ChildByFieldName("condition"))
	stmt.Update = p.parseOptionalExpressionStatement(n.ChildByFieldName("increment"))
	return stmt
}

// parseOptionalExpressionStatement accepts the loose forms tree-sitter uses
// for for-loop clauses: a bare expression, an expression statement, or an
// empty statement.
func (p *parser) parseOptionalExpressionStatement(n *sitter.Node) *ast.Expression {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case "empty_statement", ";":
		return nil
	case "expression_statement":
		return p.parseExpression(firstNamedChild(n))
	}
	return p.parseExpression(n)
}

func (p *parser) parseForInOrOfStatement(n *sitter.Node) ast.Stmt {
	left := n.ChildByFieldName("left")

	into := &ast.ForInto{}
	if kind := n.ChildByFieldName("kind"); kind != nil {
		tkn, _ := token.Lookup(p.text(kind))
		declarator := ast.VariableDeclarator{Target: p.parseBindingTarget(left)}
		if value := n.ChildByFieldName("value"); value != nil {
			declarator.Initializer = p.parseExpression(value)
		}
		into.Into = &ast.VariableDeclaration{
			Idx:   p.idx0(kind),
			Token: tkn,
			List:  ast.VariableDeclarators{declarator},
		}
	} else {
		into.Into = p.parseAssignmentTarget(left)
	}

	source := p.parseExpression(n.ChildByFieldName("right"))
	body := p.parseSubStatement(n.ChildByFieldName("body"))

	operator := n.ChildByFieldName("operator")
	if operator != nil && p.text(operator) == "of" {
		return &ast.ForOfStatement{
			For:    p.idx0(n),
			Into:   into,
			Source: source,
			Body:   body,
			Await:  hasToken(n, "await"),
		}
	}
	return &ast.ForInStatement{
		For:    p.idx0(n),
		Into:   into,
		Source: source,
		Body:   body,
	}
}

func (p *parser) parseTryStatement(n *sitter.Node) *ast.TryStatement {
	stmt := &ast.TryStatement{
		Try:  p.idx0(n),
		Body: p.parseBlockStatement(n.ChildByFieldName("body")),
	}
	if handler := n.ChildByFieldName("handler"); handler != nil {
		catch := &ast.CatchStatement{
			Catch: p.idx0(handler),
			Body:  p.parseBlockStatement(handler.ChildByFieldName("body")),
		}
		if param := handler.ChildByFieldName("parameter"); param != nil {
			catch.Parameter = p.parseBindingTarget(param)
		}
		stmt.Catch = catch
	}
	if finalizer := n.ChildByFieldName("finalizer"); finalizer != nil {
		stmt.Finally = p.parseBlockStatement(finalizer.ChildByFieldName("body"))
	}
	return stmt
}

func (p *parser) parseSwitchStatement(n *sitter.Node) *ast.SwitchStatement {
	body := n.ChildByFieldName("body")
	stmt := &ast.SwitchStatement{
		Switch:       p.idx0(n),
		Discriminant: p.parseExpression(n.ChildByFieldName("value")),
		RightBrace:   p.idx1(body) - 1,
	}
	for _, clause := range namedChildren(body) {
		c := ast.CaseStatement{Case: p.idx0(clause)}
		test := clause.ChildByFieldName("value")
		if clause.Kind() == "switch_case" && test != nil {
			c.Test = p.parseExpression(test)
		}
		for _, child := range namedChildren(clause) {
			if sameNode(child, test) {
				continue
			}
			c.Consequent = append(c.Consequent, ast.Statement{Stmt: p.parseStatement(child)})
		}
		stmt.Body = append(stmt.Body, c)
	}
	return stmt
}
