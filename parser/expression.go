package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/token"
)

func (p *parser) parseExpression(n *sitter.Node) *ast.Expression {
	if n == nil {
		return &ast.Expression{}
	}
	return &ast.Expression{Expr: p.parseExpr(n)}
}

func (p *parser) parseExpressions(nodes []*sitter.Node) ast.Expressions {
	list := make(ast.Expressions, 0, len(nodes))
	for _, n := range nodes {
		list = append(list, ast.Expression{Expr: p.parseExpr(n)})
	}
	return list
}

func (p *parser) parseIdentifier(n *sitter.Node) *ast.Identifier {
	return &ast.Identifier{Idx: p.idx0(n), Name: p.text(n)}
}

func (p *parser) parseExpr(n *sitter.Node) ast.Expr {
	switch n.Kind() {
	case "identifier", "undefined", "shorthand_property_identifier", "property_identifier":
		return p.parseIdentifier(n)
	case "private_property_identifier":
		return &ast.PrivateIdentifier{Identifier: p.parseIdentifier(n)}
	case "this":
		return &ast.ThisExpression{Idx: p.idx0(n)}
	case "super":
		return &ast.SuperExpression{Idx: p.idx0(n)}
	case "number":
		return &ast.NumberLiteral{Idx: p.idx0(n), Literal: p.text(n)}
	case "string":
		raw := p.text(n)
		value := raw
		if len(raw) >= 2 {
			value = raw[1 : len(raw)-1]
		}
		return &ast.StringLiteral{Idx: p.idx0(n), Value: value, Raw: raw}
	case "regex":
		return &ast.RegExpLiteral{Idx: p.idx0(n), Literal: p.text(n)}
	case "true", "false":
		return &ast.BooleanLiteral{Idx: p.idx0(n), Value: n.Kind() == "true"}
	case "null":
		return &ast.NullLiteral{Idx: p.idx0(n)}
	case "template_string":
		return p.parseTemplate(n, nil)
	case "parenthesized_expression":
		return p.parseExpr(firstNamedChild(n))
	case "sequence_expression":
		return &ast.SequenceExpression{Sequence: p.parseExpressions(flattenSequence(n))}
	case "array":
		return p.parseArrayLiteral(n)
	case "object":
		return p.parseObjectLiteral(n)
	case "assignment_expression", "augmented_assignment_expression":
		operator := token.Assign
		if op := n.ChildByFieldName("operator"); op != nil {
			if tkn, ok := token.Lookup(p.text(op)); ok {
				operator = tkn
			}
		}
		return &ast.AssignExpression{
			Operator: operator,
			Left:     p.parseAssignmentTarget(n.ChildByFieldName("left")),
			Right:    p.parseExpression(n.ChildByFieldName("right")),
		}
	case "binary_expression":
		operator, _ := token.Lookup(p.text(n.ChildByFieldName("operator")))
		return &ast.BinaryExpression{
			Operator: operator,
			Left:     p.parseExpression(n.ChildByFieldName("left")),
			Right:    p.parseExpression(n.ChildByFieldName("right")),
		}
	case "unary_expression":
		operator, _ := token.Lookup(p.text(n.ChildByFieldName("operator")))
		return &ast.UnaryExpression{
			Operator: operator,
			Idx:      p.idx0(n),
			Operand:  p.parseExpression(n.ChildByFieldName("argument")),
		}
	case "update_expression":
		op := n.ChildByFieldName("operator")
		arg := n.ChildByFieldName("argument")
		operator, _ := token.Lookup(p.text(op))
		return &ast.UpdateExpression{
			Operator: operator,
			Idx:      p.idx0(n),
			Operand:  p.parseAssignmentTarget(arg),
			Postfix:  op != nil && arg != nil && op.StartByte() > arg.StartByte(),
		}
	case "call_expression":
		return p.parseCallExpression(n)
	case "new_expression":
		expr := &ast.NewExpression{
			New:    p.idx0(n),
			Callee: p.parseExpression(n.ChildByFieldName("constructor")),
		}
		if args := n.ChildByFieldName("arguments"); args != nil {
			expr.LeftParenthesis = p.idx0(args)
			expr.ArgumentList = p.parseExpressions(namedChildren(args))
			expr.RightParenthesis = p.idx1(args) - 1
		}
		return expr
	case "member_expression":
		property := n.ChildByFieldName("property")
		return &ast.MemberExpression{
			Object:   p.parseExpression(n.ChildByFieldName("object")),
			Property: &ast.Expression{Expr: p.parseExpr(property)},
			End:      p.idx1(n),
		}
	case "subscript_expression":
		return &ast.MemberExpression{
			Object:   p.parseExpression(n.ChildByFieldName("object")),
			Property: p.parseExpression(n.ChildByFieldName("index")),
			Computed: true,
			End:      p.idx1(n),
		}
	case "ternary_expression":
		return &ast.ConditionalExpression{
			Test:       p.parseExpression(n.ChildByFieldName("condition")),
			Consequent: p.parseExpression(n.ChildByFieldName("consequence")),
			Alternate:  p.parseExpression(n.ChildByFieldName("alternative")),
		}
	case "await_expression":
		return &ast.AwaitExpression{Await: p.idx0(n), Argument: p.parseExpression(firstNamedChild(n))}
	case "yield_expression":
		expr := &ast.YieldExpression{Yield: p.idx0(n), Delegate: hasToken(n, "*")}
		if arg := firstNamedChild(n); arg != nil {
			expr.Argument = p.parseExpression(arg)
		}
		return expr
	case "spread_element":
		return &ast.SpreadElement{Expression: *p.parseExpression(firstNamedChild(n))}
	case "function_expression", "function", "generator_function":
		return p.parseFunction(n)
	case "arrow_function":
		return p.parseArrowFunction(n)
	case "class":
		return p.parseClass(n)
	case "meta_property":
		meta, property, _ := strings.Cut(p.text(n), ".")
		start := p.idx0(n)
		return &ast.MetaProperty{
			Idx:      start,
			Meta:     &ast.Identifier{Idx: start, Name: strings.TrimSpace(meta)},
			Property: &ast.Identifier{Idx: p.idx1(n) - ast.Idx(len(strings.TrimSpace(property))), Name: strings.TrimSpace(property)},
		}
	case "object_pattern", "array_pattern":
		return p.parsePattern(n)
	case "import":
		// Dynamic import callee, not a variable.
		return &ast.InvalidExpression{From: p.idx0(n), To: p.idx1(n)}
	case "ERROR":
	default:
		if strings.HasPrefix(n.Kind(), "jsx_") {
			p.errorf(n, errUnsupported, "JSX")
		} else if !n.IsMissing() {
			p.errorf(n, errUnsupported, n.Kind())
		}
	}
	return &ast.InvalidExpression{From: p.idx0(n), To: p.idx1(n)}
}

// flattenSequence returns the operands of a possibly nested sequence
// expression in source order.
func flattenSequence(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for _, child := range namedChildren(n) {
		if child.Kind() == "sequence_expression" {
			out = append(out, flattenSequence(child)...)
			continue
		}
		out = append(out, child)
	}
	return out
}

func (p *parser) parseTemplate(n *sitter.Node, tag *ast.Expression) *ast.TemplateLiteral {
	lit := &ast.TemplateLiteral{
		OpenQuote:  p.idx0(n),
		CloseQuote: p.idx1(n) - 1,
		Tag:        tag,
	}
	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "template_substitution":
			lit.Expressions = append(lit.Expressions, *p.parseExpression(firstNamedChild(child)))
		default:
			lit.Elements = append(lit.Elements, ast.TemplateElement{Idx: p.idx0(child), Literal: p.text(child)})
		}
	}
	return lit
}

func (p *parser) parseCallExpression(n *sitter.Node) ast.Expr {
	callee := p.parseExpression(n.ChildByFieldName("function"))
	args := n.ChildByFieldName("arguments")
	if args != nil && args.Kind() == "template_string" {
		return p.parseTemplate(args, callee)
	}
	expr := &ast.CallExpression{Callee: callee}
	if args != nil {
		expr.LeftParenthesis = p.idx0(args)
		expr.ArgumentList = p.parseExpressions(namedChildren(args))
		expr.RightParenthesis = p.idx1(args) - 1
	}
	return expr
}

func (p *parser) parseArrayLiteral(n *sitter.Node) *ast.ArrayLiteral {
	return &ast.ArrayLiteral{
		LeftBracket:  p.idx0(n),
		RightBracket: p.idx1(n) - 1,
		Value:        p.parseExpressions(namedChildren(n)),
	}
}

func (p *parser) parseObjectLiteral(n *sitter.Node) *ast.ObjectLiteral {
	obj := &ast.ObjectLiteral{
		LeftBrace:  p.idx0(n),
		RightBrace: p.idx1(n) - 1,
	}
	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "pair":
			key, computed := p.parsePropertyKey(child.ChildByFieldName("key"))
			obj.Value = append(obj.Value, ast.Property{Prop: &ast.PropertyKeyed{
				Key:      key,
				Kind:     ast.PropertyKindValue,
				Value:    p.parseExpression(child.ChildByFieldName("value")),
				Computed: computed,
			}})
		case "shorthand_property_identifier":
			obj.Value = append(obj.Value, ast.Property{Prop: &ast.PropertyShort{Name: p.parseIdentifier(child)}})
		case "method_definition":
			key, computed := p.parsePropertyKey(child.ChildByFieldName("name"))
			obj.Value = append(obj.Value, ast.Property{Prop: &ast.PropertyKeyed{
				Key:      key,
				Kind:     methodKind(child),
				Value:    &ast.Expression{Expr: p.parseFunction(child)},
				Computed: computed,
			}})
		case "spread_element":
			obj.Value = append(obj.Value, ast.Property{Prop: &ast.SpreadElement{
				Expression: *p.parseExpression(firstNamedChild(child)),
			}})
		default:
			p.errorf(child, errUnsupported, child.Kind())
		}
	}
	return obj
}

// parsePropertyKey returns the key of a property, method or field and whether
// it is computed. Non-computed identifier keys are property names, not
// variable references.
func (p *parser) parsePropertyKey(n *sitter.Node) (*ast.Expression, bool) {
	if n == nil {
		return &ast.Expression{}, false
	}
	switch n.Kind() {
	case "computed_property_name":
		return p.parseExpression(firstNamedChild(n)), true
	case "property_identifier", "identifier":
		return &ast.Expression{Expr: p.parseIdentifier(n)}, false
	case "private_property_identifier":
		return &ast.Expression{Expr: &ast.PrivateIdentifier{Identifier: p.parseIdentifier(n)}}, false
	}
	return p.parseExpression(n), false
}

func methodKind(n *sitter.Node) ast.PropertyKind {
	name := n.ChildByFieldName("name")
	switch {
	case tokenBefore(n, "get", name):
		return ast.PropertyKindGet
	case tokenBefore(n, "set", name):
		return ast.PropertyKindSet
	}
	return ast.PropertyKindMethod
}

// parseFunction handles function declarations and expressions, generator
// variants, and method definitions (whose name is a property key and is
// therefore not recorded as the function name).
func (p *parser) parseFunction(n *sitter.Node) *ast.FunctionLiteral {
	name := n.ChildByFieldName("name")
	body := n.ChildByFieldName("body")
	fn := &ast.FunctionLiteral{
		Function:  p.idx0(n),
		Async:     tokenBefore(n, "async", name),
		Generator: strings.HasPrefix(n.Kind(), "generator_") || tokenBefore(n, "*", body),
	}
	if name != nil && n.Kind() != "method_definition" {
		fn.Name = p.parseIdentifier(name)
	}
	fn.ParameterList = p.parseParameters(n.ChildByFieldName("parameters"))
	if body != nil {
		fn.Body = p.parseBlockStatement(body)
	} else {
		fn.Body = &ast.BlockStatement{LeftBrace: p.idx1(n), RightBrace: p.idx1(n)}
	}
	return fn
}

func (p *parser) parseArrowFunction(n *sitter.Node) *ast.ArrowFunctionLiteral {
	fn := &ast.ArrowFunctionLiteral{
		Start: p.idx0(n),
		Async: hasToken(n, "async"),
	}
	if param := n.ChildByFieldName("parameter"); param != nil {
		fn.ParameterList = ast.ParameterList{
			Opening: p.idx0(param),
			List:    ast.VariableDeclarators{{Target: p.parseBindingTarget(param)}},
			Closing: p.idx1(param) - 1,
		}
	} else {
		fn.ParameterList = p.parseParameters(n.ChildByFieldName("parameters"))
	}

	body := n.ChildByFieldName("body")
	if body != nil && body.Kind() == "statement_block" {
		fn.Body = &ast.ConciseBody{Body: p.parseBlockStatement(body)}
	} else {
		fn.Body = &ast.ConciseBody{Body: p.parseExpression(body)}
	}
	return fn
}

func (p *parser) parseParameters(n *sitter.Node) ast.ParameterList {
	if n == nil {
		return ast.ParameterList{}
	}
	list := ast.ParameterList{
		Opening: p.idx0(n),
		Closing: p.idx1(n) - 1,
	}
	for _, param := range namedChildren(n) {
		switch param.Kind() {
		case "rest_pattern":
			list.Rest = p.parseBindingTarget(firstNamedChild(param))
		case "assignment_pattern":
			list.List = append(list.List, ast.VariableDeclarator{
				Target:      p.parseBindingTarget(param.ChildByFieldName("left")),
				Initializer: p.parseExpression(param.ChildByFieldName("right")),
			})
		default:
			list.List = append(list.List, ast.VariableDeclarator{Target: p.parseBindingTarget(param)})
		}
	}
	return list
}

func (p *parser) parseClass(n *sitter.Node) *ast.ClassLiteral {
	class := &ast.ClassLiteral{
		Class:      p.idx0(n),
		RightBrace: p.idx1(n) - 1,
	}
	if name := n.ChildByFieldName("name"); name != nil {
		class.Name = p.parseIdentifier(name)
	}
	for _, child := range namedChildren(n) {
		if child.Kind() == "class_heritage" {
			class.SuperClass = p.parseExpression(firstNamedChild(child))
		}
	}

	for _, member := range namedChildren(n.ChildByFieldName("body")) {
		switch member.Kind() {
		case "method_definition":
			name := member.ChildByFieldName("name")
			key, computed := p.parsePropertyKey(name)
			class.Body = append(class.Body, ast.ClassElement{Element: &ast.MethodDefinition{
				Idx:      p.idx0(member),
				Key:      key,
				Kind:     methodKind(member),
				Body:     p.parseFunction(member),
				Computed: computed,
				Static:   tokenBefore(member, "static", name),
			}})
		case "field_definition":
			property := member.ChildByFieldName("property")
			key, computed := p.parsePropertyKey(property)
			field := &ast.FieldDefinition{
				Idx:      p.idx0(member),
				Key:      key,
				Computed: computed,
				Static:   tokenBefore(member, "static", property),
			}
			if value := member.ChildByFieldName("value"); value != nil {
				field.Initializer = p.parseExpression(value)
			}
			class.Body = append(class.Body, ast.ClassElement{Element: field})
		case "class_static_block":
			class.Body = append(class.Body, ast.ClassElement{Element: &ast.ClassStaticBlock{
				Static: p.idx0(member),
				Block:  p.parseBlockStatement(member.ChildByFieldName("body")),
			}})
		case "decorator":
		default:
			p.errorf(member, errUnsupported, member.Kind())
		}
	}
	return class
}
