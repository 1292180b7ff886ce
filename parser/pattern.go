package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/t14raptor/go-scope/ast"
	"github.com/t14raptor/go-scope/token"
)

// parseBindingTarget converts the target of a declaration, parameter or catch
// clause.
func (p *parser) parseBindingTarget(n *sitter.Node) *ast.BindingTarget {
	if n == nil {
		return &ast.BindingTarget{Target: &ast.InvalidExpression{}}
	}
	return &ast.BindingTarget{Target: p.parseTarget(n)}
}

// parseAssignmentTarget converts the left-hand side of an assignment, an
// update expression or a for-in/of head without a declaration.
func (p *parser) parseAssignmentTarget(n *sitter.Node) *ast.Expression {
	if n == nil {
		return &ast.Expression{Expr: &ast.InvalidExpression{}}
	}
	switch n.Kind() {
	case "parenthesized_expression":
		return p.parseAssignmentTarget(firstNamedChild(n))
	case "object_pattern", "array_pattern":
		return &ast.Expression{Expr: p.parsePattern(n)}
	}
	return p.parseExpression(n)
}

func (p *parser) parseTarget(n *sitter.Node) ast.Target {
	switch n.Kind() {
	case "identifier", "undefined", "shorthand_property_identifier_pattern":
		return p.parseIdentifier(n)
	case "object_pattern", "array_pattern":
		return p.parsePattern(n)
	case "member_expression", "subscript_expression":
		if target, ok := p.parseExpr(n).(ast.Target); ok {
			return target
		}
	case "parenthesized_expression":
		return p.parseTarget(firstNamedChild(n))
	case "ERROR":
	default:
		if !n.IsMissing() {
			p.errorf(n, errUnexpectedToken, n.Kind())
		}
	}
	return &ast.InvalidExpression{From: p.idx0(n), To: p.idx1(n)}
}

// parseElement converts a pattern element, wrapping a default value in an
// assignment expression.
func (p *parser) parseElement(n *sitter.Node) ast.Expression {
	if n.Kind() == "assignment_pattern" {
		return ast.Expression{Expr: &ast.AssignExpression{
			Operator: token.Assign,
			Left:     &ast.Expression{Expr: p.parseTarget(n.ChildByFieldName("left"))},
			Right:    p.parseExpression(n.ChildByFieldName("right")),
		}}
	}
	return ast.Expression{Expr: p.parseTarget(n)}
}

func (p *parser) parsePattern(n *sitter.Node) ast.Pattern {
	if n.Kind() == "array_pattern" {
		pattern := &ast.ArrayPattern{
			LeftBracket:  p.idx0(n),
			RightBracket: p.idx1(n) - 1,
		}
		for _, child := range namedChildren(n) {
			if child.Kind() == "rest_pattern" {
				rest := p.parseElement(firstNamedChild(child))
				pattern.Rest = &rest
				continue
			}
			pattern.Elements = append(pattern.Elements, p.parseElement(child))
		}
		return pattern
	}

	pattern := &ast.ObjectPattern{
		LeftBrace:  p.idx0(n),
		RightBrace: p.idx1(n) - 1,
	}
	for _, child := range namedChildren(n) {
		switch child.Kind() {
		case "shorthand_property_identifier_pattern":
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyShort{
				Name: p.parseIdentifier(child),
			}})
		case "object_assignment_pattern":
			left := child.ChildByFieldName("left")
			right := p.parseExpression(child.ChildByFieldName("right"))
			if left != nil && left.Kind() == "shorthand_property_identifier_pattern" {
				pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyShort{
					Name:        p.parseIdentifier(left),
					Initializer: right,
				}})
				continue
			}
			p.errorf(child, errUnexpectedToken, child.Kind())
		case "pair_pattern":
			key, computed := p.parsePropertyKey(child.ChildByFieldName("key"))
			value := p.parseElement(child.ChildByFieldName("value"))
			pattern.Properties = append(pattern.Properties, ast.Property{Prop: &ast.PropertyKeyed{
				Key:      key,
				Kind:     ast.PropertyKindValue,
				Value:    &value,
				Computed: computed,
			}})
		case "rest_pattern":
			rest := ast.Expression{Expr: p.parseTarget(firstNamedChild(child))}
			pattern.Rest = &rest
		default:
			p.errorf(child, errUnexpectedToken, child.Kind())
		}
	}
	return pattern
}
