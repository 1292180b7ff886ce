package ast

// HasUseStrict reports whether the directive prologue of n, the leading run
// of string-literal expression statements, contains "use strict".
func (n Statements) HasUseStrict() bool {
	for i := range n {
		stmt, ok := n[i].Stmt.(*ExpressionStatement)
		if !ok {
			return false
		}
		lit, ok := stmt.Expression.Unwrap().(*StringLiteral)
		if !ok {
			return false
		}
		// Escaped forms such as "use\x20strict" are not directives.
		if lit.Raw == `"use strict"` || lit.Raw == `'use strict'` {
			return true
		}
	}
	return false
}

// IsLexical reports whether the declaration is let or const.
func (n *VariableDeclaration) IsLexical() bool {
	return n.Token.IsLexical()
}
