// Package token defines the keyword and operator tokens carried by AST nodes.
package token

import (
	"strconv"
)

// Token is the set of keyword and operator tokens in JavaScript.
type Token int

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t == 0 {
		return "UNKNOWN"
	}
	if t < Token(len(token2string)) && token2string[t] != "" {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Lookup returns the token spelled by literal, e.g. "+=" or "let".
func Lookup(literal string) (Token, bool) {
	tkn, ok := string2token[literal]
	return tkn, ok
}

// IsAssign reports whether t is "=" or a compound assignment operator.
func (t Token) IsAssign() bool {
	return t >= Assign && t <= UnsignedShiftRightAssign ||
		t >= LogicalAndAssign && t <= CoalesceAssign
}

// IsCompoundAssign reports whether t reads its target before writing it.
func (t Token) IsCompoundAssign() bool {
	return t.IsAssign() && t != Assign
}

// IsLexical reports whether a declaration introduced by t is block scoped.
func (t Token) IsLexical() bool {
	return t == Let || t == Const
}
