package token

const (
	_ Token = iota

	Illegal

	Plus      // +
	Minus     // -
	Multiply  // *
	Exponent  // **
	Slash     // /
	Remainder // %

	And                // &
	Or                 // |
	ExclusiveOr        // ^
	ShiftLeft          // <<
	ShiftRight         // >>
	UnsignedShiftRight // >>>

	Assign          // =
	AddAssign       // +=
	SubtractAssign  // -=
	MultiplyAssign  // *=
	ExponentAssign  // **=
	QuotientAssign  // /=
	RemainderAssign // %=

	AndAssign                // &=
	OrAssign                 // |=
	ExclusiveOrAssign        // ^=
	ShiftLeftAssign          // <<=
	ShiftRightAssign         // >>=
	UnsignedShiftRightAssign // >>>=

	LogicalAnd       // &&
	LogicalOr        // ||
	Coalesce         // ??
	LogicalAndAssign // &&=
	LogicalOrAssign  // ||=
	CoalesceAssign   // ??=

	Increment // ++
	Decrement // --

	Equal          // ==
	StrictEqual    // ===
	NotEqual       // !=
	StrictNotEqual // !==
	Less           // <
	Greater        // >
	LessOrEqual    // <=
	GreaterOrEqual // >=

	Not        // !
	BitwiseNot // ~

	In
	InstanceOf
	Of

	Typeof
	Void
	Delete

	Var
	Let
	Const
)

var token2string = [...]string{
	Illegal:                  "ILLEGAL",
	Plus:                     "+",
	Minus:                    "-",
	Multiply:                 "*",
	Exponent:                 "**",
	Slash:                    "/",
	Remainder:                "%",
	And:                      "&",
	Or:                       "|",
	ExclusiveOr:              "^",
	ShiftLeft:                "<<",
	ShiftRight:               ">>",
	UnsignedShiftRight:       ">>>",
	Assign:                   "=",
	AddAssign:                "+=",
	SubtractAssign:           "-=",
	MultiplyAssign:           "*=",
	ExponentAssign:           "**=",
	QuotientAssign:           "/=",
	RemainderAssign:          "%=",
	AndAssign:                "&=",
	OrAssign:                 "|=",
	ExclusiveOrAssign:        "^=",
	ShiftLeftAssign:          "<<=",
	ShiftRightAssign:         ">>=",
	UnsignedShiftRightAssign: ">>>=",
	LogicalAnd:               "&&",
	LogicalOr:                "||",
	Coalesce:                 "??",
	LogicalAndAssign:         "&&=",
	LogicalOrAssign:          "||=",
	CoalesceAssign:           "??=",
	Increment:                "++",
	Decrement:                "--",
	Equal:                    "==",
	StrictEqual:              "===",
	NotEqual:                 "!=",
	StrictNotEqual:           "!==",
	Less:                     "<",
	Greater:                  ">",
	LessOrEqual:              "<=",
	GreaterOrEqual:           ">=",
	Not:                      "!",
	BitwiseNot:               "~",
	In:                       "in",
	InstanceOf:               "instanceof",
	Of:                       "of",
	Typeof:                   "typeof",
	Void:                     "void",
	Delete:                   "delete",
	Var:                      "var",
	Let:                      "let",
	Const:                    "const",
}

var string2token = func() map[string]Token {
	m := make(map[string]Token, len(token2string))
	for tkn, str := range token2string {
		if str != "" {
			m[str] = Token(tkn)
		}
	}
	return m
}()
