package ast

type (
	FunctionLiteral struct {
		Function      Idx
		Name          *Identifier `optional:"true"`
		ParameterList ParameterList
		Body          *BlockStatement

		Async, Generator bool
	}

	ParameterList struct {
		Opening Idx
		List    VariableDeclarators
		Rest    *BindingTarget `optional:"true"`
		Closing Idx
	}

	ArrowFunctionLiteral struct {
		Start         Idx
		ParameterList ParameterList
		Body          *ConciseBody
		Async         bool
	}

	ConciseBody struct {
		Body Body
	}

	// Body is either a *BlockStatement or an *Expression.
	Body interface {
		VisitableNode
		_conciseBody()
	}
)

func (*BlockStatement) _conciseBody() {}
func (*Expression) _conciseBody()     {}

func (*FunctionLiteral) _expr()      {}
func (*ArrowFunctionLiteral) _expr() {}
