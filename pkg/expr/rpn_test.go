package expr

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func op(sym string) Token {
	return Token{Kind: Operator, Text: sym}
}

func fn(name string) Token {
	return Token{Kind: Function, Text: name}
}

func TestRPNEvaluator(t *testing.T) {
	t.Run("pushOperator", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(10)
		rpn.pushOperand(20)

		require.NoError(t, rpn.pushOperator(op("+")))
		// only one operand in stack so the next operator push should fail
		err := rpn.pushOperator(op("-"))
		require.Equal(t, StackUnderflow, KindOf(err))
	})

	t.Run("unknownOperator", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(1)
		rpn.pushOperand(2)
		require.Equal(t, UnknownSymbol, KindOf(rpn.pushOperator(op("&"))))
	})

	t.Run("unusedOperands", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		rpn.pushOperand(1)
		rpn.pushOperand(2)

		v, err := rpn.result()
		require.Equal(t, MalformedResult, KindOf(err))
		require.True(t, math.IsNaN(v))
	})

	t.Run("emptyStack", func(t *testing.T) {
		rpn := &rpnEvaluator{}
		_, err := rpn.result()
		require.Equal(t, MalformedResult, KindOf(err))
	})

	t.Run("resultCalculation", func(t *testing.T) {
		testCases := []struct {
			name       string
			operands   []float64
			operators  []Token
			wantResult float64
		}{
			{
				name:       "add",
				operands:   []float64{10, 2},
				operators:  []Token{op("+")},
				wantResult: 12,
			},
			{
				name:       "subtract",
				operands:   []float64{10, 2},
				operators:  []Token{op("-")},
				wantResult: 8,
			},
			{
				name:       "multiply",
				operands:   []float64{10, 2},
				operators:  []Token{op("*")},
				wantResult: 20,
			},
			{
				name:       "divide",
				operands:   []float64{10, 2},
				operators:  []Token{op("/")},
				wantResult: 5,
			},
			{
				name:       "remainder",
				operands:   []float64{-10, 4},
				operators:  []Token{op("%")},
				wantResult: -2,
			},
			{
				name:       "power",
				operands:   []float64{2, 10},
				operators:  []Token{op("^")},
				wantResult: 1024,
			},
			{
				name:       "negate",
				operands:   []float64{7},
				operators:  []Token{op(unaryMinus)},
				wantResult: -7,
			},
			{
				name:       "factorial",
				operands:   []float64{5},
				operators:  []Token{op("!")},
				wantResult: 120,
			},
			{
				name:       "root",
				operands:   []float64{16, 2},
				operators:  []Token{fn("root")},
				wantResult: 4,
			},
			{
				name:       "multiply_subract_add",
				operands:   []float64{10, 2, 5, 9},
				operators:  []Token{op("+"), op("-"), op("*")},
				wantResult: -120,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				rpn := &rpnEvaluator{}
				for _, v := range tc.operands {
					rpn.pushOperand(v)
				}

				for _, tok := range tc.operators {
					require.NoError(t, rpn.push(tok))
				}

				haveResult, err := rpn.result()
				require.NoError(t, err)
				require.Equal(t, tc.wantResult, haveResult)
			})
		}
	})
}

func TestEvalPostfix(t *testing.T) {
	testCases := []struct {
		name     string
		rpn      []Token
		mode     AngleMode
		want     float64
		wantKind ErrorKind
	}{
		{
			name: "constant",
			rpn:  []Token{{Kind: Constant, Text: "pi"}},
			want: math.Pi,
		},
		{
			name: "degrees",
			rpn:  []Token{{Kind: Number, Text: "0"}, fn("cos")},
			want: 1,
		},
		{
			name: "radians",
			rpn:  []Token{{Kind: Constant, Text: "pi"}, fn("cos")},
			mode: Radians,
			want: -1,
		},
		{
			name:     "unknownFunction",
			rpn:      []Token{{Kind: Number, Text: "1"}, fn("foo")},
			wantKind: UnknownSymbol,
		},
		{
			name:     "unknownConstant",
			rpn:      []Token{{Kind: Constant, Text: "tau"}},
			wantKind: UnknownSymbol,
		},
		{
			name:     "parenthesis",
			rpn:      []Token{{Kind: LeftParen, Text: "("}},
			wantKind: UnknownSymbol,
		},
		{
			name:     "functionUnderflow",
			rpn:      []Token{{Kind: Number, Text: "8"}, fn("root")},
			wantKind: StackUnderflow,
		},
		{
			name:     "factorialOfFraction",
			rpn:      []Token{{Kind: Number, Text: "2.5"}, op("!")},
			wantKind: DomainError,
		},
		{
			name:     "factFunctionOfNegative",
			rpn:      []Token{{Kind: Number, Text: "3"}, op(unaryMinus), fn("fact")},
			wantKind: DomainError,
		},
		{
			name:     "empty",
			wantKind: MalformedResult,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			have, err := EvalPostfix(tc.rpn, tc.mode)
			if tc.wantKind != 0 {
				require.Equal(t, tc.wantKind, KindOf(err))
				require.True(t, math.IsNaN(have))
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tc.want, have, 1e-12)
		})
	}
}

func TestEvalPostfixOverflowingLiteral(t *testing.T) {
	have, err := EvalPostfix([]Token{{Kind: Number, Text: "1" + strings.Repeat("0", 400)}}, Degrees)
	require.NoError(t, err)
	require.True(t, math.IsInf(have, 1))
}
