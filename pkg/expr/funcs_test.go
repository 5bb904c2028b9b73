package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFunctionRegistry(t *testing.T) {
	names := Functions()
	require.Len(t, names, int(numFuncs))
	require.Equal(t, "sin", names[0])

	for _, name := range names {
		k, ok := funcIndex[name]
		require.True(t, ok, name)
		require.Equal(t, name, functions[k].name)
	}
	require.Equal(t, 2, functions[funcIndex["root"]].arity)
}

func TestOperatorTable(t *testing.T) {
	for _, sym := range Operators {
		require.NotPanics(t, func() { lookupOperator(string(sym)) })
	}
	require.NotPanics(t, func() { lookupOperator(unaryMinus) })
	require.Panics(t, func() { lookupOperator("&") })
}

func TestFactorial(t *testing.T) {
	require.Equal(t, 1.0, factorial(0))
	require.Equal(t, 1.0, factorial(1))
	require.Equal(t, 3628800.0, factorial(10))
	require.False(t, math.IsInf(factorial(maxFactorial), 0))
	require.True(t, math.IsInf(factorial(maxFactorial+1), 1))
	require.True(t, math.IsInf(factorial(1e300), 1))
	require.True(t, math.IsNaN(factorial(-1)))
	require.True(t, math.IsNaN(factorial(0.5)))
	require.True(t, math.IsNaN(factorial(math.Inf(1))))
	require.True(t, math.IsNaN(factorial(math.NaN())))
}

func TestRoundHalfUp(t *testing.T) {
	testCases := []struct {
		in, want float64
	}{
		{in: 2.5, want: 3},
		{in: 2.4, want: 2},
		{in: -2.5, want: -2},
		{in: -2.6, want: -3},
		{in: 0.49999999999999994, want: 0},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, roundHalfUp(tc.in), "round(%v)", tc.in)
	}
}

func TestTrigAngleModes(t *testing.T) {
	sin := functions[fnSin].eval
	asin := functions[fnAsin].eval

	require.InDelta(t, 1, sin([]float64{90}, Degrees), 1e-9)
	require.InDelta(t, 1, sin([]float64{math.Pi / 2}, Radians), 1e-9)
	require.InDelta(t, 30, asin([]float64{0.5}, Degrees), 1e-9)
	require.InDelta(t, math.Pi/6, asin([]float64{0.5}, Radians), 1e-9)

	// hyperbolic functions ignore the angle mode
	sinh := functions[fnSinh].eval
	require.Equal(t, sinh([]float64{1}, Degrees), sinh([]float64{1}, Radians))
}
