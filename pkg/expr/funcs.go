package expr

import (
	"fmt"
	"math"
)

// AngleMode selects how trigonometric functions interpret angles. The zero
// value is Degrees.
type AngleMode int

const (
	Degrees AngleMode = iota
	Radians
)

func (m AngleMode) String() string {
	if m == Radians {
		return "radians"
	}
	return "degrees"
}

type associativity int

const (
	leftAssoc associativity = iota
	rightAssoc
)

type operator struct {
	prec  int
	assoc associativity
	arity int
}

// unaryMinus is the symbol the parser gives a prefix -.
const unaryMinus = "u-"

var operators = map[string]operator{
	"+":        {prec: 1, assoc: leftAssoc, arity: 2},
	"-":        {prec: 1, assoc: leftAssoc, arity: 2},
	"*":        {prec: 2, assoc: leftAssoc, arity: 2},
	"/":        {prec: 2, assoc: leftAssoc, arity: 2},
	"%":        {prec: 2, assoc: leftAssoc, arity: 2},
	"^":        {prec: 3, assoc: rightAssoc, arity: 2},
	"!":        {prec: 4, assoc: leftAssoc, arity: 1},
	unaryMinus: {prec: 4, assoc: rightAssoc, arity: 1},
}

// lookupOperator panics for symbols the lexer never produces.
func lookupOperator(sym string) operator {
	op, ok := operators[sym]
	if !ok {
		panic(fmt.Sprintf("expr: no descriptor for operator %q", sym))
	}
	return op
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// funcKind enumerates the registered functions.
type funcKind int

const (
	fnSin funcKind = iota
	fnCos
	fnTan
	fnAsin
	fnAcos
	fnAtan
	fnSinh
	fnCosh
	fnTanh
	fnSqrt
	fnCbrt
	fnAbs
	fnLog
	fnLn
	fnExp
	fnFact
	fnRoot
	fnRound
	fnFloor
	fnCeil
	numFuncs
)

type function struct {
	name  string
	arity int
	eval  func(args []float64, mode AngleMode) float64
}

func one(f func(float64) float64) func([]float64, AngleMode) float64 {
	return func(args []float64, _ AngleMode) float64 { return f(args[0]) }
}

// trig converts a degree argument to radians before applying f.
func trig(f func(float64) float64) func([]float64, AngleMode) float64 {
	return func(args []float64, mode AngleMode) float64 {
		if mode == Degrees {
			return f(args[0] * (math.Pi / 180))
		}
		return f(args[0])
	}
}

// arcTrig converts the result of f to degrees.
func arcTrig(f func(float64) float64) func([]float64, AngleMode) float64 {
	return func(args []float64, mode AngleMode) float64 {
		r := f(args[0])
		if mode == Degrees {
			return r * (180 / math.Pi)
		}
		return r
	}
}

var functions = [numFuncs]function{
	fnSin:   {"sin", 1, trig(math.Sin)},
	fnCos:   {"cos", 1, trig(math.Cos)},
	fnTan:   {"tan", 1, trig(math.Tan)},
	fnAsin:  {"asin", 1, arcTrig(math.Asin)},
	fnAcos:  {"acos", 1, arcTrig(math.Acos)},
	fnAtan:  {"atan", 1, arcTrig(math.Atan)},
	fnSinh:  {"sinh", 1, one(math.Sinh)},
	fnCosh:  {"cosh", 1, one(math.Cosh)},
	fnTanh:  {"tanh", 1, one(math.Tanh)},
	fnSqrt:  {"sqrt", 1, one(math.Sqrt)},
	fnCbrt:  {"cbrt", 1, one(math.Cbrt)},
	fnAbs:   {"abs", 1, one(math.Abs)},
	fnLog:   {"log", 1, one(math.Log10)},
	fnLn:    {"ln", 1, one(math.Log)},
	fnExp:   {"exp", 1, one(math.Exp)},
	fnFact:  {"fact", 1, one(factorial)},
	fnRoot:  {"root", 2, root},
	fnRound: {"round", 1, one(roundHalfUp)},
	fnFloor: {"floor", 1, one(math.Floor)},
	fnCeil:  {"ceil", 1, one(math.Ceil)},
}

var funcIndex = buildFuncIndex()

func buildFuncIndex() map[string]funcKind {
	idx := make(map[string]funcKind, numFuncs)
	for k, f := range functions {
		if f.name == "" || f.eval == nil {
			panic(fmt.Sprintf("expr: function %d is not registered", k))
		}
		if f.arity < 1 || f.arity > 2 {
			panic(fmt.Sprintf("expr: function %s has unsupported arity %d", f.name, f.arity))
		}
		if _, dup := idx[f.name]; dup {
			panic("expr: duplicate function " + f.name)
		}
		if _, clash := constants[f.name]; clash {
			panic("expr: function " + f.name + " shadows a constant")
		}
		idx[f.name] = funcKind(k)
	}
	return idx
}

// Functions returns the names of the registered functions in registry order.
func Functions() []string {
	names := make([]string, 0, numFuncs)
	for _, f := range functions {
		names = append(names, f.name)
	}
	return names
}

// root computes the n-th root of x for root(x, n).
func root(args []float64, _ AngleMode) float64 {
	return math.Pow(args[0], 1/args[1])
}

// maxFactorial is the largest n whose factorial is finite in a float64.
const maxFactorial = 170

// factorial returns n! for a non-negative integral n and NaN otherwise.
func factorial(n float64) float64 {
	if !isFactorialArg(n) {
		return math.NaN()
	}
	if n > maxFactorial {
		return math.Inf(1)
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r
}

func isFactorialArg(n float64) bool {
	return n >= 0 && n == math.Trunc(n) && !math.IsInf(n, 0)
}

// roundHalfUp rounds to the nearest integer, with halves going toward +Inf.
func roundHalfUp(x float64) float64 {
	r := math.Round(x)
	if x < 0 && r-x == -0.5 {
		r++
	}
	return r
}
