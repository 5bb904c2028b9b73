package expr

import (
	"math"
	"strconv"
)

// rpnEvaluator implements a postfix evaluator over float64 operands.
// This is not thread-safe and should only be accessed by a single goroutine.
type rpnEvaluator struct {
	stack []float64
	mode  AngleMode
}

func (r *rpnEvaluator) pushOperand(v float64) {
	r.stack = append(r.stack, v)
}

func (r *rpnEvaluator) pop() float64 {
	v := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return v
}

// popN pops n operands and returns them in push order.
func (r *rpnEvaluator) popN(n int) []float64 {
	args := make([]float64, n)
	copy(args, r.stack[len(r.stack)-n:])
	r.stack = r.stack[:len(r.stack)-n]
	return args
}

func (r *rpnEvaluator) pushOperator(tok Token) error {
	op, ok := operators[tok.Text]
	if !ok {
		return newError(UnknownSymbol, tok)
	}
	if len(r.stack) < op.arity {
		return newError(StackUnderflow, tok)
	}

	if op.arity == 1 {
		v := r.pop()
		switch tok.Text {
		case unaryMinus:
			r.pushOperand(-v)
		case "!":
			if !isFactorialArg(v) {
				return newError(DomainError, tok)
			}
			r.pushOperand(factorial(v))
		default:
			return newError(UnknownSymbol, tok)
		}
		return nil
	}

	v2 := r.pop()
	v1 := r.pop()
	var result float64

	switch tok.Text {
	case "+":
		result = v1 + v2
	case "-":
		result = v1 - v2
	case "*":
		result = v1 * v2
	case "/":
		result = v1 / v2
	case "%":
		result = math.Mod(v1, v2)
	case "^":
		result = math.Pow(v1, v2)
	default:
		return newError(UnknownSymbol, tok)
	}

	r.pushOperand(result)
	return nil
}

func (r *rpnEvaluator) pushFunction(tok Token) error {
	k, ok := funcIndex[tok.Text]
	if !ok {
		return newError(UnknownSymbol, tok)
	}
	f := functions[k]
	if len(r.stack) < f.arity {
		return newError(StackUnderflow, tok)
	}
	args := r.popN(f.arity)
	if k == fnFact && !isFactorialArg(args[0]) {
		return newError(DomainError, tok)
	}
	r.pushOperand(f.eval(args, r.mode))
	return nil
}

func (r *rpnEvaluator) push(tok Token) error {
	switch tok.Kind {
	case Number:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !isRangeError(err) {
			return newError(UnknownSymbol, tok)
		}
		r.pushOperand(v)
	case Constant:
		v, ok := constants[tok.Text]
		if !ok {
			return newError(UnknownSymbol, tok)
		}
		r.pushOperand(v)
	case Operator:
		return r.pushOperator(tok)
	case Function:
		return r.pushFunction(tok)
	default:
		return newError(UnknownSymbol, tok)
	}
	return nil
}

// isRangeError reports whether a ParseFloat error only signals overflow, in
// which case the returned value is already ±Inf.
func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

func (r *rpnEvaluator) result() (float64, error) {
	if len(r.stack) != 1 {
		return math.NaN(), &Error{Kind: MalformedResult}
	}
	return r.pop(), nil
}

// EvalPostfix executes a postfix token sequence and returns its single
// result. Division by zero and other IEEE-754 edge cases produce Inf or NaN
// results without an error.
func EvalPostfix(rpn []Token, mode AngleMode) (float64, error) {
	r := &rpnEvaluator{
		stack: make([]float64, 0, len(rpn)),
		mode:  mode,
	}
	for _, tok := range rpn {
		if err := r.push(tok); err != nil {
			return math.NaN(), err
		}
	}
	return r.result()
}
