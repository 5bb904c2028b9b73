package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Option configures Eval and Compile.
type Option func(*options)

type options struct {
	strict bool
}

// Strict makes characters that match no token rule and unbalanced
// parentheses fail the expression instead of being skipped.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Compile runs every stage up to the parser and returns the postfix sequence
// for expression.
func Compile(expression string, opts ...Option) ([]Token, error) {
	o := newOptions(opts)

	toks, err := Tokenize(Normalize(expression))
	if err != nil && o.strict {
		return nil, err
	}
	rpn, err := ToPostfix(InsertImplicitMultiplication(toks))
	if err != nil && o.strict {
		return nil, err
	}
	return rpn, nil
}

// Eval evaluates expression and reports why it failed, if it did. Blank input
// evaluates to 0. Any panic inside the pipeline is returned as an
// InternalFault.
func Eval(expression string, mode AngleMode, opts ...Option) (v float64, err error) {
	if strings.TrimSpace(expression) == "" {
		return 0, nil
	}

	defer func() {
		if p := recover(); p != nil {
			v = math.NaN()
			err = errors.Wrapf(&Error{Kind: InternalFault, Symbol: fmt.Sprint(p)}, "evaluating %q", expression)
		}
	}()

	rpn, err := Compile(expression, opts...)
	if err != nil {
		return math.NaN(), errors.Wrapf(err, "evaluating %q", expression)
	}
	v, err = EvalPostfix(rpn, mode)
	if err != nil {
		return math.NaN(), errors.Wrapf(err, "evaluating %q", expression)
	}
	return v, nil
}

// Evaluate evaluates expression and returns NaN on any failure. Blank input
// evaluates to 0.
func Evaluate(expression string, mode AngleMode) float64 {
	v, err := Eval(expression, mode)
	if err != nil {
		return math.NaN()
	}
	return v
}
