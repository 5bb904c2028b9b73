package calculator

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/charithe/scicalc/pkg/expr"
	"github.com/charithe/scicalc/pkg/v1pb"
	"github.com/pkg/errors"
)

// DefaultMaxExpressionLength is the default limit on the number of runes in an
// expression. Parenthesis nesting is not otherwise bounded.
const DefaultMaxExpressionLength = 4096

// Config holds the evaluation settings shared by the service and Local.
type Config struct {
	// MaxExpressionLength is the maximum number of runes in an expression.
	// Zero disables the limit.
	MaxExpressionLength int
	// Strict rejects unknown characters and unbalanced parentheses instead of
	// skipping them.
	Strict bool
}

func DefaultConfig() Config {
	return Config{MaxExpressionLength: DefaultMaxExpressionLength}
}

// ErrExpressionTooLong is returned for expressions over the configured limit.
var ErrExpressionTooLong = errors.New("expression too long")

func (c Config) eval(expression string, mode expr.AngleMode) (float64, error) {
	if c.MaxExpressionLength > 0 && utf8.RuneCountInString(expression) > c.MaxExpressionLength {
		return math.NaN(), errors.Wrapf(ErrExpressionTooLong, "%d runes allowed", c.MaxExpressionLength)
	}

	var opts []expr.Option
	if c.Strict {
		opts = append(opts, expr.Strict())
	}
	return expr.Eval(expression, mode, opts...)
}

// Evaluator evaluates a single expression.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string, mode expr.AngleMode) (float64, error)
}

// Local evaluates expressions in-process.
type Local struct {
	Config Config
}

func (l Local) Evaluate(ctx context.Context, expression string, mode expr.AngleMode) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return l.Config.eval(expression, mode)
}

// EvaluateAll evaluates every expression with e. Failures are reported per
// result, in input order.
func EvaluateAll(ctx context.Context, e Evaluator, expressions []string, mode expr.AngleMode) []*v1pb.EvaluateResult {
	results := make([]*v1pb.EvaluateResult, len(expressions))
	for i, expression := range expressions {
		results[i] = newResult(e.Evaluate(ctx, expression, mode))
	}
	return results
}

func newResult(v float64, err error) *v1pb.EvaluateResult {
	if err != nil {
		return &v1pb.EvaluateResult{
			Value:     v,
			ErrorKind: toErrorKind(err),
			Error:     err.Error(),
		}
	}
	return &v1pb.EvaluateResult{Value: v}
}

func toAngleMode(m v1pb.AngleMode) expr.AngleMode {
	if m == v1pb.RADIANS {
		return expr.Radians
	}
	return expr.Degrees
}

func fromAngleMode(m expr.AngleMode) v1pb.AngleMode {
	if m == expr.Radians {
		return v1pb.RADIANS
	}
	return v1pb.DEGREES
}

var errorKinds = map[expr.ErrorKind]v1pb.ErrorKind{
	expr.LexicalReject:    v1pb.LEXICAL_REJECT,
	expr.StackUnderflow:   v1pb.STACK_UNDERFLOW,
	expr.UnknownSymbol:    v1pb.UNKNOWN_SYMBOL,
	expr.MalformedResult:  v1pb.MALFORMED_RESULT,
	expr.DomainError:      v1pb.DOMAIN_ERROR,
	expr.MismatchedParens: v1pb.MISMATCHED_PARENS,
	expr.InternalFault:    v1pb.INTERNAL_FAULT,
}

func toErrorKind(err error) v1pb.ErrorKind {
	if errors.Cause(err) == ErrExpressionTooLong {
		return v1pb.EXPRESSION_TOO_LONG
	}
	if k, ok := errorKinds[expr.KindOf(err)]; ok {
		return k
	}
	if err != nil {
		return v1pb.INTERNAL_FAULT
	}
	return v1pb.NONE
}
