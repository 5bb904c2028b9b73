package calculator

import (
	"context"
	"strings"

	"github.com/charithe/scicalc/pkg/expr"
	"github.com/pkg/errors"
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
	"go.uber.org/zap"
)

var (
	mEvaluations      = stats.Int64("calculator/evaluations", "Number of evaluated expressions", stats.UnitNone)
	mExpressionLength = stats.Int64("calculator/expression_length", "Length of evaluated expressions", stats.UnitBytes)

	keyOutcome = mustNewKey("outcome")
)

func mustNewKey(name string) tag.Key {
	k, err := tag.NewKey(name)
	if err != nil {
		panic(err)
	}
	return k
}

// DefaultViews are the views of the calculator measures. Register them with
// view.Register to export them.
var DefaultViews = []*view.View{
	{
		Name:        "calculator/evaluations",
		Description: "Count of evaluated expressions by outcome",
		Measure:     mEvaluations,
		TagKeys:     []tag.Key{keyOutcome},
		Aggregation: view.Count(),
	},
	{
		Name:        "calculator/expression_length",
		Description: "Distribution of expression lengths",
		Measure:     mExpressionLength,
		Aggregation: view.Distribution(0, 8, 16, 32, 64, 128, 256, 512, 1024, 4096),
	},
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Cause(err) == ErrExpressionTooLong:
		return "too_long"
	}
	if k := expr.KindOf(err); k != 0 {
		return strings.Replace(k.String(), " ", "_", -1)
	}
	return "error"
}

func record(ctx context.Context, expression string, err error) {
	ctx, tagErr := tag.New(ctx, tag.Upsert(keyOutcome, outcome(err)))
	if tagErr != nil {
		zap.S().Warnw("Failed to tag measurement", "error", tagErr)
	}
	stats.Record(ctx, mEvaluations.M(1), mExpressionLength.M(int64(len(expression))))
}
