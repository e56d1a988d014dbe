package calculator

import (
	"fmt"
	"math"

	"gradeyour401k/internal/domain"

	"github.com/maja42/goval"
)

// DefaultScoreExpression favors trailing returns, discounted by volatility
// and fees.
const DefaultScoreExpression = "0.5 * return12m + 0.3 * return6m + 0.2 * return3m - 0.25 * volatility - 10 * expenseRatio"

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

var scoreFunctions = map[string]goval.ExpressionFunction{
	"min": func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("min needs at least one argument")
		}
		out := math.Inf(1)
		for _, a := range args {
			f, err := toFloat(a)
			if err != nil {
				return nil, err
			}
			out = math.Min(out, f)
		}
		return out, nil
	},
	"max": func(args ...interface{}) (interface{}, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("max needs at least one argument")
		}
		out := math.Inf(-1)
		for _, a := range args {
			f, err := toFloat(a)
			if err != nil {
				return nil, err
			}
			out = math.Max(out, f)
		}
		return out, nil
	},
	"abs": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("abs takes exactly one argument")
		}
		f, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return math.Abs(f), nil
	},
}

// EvaluateScoreExpression scores one symbol. A missing expense ratio
// evaluates as 0.
func EvaluateScoreExpression(expression string, in domain.ScoreInputs, expenseRatio *float64) (float64, error) {
	er := 0.0
	if expenseRatio != nil {
		er = *expenseRatio
	}
	variables := map[string]interface{}{
		"return3m":     in.Return3M,
		"return6m":     in.Return6M,
		"return12m":    in.Return12M,
		"volatility":   in.Volatility,
		"expenseRatio": er,
	}

	result, err := goval.NewEvaluator().Evaluate(expression, variables, scoreFunctions)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate score expression: %w", err)
	}

	r, err := toFloat(result)
	if err != nil {
		return 0, fmt.Errorf("failed to convert score to float: %w", err)
	} else if math.IsNaN(r) {
		return 0, fmt.Errorf("calculated NaN as score")
	} else if math.IsInf(r, 0) {
		return 0, fmt.Errorf("calculated infinity as score")
	}

	return r, nil
}
