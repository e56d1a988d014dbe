package calculator

import (
	"testing"

	"gradeyour401k/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestEvaluateScoreExpression(t *testing.T) {
	in := domain.ScoreInputs{
		Return3M:   0.02,
		Return6M:   0.05,
		Return12M:  0.1,
		Volatility: 0.16,
	}

	t.Run("default expression", func(t *testing.T) {
		score, err := EvaluateScoreExpression(DefaultScoreExpression, in, floatPtr(0.001))
		require.NoError(t, err)
		// .05 + .015 + .004 - .04 - .01
		require.InDelta(t, 0.019, score, 1e-9)
	})

	t.Run("missing expense ratio", func(t *testing.T) {
		score, err := EvaluateScoreExpression("return12m - 100 * expenseRatio", in, nil)
		require.NoError(t, err)
		require.InDelta(t, 0.1, score, 1e-9)
	})

	t.Run("functions", func(t *testing.T) {
		score, err := EvaluateScoreExpression("max(return3m, return6m) + abs(0 - volatility)", in, nil)
		require.NoError(t, err)
		require.InDelta(t, 0.21, score, 1e-9)
	})

	t.Run("integer result", func(t *testing.T) {
		score, err := EvaluateScoreExpression("1", in, nil)
		require.NoError(t, err)
		require.Equal(t, 1.0, score)
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := EvaluateScoreExpression("sharpe * 2", in, nil)
		require.Error(t, err)
	})

	t.Run("division by zero volatility", func(t *testing.T) {
		_, err := EvaluateScoreExpression("return12m / volatility", domain.ScoreInputs{Return12M: 0.1}, nil)
		require.Error(t, err)
	})
}
