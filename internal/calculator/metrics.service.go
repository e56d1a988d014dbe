package calculator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gradeyour401k/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const tradingDaysPerYear = 252

// CalculateScoreInputs derives trailing returns and annualized volatility
// from daily adjusted closes up to asOf. At least three months of history
// are required; longer lookbacks fall back to the earliest close.
func CalculateScoreInputs(prices []domain.AssetPrice, asOf time.Time) (*domain.ScoreInputs, error) {
	history := []domain.AssetPrice{}
	for _, p := range prices {
		if !p.Date.After(asOf) && p.Price.IsPositive() {
			history = append(history, p)
		}
	}
	if len(history) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 prices, got %d", len(history))
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	threeMonthsAgo := asOf.AddDate(0, -3, 0)
	if history[0].Date.After(threeMonthsAgo) {
		return nil, fmt.Errorf("insufficient price history: earliest price is %s", history[0].Date.Format(time.DateOnly))
	}

	latest := history[len(history)-1].Price
	trailingReturn := func(since time.Time) float64 {
		start := priceOnOrBefore(history, since)
		return latest.Sub(start).Div(start).InexactFloat64()
	}

	returns := dailyReturns(history)
	if len(returns) > tradingDaysPerYear {
		returns = returns[len(returns)-tradingDaysPerYear:]
	}
	if len(returns) < 2 {
		return nil, fmt.Errorf("cannot calculate stdev of < 2 returns")
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev: %w", err)
	}

	return &domain.ScoreInputs{
		Return3M:   trailingReturn(threeMonthsAgo),
		Return6M:   trailingReturn(asOf.AddDate(0, -6, 0)),
		Return12M:  trailingReturn(asOf.AddDate(-1, 0, 0)),
		Volatility: stdev * math.Sqrt(tradingDaysPerYear),
	}, nil
}

// priceOnOrBefore expects history sorted ascending and falls back to the
// earliest price.
func priceOnOrBefore(history []domain.AssetPrice, t time.Time) decimal.Decimal {
	out := history[0].Price
	for _, p := range history {
		if p.Date.After(t) {
			break
		}
		out = p.Price
	}
	return out
}

func dailyReturns(history []domain.AssetPrice) []float64 {
	returns := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		prev := history[i-1].Price
		ret := history[i].Price.Sub(prev).Div(prev).InexactFloat64()
		returns = append(returns, ret)
	}
	return returns
}
