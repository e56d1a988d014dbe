package domain

// Symbol is a tradable fund as offered by one distribution provider.
type Symbol struct {
	Symbol       string
	Provider     Provider
	Name         *string
	AssetClass   AssetClass
	Style        *string
	Active       bool
	ExpenseRatio *float64
}

// ScoredSymbol joins a symbol with its score for one as-of date. A nil
// score means no score was computed.
type ScoredSymbol struct {
	Symbol
	Score *float64
}

func (s ScoredSymbol) ScoreOr(missing float64) float64 {
	if s.Score == nil {
		return missing
	}
	return *s.Score
}
