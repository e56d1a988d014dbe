package calculator

import (
	"testing"

	"gradeyour401k/internal/domain"

	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}

func newSymbol(ticker string, class domain.AssetClass, style string, expenseRatio *float64, score *float64) domain.ScoredSymbol {
	s := domain.ScoredSymbol{
		Symbol: domain.Symbol{
			Symbol:       ticker,
			Provider:     domain.ProviderFidelity,
			AssetClass:   class,
			Active:       true,
			ExpenseRatio: expenseRatio,
		},
		Score: score,
	}
	if style != "" {
		s.Style = strPtr(style)
	}
	return s
}

func tickerOf(s *domain.ScoredSymbol) string {
	if s == nil {
		return ""
	}
	return s.Symbol.Symbol
}

func tickers(in []domain.ScoredSymbol) []string {
	out := []string{}
	for _, s := range in {
		out = append(out, s.Symbol.Symbol)
	}
	return out
}

func TestSelectCoreAndSatellites(t *testing.T) {
	cfg := DefaultModelConfig()

	t.Run("keyword match beats allow-list", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("FSKAX", domain.AssetClassEquity, "Large Blend", floatPtr(0.00015), nil),
			newSymbol("ACMEX", domain.AssetClassEquity, "Total Market Index", floatPtr(0.002), nil),
		}
		sel := SelectCoreAndSatellites(universe, cfg)
		require.Equal(t, "ACMEX", tickerOf(sel.USEquityCore))
		require.Equal(t, []string{"FSKAX"}, tickers(sel.EquitySatellites))
	})

	t.Run("cheapest keyword match wins and ties keep input order", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("AAA", domain.AssetClassEquity, "S&P 500 Index", nil, nil),
			newSymbol("BBB", domain.AssetClassEquity, "S&P 500 Index", floatPtr(0.001), nil),
			newSymbol("CCC", domain.AssetClassEquity, "S&P 500 Index", floatPtr(0.0005), nil),
			newSymbol("DDD", domain.AssetClassEquity, "S&P 500 Index", floatPtr(0.0005), nil),
		}
		sel := SelectCoreAndSatellites(universe, cfg)
		require.Equal(t, "CCC", tickerOf(sel.USEquityCore))
	})

	t.Run("allow-list fallback without style", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("vti", domain.AssetClassEquity, "", floatPtr(0.0003), nil),
			newSymbol("VXUS", domain.AssetClassEquity, "", floatPtr(0.0007), nil),
			newSymbol("BND", domain.AssetClassBond, "", floatPtr(0.0003), nil),
			newSymbol("VTIP", domain.AssetClassBond, "", floatPtr(0.0004), nil),
			newSymbol("BSV", domain.AssetClassBond, "", floatPtr(0.0004), nil),
			newSymbol("VMFXX", domain.AssetClassCash, "", floatPtr(0.0011), nil),
		}
		sel := SelectCoreAndSatellites(universe, cfg)
		require.Equal(t, "vti", tickerOf(sel.USEquityCore))
		require.Equal(t, "VXUS", tickerOf(sel.IntlEquityCore))
		require.Equal(t, "BND", tickerOf(sel.BondCore))
		require.Equal(t, "VTIP", tickerOf(sel.TipsSatellite))
		require.Equal(t, "BSV", tickerOf(sel.ShortDurationSatellite))
		require.Equal(t, "VMFXX", tickerOf(sel.CashProxy))
		require.Empty(t, sel.EquitySatellites)
		require.Empty(t, sel.BondSatellites)
		require.Equal(t, 6, sel.CandidateCount())
	})

	t.Run("roles are restricted to their asset class", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("BONDX", domain.AssetClassBond, "Total Market Bond", floatPtr(0.0001), nil),
			newSymbol("ALTX", domain.AssetClassAlt, "Total Market Commodities", floatPtr(0.0001), nil),
		}
		sel := SelectCoreAndSatellites(universe, cfg)
		require.Nil(t, sel.USEquityCore)
		require.Nil(t, sel.BondCore)
		require.Equal(t, []string{"BONDX"}, tickers(sel.BondSatellites))
		require.Empty(t, sel.EquitySatellites)
	})

	t.Run("a symbol fills at most one role", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("WORLD", domain.AssetClassEquity, "Total Market International", floatPtr(0.0001), nil),
		}
		sel := SelectCoreAndSatellites(universe, cfg)
		require.Equal(t, "WORLD", tickerOf(sel.USEquityCore))
		require.Nil(t, sel.IntlEquityCore)
		require.Empty(t, sel.EquitySatellites)
	})

	t.Run("satellites ranked by score then fee and capped", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("FSKAX", domain.AssetClassEquity, "Total Market", floatPtr(0.00015), floatPtr(100)),
			newSymbol("E1", domain.AssetClassEquity, "Large Growth", floatPtr(0.004), floatPtr(2)),
			newSymbol("E2", domain.AssetClassEquity, "Large Value", floatPtr(0.002), floatPtr(2)),
			newSymbol("E3", domain.AssetClassEquity, "Mid Cap", nil, floatPtr(5)),
			newSymbol("E4", domain.AssetClassEquity, "Small Cap", floatPtr(0.001), nil),
			newSymbol("E5", domain.AssetClassEquity, "Small Value", floatPtr(0.001), floatPtr(-1)),
			newSymbol("E6", domain.AssetClassEquity, "Emerging Markets", floatPtr(0.003), floatPtr(1)),
			newSymbol("E7", domain.AssetClassEquity, "Real Estate", floatPtr(0.003), floatPtr(0)),
			newSymbol("B1", domain.AssetClassBond, "High Yield", floatPtr(0.005), floatPtr(3)),
			newSymbol("B2", domain.AssetClassBond, "Corporate", floatPtr(0.003), floatPtr(4)),
			newSymbol("B3", domain.AssetClassBond, "Municipal", floatPtr(0.003), floatPtr(1)),
			newSymbol("B4", domain.AssetClassBond, "Multisector", floatPtr(0.002), floatPtr(1)),
			newSymbol("B5", domain.AssetClassBond, "Long Government", floatPtr(0.002), floatPtr(0.5)),
			newSymbol("SPAXX", domain.AssetClassCash, "Money Market", floatPtr(0.004), floatPtr(9)),
		}
		sel := SelectCoreAndSatellites(universe, cfg)

		require.Equal(t, "FSKAX", tickerOf(sel.USEquityCore))
		require.Equal(t, "SPAXX", tickerOf(sel.CashProxy))
		require.Equal(t, []string{"E3", "E2", "E1", "E6", "E7", "E5"}, tickers(sel.EquitySatellites))
		require.Equal(t, []string{"B2", "B1", "B4", "B3"}, tickers(sel.BondSatellites))
	})

	t.Run("inactive symbols are ignored", func(t *testing.T) {
		inactive := newSymbol("FSKAX", domain.AssetClassEquity, "Total Market", floatPtr(0.00015), nil)
		inactive.Active = false
		sel := SelectCoreAndSatellites([]domain.ScoredSymbol{inactive}, cfg)
		require.Nil(t, sel.USEquityCore)
		require.Equal(t, 0, sel.CandidateCount())
	})
}
