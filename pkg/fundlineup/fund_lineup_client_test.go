package fundlineup

import (
	"testing"

	"gradeyour401k/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func TestParse(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		data := []byte(`symbol,name,asset_class,style,expense_ratio,active
fskax,Fidelity Total Market Index,Equity,US Total Market,0.00015,true
FXNAX,Fidelity US Bond Index,Fixed Income,,0.025%,
SPAXX,Fidelity Government Money Market,money market,,,no
`)

		symbols, err := Parse(domain.ProviderFidelity, data)
		require.NoError(t, err)

		diff := cmp.Diff([]domain.Symbol{
			{
				Symbol:       "FSKAX",
				Provider:     domain.ProviderFidelity,
				Name:         strPtr("Fidelity Total Market Index"),
				AssetClass:   domain.AssetClassEquity,
				Style:        strPtr("US Total Market"),
				Active:       true,
				ExpenseRatio: floatPtr(0.00015),
			},
			{
				Symbol:       "FXNAX",
				Provider:     domain.ProviderFidelity,
				Name:         strPtr("Fidelity US Bond Index"),
				AssetClass:   domain.AssetClassBond,
				Active:       true,
				ExpenseRatio: floatPtr(0.00025),
			},
			{
				Symbol:     "SPAXX",
				Provider:   domain.ProviderFidelity,
				Name:       strPtr("Fidelity Government Money Market"),
				AssetClass: domain.AssetClassCash,
				Active:     false,
			},
		}, symbols, cmpopts.EquateApprox(0, 1e-12))
		require.Empty(t, diff)
	})

	t.Run("duplicate symbol", func(t *testing.T) {
		data := []byte(`symbol,name,asset_class,style,expense_ratio,active
FSKAX,a,equity,,,
fskax,b,equity,,,
`)
		_, err := Parse(domain.ProviderFidelity, data)
		require.ErrorContains(t, err, "line 3: duplicate symbol FSKAX")
	})

	t.Run("unknown asset class", func(t *testing.T) {
		data := []byte(`symbol,name,asset_class,style,expense_ratio,active
FSKAX,a,crypto,,,
`)
		_, err := Parse(domain.ProviderFidelity, data)
		require.ErrorContains(t, err, "line 2")
	})

	t.Run("negative expense ratio", func(t *testing.T) {
		data := []byte(`symbol,name,asset_class,style,expense_ratio,active
FSKAX,a,equity,,-0.1,
`)
		_, err := Parse(domain.ProviderFidelity, data)
		require.ErrorContains(t, err, "negative expense ratio")
	})
}
