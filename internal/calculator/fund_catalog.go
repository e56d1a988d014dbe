package calculator

import (
	"sort"
	"strings"

	"gradeyour401k/internal/domain"
)

type FundInfo struct {
	Symbol     string
	Label      string
	AssetClass domain.AssetClass
}

// fundCatalog is the curated list of well-known plan funds used by the
// grader. Labels start with the fund family.
var fundCatalog = map[string]FundInfo{
	// fidelity
	"FSKAX": {Label: "Fidelity Total Market Index", AssetClass: domain.AssetClassEquity},
	"FXAIX": {Label: "Fidelity 500 Index", AssetClass: domain.AssetClassEquity},
	"FZROX": {Label: "Fidelity ZERO Total Market Index", AssetClass: domain.AssetClassEquity},
	"FSMDX": {Label: "Fidelity Mid Cap Index", AssetClass: domain.AssetClassEquity},
	"FSSNX": {Label: "Fidelity Small Cap Index", AssetClass: domain.AssetClassEquity},
	"FTIHX": {Label: "Fidelity Total International Index", AssetClass: domain.AssetClassEquity},
	"FSPSX": {Label: "Fidelity International Index", AssetClass: domain.AssetClassEquity},
	"FZILX": {Label: "Fidelity ZERO International Index", AssetClass: domain.AssetClassEquity},
	"FPADX": {Label: "Fidelity Emerging Markets Index", AssetClass: domain.AssetClassEquity},
	"FSRNX": {Label: "Fidelity Real Estate Index", AssetClass: domain.AssetClassEquity},
	"FXNAX": {Label: "Fidelity U.S. Bond Index", AssetClass: domain.AssetClassBond},
	"FIPDX": {Label: "Fidelity Inflation-Protected Bond Index", AssetClass: domain.AssetClassBond},
	"FUMBX": {Label: "Fidelity Short-Term Treasury Bond Index", AssetClass: domain.AssetClassBond},
	"SPAXX": {Label: "Fidelity Government Money Market", AssetClass: domain.AssetClassCash},
	"FDRXX": {Label: "Fidelity Government Cash Reserves", AssetClass: domain.AssetClassCash},

	// vanguard
	"VTSAX": {Label: "Vanguard Total Stock Market Index Admiral", AssetClass: domain.AssetClassEquity},
	"VFIAX": {Label: "Vanguard 500 Index Admiral", AssetClass: domain.AssetClassEquity},
	"VTI":   {Label: "Vanguard Total Stock Market ETF", AssetClass: domain.AssetClassEquity},
	"VOO":   {Label: "Vanguard S&P 500 ETF", AssetClass: domain.AssetClassEquity},
	"VIMAX": {Label: "Vanguard Mid-Cap Index Admiral", AssetClass: domain.AssetClassEquity},
	"VSMAX": {Label: "Vanguard Small-Cap Index Admiral", AssetClass: domain.AssetClassEquity},
	"VTIAX": {Label: "Vanguard Total International Stock Index Admiral", AssetClass: domain.AssetClassEquity},
	"VXUS":  {Label: "Vanguard Total International Stock ETF", AssetClass: domain.AssetClassEquity},
	"VEA":   {Label: "Vanguard FTSE Developed Markets ETF", AssetClass: domain.AssetClassEquity},
	"VWO":   {Label: "Vanguard FTSE Emerging Markets ETF", AssetClass: domain.AssetClassEquity},
	"VGSLX": {Label: "Vanguard Real Estate Index Admiral", AssetClass: domain.AssetClassEquity},
	"VBTLX": {Label: "Vanguard Total Bond Market Index Admiral", AssetClass: domain.AssetClassBond},
	"BND":   {Label: "Vanguard Total Bond Market ETF", AssetClass: domain.AssetClassBond},
	"VAIPX": {Label: "Vanguard Inflation-Protected Securities Admiral", AssetClass: domain.AssetClassBond},
	"VTIP":  {Label: "Vanguard Short-Term Inflation-Protected Securities ETF", AssetClass: domain.AssetClassBond},
	"VBIRX": {Label: "Vanguard Short-Term Bond Index Admiral", AssetClass: domain.AssetClassBond},
	"BSV":   {Label: "Vanguard Short-Term Bond ETF", AssetClass: domain.AssetClassBond},
	"VGSH":  {Label: "Vanguard Short-Term Treasury ETF", AssetClass: domain.AssetClassBond},
	"VMFXX": {Label: "Vanguard Federal Money Market", AssetClass: domain.AssetClassCash},

	// schwab
	"SWTSX": {Label: "Schwab Total Stock Market Index", AssetClass: domain.AssetClassEquity},
	"SWPPX": {Label: "Schwab S&P 500 Index", AssetClass: domain.AssetClassEquity},
	"SWISX": {Label: "Schwab International Index", AssetClass: domain.AssetClassEquity},
	"SWSSX": {Label: "Schwab Small-Cap Index", AssetClass: domain.AssetClassEquity},
	"SCHZ":  {Label: "Schwab U.S. Aggregate Bond ETF", AssetClass: domain.AssetClassBond},
	"SWAGX": {Label: "Schwab U.S. Aggregate Bond Index", AssetClass: domain.AssetClassBond},
	"SCHP":  {Label: "Schwab U.S. TIPS ETF", AssetClass: domain.AssetClassBond},
	"SCHO":  {Label: "Schwab Short-Term U.S. Treasury ETF", AssetClass: domain.AssetClassBond},
	"SWVXX": {Label: "Schwab Value Advantage Money Fund", AssetClass: domain.AssetClassCash},

	// ishares / spdr
	"ITOT": {Label: "iShares Core S&P Total U.S. Stock Market ETF", AssetClass: domain.AssetClassEquity},
	"IVV":  {Label: "iShares Core S&P 500 ETF", AssetClass: domain.AssetClassEquity},
	"IXUS": {Label: "iShares Core MSCI Total International Stock ETF", AssetClass: domain.AssetClassEquity},
	"AGG":  {Label: "iShares Core U.S. Aggregate Bond ETF", AssetClass: domain.AssetClassBond},
	"TIP":  {Label: "iShares TIPS Bond ETF", AssetClass: domain.AssetClassBond},
	"BIL":  {Label: "SPDR Bloomberg 1-3 Month T-Bill ETF", AssetClass: domain.AssetClassCash},
	"SGOV": {Label: "iShares 0-3 Month Treasury Bond ETF", AssetClass: domain.AssetClassCash},
}

var bondKeywords = []string{"bond", "treasury", "tips", "inflation", "fixed income", "aggregate", "income"}

func LookupFund(symbol string) (FundInfo, bool) {
	ticker := normalizeTicker(symbol)
	info, ok := fundCatalog[ticker]
	if !ok {
		return FundInfo{}, false
	}
	info.Symbol = ticker
	return info, true
}

// CatalogSymbols lists the curated tickers in sorted order.
func CatalogSymbols() []string {
	out := make([]string, 0, len(fundCatalog))
	for symbol := range fundCatalog {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

func isBondLike(label string) bool {
	return containsAny(strings.ToLower(label), bondKeywords)
}

// fundFamily is the first word of a label.
func fundFamily(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
