package calculator

import (
	"sort"
	"strings"

	"gradeyour401k/internal/domain"
)

type coreRole struct {
	name       string
	assetClass domain.AssetClass
	keywords   []string
	allowList  []string
}

var (
	usEquityCoreRole = coreRole{
		name:       "domestic equity core",
		assetClass: domain.AssetClassEquity,
		keywords:   []string{"total market", "total stock", "s&p 500", "500 index"},
		allowList:  []string{"FSKAX", "FXAIX", "FZROX", "VTSAX", "VFIAX", "VTI", "VOO", "SWTSX", "SWPPX", "ITOT", "IVV"},
	}
	intlEquityCoreRole = coreRole{
		name:       "international equity core",
		assetClass: domain.AssetClassEquity,
		keywords:   []string{"international", "ex-us", "developed markets"},
		allowList:  []string{"FTIHX", "FSPSX", "FZILX", "VTIAX", "VXUS", "VEA", "SWISX", "IXUS"},
	}
	bondCoreRole = coreRole{
		name:       "bond core",
		assetClass: domain.AssetClassBond,
		keywords:   []string{"aggregate", "total bond", "core bond"},
		allowList:  []string{"FXNAX", "VBTLX", "BND", "AGG", "SCHZ", "SWAGX"},
	}
	tipsRole = coreRole{
		name:       "inflation-protected bond",
		assetClass: domain.AssetClassBond,
		keywords:   []string{"inflation", "tips"},
		allowList:  []string{"FIPDX", "VAIPX", "SCHP", "TIP", "VTIP"},
	}
	shortDurationRole = coreRole{
		name:       "short-duration bond",
		assetClass: domain.AssetClassBond,
		keywords:   []string{"short-term", "short term", "short duration"},
		allowList:  []string{"VBIRX", "BSV", "SCHO", "VGSH", "FUMBX"},
	}
	cashProxyRole = coreRole{
		name:       "cash proxy",
		assetClass: domain.AssetClassCash,
		keywords:   []string{"money market", "stable value", "cash"},
		allowList:  []string{"SPAXX", "FDRXX", "VMFXX", "SWVXX", "BIL", "SGOV"},
	}
)

// Selection is the output of the core/satellite selector for one provider.
type Selection struct {
	USEquityCore           *domain.ScoredSymbol
	IntlEquityCore         *domain.ScoredSymbol
	BondCore               *domain.ScoredSymbol
	TipsSatellite          *domain.ScoredSymbol
	ShortDurationSatellite *domain.ScoredSymbol
	CashProxy              *domain.ScoredSymbol

	// ranked best first
	EquitySatellites []domain.ScoredSymbol
	BondSatellites   []domain.ScoredSymbol
}

func (s Selection) EquityCores() []domain.ScoredSymbol {
	out := []domain.ScoredSymbol{}
	if s.USEquityCore != nil {
		out = append(out, *s.USEquityCore)
	}
	if s.IntlEquityCore != nil {
		out = append(out, *s.IntlEquityCore)
	}
	return out
}

// BondSatelliteCandidates lists bond satellites in allocation order:
// inflation-protected, then short duration, then score-ranked.
func (s Selection) BondSatelliteCandidates() []domain.ScoredSymbol {
	out := []domain.ScoredSymbol{}
	if s.TipsSatellite != nil {
		out = append(out, *s.TipsSatellite)
	}
	if s.ShortDurationSatellite != nil {
		out = append(out, *s.ShortDurationSatellite)
	}
	return append(out, s.BondSatellites...)
}

type paddingCandidate struct {
	symbol string
	role   domain.Role
}

// paddingCandidates is the order in which unused candidates top up a model
// that has too few lines.
func (s Selection) paddingCandidates() []paddingCandidate {
	out := []paddingCandidate{}
	for _, c := range s.EquitySatellites {
		out = append(out, paddingCandidate{symbol: normalizeTicker(c.Symbol.Symbol), role: domain.RoleSatellite})
	}
	for _, c := range s.BondSatelliteCandidates() {
		out = append(out, paddingCandidate{symbol: normalizeTicker(c.Symbol.Symbol), role: domain.RoleSatellite})
	}
	for _, c := range []*domain.ScoredSymbol{s.USEquityCore, s.IntlEquityCore, s.BondCore, s.CashProxy} {
		if c != nil {
			out = append(out, paddingCandidate{symbol: normalizeTicker(c.Symbol.Symbol), role: domain.RoleCore})
		}
	}
	return out
}

// CandidateCount is the number of distinct symbols the selector made
// eligible for the model.
func (s Selection) CandidateCount() int {
	seen := map[string]bool{}
	for _, c := range s.paddingCandidates() {
		seen[c.symbol] = true
	}
	return len(seen)
}

func (s Selection) missingRoles() []string {
	out := []string{}
	if s.USEquityCore == nil {
		out = append(out, usEquityCoreRole.name)
	}
	if s.IntlEquityCore == nil {
		out = append(out, intlEquityCoreRole.name)
	}
	if s.BondCore == nil {
		out = append(out, bondCoreRole.name)
	}
	return out
}

// SelectCoreAndSatellites fills the core roles from the universe and ranks
// the remaining equity and bond symbols as satellites.
func SelectCoreAndSatellites(universe []domain.ScoredSymbol, cfg ModelConfig) Selection {
	used := map[string]bool{}
	sel := Selection{}

	sel.USEquityCore = matchRole(universe, usEquityCoreRole, used)
	sel.IntlEquityCore = matchRole(universe, intlEquityCoreRole, used)
	sel.BondCore = matchRole(universe, bondCoreRole, used)
	sel.TipsSatellite = matchRole(universe, tipsRole, used)
	sel.ShortDurationSatellite = matchRole(universe, shortDurationRole, used)
	sel.CashProxy = matchRole(universe, cashProxyRole, used)

	equity := []domain.ScoredSymbol{}
	bonds := []domain.ScoredSymbol{}
	for _, s := range universe {
		ticker := normalizeTicker(s.Symbol.Symbol)
		if !s.Active || used[ticker] {
			continue
		}
		switch s.AssetClass {
		case domain.AssetClassEquity:
			equity = append(equity, s)
		case domain.AssetClassBond:
			bonds = append(bonds, s)
		default:
			continue
		}
		used[ticker] = true
	}

	sel.EquitySatellites = topN(rankSatellites(equity, cfg.MissingScore), cfg.MaxEquitySatellites)
	sel.BondSatellites = topN(rankSatellites(bonds, cfg.MissingScore), cfg.MaxBondSatellites)

	return sel
}

func matchRole(universe []domain.ScoredSymbol, role coreRole, used map[string]bool) *domain.ScoredSymbol {
	eligible := []domain.ScoredSymbol{}
	for _, s := range universe {
		if s.Active && s.AssetClass == role.assetClass && !used[normalizeTicker(s.Symbol.Symbol)] {
			eligible = append(eligible, s)
		}
	}

	byKeyword := []domain.ScoredSymbol{}
	for _, s := range eligible {
		if s.Style != nil && containsAny(strings.ToLower(*s.Style), role.keywords) {
			byKeyword = append(byKeyword, s)
		}
	}
	match := cheapest(byKeyword)

	if match == nil {
		byAllowList := []domain.ScoredSymbol{}
		for _, s := range eligible {
			if containsTicker(role.allowList, s.Symbol.Symbol) {
				byAllowList = append(byAllowList, s)
			}
		}
		match = cheapest(byAllowList)
	}

	if match != nil {
		used[normalizeTicker(match.Symbol.Symbol)] = true
	}
	return match
}

// cheapest returns the lowest expense ratio, keeping input order on ties.
func cheapest(candidates []domain.ScoredSymbol) *domain.ScoredSymbol {
	if len(candidates) == 0 {
		return nil
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if expenseLess(c.ExpenseRatio, best.ExpenseRatio) {
			best = c
		}
	}
	return &best
}

func rankSatellites(candidates []domain.ScoredSymbol, missingScore float64) []domain.ScoredSymbol {
	out := make([]domain.ScoredSymbol, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].ScoreOr(missingScore), out[j].ScoreOr(missingScore)
		if si != sj {
			return si > sj
		}
		return expenseLess(out[i].ExpenseRatio, out[j].ExpenseRatio)
	})
	return out
}

// expenseLess orders expense ratios ascending with missing ratios last.
func expenseLess(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func topN(in []domain.ScoredSymbol, n int) []domain.ScoredSymbol {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func containsTicker(list []string, ticker string) bool {
	ticker = normalizeTicker(ticker)
	for _, t := range list {
		if t == ticker {
			return true
		}
	}
	return false
}

func normalizeTicker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
