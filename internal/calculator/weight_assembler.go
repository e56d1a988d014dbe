package calculator

import (
	"math"

	"gradeyour401k/internal/domain"
)

// AssembleWeights spreads the allocation targets over the selected cores and
// satellites. Cash is placed first, then equity, and bond receives whatever
// is left. Weight a bucket cannot place stays unassigned.
func AssembleWeights(targets domain.AllocationTargets, sel Selection, cfg ModelConfig) domain.Lines {
	lines := domain.Lines{}

	if targets.Cash > 0 && sel.CashProxy != nil {
		lines = lines.With(normalizeTicker(sel.CashProxy.Symbol.Symbol), targets.Cash, domain.RoleCore)
	}

	lines = allocateEquity(lines, targets.Equity, sel, cfg)
	lines = ResidualBondAllocation(lines, sel, cfg)

	return lines
}

func allocateEquity(lines domain.Lines, equityTarget float64, sel Selection, cfg ModelConfig) domain.Lines {
	budget := clamp(equityTarget, 0, math.Max(0, 1-lines.Sum()))
	if budget <= 0 {
		return lines
	}

	cores := sel.EquityCores()
	coreBucket, satelliteBucket := splitBucket(budget, len(cores) > 0, cfg)

	switch len(cores) {
	case 2:
		primary := coreBucket * cfg.PrimaryCoreShare
		lines = lines.With(normalizeTicker(cores[0].Symbol.Symbol), primary, domain.RoleCore)
		lines = lines.With(normalizeTicker(cores[1].Symbol.Symbol), coreBucket-primary, domain.RoleCore)
	case 1:
		lines = lines.With(normalizeTicker(cores[0].Symbol.Symbol), coreBucket, domain.RoleCore)
	}

	return distributeSatellites(lines, satelliteBucket, sel.EquitySatellites, cfg)
}

// ResidualBondAllocation assigns everything not yet emitted to the bond
// bucket. The bond target is never read a second time, so drift in the
// target table cannot leave the model under- or over-invested.
func ResidualBondAllocation(lines domain.Lines, sel Selection, cfg ModelConfig) domain.Lines {
	budget := math.Max(0, 1-lines.Sum())
	if budget < 1e-9 {
		return lines
	}

	coreBucket, satelliteBucket := splitBucket(budget, sel.BondCore != nil, cfg)
	if sel.BondCore != nil {
		lines = lines.With(normalizeTicker(sel.BondCore.Symbol.Symbol), coreBucket, domain.RoleCore)
	}

	return distributeSatellites(lines, satelliteBucket, sel.BondSatelliteCandidates(), cfg)
}

func splitBucket(budget float64, hasCore bool, cfg ModelConfig) (core, satellite float64) {
	if !hasCore {
		return 0, budget
	}
	core = budget * cfg.CoreShare
	return core, budget - core
}

// distributeSatellites consumes the bucket in rank order with a roughly
// equal slice per line, bounded by the line floor and cap.
func distributeSatellites(lines domain.Lines, bucket float64, candidates []domain.ScoredSymbol, cfg ModelConfig) domain.Lines {
	if bucket <= 0 || len(candidates) == 0 {
		return lines
	}

	n := len(candidates)
	if n > cfg.MaxSatelliteLines {
		n = cfg.MaxSatelliteLines
	}
	per := clamp(bucket/float64(n), cfg.MinLineWeight, cfg.MaxLineWeight)

	remaining := bucket
	for _, c := range candidates[:n] {
		slice := math.Min(per, remaining)
		if slice < cfg.SatelliteStopFraction*cfg.MinLineWeight {
			break
		}
		symbol := normalizeTicker(c.Symbol.Symbol)
		if !lines.Contains(symbol) && len(lines)+1 > cfg.MaxDistinct {
			break
		}
		lines = lines.With(symbol, slice, domain.RoleSatellite)
		remaining -= slice
	}

	return lines
}
