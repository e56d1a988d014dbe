package calculator

import (
	"sort"

	"gradeyour401k/internal/domain"

	"github.com/shopspring/decimal"
)

const weightTolerance = 1e-9

// EnforceDistinctCount pads a model with too few lines using unused
// candidates at a nominal weight, and trims a model with too many lines down
// to its heaviest lines. Trimmed weight is discarded, not redistributed.
func EnforceDistinctCount(lines domain.Lines, sel Selection, cfg ModelConfig) domain.Lines {
	out := lines.Clone()
	if len(out) == 0 {
		return out
	}

	if len(out) < cfg.MinDistinct {
		for _, c := range sel.paddingCandidates() {
			if len(out) >= cfg.MinDistinct {
				break
			}
			if out.Contains(c.symbol) {
				continue
			}
			out = out.With(c.symbol, cfg.PadWeight, c.role)
		}
	}

	if len(out) > cfg.MaxDistinct {
		keep := map[string]bool{}
		for _, line := range sortByWeight(out)[:cfg.MaxDistinct] {
			keep[line.Symbol] = true
		}
		trimmed := domain.Lines{}
		for _, line := range out {
			if keep[line.Symbol] {
				trimmed = append(trimmed, line)
			}
		}
		out = trimmed
	}

	return out
}

// Normalize rescales weights to sum to one at the configured precision. The
// rounding residual lands on the heaviest line that stays within the cap.
func Normalize(lines domain.Lines, cfg ModelConfig) domain.Lines {
	out := lines.Clone()
	sum := lines.Sum()
	if sum <= 0 {
		return out
	}

	total := decimal.Zero
	rounded := make([]decimal.Decimal, len(out))
	for i, line := range out {
		rounded[i] = decimal.NewFromFloat(line.Weight / sum).Round(cfg.Precision)
		total = total.Add(rounded[i])
	}

	residual := decimal.NewFromInt(1).Sub(total)
	if !residual.IsZero() {
		i := residualRecipient(out, rounded, residual, cfg.MaxLineWeight)
		rounded[i] = rounded[i].Add(residual)
	}

	for i := range out {
		out[i].Weight = rounded[i].InexactFloat64()
	}
	return out
}

func residualRecipient(lines domain.Lines, weights []decimal.Decimal, residual decimal.Decimal, maxWeight float64) int {
	order := make([]int, len(lines))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		wa, wb := weights[order[a]], weights[order[b]]
		if !wa.Equal(wb) {
			return wa.GreaterThan(wb)
		}
		return lines[order[a]].Symbol < lines[order[b]].Symbol
	})

	limit := decimal.NewFromFloat(maxWeight)
	for _, i := range order {
		next := weights[i].Add(residual)
		if !next.IsNegative() && next.LessThanOrEqual(limit) {
			return i
		}
	}
	return order[0]
}

// ApplyCap clips every line above the cap and hands the excess to the
// redistribution policy.
func ApplyCap(lines domain.Lines, cfg ModelConfig) domain.Lines {
	out := lines.Clone()
	excess := 0.0
	for i := range out {
		if out[i].Weight > cfg.MaxLineWeight {
			excess += out[i].Weight - cfg.MaxLineWeight
			out[i].Weight = cfg.MaxLineWeight
		}
	}
	if excess <= weightTolerance {
		return out
	}
	return redistribute(out, excess, cfg)
}

// ApplyFloor removes lines under the floor, smallest first, and hands their
// weight to the redistribution policy. Removal stops at the minimum line
// count; sub-floor lines kept for that reason are lifted to the floor with
// weight taken from the redistribution target. Single pass.
func ApplyFloor(lines domain.Lines, cfg ModelConfig) domain.Lines {
	below := []domain.Line{}
	for _, line := range lines {
		if line.Weight < cfg.MinLineWeight-weightTolerance {
			below = append(below, line)
		}
	}
	if len(below) == 0 {
		return lines.Clone()
	}

	sort.SliceStable(below, func(i, j int) bool {
		if below[i].Weight != below[j].Weight {
			return below[i].Weight < below[j].Weight
		}
		return below[i].Symbol > below[j].Symbol
	})

	removable := len(lines) - cfg.MinDistinct
	if removable < 0 {
		removable = 0
	}
	if removable > len(below) {
		removable = len(below)
	}

	removed := map[string]bool{}
	removedWeight := 0.0
	for _, line := range below[:removable] {
		removed[line.Symbol] = true
		removedWeight += line.Weight
	}

	out := domain.Lines{}
	for _, line := range lines {
		if !removed[line.Symbol] {
			out = append(out, line)
		}
	}
	out = redistribute(out, removedWeight, cfg)

	for _, line := range below[removable:] {
		i := out.Index(line.Symbol)
		deficit := cfg.MinLineWeight - out[i].Weight
		if deficit <= 0 {
			continue
		}
		var taken float64
		out, taken = fund(out, deficit, i, cfg)
		out[i].Weight += taken
	}

	return out
}

// sortByWeight returns a copy ordered by weight descending, then symbol.
func sortByWeight(lines domain.Lines) domain.Lines {
	out := lines.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}
