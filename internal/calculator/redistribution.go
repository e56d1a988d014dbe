package calculator

import (
	"sort"

	"gradeyour401k/internal/domain"
)

// RedistributionTargetFunc picks the index of the line that absorbs weight
// shaved off by the cap or freed by the floor.
type RedistributionTargetFunc func(lines domain.Lines) int

// ChooseRedistributionTarget returns the first core line, or the heaviest
// line when there is no core line. Returns -1 for no lines.
func ChooseRedistributionTarget(lines domain.Lines) int {
	for i, line := range lines {
		if line.Role == domain.RoleCore {
			return i
		}
	}
	heaviest := -1
	for i, line := range lines {
		if heaviest < 0 || line.Weight > lines[heaviest].Weight {
			heaviest = i
		}
	}
	return heaviest
}

// redistribute adds amount to the lines according to the configured policy.
func redistribute(lines domain.Lines, amount float64, cfg ModelConfig) domain.Lines {
	out := lines.Clone()
	if amount <= 0 || len(out) == 0 {
		return out
	}

	if cfg.Redistribution == RedistributeProportional {
		out, amount = fillUnderCap(out, amount, cfg.MaxLineWeight)
		if amount <= 1e-12 {
			return out
		}
	}

	target := cfg.chooseTarget()(out)
	if target < 0 {
		return out
	}
	out[target].Weight += amount
	return out
}

// fillUnderCap spreads amount across lines in proportion to each line's room
// under the cap and returns what did not fit.
func fillUnderCap(lines domain.Lines, amount, maxWeight float64) (domain.Lines, float64) {
	room := 0.0
	for _, line := range lines {
		if line.Weight < maxWeight {
			room += maxWeight - line.Weight
		}
	}
	if room <= 0 {
		return lines, amount
	}

	if room <= amount {
		for i := range lines {
			if lines[i].Weight < maxWeight {
				lines[i].Weight = maxWeight
			}
		}
		return lines, amount - room
	}

	for i := range lines {
		if lines[i].Weight < maxWeight {
			lines[i].Weight += amount * (maxWeight - lines[i].Weight) / room
		}
	}
	return lines, 0
}

// fund takes up to amount from lines above the floor, starting with the
// redistribution target and then the heaviest lines. The line at skip is
// never a donor. Returns the amount actually taken.
func fund(lines domain.Lines, amount float64, skip int, cfg ModelConfig) (domain.Lines, float64) {
	out := lines.Clone()
	donors := make([]int, 0, len(out))
	for i := range out {
		if i != skip {
			donors = append(donors, i)
		}
	}
	target := cfg.chooseTarget()(out)
	sort.SliceStable(donors, func(a, b int) bool {
		ia, ib := donors[a], donors[b]
		if (ia == target) != (ib == target) {
			return ia == target
		}
		if out[ia].Weight != out[ib].Weight {
			return out[ia].Weight > out[ib].Weight
		}
		return out[ia].Symbol < out[ib].Symbol
	})

	taken := 0.0
	for _, i := range donors {
		if taken >= amount {
			break
		}
		spare := out[i].Weight - cfg.MinLineWeight
		if spare <= 0 {
			continue
		}
		take := amount - taken
		if take > spare {
			take = spare
		}
		out[i].Weight -= take
		taken += take
	}
	return out, taken
}
