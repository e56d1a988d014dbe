package domain

import (
	"fmt"
	"math"
)

// AllocationTargets are the fractions of a portfolio a profile
// targets per bucket.
type AllocationTargets struct {
	Equity float64 `json:"equity"`
	Bond   float64 `json:"bond"`
	Cash   float64 `json:"cash"`
}

func DefaultAllocationTargets(profile Profile) AllocationTargets {
	switch profile.ModelProfile() {
	case ProfileBalanced:
		return AllocationTargets{Equity: 0.6, Bond: 0.4, Cash: 0}
	case ProfileConservative:
		return AllocationTargets{Equity: 0.35, Bond: 0.6, Cash: 0.05}
	default:
		return AllocationTargets{Equity: 0.9, Bond: 0.1, Cash: 0}
	}
}

// Validate is applied when targets are written; the model builder trusts
// whatever it is given.
func (t AllocationTargets) Validate() error {
	for name, v := range map[string]float64{"equity": t.Equity, "bond": t.Bond, "cash": t.Cash} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%s target must be between 0 and 1, got %f", name, v)
		}
	}
	if sum := t.Equity + t.Bond + t.Cash; sum > 1.0001 {
		return fmt.Errorf("targets should sum to at most 1, got %f", sum)
	}
	return nil
}
