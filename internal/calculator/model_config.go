package calculator

import (
	"fmt"
	"strings"
)

type RedistributionPolicy string

const (
	// RedistributeSingleRecipient moves all shaved or removed weight onto
	// the redistribution target line.
	RedistributeSingleRecipient RedistributionPolicy = "single"
	// RedistributeProportional spreads weight over lines in proportion to
	// their room under the cap and only hands the remainder to the target.
	RedistributeProportional RedistributionPolicy = "proportional"
)

func NewRedistributionPolicy(s string) (RedistributionPolicy, error) {
	switch RedistributionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RedistributeSingleRecipient:
		return RedistributeSingleRecipient, nil
	case RedistributeProportional:
		return RedistributeProportional, nil
	}
	return "", fmt.Errorf("unknown redistribution policy %q", s)
}

// ModelConfig holds every policy constant used to build a model snapshot.
type ModelConfig struct {
	MaxLineWeight float64
	MinLineWeight float64
	MinDistinct   int
	MaxDistinct   int

	// CoreShare is the fraction of a bucket given to its core lines
	CoreShare float64
	// PrimaryCoreShare splits the equity core share between the domestic
	// and international core
	PrimaryCoreShare float64

	MaxEquitySatellites int
	MaxBondSatellites   int
	// MaxSatelliteLines bounds how many lines a single satellite bucket
	// is spread over
	MaxSatelliteLines int
	// a satellite slice smaller than SatelliteStopFraction * MinLineWeight
	// ends distribution of the bucket
	SatelliteStopFraction float64

	PadWeight    float64
	MissingScore float64
	Precision    int32

	Redistribution RedistributionPolicy
	ChooseTarget   RedistributionTargetFunc
}

func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		MaxLineWeight:         0.15,
		MinLineWeight:         0.05,
		MinDistinct:           5,
		MaxDistinct:           10,
		CoreShare:             0.7,
		PrimaryCoreShare:      0.7,
		MaxEquitySatellites:   6,
		MaxBondSatellites:     4,
		MaxSatelliteLines:     6,
		SatelliteStopFraction: 0.75,
		PadWeight:             0.0001,
		MissingScore:          -999,
		Precision:             4,
		Redistribution:        RedistributeSingleRecipient,
		ChooseTarget:          ChooseRedistributionTarget,
	}
}

func (c ModelConfig) chooseTarget() RedistributionTargetFunc {
	if c.ChooseTarget == nil {
		return ChooseRedistributionTarget
	}
	return c.ChooseTarget
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
