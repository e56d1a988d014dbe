package calculator

import (
	"testing"

	"gradeyour401k/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// fidelityUniverse has every core role filled, seven equity satellites
// and five bond satellites.
func fidelityUniverse() []domain.ScoredSymbol {
	return []domain.ScoredSymbol{
		newSymbol("FSKAX", domain.AssetClassEquity, "Total Market", floatPtr(0.00015), floatPtr(0.4)),
		newSymbol("FTIHX", domain.AssetClassEquity, "International", floatPtr(0.0006), floatPtr(0.2)),
		newSymbol("FXNAX", domain.AssetClassBond, "Aggregate Bond", floatPtr(0.00025), floatPtr(0.1)),
		newSymbol("FIPDX", domain.AssetClassBond, "Inflation-Protected Bond", floatPtr(0.0005), floatPtr(0.1)),
		newSymbol("FUMBX", domain.AssetClassBond, "Short-Term Treasury", floatPtr(0.0003), floatPtr(0.1)),
		newSymbol("SPAXX", domain.AssetClassCash, "Money Market", floatPtr(0.0042), nil),
		newSymbol("EQA", domain.AssetClassEquity, "Large Growth", floatPtr(0.001), floatPtr(7)),
		newSymbol("EQB", domain.AssetClassEquity, "Large Value", floatPtr(0.001), floatPtr(6)),
		newSymbol("EQC", domain.AssetClassEquity, "Mid Cap", floatPtr(0.001), floatPtr(5)),
		newSymbol("EQD", domain.AssetClassEquity, "Small Cap", floatPtr(0.001), floatPtr(4)),
		newSymbol("EQE", domain.AssetClassEquity, "Small Value", floatPtr(0.001), floatPtr(3)),
		newSymbol("EQF", domain.AssetClassEquity, "Emerging Markets", floatPtr(0.001), floatPtr(2)),
		newSymbol("EQG", domain.AssetClassEquity, "Real Estate", floatPtr(0.001), floatPtr(1)),
		newSymbol("BDA", domain.AssetClassBond, "Corporate", floatPtr(0.002), floatPtr(5)),
		newSymbol("BDB", domain.AssetClassBond, "High Yield", floatPtr(0.002), floatPtr(4)),
		newSymbol("BDC", domain.AssetClassBond, "Municipal", floatPtr(0.002), floatPtr(3)),
		newSymbol("BDD", domain.AssetClassBond, "Multisector", floatPtr(0.002), floatPtr(2)),
		newSymbol("BDE", domain.AssetClassBond, "Long Government", floatPtr(0.002), floatPtr(1)),
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestAssembleWeights(t *testing.T) {
	cfg := DefaultModelConfig()
	sel := SelectCoreAndSatellites(fidelityUniverse(), cfg)

	t.Run("growth", func(t *testing.T) {
		lines := AssembleWeights(domain.DefaultAllocationTargets(domain.ProfileGrowth), sel, cfg)
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.Lines{
					{Symbol: "FSKAX", Weight: 0.441, Role: domain.RoleCore},
					{Symbol: "FTIHX", Weight: 0.189, Role: domain.RoleCore},
					{Symbol: "EQA", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "EQB", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "EQC", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "EQD", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "EQE", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "FXNAX", Weight: 0.084, Role: domain.RoleCore},
				},
				lines,
				approx,
			),
		)
	})

	t.Run("conservative places cash first and bond takes the residual", func(t *testing.T) {
		lines := AssembleWeights(domain.DefaultAllocationTargets(domain.ProfileConservative), sel, cfg)
		// equity .35: cores .245 split .1715/.0735; satellites place .10 of
		// their .105 and the unplaced .005 joins the bond residual
		// bond 1 - .05 - .345 = .605: core .4235, satellites place .15 of .1815
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.Lines{
					{Symbol: "SPAXX", Weight: 0.05, Role: domain.RoleCore},
					{Symbol: "FSKAX", Weight: 0.1715, Role: domain.RoleCore},
					{Symbol: "FTIHX", Weight: 0.0735, Role: domain.RoleCore},
					{Symbol: "EQA", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "EQB", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "FXNAX", Weight: 0.4235, Role: domain.RoleCore},
					{Symbol: "FIPDX", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "FUMBX", Weight: 0.05, Role: domain.RoleSatellite},
					{Symbol: "BDA", Weight: 0.05, Role: domain.RoleSatellite},
				},
				lines,
				approx,
			),
		)
	})

	t.Run("without equity cores the whole equity budget is satellite-fillable", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("EQA", domain.AssetClassEquity, "Large Growth", floatPtr(0.001), floatPtr(7)),
			newSymbol("EQB", domain.AssetClassEquity, "Large Value", floatPtr(0.001), floatPtr(6)),
		}
		noCores := SelectCoreAndSatellites(universe, cfg)
		lines := AssembleWeights(domain.AllocationTargets{Equity: 1}, noCores, cfg)
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.Lines{
					{Symbol: "EQA", Weight: 0.15, Role: domain.RoleSatellite},
					{Symbol: "EQB", Weight: 0.15, Role: domain.RoleSatellite},
				},
				lines,
				approx,
			),
		)
	})

	t.Run("unplaced equity flows into the bond residual", func(t *testing.T) {
		universe := []domain.ScoredSymbol{
			newSymbol("FXNAX", domain.AssetClassBond, "Aggregate Bond", floatPtr(0.00025), nil),
		}
		bondsOnly := SelectCoreAndSatellites(universe, cfg)
		lines := AssembleWeights(domain.DefaultAllocationTargets(domain.ProfileGrowth), bondsOnly, cfg)
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.Lines{
					{Symbol: "FXNAX", Weight: 0.7, Role: domain.RoleCore},
				},
				lines,
				approx,
			),
		)
	})
}

func TestDistributeSatellites(t *testing.T) {
	cfg := DefaultModelConfig()
	candidates := []domain.ScoredSymbol{
		newSymbol("A", domain.AssetClassEquity, "", nil, nil),
		newSymbol("B", domain.AssetClassEquity, "", nil, nil),
		newSymbol("C", domain.AssetClassEquity, "", nil, nil),
	}

	t.Run("stops when the slice falls under the stop fraction", func(t *testing.T) {
		lines := distributeSatellites(domain.Lines{}, 0.12, candidates, cfg)
		require.Equal(t, []string{"A", "B"}, lines.Symbols())
	})

	t.Run("merges into an existing line", func(t *testing.T) {
		existing := domain.Lines{{Symbol: "B", Weight: 0.3, Role: domain.RoleCore}}
		lines := distributeSatellites(existing, 0.3, candidates, cfg)
		require.Equal(
			t,
			"",
			cmp.Diff(
				domain.Lines{
					{Symbol: "B", Weight: 0.4, Role: domain.RoleCore},
					{Symbol: "A", Weight: 0.1, Role: domain.RoleSatellite},
					{Symbol: "C", Weight: 0.1, Role: domain.RoleSatellite},
				},
				lines,
				approx,
			),
		)
	})

	t.Run("respects the distinct maximum", func(t *testing.T) {
		cfg := DefaultModelConfig()
		cfg.MaxDistinct = 2
		existing := domain.Lines{{Symbol: "X", Weight: 0.5, Role: domain.RoleCore}}
		lines := distributeSatellites(existing, 0.5, candidates, cfg)
		require.Equal(t, []string{"X", "A"}, lines.Symbols())
	})
}
