package calculator

import (
	"strings"

	"gradeyour401k/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	half    = decimal.NewFromFloat(0.5)
)

func baseGrade(profile domain.Profile) decimal.Decimal {
	switch profile {
	case domain.ProfileBalanced:
		return decimal.NewFromFloat(3.8)
	case domain.ProfileConservative:
		return decimal.NewFromFloat(4.1)
	default:
		return decimal.NewFromFloat(4.5)
	}
}

// bondThreshold is the bond share, in percent, a profile tolerates before
// it is penalized.
func bondThreshold(profile domain.Profile) decimal.Decimal {
	switch profile {
	case domain.ProfileBalanced:
		return decimal.NewFromInt(35)
	case domain.ProfileConservative:
		return decimal.NewFromInt(50)
	default:
		return decimal.NewFromInt(20)
	}
}

type gradedHolding struct {
	symbol  string
	weight  decimal.Decimal
	label   string
	curated bool
}

// aggregateHoldings merges holdings by ticker, keeping first-seen order.
func aggregateHoldings(holdings []domain.Holding) []gradedHolding {
	out := []gradedHolding{}
	index := map[string]int{}
	for _, h := range holdings {
		symbol := normalizeTicker(h.Symbol)
		if symbol == "" {
			continue
		}
		if i, ok := index[symbol]; ok {
			out[i].weight = out[i].weight.Add(decimal.NewFromFloat(h.Weight))
			if h.Label != nil && strings.TrimSpace(*h.Label) != "" && out[i].label == symbol {
				out[i].label = strings.TrimSpace(*h.Label)
			}
			continue
		}

		g := gradedHolding{
			symbol: symbol,
			weight: decimal.NewFromFloat(h.Weight),
			label:  symbol,
		}
		info, curated := LookupFund(symbol)
		g.curated = curated
		if h.Label != nil && strings.TrimSpace(*h.Label) != "" {
			g.label = strings.TrimSpace(*h.Label)
		} else if curated {
			g.label = info.Label
		}

		index[symbol] = len(out)
		out = append(out, g)
	}
	return out
}

// ComputeGrade scores a holdings list from 1 to 5 in half steps.
func ComputeGrade(profile domain.Profile, holdings []domain.Holding) float64 {
	return ExplainGrade(profile, holdings).Grade
}

// ExplainGrade computes the grade along with every adjustment applied to
// the profile's base score.
func ExplainGrade(profile domain.Profile, holdings []domain.Holding) domain.GradeBreakdown {
	base := baseGrade(profile)
	score := base
	adjustments := []domain.GradeAdjustment{}
	adjust := func(name string, delta decimal.Decimal) {
		if delta.IsZero() {
			return
		}
		score = score.Add(delta)
		adjustments = append(adjustments, domain.GradeAdjustment{
			Name:  name,
			Delta: delta.InexactFloat64(),
		})
	}

	graded := aggregateHoldings(holdings)
	total := decimal.Zero
	maxWeight := decimal.Zero
	for _, g := range graded {
		total = total.Add(g.weight)
		if g.weight.GreaterThan(maxWeight) {
			maxWeight = g.weight
		}
	}

	deviation := total.Sub(hundred).Abs()
	if deviation.GreaterThan(decimal.NewFromFloat(0.25)) {
		adjust("total weight is not 100%", decimal.Min(decimal.NewFromFloat(0.8), deviation.Div(hundred)).Neg())
	}

	if maxWeight.GreaterThan(total.Mul(decimal.NewFromFloat(0.6))) {
		adjust("single holding above 60%", decimal.NewFromFloat(0.2).Neg())
	}

	n := int64(len(graded))
	if n >= 6 && n <= 8 {
		adjust("holding count", decimal.NewFromFloat(0.35))
	} else {
		distance := n - 7
		if distance < 0 {
			distance = -distance
		}
		if distance > 10 {
			distance = 10
		}
		adjust("holding count", decimal.NewFromFloat(0.05).Mul(decimal.NewFromInt(distance)).Neg())
	}

	if n > 0 {
		curated := int64(0)
		for _, g := range graded {
			if g.curated {
				curated++
			}
		}
		ratio := decimal.NewFromInt(curated).Div(decimal.NewFromInt(n))
		adjust("curated funds", half.Mul(ratio.Sub(decimal.NewFromFloat(0.6))))
	}

	if total.IsPositive() {
		families := map[string]decimal.Decimal{}
		bondWeight := decimal.Zero
		for _, g := range graded {
			family := fundFamily(g.label)
			families[family] = families[family].Add(g.weight)
			if isBondLike(g.label) {
				bondWeight = bondWeight.Add(g.weight)
			}
		}

		topFamily := decimal.Zero
		for _, w := range families {
			if w.GreaterThan(topFamily) {
				topFamily = w
			}
		}
		familyShare := topFamily.Div(total).Mul(hundred)
		if familyShare.GreaterThanOrEqual(decimal.NewFromInt(55)) && familyShare.LessThanOrEqual(decimal.NewFromInt(85)) {
			adjust("fund family concentration", decimal.NewFromFloat(0.25))
		} else if familyShare.GreaterThan(decimal.NewFromInt(90)) {
			adjust("fund family concentration", decimal.NewFromFloat(0.1).Neg())
		}

		bondShare := bondWeight.Div(total).Mul(hundred)
		excess := bondShare.Sub(bondThreshold(profile))
		if excess.IsPositive() {
			adjust("bond overexposure", decimal.Min(decimal.NewFromFloat(0.9), excess.Mul(decimal.NewFromFloat(0.03))).Neg())
		}
	}

	raw := score
	clamped := decimal.Max(decimal.NewFromInt(1), decimal.Min(decimal.NewFromInt(5), raw))
	grade := clamped.Mul(decimal.NewFromInt(2)).Round(0).Div(decimal.NewFromInt(2))

	return domain.GradeBreakdown{
		Profile:     profile,
		Base:        base.InexactFloat64(),
		Adjustments: adjustments,
		Raw:         raw.InexactFloat64(),
		Grade:       grade.InexactFloat64(),
	}
}
