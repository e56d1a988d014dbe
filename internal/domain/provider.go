package domain

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderFidelity  Provider = "FIDELITY"
	ProviderVanguard  Provider = "VANGUARD"
	ProviderSchwab    Provider = "SCHWAB"
	ProviderEmpower   Provider = "EMPOWER"
	ProviderPrincipal Provider = "PRINCIPAL"
)

// Providers lists every distribution provider a model is built for,
// in build order.
var Providers = []Provider{
	ProviderFidelity,
	ProviderVanguard,
	ProviderSchwab,
	ProviderEmpower,
	ProviderPrincipal,
}

func NewProvider(s string) (Provider, error) {
	p := Provider(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Providers {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown provider %q", s)
}

func (p Provider) DisplayName() string {
	if p == "" {
		return ""
	}
	lower := strings.ToLower(string(p))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

type Profile string

const (
	ProfileAggressiveGrowth Profile = "AGGRESSIVE_GROWTH"
	ProfileGrowth           Profile = "GROWTH"
	ProfileBalanced         Profile = "BALANCED"
	ProfileConservative     Profile = "CONSERVATIVE"
)

// ModelProfiles are the profiles a model snapshot is built for. Aggressive
// growth investors are graded but share the growth model.
var ModelProfiles = []Profile{
	ProfileGrowth,
	ProfileBalanced,
	ProfileConservative,
}

func NewProfile(s string) (Profile, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	switch Profile(normalized) {
	case ProfileAggressiveGrowth, ProfileGrowth, ProfileBalanced, ProfileConservative:
		return Profile(normalized), nil
	case "AGGRESSIVE":
		return ProfileAggressiveGrowth, nil
	}
	return "", fmt.Errorf("unknown profile %q", s)
}

// ModelProfile maps a graded profile onto the profile its model is built for.
func (p Profile) ModelProfile() Profile {
	if p == ProfileAggressiveGrowth {
		return ProfileGrowth
	}
	return p
}

type AssetClass string

const (
	AssetClassEquity AssetClass = "EQUITY"
	AssetClassBond   AssetClass = "BOND"
	AssetClassCash   AssetClass = "CASH"
	AssetClassAlt    AssetClass = "ALT"
)

func NewAssetClass(s string) (AssetClass, error) {
	switch AssetClass(strings.ToUpper(strings.TrimSpace(s))) {
	case AssetClassEquity, "STOCK":
		return AssetClassEquity, nil
	case AssetClassBond, "FIXED_INCOME", "FIXED INCOME":
		return AssetClassBond, nil
	case AssetClassCash, "MONEY_MARKET", "MONEY MARKET", "STABLE_VALUE", "STABLE VALUE":
		return AssetClassCash, nil
	case AssetClassAlt, "ALTERNATIVE", "OTHER":
		return AssetClassAlt, nil
	}
	return "", fmt.Errorf("unknown asset class %q", s)
}
