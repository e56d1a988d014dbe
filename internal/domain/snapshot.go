package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCore      Role = "CORE"
	RoleSatellite Role = "SATELLITE"
)

type Line struct {
	Symbol string  `json:"symbol"`
	Weight float64 `json:"weight"`
	Role   Role    `json:"role"`
	// Rank is 1-based and only set on finalized lines
	Rank int `json:"rank,omitempty"`
}

// Lines is treated as immutable; every operation returns a new slice.
type Lines []Line

func (l Lines) Clone() Lines {
	out := make(Lines, len(l))
	copy(out, l)
	return out
}

func (l Lines) Sum() float64 {
	sum := 0.0
	for _, line := range l {
		sum += line.Weight
	}
	return sum
}

func (l Lines) Index(symbol string) int {
	for i, line := range l {
		if line.Symbol == symbol {
			return i
		}
	}
	return -1
}

func (l Lines) Contains(symbol string) bool {
	return l.Index(symbol) >= 0
}

func (l Lines) Symbols() []string {
	out := make([]string, 0, len(l))
	for _, line := range l {
		out = append(out, line.Symbol)
	}
	return out
}

// With returns a copy of the lines with the given weight added to symbol,
// appending a new line when the symbol is not present. A Core role wins
// over Satellite when lines merge.
func (l Lines) With(symbol string, weight float64, role Role) Lines {
	out := l.Clone()
	if i := out.Index(symbol); i >= 0 {
		out[i].Weight += weight
		if role == RoleCore {
			out[i].Role = RoleCore
		}
		return out
	}
	return append(out, Line{Symbol: symbol, Weight: weight, Role: role})
}

func (l Lines) CountByRole(role Role) int {
	n := 0
	for _, line := range l {
		if line.Role == role {
			n++
		}
	}
	return n
}

// Snapshot is one ranked model portfolio for a provider and profile on an
// as-of date.
type Snapshot struct {
	ID       uuid.UUID `json:"id"`
	Provider Provider  `json:"provider"`
	Profile  Profile   `json:"profile"`
	AsOf     time.Time `json:"asOf"`
	Notes    string    `json:"notes"`
	Lines    Lines     `json:"lines"`
}
