package calculator

import (
	"gradeyour401k/internal/domain"
)

// FinalizeLines orders lines by weight descending, then symbol ascending, and
// assigns the 1-based rank persisted with the snapshot.
func FinalizeLines(lines domain.Lines) domain.Lines {
	out := sortByWeight(lines)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
