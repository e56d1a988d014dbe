package calculator

import (
	"fmt"
	"strings"
	"time"

	"gradeyour401k/internal/domain"

	"github.com/google/uuid"
)

type BuildSnapshotInput struct {
	AsOf     time.Time
	Provider domain.Provider
	Profile  domain.Profile
	Universe []domain.ScoredSymbol
	Targets  domain.AllocationTargets
}

type ModelBuilder struct {
	Config ModelConfig
	// NewID mints snapshot ids; defaults to uuid.New
	NewID func() uuid.UUID
}

func NewModelBuilder(cfg ModelConfig) ModelBuilder {
	return ModelBuilder{
		Config: cfg,
		NewID:  uuid.New,
	}
}

// BuildSnapshot runs selection, assembly, cap and floor enforcement and
// finalization for one provider and profile. It never fails: a universe
// with nothing to invest in yields a snapshot with no lines and a note.
func (b ModelBuilder) BuildSnapshot(in BuildSnapshotInput) domain.Snapshot {
	cfg := b.Config
	snapshot := domain.Snapshot{
		ID:       b.newID(),
		Provider: in.Provider,
		Profile:  in.Profile,
		AsOf:     in.AsOf,
		Lines:    domain.Lines{},
	}

	active := []domain.ScoredSymbol{}
	for _, s := range in.Universe {
		if s.Active {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		snapshot.Notes = fmt.Sprintf("no active symbols for %s; model not built", in.Provider.DisplayName())
		return snapshot
	}

	sel := SelectCoreAndSatellites(active, cfg)
	lines := AssembleWeights(in.Targets, sel, cfg)
	if len(lines) == 0 {
		snapshot.Notes = fmt.Sprintf(
			"none of the %d active %s symbols is eligible for the model",
			len(active),
			in.Provider.DisplayName(),
		)
		return snapshot
	}
	assembled := lines.Sum()

	lines = EnforceDistinctCount(lines, sel, cfg)
	lines = Normalize(lines, cfg)
	lines = ApplyCap(lines, cfg)
	lines = Normalize(lines, cfg)
	lines = ApplyFloor(lines, cfg)
	lines = Normalize(lines, cfg)

	snapshot.Lines = FinalizeLines(lines)
	snapshot.Notes = describeSnapshot(in, sel, snapshot.Lines, assembled)

	return snapshot
}

func (b ModelBuilder) newID() uuid.UUID {
	if b.NewID == nil {
		return uuid.New()
	}
	return b.NewID()
}

func describeSnapshot(in BuildSnapshotInput, sel Selection, lines domain.Lines, assembled float64) string {
	notes := []string{
		fmt.Sprintf(
			"%s %s model as of %s: %d lines (%d core, %d satellite)",
			in.Provider.DisplayName(),
			strings.ToLower(strings.ReplaceAll(string(in.Profile), "_", " ")),
			in.AsOf.Format(time.DateOnly),
			len(lines),
			lines.CountByRole(domain.RoleCore),
			lines.CountByRole(domain.RoleSatellite),
		),
	}
	for _, role := range sel.missingRoles() {
		notes = append(notes, "no "+role+" found")
	}
	if in.Targets.Cash > 0 && sel.CashProxy == nil {
		notes = append(notes, "no cash proxy found for the cash target")
	}
	if assembled < 1-1e-6 {
		notes = append(notes, fmt.Sprintf("%.2f%% of the target could not be placed before normalization", (1-assembled)*100))
	}
	return strings.Join(notes, "; ")
}
