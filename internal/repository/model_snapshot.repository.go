package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/db/models/postgres/public/table"
	"gradeyour401k/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ModelSnapshotRepository interface {
	// Add replaces any snapshot already stored for the same provider,
	// profile and as-of date
	Add(tx *sql.Tx, snapshot domain.Snapshot) error
	// GetLatest returns nil when no snapshot was ever built
	GetLatest(tx *sql.Tx, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error)
}

type modelSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func NewModelSnapshotRepository(db *sql.DB) ModelSnapshotRepository {
	return modelSnapshotRepositoryHandler{Db: db}
}

func (h modelSnapshotRepositoryHandler) Add(tx *sql.Tx, snapshot domain.Snapshot) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	deleteQuery := table.ModelSnapshot.
		DELETE().
		WHERE(
			postgres.AND(
				table.ModelSnapshot.Provider.EQ(postgres.String(string(snapshot.Provider))),
				table.ModelSnapshot.Profile.EQ(postgres.String(string(snapshot.Profile))),
				table.ModelSnapshot.AsOf.EQ(postgres.DateT(snapshot.AsOf)),
			),
		)
	_, err := deleteQuery.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete previous snapshot: %w", err)
	}

	insertQuery := table.ModelSnapshot.
		INSERT(table.ModelSnapshot.AllColumns).
		MODEL(model.ModelSnapshot{
			ModelSnapshotID: snapshot.ID,
			Provider:        string(snapshot.Provider),
			Profile:         string(snapshot.Profile),
			AsOf:            snapshot.AsOf,
			Notes:           snapshot.Notes,
			CreatedAt:       time.Now().UTC(),
		})
	_, err = insertQuery.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	if len(snapshot.Lines) == 0 {
		return nil
	}

	lines := []model.ModelSnapshotLine{}
	for _, l := range snapshot.Lines {
		lines = append(lines, model.ModelSnapshotLine{
			ModelSnapshotID: snapshot.ID,
			Symbol:          l.Symbol,
			Weight:          l.Weight,
			Role:            string(l.Role),
			Rank:            int32(l.Rank),
		})
	}
	linesQuery := table.ModelSnapshotLine.
		INSERT(table.ModelSnapshotLine.MutableColumns).
		MODELS(lines)
	_, err = linesQuery.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert %d snapshot lines: %w", len(lines), err)
	}

	return nil
}

func (h modelSnapshotRepositoryHandler) GetLatest(tx *sql.Tx, provider domain.Provider, profile domain.Profile) (*domain.Snapshot, error) {
	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	headerQuery := table.ModelSnapshot.
		SELECT(table.ModelSnapshot.AllColumns).
		WHERE(
			postgres.AND(
				table.ModelSnapshot.Provider.EQ(postgres.String(string(provider))),
				table.ModelSnapshot.Profile.EQ(postgres.String(string(profile))),
			),
		).
		ORDER_BY(table.ModelSnapshot.AsOf.DESC(), table.ModelSnapshot.CreatedAt.DESC()).
		LIMIT(1)

	header := model.ModelSnapshot{}
	err := headerQuery.Query(db, &header)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest %s %s snapshot: %w", provider, profile, err)
	}

	lines, err := h.listLines(db, header.ModelSnapshotID)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		ID:       header.ModelSnapshotID,
		Provider: domain.Provider(header.Provider),
		Profile:  domain.Profile(header.Profile),
		AsOf:     header.AsOf,
		Notes:    header.Notes,
		Lines:    lines,
	}, nil
}

func (h modelSnapshotRepositoryHandler) listLines(db qrm.Queryable, snapshotID uuid.UUID) (domain.Lines, error) {
	query := table.ModelSnapshotLine.
		SELECT(table.ModelSnapshotLine.AllColumns).
		WHERE(table.ModelSnapshotLine.ModelSnapshotID.EQ(postgres.UUID(snapshotID))).
		ORDER_BY(table.ModelSnapshotLine.Rank.ASC())

	result := []model.ModelSnapshotLine{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list lines for snapshot %s: %w", snapshotID, err)
	}

	out := domain.Lines{}
	for _, r := range result {
		out = append(out, domain.Line{
			Symbol: r.Symbol,
			Weight: r.Weight,
			Role:   domain.Role(r.Role),
			Rank:   int(r.Rank),
		})
	}

	return out, nil
}
