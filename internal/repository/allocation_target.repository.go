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
)

type AllocationTargetRepository interface {
	// Get returns nil when no targets are stored for the profile
	Get(tx *sql.Tx, profile domain.Profile) (*domain.AllocationTargets, error)
	Upsert(tx *sql.Tx, profile domain.Profile, targets domain.AllocationTargets) error
}

type allocationTargetRepositoryHandler struct {
	Db *sql.DB
}

func NewAllocationTargetRepository(db *sql.DB) AllocationTargetRepository {
	return allocationTargetRepositoryHandler{Db: db}
}

func (h allocationTargetRepositoryHandler) Get(tx *sql.Tx, profile domain.Profile) (*domain.AllocationTargets, error) {
	query := table.AllocationTarget.
		SELECT(table.AllocationTarget.AllColumns).
		WHERE(table.AllocationTarget.Profile.EQ(postgres.String(string(profile))))

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := model.AllocationTarget{}
	err := query.Query(db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation targets for %s: %w", profile, err)
	}

	return &domain.AllocationTargets{
		Equity: result.Equity,
		Bond:   result.Bond,
		Cash:   result.Cash,
	}, nil
}

func (h allocationTargetRepositoryHandler) Upsert(tx *sql.Tx, profile domain.Profile, targets domain.AllocationTargets) error {
	m := model.AllocationTarget{
		Profile:   string(profile),
		Equity:    targets.Equity,
		Bond:      targets.Bond,
		Cash:      targets.Cash,
		UpdatedAt: time.Now().UTC(),
	}
	query := table.AllocationTarget.
		INSERT(table.AllocationTarget.AllColumns).
		MODEL(m).
		ON_CONFLICT(table.AllocationTarget.Profile).
		DO_UPDATE(
			postgres.SET(
				table.AllocationTarget.Equity.SET(table.AllocationTarget.EXCLUDED.Equity),
				table.AllocationTarget.Bond.SET(table.AllocationTarget.EXCLUDED.Bond),
				table.AllocationTarget.Cash.SET(table.AllocationTarget.EXCLUDED.Cash),
				table.AllocationTarget.UpdatedAt.SET(table.AllocationTarget.EXCLUDED.UpdatedAt),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert allocation targets for %s: %w", profile, err)
	}

	return nil
}
