package integration_tests

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"gradeyour401k/internal/calculator"
	"gradeyour401k/internal/db/migrations"
	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/db/models/postgres/public/table"
	"gradeyour401k/internal/domain"
	"gradeyour401k/internal/repository"
	"gradeyour401k/internal/service"
	"gradeyour401k/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

type seedSymbol struct {
	symbol     string
	assetClass domain.AssetClass
	score      float64
}

var fidelityLineup = []seedSymbol{
	{"FSKAX", domain.AssetClassEquity, 0.12},
	{"FXAIX", domain.AssetClassEquity, 0.14},
	{"FSMDX", domain.AssetClassEquity, 0.09},
	{"FSSNX", domain.AssetClassEquity, 0.05},
	{"FTIHX", domain.AssetClassEquity, 0.07},
	{"FSPSX", domain.AssetClassEquity, 0.06},
	{"FXNAX", domain.AssetClassBond, 0.02},
	{"FIPDX", domain.AssetClassBond, 0.01},
	{"SPAXX", domain.AssetClassCash, 0},
}

func seedFidelity(tx *sql.Tx, asOf time.Time) error {
	symbols := []model.Symbol{}
	scores := []model.SymbolScore{}
	for _, s := range fidelityLineup {
		symbols = append(symbols, model.Symbol{
			Symbol:     s.symbol,
			Provider:   string(domain.ProviderFidelity),
			AssetClass: string(s.assetClass),
			Active:     true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		})
		scores = append(scores, model.SymbolScore{
			Symbol:    s.symbol,
			AsOf:      asOf,
			Score:     s.score,
			CreatedAt: time.Now(),
		})
	}

	_, err := table.Symbol.
		INSERT(table.Symbol.MutableColumns).
		MODELS(symbols).
		Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert symbols: %w", err)
	}

	_, err = table.SymbolScore.
		INSERT(table.SymbolScore.MutableColumns).
		MODELS(scores).
		Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert scores: %w", err)
	}

	return nil
}

func cleanup(db *sql.DB) error {
	if _, err := table.ModelSnapshotLine.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.ModelSnapshot.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.GradeSubmission.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.SymbolScore.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	if _, err := table.Symbol.DELETE().WHERE(postgres.Bool(true)).Exec(db); err != nil {
		return err
	}
	return nil
}

// runs against the local test database from util.NewTestDb and is skipped
// when it is unreachable
func Test_modelFlow(t *testing.T) {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Skipf("test db unavailable: %v", err)
	}

	require.NoError(t, migrations.Up(db))
	require.NoError(t, cleanup(db))
	defer cleanup(db)

	asOf := util.NewDate(2024, 1, 31)
	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, seedFidelity(tx, asOf))
	require.NoError(t, tx.Commit())

	symbolRepository := repository.NewSymbolRepository(db)
	modelService := service.NewModelService(
		db,
		calculator.NewModelBuilder(calculator.DefaultModelConfig()),
		symbolRepository,
		repository.NewSymbolScoreRepository(db),
		repository.NewAllocationTargetRepository(db),
		repository.NewModelSnapshotRepository(db),
		nil,
	)
	ctx := context.Background()

	snapshot, err := modelService.BuildSnapshot(ctx, asOf, domain.ProviderFidelity, domain.ProfileGrowth)
	require.NoError(t, err)
	require.NotEmpty(t, snapshot.Lines)
	require.InDelta(t, 1, snapshot.Lines.Sum(), 0.001)
	for i, l := range snapshot.Lines {
		require.Equal(t, i+1, l.Rank)
	}

	// rebuilding the same day replaces the stored model
	rebuilt, err := modelService.BuildSnapshot(ctx, asOf, domain.ProviderFidelity, domain.ProfileGrowth)
	require.NoError(t, err)

	latest, err := modelService.GetLatest(ctx, domain.ProviderFidelity, domain.ProfileGrowth)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, rebuilt.ID, latest.ID)
	require.Equal(t, rebuilt.Lines, latest.Lines)

	missing, err := modelService.GetLatest(ctx, domain.ProviderVanguard, domain.ProfileGrowth)
	require.NoError(t, err)
	require.Nil(t, missing)

	gradeService := service.NewGradeService(
		symbolRepository,
		repository.NewGradeSubmissionRepository(db),
		modelService,
	)
	provider := domain.ProviderFidelity
	result, err := gradeService.Grade(ctx, service.GradeRequest{
		Profile:  domain.ProfileAggressiveGrowth,
		Provider: &provider,
		Holdings: []domain.Holding{
			{Symbol: "fxaix", Weight: 80},
			{Symbol: "FXNAX", Weight: 20},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Recommended)
	require.Equal(t, rebuilt.ID, result.Recommended.ID)
	require.GreaterOrEqual(t, result.Submission.Breakdown.Grade, 0.0)
	require.LessOrEqual(t, result.Submission.Breakdown.Grade, 5.0)

	stored, err := repository.NewGradeSubmissionRepository(db).Get(nil, result.Submission.ID)
	require.NoError(t, err)
	require.Equal(t, result.Submission.Holdings, stored.Holdings)
}
