package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gradeyour401k/internal/db/models/postgres/public/model"
	"gradeyour401k/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type SymbolScoreRepository interface {
	AddMany(tx *sql.Tx, scores []model.SymbolScore) error
	// GetMany returns scores keyed by ticker for exactly the given date
	GetMany(tx *sql.Tx, asOf time.Time, symbols []string) (map[string]float64, error)
}

type symbolScoreRepositoryHandler struct {
	Db *sql.DB
}

func NewSymbolScoreRepository(db *sql.DB) SymbolScoreRepository {
	return symbolScoreRepositoryHandler{Db: db}
}

func (h symbolScoreRepositoryHandler) AddMany(tx *sql.Tx, scores []model.SymbolScore) error {
	if len(scores) == 0 {
		return nil
	}

	for i := range scores {
		scores[i].CreatedAt = time.Now().UTC()
	}
	query := table.SymbolScore.
		INSERT(table.SymbolScore.MutableColumns).
		MODELS(scores).
		ON_CONFLICT(
			table.SymbolScore.Symbol,
			table.SymbolScore.AsOf,
		).
		DO_UPDATE(
			postgres.SET(
				table.SymbolScore.Score.SET(table.SymbolScore.EXCLUDED.Score),
				table.SymbolScore.Return3m.SET(table.SymbolScore.EXCLUDED.Return3m),
				table.SymbolScore.Return6m.SET(table.SymbolScore.EXCLUDED.Return6m),
				table.SymbolScore.Return12m.SET(table.SymbolScore.EXCLUDED.Return12m),
				table.SymbolScore.Volatility.SET(table.SymbolScore.EXCLUDED.Volatility),
				table.SymbolScore.CreatedAt.SET(table.SymbolScore.EXCLUDED.CreatedAt),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add symbol scores: %w", err)
	}

	return nil
}

func (h symbolScoreRepositoryHandler) GetMany(tx *sql.Tx, asOf time.Time, symbols []string) (map[string]float64, error) {
	out := map[string]float64{}
	if len(symbols) == 0 {
		return out, nil
	}

	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(strings.ToUpper(strings.TrimSpace(s))))
	}
	query := table.SymbolScore.
		SELECT(table.SymbolScore.AllColumns).
		WHERE(
			postgres.AND(
				table.SymbolScore.AsOf.EQ(postgres.DateT(asOf)),
				table.SymbolScore.Symbol.IN(symbolExpressions...),
			),
		)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	result := []model.SymbolScore{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get symbol scores on %s: %w", asOf.Format(time.DateOnly), err)
	}

	for _, r := range result {
		out[r.Symbol] = r.Score
	}

	return out, nil
}
